// Copyright 2018 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package deploy

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDeployment(t *testing.T) {
	d := DefaultDeployment()
	require.NoError(t, d.Validate())

	args := d.Args()
	assert.Equal(t, []string{"Leo", "Aang", "Pikachu"}, args.CharacterNames)
	assert.Equal(t, []string{
		"https://i.imgur.com/pKd5Sdk.png",
		"https://i.imgur.com/xVu4vFL.png",
		"https://i.imgur.com/WMB6g9u.png",
	}, args.CharacterImageURIs)
	assert.Equal(t, []*big.Int{big.NewInt(100), big.NewInt(200), big.NewInt(300)}, args.CharacterHp)
	assert.Equal(t, []*big.Int{big.NewInt(100), big.NewInt(50), big.NewInt(25)}, args.CharacterAttackDmg)
	assert.Equal(t, "Elon Musk", args.BossName)
	assert.Equal(t, "https://i.imgur.com/AksR0tt.png", args.BossImageURI)
	assert.Equal(t, big.NewInt(10000), args.BossHp)
	assert.Equal(t, big.NewInt(50), args.BossAttackDamage)
	assert.Len(t, args.Values(), 8)
}

func TestDeploymentValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(d *Deployment)
	}{
		{"no heroes", func(d *Deployment) { d.Heroes = nil }},
		{"unnamed hero", func(d *Deployment) { d.Heroes[0].Name = "" }},
		{"hero without image", func(d *Deployment) { d.Heroes[1].ImageURI = "" }},
		{"dead hero", func(d *Deployment) { d.Heroes[2].HP = 0 }},
		{"negative damage", func(d *Deployment) { d.Heroes[2].AttackDamage = -1 }},
		{"dead boss", func(d *Deployment) { d.Boss.HP = -5 }},
		{"unnamed boss", func(d *Deployment) { d.Boss.Name = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DefaultDeployment()
			tt.modify(d)
			assert.Error(t, d.Validate())
		})
	}
}
