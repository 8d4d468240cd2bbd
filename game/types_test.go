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
package game

import (
	"math/big"
	"testing"

	"github.com/metaverseslayer/slayer/contracts/epicgame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCharacter(t *testing.T) {
	raw := &epicgame.CharacterAttributes{
		CharacterIndex: big.NewInt(1),
		Name:           "Aang",
		ImageURI:       "https://i.imgur.com/xVu4vFL.png",
		Hp:             big.NewInt(200),
		MaxHp:          big.NewInt(200),
		AttackDamage:   big.NewInt(50),
	}
	c, err := NewCharacter(raw)
	require.NoError(t, err)

	assert.Equal(t, Character{
		Index:        1,
		Name:         "Aang",
		ImageURI:     "https://i.imgur.com/xVu4vFL.png",
		HP:           200,
		MaxHP:        200,
		AttackDamage: 50,
	}, c)
	assert.True(t, c.Alive())
}

func TestNewCharacterZeroRecord(t *testing.T) {
	c, err := NewCharacter(&epicgame.CharacterAttributes{})
	require.NoError(t, err)
	assert.Equal(t, Character{}, c)
	assert.False(t, c.Alive())
}

func TestNewCharacterOverflow(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 70)
	tests := []struct {
		name string
		raw  epicgame.CharacterAttributes
	}{
		{"hp", epicgame.CharacterAttributes{Hp: huge}},
		{"maxHp", epicgame.CharacterAttributes{MaxHp: huge}},
		{"attackDamage", epicgame.CharacterAttributes{AttackDamage: huge}},
		{"characterIndex", epicgame.CharacterAttributes{CharacterIndex: huge}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCharacter(&tt.raw)
			assert.ErrorIs(t, err, ErrValueOverflow)
			assert.Contains(t, err.Error(), tt.name)
		})
	}
}

func TestToUint64(t *testing.T) {
	v, err := toUint64("tokenId", nil)
	require.NoError(t, err)
	assert.Zero(t, v)

	v, err = toUint64("tokenId", new(big.Int).SetUint64(1<<63))
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<63), v)

	_, err = toUint64("tokenId", new(big.Int).Lsh(big.NewInt(1), 64))
	assert.ErrorIs(t, err, ErrValueOverflow)

	_, err = toUint64("tokenId", big.NewInt(-1))
	assert.ErrorIs(t, err, ErrValueOverflow)
}

func TestNewBoss(t *testing.T) {
	b, err := NewBoss(&epicgame.BigBoss{
		Name:         "Elon Musk",
		ImageURI:     "https://i.imgur.com/AksR0tt.png",
		Hp:           big.NewInt(0),
		MaxHp:        big.NewInt(10000),
		AttackDamage: big.NewInt(50),
	})
	require.NoError(t, err)
	assert.Equal(t, "Elon Musk", b.Name)
	assert.Equal(t, int64(10000), b.MaxHP)
	assert.False(t, b.Alive())

	_, err = NewBoss(&epicgame.BigBoss{Hp: new(big.Int).Lsh(big.NewInt(1), 64)})
	assert.ErrorIs(t, err, ErrValueOverflow)
}
