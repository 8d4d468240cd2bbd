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
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pikachuMetadata = `{"name": "Pikachu -- NFT #: 1","description": "This is an NFT that lets people play in the game Metaverse Slayer!","image": "https://i.imgur.com/WMB6g9u.png","attributes": [ { "trait_type": "Health Points", "value": 250, "max_value":300}, { "trait_type": "Attack Damage", "value": 25} ]}`

func TestParseTokenURI(t *testing.T) {
	uri := "data:application/json;base64," + base64.StdEncoding.EncodeToString([]byte(pikachuMetadata))

	meta, err := ParseTokenURI(uri)
	require.NoError(t, err)
	assert.Equal(t, "Pikachu -- NFT #: 1", meta.Name)
	assert.Equal(t, "https://i.imgur.com/WMB6g9u.png", meta.Image)

	hp, ok := meta.Attribute("Health Points")
	require.True(t, ok)
	assert.Equal(t, int64(250), hp.Value)
	assert.Equal(t, int64(300), hp.MaxValue)

	dmg, ok := meta.Attribute("Attack Damage")
	require.True(t, ok)
	assert.Equal(t, int64(25), dmg.Value)

	_, ok = meta.Attribute("Speed")
	assert.False(t, ok)
}

func TestParseTokenURIErrors(t *testing.T) {
	_, err := ParseTokenURI("ipfs://QmHash")
	assert.ErrorIs(t, err, ErrUnsupportedTokenURI)

	_, err = ParseTokenURI("data:application/json;base64,!!!")
	assert.Error(t, err)

	_, err = ParseTokenURI("data:application/json;base64," + base64.StdEncoding.EncodeToString([]byte("{")))
	assert.Error(t, err)
}
