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

package epicgame

import (
	"context"
	"math/big"
	"testing"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	gameAddr   = common.HexToAddress("0xad5a23a5dD3cfd85d42c627e91261b00Bda36eF1")
	playerAddr = common.HexToAddress("0x00000000000000000000000000000000000000aa")
)

// fakeCaller answers eth_call with ABI-packed canned results per method.
type fakeCaller struct {
	abi     abi.ABI
	results map[string][]interface{}
	calls   []ethereum.CallMsg
}

func newFakeCaller(t *testing.T) *fakeCaller {
	parsed, err := ParsedABI()
	require.NoError(t, err)
	return &fakeCaller{abi: parsed, results: make(map[string][]interface{})}
}

func (f *fakeCaller) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x60}, nil
}

func (f *fakeCaller) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	f.calls = append(f.calls, call)
	method, err := f.abi.MethodById(call.Data[:4])
	if err != nil {
		return nil, err
	}
	return method.Outputs.Pack(f.results[method.Name]...)
}

func character(index int64, name, image string, hp, maxHp, dmg int64) CharacterAttributes {
	return CharacterAttributes{
		CharacterIndex: big.NewInt(index),
		Name:           name,
		ImageURI:       image,
		Hp:             big.NewInt(hp),
		MaxHp:          big.NewInt(maxHp),
		AttackDamage:   big.NewInt(dmg),
	}
}

func TestCheckIfUserHasNFT(t *testing.T) {
	caller := newFakeCaller(t)
	caller.results["checkIfUserHasNFT"] = []interface{}{
		character(1, "Aang", "https://i.imgur.com/xVu4vFL.png", 150, 200, 50),
	}
	game, err := NewMyEpicGameCaller(gameAddr, caller)
	require.NoError(t, err)

	hero, err := game.CheckIfUserHasNFT(&bind.CallOpts{From: playerAddr})
	require.NoError(t, err)

	assert.Equal(t, "Aang", hero.Name)
	assert.Equal(t, "https://i.imgur.com/xVu4vFL.png", hero.ImageURI)
	assert.Equal(t, int64(1), hero.CharacterIndex.Int64())
	assert.Equal(t, int64(150), hero.Hp.Int64())
	assert.Equal(t, int64(200), hero.MaxHp.Int64())
	assert.Equal(t, int64(50), hero.AttackDamage.Int64())

	require.Len(t, caller.calls, 1)
	assert.Equal(t, playerAddr, caller.calls[0].From)
	assert.Equal(t, gameAddr, *caller.calls[0].To)
}

func TestCheckIfUserHasNFTEmpty(t *testing.T) {
	caller := newFakeCaller(t)
	caller.results["checkIfUserHasNFT"] = []interface{}{character(0, "", "", 0, 0, 0)}
	game, err := NewMyEpicGameCaller(gameAddr, caller)
	require.NoError(t, err)

	hero, err := game.CheckIfUserHasNFT(&bind.CallOpts{From: playerAddr})
	require.NoError(t, err)
	assert.Empty(t, hero.Name)
}

func TestGetAllDefaultCharacters(t *testing.T) {
	caller := newFakeCaller(t)
	caller.results["getAllDefaultCharacters"] = []interface{}{[]CharacterAttributes{
		character(0, "Leo", "https://i.imgur.com/pKd5Sdk.png", 100, 100, 100),
		character(1, "Aang", "https://i.imgur.com/xVu4vFL.png", 200, 200, 50),
		character(2, "Pikachu", "https://i.imgur.com/WMB6g9u.png", 300, 300, 25),
	}}
	game, err := NewMyEpicGameCaller(gameAddr, caller)
	require.NoError(t, err)

	roster, err := game.GetAllDefaultCharacters(&bind.CallOpts{})
	require.NoError(t, err)
	require.Len(t, roster, 3)
	for i, name := range []string{"Leo", "Aang", "Pikachu"} {
		assert.Equal(t, name, roster[i].Name)
		assert.Equal(t, int64(i), roster[i].CharacterIndex.Int64())
	}
	assert.Equal(t, int64(25), roster[2].AttackDamage.Int64())
}

func TestGetBigBossAndTokenURI(t *testing.T) {
	caller := newFakeCaller(t)
	caller.results["getBigBoss"] = []interface{}{BigBoss{
		Name:         "Elon Musk",
		ImageURI:     "https://i.imgur.com/AksR0tt.png",
		Hp:           big.NewInt(9950),
		MaxHp:        big.NewInt(10000),
		AttackDamage: big.NewInt(50),
	}}
	caller.results["tokenURI"] = []interface{}{"data:application/json;base64,e30="}
	caller.results["nftHolders"] = []interface{}{big.NewInt(7)}
	game, err := NewMyEpicGameCaller(gameAddr, caller)
	require.NoError(t, err)

	boss, err := game.GetBigBoss(&bind.CallOpts{})
	require.NoError(t, err)
	assert.Equal(t, "Elon Musk", boss.Name)
	assert.Equal(t, int64(9950), boss.Hp.Int64())

	uri, err := game.TokenURI(&bind.CallOpts{}, big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, "data:application/json;base64,e30=", uri)

	id, err := game.NftHolders(&bind.CallOpts{}, playerAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id.Int64())
}

func TestWritesOnReadOnlyBinding(t *testing.T) {
	game, err := NewMyEpicGameCaller(gameAddr, newFakeCaller(t))
	require.NoError(t, err)

	_, err = game.MintCharacterNFT(context.Background(), big.NewInt(0))
	assert.ErrorIs(t, err, ErrReadOnly)
	_, err = game.AttackBoss(context.Background())
	assert.ErrorIs(t, err, ErrReadOnly)
}

func TestParseEvents(t *testing.T) {
	parsed, err := ParsedABI()
	require.NoError(t, err)
	game, err := NewMyEpicGameCaller(gameAddr, newFakeCaller(t))
	require.NoError(t, err)

	t.Run("minted", func(t *testing.T) {
		ev := parsed.Events[EventCharacterNFTMinted]
		data, err := ev.Inputs.NonIndexed().Pack(playerAddr, big.NewInt(1), big.NewInt(2))
		require.NoError(t, err)

		log := types.Log{Address: gameAddr, Topics: []common.Hash{ev.ID}, Data: data}
		minted, err := game.ParseCharacterNFTMinted(log)
		require.NoError(t, err)
		assert.Equal(t, playerAddr, minted.Sender)
		assert.Equal(t, int64(1), minted.TokenId.Int64())
		assert.Equal(t, int64(2), minted.CharacterIndex.Int64())
	})

	t.Run("attack", func(t *testing.T) {
		ev := parsed.Events[EventAttackComplete]
		data, err := ev.Inputs.NonIndexed().Pack(playerAddr, big.NewInt(9900), big.NewInt(250))
		require.NoError(t, err)

		log := types.Log{Address: gameAddr, Topics: []common.Hash{ev.ID}, Data: data}
		attack, err := game.ParseAttackComplete(log)
		require.NoError(t, err)
		assert.Equal(t, int64(9900), attack.NewBossHp.Int64())
		assert.Equal(t, int64(250), attack.NewPlayerHp.Int64())
	})

	t.Run("signature mismatch", func(t *testing.T) {
		ev := parsed.Events[EventAttackComplete]
		data, err := ev.Inputs.NonIndexed().Pack(playerAddr, big.NewInt(1), big.NewInt(1))
		require.NoError(t, err)

		log := types.Log{Address: gameAddr, Topics: []common.Hash{ev.ID}, Data: data}
		_, err = game.ParseCharacterNFTMinted(log)
		assert.Error(t, err)
	})
}
