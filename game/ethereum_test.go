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
	"context"
	"errors"
	"math/big"
	"testing"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/metaverseslayer/slayer/contracts/epicgame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testContract = common.HexToAddress("0xad5a23a5dD3cfd85d42c627e91261b00Bda36eF1")
	testAccount  = common.HexToAddress("0x00000000000000000000000000000000000000aa")
)

type cannedCaller struct {
	abi     abi.ABI
	results map[string][]interface{}
	from    []common.Address
}

func (c *cannedCaller) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x60}, nil
}

func (c *cannedCaller) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	c.from = append(c.from, call.From)
	method, err := c.abi.MethodById(call.Data[:4])
	if err != nil {
		return nil, err
	}
	return method.Outputs.Pack(c.results[method.Name]...)
}

func newReadOnlyBackend(t *testing.T, results map[string][]interface{}) (*EthereumBackend, *cannedCaller) {
	parsed, err := epicgame.ParsedABI()
	require.NoError(t, err)
	caller := &cannedCaller{abi: parsed, results: results}
	nft, err := epicgame.NewMyEpicGameCaller(testContract, caller)
	require.NoError(t, err)
	return NewEthereumBackend(nil, nft, testAccount), caller
}

func attrs(index int64, name string, hp, maxHp, dmg int64) epicgame.CharacterAttributes {
	return epicgame.CharacterAttributes{
		CharacterIndex: big.NewInt(index),
		Name:           name,
		ImageURI:       "https://example.org/" + name + ".png",
		Hp:             big.NewInt(hp),
		MaxHp:          big.NewInt(maxHp),
		AttackDamage:   big.NewInt(dmg),
	}
}

func TestOwnedCharacter(t *testing.T) {
	t.Run("owned", func(t *testing.T) {
		backend, caller := newReadOnlyBackend(t, map[string][]interface{}{
			"checkIfUserHasNFT": {attrs(2, "Pikachu", 250, 300, 25)},
		})
		hero, err := backend.OwnedCharacter(context.Background())
		require.NoError(t, err)
		require.NotNil(t, hero)
		assert.Equal(t, "Pikachu", hero.Name)
		assert.Equal(t, int64(250), hero.HP)
		assert.Equal(t, []common.Address{testAccount}, caller.from)
	})

	t.Run("none", func(t *testing.T) {
		backend, _ := newReadOnlyBackend(t, map[string][]interface{}{
			"checkIfUserHasNFT": {attrs(0, "", 0, 0, 0)},
		})
		hero, err := backend.OwnedCharacter(context.Background())
		require.NoError(t, err)
		assert.Nil(t, hero)
	})
}

func TestCharactersAndBoss(t *testing.T) {
	backend, _ := newReadOnlyBackend(t, map[string][]interface{}{
		"getAllDefaultCharacters": {[]epicgame.CharacterAttributes{
			attrs(0, "Leo", 100, 100, 100),
			attrs(1, "Aang", 200, 200, 50),
		}},
		"getBigBoss": {epicgame.BigBoss{
			Name:         "Elon Musk",
			ImageURI:     "https://i.imgur.com/AksR0tt.png",
			Hp:           big.NewInt(10000),
			MaxHp:        big.NewInt(10000),
			AttackDamage: big.NewInt(50),
		}},
		"tokenURI":   {"data:application/json;base64,e30="},
		"nftHolders": {big.NewInt(3)},
	})
	ctx := context.Background()

	roster, err := backend.Characters(ctx)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, "Aang", roster[1].Name)
	assert.Equal(t, int64(1), roster[1].Index)

	boss, err := backend.Boss(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), boss.HP)

	uri, err := backend.TokenURI(ctx, big.NewInt(1))
	require.NoError(t, err)
	meta, err := ParseTokenURI(uri)
	require.NoError(t, err)
	assert.Empty(t, meta.Name)

	id, err := backend.HeldToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(3), id)
}

func TestMintOnReadOnlyBinding(t *testing.T) {
	backend, _ := newReadOnlyBackend(t, nil)
	_, err := backend.Mint(context.Background(), 0)
	assert.ErrorIs(t, err, epicgame.ErrReadOnly)
	_, err = backend.Attack(context.Background())
	assert.ErrorIs(t, err, epicgame.ErrReadOnly)
}

func TestSubscribeOnReadOnlyBinding(t *testing.T) {
	backend, _ := newReadOnlyBackend(t, nil)
	_, err := backend.SubscribeMinted(context.Background(), make(chan *MintEvent))
	assert.ErrorIs(t, err, epicgame.ErrReadOnly)
	_, err = backend.SubscribeAttacks(context.Background(), make(chan *AttackEvent))
	assert.ErrorIs(t, err, epicgame.ErrReadOnly)
}

func TestSubscribeErr(t *testing.T) {
	err := subscribeErr(rpc.ErrNotificationsUnsupported)
	assert.ErrorIs(t, err, ErrPushUnsupported)

	other := errors.New("dial failed")
	assert.Equal(t, other, subscribeErr(other))
}

func TestNewMintEvent(t *testing.T) {
	ev, err := newMintEvent(&epicgame.CharacterNFTMinted{
		Sender:         testAccount,
		TokenId:        big.NewInt(7),
		CharacterIndex: big.NewInt(2),
	})
	require.NoError(t, err)
	assert.Equal(t, &MintEvent{Sender: testAccount, TokenID: 7, CharacterIndex: 2}, ev)

	huge := new(big.Int).Lsh(big.NewInt(1), 64)
	_, err = newMintEvent(&epicgame.CharacterNFTMinted{Sender: testAccount, TokenId: huge, CharacterIndex: big.NewInt(0)})
	assert.ErrorIs(t, err, ErrValueOverflow)
	assert.Contains(t, err.Error(), "tokenId")

	_, err = newMintEvent(&epicgame.CharacterNFTMinted{Sender: testAccount, TokenId: big.NewInt(1), CharacterIndex: huge})
	assert.ErrorIs(t, err, ErrValueOverflow)
	assert.Contains(t, err.Error(), "characterIndex")
}

func TestClosedBackendRefusesSubscriptions(t *testing.T) {
	backend, _ := newReadOnlyBackend(t, nil)
	backend.Close()
	_, err := backend.track(event.NewSubscription(func(quit <-chan struct{}) error {
		<-quit
		return nil
	}))
	assert.ErrorIs(t, err, ErrClosed)
}

// stubChain answers CodeAt; every other call panics through the nil
// embedded backend.
type stubChain struct {
	bind.ContractBackend
	code []byte
}

func (c *stubChain) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return c.code, nil
}

func (c *stubChain) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	return nil, ethereum.NotFound
}

type stubSigner struct{ err error }

func (s stubSigner) Transactor(account common.Address, chainID *big.Int) (*bind.TransactOpts, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &bind.TransactOpts{From: account}, nil
}

func TestEthereumBinder(t *testing.T) {
	ctx := context.Background()
	chainID := big.NewInt(4)

	t.Run("bound", func(t *testing.T) {
		binder := NewEthereumBinder(&stubChain{code: []byte{0x60}}, stubSigner{}, testContract, chainID)
		backend, err := binder.Bind(ctx, testAccount)
		require.NoError(t, err)
		defer backend.Close()
		assert.Equal(t, testAccount, backend.Account())
	})
	t.Run("no contract", func(t *testing.T) {
		binder := NewEthereumBinder(&stubChain{}, stubSigner{}, testContract, chainID)
		_, err := binder.Bind(ctx, testAccount)
		assert.ErrorIs(t, err, ErrNoContract)
	})
	t.Run("not authorized", func(t *testing.T) {
		denied := errors.New("not authorized")
		binder := NewEthereumBinder(&stubChain{code: []byte{0x60}}, stubSigner{err: denied}, testContract, chainID)
		_, err := binder.Bind(ctx, testAccount)
		assert.ErrorIs(t, err, denied)
	})
}
