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

// Package epicgame provides high-level Go bindings for the MyEpicGame contract:
// minting hero NFTs, attacking the boss and watching the game events.
package epicgame

import (
	"context"
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/metaverseslayer/slayer/contracts/epicgame/contract"
)

// ErrReadOnly is returned by write and watch methods of a binding created
// without a transactor.
var ErrReadOnly = errors.New("epicgame: binding is read-only")

// Event names as declared in the ABI.
const (
	EventCharacterNFTMinted = "CharacterNFTMinted"
	EventAttackComplete     = "AttackComplete"
)

// CharacterAttributes mirrors the contract's CharacterAttributes struct.
type CharacterAttributes struct {
	CharacterIndex *big.Int
	Name           string
	ImageURI       string
	Hp             *big.Int
	MaxHp          *big.Int
	AttackDamage   *big.Int
}

// BigBoss mirrors the contract's BigBoss struct.
type BigBoss struct {
	Name         string
	ImageURI     string
	Hp           *big.Int
	MaxHp        *big.Int
	AttackDamage *big.Int
}

// CharacterNFTMinted is emitted once a hero NFT has been minted.
type CharacterNFTMinted struct {
	Sender         common.Address
	TokenId        *big.Int
	CharacterIndex *big.Int
	Raw            types.Log
}

// AttackComplete is emitted after every attack on the boss.
type AttackComplete struct {
	Sender      common.Address
	NewBossHp   *big.Int
	NewPlayerHp *big.Int
	Raw         types.Log
}

// ParsedABI returns the parsed MyEpicGame ABI.
func ParsedABI() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(contract.MyEpicGameABI))
}

// MyEpicGame is a high-level wrapper around the on-chain MyEpicGame contract.
type MyEpicGame struct {
	abi          abi.ABI
	address      common.Address
	contract     *bind.BoundContract
	transactOpts *bind.TransactOpts
	filterer     bind.ContractFilterer
}

// NewMyEpicGame connects to an already-deployed MyEpicGame contract. Writes
// are signed with opts.
func NewMyEpicGame(opts *bind.TransactOpts, addr common.Address, backend bind.ContractBackend) (*MyEpicGame, error) {
	parsed, err := ParsedABI()
	if err != nil {
		return nil, err
	}
	return bindMyEpicGame(parsed, opts, addr, backend), nil
}

func bindMyEpicGame(parsed abi.ABI, opts *bind.TransactOpts, addr common.Address, backend bind.ContractBackend) *MyEpicGame {
	return &MyEpicGame{
		abi:          parsed,
		address:      addr,
		contract:     bind.NewBoundContract(addr, parsed, backend, backend, backend),
		transactOpts: opts,
		filterer:     backend,
	}
}

// NewMyEpicGameCaller creates a read-only binding.
func NewMyEpicGameCaller(addr common.Address, caller bind.ContractCaller) (*MyEpicGame, error) {
	parsed, err := ParsedABI()
	if err != nil {
		return nil, err
	}
	return &MyEpicGame{
		abi:      parsed,
		address:  addr,
		contract: bind.NewBoundContract(addr, parsed, caller, nil, nil),
	}, nil
}

// Address returns the contract address.
func (g *MyEpicGame) Address() common.Address {
	return g.address
}

// ──────────────────────────────────────────────
//  Write methods
// ──────────────────────────────────────────────

func (g *MyEpicGame) transact(ctx context.Context, method string, params ...interface{}) (*types.Transaction, error) {
	if g.transactOpts == nil {
		return nil, ErrReadOnly
	}
	opts := *g.transactOpts
	opts.Context = ctx
	return g.contract.Transact(&opts, method, params...)
}

// MintCharacterNFT mints a hero of the given default character index to the
// signer.
func (g *MyEpicGame) MintCharacterNFT(ctx context.Context, characterIndex *big.Int) (*types.Transaction, error) {
	return g.transact(ctx, "mintCharacterNFT", characterIndex)
}

// AttackBoss attacks the boss with the signer's hero.
func (g *MyEpicGame) AttackBoss(ctx context.Context) (*types.Transaction, error) {
	return g.transact(ctx, "attackBoss")
}

// ──────────────────────────────────────────────
//  Read methods
// ──────────────────────────────────────────────

// CheckIfUserHasNFT returns the hero owned by opts.From. The contract returns
// a zero-valued struct (empty name) when there is none.
func (g *MyEpicGame) CheckIfUserHasNFT(opts *bind.CallOpts) (*CharacterAttributes, error) {
	var out []interface{}
	if err := g.contract.Call(opts, &out, "checkIfUserHasNFT"); err != nil {
		return nil, err
	}
	return abi.ConvertType(out[0], new(CharacterAttributes)).(*CharacterAttributes), nil
}

// GetAllDefaultCharacters returns the mintable roster in index order.
func (g *MyEpicGame) GetAllDefaultCharacters(opts *bind.CallOpts) ([]CharacterAttributes, error) {
	var out []interface{}
	if err := g.contract.Call(opts, &out, "getAllDefaultCharacters"); err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new([]CharacterAttributes)).(*[]CharacterAttributes), nil
}

// GetBigBoss returns the current boss.
func (g *MyEpicGame) GetBigBoss(opts *bind.CallOpts) (*BigBoss, error) {
	var out []interface{}
	if err := g.contract.Call(opts, &out, "getBigBoss"); err != nil {
		return nil, err
	}
	return abi.ConvertType(out[0], new(BigBoss)).(*BigBoss), nil
}

// TokenURI returns the metadata URI of a token.
func (g *MyEpicGame) TokenURI(opts *bind.CallOpts, tokenId *big.Int) (string, error) {
	var out []interface{}
	if err := g.contract.Call(opts, &out, "tokenURI", tokenId); err != nil {
		return "", err
	}
	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

// NftHolders returns the token id held by owner, zero if none.
func (g *MyEpicGame) NftHolders(opts *bind.CallOpts, owner common.Address) (*big.Int, error) {
	var out []interface{}
	if err := g.contract.Call(opts, &out, "nftHolders", owner); err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// ──────────────────────────────────────────────
//  Events
// ──────────────────────────────────────────────

// ParseCharacterNFTMinted decodes a CharacterNFTMinted log.
func (g *MyEpicGame) ParseCharacterNFTMinted(log types.Log) (*CharacterNFTMinted, error) {
	ev := new(CharacterNFTMinted)
	if err := g.contract.UnpackLog(ev, EventCharacterNFTMinted, log); err != nil {
		return nil, err
	}
	ev.Raw = log
	return ev, nil
}

// ParseAttackComplete decodes an AttackComplete log.
func (g *MyEpicGame) ParseAttackComplete(log types.Log) (*AttackComplete, error) {
	ev := new(AttackComplete)
	if err := g.contract.UnpackLog(ev, EventAttackComplete, log); err != nil {
		return nil, err
	}
	ev.Raw = log
	return ev, nil
}

// WatchCharacterNFTMinted streams CharacterNFTMinted events into sink until
// the returned subscription is cancelled.
func (g *MyEpicGame) WatchCharacterNFTMinted(opts *bind.WatchOpts, sink chan<- *CharacterNFTMinted) (event.Subscription, error) {
	return g.watch(opts, EventCharacterNFTMinted, func(log types.Log, quit <-chan struct{}) error {
		ev, err := g.ParseCharacterNFTMinted(log)
		if err != nil {
			return err
		}
		select {
		case sink <- ev:
		case <-quit:
		}
		return nil
	})
}

// WatchAttackComplete streams AttackComplete events into sink until the
// returned subscription is cancelled.
func (g *MyEpicGame) WatchAttackComplete(opts *bind.WatchOpts, sink chan<- *AttackComplete) (event.Subscription, error) {
	return g.watch(opts, EventAttackComplete, func(log types.Log, quit <-chan struct{}) error {
		ev, err := g.ParseAttackComplete(log)
		if err != nil {
			return err
		}
		select {
		case sink <- ev:
		case <-quit:
		}
		return nil
	})
}

func (g *MyEpicGame) watch(opts *bind.WatchOpts, name string, deliver func(types.Log, <-chan struct{}) error) (event.Subscription, error) {
	if g.filterer == nil {
		return nil, ErrReadOnly
	}
	logs, sub, err := g.contract.WatchLogs(opts, name)
	if err != nil {
		return nil, err
	}
	return event.NewSubscription(func(quit <-chan struct{}) error {
		defer sub.Unsubscribe()
		for {
			select {
			case log := <-logs:
				if err := deliver(log, quit); err != nil {
					return err
				}
			case err := <-sub.Err():
				return err
			case <-quit:
				return nil
			}
		}
	}), nil
}

