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
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
)

// MintEvent reports a CharacterNFTMinted event.
type MintEvent struct {
	Sender         common.Address
	TokenID        uint64
	CharacterIndex int64
}

// AttackEvent reports an AttackComplete event.
type AttackEvent struct {
	Sender      common.Address
	NewBossHP   int64
	NewPlayerHP int64
}

// Backend is the contract surface the client consumes, bound to one account
// (the signing identity). It is acquired through a Binder and must be
// released with Close, which also cancels every subscription it handed out.
type Backend interface {
	// Account returns the address calls and transactions are made from.
	Account() common.Address

	// OwnedCharacter returns the hero held by the account, or nil if the
	// account has not minted one.
	OwnedCharacter(ctx context.Context) (*Character, error)

	// Characters returns the mintable default characters in index order.
	Characters(ctx context.Context) ([]Character, error)

	// Boss returns the current boss.
	Boss(ctx context.Context) (*Boss, error)

	// TokenURI returns the metadata URI of a token.
	TokenURI(ctx context.Context, tokenID *big.Int) (string, error)

	// Mint submits mintCharacterNFT(index) and waits until it is mined.
	Mint(ctx context.Context, index int64) (common.Hash, error)

	// Attack submits attackBoss() and waits until it is mined.
	Attack(ctx context.Context) (common.Hash, error)

	// SubscribeMinted streams CharacterNFTMinted events into sink.
	SubscribeMinted(ctx context.Context, sink chan<- *MintEvent) (event.Subscription, error)

	// SubscribeAttacks streams AttackComplete events into sink.
	SubscribeAttacks(ctx context.Context, sink chan<- *AttackEvent) (event.Subscription, error)

	// Close releases the binding.
	Close()
}

// Binder acquires a Backend for an account.
type Binder interface {
	Bind(ctx context.Context, account common.Address) (Backend, error)
}
