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
package app

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/metaverseslayer/slayer/game"
)

// Kind enumerates the screens.
type Kind uint8

const (
	KindLoading Kind = iota
	KindDisconnected
	KindSelectingCharacter
	KindBattling
)

func (k Kind) String() string {
	switch k {
	case KindLoading:
		return "loading"
	case KindDisconnected:
		return "disconnected"
	case KindSelectingCharacter:
		return "selecting"
	case KindBattling:
		return "battling"
	default:
		return "unknown"
	}
}

// SelectKind maps the (account, NFT, loading) flag triple onto a screen.
// Loading wins; then an absent account means Disconnected; then an owned NFT
// means Battling.
func SelectKind(hasAccount, hasNFT, loading bool) Kind {
	switch {
	case loading:
		return KindLoading
	case !hasAccount:
		return KindDisconnected
	case hasNFT:
		return KindBattling
	default:
		return KindSelectingCharacter
	}
}

// Screen is one of Loading, Disconnected, SelectingCharacter or Battling.
type Screen interface {
	Kind() Kind
}

// Loading is shown while the wallet or the contract is being queried.
// Account is zero until an account is known.
type Loading struct {
	Account common.Address
}

// Disconnected is shown when no account is authorized.
type Disconnected struct{}

// SelectingCharacter lets an account without a hero mint one.
type SelectingCharacter struct {
	Account common.Address
	Roster  []game.Character
	Minting bool
}

// Battling shows the account's hero against the boss. Boss is nil if it
// could not be read.
type Battling struct {
	Account   common.Address
	Hero      game.Character
	Boss      *game.Boss
	Attacking bool
}

func (Loading) Kind() Kind            { return KindLoading }
func (Disconnected) Kind() Kind       { return KindDisconnected }
func (SelectingCharacter) Kind() Kind { return KindSelectingCharacter }
func (Battling) Kind() Kind           { return KindBattling }

// ScreenEvent is posted whenever the screen changes.
type ScreenEvent struct {
	Screen Screen
}

// Alert is a message that should interrupt the user.
type Alert struct {
	Message string
}
