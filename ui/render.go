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

// Package ui is the terminal front end of the game. It renders the screens
// published by an app.App with tview and turns key presses into App
// actions.
package ui

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/metaverseslayer/slayer/app"
	"github.com/metaverseslayer/slayer/game"
	"github.com/muesli/reflow/wordwrap"
)

// DefaultWidth is the wrap width of character cards.
const DefaultWidth = 40

// Texts shown by the UI.
const (
	Header        = "⚔️ Metaverse Slayer ⚔️"
	SubHeader     = "Team up to protect the Metaverse!"
	ConnectLabel  = "Connect Wallet To Get Started"
	SelectTitle   = "Mint Your Hero. Choose wisely."
	MintingText   = "Minting In Progress..."
	AttackingText = "Attacking ⚔️"
	LoadingText   = "Loading..."
)

// Wrap word-wraps text to width.
func Wrap(text string, width int) string {
	return wordwrap.String(text, width)
}

// HPBar draws hp out of max as a bar of width cells followed by the numbers.
func HPBar(hp, max int64, width int) string {
	if width <= 0 {
		width = 10
	}
	filled := 0
	if max > 0 && hp > 0 {
		if hp >= max {
			filled = width
		} else {
			cells := new(big.Int).Mul(big.NewInt(hp), big.NewInt(int64(width)))
			filled = int(cells.Quo(cells, big.NewInt(max)).Int64())
		}
		if filled < 1 {
			filled = 1
		}
	}
	if filled > width {
		filled = width
	}
	return fmt.Sprintf("[%s%s] %d/%d", strings.Repeat("#", filled), strings.Repeat("-", width-filled), hp, max)
}

// ShortAddress abbreviates an account for display.
func ShortAddress(addr common.Address) string {
	hex := addr.Hex()
	return hex[:6] + "..." + hex[len(hex)-4:]
}

// CharacterCard describes a hero.
func CharacterCard(c game.Character, width int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", c.Name)
	fmt.Fprintf(&b, "HP %s\n", HPBar(c.HP, c.MaxHP, 10))
	fmt.Fprintf(&b, "⚔️ Attack Damage: %d\n", c.AttackDamage)
	if !c.Alive() {
		b.WriteString("Your hero has fallen.\n")
	}
	b.WriteString(c.ImageURI)
	return Wrap(b.String(), width)
}

// BossCard describes the boss. A missing boss renders a placeholder.
func BossCard(boss *game.Boss, width int) string {
	if boss == nil {
		return "The boss could not be found."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "🔥 %s 🔥\n", boss.Name)
	fmt.Fprintf(&b, "HP %s\n", HPBar(boss.HP, boss.MaxHP, 20))
	fmt.Fprintf(&b, "⚔️ Attack Damage: %d\n", boss.AttackDamage)
	if !boss.Alive() {
		b.WriteString("The boss has been slain!\n")
	}
	b.WriteString(boss.ImageURI)
	return Wrap(b.String(), width)
}

// MintLabel is the list entry for minting c.
func MintLabel(c game.Character) string {
	return "Mint " + c.Name
}

// AttackLabel is the label of the attack button.
func AttackLabel(boss *game.Boss) string {
	if boss == nil {
		return "💥 Attack"
	}
	return "💥 Attack " + boss.Name
}

// Status is the progress line of a screen, empty when nothing is pending.
func Status(s app.Screen) string {
	switch s := s.(type) {
	case app.SelectingCharacter:
		if s.Minting {
			return MintingText
		}
	case app.Battling:
		if s.Attacking {
			return AttackingText
		}
	case app.Loading:
		return LoadingText
	}
	return ""
}

// AccountLine shows which account is playing.
func AccountLine(s app.Screen) string {
	acct := currentAccount(s)
	if acct == (common.Address{}) {
		return "Not connected"
	}
	return "Wallet: " + ShortAddress(acct)
}

func currentAccount(s app.Screen) common.Address {
	switch s := s.(type) {
	case app.Loading:
		return s.Account
	case app.SelectingCharacter:
		return s.Account
	case app.Battling:
		return s.Account
	}
	return common.Address{}
}

// TokenCard renders decoded token metadata.
func TokenCard(meta *game.TokenMetadata, width int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", meta.Name)
	if meta.Description != "" {
		fmt.Fprintf(&b, "%s\n", meta.Description)
	}
	for _, a := range meta.Attributes {
		if a.MaxValue != 0 {
			fmt.Fprintf(&b, "%s: %d/%d\n", a.TraitType, a.Value, a.MaxValue)
		} else {
			fmt.Fprintf(&b, "%s: %d\n", a.TraitType, a.Value)
		}
	}
	b.WriteString(meta.Image)
	return Wrap(b.String(), width)
}
