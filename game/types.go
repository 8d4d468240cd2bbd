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

// Package game defines the client-side model of the MyEpicGame contract.
// All game rules (damage, death, boss hp) live on-chain; this package only
// projects contract data into plain Go values and exposes the calls the
// client needs through the Backend interface.
package game

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/metaverseslayer/slayer/contracts/epicgame"
)

// ErrValueOverflow is returned when an on-chain integer does not fit the
// client representation.
var ErrValueOverflow = errors.New("game: on-chain value overflows int64")

// Character is a hero NFT or one of the mintable default characters.
type Character struct {
	Index        int64  `json:"characterIndex"`
	Name         string `json:"name"`
	ImageURI     string `json:"imageURI"`
	HP           int64  `json:"hp"`
	MaxHP        int64  `json:"maxHp"`
	AttackDamage int64  `json:"attackDamage"`
}

// Alive reports whether the character can still fight.
func (c Character) Alive() bool { return c.HP > 0 }

// Boss is the NPC every hero attacks.
type Boss struct {
	Name         string `json:"name"`
	ImageURI     string `json:"imageURI"`
	HP           int64  `json:"hp"`
	MaxHP        int64  `json:"maxHp"`
	AttackDamage int64  `json:"attackDamage"`
}

// Alive reports whether the boss has hp left.
func (b Boss) Alive() bool { return b.HP > 0 }

// toInt64 coerces an on-chain integer. A nil value is treated as zero, as the
// contract returns zeroed structs for missing records.
func toInt64(field string, v *big.Int) (int64, error) {
	if v == nil {
		return 0, nil
	}
	if !v.IsInt64() {
		return 0, fmt.Errorf("%w: %s=%s", ErrValueOverflow, field, v)
	}
	return v.Int64(), nil
}

// toUint64 is toInt64 for unsigned quantities such as token ids.
func toUint64(field string, v *big.Int) (uint64, error) {
	if v == nil {
		return 0, nil
	}
	if !v.IsUint64() {
		return 0, fmt.Errorf("%w: %s=%s", ErrValueOverflow, field, v)
	}
	return v.Uint64(), nil
}

// NewCharacter projects a contract character record. Name and image are
// passed through unchanged; the numeric fields become plain integers.
func NewCharacter(raw *epicgame.CharacterAttributes) (Character, error) {
	var (
		c   = Character{Name: raw.Name, ImageURI: raw.ImageURI}
		err error
	)
	if c.Index, err = toInt64("characterIndex", raw.CharacterIndex); err != nil {
		return Character{}, err
	}
	if c.HP, err = toInt64("hp", raw.Hp); err != nil {
		return Character{}, err
	}
	if c.MaxHP, err = toInt64("maxHp", raw.MaxHp); err != nil {
		return Character{}, err
	}
	if c.AttackDamage, err = toInt64("attackDamage", raw.AttackDamage); err != nil {
		return Character{}, err
	}
	return c, nil
}

// NewBoss projects the contract boss record.
func NewBoss(raw *epicgame.BigBoss) (Boss, error) {
	var (
		b   = Boss{Name: raw.Name, ImageURI: raw.ImageURI}
		err error
	)
	if b.HP, err = toInt64("hp", raw.Hp); err != nil {
		return Boss{}, err
	}
	if b.MaxHP, err = toInt64("maxHp", raw.MaxHp); err != nil {
		return Boss{}, err
	}
	if b.AttackDamage, err = toInt64("attackDamage", raw.AttackDamage); err != nil {
		return Boss{}, err
	}
	return b, nil
}
