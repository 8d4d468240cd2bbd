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
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/log"
	"github.com/metaverseslayer/slayer/game"
)

// Step is one action of a Script run against a fresh deployment.
type Step interface {
	Name() string
	Run(ctx context.Context, b game.Backend) (string, error)
}

// MintStep mints the default character at Index.
type MintStep struct{ Index int64 }

func (s MintStep) Name() string { return fmt.Sprintf("mint(%d)", s.Index) }

func (s MintStep) Run(ctx context.Context, b game.Backend) (string, error) {
	hash, err := b.Mint(ctx, s.Index)
	return hash.Hex(), err
}

// AttackStep attacks the boss once.
type AttackStep struct{}

func (AttackStep) Name() string { return "attack" }

func (AttackStep) Run(ctx context.Context, b game.Backend) (string, error) {
	hash, err := b.Attack(ctx)
	return hash.Hex(), err
}

// TokenURIStep reads the metadata URI of TokenID.
type TokenURIStep struct{ TokenID int64 }

func (s TokenURIStep) Name() string { return fmt.Sprintf("tokenURI(%d)", s.TokenID) }

func (s TokenURIStep) Run(ctx context.Context, b game.Backend) (string, error) {
	return b.TokenURI(ctx, big.NewInt(s.TokenID))
}

// Script runs steps in order and stops at the first failure.
type Script struct {
	steps []Step
}

// NewScript creates a script of the given steps.
func NewScript(steps ...Step) *Script {
	return &Script{steps: steps}
}

// DemoScript mints Pikachu, attacks the boss twice and reads the first
// token's metadata.
func DemoScript() *Script {
	return NewScript(MintStep{Index: 2}, AttackStep{}, AttackStep{}, TokenURIStep{TokenID: 1})
}

// Steps returns the steps of the script.
func (s *Script) Steps() []Step {
	return s.steps
}

// Run executes the script and returns the output of the last step.
func (s *Script) Run(ctx context.Context, b game.Backend) (string, error) {
	var out string
	for i, step := range s.steps {
		res, err := step.Run(ctx, b)
		if err != nil {
			return "", fmt.Errorf("deploy: step %d %s: %w", i, step.Name(), err)
		}
		log.Info("Demo step done", "step", step.Name(), "result", res)
		out = res
	}
	return out, nil
}
