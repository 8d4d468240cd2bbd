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

// Package deploy deploys MyEpicGame with the game's fixed roster and boss
// and runs the post-deployment demo.
package deploy

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
	"github.com/metaverseslayer/slayer/contracts/epicgame"
	"github.com/metaverseslayer/slayer/game"
	"github.com/pixil98/go-errors"
)

// Hero is one default character of a deployment.
type Hero struct {
	Name         string
	ImageURI     string
	HP           int64
	AttackDamage int64
}

// Deployment describes the constructor arguments of a game.
type Deployment struct {
	Heroes []Hero
	Boss   Hero
}

// DefaultDeployment is the roster and boss the game ships with.
func DefaultDeployment() *Deployment {
	return &Deployment{
		Heroes: []Hero{
			{Name: "Leo", ImageURI: "https://i.imgur.com/pKd5Sdk.png", HP: 100, AttackDamage: 100},
			{Name: "Aang", ImageURI: "https://i.imgur.com/xVu4vFL.png", HP: 200, AttackDamage: 50},
			{Name: "Pikachu", ImageURI: "https://i.imgur.com/WMB6g9u.png", HP: 300, AttackDamage: 25},
		},
		Boss: Hero{Name: "Elon Musk", ImageURI: "https://i.imgur.com/AksR0tt.png", HP: 10000, AttackDamage: 50},
	}
}

// Validate checks a single hero.
func (h *Hero) Validate() error {
	el := errors.NewErrorList()

	if h.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	if h.ImageURI == "" {
		el.Add(fmt.Errorf("image uri is required"))
	}
	if h.HP <= 0 {
		el.Add(fmt.Errorf("hp must be positive, got %d", h.HP))
	}
	if h.AttackDamage < 0 {
		el.Add(fmt.Errorf("attack damage must not be negative, got %d", h.AttackDamage))
	}

	return el.Err()
}

// Validate reports every problem with the deployment at once.
func (d *Deployment) Validate() error {
	el := errors.NewErrorList()

	if len(d.Heroes) == 0 {
		el.Add(fmt.Errorf("at least one hero is required"))
	}
	for i := range d.Heroes {
		if err := d.Heroes[i].Validate(); err != nil {
			el.Add(fmt.Errorf("hero %d: %w", i, err))
		}
	}
	if err := d.Boss.Validate(); err != nil {
		el.Add(fmt.Errorf("boss: %w", err))
	}

	return el.Err()
}

// Args converts the deployment into constructor arguments.
func (d *Deployment) Args() *epicgame.ConstructorArgs {
	args := &epicgame.ConstructorArgs{
		BossName:         d.Boss.Name,
		BossImageURI:     d.Boss.ImageURI,
		BossHp:           big.NewInt(d.Boss.HP),
		BossAttackDamage: big.NewInt(d.Boss.AttackDamage),
	}
	for _, h := range d.Heroes {
		args.CharacterNames = append(args.CharacterNames, h.Name)
		args.CharacterImageURIs = append(args.CharacterImageURIs, h.ImageURI)
		args.CharacterHp = append(args.CharacterHp, big.NewInt(h.HP))
		args.CharacterAttackDmg = append(args.CharacterAttackDmg, big.NewInt(h.AttackDamage))
	}
	return args
}

// Chain is the node connection deployment needs.
type Chain interface {
	bind.ContractBackend
	bind.DeployBackend
}

// Result is a mined deployment.
type Result struct {
	Address common.Address
	Tx      *types.Transaction
	Receipt *types.Receipt
	Backend *game.EthereumBackend
}

// Deploy validates d, sends the creation transaction and waits until the
// contract code is on chain. The returned backend is bound to the deployer.
func Deploy(ctx context.Context, opts *bind.TransactOpts, chain Chain, artifact *epicgame.Artifact, d *Deployment) (*Result, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("deploy: invalid deployment: %w", err)
	}
	deployOpts := *opts
	deployOpts.Context = ctx

	address, tx, nft, err := artifact.Deploy(&deployOpts, chain, d.Args())
	if err != nil {
		return nil, fmt.Errorf("deploy: %w", err)
	}
	log.Info("Deployment transaction sent", "contract", address, "tx", tx.Hash())

	if _, err := bind.WaitDeployed(ctx, chain, tx); err != nil {
		return nil, fmt.Errorf("deploy: waiting for %s: %w", tx.Hash().Hex(), err)
	}
	receipt, err := chain.TransactionReceipt(ctx, tx.Hash())
	if err != nil {
		return nil, fmt.Errorf("deploy: receipt: %w", err)
	}
	log.Info("Contract deployed", "contract", address, "block", receipt.BlockNumber, "gas", receipt.GasUsed, "cost", FormatEther(TxCost(receipt)))

	return &Result{
		Address: address,
		Tx:      tx,
		Receipt: receipt,
		Backend: game.NewEthereumBackend(chain, nft, opts.From),
	}, nil
}
