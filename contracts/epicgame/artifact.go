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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

// ErrNoBytecode is returned when an artifact carries no deployable code
// (interfaces and abstract contracts compile to "0x").
var ErrNoBytecode = errors.New("epicgame: artifact has no bytecode")

// Artifact is a compiled contract as written by hardhat
// (artifacts/contracts/<Source>.sol/<Name>.json).
type Artifact struct {
	ContractName string
	ABI          abi.ABI
	Bytecode     []byte
}

type artifactJSON struct {
	ContractName string          `json:"contractName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     string          `json:"bytecode"`
}

// LoadArtifact reads a hardhat artifact file.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("epicgame: read artifact: %w", err)
	}
	return ParseArtifact(data)
}

// ParseArtifact decodes a hardhat artifact.
func ParseArtifact(data []byte) (*Artifact, error) {
	var raw artifactJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("epicgame: invalid artifact: %w", err)
	}
	parsed, err := abi.JSON(bytes.NewReader(raw.ABI))
	if err != nil {
		return nil, fmt.Errorf("epicgame: invalid artifact abi: %w", err)
	}
	code, err := hexutil.Decode(raw.Bytecode)
	if err != nil {
		return nil, fmt.Errorf("epicgame: invalid artifact bytecode: %w", err)
	}
	if len(code) == 0 {
		return nil, ErrNoBytecode
	}
	return &Artifact{
		ContractName: raw.ContractName,
		ABI:          parsed,
		Bytecode:     code,
	}, nil
}

// ConstructorArgs are the MyEpicGame constructor parameters: the default
// characters (parallel slices) and the boss.
type ConstructorArgs struct {
	CharacterNames     []string
	CharacterImageURIs []string
	CharacterHp        []*big.Int
	CharacterAttackDmg []*big.Int
	BossName           string
	BossImageURI       string
	BossHp             *big.Int
	BossAttackDamage   *big.Int
}

// Values returns the arguments in constructor order.
func (a *ConstructorArgs) Values() []interface{} {
	return []interface{}{
		a.CharacterNames,
		a.CharacterImageURIs,
		a.CharacterHp,
		a.CharacterAttackDmg,
		a.BossName,
		a.BossImageURI,
		a.BossHp,
		a.BossAttackDamage,
	}
}

// Deploy sends the contract creation transaction. The returned binding is
// usable once the transaction has been mined (see bind.WaitDeployed).
func (a *Artifact) Deploy(opts *bind.TransactOpts, backend bind.ContractBackend, args *ConstructorArgs) (common.Address, *types.Transaction, *MyEpicGame, error) {
	address, tx, _, err := bind.DeployContract(opts, a.ABI, a.Bytecode, backend, args.Values()...)
	if err != nil {
		return common.Address{}, nil, nil, err
	}
	return address, tx, a.Bind(opts, address, backend), nil
}

// Bind creates a transacting binding at addr using the artifact's ABI.
func (a *Artifact) Bind(opts *bind.TransactOpts, addr common.Address, backend bind.ContractBackend) *MyEpicGame {
	return bindMyEpicGame(a.ABI, opts, addr, backend)
}
