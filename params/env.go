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
package params

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is the untracked file holding node URLs and keys.
const DefaultEnvFile = ".env"

// Env is the environment configuration. Variable names follow the hardhat
// project this client was built against.
type Env struct {
	StagingURL string `env:"STAGING_ALCHEMY_KEY"`
	ProdURL    string `env:"PROD_ALCHEMY_KEY"`
	PrivateKey string `env:"PRIVATE_KEY"`
	Contract   string `env:"CONTRACT_ADDRESS"`
}

// LoadEnv loads the given .env files into the process environment (a
// missing file is not an error, existing variables win) and parses Env.
func LoadEnv(files ...string) (*Env, error) {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}
	cfg := new(Env)
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// URL returns the node URL configured for network.
func (e *Env) URL(network *Network) string {
	switch network.URLVar {
	case "STAGING_ALCHEMY_KEY":
		return e.StagingURL
	case "PROD_ALCHEMY_KEY":
		return e.ProdURL
	}
	return ""
}

// Profile assembles the profile of the named network.
func (e *Env) Profile(name string) (*Profile, error) {
	network, err := LookupNetwork(name)
	if err != nil {
		return nil, err
	}
	contract := DefaultContract
	if e.Contract != "" {
		if !common.IsHexAddress(e.Contract) {
			return nil, fmt.Errorf("invalid CONTRACT_ADDRESS %q", e.Contract)
		}
		contract = common.HexToAddress(e.Contract)
	}
	return &Profile{
		Network:    network,
		URL:        e.URL(network),
		PrivateKey: e.PrivateKey,
		Contract:   contract,
	}, nil
}
