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
// Package wallet stands in for a browser wallet extension: it holds the
// user's accounts, authorizes them on request, reports the network the
// node is on and signs transactions for authorized accounts.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// Errors returned by wallet providers.
var (
	ErrNoAccounts      = errors.New("wallet: no accounts available")
	ErrNotAuthorized   = errors.New("wallet: account not authorized")
	ErrNoNetworkReader = errors.New("wallet: no node connection to read the network from")
)

// Provider is the wallet surface the client relies on.
type Provider interface {
	// Accounts returns the accounts already authorized for this client
	// (eth_accounts). It never prompts.
	Accounts(ctx context.Context) ([]common.Address, error)

	// RequestAccounts asks the user to authorize accounts
	// (eth_requestAccounts) and returns them.
	RequestAccounts(ctx context.Context) ([]common.Address, error)

	// NetworkVersion returns the decimal network id of the connected node.
	NetworkVersion(ctx context.Context) (string, error)

	// Transactor returns a signer for an authorized account.
	Transactor(account common.Address, chainID *big.Int) (*bind.TransactOpts, error)
}

// NetworkReader reports the network id of a node. *ethclient.Client
// satisfies it.
type NetworkReader interface {
	NetworkID(ctx context.Context) (*big.Int, error)
}

func readNetworkVersion(ctx context.Context, r NetworkReader) (string, error) {
	if r == nil {
		return "", ErrNoNetworkReader
	}
	id, err := r.NetworkID(ctx)
	if err != nil {
		return "", fmt.Errorf("wallet: network id: %w", err)
	}
	return id.String(), nil
}
