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
package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// KeyProvider is a wallet holding one raw private key, as configured for
// deployment through PRIVATE_KEY. Its account is authorized from the start.
type KeyProvider struct {
	key     *ecdsa.PrivateKey
	address common.Address
	net     NetworkReader
}

// NewKeyProvider parses a hex private key, with or without 0x prefix.
func NewKeyProvider(hexkey string, net NetworkReader) (*KeyProvider, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexkey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("wallet: invalid private key: %w", err)
	}
	return &KeyProvider{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		net:     net,
	}, nil
}

// Address returns the account of the key.
func (p *KeyProvider) Address() common.Address { return p.address }

func (p *KeyProvider) Accounts(ctx context.Context) ([]common.Address, error) {
	return []common.Address{p.address}, nil
}

func (p *KeyProvider) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	return []common.Address{p.address}, nil
}

func (p *KeyProvider) NetworkVersion(ctx context.Context) (string, error) {
	return readNetworkVersion(ctx, p.net)
}

func (p *KeyProvider) Transactor(account common.Address, chainID *big.Int) (*bind.TransactOpts, error) {
	if account != p.address {
		return nil, fmt.Errorf("%w: %s", ErrNotAuthorized, account.Hex())
	}
	return bind.NewKeyedTransactorWithChainID(p.key, chainID)
}
