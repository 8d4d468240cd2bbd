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
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/console/prompt"
)

// PassphraseFunc supplies the passphrase unlocking account.
type PassphraseFunc func(account common.Address) (string, error)

// StdinPassphrase prompts for the passphrase on the terminal.
func StdinPassphrase(account common.Address) (string, error) {
	return prompt.Stdin.PromptPassword(fmt.Sprintf("Passphrase for %s: ", account.Hex()))
}

// KeystoreProvider is a wallet over an encrypted keystore directory.
// Accounts become authorized once unlocked through RequestAccounts.
type KeystoreProvider struct {
	ks         *keystore.KeyStore
	net        NetworkReader
	passphrase PassphraseFunc
	preferred  common.Address // zero: first keystore account

	mu         sync.Mutex
	authorized []common.Address
}

// NewKeystoreProvider creates a provider over ks. If preferred is non-zero
// that account is the one RequestAccounts unlocks.
func NewKeystoreProvider(ks *keystore.KeyStore, net NetworkReader, passphrase PassphraseFunc, preferred common.Address) *KeystoreProvider {
	return &KeystoreProvider{ks: ks, net: net, passphrase: passphrase, preferred: preferred}
}

// SetPassphraseFunc replaces the passphrase source.
func (p *KeystoreProvider) SetPassphraseFunc(fn PassphraseFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.passphrase = fn
}

func (p *KeystoreProvider) Accounts(ctx context.Context) ([]common.Address, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]common.Address(nil), p.authorized...), nil
}

func (p *KeystoreProvider) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	account, err := p.pick()
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	passphrase := p.passphrase
	p.mu.Unlock()

	pass, err := passphrase(account.Address)
	if err != nil {
		return nil, fmt.Errorf("wallet: reading passphrase: %w", err)
	}
	if err := p.ks.Unlock(account, pass); err != nil {
		return nil, fmt.Errorf("wallet: unlocking %s: %w", account.Address.Hex(), err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.isAuthorized(account.Address) {
		p.authorized = append(p.authorized, account.Address)
	}
	return append([]common.Address(nil), p.authorized...), nil
}

func (p *KeystoreProvider) pick() (accounts.Account, error) {
	all := p.ks.Accounts()
	if len(all) == 0 {
		return accounts.Account{}, ErrNoAccounts
	}
	if p.preferred == (common.Address{}) {
		return all[0], nil
	}
	for _, a := range all {
		if a.Address == p.preferred {
			return a, nil
		}
	}
	return accounts.Account{}, fmt.Errorf("%w: %s not in keystore", ErrNoAccounts, p.preferred.Hex())
}

func (p *KeystoreProvider) isAuthorized(addr common.Address) bool {
	for _, a := range p.authorized {
		if a == addr {
			return true
		}
	}
	return false
}

func (p *KeystoreProvider) NetworkVersion(ctx context.Context) (string, error) {
	return readNetworkVersion(ctx, p.net)
}

func (p *KeystoreProvider) Transactor(account common.Address, chainID *big.Int) (*bind.TransactOpts, error) {
	p.mu.Lock()
	ok := p.isAuthorized(account)
	p.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotAuthorized, account.Hex())
	}
	return bind.NewKeyStoreTransactorWithChainID(p.ks, accounts.Account{Address: account}, chainID)
}
