// Copyright 2018 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/log"
	"github.com/metaverseslayer/slayer/contracts/epicgame"
	"github.com/metaverseslayer/slayer/game"
	"github.com/metaverseslayer/slayer/params"
	"github.com/metaverseslayer/slayer/wallet"
	cli "gopkg.in/urfave/cli.v1"
)

// setupLogging installs the root log handler. The game UI owns the
// terminal, so it only logs to --logfile.
func setupLogging(ctx *cli.Context, tui bool) error {
	lvl := log.Lvl(ctx.GlobalInt(verbosityFlag.Name))

	var handler log.Handler
	switch {
	case ctx.GlobalIsSet(logFileFlag.Name):
		h, err := log.FileHandler(ctx.GlobalString(logFileFlag.Name), log.TerminalFormat(false))
		if err != nil {
			return err
		}
		handler = h
	case tui:
		handler = log.DiscardHandler()
	default:
		handler = log.StreamHandler(os.Stderr, log.TerminalFormat(true))
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, handler))
	return nil
}

// loadProfile reads the environment and applies flag overrides.
func loadProfile(ctx *cli.Context) (*params.Profile, error) {
	env, err := params.LoadEnv(ctx.GlobalString(envFileFlag.Name))
	if err != nil {
		return nil, err
	}
	profile, err := env.Profile(ctx.GlobalString(networkFlag.Name))
	if err != nil {
		return nil, err
	}
	if ctx.GlobalIsSet(rpcFlag.Name) {
		profile.URL = ctx.GlobalString(rpcFlag.Name)
	}
	if ctx.GlobalIsSet(contractFlag.Name) {
		addr := ctx.GlobalString(contractFlag.Name)
		if !common.IsHexAddress(addr) {
			return nil, fmt.Errorf("invalid --contract %q", addr)
		}
		profile.Contract = common.HexToAddress(addr)
	}
	if err := profile.Validate(false); err != nil {
		return nil, err
	}
	return profile, nil
}

// client bundles what every subcommand needs.
type client struct {
	profile  *params.Profile
	eth      *ethclient.Client
	wallet   wallet.Provider // nil: no wallet configured
	keystore *wallet.KeystoreProvider
	ks       *keystore.KeyStore

	preferred common.Address // --account, zero if unset
}

func dial(cctx context.Context, ctx *cli.Context) (*client, error) {
	profile, err := loadProfile(ctx)
	if err != nil {
		return nil, err
	}
	eth, err := ethclient.DialContext(cctx, profile.URL)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", profile.Network.Name, err)
	}
	c := &client{profile: profile, eth: eth}

	switch {
	case ctx.GlobalIsSet(keystoreFlag.Name):
		if ctx.GlobalIsSet(accountFlag.Name) {
			addr := ctx.GlobalString(accountFlag.Name)
			if !common.IsHexAddress(addr) {
				eth.Close()
				return nil, fmt.Errorf("invalid --account %q", addr)
			}
			c.preferred = common.HexToAddress(addr)
		}
		c.ks = keystore.NewKeyStore(ctx.GlobalString(keystoreFlag.Name), keystore.StandardScryptN, keystore.StandardScryptP)
		c.keystore = wallet.NewKeystoreProvider(c.ks, eth, wallet.StdinPassphrase, c.preferred)
		c.wallet = c.keystore

	case profile.PrivateKey != "":
		kp, err := wallet.NewKeyProvider(profile.PrivateKey, eth)
		if err != nil {
			eth.Close()
			return nil, err
		}
		c.wallet = kp
	}
	log.Debug("Connected to node", "network", profile.Network.Name, "contract", profile.Contract)
	return c, nil
}

func (c *client) Close() {
	c.eth.Close()
}

func (c *client) binder() *game.EthereumBinder {
	return game.NewEthereumBinder(c.eth, c.wallet, c.profile.Contract, c.profile.Network.BigChainID())
}

// readAccount is the account read-only calls are made from, without
// unlocking anything: the authorized account, then --account, then the
// first keystore account.
func (c *client) readAccount(ctx context.Context) (common.Address, error) {
	if c.wallet == nil {
		return common.Address{}, nil
	}
	accounts, err := c.wallet.Accounts(ctx)
	if err != nil {
		return common.Address{}, err
	}
	switch {
	case len(accounts) > 0:
		return accounts[0], nil
	case c.preferred != (common.Address{}):
		return c.preferred, nil
	case c.ks != nil && len(c.ks.Accounts()) > 0:
		return c.ks.Accounts()[0].Address, nil
	}
	return common.Address{}, nil
}

// authorized reports whether the wallet has already granted an account,
// the condition the game uses to leave the connect screen.
func (c *client) authorized(ctx context.Context) (bool, error) {
	if c.wallet == nil {
		return false, nil
	}
	accounts, err := c.wallet.Accounts(ctx)
	if err != nil {
		return false, err
	}
	return len(accounts) > 0, nil
}

// reader returns a read-only backend.
func (c *client) reader(ctx context.Context) (*game.EthereumBackend, error) {
	account, err := c.readAccount(ctx)
	if err != nil {
		return nil, err
	}
	nft, err := epicgame.NewMyEpicGameCaller(c.profile.Contract, c.eth)
	if err != nil {
		return nil, err
	}
	return game.NewEthereumBackend(c.eth, nft, account), nil
}
