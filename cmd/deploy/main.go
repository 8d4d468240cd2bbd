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

// deploy publishes MyEpicGame with the default roster and boss, then plays
// a short demo against the fresh contract: mint Pikachu, attack the boss
// twice and print the metadata of token 1.
//
// Usage:
//   deploy --network rinkeby --artifact <MyEpicGame.json> [--no-demo]
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/log"
	"github.com/metaverseslayer/slayer/contracts/epicgame"
	"github.com/metaverseslayer/slayer/deploy"
	"github.com/metaverseslayer/slayer/game"
	"github.com/metaverseslayer/slayer/params"
	"github.com/metaverseslayer/slayer/wallet"
	cli "gopkg.in/urfave/cli.v1"
)

const defaultArtifact = "artifacts/contracts/MyEpicGame.sol/MyEpicGame.json"

var (
	app = cli.NewApp()

	// Flags
	networkFlag = cli.StringFlag{
		Name:  "network",
		Usage: fmt.Sprintf("Network to deploy to %v", params.NetworkNames()),
		Value: params.TestNetwork.Name,
	}
	rpcFlag = cli.StringFlag{
		Name:  "rpc",
		Usage: "Node endpoint, overrides the URL of the network profile",
	}
	contractFlag = cli.StringFlag{
		Name:  "contract",
		Usage: "Skip deployment and run the demo against this contract",
	}
	keystoreFlag = cli.StringFlag{
		Name:  "keystore",
		Usage: "Keystore directory holding the deployer key instead of PRIVATE_KEY",
	}
	accountFlag = cli.StringFlag{
		Name:  "account",
		Usage: "Keystore account to deploy from (default: first account)",
	}
	envFileFlag = cli.StringFlag{
		Name:  "envfile",
		Usage: "Environment file with node URLs and keys",
		Value: params.DefaultEnvFile,
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=trace",
		Value: 3,
	}
	logFileFlag = cli.StringFlag{
		Name:  "logfile",
		Usage: "Write logs to this file instead of stderr",
	}
	artifactFlag = cli.StringFlag{
		Name:  "artifact",
		Usage: "Hardhat artifact of MyEpicGame",
		Value: defaultArtifact,
	}
	noDemoFlag = cli.BoolFlag{
		Name:  "no-demo",
		Usage: "Only deploy, skip the mint and attack demo",
	}
)

func init() {
	app.Name = "deploy"
	app.Usage = "Deploy the Metaverse Slayer game contract"
	app.Version = "0.1.0"
	app.Action = run
	app.Flags = []cli.Flag{
		networkFlag,
		rpcFlag,
		contractFlag,
		keystoreFlag,
		accountFlag,
		envFileFlag,
		verbosityFlag,
		logFileFlag,
		artifactFlag,
		noDemoFlag,
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		log.Error("Deployment failed", "err", err)
		os.Exit(1)
	}
}

func setupLogging(ctx *cli.Context) error {
	handler := log.StreamHandler(os.Stderr, log.TerminalFormat(true))
	if ctx.IsSet(logFileFlag.Name) {
		h, err := log.FileHandler(ctx.String(logFileFlag.Name), log.TerminalFormat(false))
		if err != nil {
			return err
		}
		handler = log.MultiHandler(handler, h)
	}
	log.Root().SetHandler(log.LvlFilterHandler(log.Lvl(ctx.Int(verbosityFlag.Name)), handler))
	return nil
}

func loadProfile(ctx *cli.Context) (*params.Profile, error) {
	env, err := params.LoadEnv(ctx.String(envFileFlag.Name))
	if err != nil {
		return nil, err
	}
	profile, err := env.Profile(ctx.String(networkFlag.Name))
	if err != nil {
		return nil, err
	}
	if ctx.IsSet(rpcFlag.Name) {
		profile.URL = ctx.String(rpcFlag.Name)
	}
	if ctx.IsSet(contractFlag.Name) {
		addr := ctx.String(contractFlag.Name)
		if !common.IsHexAddress(addr) {
			return nil, fmt.Errorf("invalid --contract %q", addr)
		}
		profile.Contract = common.HexToAddress(addr)
	}
	// The deployer signs with PRIVATE_KEY unless a keystore is given.
	if err := profile.Validate(!ctx.IsSet(keystoreFlag.Name)); err != nil {
		return nil, err
	}
	return profile, nil
}

func signer(ctx *cli.Context, profile *params.Profile, eth *ethclient.Client) (wallet.Provider, error) {
	if !ctx.IsSet(keystoreFlag.Name) {
		return wallet.NewKeyProvider(profile.PrivateKey, eth)
	}
	var preferred common.Address
	if ctx.IsSet(accountFlag.Name) {
		addr := ctx.String(accountFlag.Name)
		if !common.IsHexAddress(addr) {
			return nil, fmt.Errorf("invalid --account %q", addr)
		}
		preferred = common.HexToAddress(addr)
	}
	ks := keystore.NewKeyStore(ctx.String(keystoreFlag.Name), keystore.StandardScryptN, keystore.StandardScryptP)
	return wallet.NewKeystoreProvider(ks, eth, wallet.StdinPassphrase, preferred), nil
}

func run(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}
	profile, err := loadProfile(ctx)
	if err != nil {
		return err
	}
	cctx := context.Background()

	eth, err := ethclient.DialContext(cctx, profile.URL)
	if err != nil {
		return fmt.Errorf("dial %s: %w", profile.Network.Name, err)
	}
	defer eth.Close()

	w, err := signer(ctx, profile, eth)
	if err != nil {
		return err
	}
	accounts, err := w.RequestAccounts(cctx)
	if err != nil {
		return err
	}
	if len(accounts) == 0 {
		return wallet.ErrNoAccounts
	}
	deployer := accounts[0]
	opts, err := w.Transactor(deployer, profile.Network.BigChainID())
	if err != nil {
		return err
	}
	log.Info("Deploying", "network", profile.Network.Name, "deployer", deployer)

	var backend game.Backend
	if ctx.IsSet(contractFlag.Name) {
		binder := game.NewEthereumBinder(eth, w, profile.Contract, profile.Network.BigChainID())
		if backend, err = binder.Bind(cctx, deployer); err != nil {
			return err
		}
		log.Info("Using existing contract", "contract", profile.Contract)
	} else {
		artifact, err := epicgame.LoadArtifact(ctx.String(artifactFlag.Name))
		if err != nil {
			return err
		}
		res, err := deploy.Deploy(cctx, opts, eth, artifact, deploy.DefaultDeployment())
		if err != nil {
			return err
		}
		fmt.Println("Contract deployed to:", res.Address.Hex())
		backend = res.Backend
	}
	defer backend.Close()

	if ctx.Bool(noDemoFlag.Name) {
		return nil
	}
	uri, err := deploy.DemoScript().Run(cctx, backend)
	if err != nil {
		if errors.Is(err, game.ErrTxFailed) {
			log.Warn("A demo transaction reverted; the contract may already hold a hero for the deployer")
		}
		return err
	}
	fmt.Println("Token URI:", uri)
	return nil
}
