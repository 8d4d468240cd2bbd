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

// slayer is the terminal client of Metaverse Slayer.
//
// Without a subcommand it opens the game UI. The subcommands run one action
// against the contract and print the result.
//
// Usage:
//   slayer [--network rinkeby] [--keystore <dir> [--account <address>]] [command] [args]
package main

import (
	"fmt"
	"os"

	"github.com/metaverseslayer/slayer/params"
	cli "gopkg.in/urfave/cli.v1"
)

var (
	app = cli.NewApp()

	// Flags
	networkFlag = cli.StringFlag{
		Name:  "network",
		Usage: fmt.Sprintf("Network profile to use %v", params.NetworkNames()),
		Value: params.TestNetwork.Name,
	}
	rpcFlag = cli.StringFlag{
		Name:  "rpc",
		Usage: "Node endpoint, overrides the URL of the network profile (ws:// enables live events)",
	}
	contractFlag = cli.StringFlag{
		Name:  "contract",
		Usage: "MyEpicGame contract address (default: CONTRACT_ADDRESS or the deployed game)",
	}
	keystoreFlag = cli.StringFlag{
		Name:  "keystore",
		Usage: "Keystore directory to use as wallet instead of PRIVATE_KEY",
	}
	accountFlag = cli.StringFlag{
		Name:  "account",
		Usage: "Keystore account to play with (default: first account)",
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
		Usage: "Write logs to this file (the game UI discards logs otherwise)",
	}
)

func init() {
	app.Name = "slayer"
	app.Usage = "Team up to protect the Metaverse!"
	app.Version = "0.1.0"
	app.Action = playCmd
	app.Flags = []cli.Flag{
		networkFlag,
		rpcFlag,
		contractFlag,
		keystoreFlag,
		accountFlag,
		envFileFlag,
		verbosityFlag,
		logFileFlag,
	}
	app.Commands = []cli.Command{
		{
			Name:   "play",
			Usage:  "Open the game UI",
			Action: playCmd,
		},
		{
			Name:   "status",
			Usage:  "Show the screen the account would land on",
			Action: statusCmd,
		},
		{
			Name:   "characters",
			Usage:  "List the characters that can be minted",
			Action: charactersCmd,
		},
		{
			Name:      "mint",
			Usage:     "Mint a hero NFT",
			ArgsUsage: "<character index>",
			Action:    mintCmd,
		},
		{
			Name:   "attack",
			Usage:  "Attack the boss with your hero",
			Action: attackCmd,
		},
		{
			Name:   "boss",
			Usage:  "Show the boss",
			Action: bossCmd,
		},
		{
			Name:      "tokenuri",
			Usage:     "Print the metadata of a hero NFT",
			ArgsUsage: "<token id>",
			Action:    tokenURICmd,
		},
		{
			Name:   "accounts",
			Usage:  "Print the list of wallet accounts",
			Action: accountsCmd,
		},
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
