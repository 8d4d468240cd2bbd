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
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/cmd/utils"
	"github.com/ethereum/go-ethereum/log"
	slayer "github.com/metaverseslayer/slayer/app"
	"github.com/metaverseslayer/slayer/game"
	"github.com/metaverseslayer/slayer/ui"
	cli "gopkg.in/urfave/cli.v1"
)

// mintTimeout bounds the wait for the battle screen after a mint is mined.
const mintTimeout = 2 * time.Minute

func newApp(c *client) *slayer.App {
	cfg := slayer.Config{Binder: c.binder(), Network: c.profile.Network}
	if c.wallet != nil {
		cfg.Wallet = c.wallet
	}
	return slayer.New(cfg)
}

// connect starts a and authorizes an account if none is yet.
func connect(ctx context.Context, a *slayer.App) error {
	if err := a.Start(ctx); err != nil {
		return err
	}
	if a.Screen().Kind() != slayer.KindDisconnected {
		return nil
	}
	return a.ConnectWallet(ctx)
}

func playCmd(ctx *cli.Context) error {
	if err := setupLogging(ctx, true); err != nil {
		utils.Fatalf("Failed to set up logging: %v", err)
	}
	c, err := dial(context.Background(), ctx)
	if err != nil {
		utils.Fatalf("%v", err)
	}
	defer c.Close()

	a := newApp(c)
	u := ui.New(a, c.wallet, ui.Config{AskPassphrase: c.keystore != nil})
	if c.keystore != nil {
		c.keystore.SetPassphraseFunc(u.Passphrase)
	}
	log.Info("Game UI starting", "network", c.profile.Network.Name, "contract", c.profile.Contract)
	return u.Run(context.Background())
}

func statusCmd(ctx *cli.Context) error {
	if err := setupLogging(ctx, false); err != nil {
		return err
	}
	cctx := context.Background()
	c, err := dial(cctx, ctx)
	if err != nil {
		utils.Fatalf("%v", err)
	}
	defer c.Close()

	if c.wallet != nil {
		a := newApp(c)
		a.CheckNetwork(cctx)
	}
	reader, err := c.reader(cctx)
	if err != nil {
		return err
	}
	defer reader.Close()

	account := reader.Account()
	hero, err := reader.OwnedCharacter(cctx)
	if err != nil {
		return err
	}
	kind, err := c.screenKind(cctx, hero != nil)
	if err != nil {
		return err
	}
	fmt.Printf("Account: %s\n", account.Hex())
	fmt.Printf("Screen:  %s\n", kind)
	if hero != nil {
		if id, err := reader.HeldToken(cctx); err == nil {
			fmt.Printf("Token:   #%s\n", id)
		}
		fmt.Println(ui.CharacterCard(*hero, ui.DefaultWidth))
	}
	return nil
}

// screenKind is the screen the game would open on. A configured wallet that
// has not granted an account yet still shows the connect screen.
func (c *client) screenKind(ctx context.Context, hasNFT bool) (slayer.Kind, error) {
	hasAccount, err := c.authorized(ctx)
	if err != nil {
		return slayer.KindLoading, err
	}
	return slayer.SelectKind(hasAccount, hasNFT, false), nil
}

func charactersCmd(ctx *cli.Context) error {
	if err := setupLogging(ctx, false); err != nil {
		return err
	}
	cctx := context.Background()
	c, err := dial(cctx, ctx)
	if err != nil {
		utils.Fatalf("%v", err)
	}
	defer c.Close()

	reader, err := c.reader(cctx)
	if err != nil {
		return err
	}
	defer reader.Close()

	roster, err := reader.Characters(cctx)
	if err != nil {
		return err
	}
	for _, ch := range roster {
		fmt.Printf("#%d %s\n\n", ch.Index, ui.CharacterCard(ch, ui.DefaultWidth))
	}
	return nil
}

func bossCmd(ctx *cli.Context) error {
	if err := setupLogging(ctx, false); err != nil {
		return err
	}
	cctx := context.Background()
	c, err := dial(cctx, ctx)
	if err != nil {
		utils.Fatalf("%v", err)
	}
	defer c.Close()

	reader, err := c.reader(cctx)
	if err != nil {
		return err
	}
	defer reader.Close()

	boss, err := reader.Boss(cctx)
	if err != nil {
		return err
	}
	fmt.Println(ui.BossCard(boss, ui.DefaultWidth))
	return nil
}

func tokenURICmd(ctx *cli.Context) error {
	if err := setupLogging(ctx, false); err != nil {
		return err
	}
	if ctx.NArg() != 1 {
		utils.Fatalf("Usage: slayer tokenuri <token id>")
	}
	id, ok := new(big.Int).SetString(ctx.Args().First(), 10)
	if !ok || id.Sign() < 0 {
		utils.Fatalf("Invalid token id %q", ctx.Args().First())
	}
	cctx := context.Background()
	c, err := dial(cctx, ctx)
	if err != nil {
		utils.Fatalf("%v", err)
	}
	defer c.Close()

	reader, err := c.reader(cctx)
	if err != nil {
		return err
	}
	defer reader.Close()

	uri, err := reader.TokenURI(cctx, id)
	if err != nil {
		return err
	}
	fmt.Println("Token URI:", uri)
	meta, err := game.ParseTokenURI(uri)
	if err != nil {
		if !errors.Is(err, game.ErrUnsupportedTokenURI) {
			log.Warn("Token metadata is malformed", "err", err)
		}
		return nil
	}
	fmt.Println(ui.TokenCard(meta, 80))
	return nil
}

func mintCmd(ctx *cli.Context) error {
	if err := setupLogging(ctx, false); err != nil {
		return err
	}
	if ctx.NArg() != 1 {
		utils.Fatalf("Usage: slayer mint <character index>")
	}
	index, err := strconv.Atoi(ctx.Args().First())
	if err != nil {
		utils.Fatalf("Invalid character index %q", ctx.Args().First())
	}
	cctx := context.Background()
	c, err := dial(cctx, ctx)
	if err != nil {
		utils.Fatalf("%v", err)
	}
	defer c.Close()

	a := newApp(c)
	defer a.Close()
	if err := connect(cctx, a); err != nil {
		return err
	}
	hash, err := a.Mint(cctx, index)
	if err != nil {
		return err
	}
	fmt.Println("Mint transaction:", hash.Hex())

	wctx, cancel := context.WithTimeout(cctx, mintTimeout)
	defer cancel()
	screen, err := a.WaitFor(wctx, slayer.KindBattling)
	if err != nil {
		return fmt.Errorf("hero not visible after mint: %w", err)
	}
	fmt.Println(ui.CharacterCard(screen.(slayer.Battling).Hero, ui.DefaultWidth))
	return nil
}

func attackCmd(ctx *cli.Context) error {
	if err := setupLogging(ctx, false); err != nil {
		return err
	}
	cctx := context.Background()
	c, err := dial(cctx, ctx)
	if err != nil {
		utils.Fatalf("%v", err)
	}
	defer c.Close()

	a := newApp(c)
	defer a.Close()
	if err := connect(cctx, a); err != nil {
		return err
	}
	hash, err := a.Attack(cctx)
	if errors.Is(err, slayer.ErrWrongScreen) {
		return errors.New("the account has no hero yet, mint one first")
	}
	if err != nil {
		return err
	}
	fmt.Println("Attack transaction:", hash.Hex())

	b, ok := a.Screen().(slayer.Battling)
	if !ok {
		return nil
	}
	fmt.Println(ui.BossCard(b.Boss, ui.DefaultWidth))
	fmt.Println()
	fmt.Println(ui.CharacterCard(b.Hero, ui.DefaultWidth))
	return nil
}

func accountsCmd(ctx *cli.Context) error {
	if err := setupLogging(ctx, false); err != nil {
		return err
	}
	cctx := context.Background()
	c, err := dial(cctx, ctx)
	if err != nil {
		utils.Fatalf("%v", err)
	}
	defer c.Close()

	switch {
	case c.ks != nil:
		for _, acc := range c.ks.Accounts() {
			fmt.Println(acc.Address.Hex())
		}
	case c.wallet != nil:
		accounts, err := c.wallet.Accounts(cctx)
		if err != nil {
			return err
		}
		for _, acc := range accounts {
			fmt.Println(acc.Hex())
		}
	default:
		utils.Fatalf("No wallet configured: set PRIVATE_KEY or --keystore")
	}
	return nil
}
