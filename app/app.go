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

// Package app holds the client state of the game and the flows that move it
// between screens:
//  1. Find (or request) an authorized wallet account
//  2. Bind the contract to that account
//  3. Battle with the owned hero, or pick a character to mint
//  4. Follow contract events while a screen is shown
//
// The App owns the contract binding for the current account and the event
// subscriptions of the current screen. Both are released when they are
// replaced, so no handler of a previous screen or account can update state.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"github.com/ethereum/go-ethereum/log"
	"github.com/metaverseslayer/slayer/game"
	"github.com/metaverseslayer/slayer/params"
	"github.com/metaverseslayer/slayer/wallet"
)

// Errors returned by App actions.
var (
	ErrNoWallet         = errors.New("app: no wallet available")
	ErrWrongScreen      = errors.New("app: action not available on this screen")
	ErrUnknownCharacter = errors.New("app: no such character")
	ErrMintInProgress   = errors.New("app: a mint is already in progress")
	ErrAttackInProgress = errors.New("app: an attack is already in progress")
)

// AlertNoWallet is raised when connecting without a wallet.
const AlertNoWallet = "Please install a wallet to play!"

// WrongNetworkAlert is raised when the wallet is not on network n.
func WrongNetworkAlert(n *params.Network) string {
	name := n.Name
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return fmt.Sprintf("Please connect to %s!", name)
}

// Config wires an App.
type Config struct {
	// Wallet is the user's wallet; nil when none is available.
	Wallet wallet.Provider

	// Binder acquires the contract binding for an account.
	Binder game.Binder

	// Network is the network wallets are expected to be on; nil skips the
	// check.
	Network *params.Network
}

// mount holds the subscriptions of the screen currently shown.
type mount struct {
	ctx    context.Context
	cancel context.CancelFunc
	scope  event.SubscriptionScope
}

// App is the client state machine.
type App struct {
	wallet  wallet.Provider
	binder  game.Binder
	network *params.Network

	screenFeed event.Feed
	alertFeed  event.Feed

	mu       sync.Mutex
	screen   Screen
	gen      uint64       // bumped whenever the binding is replaced
	backend  game.Backend // binding of the current account
	mounted  *mount
	pushless bool // mint events unavailable, poll after minting
}

// New creates an App on the Loading screen.
func New(cfg Config) *App {
	return &App{
		wallet:  cfg.Wallet,
		binder:  cfg.Binder,
		network: cfg.Network,
		screen:  Loading{},
	}
}

// Screen returns the current screen.
func (a *App) Screen() Screen {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.screen
}

// SubscribeScreens delivers a ScreenEvent on every screen change.
func (a *App) SubscribeScreens(ch chan<- ScreenEvent) event.Subscription {
	return a.screenFeed.Subscribe(ch)
}

// SubscribeAlerts delivers the alerts raised by App flows.
func (a *App) SubscribeAlerts(ch chan<- Alert) event.Subscription {
	return a.alertFeed.Subscribe(ch)
}

// WaitFor blocks until the screen is of the given kind.
func (a *App) WaitFor(ctx context.Context, kind Kind) (Screen, error) {
	ch := make(chan ScreenEvent, 16)
	sub := a.SubscribeScreens(ch)
	defer sub.Unsubscribe()

	if s := a.Screen(); s.Kind() == kind {
		return s, nil
	}
	for {
		select {
		case ev := <-ch:
			if ev.Screen.Kind() == kind {
				return ev.Screen, nil
			}
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func (a *App) notify() {
	a.screenFeed.Send(ScreenEvent{Screen: a.Screen()})
}

func (a *App) alert(msg string) {
	a.alertFeed.Send(Alert{Message: msg})
}

// set replaces the screen unconditionally.
func (a *App) set(s Screen) {
	a.mu.Lock()
	a.screen = s
	a.mu.Unlock()
	a.notify()
}

// mountLocked tears down the current screen's subscriptions and starts a
// fresh scope for the next screen.
func (a *App) mountLocked(ctx context.Context, cancel context.CancelFunc) *mount {
	a.unmountLocked()
	a.mounted = &mount{ctx: ctx, cancel: cancel}
	return a.mounted
}

func (a *App) unmountLocked() {
	if a.mounted == nil {
		return
	}
	a.mounted.scope.Close()
	a.mounted.cancel()
	a.mounted = nil
}

// releaseLocked drops the current binding and screen subscriptions. The
// returned backend must be closed by the caller outside the lock.
func (a *App) releaseLocked() game.Backend {
	a.unmountLocked()
	a.gen++
	old := a.backend
	a.backend = nil
	a.pushless = false
	return old
}

// ──────────────────────────────────────────────
//  Wallet connection
// ──────────────────────────────────────────────

// CheckNetwork alerts once if the wallet is not on the expected network.
func (a *App) CheckNetwork(ctx context.Context) bool {
	if a.wallet == nil || a.network == nil {
		return true
	}
	ok, err := wallet.CheckNetwork(ctx, a.wallet, a.network.Version(), func(got, want string) {
		log.Warn("Wallet is on the wrong network", "network", got, "want", want, "name", a.network.Name)
		a.alert(WrongNetworkAlert(a.network))
	})
	if err != nil {
		log.Error("Checking wallet network failed", "err", err)
	}
	return ok
}

// Start checks the wallet for an already-authorized account and, if there
// is one, binds it and loads its screen. Without a wallet or an account the
// app shows Disconnected.
func (a *App) Start(ctx context.Context) error {
	a.set(Loading{})

	if a.wallet == nil {
		log.Warn("No wallet found, install one to play")
		a.set(Disconnected{})
		return nil
	}
	a.CheckNetwork(ctx)

	accounts, err := a.wallet.Accounts(ctx)
	if err != nil {
		log.Error("Reading authorized accounts failed", "err", err)
		a.set(Disconnected{})
		return err
	}
	if len(accounts) == 0 {
		log.Info("No authorized account found")
		a.set(Disconnected{})
		return nil
	}
	log.Info("Found an authorized account", "account", accounts[0])
	return a.enter(ctx, accounts[0])
}

// ConnectWallet asks the wallet to authorize an account and loads its
// screen. It is not retried on failure.
func (a *App) ConnectWallet(ctx context.Context) error {
	if a.wallet == nil {
		a.alert(AlertNoWallet)
		return ErrNoWallet
	}
	accounts, err := a.wallet.RequestAccounts(ctx)
	if err != nil {
		log.Warn("Wallet authorization failed", "err", err)
		return err
	}
	if len(accounts) == 0 {
		log.Warn("Wallet authorized no account")
		return wallet.ErrNoAccounts
	}
	log.Info("Connected", "account", accounts[0])
	return a.enter(ctx, accounts[0])
}

// SwitchAccount releases the binding of the previous account and loads
// the screen of account.
func (a *App) SwitchAccount(ctx context.Context, account common.Address) error {
	log.Info("Account changed", "account", account)
	return a.enter(ctx, account)
}

// Close releases the binding and all subscriptions.
func (a *App) Close() {
	a.mu.Lock()
	old := a.releaseLocked()
	a.screen = Disconnected{}
	a.mu.Unlock()
	if old != nil {
		old.Close()
	}
	a.notify()
}

// ──────────────────────────────────────────────
//  Character acquisition
// ──────────────────────────────────────────────

// enter binds account and decides between the battle and the character
// selection screen.
func (a *App) enter(ctx context.Context, account common.Address) error {
	a.mu.Lock()
	old := a.releaseLocked()
	gen := a.gen
	a.screen = Loading{Account: account}
	a.mu.Unlock()
	if old != nil {
		old.Close()
	}
	a.notify()

	backend, err := a.binder.Bind(ctx, account)
	if err != nil {
		log.Error("Binding the game contract failed", "account", account, "err", err)
		a.abandon(gen, nil)
		return err
	}
	a.mu.Lock()
	if a.gen != gen {
		a.mu.Unlock()
		backend.Close()
		return nil
	}
	a.backend = backend
	a.mu.Unlock()

	hero, err := backend.OwnedCharacter(ctx)
	if err != nil {
		log.Error("Checking for an owned hero failed", "account", account, "err", err)
		a.abandon(gen, backend)
		return err
	}
	if hero != nil {
		log.Info("Account already owns a hero", "account", account, "hero", hero.Name)
		a.battle(ctx, backend, *hero, nil)
		return nil
	}
	log.Info("Account has no hero yet", "account", account)

	roster, err := backend.Characters(ctx)
	if err != nil {
		log.Warn("Fetching mintable characters failed", "err", err)
		roster = nil
	}
	a.selecting(ctx, backend, roster)
	return nil
}

// abandon falls back to Disconnected if generation gen is still current.
func (a *App) abandon(gen uint64, backend game.Backend) {
	a.mu.Lock()
	if a.gen != gen {
		a.mu.Unlock()
		return
	}
	a.releaseLocked()
	a.screen = Disconnected{}
	a.mu.Unlock()
	if backend != nil {
		backend.Close()
	}
	a.notify()
}

func (a *App) selecting(ctx context.Context, backend game.Backend, roster []game.Character) {
	mctx, cancel := context.WithCancel(context.Background())
	sink := make(chan *game.MintEvent, 16)
	sub, err := backend.SubscribeMinted(mctx, sink)

	a.mu.Lock()
	if a.backend != backend {
		a.mu.Unlock()
		if sub != nil {
			sub.Unsubscribe()
		}
		cancel()
		return
	}
	m := a.mountLocked(mctx, cancel)
	if err != nil {
		if errors.Is(err, game.ErrPushUnsupported) {
			log.Info("Node cannot push mint events, polling after mint")
		} else {
			log.Warn("Mint events unavailable, polling after mint", "err", err)
		}
		a.pushless = true
	} else {
		a.pushless = false
		m.scope.Track(sub)
		go a.watchMinted(m, backend, sink, sub)
	}
	a.screen = SelectingCharacter{Account: backend.Account(), Roster: roster}
	a.mu.Unlock()
	a.notify()
}

func (a *App) watchMinted(m *mount, backend game.Backend, sink <-chan *game.MintEvent, sub event.Subscription) {
	for {
		select {
		case ev := <-sink:
			if ev.Sender != backend.Account() {
				log.Debug("Ignoring mint of another player", "sender", ev.Sender, "tokenId", ev.TokenID)
				continue
			}
			log.Info("Character NFT minted", "sender", ev.Sender, "tokenId", ev.TokenID, "characterIndex", ev.CharacterIndex)
			a.adoptMintedHero(m, backend)

		case err := <-sub.Err():
			if err != nil {
				log.Warn("Mint event subscription failed", "err", err)
				a.mu.Lock()
				if a.mounted == m {
					a.pushless = true
				}
				a.mu.Unlock()
			}
			return
		}
	}
}

// adoptMintedHero re-queries ownership and moves to the battle if the
// selection screen m is still shown.
func (a *App) adoptMintedHero(m *mount, backend game.Backend) {
	hero, err := backend.OwnedCharacter(m.ctx)
	if err != nil {
		log.Warn("Reading minted hero failed", "err", err)
		return
	}
	if hero == nil {
		log.Warn("Minted hero not visible yet")
		return
	}
	a.battle(m.ctx, backend, *hero, m)
}

// Mint mints the character at position index of the roster and waits for
// the transaction to be mined. The battle screen follows from the mint
// event. On failure the error is logged and returned and the roster is
// left untouched.
func (a *App) Mint(ctx context.Context, index int) (common.Hash, error) {
	a.mu.Lock()
	sel, ok := a.screen.(SelectingCharacter)
	switch {
	case !ok:
		a.mu.Unlock()
		return common.Hash{}, ErrWrongScreen
	case sel.Minting:
		a.mu.Unlock()
		return common.Hash{}, ErrMintInProgress
	case index < 0 || index >= len(sel.Roster):
		a.mu.Unlock()
		return common.Hash{}, fmt.Errorf("%w: %d", ErrUnknownCharacter, index)
	}
	backend, m := a.backend, a.mounted
	sel.Minting = true
	a.screen = sel
	a.mu.Unlock()
	a.notify()

	log.Info("Minting character", "index", index, "name", sel.Roster[index].Name)
	hash, err := backend.Mint(ctx, int64(index))

	a.mu.Lock()
	current, pushless := a.mounted == m, a.pushless
	if s, ok := a.screen.(SelectingCharacter); ok && current {
		s.Minting = false
		a.screen = s
	}
	a.mu.Unlock()
	a.notify()

	if err != nil {
		log.Warn("Minting character failed", "index", index, "err", err)
		return hash, err
	}
	log.Info("Mint transaction mined", "tx", hash)
	if current && pushless {
		a.adoptMintedHero(m, backend)
	}
	return hash, nil
}

// ──────────────────────────────────────────────
//  Battle
// ──────────────────────────────────────────────

// battle shows the battle screen for hero. If from is set the switch only
// happens while from is still the mounted screen.
func (a *App) battle(ctx context.Context, backend game.Backend, hero game.Character, from *mount) {
	boss, err := backend.Boss(ctx)
	if err != nil {
		log.Warn("Reading the boss failed", "err", err)
		boss = nil
	}
	mctx, cancel := context.WithCancel(context.Background())
	sink := make(chan *game.AttackEvent, 16)
	sub, err := backend.SubscribeAttacks(mctx, sink)
	if err != nil {
		log.Warn("Attack events unavailable", "err", err)
		sub = nil
	}

	a.mu.Lock()
	if a.backend != backend || (from != nil && a.mounted != from) {
		a.mu.Unlock()
		if sub != nil {
			sub.Unsubscribe()
		}
		cancel()
		return
	}
	m := a.mountLocked(mctx, cancel)
	if sub != nil {
		m.scope.Track(sub)
		go a.watchAttacks(m, sink, sub)
	}
	a.screen = Battling{Account: backend.Account(), Hero: hero, Boss: boss}
	a.mu.Unlock()
	a.notify()
}

func (a *App) watchAttacks(m *mount, sink <-chan *game.AttackEvent, sub event.Subscription) {
	for {
		select {
		case ev := <-sink:
			a.mu.Lock()
			if a.mounted != m {
				a.mu.Unlock()
				return
			}
			s, ok := a.screen.(Battling)
			if ok {
				if s.Boss != nil {
					boss := *s.Boss
					boss.HP = ev.NewBossHP
					s.Boss = &boss
				}
				if ev.Sender == s.Account {
					s.Hero.HP = ev.NewPlayerHP
				}
				a.screen = s
			}
			a.mu.Unlock()
			if ok {
				log.Debug("Attack completed", "sender", ev.Sender, "bossHp", ev.NewBossHP, "playerHp", ev.NewPlayerHP)
				a.notify()
			}

		case err := <-sub.Err():
			if err != nil {
				log.Warn("Attack event subscription failed", "err", err)
			}
			return
		}
	}
}

// Attack attacks the boss, waits for the transaction to be mined and
// refreshes hero and boss. On failure the error is logged and returned.
func (a *App) Attack(ctx context.Context) (common.Hash, error) {
	a.mu.Lock()
	b, ok := a.screen.(Battling)
	switch {
	case !ok:
		a.mu.Unlock()
		return common.Hash{}, ErrWrongScreen
	case b.Attacking:
		a.mu.Unlock()
		return common.Hash{}, ErrAttackInProgress
	}
	backend, m := a.backend, a.mounted
	b.Attacking = true
	a.screen = b
	a.mu.Unlock()
	a.notify()

	log.Info("Attacking boss", "hero", b.Hero.Name)
	hash, err := backend.Attack(ctx)

	var (
		hero *game.Character
		boss *game.Boss
	)
	if err == nil {
		var rerr error
		if hero, rerr = backend.OwnedCharacter(ctx); rerr != nil {
			log.Warn("Refreshing hero failed", "err", rerr)
		}
		if boss, rerr = backend.Boss(ctx); rerr != nil {
			log.Warn("Refreshing boss failed", "err", rerr)
		}
	}

	a.mu.Lock()
	if s, ok := a.screen.(Battling); ok && a.mounted == m {
		s.Attacking = false
		if hero != nil {
			s.Hero = *hero
		}
		if boss != nil {
			s.Boss = boss
		}
		a.screen = s
	}
	a.mu.Unlock()
	a.notify()

	if err != nil {
		log.Warn("Attacking boss failed", "err", err)
		return hash, err
	}
	log.Info("Attack mined", "tx", hash)
	return hash, nil
}
