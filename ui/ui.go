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

package ui

import (
	"context"
	"errors"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"github.com/ethereum/go-ethereum/log"
	"github.com/gdamore/tcell/v2"
	"github.com/metaverseslayer/slayer/app"
	"github.com/metaverseslayer/slayer/wallet"
	"github.com/rivo/tview"
)

// Page names.
const (
	pageLoading = "loading"
	pageConnect = "connect"
	pageSelect  = "select"
	pageBattle  = "battle"
	pageAlert   = "alert"
)

const passphraseLabel = "Passphrase"

// Config tunes the UI.
type Config struct {
	// AskPassphrase adds a passphrase field to the connect page; its
	// content is served through UI.Passphrase.
	AskPassphrase bool

	// Width is the wrap width of cards; DefaultWidth if zero.
	Width int
}

// UI renders an app.App in the terminal.
type UI struct {
	game   *app.App
	wallet wallet.Provider
	width  int

	tv      *tview.Application
	pages   *tview.Pages
	account *tview.TextView
	footer  *tview.TextView

	connect      *tview.Form
	roster       *tview.List
	selectStatus *tview.TextView
	boss         *tview.TextView
	hero         *tview.TextView
	attack       *tview.Button
	battleStatus *tview.TextView
	alert        *tview.Modal

	alertOn bool // touched on the tview goroutine only

	mu   sync.Mutex
	pass string
}

// New builds the UI for a. w is used to cycle between authorized accounts
// and may be nil.
func New(a *app.App, w wallet.Provider, cfg Config) *UI {
	u := &UI{
		game:   a,
		wallet: w,
		width:  cfg.Width,
		tv:     tview.NewApplication(),
		pages:  tview.NewPages(),
	}
	if u.width <= 0 {
		u.width = DefaultWidth
	}

	header := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText(Header + "\n" + SubHeader)
	u.account = tview.NewTextView().SetTextAlign(tview.AlignCenter)
	u.footer = tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText("Ctrl-N: next account  Ctrl-C: quit")

	loading := tview.NewTextView().SetTextAlign(tview.AlignCenter).SetText(LoadingText)
	u.pages.AddPage(pageLoading, loading, true, true)

	u.connect = tview.NewForm()
	if cfg.AskPassphrase {
		u.connect.AddPasswordField(passphraseLabel, "", 32, '*', nil)
	}
	u.connect.AddButton(ConnectLabel, u.onConnect)
	u.connect.SetButtonsAlign(tview.AlignCenter)
	u.pages.AddPage(pageConnect, u.connect, true, false)

	u.roster = tview.NewList().ShowSecondaryText(true)
	u.roster.SetBorder(true).SetTitle(SelectTitle)
	u.selectStatus = tview.NewTextView().SetTextAlign(tview.AlignCenter)
	selectPage := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(u.roster, 0, 1, true).
		AddItem(u.selectStatus, 1, 0, false)
	u.pages.AddPage(pageSelect, selectPage, true, false)

	u.boss = tview.NewTextView()
	u.boss.SetBorder(true).SetTitle("Boss")
	u.hero = tview.NewTextView()
	u.hero.SetBorder(true).SetTitle("Your Hero")
	u.attack = tview.NewButton(AttackLabel(nil)).SetSelectedFunc(u.onAttack)
	u.battleStatus = tview.NewTextView().SetTextAlign(tview.AlignCenter)
	battlePage := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(tview.NewFlex().
			AddItem(u.boss, 0, 1, false).
			AddItem(u.hero, 0, 1, false), 0, 1, false).
		AddItem(u.attack, 1, 0, true).
		AddItem(u.battleStatus, 1, 0, false)
	u.pages.AddPage(pageBattle, battlePage, true, false)

	u.alert = tview.NewModal().
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(int, string) {
			u.alertOn = false
			u.pages.HidePage(pageAlert)
			u.tv.SetFocus(u.pages)
		})
	u.pages.AddPage(pageAlert, u.alert, false, false)

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(header, 2, 0, false).
		AddItem(u.account, 1, 0, false).
		AddItem(u.pages, 0, 1, true).
		AddItem(u.footer, 1, 0, false)
	u.tv.SetRoot(root, true).SetInputCapture(u.onKey)
	return u
}

// Passphrase returns the passphrase typed on the connect page. It serves
// as a wallet.PassphraseFunc.
func (u *UI) Passphrase(account common.Address) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.pass == "" {
		return "", errors.New("ui: no passphrase entered")
	}
	return u.pass, nil
}

// Run starts the app and blocks until the user quits or ctx is done.
func (u *UI) Run(ctx context.Context) error {
	screens := make(chan app.ScreenEvent, 16)
	alerts := make(chan app.Alert, 4)
	ssub := u.game.SubscribeScreens(screens)
	asub := u.game.SubscribeAlerts(alerts)

	u.render(u.game.Screen())
	go u.loop(screens, alerts, ssub, asub)
	go func() {
		if err := u.game.Start(ctx); err != nil {
			log.Warn("Starting the game failed", "err", err)
		}
	}()
	go func() {
		<-ctx.Done()
		u.tv.Stop()
	}()

	err := u.tv.Run()

	ssub.Unsubscribe()
	asub.Unsubscribe()
	u.game.Close()
	return err
}

func (u *UI) loop(screens <-chan app.ScreenEvent, alerts <-chan app.Alert, ssub, asub event.Subscription) {
	for {
		select {
		case ev := <-screens:
			u.tv.QueueUpdateDraw(func() { u.render(ev.Screen) })
		case al := <-alerts:
			u.tv.QueueUpdateDraw(func() { u.showAlert(al.Message) })
		case <-ssub.Err():
			return
		case <-asub.Err():
			return
		}
	}
}

func (u *UI) render(s app.Screen) {
	u.account.SetText(AccountLine(s))

	switch s := s.(type) {
	case app.Loading:
		u.switchTo(pageLoading)

	case app.Disconnected:
		u.switchTo(pageConnect)

	case app.SelectingCharacter:
		current := u.roster.GetCurrentItem()
		u.roster.Clear()
		for i, c := range s.Roster {
			index := i
			u.roster.AddItem(MintLabel(c), CharacterCard(c, u.width), 0, func() { u.onMint(index) })
		}
		if current < len(s.Roster) {
			u.roster.SetCurrentItem(current)
		}
		u.selectStatus.SetText(Status(s))
		u.switchTo(pageSelect)

	case app.Battling:
		u.boss.SetText(BossCard(s.Boss, u.width))
		u.hero.SetText(CharacterCard(s.Hero, u.width))
		u.attack.SetLabel(AttackLabel(s.Boss))
		u.battleStatus.SetText(Status(s))
		u.switchTo(pageBattle)
	}
}

// switchTo shows page, keeping a pending alert on top.
func (u *UI) switchTo(page string) {
	u.pages.SwitchToPage(page)
	if u.alertOn {
		u.pages.ShowPage(pageAlert)
		u.tv.SetFocus(u.alert)
	}
}

func (u *UI) showAlert(msg string) {
	u.alertOn = true
	u.alert.SetText(msg)
	u.pages.ShowPage(pageAlert)
	u.tv.SetFocus(u.alert)
}

func (u *UI) note(msg string) {
	u.tv.QueueUpdateDraw(func() { u.footer.SetText(msg) })
}

func (u *UI) onKey(ev *tcell.EventKey) *tcell.EventKey {
	if ev.Key() == tcell.KeyCtrlN {
		go u.nextAccount()
		return nil
	}
	return ev
}

func (u *UI) onConnect() {
	if item := u.connect.GetFormItemByLabel(passphraseLabel); item != nil {
		if field, ok := item.(*tview.InputField); ok {
			u.mu.Lock()
			u.pass = field.GetText()
			u.mu.Unlock()
			field.SetText("")
		}
	}
	go func() {
		if err := u.game.ConnectWallet(context.Background()); err != nil {
			u.note("Connecting failed: " + err.Error())
		}
	}()
}

func (u *UI) onMint(index int) {
	go func() {
		if _, err := u.game.Mint(context.Background(), index); err != nil {
			u.note("Minting failed: " + err.Error())
		}
	}()
}

func (u *UI) onAttack() {
	go func() {
		if _, err := u.game.Attack(context.Background()); err != nil {
			u.note("Attack failed: " + err.Error())
		}
	}()
}

// nextAccount switches to the authorized account after the current one.
func (u *UI) nextAccount() {
	if u.wallet == nil {
		return
	}
	accounts, err := u.wallet.Accounts(context.Background())
	if err != nil {
		u.note("Reading accounts failed: " + err.Error())
		return
	}
	next, ok := NextAccount(accounts, currentAccount(u.game.Screen()))
	if !ok {
		u.note("No other authorized account")
		return
	}
	if err := u.game.SwitchAccount(context.Background(), next); err != nil {
		u.note("Switching account failed: " + err.Error())
	}
}

// NextAccount picks the account following current in accounts, wrapping
// around. It reports false if there is no other account.
func NextAccount(accounts []common.Address, current common.Address) (common.Address, bool) {
	for i, a := range accounts {
		if a == current {
			next := accounts[(i+1)%len(accounts)]
			return next, next != current
		}
	}
	if len(accounts) == 0 {
		return common.Address{}, false
	}
	return accounts[0], true
}
