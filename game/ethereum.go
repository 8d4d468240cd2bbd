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

package game

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/metaverseslayer/slayer/contracts/epicgame"
)

// Errors returned by the Ethereum backend.
var (
	ErrTxFailed   = errors.New("game: transaction reverted")
	ErrNoContract = errors.New("game: no contract code at address")
	ErrClosed     = errors.New("game: backend closed")

	// ErrPushUnsupported is returned by the Subscribe methods when the node
	// connection cannot push notifications, e.g. plain HTTP.
	ErrPushUnsupported = errors.New("game: node cannot push events")
)

// ChainClient is the node connection a binding needs: contract calls,
// transactions, log subscriptions and receipts. *ethclient.Client
// satisfies it.
type ChainClient interface {
	bind.ContractBackend
	bind.DeployBackend
}

// Signer provides the signing identity of an authorized account.
type Signer interface {
	Transactor(account common.Address, chainID *big.Int) (*bind.TransactOpts, error)
}

// EthereumBackend implements Backend over a deployed MyEpicGame contract.
type EthereumBackend struct {
	waiter  bind.DeployBackend
	game    *epicgame.MyEpicGame
	account common.Address
	scope   event.SubscriptionScope
}

// NewEthereumBackend binds an account to a MyEpicGame contract. waiter is
// used to await receipts of submitted transactions.
func NewEthereumBackend(waiter bind.DeployBackend, game *epicgame.MyEpicGame, account common.Address) *EthereumBackend {
	return &EthereumBackend{waiter: waiter, game: game, account: account}
}

func (e *EthereumBackend) Account() common.Address { return e.account }

func (e *EthereumBackend) callOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{Context: ctx, From: e.account}
}

func (e *EthereumBackend) OwnedCharacter(ctx context.Context) (*Character, error) {
	raw, err := e.game.CheckIfUserHasNFT(e.callOpts(ctx))
	if err != nil {
		return nil, fmt.Errorf("checkIfUserHasNFT: %w", err)
	}
	if raw.Name == "" {
		return nil, nil
	}
	c, err := NewCharacter(raw)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (e *EthereumBackend) Characters(ctx context.Context) ([]Character, error) {
	raws, err := e.game.GetAllDefaultCharacters(e.callOpts(ctx))
	if err != nil {
		return nil, fmt.Errorf("getAllDefaultCharacters: %w", err)
	}
	roster := make([]Character, 0, len(raws))
	for i := range raws {
		c, err := NewCharacter(&raws[i])
		if err != nil {
			return nil, err
		}
		roster = append(roster, c)
	}
	return roster, nil
}

func (e *EthereumBackend) Boss(ctx context.Context) (*Boss, error) {
	raw, err := e.game.GetBigBoss(e.callOpts(ctx))
	if err != nil {
		return nil, fmt.Errorf("getBigBoss: %w", err)
	}
	b, err := NewBoss(raw)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (e *EthereumBackend) TokenURI(ctx context.Context, tokenID *big.Int) (string, error) {
	uri, err := e.game.TokenURI(e.callOpts(ctx), tokenID)
	if err != nil {
		return "", fmt.Errorf("tokenURI: %w", err)
	}
	return uri, nil
}

// HeldToken returns the token id recorded for the account in nftHolders,
// zero if it holds none.
func (e *EthereumBackend) HeldToken(ctx context.Context) (*big.Int, error) {
	id, err := e.game.NftHolders(e.callOpts(ctx), e.account)
	if err != nil {
		return nil, fmt.Errorf("nftHolders: %w", err)
	}
	return id, nil
}

func (e *EthereumBackend) Mint(ctx context.Context, index int64) (common.Hash, error) {
	tx, err := e.game.MintCharacterNFT(ctx, big.NewInt(index))
	if err != nil {
		return common.Hash{}, fmt.Errorf("mintCharacterNFT: %w", err)
	}
	log.Info("Mint transaction sent", "account", e.account, "index", index, "tx", tx.Hash())
	return tx.Hash(), e.wait(ctx, tx)
}

func (e *EthereumBackend) Attack(ctx context.Context) (common.Hash, error) {
	tx, err := e.game.AttackBoss(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("attackBoss: %w", err)
	}
	log.Info("Attack transaction sent", "account", e.account, "tx", tx.Hash())
	return tx.Hash(), e.wait(ctx, tx)
}

func (e *EthereumBackend) wait(ctx context.Context, tx *types.Transaction) error {
	receipt, err := bind.WaitMined(ctx, e.waiter, tx)
	if err != nil {
		return fmt.Errorf("waiting for %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status == types.ReceiptStatusFailed {
		return fmt.Errorf("%w: %s", ErrTxFailed, tx.Hash().Hex())
	}
	log.Debug("Transaction mined", "tx", tx.Hash(), "block", receipt.BlockNumber, "gas", receipt.GasUsed)
	return nil
}

func (e *EthereumBackend) SubscribeMinted(ctx context.Context, sink chan<- *MintEvent) (event.Subscription, error) {
	raw := make(chan *epicgame.CharacterNFTMinted)
	sub, err := e.game.WatchCharacterNFTMinted(&bind.WatchOpts{Context: ctx}, raw)
	if err != nil {
		return nil, subscribeErr(err)
	}
	return e.track(event.NewSubscription(func(quit <-chan struct{}) error {
		defer sub.Unsubscribe()
		for {
			select {
			case ev := <-raw:
				out, err := newMintEvent(ev)
				if err != nil {
					return err
				}
				select {
				case sink <- out:
				case <-quit:
					return nil
				}
			case err := <-sub.Err():
				return err
			case <-quit:
				return nil
			}
		}
	}))
}

func (e *EthereumBackend) SubscribeAttacks(ctx context.Context, sink chan<- *AttackEvent) (event.Subscription, error) {
	raw := make(chan *epicgame.AttackComplete)
	sub, err := e.game.WatchAttackComplete(&bind.WatchOpts{Context: ctx}, raw)
	if err != nil {
		return nil, subscribeErr(err)
	}
	return e.track(event.NewSubscription(func(quit <-chan struct{}) error {
		defer sub.Unsubscribe()
		for {
			select {
			case ev := <-raw:
				bossHP, err := toInt64("newBossHp", ev.NewBossHp)
				if err != nil {
					return err
				}
				playerHP, err := toInt64("newPlayerHp", ev.NewPlayerHp)
				if err != nil {
					return err
				}
				select {
				case sink <- &AttackEvent{Sender: ev.Sender, NewBossHP: bossHP, NewPlayerHP: playerHP}:
				case <-quit:
					return nil
				}
			case err := <-sub.Err():
				return err
			case <-quit:
				return nil
			}
		}
	}))
}

func newMintEvent(ev *epicgame.CharacterNFTMinted) (*MintEvent, error) {
	tokenID, err := toUint64("tokenId", ev.TokenId)
	if err != nil {
		return nil, err
	}
	index, err := toInt64("characterIndex", ev.CharacterIndex)
	if err != nil {
		return nil, err
	}
	return &MintEvent{Sender: ev.Sender, TokenID: tokenID, CharacterIndex: index}, nil
}

func subscribeErr(err error) error {
	if errors.Is(err, rpc.ErrNotificationsUnsupported) {
		return fmt.Errorf("%w: %v", ErrPushUnsupported, err)
	}
	return err
}

func (e *EthereumBackend) track(sub event.Subscription) (event.Subscription, error) {
	tracked := e.scope.Track(sub)
	if tracked == nil {
		sub.Unsubscribe()
		return nil, ErrClosed
	}
	return tracked, nil
}

// Close cancels all subscriptions created through this backend.
func (e *EthereumBackend) Close() {
	e.scope.Close()
}

// EthereumBinder creates EthereumBackends for authorized accounts against a
// fixed contract address.
type EthereumBinder struct {
	client   ChainClient
	signer   Signer
	contract common.Address
	chainID  *big.Int
}

// NewEthereumBinder creates a binder for the contract at address.
func NewEthereumBinder(client ChainClient, signer Signer, contract common.Address, chainID *big.Int) *EthereumBinder {
	return &EthereumBinder{client: client, signer: signer, contract: contract, chainID: chainID}
}

// Bind verifies the contract is deployed and binds it to account.
func (b *EthereumBinder) Bind(ctx context.Context, account common.Address) (Backend, error) {
	code, err := b.client.CodeAt(ctx, b.contract, nil)
	if err != nil {
		return nil, fmt.Errorf("game: reading contract code: %w", err)
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("%w %s", ErrNoContract, b.contract.Hex())
	}
	opts, err := b.signer.Transactor(account, b.chainID)
	if err != nil {
		return nil, err
	}
	nft, err := epicgame.NewMyEpicGame(opts, b.contract, b.client)
	if err != nil {
		return nil, err
	}
	log.Debug("Contract bound", "contract", b.contract, "account", account, "chain", b.chainID)
	return NewEthereumBackend(b.client, nft, account), nil
}
