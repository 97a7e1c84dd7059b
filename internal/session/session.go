// Package session runs bridge selectors on their own event loops.
//
// Every user command and every wallet event for a session is applied on the
// session's goroutine, one at a time and to completion, so the selector never
// sees concurrent access and derivations always read the latest wallet state.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/event"
	"github.com/quantumauth-io/quantum-go-utils/log"

	"github.com/quantumauth-io/quantum-bridge-client/internal/bridge"
	"github.com/quantumauth-io/quantum-bridge-client/internal/catalog"
	"github.com/quantumauth-io/quantum-bridge-client/internal/metrics"
	"github.com/quantumauth-io/quantum-bridge-client/internal/wallet"
)

var ErrClosed = errors.New("session: closed")

// WalletProvider is what a session needs from a wallet: its state and its feed.
type WalletProvider interface {
	bridge.WalletSource
	Subscribe(ch chan<- wallet.Event) event.Subscription
}

type command struct {
	fn   func(*bridge.Selector)
	done chan struct{}
}

type Session struct {
	id        string
	createdAt time.Time

	sel    *bridge.Selector
	cmds   chan command
	events chan wallet.Event
	subs   []event.Subscription

	closeOnce sync.Once
	quit      chan struct{}
	done      chan struct{}
}

// open initializes a selector on symbol and starts its loop. Subscriptions
// are taken before the first derivation so no wallet change is missed.
func open(id string, c *catalog.Catalog, evm, coinset WalletProvider, symbol string) (*Session, error) {
	sel := bridge.NewSelector(c, evm, coinset)
	if symbol != "" {
		if err := sel.Initialize(symbol); err != nil {
			return nil, err
		}
	}

	s := &Session{
		id:        id,
		createdAt: time.Now(),
		sel:       sel,
		cmds:      make(chan command),
		events:    make(chan wallet.Event),
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	s.subs = []event.Subscription{
		evm.Subscribe(s.events),
		coinset.Subscribe(s.events),
	}

	// Wallets may already be connected when the step is opened.
	s.sel.RefreshRecipient()

	go s.run()
	return s, nil
}

func (s *Session) ID() string { return s.id }

func (s *Session) CreatedAt() time.Time { return s.createdAt }

func (s *Session) run() {
	defer close(s.done)
	for {
		select {
		case ev := <-s.events:
			s.sel.RefreshRecipient()
			metrics.RecordWalletEvent(string(ev.Kind), ev.Connection.Connected)
		case c := <-s.cmds:
			c.fn(s.sel)
			close(c.done)
		case <-s.quit:
			return
		}
	}
}

// Do runs fn on the session loop and waits for it. fn must not block and must
// not call back into wallet providers.
func (s *Session) Do(ctx context.Context, fn func(*bridge.Selector)) error {
	c := command{fn: fn, done: make(chan struct{})}
	select {
	case s.cmds <- c:
	case <-s.quit:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	<-c.done
	return nil
}

// View returns a consistent snapshot of the selector.
func (s *Session) View(ctx context.Context) (bridge.Snapshot, error) {
	var snap bridge.Snapshot
	err := s.Do(ctx, func(sel *bridge.Selector) {
		snap = sel.Snapshot()
	})
	return snap, err
}

// Close drops the wallet subscriptions, then stops the loop. Safe to call
// more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		for _, sub := range s.subs {
			sub.Unsubscribe()
		}
		close(s.quit)
		<-s.done
		log.Info("bridge session closed", "session", s.id)
	})
}
