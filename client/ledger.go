package client

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// State is the observable result structure a UI pulls from.
type State struct {
	Transactions []Transaction
	Summary      Summary
	Loading      bool
}

// UserLedger binds a Client to one user and keeps the last loaded
// state. Refresh is pull-based; there are no automatic retries and no
// background polling.
type UserLedger struct {
	client *Client
	userID string

	mu    sync.RWMutex
	state State
}

func NewUserLedger(c *Client, userID string) *UserLedger {
	return &UserLedger{client: c, userID: userID}
}

// State returns a snapshot of the last loaded data.
func (l *UserLedger) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Refresh loads transactions and summary in parallel and replaces the
// state with the result. There is no ordering dependency between the
// two fetches; both must succeed.
func (l *UserLedger) Refresh(ctx context.Context) error {
	l.setLoading(true)
	defer l.setLoading(false)

	var (
		txs []Transaction
		sum Summary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txs, err = l.client.Transactions(gctx, l.userID)
		return err
	})
	g.Go(func() error {
		var err error
		sum, err = l.client.Summary(gctx, l.userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	l.mu.Lock()
	l.state.Transactions = txs
	l.state.Summary = sum
	l.mu.Unlock()
	return nil
}

// DeleteTransaction removes a record and reloads both lists, since the
// server does not push read-after-write consistency to clients.
func (l *UserLedger) DeleteTransaction(ctx context.Context, id string) error {
	if err := l.client.DeleteTransaction(ctx, id); err != nil {
		return err
	}
	return l.Refresh(ctx)
}

func (l *UserLedger) setLoading(v bool) {
	l.mu.Lock()
	l.state.Loading = v
	l.mu.Unlock()
}
