// Package memory provides an in-memory ledger store, used as the
// default backend and in handler tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"wallet/internal/core"
	"wallet/internal/ledger"
)

type Store struct {
	mu     sync.Mutex
	items  []core.Transaction
	events []ledger.Event
}

func New() *Store {
	return &Store{}
}

// Insert implements ledger.Store.
func (s *Store) Insert(_ context.Context, t *core.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, *t)
	return nil
}

// ListByUser implements ledger.Store. Insertion order is creation
// order, so walking the slice backwards yields newest-first.
func (s *Store) ListByUser(_ context.Context, userID string) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []core.Transaction{}
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i].UserID == userID {
			out = append(out, s.items[i])
		}
	}
	return out, nil
}

// DeleteByID implements ledger.Store.
func (s *Store) DeleteByID(_ context.Context, id string) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.items {
		if t.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return t, nil
		}
	}
	return core.Transaction{}, ledger.ErrNotFound
}

// InsertEvent implements ledger.EventStore.
func (s *Store) InsertEvent(_ context.Context, e ledger.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

// Events returns a copy of the recorded audit events.
func (s *Store) Events() []ledger.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ledger.Event(nil), s.events...)
}
