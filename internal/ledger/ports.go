package ledger

import (
	"context"
	"errors"
	"time"

	"wallet/internal/core"
)

// ErrNotFound is returned when a delete references an id the store does
// not hold. Handlers map it to a 404 response.
var ErrNotFound = errors.New("transaction not found")

// Event records a change to the ledger for the audit trail.
type Event struct {
	ID            string
	TransactionID string
	UserID        string
	Action        string // "created" or "deleted"
	AmountCents   int64
	Title         string
	Category      string
	Timestamp     time.Time
}

// Ports for outbound adapters.
type (
	// Store is the durable transaction collection. Insert assigns ID and
	// CreatedAt; ListByUser returns records newest-first.
	Store interface {
		Insert(ctx context.Context, t *core.Transaction) error
		ListByUser(ctx context.Context, userID string) ([]core.Transaction, error)
		DeleteByID(ctx context.Context, id string) (core.Transaction, error)
	}

	// EventStore persists audit events. The SQLite store implements it;
	// the worker writes through it.
	EventStore interface {
		InsertEvent(ctx context.Context, e Event) error
	}

	// Publisher fans ledger events out to interested consumers.
	Publisher interface {
		PublishEvent(ctx context.Context, e Event) error
	}
)
