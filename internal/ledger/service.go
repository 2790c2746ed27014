// Package ledger implements the business operations over the
// transaction store: create, list, delete and summary aggregation.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"wallet/internal/core"
)

// Service composes the Store with optional event publication. It holds
// no per-request state; every call goes straight to the store.
type Service struct {
	store     Store
	publisher Publisher
}

// NewService creates a ledger service. publisher may be nil, in which
// case events are skipped.
func NewService(store Store, publisher Publisher) *Service {
	return &Service{store: store, publisher: publisher}
}

// Create validates and persists a new transaction, then publishes a
// created event. Publish failures are logged, not surfaced: the record
// is already durable.
func (s *Service) Create(ctx context.Context, userID, title string, amount core.Money, category string) (core.Transaction, error) {
	t := core.Transaction{
		UserID:   userID,
		Title:    title,
		Amount:   amount,
		Category: category,
	}
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}

	if err := s.store.Insert(ctx, &t); err != nil {
		return core.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction created",
		"id", t.ID,
		"user_id", t.UserID,
		"amount_cents", t.Amount.Cents,
		"category", t.Category)

	s.publish(ctx, t, "created")
	return t, nil
}

// List returns all of the user's transactions, newest first. An unknown
// user simply yields an empty ledger.
func (s *Service) List(ctx context.Context, userID string) ([]core.Transaction, error) {
	txs, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

// Delete removes a transaction by id and publishes a deleted event.
// The removed record is returned; ErrNotFound when the id does not
// exist.
func (s *Service) Delete(ctx context.Context, id string) (core.Transaction, error) {
	t, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("delete transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction deleted", "id", id, "user_id", t.UserID)

	s.publish(ctx, t, "deleted")
	return t, nil
}

// Summary aggregates the user's ledger into balance, income and
// expenses. An empty ledger yields all zeros.
func (s *Service) Summary(ctx context.Context, userID string) (core.Summary, error) {
	txs, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return core.Summary{}, fmt.Errorf("load transactions for summary: %w", err)
	}
	return core.Summarize(txs), nil
}

func (s *Service) publish(ctx context.Context, t core.Transaction, action string) {
	if s.publisher == nil {
		return
	}
	e := Event{
		ID:            uuid.NewString(),
		TransactionID: t.ID,
		UserID:        t.UserID,
		Action:        action,
		AmountCents:   t.Amount.Cents,
		Title:         t.Title,
		Category:      t.Category,
		Timestamp:     time.Now().UTC(),
	}
	if err := s.publisher.PublishEvent(ctx, e); err != nil {
		slog.ErrorContext(ctx, "Failed to publish ledger event",
			"transaction_id", t.ID,
			"action", action,
			"error", err)
	}
}
