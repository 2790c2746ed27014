// Package worker records consumed ledger events into the audit table.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"wallet/internal/ledger"
)

// Audit appends every consumed ledger event to the event store.
type Audit struct {
	events ledger.EventStore
}

func NewAudit(events ledger.EventStore) *Audit {
	return &Audit{events: events}
}

// HandleEvent processes a single ledger event. Returning an error makes
// the AMQP consumer requeue the delivery.
func (w *Audit) HandleEvent(ctx context.Context, e ledger.Event) error {
	if e.Action != "created" && e.Action != "deleted" {
		slog.WarnContext(ctx, "Skipping event with unknown action",
			"event_id", e.ID,
			"action", e.Action)
		return nil
	}

	if err := w.events.InsertEvent(ctx, e); err != nil {
		return fmt.Errorf("record audit event: %w", err)
	}

	slog.InfoContext(ctx, "Audit event recorded",
		"event_id", e.ID,
		"transaction_id", e.TransactionID,
		"user_id", e.UserID,
		"action", e.Action)

	return nil
}
