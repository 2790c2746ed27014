// Package storage provides the durable SQLite ledger store.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"wallet/internal/core"
	"wallet/internal/ledger"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Insert implements ledger.Store. It assigns the id and creation
// timestamp before persisting.
func (r *SQLiteRepository) Insert(ctx context.Context, t *core.Transaction) error {
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (id, user_id, title, amount_cents, category, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.Title, t.Amount.Cents, t.Category, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved to SQLite",
		"id", t.ID,
		"user_id", t.UserID,
		"amount_cents", t.Amount.Cents)

	return nil
}

// ListByUser implements ledger.Store, returning the user's records
// newest first. Id breaks created_at ties so ordering stays stable.
func (r *SQLiteRepository) ListByUser(ctx context.Context, userID string) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, title, amount_cents, category, created_at
		 FROM transactions
		 WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	txs := []core.Transaction{}
	for rows.Next() {
		var t core.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Amount.Cents, &t.Category, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return txs, nil
}

// DeleteByID implements ledger.Store. The deleted record is returned so
// callers can publish its event; ledger.ErrNotFound when absent.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) (core.Transaction, error) {
	var t core.Transaction
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, title, amount_cents, category, created_at
		 FROM transactions WHERE id = ?`,
		id).Scan(&t.ID, &t.UserID, &t.Title, &t.Amount.Cents, &t.Category, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, ledger.ErrNotFound
	}
	if err != nil {
		return core.Transaction{}, fmt.Errorf("load transaction: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("delete transaction: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// Raced with another delete between the select and here.
		return core.Transaction{}, ledger.ErrNotFound
	}

	slog.InfoContext(ctx, "Transaction deleted from SQLite", "id", id)
	return t, nil
}

// InsertEvent implements ledger.EventStore for the audit trail.
func (r *SQLiteRepository) InsertEvent(ctx context.Context, e ledger.Event) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO ledger_events (id, transaction_id, user_id, action, amount_cents, title, category, occurred_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.TransactionID, e.UserID, e.Action, e.AmountCents, e.Title, e.Category, e.Timestamp)
	if err != nil {
		return fmt.Errorf("insert ledger event: %w", err)
	}

	slog.InfoContext(ctx, "Ledger event recorded",
		"event_id", e.ID,
		"transaction_id", e.TransactionID,
		"action", e.Action)

	return nil
}

// CountEvents returns the size of the audit trail. The worker logs it
// on startup.
func (r *SQLiteRepository) CountEvents(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM ledger_events`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count ledger events: %w", err)
	}
	return n, nil
}
