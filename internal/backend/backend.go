// Package backend selects and constructs the ledger store named by
// configuration.
package backend

import (
	"fmt"
	"log/slog"

	"wallet/internal/ledger"
	"wallet/internal/memory"
	"wallet/internal/storage"
)

// Type identifies a store implementation.
type Type string

const (
	MemoryBackend Type = "memory"
	SQLiteBackend Type = "sqlite"
)

func (t Type) String() string { return string(t) }

// IsValid reports whether the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case MemoryBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// CleanupFunc releases resources held by a store.
type CleanupFunc func() error

// Open constructs the store for the given type. The returned cleanup
// function may be nil.
func Open(t Type, sqlitePath string, logger *slog.Logger) (ledger.Store, CleanupFunc, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if !t.IsValid() {
		return nil, nil, fmt.Errorf("invalid backend type: %s", t)
	}

	switch t {
	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(sqlitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		logger.Info("Initialized SQLite backend", "db_path", sqlitePath)
		return repo, repo.Close, nil
	default:
		store := memory.New()
		logger.Info("Initialized memory backend")
		return store, nil, nil
	}
}
