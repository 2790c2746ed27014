package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"wallet/internal/core"
)

// transactionJSON is the wire shape of a ledger record.
type transactionJSON struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Title     string     `json:"title"`
	Amount    core.Money `json:"amount"`
	Category  string     `json:"category"`
	CreatedAt time.Time  `json:"createdAt"`
}

type summaryJSON struct {
	Balance  core.Money `json:"balance"`
	Income   core.Money `json:"income"`
	Expenses core.Money `json:"expenses"`
}

type createTransactionRequest struct {
	UserID   string     `json:"userId"`
	Title    string     `json:"title"`
	Amount   core.Money `json:"amount"`
	Category string     `json:"category"`
}

func toTransactionJSON(t core.Transaction) transactionJSON {
	return transactionJSON{
		ID:        t.ID,
		UserID:    t.UserID,
		Title:     t.Title,
		Amount:    t.Amount,
		Category:  t.Category,
		CreatedAt: t.CreatedAt,
	}
}

// handleHealth performs a basic liveness check.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, core.ErrValidation) {
			writeServiceError(w, err)
			return
		}
		slog.WarnContext(r.Context(), "Malformed create request", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := s.service.Create(r.Context(),
		strings.TrimSpace(req.UserID),
		sanitizeInput(req.Title),
		req.Amount,
		sanitizeInput(req.Category))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	s.summaryCache.Delete(t.UserID)
	writeJSON(w, http.StatusCreated, toTransactionJSON(t))
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")

	txs, err := s.service.List(r.Context(), userID)
	if err != nil {
		slog.ErrorContext(r.Context(), "List transactions error", "error", err, "user_id", userID)
		writeServiceError(w, err)
		return
	}

	out := make([]transactionJSON, len(txs))
	for i, t := range txs {
		out[i] = toTransactionJSON(t)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")

	if sum, found := s.summaryCache.Get(userID); found {
		slog.DebugContext(r.Context(), "Summary cache hit", "user_id", userID)
		writeJSON(w, http.StatusOK, summaryJSON{Balance: sum.Balance, Income: sum.Income, Expenses: sum.Expenses})
		return
	}

	sum, err := s.service.Summary(r.Context(), userID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Summary error", "error", err, "user_id", userID)
		writeServiceError(w, err)
		return
	}

	s.summaryCache.Set(userID, sum)
	writeJSON(w, http.StatusOK, summaryJSON{Balance: sum.Balance, Income: sum.Income, Expenses: sum.Expenses})
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	t, err := s.service.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	s.summaryCache.Delete(t.UserID)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Transaction deleted successfully"})
}

// sanitizeInput trims whitespace and strips control characters.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
