package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type (
	// Money is a signed amount in cents. Positive values are income,
	// negative values are expenses. Calculations stay in cents to avoid
	// floating-point drift.
	Money struct {
		Cents int64
	}

	// Transaction is a single ledger record. Records are immutable after
	// creation; the only mutation the ledger supports is deletion.
	Transaction struct {
		ID        string
		UserID    string
		Title     string
		Amount    Money
		Category  string
		CreatedAt time.Time
	}

	// Summary is the derived aggregate of a user's ledger.
	// Income and Expenses are always non-negative; Balance may be negative.
	Summary struct {
		Balance  Money
		Income   Money
		Expenses Money
	}
)

// ErrValidation is the base error for all input validation failures.
// Handlers map anything wrapping it to a 400 response.
var ErrValidation = errors.New("invalid transaction")

var (
	ErrEmptyUserID   = fmt.Errorf("%w: empty user id", ErrValidation)
	ErrEmptyTitle    = fmt.Errorf("%w: empty title", ErrValidation)
	ErrEmptyCategory = fmt.Errorf("%w: empty category", ErrValidation)
	ErrZeroAmount    = fmt.Errorf("%w: amount cannot be zero", ErrValidation)
	ErrInvalidAmount = fmt.Errorf("%w: invalid amount", ErrValidation)
)

func (m Money) Validate() error {
	if m.Cents == 0 {
		return ErrZeroAmount
	}
	return nil
}

// Abs returns the absolute value.
func (m Money) Abs() Money {
	if m.Cents < 0 {
		return Money{Cents: -m.Cents}
	}
	return m
}

func (t Transaction) Validate() error {
	if strings.TrimSpace(t.UserID) == "" {
		return ErrEmptyUserID
	}
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if len(t.Title) > 200 {
		return fmt.Errorf("%w: title too long (max 200 characters)", ErrValidation)
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	return nil
}
