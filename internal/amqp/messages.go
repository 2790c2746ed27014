package amqp

import (
	"encoding/json"
	"time"

	"wallet/internal/ledger"
)

// EventMessage is the wire form of a ledger event. It carries the full
// transaction snapshot so the consumer never has to read the store to
// record the audit entry.
type EventMessage struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transactionId"`
	UserID        string    `json:"userId"`
	Action        string    `json:"action"`
	AmountCents   int64     `json:"amountCents"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	Timestamp     time.Time `json:"timestamp"`
}

// NewEventMessage converts a ledger event to its wire form.
func NewEventMessage(e ledger.Event) *EventMessage {
	return &EventMessage{
		ID:            e.ID,
		TransactionID: e.TransactionID,
		UserID:        e.UserID,
		Action:        e.Action,
		AmountCents:   e.AmountCents,
		Title:         e.Title,
		Category:      e.Category,
		Timestamp:     e.Timestamp,
	}
}

// Event converts the message back to a ledger event.
func (m *EventMessage) Event() ledger.Event {
	return ledger.Event{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		Action:        m.Action,
		AmountCents:   m.AmountCents,
		Title:         m.Title,
		Category:      m.Category,
		Timestamp:     m.Timestamp,
	}
}

// ToJSON converts the message to JSON bytes.
func (m *EventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// EventMessageFromJSON creates a message from JSON bytes.
func EventMessageFromJSON(data []byte) (*EventMessage, error) {
	var msg EventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
