package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is one posted ledger movement: the debit/credit account pair
// an event resolved to, with the amount the allocation produced for that
// event. Entries are append-only.
type JournalEntry struct {
	CreatedAt       time.Time
	ID              string
	LoanID          string
	RuleID          string
	EventType       EventType
	EventAttribute  EventAttribute
	Direction       BookingDirection
	DebitAccountID  string
	CreditAccountID string
	Amount          decimal.Decimal
}
