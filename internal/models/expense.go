package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a single payment recorded against an event.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// EventID is the event this expense belongs to.
	EventID string

	// Description is what the expense was for (e.g., "Dinner", "Taxi").
	Description string

	// Amount is the non-negative amount paid, in Currency.
	Amount decimal.Decimal

	// Currency is the ISO 4217 code of Amount (e.g., "EUR").
	Currency string

	// Date is when the expense happened. It drives the timeline position.
	Date time.Time

	// PaidBy is the participant who paid.
	PaidBy string

	// Participants is the list of names the expense is split equally among.
	// Empty means every event participant.
	Participants []string

	// Settled marks the expense's debts as paid back.
	Settled bool

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}
