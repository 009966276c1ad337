package models

import "github.com/shopspring/decimal"

// Settlement represents a payment between event participants to clear debts.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string

	// EventID is the event this settlement belongs to.
	EventID string

	// From is the participant who paid (debtor settling up).
	From string

	// To is the participant who received payment (creditor being paid).
	To string

	// Amount is the payment amount.
	Amount decimal.Decimal

	// Currency is the ISO 4217 code of Amount.
	Currency string

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64

	// Note is an optional description for the settlement.
	Note string
}
