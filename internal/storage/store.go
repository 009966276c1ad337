// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/justsplit/internal/models"
)

// ErrNotFound is returned (wrapped) when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for event, expense and settlement storage.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateEvent persists a new event.
	// The event.ID and event.CreatedAt fields are populated by the store when empty.
	CreateEvent(ctx context.Context, event *models.Event) error

	// GetEvent retrieves an event, including its participants.
	GetEvent(ctx context.Context, eventID string) (*models.Event, error)

	// ListEvents returns all events, most recent start date first.
	ListEvents(ctx context.Context) ([]*models.Event, error)

	// DeleteEvent removes an event together with its expenses and settlements.
	DeleteEvent(ctx context.Context, eventID string) error

	// CreateExpense persists a new expense for an existing event.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense by its ID.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// ListExpensesByEvent returns an event's expenses ordered by date, then creation.
	ListExpensesByEvent(ctx context.Context, eventID string) ([]*models.Expense, error)

	// SetExpenseSettled flips the settled flag of an expense.
	SetExpenseSettled(ctx context.Context, expenseID string, settled bool) error

	// DeleteExpense removes an expense by ID.
	DeleteExpense(ctx context.Context, expenseID string) error

	// CreateSettlement persists a payment between two participants.
	CreateSettlement(ctx context.Context, settlement *models.Settlement) error

	// ListSettlementsByEvent returns an event's settlements, newest first.
	ListSettlementsByEvent(ctx context.Context, eventID string) ([]*models.Settlement, error)

	// Close releases any resources held by the store.
	Close() error
}
