package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/justsplit/internal/models"
	"github.com/mmynk/justsplit/internal/storage"
)

const expenseColumns = "id, event_id, description, amount, currency, date, paid_by, settled, created_at"

// CreateExpense persists a new expense to the database.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM events WHERE id = ?", expense.EventID).Scan(&exists)
	if err == sql.ErrNoRows {
		return fmt.Errorf("event %s: %w", expense.EventID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check event existence: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO expenses ("+expenseColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		expense.ID, expense.EventID, expense.Description, expense.Amount, expense.Currency,
		toMillis(expense.Date), expense.PaidBy, expense.Settled, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for i, name := range expense.Participants {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_participants (expense_id, name, position) VALUES (?, ?, ?)",
			expense.ID, name, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense participant: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetExpense retrieves an expense by ID.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	expense, err := scanExpense(s.db.QueryRowContext(ctx,
		"SELECT "+expenseColumns+" FROM expenses WHERE id = ?",
		expenseID,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	if err := s.loadExpenseParticipants(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// ListExpensesByEvent returns an event's expenses ordered by date, then creation.
func (s *SQLiteStore) ListExpensesByEvent(ctx context.Context, eventID string) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+expenseColumns+" FROM expenses WHERE event_id = ? ORDER BY date, created_at, rowid",
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses by event: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	rows.Close()

	for _, expense := range expenses {
		if err := s.loadExpenseParticipants(ctx, expense); err != nil {
			return nil, err
		}
	}

	return expenses, nil
}

// SetExpenseSettled updates the settled flag of an expense.
func (s *SQLiteStore) SetExpenseSettled(ctx context.Context, expenseID string, settled bool) error {
	res, err := s.db.ExecContext(ctx, "UPDATE expenses SET settled = ? WHERE id = ?", settled, expenseID)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	return requireAffected(res, "expense", expenseID)
}

// DeleteExpense removes an expense by ID.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return requireAffected(res, "expense", expenseID)
}

func (s *SQLiteStore) loadExpenseParticipants(ctx context.Context, expense *models.Expense) error {
	names, err := s.loadNames(ctx,
		"SELECT name FROM expense_participants WHERE expense_id = ? ORDER BY position",
		expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get expense participants: %w", err)
	}
	expense.Participants = names
	return nil
}

func scanExpense(row rowScanner) (*models.Expense, error) {
	expense := &models.Expense{}
	var date int64
	if err := row.Scan(&expense.ID, &expense.EventID, &expense.Description, &expense.Amount,
		&expense.Currency, &date, &expense.PaidBy, &expense.Settled, &expense.CreatedAt); err != nil {
		return nil, err
	}
	expense.Date = fromMillis(date)
	return expense, nil
}
