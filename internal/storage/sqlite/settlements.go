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

// CreateSettlement persists a new settlement to the database.
func (s *SQLiteStore) CreateSettlement(ctx context.Context, settlement *models.Settlement) error {
	if settlement.ID == "" {
		settlement.ID = uuid.New().String()
	}
	if settlement.CreatedAt == 0 {
		settlement.CreatedAt = time.Now().Unix()
	}

	var note any
	if settlement.Note != "" {
		note = settlement.Note
	}

	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM events WHERE id = ?", settlement.EventID).Scan(&exists)
	if err == sql.ErrNoRows {
		return fmt.Errorf("event %s: %w", settlement.EventID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check event existence: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO settlements (id, event_id, from_name, to_name, amount, currency, created_at, note)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		settlement.ID, settlement.EventID, settlement.From, settlement.To,
		settlement.Amount, settlement.Currency, settlement.CreatedAt, note,
	)
	if err != nil {
		return fmt.Errorf("failed to insert settlement: %w", err)
	}

	return nil
}

// ListSettlementsByEvent retrieves all settlements for an event.
func (s *SQLiteStore) ListSettlementsByEvent(ctx context.Context, eventID string) ([]*models.Settlement, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, event_id, from_name, to_name, amount, currency, created_at, note
		 FROM settlements WHERE event_id = ? ORDER BY created_at DESC, rowid DESC`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements by event: %w", err)
	}
	defer rows.Close()

	var settlements []*models.Settlement
	for rows.Next() {
		settlement := &models.Settlement{}
		var note sql.NullString

		if err := rows.Scan(&settlement.ID, &settlement.EventID, &settlement.From, &settlement.To,
			&settlement.Amount, &settlement.Currency, &settlement.CreatedAt, &note); err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}

		if note.Valid {
			settlement.Note = note.String
		}

		settlements = append(settlements, settlement)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlements: %w", err)
	}

	return settlements, nil
}
