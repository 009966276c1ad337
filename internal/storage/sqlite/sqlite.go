// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/justsplit/internal/models"
	"github.com/mmynk/justsplit/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Pragmas in the DSN apply to every pooled connection
	dsn := dbPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateEvent persists a new event and its participants.
func (s *SQLiteStore) CreateEvent(ctx context.Context, event *models.Event) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt == 0 {
		event.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO events (id, name, start_date, end_date, created_at) VALUES (?, ?, ?, ?, ?)",
		event.ID, event.Name, toMillis(event.StartDate), nullableMillis(event.EndDate), event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	for i, name := range event.Participants {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO event_participants (event_id, name, position) VALUES (?, ?, ?)",
			event.ID, name, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetEvent retrieves an event by ID, including its participants.
func (s *SQLiteStore) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	event, err := scanEvent(s.db.QueryRowContext(ctx,
		"SELECT id, name, start_date, end_date, created_at FROM events WHERE id = ?",
		eventID,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("event %s: %w", eventID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	event.Participants, err = s.loadNames(ctx,
		"SELECT name FROM event_participants WHERE event_id = ? ORDER BY position",
		event.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}

	return event, nil
}

// ListEvents returns all events, most recent start date first.
func (s *SQLiteStore) ListEvents(ctx context.Context) ([]*models.Event, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, start_date, end_date, created_at FROM events ORDER BY start_date DESC, created_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}
	rows.Close()

	for _, event := range events {
		event.Participants, err = s.loadNames(ctx,
			"SELECT name FROM event_participants WHERE event_id = ? ORDER BY position",
			event.ID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to get participants: %w", err)
		}
	}

	return events, nil
}

// DeleteEvent removes an event; expenses and settlements cascade.
func (s *SQLiteStore) DeleteEvent(ctx context.Context, eventID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM events WHERE id = ?", eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return requireAffected(res, "event", eventID)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*models.Event, error) {
	event := &models.Event{}
	var start int64
	var end sql.NullInt64
	if err := row.Scan(&event.ID, &event.Name, &start, &end, &event.CreatedAt); err != nil {
		return nil, err
	}
	event.StartDate = fromMillis(start)
	if end.Valid {
		t := fromMillis(end.Int64)
		event.EndDate = &t
	}
	return event, nil
}

// loadNames runs a single-column name query.
func (s *SQLiteStore) loadNames(ctx context.Context, query string, id string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func requireAffected(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check %s deletion: %w", kind, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, storage.ErrNotFound)
	}
	return nil
}

func toMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func nullableMillis(t *time.Time) any {
	if t == nil {
		return nil
	}
	return toMillis(*t)
}
