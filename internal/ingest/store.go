package ingest

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/HerbHall/netlens/pkg/ifevent"
	"github.com/google/uuid"
)

// IngestStore provides database access for the ingest plugin. It owns
// the events table; other plugins read it through their own stores.
type IngestStore struct {
	db *sql.DB
}

// NewIngestStore creates a new IngestStore backed by the given database.
func NewIngestStore(db *sql.DB) *IngestStore {
	return &IngestStore{db: db}
}

// InsertEvents writes a batch of normalized events in one transaction.
// Each event gets a generated UUID.
func (s *IngestStore) InsertEvents(ctx context.Context, events []ifevent.InterfaceEvent) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert events: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO events (
			id, timestamp, device, location, interface,
			category, event_type, severity, raw_log
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert events: %w", err)
	}
	defer stmt.Close()

	for _, e := range events {
		if _, err := stmt.ExecContext(ctx,
			uuid.NewString(), e.Timestamp, e.Device, e.Location, e.Interface,
			e.Category, e.EventType, e.Severity, e.RawLog,
		); err != nil {
			return fmt.Errorf("insert event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert events: %w", err)
	}
	return nil
}

// DeleteOldEvents removes events with a timestamp before cutoff (Unix
// seconds) and returns the number deleted.
func (s *IngestStore) DeleteOldEvents(ctx context.Context, cutoff int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old events: %w", err)
	}
	return res.RowsAffected()
}

// CountEvents returns the total number of stored events.
func (s *IngestStore) CountEvents(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return count, nil
}
