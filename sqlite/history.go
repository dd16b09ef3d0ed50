package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fwojciec/helpview"
)

// Compile-time interface verification.
var _ helpview.HistoryService = (*HistoryService)(nil)

// HistoryService implements helpview.HistoryService using SQLite.
// A single history is stored per database.
type HistoryService struct {
	db *DB
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db}
}

// LoadHistory returns the saved history, or an empty one if none was saved.
func (s *HistoryService) LoadHistory(ctx context.Context) (*helpview.History[helpview.Location], error) {
	rows, err := s.db.QueryContext(ctx, "SELECT location FROM history_entries ORDER BY position ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []helpview.Location
	for rows.Next() {
		var loc string
		if err := rows.Scan(&loc); err != nil {
			return nil, err
		}
		entries = append(entries, helpview.Location(loc))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	current := -1
	err = s.db.QueryRowContext(ctx, "SELECT current FROM history_state WHERE id = 1").Scan(&current)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}

	h, err := helpview.RestoreHistory(entries, current)
	if err != nil {
		return nil, fmt.Errorf("restoring history: %w", err)
	}
	return h, nil
}

// SaveHistory replaces the saved history with h.
func (s *HistoryService) SaveHistory(ctx context.Context, h *helpview.History[helpview.Location]) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM history_entries"); err != nil {
		return err
	}
	for i, loc := range h.Entries() {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO history_entries (position, location) VALUES (?, ?)", i, string(loc)); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO history_state (id, current) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET current = excluded.current
	`, h.Position()); err != nil {
		return err
	}

	return tx.Commit()
}
