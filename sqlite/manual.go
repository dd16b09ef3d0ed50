package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/helpview"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ helpview.ManualService = (*ManualService)(nil)

// ManualService implements helpview.ManualService using SQLite.
type ManualService struct {
	db *DB
}

// NewManualService creates a new ManualService.
func NewManualService(db *DB) *ManualService {
	return &ManualService{db: db}
}

// CreateManual registers a new manual after all existing ones.
func (s *ManualService) CreateManual(ctx context.Context, manual *helpview.Manual) error {
	if err := manual.Validate(); err != nil {
		return err
	}

	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM manuals WHERE name = ?", manual.Name).Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return helpview.Errorf(helpview.ECONFLICT, "manual %q already exists", manual.Name)
	}

	var next int
	err = s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(position), -1) + 1 FROM manuals").Scan(&next)
	if err != nil {
		return err
	}

	manual.ID = uuid.New().String()
	manual.Position = next
	manual.CreatedAt = time.Now().UTC().Truncate(time.Second)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO manuals (id, name, config_path, checksum, position, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, manual.ID, manual.Name, manual.ConfigPath, manual.Checksum, manual.Position,
		formatTimestamp(manual.CreatedAt))

	return err
}

// FindManualByID retrieves a manual by ID.
func (s *ManualService) FindManualByID(ctx context.Context, id string) (*helpview.Manual, error) {
	var manual helpview.Manual
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, config_path, checksum, position, created_at
		FROM manuals
		WHERE id = ?
	`, id).Scan(&manual.ID, &manual.Name, &manual.ConfigPath, &manual.Checksum, &manual.Position, &createdAt)

	if err == sql.ErrNoRows {
		return nil, helpview.Errorf(helpview.ENOTFOUND, "manual not found")
	}
	if err != nil {
		return nil, err
	}

	manual.CreatedAt, err = parseTimestamp(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &manual, nil
}

// FindManuals retrieves manuals matching the filter in load order.
func (s *ManualService) FindManuals(ctx context.Context, filter helpview.ManualFilter) ([]*helpview.Manual, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, config_path, checksum, position, created_at FROM manuals WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY position ASC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var manuals []*helpview.Manual
	for rows.Next() {
		var manual helpview.Manual
		var createdAt string

		if err := rows.Scan(&manual.ID, &manual.Name, &manual.ConfigPath, &manual.Checksum,
			&manual.Position, &createdAt); err != nil {
			return nil, err
		}

		manual.CreatedAt, err = parseTimestamp(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		manuals = append(manuals, &manual)
	}

	return manuals, rows.Err()
}

// DeleteManual removes a manual registration.
func (s *ManualService) DeleteManual(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM manuals WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return helpview.Errorf(helpview.ENOTFOUND, "manual not found")
	}

	return nil
}
