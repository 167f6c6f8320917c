// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/bob/internal/ports/secondary"
)

// HistoryRepository implements secondary.HistoryRepository with SQLite.
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new SQLite history repository.
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Record persists a new journal entry.
func (r *HistoryRepository) Record(ctx context.Context, record *secondary.GenerationRecord) error {
	var actor sql.NullString
	if record.Actor != "" {
		actor = sql.NullString{String: record.Actor, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO generations (kind, name, path, status, actor) VALUES (?, ?, ?, ?, ?)",
		record.Kind, record.Name, record.Path, record.Status, actor,
	)
	if err != nil {
		return fmt.Errorf("failed to record generation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read generation id: %w", err)
	}
	record.ID = id

	return nil
}

// List retrieves journal entries, newest first.
func (r *HistoryRepository) List(ctx context.Context, limit int) ([]*secondary.GenerationRecord, error) {
	query := "SELECT id, kind, name, path, status, actor, created_at FROM generations ORDER BY id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}
	defer rows.Close()

	var records []*secondary.GenerationRecord
	for rows.Next() {
		var (
			actor     sql.NullString
			createdAt time.Time
		)

		record := &secondary.GenerationRecord{}
		err := rows.Scan(&record.ID, &record.Kind, &record.Name, &record.Path, &record.Status, &actor, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan generation: %w", err)
		}

		record.Actor = actor.String
		record.CreatedAt = createdAt.Format(time.RFC3339)

		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}

	return records, nil
}

// Ensure HistoryRepository implements the interface.
var _ secondary.HistoryRepository = (*HistoryRepository)(nil)
