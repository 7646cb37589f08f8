package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blogem/shift-cycles/models"
)

// PatternRepository interface defines time pattern database operations
type PatternRepository interface {
	GetAll(ctx context.Context) ([]models.NamedTimePattern, error)
	GetByID(ctx context.Context, id string) (*models.NamedTimePattern, error)
	Create(ctx context.Context, pattern *models.NamedTimePattern) error
	Delete(ctx context.Context, id string) error
	CountReferences(ctx context.Context, id string) (int, error)
}

// patternRepository implements PatternRepository interface
type patternRepository struct {
	db *sql.DB
}

// NewPatternRepository creates a new time pattern repository
func NewPatternRepository(db *sql.DB) PatternRepository {
	return &patternRepository{db: db}
}

// GetAll retrieves all time patterns ordered by name
func (r *patternRepository) GetAll(ctx context.Context) ([]models.NamedTimePattern, error) {
	query := `
		SELECT id, name, kind, start_time, end_time, created_by, created_at
		FROM time_patterns
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query time patterns: %w", err)
	}
	defer rows.Close()

	var patterns []models.NamedTimePattern
	for rows.Next() {
		var pattern models.NamedTimePattern
		if err := rows.Scan(
			&pattern.ID,
			&pattern.Name,
			&pattern.Kind,
			&pattern.StartTime,
			&pattern.EndTime,
			&pattern.CreatedBy,
			&pattern.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan time pattern: %w", err)
		}
		patterns = append(patterns, pattern)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating time patterns: %w", err)
	}

	return patterns, nil
}

// GetByID retrieves a time pattern by ID
func (r *patternRepository) GetByID(ctx context.Context, id string) (*models.NamedTimePattern, error) {
	query := `
		SELECT id, name, kind, start_time, end_time, created_by, created_at
		FROM time_patterns
		WHERE id = ?
	`

	var pattern models.NamedTimePattern
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&pattern.ID,
		&pattern.Name,
		&pattern.Kind,
		&pattern.StartTime,
		&pattern.EndTime,
		&pattern.CreatedBy,
		&pattern.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("time pattern with ID %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get time pattern: %w", err)
	}

	return &pattern, nil
}

// Create creates a new time pattern, assigning an ID when none is set
func (r *patternRepository) Create(ctx context.Context, pattern *models.NamedTimePattern) error {
	if pattern.ID == "" {
		pattern.ID = uuid.NewString()
	}

	if pattern.CreatedAt.IsZero() {
		pattern.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO time_patterns (id, name, kind, start_time, end_time, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		pattern.ID,
		pattern.Name,
		pattern.Kind,
		pattern.StartTime,
		pattern.EndTime,
		pattern.CreatedBy,
		pattern.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create time pattern: %w", err)
	}

	return nil
}

// Delete deletes a time pattern by ID
func (r *patternRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM time_patterns WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete time pattern: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("time pattern with ID %s: %w", id, ErrNotFound)
	}

	return nil
}

// CountReferences counts schedule slots that reference the pattern
func (r *patternRepository) CountReferences(ctx context.Context, id string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM schedule_slots WHERE pattern_id = ?`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count references to time pattern: %w", err)
	}

	return count, nil
}
