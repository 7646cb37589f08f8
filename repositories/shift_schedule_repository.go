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

// ShiftScheduleRepository interface defines shift schedule database operations
type ShiftScheduleRepository interface {
	GetAll(ctx context.Context) ([]models.ShiftSchedule, error)
	GetByID(ctx context.Context, id string) (*models.ShiftSchedule, error)
	Create(ctx context.Context, schedule *models.ShiftSchedule) error
	Delete(ctx context.Context, id string) error
}

// shiftScheduleRepository implements ShiftScheduleRepository interface
type shiftScheduleRepository struct {
	db *sql.DB
}

// NewShiftScheduleRepository creates a new shift schedule repository
func NewShiftScheduleRepository(db *sql.DB) ShiftScheduleRepository {
	return &shiftScheduleRepository{db: db}
}

// GetAll retrieves schedule headers (without slots) ordered by name
func (r *shiftScheduleRepository) GetAll(ctx context.Context) ([]models.ShiftSchedule, error) {
	query := `
		SELECT id, name, cycle_length_days, floating_start, floating_end, created_by, created_at
		FROM shift_schedules
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift schedules: %w", err)
	}
	defer rows.Close()

	var schedules []models.ShiftSchedule
	for rows.Next() {
		var schedule models.ShiftSchedule
		if err := rows.Scan(
			&schedule.ID,
			&schedule.Name,
			&schedule.CycleLengthDays,
			&schedule.FloatingStart,
			&schedule.FloatingEnd,
			&schedule.CreatedBy,
			&schedule.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift schedule: %w", err)
		}
		schedules = append(schedules, schedule)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shift schedules: %w", err)
	}

	return schedules, nil
}

// GetByID retrieves a schedule with its slots, in slot order, and their referenced patterns
func (r *shiftScheduleRepository) GetByID(ctx context.Context, id string) (*models.ShiftSchedule, error) {
	query := `
		SELECT id, name, cycle_length_days, floating_start, floating_end, created_by, created_at
		FROM shift_schedules
		WHERE id = ?
	`

	var schedule models.ShiftSchedule
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&schedule.ID,
		&schedule.Name,
		&schedule.CycleLengthDays,
		&schedule.FloatingStart,
		&schedule.FloatingEnd,
		&schedule.CreatedBy,
		&schedule.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("shift schedule with ID %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shift schedule: %w", err)
	}

	slots, err := r.getSlots(ctx, id)
	if err != nil {
		return nil, err
	}
	schedule.Slots = slots

	return &schedule, nil
}

// getSlots loads a schedule's slots joined with their patterns
func (r *shiftScheduleRepository) getSlots(ctx context.Context, scheduleID string) ([]models.ScheduleSlot, error) {
	query := `
		SELECT
			s.id, s.day_in_cycle, s.pattern_id, s.override_start_time, s.override_end_time,
			p.name, p.kind, p.start_time, p.end_time
		FROM schedule_slots s
		LEFT JOIN time_patterns p ON s.pattern_id = p.id
		WHERE s.schedule_id = ?
		ORDER BY s.position ASC
	`

	rows, err := r.db.QueryContext(ctx, query, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule slots: %w", err)
	}
	defer rows.Close()

	slots := []models.ScheduleSlot{}
	for rows.Next() {
		var slot models.ScheduleSlot
		var patternName, patternKind sql.NullString
		var patternStart, patternEnd *string

		if err := rows.Scan(
			&slot.ID,
			&slot.DayInCycle,
			&slot.PatternID,
			&slot.OverrideStartTime,
			&slot.OverrideEndTime,
			&patternName,
			&patternKind,
			&patternStart,
			&patternEnd,
		); err != nil {
			return nil, fmt.Errorf("failed to scan schedule slot: %w", err)
		}

		// Handle the optional pattern join
		if slot.PatternID != nil && patternKind.Valid {
			slot.Pattern = &models.NamedTimePattern{
				ID:        *slot.PatternID,
				Name:      patternName.String,
				Kind:      models.PatternKind(patternKind.String),
				StartTime: patternStart,
				EndTime:   patternEnd,
			}
		}

		slots = append(slots, slot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule slots: %w", err)
	}

	return slots, nil
}

// Create stores a schedule and its slots in one transaction, assigning IDs where missing
func (r *shiftScheduleRepository) Create(ctx context.Context, schedule *models.ShiftSchedule) error {
	if schedule.ID == "" {
		schedule.ID = uuid.NewString()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if schedule.CreatedAt.IsZero() {
		schedule.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO shift_schedules (id, name, cycle_length_days, floating_start, floating_end, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = tx.ExecContext(ctx, query,
		schedule.ID,
		schedule.Name,
		schedule.CycleLengthDays,
		schedule.FloatingStart,
		schedule.FloatingEnd,
		schedule.CreatedBy,
		schedule.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create shift schedule: %w", err)
	}

	slotQuery := `
		INSERT INTO schedule_slots (id, schedule_id, position, day_in_cycle, pattern_id, override_start_time, override_end_time)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	for i := range schedule.Slots {
		slot := &schedule.Slots[i]
		if slot.ID == "" {
			slot.ID = uuid.NewString()
		}

		if _, err := tx.ExecContext(ctx, slotQuery,
			slot.ID,
			schedule.ID,
			i,
			slot.DayInCycle,
			slot.PatternID,
			slot.OverrideStartTime,
			slot.OverrideEndTime,
		); err != nil {
			return fmt.Errorf("failed to create schedule slot %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit shift schedule: %w", err)
	}

	return nil
}

// Delete deletes a schedule; its slots are removed by cascade
func (r *shiftScheduleRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM shift_schedules WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift schedule: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("shift schedule with ID %s: %w", id, ErrNotFound)
	}

	return nil
}
