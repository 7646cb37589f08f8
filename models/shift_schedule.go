package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInvalidCycleLength is returned when a schedule's cycle is shorter than one day
	ErrInvalidCycleLength = errors.New("cycle length must be at least 1 day")
	// ErrSlotDayOutOfRange is returned when a slot's day falls outside the cycle
	ErrSlotDayOutOfRange = errors.New("slot day is outside the cycle")
)

// ScheduleSlot is one cell of a cycle: a day assigned a pattern and/or explicit override times
type ScheduleSlot struct {
	ID                string            `json:"id" db:"id"`
	DayInCycle        CycleDay          `json:"day_in_cycle" db:"day_in_cycle"`
	PatternID         *string           `json:"pattern_id,omitempty" db:"pattern_id"`
	Pattern           *NamedTimePattern `json:"pattern,omitempty"`
	OverrideStartTime *string           `json:"override_start_time,omitempty" db:"override_start_time"`
	OverrideEndTime   *string           `json:"override_end_time,omitempty" db:"override_end_time"`
}

// EffectiveBounds resolves the slot's start and end strings: the override when present,
// otherwise the referenced pattern's value. A nil side means it is unresolved.
func (s *ScheduleSlot) EffectiveBounds() (start, end *string) {
	start, end = s.OverrideStartTime, s.OverrideEndTime
	if s.Pattern != nil {
		if start == nil {
			start = s.Pattern.StartTime
		}
		if end == nil {
			end = s.Pattern.EndTime
		}
	}
	return start, end
}

// Kind returns the referenced pattern's kind, or "" when the slot has no pattern
func (s *ScheduleSlot) Kind() PatternKind {
	if s.Pattern == nil {
		return ""
	}
	return s.Pattern.Kind
}

// ShiftSchedule is a repeating duty cycle of CycleLengthDays days
type ShiftSchedule struct {
	ID              string         `json:"id" db:"id"`
	Name            string         `json:"name" db:"name"`
	CycleLengthDays int            `json:"cycle_length_days" db:"cycle_length_days"`
	Slots           []ScheduleSlot `json:"slots"`
	FloatingStart   *int           `json:"floating_start,omitempty" db:"floating_start"` // minutes, display only
	FloatingEnd     *int           `json:"floating_end,omitempty" db:"floating_end"`     // minutes, display only
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`

	AuditFields
}

// NewShiftSchedule builds a schedule and enforces its construction invariants:
// the cycle is at least one day long and every slot's day lies inside the cycle.
func NewShiftSchedule(id, name string, cycleLengthDays int, slots []ScheduleSlot) (*ShiftSchedule, error) {
	if cycleLengthDays < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCycleLength, cycleLengthDays)
	}

	for _, slot := range slots {
		if !slot.DayInCycle.Within(cycleLengthDays) {
			return nil, fmt.Errorf("%w: slot %s has day %d, cycle is %d days",
				ErrSlotDayOutOfRange, slot.ID, slot.DayInCycle, cycleLengthDays)
		}
	}

	return &ShiftSchedule{
		ID:              id,
		Name:            name,
		CycleLengthDays: cycleLengthDays,
		Slots:           slots,
	}, nil
}

// ShiftScheduleForm represents form data for creating a schedule
type ShiftScheduleForm struct {
	Name            string             `json:"name"`
	CycleLengthDays int                `json:"cycle_length_days"`
	FloatingStart   *int               `json:"floating_start,omitempty"`
	FloatingEnd     *int               `json:"floating_end,omitempty"`
	Slots           []ScheduleSlotForm `json:"slots"`
}

// ScheduleSlotForm represents one slot row of a schedule form
type ScheduleSlotForm struct {
	DayInCycle        int    `json:"day_in_cycle"`
	PatternID         string `json:"pattern_id,omitempty"`
	OverrideStartTime string `json:"override_start_time,omitempty"`
	OverrideEndTime   string `json:"override_end_time,omitempty"`
}

// Validate validates the schedule form data
func (f *ShiftScheduleForm) Validate() ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "Name is required"})
	}

	if len(f.Name) > 100 {
		errs = append(errs, ValidationError{Field: "name", Message: "Name must be less than 100 characters"})
	}

	if f.CycleLengthDays < 1 {
		errs = append(errs, ValidationError{Field: "cycle_length_days", Message: "Cycle length must be at least 1 day"})
	}

	if f.FloatingStart != nil && *f.FloatingStart < 0 {
		errs = append(errs, ValidationError{Field: "floating_start", Message: "Floating start must not be negative"})
	}

	if f.FloatingEnd != nil && *f.FloatingEnd < 0 {
		errs = append(errs, ValidationError{Field: "floating_end", Message: "Floating end must not be negative"})
	}

	for i, slot := range f.Slots {
		field := fmt.Sprintf("slots[%d]", i)

		if f.CycleLengthDays >= 1 && !CycleDay(slot.DayInCycle).Within(f.CycleLengthDays) {
			errs = append(errs, ValidationError{
				Field:   field + ".day_in_cycle",
				Message: fmt.Sprintf("Day must be between 1 and %d", f.CycleLengthDays),
			})
		}

		if slot.OverrideStartTime != "" && !isValidTimeFormat(slot.OverrideStartTime) {
			errs = append(errs, ValidationError{Field: field + ".override_start_time", Message: "Start time must be in HH:MM format (e.g., 22:00)"})
		}

		if slot.OverrideEndTime != "" && !isValidTimeFormat(slot.OverrideEndTime) {
			errs = append(errs, ValidationError{Field: field + ".override_end_time", Message: "End time must be in HH:MM format (e.g., 06:00)"})
		}
	}

	return errs
}
