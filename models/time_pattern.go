package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// PatternKind classifies a time pattern for display. It never alters layout arithmetic.
type PatternKind string

const (
	PatternKindFixed    PatternKind = "fixed"
	PatternKindFloating PatternKind = "floating"
)

// ErrInvalidPatternKind is returned for kinds other than fixed and floating
var ErrInvalidPatternKind = errors.New("invalid pattern kind")

// ParsePatternKind converts a string into one of the known pattern kinds
func ParsePatternKind(s string) (PatternKind, error) {
	switch PatternKind(strings.ToLower(strings.TrimSpace(s))) {
	case PatternKindFixed:
		return PatternKindFixed, nil
	case PatternKindFloating:
		return PatternKindFloating, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPatternKind, s)
}

// NamedTimePattern is a reusable time-of-day definition shared across slots
type NamedTimePattern struct {
	ID        string      `json:"id" db:"id"`
	Name      string      `json:"name" db:"name"`
	Kind      PatternKind `json:"kind" db:"kind"`
	StartTime *string     `json:"start_time,omitempty" db:"start_time"` // "22:00" format
	EndTime   *string     `json:"end_time,omitempty" db:"end_time"`     // "06:00" format
	CreatedAt time.Time   `json:"created_at" db:"created_at"`

	AuditFields
}

// TimePatternForm represents form data for creating a time pattern
type TimePatternForm struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	StartTime string `json:"start_time"` // optional
	EndTime   string `json:"end_time"`   // optional
}

// Validate validates the time pattern form data
func (f *TimePatternForm) Validate() ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "Name is required"})
	}

	if len(f.Name) > 100 {
		errs = append(errs, ValidationError{Field: "name", Message: "Name must be less than 100 characters"})
	}

	if _, err := ParsePatternKind(f.Kind); err != nil {
		errs = append(errs, ValidationError{Field: "kind", Message: "Kind must be either fixed or floating"})
	}

	if f.StartTime != "" && !isValidTimeFormat(f.StartTime) {
		errs = append(errs, ValidationError{Field: "start_time", Message: "Start time must be in HH:MM format (e.g., 22:00)"})
	}

	if f.EndTime != "" && !isValidTimeFormat(f.EndTime) {
		errs = append(errs, ValidationError{Field: "end_time", Message: "End time must be in HH:MM format (e.g., 06:00)"})
	}

	return errs
}
