package repositories

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("record not found")

// Repositories struct holds all repository interfaces
type Repositories struct {
	Pattern  PatternRepository
	Schedule ShiftScheduleRepository
	Audit    AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Pattern:  NewPatternRepository(db),
		Schedule: NewShiftScheduleRepository(db),
		Audit:    NewAuditRepository(db),
	}
}
