package models

import (
	"errors"
	"fmt"
)

// MinutesPerDay is the length of the 24-hour timeline in minutes
const MinutesPerDay = 24 * 60

const (
	// StartOfDay is local midnight
	StartOfDay TimeOfDay = 0
	// EndOfDay is the exclusive upper bound of a day ("24:00")
	EndOfDay TimeOfDay = MinutesPerDay
)

// ErrInvalidTimeOfDay is returned when a string is not a valid "HH:MM" time
var ErrInvalidTimeOfDay = errors.New("invalid time of day")

// TimeOfDay is a minute offset from local midnight in [0, 1440].
// 1440 means "end of day" and is distinct from 0.
type TimeOfDay int

// ParseTimeOfDay parses "HH:MM" into a TimeOfDay.
// "24:00" is accepted as EndOfDay; any other hour must be 00-23.
func ParseTimeOfDay(timeStr string) (TimeOfDay, error) {
	if len(timeStr) != 5 || timeStr[2] != ':' || !isNumeric(timeStr[0:2]) || !isNumeric(timeStr[3:5]) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, timeStr)
	}

	h := parseNumber(timeStr[0:2])
	m := parseNumber(timeStr[3:5])
	if m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, timeStr)
	}

	return TimeOfDay(h*60 + m), nil
}

// Minutes returns the offset from midnight in minutes
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// String renders the time as "HH:MM"; EndOfDay renders as "24:00"
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// isValidTimeFormat validates HH:MM format
func isValidTimeFormat(timeStr string) bool {
	_, err := ParseTimeOfDay(timeStr)
	return err == nil
}

// isNumeric checks if a string contains only digits
func isNumeric(s string) bool {
	for _, char := range s {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

// parseNumber converts a numeric string to int (assumes valid input)
func parseNumber(s string) int {
	result := 0
	for _, char := range s {
		result = result*10 + int(char-'0')
	}
	return result
}
