// Package schedulefile reads self-contained schedule definitions from YAML and
// writes computed layouts back out as JSON or YAML.
//
// A definition carries its own patterns, so it can be laid out without a database:
//
//	name: Three-day nights
//	cycle_length_days: 3
//	patterns:
//	  - id: night
//	    kind: fixed
//	    start: "22:00"
//	    end: "06:00"
//	slots:
//	  - day: 3
//	    pattern: night
//	  - day: 1
//	    start: "09:00"
//	    end: "15:00"
package schedulefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/blogem/shift-cycles/models"
)

// Output formats accepted by Write
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Definition is the YAML document describing one schedule
type Definition struct {
	Name            string         `yaml:"name"`
	CycleLengthDays int            `yaml:"cycle_length_days"`
	FloatingStart   *int           `yaml:"floating_start,omitempty"`
	FloatingEnd     *int           `yaml:"floating_end,omitempty"`
	Patterns        []PatternEntry `yaml:"patterns,omitempty"`
	Slots           []SlotEntry    `yaml:"slots"`
}

// PatternEntry defines a time pattern that slots refer to by ID
type PatternEntry struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name,omitempty"`
	Kind  string `yaml:"kind,omitempty"`
	Start string `yaml:"start,omitempty"`
	End   string `yaml:"end,omitempty"`
}

// SlotEntry places a pattern and/or explicit times on a cycle day
type SlotEntry struct {
	ID      string `yaml:"id,omitempty"`
	Day     int    `yaml:"day"`
	Pattern string `yaml:"pattern,omitempty"`
	Start   string `yaml:"start,omitempty"`
	End     string `yaml:"end,omitempty"`
}

// ReadFile loads and converts the definition stored at path
func ReadFile(path string) (*models.ShiftSchedule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schedule file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a YAML definition and converts it into a schedule.
// Unknown keys are rejected.
func Decode(r io.Reader) (*models.ShiftSchedule, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("schedule file is empty")
		}
		return nil, fmt.Errorf("decode schedule file: %w", err)
	}

	return def.Schedule()
}

// Schedule converts the definition, resolving pattern references.
// Slots without an ID are numbered slot-1, slot-2, ... in file order.
func (d *Definition) Schedule() (*models.ShiftSchedule, error) {
	patterns := make(map[string]*models.NamedTimePattern, len(d.Patterns))
	for i, p := range d.Patterns {
		if p.ID == "" {
			return nil, fmt.Errorf("patterns[%d]: id is required", i)
		}
		if _, dup := patterns[p.ID]; dup {
			return nil, fmt.Errorf("patterns[%d]: duplicate id %q", i, p.ID)
		}

		kind := models.PatternKindFixed
		if p.Kind != "" {
			parsed, err := models.ParsePatternKind(p.Kind)
			if err != nil {
				return nil, fmt.Errorf("patterns[%d]: %w", i, err)
			}
			kind = parsed
		}

		name := p.Name
		if name == "" {
			name = p.ID
		}

		patterns[p.ID] = &models.NamedTimePattern{
			ID:        p.ID,
			Name:      name,
			Kind:      kind,
			StartTime: optional(p.Start),
			EndTime:   optional(p.End),
		}
	}

	slots := make([]models.ScheduleSlot, len(d.Slots))
	for i, s := range d.Slots {
		slot := models.ScheduleSlot{
			ID:                s.ID,
			DayInCycle:        models.CycleDay(s.Day),
			OverrideStartTime: optional(s.Start),
			OverrideEndTime:   optional(s.End),
		}
		if slot.ID == "" {
			slot.ID = fmt.Sprintf("slot-%d", i+1)
		}

		if s.Pattern != "" {
			pattern, ok := patterns[s.Pattern]
			if !ok {
				return nil, fmt.Errorf("slots[%d]: unknown pattern %q", i, s.Pattern)
			}
			slot.PatternID = &pattern.ID
			slot.Pattern = pattern
		}

		slots[i] = slot
	}

	schedule, err := models.NewShiftSchedule("", d.Name, d.CycleLengthDays, slots)
	if err != nil {
		return nil, err
	}
	schedule.FloatingStart = d.FloatingStart
	schedule.FloatingEnd = d.FloatingEnd

	return schedule, nil
}

// Layout is the printable form of a computed layout
type Layout struct {
	Name            string      `json:"name" yaml:"name"`
	CycleLengthDays int         `json:"cycle_length_days" yaml:"cycle_length_days"`
	FloatingStart   *int        `json:"floating_start,omitempty" yaml:"floating_start,omitempty"`
	FloatingEnd     *int        `json:"floating_end,omitempty" yaml:"floating_end,omitempty"`
	Days            []LayoutDay `json:"days" yaml:"days"`
}

// LayoutDay lists one cycle day's blocks
type LayoutDay struct {
	Day    models.CycleDay      `json:"day" yaml:"day"`
	Blocks []models.VisualBlock `json:"blocks" yaml:"blocks"`
}

// NewLayout pairs a schedule with its computed day buckets
func NewLayout(schedule *models.ShiftSchedule, days models.DayBuckets) Layout {
	out := Layout{
		Name:            schedule.Name,
		CycleLengthDays: schedule.CycleLengthDays,
		FloatingStart:   schedule.FloatingStart,
		FloatingEnd:     schedule.FloatingEnd,
		Days:            make([]LayoutDay, len(days)),
	}
	for i, blocks := range days {
		out.Days[i] = LayoutDay{Day: models.CycleDay(i + 1), Blocks: blocks}
	}
	return out
}

// Write encodes the layout in the given format
func (l Layout) Write(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(l)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(l); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q (want json or yaml)", format)
	}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
