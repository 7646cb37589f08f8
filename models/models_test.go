package models

import (
	"errors"
	"math"
	"testing"
)

func strPtr(s string) *string { return &s }

// Test time-of-day parsing
func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input string
		want  TimeOfDay
	}{
		{"00:00", 0},
		{"06:00", 360},
		{"09:30", 570},
		{"22:00", 1320},
		{"23:59", 1439},
		{"24:00", 1440},
	}
	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.input)
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTimeOfDay(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}

	invalid := []string{"", "9:00", "25:00", "24:01", "24:00:01", "12:60", "ab:cd", "12:3", "12-30", "12:30:60", "12:30-00", " 12:30", "07:15:00", "22:00:45"}
	for _, input := range invalid {
		if _, err := ParseTimeOfDay(input); !errors.Is(err, ErrInvalidTimeOfDay) {
			t.Errorf("ParseTimeOfDay(%q) error = %v, want ErrInvalidTimeOfDay", input, err)
		}
	}
}

func TestTimeOfDayString(t *testing.T) {
	cases := map[TimeOfDay]string{
		StartOfDay: "00:00",
		570:        "09:30",
		1439:       "23:59",
		EndOfDay:   "24:00",
	}
	for tod, want := range cases {
		if got := tod.String(); got != want {
			t.Errorf("TimeOfDay(%d).String() = %q, want %q", int(tod), got, want)
		}
	}
}

func TestCycleDayNext(t *testing.T) {
	tests := []struct {
		day    CycleDay
		length int
		want   CycleDay
	}{
		{1, 3, 2},
		{2, 3, 3},
		{3, 3, 1},
		{1, 1, 1},
		{7, 7, 1},
		{6, 7, 7},
	}
	for _, tt := range tests {
		if got := tt.day.Next(tt.length); got != tt.want {
			t.Errorf("CycleDay(%d).Next(%d) = %d, want %d", tt.day, tt.length, got, tt.want)
		}
	}

	if CycleDay(3).Index() != 2 {
		t.Errorf("Expected day 3 to have index 2, got %d", CycleDay(3).Index())
	}
	if CycleDay(0).Within(3) || CycleDay(4).Within(3) || !CycleDay(3).Within(3) {
		t.Error("Within should accept exactly 1..length")
	}
}

func TestParsePatternKind(t *testing.T) {
	if k, err := ParsePatternKind("Fixed"); err != nil || k != PatternKindFixed {
		t.Errorf("Expected fixed, got %q (%v)", k, err)
	}
	if k, err := ParsePatternKind(" floating "); err != nil || k != PatternKindFloating {
		t.Errorf("Expected floating, got %q (%v)", k, err)
	}
	if _, err := ParsePatternKind("rotating"); !errors.Is(err, ErrInvalidPatternKind) {
		t.Errorf("Expected ErrInvalidPatternKind, got %v", err)
	}
}

func TestEffectiveBounds(t *testing.T) {
	pattern := &NamedTimePattern{ID: "p1", Kind: PatternKindFixed, StartTime: strPtr("22:00"), EndTime: strPtr("06:00")}

	// Pattern only
	slot := ScheduleSlot{ID: "s1", DayInCycle: 1, Pattern: pattern}
	start, end := slot.EffectiveBounds()
	if start == nil || *start != "22:00" || end == nil || *end != "06:00" {
		t.Errorf("Expected pattern bounds 22:00-06:00, got %v-%v", start, end)
	}

	// Override wins per side
	slot.OverrideEndTime = strPtr("07:30")
	start, end = slot.EffectiveBounds()
	if *start != "22:00" || *end != "07:30" {
		t.Errorf("Expected 22:00-07:30, got %s-%s", *start, *end)
	}

	// No pattern, no override
	empty := ScheduleSlot{ID: "s2", DayInCycle: 1}
	start, end = empty.EffectiveBounds()
	if start != nil || end != nil {
		t.Error("Expected unresolved bounds for slot without pattern or override")
	}
	if empty.Kind() != "" {
		t.Errorf("Expected empty kind without pattern, got %q", empty.Kind())
	}
}

func TestNewShiftSchedule(t *testing.T) {
	slots := []ScheduleSlot{{ID: "a", DayInCycle: 1}, {ID: "b", DayInCycle: 3}}

	schedule, err := NewShiftSchedule("s", "Rotation", 3, slots)
	if err != nil {
		t.Fatalf("Expected valid schedule, got: %v", err)
	}
	if schedule.CycleLengthDays != 3 || len(schedule.Slots) != 2 {
		t.Errorf("Unexpected schedule: %+v", schedule)
	}

	if _, err := NewShiftSchedule("s", "Rotation", 0, nil); !errors.Is(err, ErrInvalidCycleLength) {
		t.Errorf("Expected ErrInvalidCycleLength, got %v", err)
	}

	if _, err := NewShiftSchedule("s", "Rotation", 2, slots); !errors.Is(err, ErrSlotDayOutOfRange) {
		t.Errorf("Expected ErrSlotDayOutOfRange, got %v", err)
	}
}

// Test ShiftScheduleForm validation
func TestShiftScheduleFormValidation(t *testing.T) {
	validForm := ShiftScheduleForm{
		Name:            "Night rotation",
		CycleLengthDays: 3,
		Slots: []ScheduleSlotForm{
			{DayInCycle: 1, PatternID: "p1"},
			{DayInCycle: 3, OverrideStartTime: "23:00", OverrideEndTime: "07:00"},
		},
	}
	if errs := validForm.Validate(); errs.HasErrors() {
		t.Errorf("Expected no errors for valid form, got: %v", errs)
	}

	negative := -5
	invalidForm := ShiftScheduleForm{
		Name:            "",
		CycleLengthDays: 2,
		FloatingStart:   &negative,
		Slots: []ScheduleSlotForm{
			{DayInCycle: 3, OverrideStartTime: "25:00"},
		},
	}
	errs := invalidForm.Validate()
	if len(errs) != 4 {
		t.Errorf("Expected 4 errors for invalid form, got: %v", errs)
	}
	if errs.Error() == "" {
		t.Error("Expected non-empty error message")
	}
}

// Test TimePatternForm validation
func TestTimePatternFormValidation(t *testing.T) {
	validForm := TimePatternForm{Name: "Night", Kind: "fixed", StartTime: "22:00", EndTime: "06:00"}
	if errs := validForm.Validate(); errs.HasErrors() {
		t.Errorf("Expected no errors for valid form, got: %v", errs)
	}

	openEnded := TimePatternForm{Name: "Flex", Kind: "floating"}
	if errs := openEnded.Validate(); errs.HasErrors() {
		t.Errorf("Expected no errors for pattern without bounds, got: %v", errs)
	}

	invalidForm := TimePatternForm{Name: "", Kind: "weekly", StartTime: "9:00"}
	if errs := invalidForm.Validate(); len(errs) != 3 {
		t.Errorf("Expected 3 errors for invalid form, got: %v", errs)
	}
}

func TestVisualBlockPercentages(t *testing.T) {
	block := VisualBlock{StartMinute: 1320, EndMinute: EndOfDay}

	if got := block.OffsetPercent(); math.Abs(got-91.6666) > 0.001 {
		t.Errorf("OffsetPercent = %f, want ~91.667", got)
	}
	if got := block.WidthPercent(); math.Abs(got-8.3333) > 0.001 {
		t.Errorf("WidthPercent = %f, want ~8.333", got)
	}
	if block.Duration() != 120 {
		t.Errorf("Duration = %d, want 120", block.Duration())
	}

	full := VisualBlock{StartMinute: StartOfDay, EndMinute: EndOfDay}
	if full.OffsetPercent() != 0 || full.WidthPercent() != 100 {
		t.Errorf("Full-day block should be 0%%/100%%, got %f/%f", full.OffsetPercent(), full.WidthPercent())
	}
}

func TestDayBucketsDay(t *testing.T) {
	buckets := DayBuckets{{}, {{ID: "x:0", DayInCycle: 2}}}
	if len(buckets.Day(2)) != 1 {
		t.Errorf("Expected one block on day 2, got %d", len(buckets.Day(2)))
	}
	if buckets.Day(3) != nil || buckets.Day(0) != nil {
		t.Error("Expected nil for days outside the buckets")
	}
}

func TestDayBucketsClone(t *testing.T) {
	var empty DayBuckets
	if empty.Clone() != nil {
		t.Error("Clone of nil buckets should be nil")
	}

	orig := DayBuckets{{{ID: "a:0", DayInCycle: 1, StartMinute: 60, EndMinute: 120}}, {}}
	clone := orig.Clone()
	clone[0][0].StartMinute = 0
	clone[1] = append(clone[1], VisualBlock{ID: "b:0"})

	if orig[0][0].StartMinute != 60 {
		t.Errorf("editing the clone changed the original block: %+v", orig[0][0])
	}
	if len(orig[1]) != 0 {
		t.Errorf("appending to the clone changed the original day: %+v", orig[1])
	}
}
