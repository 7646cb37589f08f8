package repositories

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/blogem/shift-cycles/database"
	"github.com/blogem/shift-cycles/models"
)

func strPtr(s string) *string { return &s }

func setupTestDB(t *testing.T) *sql.DB {
	// Initialize test database using the actual migration system
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := database.InitializeDatabase(context.Background(), dbPath, zerolog.Nop())
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestPatternRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewPatternRepository(db)

	// Test Create
	pattern := &models.NamedTimePattern{
		Name:      "Night",
		Kind:      models.PatternKindFixed,
		StartTime: strPtr("22:00"),
		EndTime:   strPtr("06:00"),
	}

	if err := repo.Create(ctx, pattern); err != nil {
		t.Fatalf("Failed to create time pattern: %v", err)
	}

	if pattern.ID == "" {
		t.Error("Expected pattern ID to be set after creation")
	}
	if pattern.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set after creation")
	}

	// Open-ended pattern
	flex := &models.NamedTimePattern{Name: "Flex", Kind: models.PatternKindFloating}
	if err := repo.Create(ctx, flex); err != nil {
		t.Fatalf("Failed to create open-ended pattern: %v", err)
	}

	// Test GetByID
	retrieved, err := repo.GetByID(ctx, pattern.ID)
	if err != nil {
		t.Fatalf("Failed to get time pattern by ID: %v", err)
	}

	if retrieved.Name != "Night" || retrieved.Kind != models.PatternKindFixed {
		t.Errorf("Expected fixed Night pattern, got %+v", retrieved)
	}
	if retrieved.StartTime == nil || *retrieved.StartTime != "22:00" {
		t.Errorf("Expected start 22:00, got %v", retrieved.StartTime)
	}

	gotFlex, err := repo.GetByID(ctx, flex.ID)
	if err != nil {
		t.Fatalf("Failed to get open-ended pattern: %v", err)
	}
	if gotFlex.StartTime != nil || gotFlex.EndTime != nil {
		t.Error("Expected NULL bounds to round-trip as nil")
	}

	// Test GetAll (ordered by name)
	patterns, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("Failed to get all time patterns: %v", err)
	}

	if len(patterns) != 2 || patterns[0].Name != "Flex" {
		t.Errorf("Expected 2 patterns starting with Flex, got %+v", patterns)
	}

	// Test CountReferences
	count, err := repo.CountReferences(ctx, pattern.ID)
	if err != nil {
		t.Fatalf("Failed to count references: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 references, got %d", count)
	}

	// Test Delete
	if err := repo.Delete(ctx, pattern.ID); err != nil {
		t.Fatalf("Failed to delete time pattern: %v", err)
	}

	// Verify deletion
	if _, err := repo.GetByID(ctx, pattern.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for deleted pattern, got %v", err)
	}
	if err := repo.Delete(ctx, pattern.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestShiftScheduleRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	patterns := NewPatternRepository(db)
	repo := NewShiftScheduleRepository(db)

	night := &models.NamedTimePattern{Name: "Night", Kind: models.PatternKindFixed, StartTime: strPtr("22:00"), EndTime: strPtr("06:00")}
	if err := patterns.Create(ctx, night); err != nil {
		t.Fatalf("Failed to create pattern: %v", err)
	}

	floatingStart := 15
	schedule := &models.ShiftSchedule{
		Name:            "Three-day nights",
		CycleLengthDays: 3,
		FloatingStart:   &floatingStart,
		Slots: []models.ScheduleSlot{
			{DayInCycle: 2, PatternID: &night.ID},
			{DayInCycle: 3, OverrideStartTime: strPtr("23:00"), OverrideEndTime: strPtr("07:00")},
			{DayInCycle: 2, PatternID: &night.ID, OverrideEndTime: strPtr("05:00")},
		},
	}
	schedule.CreatedBy = "planner@example.com"

	// Test Create
	if err := repo.Create(ctx, schedule); err != nil {
		t.Fatalf("Failed to create shift schedule: %v", err)
	}

	if schedule.ID == "" {
		t.Fatal("Expected schedule ID to be set after creation")
	}
	for i, slot := range schedule.Slots {
		if slot.ID == "" {
			t.Errorf("Expected slot %d ID to be set after creation", i)
		}
	}

	// Test GetByID
	retrieved, err := repo.GetByID(ctx, schedule.ID)
	if err != nil {
		t.Fatalf("Failed to get shift schedule by ID: %v", err)
	}

	if retrieved.CycleLengthDays != 3 || retrieved.CreatedBy != "planner@example.com" {
		t.Errorf("Unexpected schedule header: %+v", retrieved)
	}
	if retrieved.FloatingStart == nil || *retrieved.FloatingStart != 15 || retrieved.FloatingEnd != nil {
		t.Errorf("Expected floating start 15 and no floating end, got %v/%v", retrieved.FloatingStart, retrieved.FloatingEnd)
	}
	if len(retrieved.Slots) != 3 {
		t.Fatalf("Expected 3 slots, got %d", len(retrieved.Slots))
	}

	// Slots keep their insertion order
	for i, slot := range retrieved.Slots {
		if slot.ID != schedule.Slots[i].ID {
			t.Errorf("Slot %d: expected ID %s, got %s", i, schedule.Slots[i].ID, slot.ID)
		}
	}

	first := retrieved.Slots[0]
	if first.Pattern == nil || first.Pattern.Kind != models.PatternKindFixed || *first.Pattern.StartTime != "22:00" {
		t.Errorf("Expected joined Night pattern on first slot, got %+v", first.Pattern)
	}
	if retrieved.Slots[1].Pattern != nil {
		t.Error("Expected no pattern on override-only slot")
	}
	if end := retrieved.Slots[2].OverrideEndTime; end == nil || *end != "05:00" {
		t.Errorf("Expected override end 05:00 on third slot, got %v", end)
	}

	// Pattern references are counted
	count, err := patterns.CountReferences(ctx, night.ID)
	if err != nil {
		t.Fatalf("Failed to count references: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 references to Night, got %d", count)
	}

	// A referenced pattern cannot be deleted
	if err := patterns.Delete(ctx, night.ID); err == nil {
		t.Error("Expected foreign key error deleting a referenced pattern")
	}

	// Test GetAll
	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("Failed to get all shift schedules: %v", err)
	}
	if len(all) != 1 || all[0].Slots != nil {
		t.Errorf("Expected 1 schedule header without slots, got %+v", all)
	}

	// Test Delete cascades to slots
	if err := repo.Delete(ctx, schedule.ID); err != nil {
		t.Fatalf("Failed to delete shift schedule: %v", err)
	}

	if _, err := repo.GetByID(ctx, schedule.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for deleted schedule, got %v", err)
	}

	count, err = patterns.CountReferences(ctx, night.ID)
	if err != nil {
		t.Fatalf("Failed to count references: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected slots to be deleted with their schedule, got %d references", count)
	}
}

func TestShiftScheduleRepository_CreateRollsBackOnBadSlot(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewShiftScheduleRepository(db)

	missing := "no-such-pattern"
	schedule := &models.ShiftSchedule{
		Name:            "Broken",
		CycleLengthDays: 2,
		Slots:           []models.ScheduleSlot{{DayInCycle: 1, PatternID: &missing}},
	}

	if err := repo.Create(ctx, schedule); err == nil {
		t.Fatal("Expected foreign key error for unknown pattern")
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("Failed to get all shift schedules: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("Expected transaction rollback to leave no schedules, got %d", len(all))
	}
}

func TestAuditRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewAuditRepository(db)

	entry := &models.AuditLogEntry{
		UserEmail: "planner@example.com",
		Method:    "POST",
		Path:      "/api/schedules",
		Payload:   `{"name":"Nights"}`,
	}

	if err := repo.Create(ctx, entry); err != nil {
		t.Fatalf("Failed to create audit entry: %v", err)
	}
	if entry.ID == 0 {
		t.Error("Expected audit entry ID to be set")
	}

	entries, err := repo.GetRecent(ctx, 10)
	if err != nil {
		t.Fatalf("Failed to get recent audit entries: %v", err)
	}
	if len(entries) != 1 || entries[0].Path != "/api/schedules" || entries[0].Payload != `{"name":"Nights"}` {
		t.Errorf("Unexpected audit entries: %+v", entries)
	}
}
