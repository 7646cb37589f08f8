package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/blogem/shift-cycles/cache"
	"github.com/blogem/shift-cycles/layout"
	"github.com/blogem/shift-cycles/models"
	"github.com/blogem/shift-cycles/repositories"
	"github.com/blogem/shift-cycles/userctx"
)

// CycleLayout is a schedule together with its per-day visual blocks
type CycleLayout struct {
	Schedule *models.ShiftSchedule
	Days     models.DayBuckets
	Cached   bool
}

// ShiftScheduleService interface defines shift schedule business logic
type ShiftScheduleService interface {
	GetAllSchedules(ctx context.Context) ([]models.ShiftSchedule, error)
	GetSchedule(ctx context.Context, id string) (*models.ShiftSchedule, error)
	CreateSchedule(ctx context.Context, form *models.ShiftScheduleForm) (*models.ShiftSchedule, error)
	DeleteSchedule(ctx context.Context, id string) error
	GetLayout(ctx context.Context, id string) (*CycleLayout, error)
	PreviewLayout(ctx context.Context, form *models.ShiftScheduleForm) (*CycleLayout, error)
}

// shiftScheduleService implements ShiftScheduleService interface
type shiftScheduleService struct {
	scheduleRepo repositories.ShiftScheduleRepository
	patternRepo  repositories.PatternRepository
	layoutCache  cache.LayoutCache
	logger       zerolog.Logger
}

// NewShiftScheduleService creates a new shift schedule service
func NewShiftScheduleService(
	scheduleRepo repositories.ShiftScheduleRepository,
	patternRepo repositories.PatternRepository,
	layoutCache cache.LayoutCache,
	logger zerolog.Logger,
) ShiftScheduleService {
	return &shiftScheduleService{
		scheduleRepo: scheduleRepo,
		patternRepo:  patternRepo,
		layoutCache:  layoutCache,
		logger:       logger.With().Str("component", "schedule_service").Logger(),
	}
}

// GetAllSchedules retrieves schedule headers
func (s *shiftScheduleService) GetAllSchedules(ctx context.Context) ([]models.ShiftSchedule, error) {
	return s.scheduleRepo.GetAll(ctx)
}

// GetSchedule retrieves a schedule with its slots
func (s *shiftScheduleService) GetSchedule(ctx context.Context, id string) (*models.ShiftSchedule, error) {
	return s.scheduleRepo.GetByID(ctx, id)
}

// CreateSchedule validates the form, resolves slot patterns and stores the schedule
func (s *shiftScheduleService) CreateSchedule(ctx context.Context, form *models.ShiftScheduleForm) (*models.ShiftSchedule, error) {
	schedule, err := s.buildSchedule(ctx, form)
	if err != nil {
		return nil, err
	}

	schedule.CreatedBy = userctx.GetUserEmail(ctx)

	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to create shift schedule: %w", err)
	}

	s.logger.Info().
		Str("schedule_id", schedule.ID).
		Int("cycle_length_days", schedule.CycleLengthDays).
		Int("slots", len(schedule.Slots)).
		Msg("shift schedule created")

	return schedule, nil
}

// DeleteSchedule deletes a schedule and its slots
func (s *shiftScheduleService) DeleteSchedule(ctx context.Context, id string) error {
	return s.scheduleRepo.Delete(ctx, id)
}

// GetLayout computes the layout for a stored schedule, reusing a cached result
// while the schedule content is unchanged
func (s *shiftScheduleService) GetLayout(ctx context.Context, id string) (*CycleLayout, error) {
	schedule, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := cache.Key(schedule)
	if days, ok := s.layoutCache.Get(ctx, key); ok {
		s.logger.Debug().Str("schedule_id", id).Msg("layout cache hit")
		return &CycleLayout{Schedule: schedule, Days: days, Cached: true}, nil
	}

	days := layout.ComputeCycleLayout(schedule)
	s.layoutCache.Set(ctx, key, days)

	s.logger.Debug().Str("schedule_id", id).Msg("layout computed")

	return &CycleLayout{Schedule: schedule, Days: days}, nil
}

// PreviewLayout computes the layout of an unsaved schedule form
func (s *shiftScheduleService) PreviewLayout(ctx context.Context, form *models.ShiftScheduleForm) (*CycleLayout, error) {
	schedule, err := s.buildSchedule(ctx, form)
	if err != nil {
		return nil, err
	}

	// Unsaved slots are numbered by form position so block IDs stay unique
	for i := range schedule.Slots {
		schedule.Slots[i].ID = previewSlotID(i)
	}

	return &CycleLayout{Schedule: schedule, Days: layout.ComputeCycleLayout(schedule)}, nil
}

// previewSlotID names the i-th slot of an unsaved form
func previewSlotID(i int) string {
	return fmt.Sprintf("slot-%d", i+1)
}

// buildSchedule turns a validated form into a schedule with resolved patterns
func (s *shiftScheduleService) buildSchedule(ctx context.Context, form *models.ShiftScheduleForm) (*models.ShiftSchedule, error) {
	if errs := form.Validate(); errs.HasErrors() {
		return nil, errs
	}

	var errs models.ValidationErrors
	slots := make([]models.ScheduleSlot, 0, len(form.Slots))

	for i, slotForm := range form.Slots {
		slot := models.ScheduleSlot{
			DayInCycle:        models.CycleDay(slotForm.DayInCycle),
			OverrideStartTime: optionalString(slotForm.OverrideStartTime),
			OverrideEndTime:   optionalString(slotForm.OverrideEndTime),
		}

		if patternID := strings.TrimSpace(slotForm.PatternID); patternID != "" {
			pattern, err := s.patternRepo.GetByID(ctx, patternID)
			if errors.Is(err, repositories.ErrNotFound) {
				errs = append(errs, models.ValidationError{
					Field:   fmt.Sprintf("slots[%d].pattern_id", i),
					Message: fmt.Sprintf("Unknown time pattern %q", patternID),
				})
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("failed to resolve time pattern: %w", err)
			}
			slot.PatternID = &pattern.ID
			slot.Pattern = pattern
		}

		slots = append(slots, slot)
	}

	if errs.HasErrors() {
		return nil, errs
	}

	schedule, err := models.NewShiftSchedule("", strings.TrimSpace(form.Name), form.CycleLengthDays, slots)
	if err != nil {
		return nil, err
	}
	schedule.FloatingStart = form.FloatingStart
	schedule.FloatingEnd = form.FloatingEnd

	return schedule, nil
}
