package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blogem/shift-cycles/models"
	"github.com/blogem/shift-cycles/repositories"
	"github.com/blogem/shift-cycles/userctx"
)

// ErrPatternInUse is returned when deleting a pattern that schedule slots still reference
var ErrPatternInUse = errors.New("time pattern is referenced by schedule slots")

// PatternService interface defines time pattern business logic
type PatternService interface {
	GetAllPatterns(ctx context.Context) ([]models.NamedTimePattern, error)
	GetPattern(ctx context.Context, id string) (*models.NamedTimePattern, error)
	CreatePattern(ctx context.Context, form *models.TimePatternForm) (*models.NamedTimePattern, error)
	DeletePattern(ctx context.Context, id string) error
}

// patternService implements PatternService interface
type patternService struct {
	patternRepo repositories.PatternRepository
}

// NewPatternService creates a new time pattern service
func NewPatternService(patternRepo repositories.PatternRepository) PatternService {
	return &patternService{
		patternRepo: patternRepo,
	}
}

// GetAllPatterns retrieves all time patterns
func (s *patternService) GetAllPatterns(ctx context.Context) ([]models.NamedTimePattern, error) {
	return s.patternRepo.GetAll(ctx)
}

// GetPattern retrieves a time pattern by ID
func (s *patternService) GetPattern(ctx context.Context, id string) (*models.NamedTimePattern, error) {
	return s.patternRepo.GetByID(ctx, id)
}

// CreatePattern creates a new time pattern with validation
func (s *patternService) CreatePattern(ctx context.Context, form *models.TimePatternForm) (*models.NamedTimePattern, error) {
	if errs := form.Validate(); errs.HasErrors() {
		return nil, errs
	}

	kind, err := models.ParsePatternKind(form.Kind)
	if err != nil {
		return nil, err
	}

	pattern := &models.NamedTimePattern{
		Name:      strings.TrimSpace(form.Name),
		Kind:      kind,
		StartTime: optionalString(form.StartTime),
		EndTime:   optionalString(form.EndTime),
	}
	pattern.CreatedBy = userctx.GetUserEmail(ctx)

	if err := s.patternRepo.Create(ctx, pattern); err != nil {
		return nil, fmt.Errorf("failed to create time pattern: %w", err)
	}

	return pattern, nil
}

// DeletePattern deletes a time pattern that no schedule slot references
func (s *patternService) DeletePattern(ctx context.Context, id string) error {
	if _, err := s.patternRepo.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.patternRepo.CountReferences(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check pattern references: %w", err)
	}

	if count > 0 {
		return fmt.Errorf("%w: %d slot(s) use it", ErrPatternInUse, count)
	}

	if err := s.patternRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete time pattern: %w", err)
	}

	return nil
}

// optionalString returns nil for blank form values
func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
