package services

import (
	"github.com/rs/zerolog"

	"github.com/blogem/shift-cycles/cache"
	"github.com/blogem/shift-cycles/repositories"
)

// Services holds all service instances
type Services struct {
	Pattern  PatternService
	Schedule ShiftScheduleService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, layoutCache cache.LayoutCache, logger zerolog.Logger) *Services {
	return &Services{
		Pattern:  NewPatternService(repos.Pattern),
		Schedule: NewShiftScheduleService(repos.Schedule, repos.Pattern, layoutCache, logger),
	}
}
