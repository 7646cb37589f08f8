package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/blogem/shift-cycles/models"
	"github.com/blogem/shift-cycles/services"
)

// ScheduleController handles shift schedule requests
type ScheduleController struct {
	services *services.Services
	logger   zerolog.Logger
}

// NewScheduleController creates a new shift schedule controller
func NewScheduleController(services *services.Services, logger zerolog.Logger) *ScheduleController {
	return &ScheduleController{
		services: services,
		logger:   logger,
	}
}

// Index handles GET /api/schedules
func (c *ScheduleController) Index(w http.ResponseWriter, r *http.Request) {
	schedules, err := c.services.Schedule.GetAllSchedules(r.Context())
	if err != nil {
		writeError(w, c.logger, err)
		return
	}

	if schedules == nil {
		schedules = []models.ShiftSchedule{}
	}
	writeJSON(w, http.StatusOK, schedules)
}

// Show handles GET /api/schedules/{id}
func (c *ScheduleController) Show(w http.ResponseWriter, r *http.Request) {
	schedule, err := c.services.Schedule.GetSchedule(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, c.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, schedule)
}

// Create handles POST /api/schedules
func (c *ScheduleController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.ShiftScheduleForm
	if err := decodeJSON(w, r, &form); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	schedule, err := c.services.Schedule.CreateSchedule(r.Context(), &form)
	if err != nil {
		writeError(w, c.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, schedule)
}

// Delete handles DELETE /api/schedules/{id}
func (c *ScheduleController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.services.Schedule.DeleteSchedule(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, c.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Layout handles GET /api/schedules/{id}/layout
func (c *ScheduleController) Layout(w http.ResponseWriter, r *http.Request) {
	result, err := c.services.Schedule.GetLayout(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, c.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, NewLayoutView(result))
}
