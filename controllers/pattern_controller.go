package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/blogem/shift-cycles/models"
	"github.com/blogem/shift-cycles/services"
)

// PatternController handles time pattern requests
type PatternController struct {
	services *services.Services
	logger   zerolog.Logger
}

// NewPatternController creates a new time pattern controller
func NewPatternController(services *services.Services, logger zerolog.Logger) *PatternController {
	return &PatternController{
		services: services,
		logger:   logger,
	}
}

// Index handles GET /api/patterns
func (c *PatternController) Index(w http.ResponseWriter, r *http.Request) {
	patterns, err := c.services.Pattern.GetAllPatterns(r.Context())
	if err != nil {
		writeError(w, c.logger, err)
		return
	}

	if patterns == nil {
		patterns = []models.NamedTimePattern{}
	}
	writeJSON(w, http.StatusOK, patterns)
}

// Show handles GET /api/patterns/{id}
func (c *PatternController) Show(w http.ResponseWriter, r *http.Request) {
	pattern, err := c.services.Pattern.GetPattern(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, c.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, pattern)
}

// Create handles POST /api/patterns
func (c *PatternController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.TimePatternForm
	if err := decodeJSON(w, r, &form); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	pattern, err := c.services.Pattern.CreatePattern(r.Context(), &form)
	if err != nil {
		writeError(w, c.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, pattern)
}

// Delete handles DELETE /api/patterns/{id}
func (c *PatternController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.services.Pattern.DeletePattern(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, c.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
