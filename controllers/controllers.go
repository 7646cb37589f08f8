package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/blogem/shift-cycles/models"
	"github.com/blogem/shift-cycles/repositories"
	"github.com/blogem/shift-cycles/services"
)

// maxBodyBytes limits JSON request bodies
const maxBodyBytes = 1 << 20

// errorResponse is the JSON body of every failed request
type errorResponse struct {
	Error  string                   `json:"error"`
	Fields []models.ValidationError `json:"fields,omitempty"`
}

// writeJSON encodes data as the response body with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError maps service errors onto HTTP status codes
func writeError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	var verrs models.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: verrs})
	case errors.Is(err, repositories.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrPatternInUse):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		logger.Error().Err(err).Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// decodeJSON decodes the request body into dst, rejecting unknown fields
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// Controllers holds all controller instances
type Controllers struct {
	Pattern  *PatternController
	Schedule *ScheduleController
	Layout   *LayoutController
	Audit    *AuditController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, auditRepo repositories.AuditRepository, logger zerolog.Logger) *Controllers {
	logger = logger.With().Str("component", "http").Logger()
	return &Controllers{
		Pattern:  NewPatternController(services, logger),
		Schedule: NewScheduleController(services, logger),
		Layout:   NewLayoutController(services, logger),
		Audit:    NewAuditController(auditRepo, logger),
	}
}
