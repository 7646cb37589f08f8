package controllers

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/blogem/shift-cycles/models"
	"github.com/blogem/shift-cycles/repositories"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

// AuditController exposes recent audit log entries
type AuditController struct {
	auditRepo repositories.AuditRepository
	logger    zerolog.Logger
}

// NewAuditController creates a new audit controller
func NewAuditController(auditRepo repositories.AuditRepository, logger zerolog.Logger) *AuditController {
	return &AuditController{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// Index handles GET /api/audit?limit=N
func (c *AuditController) Index(w http.ResponseWriter, r *http.Request) {
	limit := defaultAuditLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = min(n, maxAuditLimit)
	}

	entries, err := c.auditRepo.GetRecent(r.Context(), limit)
	if err != nil {
		writeError(w, c.logger, err)
		return
	}

	if entries == nil {
		entries = []models.AuditLogEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}
