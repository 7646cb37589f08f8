package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/blogem/shift-cycles/middleware"
	"github.com/blogem/shift-cycles/repositories"
)

// NewRouter configures all routes
func NewRouter(ctrl *Controllers, auditRepo repositories.AuditRepository, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(middleware.ForwardedUser)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "shift-cycles"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.AuditLogger(auditRepo, logger))

		r.Route("/patterns", func(r chi.Router) {
			r.Get("/", ctrl.Pattern.Index)
			r.Post("/", ctrl.Pattern.Create)
			r.Get("/{id}", ctrl.Pattern.Show)
			r.Delete("/{id}", ctrl.Pattern.Delete)
		})

		r.Route("/schedules", func(r chi.Router) {
			r.Get("/", ctrl.Schedule.Index)
			r.Post("/", ctrl.Schedule.Create)
			r.Get("/{id}", ctrl.Schedule.Show)
			r.Delete("/{id}", ctrl.Schedule.Delete)
			r.Get("/{id}/layout", ctrl.Schedule.Layout)
		})

		r.Post("/layout/preview", ctrl.Layout.Preview)
		r.Get("/audit", ctrl.Audit.Index)
	})

	return r
}
