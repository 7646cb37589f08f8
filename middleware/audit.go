package middleware

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/blogem/shift-cycles/models"
	"github.com/blogem/shift-cycles/repositories"
	"github.com/blogem/shift-cycles/userctx"
)

// maxAuditPayload caps the request body stored with an audit entry
const maxAuditPayload = 64 << 10

// AuditLogger middleware records all POST/PUT/PATCH/DELETE requests
func AuditLogger(auditRepo repositories.AuditRepository, logger zerolog.Logger) func(http.Handler) http.Handler {
	logger = logger.With().Str("component", "audit").Logger()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutation(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			entry := &models.AuditLogEntry{
				RequestID: chimiddleware.GetReqID(r.Context()),
				UserEmail: userctx.GetUserEmail(r.Context()),
				Method:    r.Method,
				Path:      r.URL.Path,
				Payload:   capturePayload(r),
				UserAgent: r.UserAgent(),
				IPAddress: getIPAddress(r),
			}

			// Log asynchronously to avoid blocking request
			ctx := context.WithoutCancel(r.Context())
			go func() {
				if err := auditRepo.Create(ctx, entry); err != nil {
					logger.Error().Err(err).
						Str("method", entry.Method).
						Str("path", entry.Path).
						Msg("failed to create audit log")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

func isMutation(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// getIPAddress extracts IP address from request, checking X-Forwarded-For first
func getIPAddress(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// Take first IP if multiple
		ip, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(ip)
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	// Fall back to RemoteAddr without its port
	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}

// capturePayload reads the request body for the audit entry and restores it
// so handlers can still decode it
func capturePayload(r *http.Request) string {
	if r.Body == nil || r.Body == http.NoBody {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxAuditPayload+1))
	if err != nil {
		return ""
	}
	r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(body), r.Body))

	if len(body) > maxAuditPayload {
		body = body[:maxAuditPayload]
	}
	return string(body)
}
