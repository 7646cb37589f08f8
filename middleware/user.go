package middleware

import (
	"net/http"
	"strings"

	"github.com/blogem/shift-cycles/userctx"
)

// ForwardedEmailHeader is set by the authenticating reverse proxy
const ForwardedEmailHeader = "X-Forwarded-Email"

// ForwardedUser attaches the proxy-supplied user email to the request context
func ForwardedUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if email := strings.TrimSpace(r.Header.Get(ForwardedEmailHeader)); email != "" {
			r = r.WithContext(userctx.SetUserEmail(r.Context(), email))
		}
		next.ServeHTTP(w, r)
	})
}
