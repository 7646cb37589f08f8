// Package userctx carries the acting user's identity through request contexts.
package userctx

import "context"

// Context key type
type contextKey string

const userEmailKey contextKey = "user_email"

// Anonymous is reported when no identity was attached to the context
const Anonymous = "anonymous"

// SetUserEmail adds user email to request context
func SetUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, userEmailKey, email)
}

// GetUserEmail retrieves user email from request context
func GetUserEmail(ctx context.Context) string {
	email, ok := ctx.Value(userEmailKey).(string)
	if !ok || email == "" {
		return Anonymous
	}
	return email
}
