package models

import "time"

// AuditLogEntry represents a single API mutation event
type AuditLogEntry struct {
	ID        int64     `json:"id" db:"id"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	RequestID string    `json:"request_id,omitempty" db:"request_id"`
	UserEmail string    `json:"user_email" db:"user_email"`
	Method    string    `json:"method" db:"method"`
	Path      string    `json:"path" db:"path"`
	Payload   string    `json:"payload,omitempty" db:"payload"`
	UserAgent string    `json:"user_agent,omitempty" db:"user_agent"`
	IPAddress string    `json:"ip_address,omitempty" db:"ip_address"`
}
