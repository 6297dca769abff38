package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is an opaque bearer credential stored in user_sessions. A session
// is valid while expires_at is in the future; there is no revocation.
type Session struct {
	ID           uuid.UUID `json:"id" db:"id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	SessionToken string    `json:"-" db:"session_token"` // Never return in JSON
	ExpiresAt    time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
