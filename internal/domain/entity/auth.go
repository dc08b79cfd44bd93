package entity

import (
	"time"

	"github.com/google/uuid"
)

// Provider identifiers for Authentication records.
const (
	ProviderTypeEmail    = "email"
	ProviderTypeFirebase = "firebase"
)

// Authentication represents a single method of signing in.
// An email/password pair is one record, a linked Firebase identity another.
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID // Owner profile.
	Provider       string    // ProviderTypeEmail or ProviderTypeFirebase.
	ProviderUserID string    // Email for the email provider, Firebase UID otherwise.
	PasswordHash   string    // bcrypt hash, email provider only.
	CreatedAt      time.Time
}

// RefreshToken is a long-lived session handle. Only a SHA-256 hash of the
// raw token is stored.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is no longer usable at now.
func (t *RefreshToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}
