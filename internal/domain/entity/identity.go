package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity is an authenticated account as seen by the identity store.
// It carries only what authentication needs; everything user-facing
// lives on the Profile.
type Identity struct {
	ID    uuid.UUID // The unique identifier of the account.
	Email string    // The login email address.
}

// Credential holds the stored login secret for an identity.
type Credential struct {
	ID           uuid.UUID
	IdentityID   uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is an authenticated session issued by the identity store.
// A session belongs to exactly one identity and expires server-side.
type Session struct {
	ID         uuid.UUID // The unique identifier of the session row.
	IdentityID uuid.UUID // The identity this session authenticates.
	TokenHash  string    // SHA-256 hash of the opaque session token; the raw token is never stored.
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

// Expired reports whether the session is past its expiry at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
