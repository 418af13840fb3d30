package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims defines the custom claims carried by a session token.
type SessionClaims struct {
	SessionID  uuid.UUID
	IdentityID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateSessionToken creates a signed token for a session.
	GenerateSessionToken(sessionID, identityID uuid.UUID) (string, error)

	// ValidateSessionToken checks the validity of a token string.
	ValidateSessionToken(tokenString string) (*SessionClaims, error)

	// HashToken returns the hash under which a raw token is stored.
	HashToken(token string) string

	// GetSessionDuration returns the configured session lifetime.
	GetSessionDuration() time.Duration
}
