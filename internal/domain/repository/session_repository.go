package repository

import (
	"context"

	"gestao/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when a session is not found.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a session exists but has expired.
	ErrSessionExpired = errors.New("session has expired")
)

// SessionRepository manages authenticated sessions.
type SessionRepository interface {
	// CreateSession persists a new session.
	CreateSession(ctx context.Context, session *entity.Session) error

	// FindSessionByTokenHash retrieves a session by the hash of its token.
	FindSessionByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteSession removes a session by its ID, ending it.
	DeleteSession(ctx context.Context, id uuid.UUID) error

	// DeleteSessionsByIdentityID removes every session of an identity.
	DeleteSessionsByIdentityID(ctx context.Context, identityID uuid.UUID) error

	// DeleteExpiredSessions removes all expired sessions.
	// This should be called periodically for cleanup.
	DeleteExpiredSessions(ctx context.Context) error
}
