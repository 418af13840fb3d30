package repository

import (
	"context"

	"gestao/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository manages user-facing profiles.
type ProfileRepository interface {
	// CreateProfile persists a new profile.
	CreateProfile(ctx context.Context, profile *entity.Profile) error

	// FindProfileByID retrieves a profile by its unique ID.
	FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindProfileByIdentityID retrieves the profile belonging to an identity.
	FindProfileByIdentityID(ctx context.Context, identityID uuid.UUID) (*entity.Profile, error)

	// ListProfiles retrieves all profiles ordered by name.
	ListProfiles(ctx context.Context) ([]*entity.Profile, error)

	// UpdateProfile updates an existing profile record.
	UpdateProfile(ctx context.Context, profile *entity.Profile) error
}
