package identity

import (
	"context"

	"gestao/internal/domain/entity"
	"gestao/internal/domain/repository"
	"gestao/internal/domain/service"
	"gestao/internal/errors"

	"github.com/google/uuid"
)

// directory implements service.Directory on top of the profile and role
// repositories.
type directory struct {
	profiles repository.ProfileRepository
	roles    repository.RoleRepository
}

// NewDirectory is the constructor for the repository-backed Directory.
func NewDirectory(profiles repository.ProfileRepository, roles repository.RoleRepository) service.Directory {
	return &directory{
		profiles: profiles,
		roles:    roles,
	}
}

// FetchProfile resolves the profile of an authenticated identity.
func (d *directory) FetchProfile(ctx context.Context, identityID uuid.UUID) (*entity.Profile, error) {
	profile, err := d.profiles.FindProfileByIdentityID(ctx, identityID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch profile")
	}

	return profile, nil
}

// FetchRole resolves the role of an authenticated identity. (nil, nil)
// means the identity has no role yet and is awaiting approval.
func (d *directory) FetchRole(ctx context.Context, identityID uuid.UUID) (*entity.Role, error) {
	assignment, err := d.roles.FindRoleByIdentityID(ctx, identityID)
	if err != nil {
		if errors.Is(err, repository.ErrRoleAssignmentNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to fetch role")
	}

	role := assignment.Role

	return &role, nil
}
