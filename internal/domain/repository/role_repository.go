package repository

import (
	"context"

	"gestao/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRoleAssignmentNotFound is returned when an identity has no role assignment.
var ErrRoleAssignmentNotFound = errors.New("role assignment not found")

// RoleRepository manages role assignments. An identity has at most one.
type RoleRepository interface {
	// FindRoleByIdentityID retrieves the role assignment of an identity.
	FindRoleByIdentityID(ctx context.Context, identityID uuid.UUID) (*entity.RoleAssignment, error)

	// UpsertRole creates the identity's role assignment or replaces its role.
	UpsertRole(ctx context.Context, assignment *entity.RoleAssignment) error

	// DeleteRoleByIdentityID removes the identity's role assignment,
	// returning the account to the pending-approval state.
	DeleteRoleByIdentityID(ctx context.Context, identityID uuid.UUID) error

	// ListRoles retrieves all role assignments.
	ListRoles(ctx context.Context) ([]*entity.RoleAssignment, error)
}
