package usecase

import (
	"context"
	"time"

	"gestao/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminUsecase defines the interface for administration: account approval,
// role management and quarterly periods.
type AdminUsecase interface {
	// ListUsers returns every profile merged with its role assignment.
	// Profiles without a role are the pending-approval queue.
	ListUsers(ctx context.Context) ([]*UserAccount, error)

	// AssignRole grants or replaces the role of an identity, approving the
	// account on first assignment.
	AssignRole(ctx context.Context, identityID uuid.UUID, role string) error

	// RemoveRole revokes the identity's role, returning the account to the
	// pending-approval state.
	RemoveRole(ctx context.Context, identityID uuid.UUID) error

	// SetProfileActive flips the active flag of a profile.
	SetProfileActive(ctx context.Context, profileID uuid.UUID, active bool) error

	ListPeriods(ctx context.Context) ([]*entity.Period, error)
	CreatePeriod(ctx context.Context, input *CreatePeriodInput) (*entity.Period, error)

	// ClosePeriod freezes a period. Closing is one-way and stamps who
	// closed it and when; closing an already closed period is rejected.
	ClosePeriod(ctx context.Context, id uuid.UUID, closedBy uuid.UUID) (*entity.Period, error)
}

// UserAccount merges a profile with its role assignment. Role is nil while
// the account awaits approval.
type UserAccount struct {
	Profile *entity.Profile `json:"profile"`
	Role    *entity.Role    `json:"role,omitempty"`
}

// --- Input DTOs ---

// CreatePeriodInput defines the data required to open a quarterly period.
type CreatePeriodInput struct {
	Year      int       `json:"year"`
	Quarter   int       `json:"quarter"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}
