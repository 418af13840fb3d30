package impl

import (
	"context"
	"log/slog"
	"time"

	"gestao/internal/domain/entity"
	domainerrors "gestao/internal/domain/errors"
	"gestao/internal/domain/repository"
	"gestao/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager repository.TransactionManager
	profiles  repository.ProfileRepository
	roles     repository.RoleRepository
	periods   repository.PeriodRepository
	logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	txManager repository.TransactionManager,
	profiles repository.ProfileRepository,
	roles repository.RoleRepository,
	periods repository.PeriodRepository,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		txManager: txManager,
		profiles:  profiles,
		roles:     roles,
		periods:   periods,
		logger:    logger,
	}
}

// ListUsers merges every profile with its role assignment.
func (srv *adminService) ListUsers(ctx context.Context) ([]*usecase.UserAccount, error) {
	profiles, err := srv.profiles.ListProfiles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	assignments, err := srv.roles.ListRoles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list role assignments")
	}

	byIdentity := make(map[uuid.UUID]entity.Role, len(assignments))
	for _, assignment := range assignments {
		byIdentity[assignment.IdentityID] = assignment.Role
	}

	accounts := make([]*usecase.UserAccount, len(profiles))
	for i, profile := range profiles {
		account := &usecase.UserAccount{Profile: profile}
		if role, ok := byIdentity[profile.IdentityID]; ok {
			account.Role = &role
		}
		accounts[i] = account
	}

	return accounts, nil
}

// AssignRole grants or replaces the role of an identity. The target must
// have a profile; assignment to an unknown identity is rejected.
func (srv *adminService) AssignRole(ctx context.Context, identityID uuid.UUID, role string) error {
	srv.logger.Info("Assigning role", "identityID", identityID, "role", role)

	parsed := entity.Role(role)
	if !parsed.IsValid() {
		return domainerrors.ErrInvalidRole
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewProfileRepository().FindProfileByIdentityID(ctx, identityID); err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "no profile for identity")
			}

			return errors.Wrap(err, "failed to find profile")
		}

		assignment := &entity.RoleAssignment{
			IdentityID: identityID,
			Role:       parsed,
		}

		return repoFactory.NewRoleRepository().UpsertRole(ctx, assignment)
	})
	if err != nil {
		return errors.Wrap(err, "failed to assign role")
	}

	return nil
}

// RemoveRole revokes the identity's role.
func (srv *adminService) RemoveRole(ctx context.Context, identityID uuid.UUID) error {
	srv.logger.Info("Removing role", "identityID", identityID)

	if err := srv.roles.DeleteRoleByIdentityID(ctx, identityID); err != nil {
		if errors.Is(err, repository.ErrRoleAssignmentNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "identity has no role")
		}

		return errors.Wrap(err, "failed to remove role")
	}

	return nil
}

// SetProfileActive flips the active flag of a profile.
func (srv *adminService) SetProfileActive(ctx context.Context, profileID uuid.UUID, active bool) error {
	srv.logger.Info("Setting profile active flag", "profileID", profileID, "active", active)

	profile, err := srv.profiles.FindProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
		}

		return errors.Wrap(err, "failed to find profile")
	}

	profile.Active = active
	if err := srv.profiles.UpdateProfile(ctx, profile); err != nil {
		return errors.Wrap(err, "failed to update profile")
	}

	return nil
}

// ListPeriods retrieves all quarterly periods, newest first.
func (srv *adminService) ListPeriods(ctx context.Context) ([]*entity.Period, error) {
	periods, err := srv.periods.ListPeriods(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list periods")
	}

	return periods, nil
}

// CreatePeriod opens a new quarterly period. Year/quarter pairs are unique.
func (srv *adminService) CreatePeriod(ctx context.Context, input *usecase.CreatePeriodInput) (*entity.Period, error) {
	srv.logger.Info("Creating period", "year", input.Year, "quarter", input.Quarter)

	if input.Quarter < 1 || input.Quarter > 4 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "quarter must be between 1 and 4")
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "end date must come after start date")
	}

	period := &entity.Period{
		Year:      input.Year,
		Quarter:   input.Quarter,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}
	if err := srv.periods.CreatePeriod(ctx, period); err != nil {
		if errors.Is(err, repository.ErrPeriodExists) {
			return nil, domainerrors.ErrPeriodAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create period")
	}

	return period, nil
}

// ClosePeriod freezes a period, stamping who closed it and when. The
// transition is one-way.
func (srv *adminService) ClosePeriod(ctx context.Context, id uuid.UUID, closedBy uuid.UUID) (*entity.Period, error) {
	srv.logger.Info("Closing period", "periodID", id, "closedBy", closedBy)

	var period *entity.Period
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		periodRepo := repoFactory.NewPeriodRepository()

		found, err := periodRepo.FindPeriodByID(ctx, id)
		if err != nil {
			return err
		}

		if found.Closed {
			return domainerrors.ErrPeriodClosed
		}

		now := time.Now()
		found.Closed = true
		found.ClosedAt = &now
		found.ClosedBy = &closedBy

		if err := periodRepo.UpdatePeriod(ctx, found); err != nil {
			return err
		}
		period = found

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrPeriodNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "period not found")
		}

		return nil, errors.Wrap(err, "failed to close period")
	}

	return period, nil
}
