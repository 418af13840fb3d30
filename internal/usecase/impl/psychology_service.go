package impl

import (
	"context"
	"log/slog"

	"gestao/internal/domain/entity"
	domainerrors "gestao/internal/domain/errors"
	"gestao/internal/domain/repository"
	"gestao/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// psychologyService implements the PsychologyUsecase interface.
type psychologyService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewPsychologyService is the constructor for psychologyService.
func NewPsychologyService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.PsychologyUsecase {
	return &psychologyService{
		txManager: txManager,
		logger:    logger,
	}
}

// CreateIntervention records an intervention owned by the acting
// professional. A linked period must still be open.
func (srv *psychologyService) CreateIntervention(ctx context.Context, actorProfileID uuid.UUID, input *usecase.CreateInterventionInput) (*entity.Intervention, error) {
	srv.logger.Info("Creating intervention", "professionalID", actorProfileID, "type", input.Type)

	interventionType := entity.InterventionType(input.Type)
	if !interventionType.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid intervention type")
	}

	var category *entity.Category
	if input.Category != nil {
		c := entity.Category(*input.Category)
		if !c.IsValid() {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid athlete category")
		}
		category = &c
	}

	intervention := &entity.Intervention{
		ProfessionalID:    actorProfileID,
		Type:              interventionType,
		Date:              input.Date,
		StartTime:         input.StartTime,
		EndTime:           input.EndTime,
		Category:          category,
		PeriodID:          input.PeriodID,
		Description:       input.Description,
		ConfidentialNotes: input.ConfidentialNotes,
		AthleteIDs:        input.AthleteIDs,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := ensurePeriodOpen(ctx, repoFactory.NewPeriodRepository(), input.PeriodID); err != nil {
			return err
		}

		return repoFactory.NewInterventionRepository().CreateIntervention(ctx, intervention)
	})
	if err != nil {
		if errors.Is(err, repository.ErrAthleteNotFound) {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "linked athlete does not exist")
		}

		return nil, errors.Wrap(err, "failed to create intervention")
	}

	return intervention, nil
}

// GetIntervention retrieves one intervention, hiding confidential notes
// from everyone but the owner and administrators.
func (srv *psychologyService) GetIntervention(ctx context.Context, actorProfileID uuid.UUID, actorRole entity.Role, id uuid.UUID) (*entity.Intervention, error) {
	var intervention *entity.Intervention
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewInterventionRepository().FindInterventionByID(ctx, id)
		if err != nil {
			return err
		}
		intervention = found

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrInterventionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "intervention not found")
		}

		return nil, errors.Wrap(err, "failed to find intervention")
	}

	redactConfidentialNotes(intervention, actorProfileID, actorRole)

	return intervention, nil
}

// ListInterventions retrieves interventions matching the filter.
func (srv *psychologyService) ListInterventions(ctx context.Context, actorProfileID uuid.UUID, actorRole entity.Role, input *usecase.ListInterventionsInput) ([]*entity.Intervention, error) {
	filter := repository.InterventionFilter{}
	if input != nil {
		filter.AthleteID = input.AthleteID
		filter.PeriodID = input.PeriodID
		filter.From = input.From
		filter.To = input.To
		if input.OnlyMine {
			filter.ProfessionalID = &actorProfileID
		}
		if input.Type != nil {
			interventionType := entity.InterventionType(*input.Type)
			if !interventionType.IsValid() {
				return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid intervention type")
			}
			filter.Type = &interventionType
		}
	}

	var interventions []*entity.Intervention
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewInterventionRepository().ListInterventions(ctx, filter)
		if err != nil {
			return err
		}
		interventions = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list interventions")
	}

	for _, intervention := range interventions {
		redactConfidentialNotes(intervention, actorProfileID, actorRole)
	}

	return interventions, nil
}

// UpdateIntervention applies the non-nil input fields. Only the owning
// professional or an administrator may change a record, and neither the
// old nor the new period link may be closed.
func (srv *psychologyService) UpdateIntervention(ctx context.Context, actorProfileID uuid.UUID, actorRole entity.Role, id uuid.UUID, input *usecase.UpdateInterventionInput) (*entity.Intervention, error) {
	srv.logger.Info("Updating intervention", "interventionID", id, "professionalID", actorProfileID)

	var intervention *entity.Intervention
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		interventionRepo := repoFactory.NewInterventionRepository()
		periodRepo := repoFactory.NewPeriodRepository()

		found, err := interventionRepo.FindInterventionByID(ctx, id)
		if err != nil {
			return err
		}

		if found.ProfessionalID != actorProfileID && actorRole != entity.RoleAdmin {
			return errors.Wrap(domainerrors.ErrForbidden, "intervention belongs to another professional")
		}

		// Records inside a closed period are frozen.
		if err := ensurePeriodOpen(ctx, periodRepo, found.PeriodID); err != nil {
			return err
		}

		if input.Type != nil {
			interventionType := entity.InterventionType(*input.Type)
			if !interventionType.IsValid() {
				return errors.Wrap(domainerrors.ErrValidationFailed, "invalid intervention type")
			}
			found.Type = interventionType
		}
		if input.Date != nil {
			found.Date = *input.Date
		}
		if input.StartTime != nil {
			found.StartTime = *input.StartTime
		}
		if input.EndTime != nil {
			found.EndTime = *input.EndTime
		}
		if input.Category != nil {
			category := entity.Category(*input.Category)
			if !category.IsValid() {
				return errors.Wrap(domainerrors.ErrValidationFailed, "invalid athlete category")
			}
			found.Category = &category
		}
		if input.PeriodID != nil {
			if err := ensurePeriodOpen(ctx, periodRepo, input.PeriodID); err != nil {
				return err
			}
			found.PeriodID = input.PeriodID
		}
		if input.Description != nil {
			found.Description = *input.Description
		}
		if input.ConfidentialNotes != nil {
			found.ConfidentialNotes = *input.ConfidentialNotes
		}
		if input.AthleteIDs != nil {
			found.AthleteIDs = *input.AthleteIDs
		}

		if err := interventionRepo.UpdateIntervention(ctx, found); err != nil {
			return err
		}
		intervention = found

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrInterventionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "intervention not found")
		}
		if errors.Is(err, repository.ErrAthleteNotFound) {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "linked athlete does not exist")
		}

		return nil, errors.Wrap(err, "failed to update intervention")
	}

	return intervention, nil
}

// DeleteIntervention removes a record. Only the owning professional or an
// administrator may delete, and only while the linked period is open.
func (srv *psychologyService) DeleteIntervention(ctx context.Context, actorProfileID uuid.UUID, actorRole entity.Role, id uuid.UUID) error {
	srv.logger.Info("Deleting intervention", "interventionID", id, "professionalID", actorProfileID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		interventionRepo := repoFactory.NewInterventionRepository()

		found, err := interventionRepo.FindInterventionByID(ctx, id)
		if err != nil {
			return err
		}

		if found.ProfessionalID != actorProfileID && actorRole != entity.RoleAdmin {
			return errors.Wrap(domainerrors.ErrForbidden, "intervention belongs to another professional")
		}

		if err := ensurePeriodOpen(ctx, repoFactory.NewPeriodRepository(), found.PeriodID); err != nil {
			return err
		}

		return interventionRepo.DeleteIntervention(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrInterventionNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "intervention not found")
		}

		return errors.Wrap(err, "failed to delete intervention")
	}

	return nil
}

// redactConfidentialNotes blanks the confidential field unless the actor
// owns the record or is an administrator.
func redactConfidentialNotes(intervention *entity.Intervention, actorProfileID uuid.UUID, actorRole entity.Role) {
	if intervention.ProfessionalID == actorProfileID || actorRole == entity.RoleAdmin {
		return
	}
	intervention.ConfidentialNotes = ""
}

// ensurePeriodOpen rejects writes against a closed period. A nil periodID
// means the record is not linked to any period.
func ensurePeriodOpen(ctx context.Context, periods repository.PeriodRepository, periodID *uuid.UUID) error {
	if periodID == nil {
		return nil
	}

	period, err := periods.FindPeriodByID(ctx, *periodID)
	if err != nil {
		if errors.Is(err, repository.ErrPeriodNotFound) {
			return errors.Wrap(domainerrors.ErrValidationFailed, "period does not exist")
		}

		return errors.Wrap(err, "failed to find period")
	}

	if !period.Open() {
		return domainerrors.ErrPeriodClosed
	}

	return nil
}
