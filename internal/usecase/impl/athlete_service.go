// Package impl contains the application-specific business rules implementations.
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

// athleteService implements the AthleteUsecase interface.
type athleteService struct {
	athletes repository.AthleteRepository
	logger   *slog.Logger
}

// NewAthleteService is the constructor for athleteService.
func NewAthleteService(
	athletes repository.AthleteRepository,
	logger *slog.Logger,
) usecase.AthleteUsecase {
	return &athleteService{
		athletes: athletes,
		logger:   logger,
	}
}

// CreateAthlete registers a new athlete.
func (srv *athleteService) CreateAthlete(ctx context.Context, input *usecase.CreateAthleteInput) (*entity.Athlete, error) {
	srv.logger.Info("Creating athlete", "category", input.Category)

	category := entity.Category(input.Category)
	if !category.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid athlete category")
	}

	athlete := &entity.Athlete{
		Name:        input.Name,
		BirthDate:   input.BirthDate,
		Category:    category,
		Position:    input.Position,
		ShirtNumber: input.ShirtNumber,
		Active:      true,
		EntryDate:   input.EntryDate,
		Notes:       input.Notes,
	}
	if err := srv.athletes.CreateAthlete(ctx, athlete); err != nil {
		return nil, errors.Wrap(err, "failed to create athlete")
	}

	return athlete, nil
}

// GetAthlete retrieves one athlete by ID.
func (srv *athleteService) GetAthlete(ctx context.Context, id uuid.UUID) (*entity.Athlete, error) {
	athlete, err := srv.athletes.FindAthleteByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAthleteNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "athlete not found")
		}

		return nil, errors.Wrap(err, "failed to find athlete")
	}

	return athlete, nil
}

// ListAthletes retrieves athletes matching the filter.
func (srv *athleteService) ListAthletes(ctx context.Context, input *usecase.ListAthletesInput) ([]*entity.Athlete, error) {
	filter := repository.AthleteFilter{}
	if input != nil {
		filter.IncludeInactive = input.IncludeInactive
		if input.Category != nil {
			category := entity.Category(*input.Category)
			if !category.IsValid() {
				return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid athlete category")
			}
			filter.Category = &category
		}
	}

	athletes, err := srv.athletes.ListAthletes(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list athletes")
	}

	return athletes, nil
}

// UpdateAthlete applies the non-nil input fields to an athlete.
func (srv *athleteService) UpdateAthlete(ctx context.Context, id uuid.UUID, input *usecase.UpdateAthleteInput) (*entity.Athlete, error) {
	srv.logger.Info("Updating athlete", "athleteID", id)

	athlete, err := srv.athletes.FindAthleteByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAthleteNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "athlete not found")
		}

		return nil, errors.Wrap(err, "failed to find athlete")
	}

	if input.Name != nil {
		athlete.Name = *input.Name
	}
	if input.BirthDate != nil {
		athlete.BirthDate = *input.BirthDate
	}
	if input.Category != nil {
		category := entity.Category(*input.Category)
		if !category.IsValid() {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid athlete category")
		}
		athlete.Category = category
	}
	if input.Position != nil {
		athlete.Position = *input.Position
	}
	if input.ShirtNumber != nil {
		athlete.ShirtNumber = input.ShirtNumber
	}
	if input.Active != nil {
		athlete.Active = *input.Active
	}
	if input.EntryDate != nil {
		athlete.EntryDate = *input.EntryDate
	}
	if input.Notes != nil {
		athlete.Notes = *input.Notes
	}

	if err := srv.athletes.UpdateAthlete(ctx, athlete); err != nil {
		return nil, errors.Wrap(err, "failed to update athlete")
	}

	return athlete, nil
}

// DeactivateAthlete clears the active flag; history is kept.
func (srv *athleteService) DeactivateAthlete(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deactivating athlete", "athleteID", id)

	athlete, err := srv.athletes.FindAthleteByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAthleteNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "athlete not found")
		}

		return errors.Wrap(err, "failed to find athlete")
	}

	athlete.Active = false
	if err := srv.athletes.UpdateAthlete(ctx, athlete); err != nil {
		return errors.Wrap(err, "failed to deactivate athlete")
	}

	return nil
}
