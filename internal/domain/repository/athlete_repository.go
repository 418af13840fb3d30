package repository

import (
	"context"

	"gestao/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAthleteNotFound is returned when an athlete is not found.
var ErrAthleteNotFound = errors.New("athlete not found")

// AthleteFilter narrows athlete listings.
type AthleteFilter struct {
	Category        *entity.Category
	IncludeInactive bool
}

// AthleteRepository manages the athlete registry.
type AthleteRepository interface {
	// CreateAthlete persists a new athlete.
	CreateAthlete(ctx context.Context, athlete *entity.Athlete) error

	// FindAthleteByID retrieves an athlete by its unique ID.
	FindAthleteByID(ctx context.Context, id uuid.UUID) (*entity.Athlete, error)

	// ListAthletes retrieves athletes matching the filter, ordered by name.
	ListAthletes(ctx context.Context, filter AthleteFilter) ([]*entity.Athlete, error)

	// UpdateAthlete updates an existing athlete record.
	UpdateAthlete(ctx context.Context, athlete *entity.Athlete) error
}
