package repository

import (
	"context"
	"time"

	"gestao/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrInterventionNotFound is returned when an intervention is not found.
var ErrInterventionNotFound = errors.New("intervention not found")

// InterventionFilter narrows intervention listings.
type InterventionFilter struct {
	ProfessionalID *uuid.UUID
	AthleteID      *uuid.UUID
	PeriodID       *uuid.UUID
	Type           *entity.InterventionType
	From           *time.Time
	To             *time.Time
}

// InterventionRepository manages psychology intervention records and their
// athlete links.
type InterventionRepository interface {
	// CreateIntervention persists a new intervention together with its athlete links.
	CreateIntervention(ctx context.Context, intervention *entity.Intervention) error

	// FindInterventionByID retrieves an intervention with its athlete links.
	FindInterventionByID(ctx context.Context, id uuid.UUID) (*entity.Intervention, error)

	// ListInterventions retrieves interventions matching the filter, newest first.
	ListInterventions(ctx context.Context, filter InterventionFilter) ([]*entity.Intervention, error)

	// UpdateIntervention updates an intervention and replaces its athlete links.
	UpdateIntervention(ctx context.Context, intervention *entity.Intervention) error

	// DeleteIntervention removes an intervention and its athlete links.
	DeleteIntervention(ctx context.Context, id uuid.UUID) error
}
