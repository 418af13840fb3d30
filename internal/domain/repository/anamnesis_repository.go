package repository

import (
	"context"

	"gestao/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAnamnesisNotFound is returned when an anamnesis record is not found.
var ErrAnamnesisNotFound = errors.New("anamnesis not found")

// AnamnesisRepository manages social-work intake records.
type AnamnesisRepository interface {
	// CreateAnamnesis persists a new anamnesis record.
	CreateAnamnesis(ctx context.Context, anamnesis *entity.Anamnesis) error

	// FindAnamnesisByID retrieves an anamnesis record by its unique ID.
	FindAnamnesisByID(ctx context.Context, id uuid.UUID) (*entity.Anamnesis, error)

	// ListAnamnesesByAthleteID retrieves the athlete's anamnesis records, newest first.
	ListAnamnesesByAthleteID(ctx context.Context, athleteID uuid.UUID) ([]*entity.Anamnesis, error)

	// UpdateAnamnesis updates an existing anamnesis record.
	UpdateAnamnesis(ctx context.Context, anamnesis *entity.Anamnesis) error

	// DeleteAnamnesis removes an anamnesis record.
	DeleteAnamnesis(ctx context.Context, id uuid.UUID) error
}
