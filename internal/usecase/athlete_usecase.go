// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"gestao/internal/domain/entity"

	"github.com/google/uuid"
)

// AthleteUsecase defines the interface for athlete registry operations.
type AthleteUsecase interface {
	CreateAthlete(ctx context.Context, input *CreateAthleteInput) (*entity.Athlete, error)
	GetAthlete(ctx context.Context, id uuid.UUID) (*entity.Athlete, error)
	ListAthletes(ctx context.Context, input *ListAthletesInput) ([]*entity.Athlete, error)
	UpdateAthlete(ctx context.Context, id uuid.UUID, input *UpdateAthleteInput) (*entity.Athlete, error)
	DeactivateAthlete(ctx context.Context, id uuid.UUID) error
}

// --- Input DTOs ---

// CreateAthleteInput defines the data required to register an athlete.
type CreateAthleteInput struct {
	Name        string    `json:"name"`
	BirthDate   time.Time `json:"birth_date"`
	Category    string    `json:"category"`
	Position    string    `json:"position,omitempty"`
	ShirtNumber *int      `json:"shirt_number,omitempty"`
	EntryDate   time.Time `json:"entry_date,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

// ListAthletesInput narrows an athlete listing.
type ListAthletesInput struct {
	Category        *string `json:"category,omitempty"`
	IncludeInactive bool    `json:"include_inactive,omitempty"`
}

// UpdateAthleteInput defines the data that can change on an athlete. Nil
// fields are left untouched.
type UpdateAthleteInput struct {
	Name        *string    `json:"name,omitempty"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Position    *string    `json:"position,omitempty"`
	ShirtNumber *int       `json:"shirt_number,omitempty"`
	Active      *bool      `json:"active,omitempty"`
	EntryDate   *time.Time `json:"entry_date,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}
