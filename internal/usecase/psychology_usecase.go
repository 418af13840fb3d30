package usecase

import (
	"context"
	"time"

	"gestao/internal/domain/entity"

	"github.com/google/uuid"
)

// PsychologyUsecase defines the interface for psychology department records.
// Every operation runs on behalf of the professional identified by
// actorProfileID; confidential notes are filtered for everyone else.
type PsychologyUsecase interface {
	CreateIntervention(ctx context.Context, actorProfileID uuid.UUID, input *CreateInterventionInput) (*entity.Intervention, error)
	GetIntervention(ctx context.Context, actorProfileID uuid.UUID, actorRole entity.Role, id uuid.UUID) (*entity.Intervention, error)
	ListInterventions(ctx context.Context, actorProfileID uuid.UUID, actorRole entity.Role, input *ListInterventionsInput) ([]*entity.Intervention, error)
	UpdateIntervention(ctx context.Context, actorProfileID uuid.UUID, actorRole entity.Role, id uuid.UUID, input *UpdateInterventionInput) (*entity.Intervention, error)
	DeleteIntervention(ctx context.Context, actorProfileID uuid.UUID, actorRole entity.Role, id uuid.UUID) error
}

// --- Input DTOs ---

// CreateInterventionInput defines the data required to record an intervention.
type CreateInterventionInput struct {
	Type              string      `json:"type"`
	Date              time.Time   `json:"date"`
	StartTime         string      `json:"start_time,omitempty"`
	EndTime           string      `json:"end_time,omitempty"`
	Category          *string     `json:"category,omitempty"`
	PeriodID          *uuid.UUID  `json:"period_id,omitempty"`
	Description       string      `json:"description,omitempty"`
	ConfidentialNotes string      `json:"confidential_notes,omitempty"`
	AthleteIDs        []uuid.UUID `json:"athlete_ids,omitempty"`
}

// ListInterventionsInput narrows an intervention listing.
type ListInterventionsInput struct {
	AthleteID *uuid.UUID `json:"athlete_id,omitempty"`
	PeriodID  *uuid.UUID `json:"period_id,omitempty"`
	Type      *string    `json:"type,omitempty"`
	From      *time.Time `json:"from,omitempty"`
	To        *time.Time `json:"to,omitempty"`
	OnlyMine  bool       `json:"only_mine,omitempty"`
}

// UpdateInterventionInput defines the data that can change on an
// intervention. Nil fields are left untouched.
type UpdateInterventionInput struct {
	Type              *string      `json:"type,omitempty"`
	Date              *time.Time   `json:"date,omitempty"`
	StartTime         *string      `json:"start_time,omitempty"`
	EndTime           *string      `json:"end_time,omitempty"`
	Category          *string      `json:"category,omitempty"`
	PeriodID          *uuid.UUID   `json:"period_id,omitempty"`
	Description       *string      `json:"description,omitempty"`
	ConfidentialNotes *string      `json:"confidential_notes,omitempty"`
	AthleteIDs        *[]uuid.UUID `json:"athlete_ids,omitempty"`
}
