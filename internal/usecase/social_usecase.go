package usecase

import (
	"context"
	"time"

	"gestao/internal/domain/entity"

	"github.com/google/uuid"
)

// SocialUsecase defines the interface for social work department records:
// anamneses, guardian contacts and external referrals.
type SocialUsecase interface {
	CreateAnamnesis(ctx context.Context, actorProfileID uuid.UUID, input *CreateAnamnesisInput) (*entity.Anamnesis, error)
	GetAnamnesis(ctx context.Context, id uuid.UUID) (*entity.Anamnesis, error)
	ListAnamneses(ctx context.Context, athleteID uuid.UUID) ([]*entity.Anamnesis, error)
	UpdateAnamnesis(ctx context.Context, id uuid.UUID, input *UpdateAnamnesisInput) (*entity.Anamnesis, error)
	DeleteAnamnesis(ctx context.Context, id uuid.UUID) error

	CreateContact(ctx context.Context, input *CreateContactInput) (*entity.Contact, error)
	ListContacts(ctx context.Context, athleteID *uuid.UUID) ([]*entity.Contact, error)
	UpdateContact(ctx context.Context, id uuid.UUID, input *UpdateContactInput) (*entity.Contact, error)
	DeleteContact(ctx context.Context, id uuid.UUID) error

	CreateReferral(ctx context.Context, actorProfileID uuid.UUID, input *CreateReferralInput) (*entity.Referral, error)
	ListReferrals(ctx context.Context, input *ListReferralsInput) ([]*entity.Referral, error)
	UpdateReferral(ctx context.Context, id uuid.UUID, input *UpdateReferralInput) (*entity.Referral, error)
	DeleteReferral(ctx context.Context, id uuid.UUID) error
}

// --- Input DTOs ---

// CreateAnamnesisInput defines the data required to record an anamnesis.
type CreateAnamnesisInput struct {
	AthleteID         uuid.UUID `json:"athlete_id"`
	FamilyComposition string    `json:"family_composition,omitempty"`
	HousingSituation  string    `json:"housing_situation,omitempty"`
	FamilyIncome      string    `json:"family_income,omitempty"`
	SocialBenefits    string    `json:"social_benefits,omitempty"`
	SchoolSituation   string    `json:"school_situation,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	RecordedAt        time.Time `json:"recorded_at"`
}

// UpdateAnamnesisInput defines the data that can change on an anamnesis.
// Nil fields are left untouched.
type UpdateAnamnesisInput struct {
	FamilyComposition *string    `json:"family_composition,omitempty"`
	HousingSituation  *string    `json:"housing_situation,omitempty"`
	FamilyIncome      *string    `json:"family_income,omitempty"`
	SocialBenefits    *string    `json:"social_benefits,omitempty"`
	SchoolSituation   *string    `json:"school_situation,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
	RecordedAt        *time.Time `json:"recorded_at,omitempty"`
}

// CreateContactInput defines the data required to register a contact.
type CreateContactInput struct {
	AthleteID    *uuid.UUID `json:"athlete_id,omitempty"`
	Name         string     `json:"name"`
	Relationship string     `json:"relationship,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	Email        string     `json:"email,omitempty"`
	Address      string     `json:"address,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

// UpdateContactInput defines the data that can change on a contact. Nil
// fields are left untouched.
type UpdateContactInput struct {
	Name         *string `json:"name,omitempty"`
	Relationship *string `json:"relationship,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty"`
	Address      *string `json:"address,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	Active       *bool   `json:"active,omitempty"`
}

// CreateReferralInput defines the data required to open a referral.
type CreateReferralInput struct {
	AthleteID   uuid.UUID `json:"athlete_id"`
	Kind        string    `json:"kind"`
	Destination string    `json:"destination,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	Date        time.Time `json:"date"`
}

// ListReferralsInput narrows a referral listing.
type ListReferralsInput struct {
	AthleteID *uuid.UUID `json:"athlete_id,omitempty"`
	Status    *string    `json:"status,omitempty"`
}

// UpdateReferralInput defines the data that can change on a referral. Nil
// fields are left untouched.
type UpdateReferralInput struct {
	Kind        *string `json:"kind,omitempty"`
	Destination *string `json:"destination,omitempty"`
	Reason      *string `json:"reason,omitempty"`
	Status      *string `json:"status,omitempty"`
	Return      *string `json:"return,omitempty"`
}
