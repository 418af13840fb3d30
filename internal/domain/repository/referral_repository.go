package repository

import (
	"context"

	"gestao/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrReferralNotFound is returned when a referral is not found.
var ErrReferralNotFound = errors.New("referral not found")

// ReferralFilter narrows referral listings.
type ReferralFilter struct {
	AthleteID *uuid.UUID
	Status    *string
}

// ReferralRepository manages external-service referrals.
type ReferralRepository interface {
	// CreateReferral persists a new referral.
	CreateReferral(ctx context.Context, referral *entity.Referral) error

	// FindReferralByID retrieves a referral by its unique ID.
	FindReferralByID(ctx context.Context, id uuid.UUID) (*entity.Referral, error)

	// ListReferrals retrieves referrals matching the filter, newest first.
	ListReferrals(ctx context.Context, filter ReferralFilter) ([]*entity.Referral, error)

	// UpdateReferral updates an existing referral record.
	UpdateReferral(ctx context.Context, referral *entity.Referral) error

	// DeleteReferral removes a referral.
	DeleteReferral(ctx context.Context, id uuid.UUID) error
}
