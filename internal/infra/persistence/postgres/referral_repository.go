package postgres

import (
	"context"

	"gestao/internal/domain/entity"
	"gestao/internal/domain/repository"
	"gestao/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// referralRepository implements the repository.ReferralRepository interface using GORM.
type referralRepository struct {
	db *gorm.DB
}

// NewReferralRepository is the constructor for referralRepository.
func NewReferralRepository(db *gorm.DB) repository.ReferralRepository {
	return &referralRepository{db: db}
}

// CreateReferral persists a new referral.
func (repo *referralRepository) CreateReferral(ctx context.Context, referral *entity.Referral) error {
	referralM := fromReferralDomain(referral)
	if err := repo.db.WithContext(ctx).Create(referralM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAthleteNotFound
		}

		return errors.Wrap(err, "failed to create referral")
	}

	referral.ID = referralM.ID
	referral.CreatedAt = referralM.CreatedAt
	referral.UpdatedAt = referralM.UpdatedAt

	return nil
}

// FindReferralByID retrieves a referral by its unique ID.
func (repo *referralRepository) FindReferralByID(ctx context.Context, id uuid.UUID) (*entity.Referral, error) {
	var referralM model.ReferralModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&referralM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReferralNotFound
		}

		return nil, errors.Wrap(err, "failed to find referral by id")
	}

	return toReferralDomain(&referralM), nil
}

// ListReferrals retrieves referrals matching the filter, newest first.
func (repo *referralRepository) ListReferrals(ctx context.Context, filter repository.ReferralFilter) ([]*entity.Referral, error) {
	query := repo.db.WithContext(ctx).Model(&model.ReferralModel{})
	if filter.AthleteID != nil {
		query = query.Where("athlete_id = ?", *filter.AthleteID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var referralMs []model.ReferralModel
	if err := query.Order("date DESC, created_at DESC").Find(&referralMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list referrals")
	}

	referrals := make([]*entity.Referral, len(referralMs))
	for i := range referralMs {
		referrals[i] = toReferralDomain(&referralMs[i])
	}

	return referrals, nil
}

// UpdateReferral updates an existing referral record.
func (repo *referralRepository) UpdateReferral(ctx context.Context, referral *entity.Referral) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReferralModel{}).
		Where("id = ?", referral.ID).
		Updates(map[string]any{
			"kind":         referral.Kind,
			"destination":  referral.Destination,
			"reason":       referral.Reason,
			"date":         referral.Date,
			"status":       referral.Status,
			"return_notes": referral.Return,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update referral")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReferralNotFound
	}

	return nil
}

// DeleteReferral removes a referral.
func (repo *referralRepository) DeleteReferral(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReferralModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete referral")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReferralNotFound
	}

	return nil
}

func toReferralDomain(m *model.ReferralModel) *entity.Referral {
	return &entity.Referral{
		ID:             m.ID,
		AthleteID:      m.AthleteID,
		ProfessionalID: m.ProfessionalID,
		Kind:           m.Kind,
		Destination:    m.Destination,
		Reason:         m.Reason,
		Date:           m.Date,
		Status:         m.Status,
		Return:         m.Return,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func fromReferralDomain(e *entity.Referral) *model.ReferralModel {
	return &model.ReferralModel{
		ID:             e.ID,
		AthleteID:      e.AthleteID,
		ProfessionalID: e.ProfessionalID,
		Kind:           e.Kind,
		Destination:    e.Destination,
		Reason:         e.Reason,
		Date:           e.Date,
		Status:         e.Status,
		Return:         e.Return,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
