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

// anamnesisRepository implements the repository.AnamnesisRepository interface using GORM.
type anamnesisRepository struct {
	db *gorm.DB
}

// NewAnamnesisRepository is the constructor for anamnesisRepository.
func NewAnamnesisRepository(db *gorm.DB) repository.AnamnesisRepository {
	return &anamnesisRepository{db: db}
}

// CreateAnamnesis persists a new anamnesis record.
func (repo *anamnesisRepository) CreateAnamnesis(ctx context.Context, anamnesis *entity.Anamnesis) error {
	anamnesisM := fromAnamnesisDomain(anamnesis)
	if err := repo.db.WithContext(ctx).Create(anamnesisM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAthleteNotFound
		}

		return errors.Wrap(err, "failed to create anamnesis")
	}

	anamnesis.ID = anamnesisM.ID
	anamnesis.CreatedAt = anamnesisM.CreatedAt
	anamnesis.UpdatedAt = anamnesisM.UpdatedAt

	return nil
}

// FindAnamnesisByID retrieves an anamnesis record by its unique ID.
func (repo *anamnesisRepository) FindAnamnesisByID(ctx context.Context, id uuid.UUID) (*entity.Anamnesis, error) {
	var anamnesisM model.AnamnesisModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&anamnesisM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAnamnesisNotFound
		}

		return nil, errors.Wrap(err, "failed to find anamnesis by id")
	}

	return toAnamnesisDomain(&anamnesisM), nil
}

// ListAnamnesesByAthleteID retrieves the athlete's anamnesis records, newest first.
func (repo *anamnesisRepository) ListAnamnesesByAthleteID(ctx context.Context, athleteID uuid.UUID) ([]*entity.Anamnesis, error) {
	var anamnesisMs []model.AnamnesisModel
	err := repo.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("recorded_at DESC").
		Find(&anamnesisMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list anamneses by athlete id")
	}

	anamneses := make([]*entity.Anamnesis, len(anamnesisMs))
	for i := range anamnesisMs {
		anamneses[i] = toAnamnesisDomain(&anamnesisMs[i])
	}

	return anamneses, nil
}

// UpdateAnamnesis updates an existing anamnesis record.
func (repo *anamnesisRepository) UpdateAnamnesis(ctx context.Context, anamnesis *entity.Anamnesis) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AnamnesisModel{}).
		Where("id = ?", anamnesis.ID).
		Updates(map[string]any{
			"family_composition": anamnesis.FamilyComposition,
			"housing_situation":  anamnesis.HousingSituation,
			"family_income":      anamnesis.FamilyIncome,
			"social_benefits":    anamnesis.SocialBenefits,
			"school_situation":   anamnesis.SchoolSituation,
			"notes":              anamnesis.Notes,
			"recorded_at":        anamnesis.RecordedAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update anamnesis")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAnamnesisNotFound
	}

	return nil
}

// DeleteAnamnesis removes an anamnesis record.
func (repo *anamnesisRepository) DeleteAnamnesis(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AnamnesisModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete anamnesis")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAnamnesisNotFound
	}

	return nil
}

func toAnamnesisDomain(m *model.AnamnesisModel) *entity.Anamnesis {
	return &entity.Anamnesis{
		ID:                m.ID,
		AthleteID:         m.AthleteID,
		ProfessionalID:    m.ProfessionalID,
		FamilyComposition: m.FamilyComposition,
		HousingSituation:  m.HousingSituation,
		FamilyIncome:      m.FamilyIncome,
		SocialBenefits:    m.SocialBenefits,
		SchoolSituation:   m.SchoolSituation,
		Notes:             m.Notes,
		RecordedAt:        m.RecordedAt,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func fromAnamnesisDomain(e *entity.Anamnesis) *model.AnamnesisModel {
	return &model.AnamnesisModel{
		ID:                e.ID,
		AthleteID:         e.AthleteID,
		ProfessionalID:    e.ProfessionalID,
		FamilyComposition: e.FamilyComposition,
		HousingSituation:  e.HousingSituation,
		FamilyIncome:      e.FamilyIncome,
		SocialBenefits:    e.SocialBenefits,
		SchoolSituation:   e.SchoolSituation,
		Notes:             e.Notes,
		RecordedAt:        e.RecordedAt,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}
