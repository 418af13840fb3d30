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

// profileRepository implements the repository.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// CreateProfile persists a new profile.
func (repo *profileRepository) CreateProfile(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)
	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		return errors.Wrap(err, "failed to create profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindProfileByID retrieves a profile by its unique ID.
func (repo *profileRepository) FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	return toProfileDomain(&profileM), nil
}

// FindProfileByIdentityID retrieves the profile belonging to an identity.
func (repo *profileRepository) FindProfileByIdentityID(ctx context.Context, identityID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("identity_id = ?", identityID).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by identity id")
	}

	return toProfileDomain(&profileM), nil
}

// ListProfiles retrieves all profiles ordered by name.
func (repo *profileRepository) ListProfiles(ctx context.Context) ([]*entity.Profile, error) {
	var profileMs []model.ProfileModel
	err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&profileMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	profiles := make([]*entity.Profile, len(profileMs))
	for i := range profileMs {
		profiles[i] = toProfileDomain(&profileMs[i])
	}

	return profiles, nil
}

// UpdateProfile updates an existing profile record.
func (repo *profileRepository) UpdateProfile(ctx context.Context, profile *entity.Profile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"name":   profile.Name,
			"email":  profile.Email,
			"active": profile.Active,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

func toProfileDomain(m *model.ProfileModel) *entity.Profile {
	return &entity.Profile{
		ID:         m.ID,
		IdentityID: m.IdentityID,
		Name:       m.Name,
		Email:      m.Email,
		Active:     m.Active,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func fromProfileDomain(e *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		ID:         e.ID,
		IdentityID: e.IdentityID,
		Name:       e.Name,
		Email:      e.Email,
		Active:     e.Active,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
