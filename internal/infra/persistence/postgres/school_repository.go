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

// schoolRepository implements the repository.SchoolRepository interface using GORM.
type schoolRepository struct {
	db *gorm.DB
}

// NewSchoolRepository is the constructor for schoolRepository.
func NewSchoolRepository(db *gorm.DB) repository.SchoolRepository {
	return &schoolRepository{db: db}
}

// CreateSchool persists a new school.
func (repo *schoolRepository) CreateSchool(ctx context.Context, school *entity.School) error {
	schoolM := fromSchoolDomain(school)
	if err := repo.db.WithContext(ctx).Create(schoolM).Error; err != nil {
		return errors.Wrap(err, "failed to create school")
	}

	school.ID = schoolM.ID
	school.CreatedAt = schoolM.CreatedAt
	school.UpdatedAt = schoolM.UpdatedAt

	return nil
}

// FindSchoolByID retrieves a school by its unique ID.
func (repo *schoolRepository) FindSchoolByID(ctx context.Context, id uuid.UUID) (*entity.School, error) {
	var schoolM model.SchoolModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&schoolM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSchoolNotFound
		}

		return nil, errors.Wrap(err, "failed to find school by id")
	}

	return toSchoolDomain(&schoolM), nil
}

// ListSchools retrieves all schools ordered by name.
func (repo *schoolRepository) ListSchools(ctx context.Context) ([]*entity.School, error) {
	var schoolMs []model.SchoolModel
	err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&schoolMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list schools")
	}

	schools := make([]*entity.School, len(schoolMs))
	for i := range schoolMs {
		schools[i] = toSchoolDomain(&schoolMs[i])
	}

	return schools, nil
}

// UpdateSchool updates an existing school record.
func (repo *schoolRepository) UpdateSchool(ctx context.Context, school *entity.School) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SchoolModel{}).
		Where("id = ?", school.ID).
		Updates(map[string]any{
			"name":        school.Name,
			"address":     school.Address,
			"phone":       school.Phone,
			"email":       school.Email,
			"coordinator": school.Coordinator,
			"active":      school.Active,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update school")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSchoolNotFound
	}

	return nil
}

func toSchoolDomain(m *model.SchoolModel) *entity.School {
	return &entity.School{
		ID:          m.ID,
		Name:        m.Name,
		Address:     m.Address,
		Phone:       m.Phone,
		Email:       m.Email,
		Coordinator: m.Coordinator,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromSchoolDomain(e *entity.School) *model.SchoolModel {
	return &model.SchoolModel{
		ID:          e.ID,
		Name:        e.Name,
		Address:     e.Address,
		Phone:       e.Phone,
		Email:       e.Email,
		Coordinator: e.Coordinator,
		Active:      e.Active,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
