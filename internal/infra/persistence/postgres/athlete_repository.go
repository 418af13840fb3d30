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

// athleteRepository implements the repository.AthleteRepository interface using GORM.
type athleteRepository struct {
	db *gorm.DB
}

// NewAthleteRepository is the constructor for athleteRepository.
func NewAthleteRepository(db *gorm.DB) repository.AthleteRepository {
	return &athleteRepository{db: db}
}

// CreateAthlete persists a new athlete.
func (repo *athleteRepository) CreateAthlete(ctx context.Context, athlete *entity.Athlete) error {
	athleteM := fromAthleteDomain(athlete)
	if err := repo.db.WithContext(ctx).Create(athleteM).Error; err != nil {
		return errors.Wrap(err, "failed to create athlete")
	}

	athlete.ID = athleteM.ID
	athlete.CreatedAt = athleteM.CreatedAt
	athlete.UpdatedAt = athleteM.UpdatedAt

	return nil
}

// FindAthleteByID retrieves an athlete by its unique ID.
func (repo *athleteRepository) FindAthleteByID(ctx context.Context, id uuid.UUID) (*entity.Athlete, error) {
	var athleteM model.AthleteModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&athleteM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAthleteNotFound
		}

		return nil, errors.Wrap(err, "failed to find athlete by id")
	}

	return toAthleteDomain(&athleteM), nil
}

// ListAthletes retrieves athletes matching the filter, ordered by name.
func (repo *athleteRepository) ListAthletes(ctx context.Context, filter repository.AthleteFilter) ([]*entity.Athlete, error) {
	query := repo.db.WithContext(ctx).Model(&model.AthleteModel{})
	if filter.Category != nil {
		query = query.Where("category = ?", filter.Category.String())
	}
	if !filter.IncludeInactive {
		query = query.Where("active = ?", true)
	}

	var athleteMs []model.AthleteModel
	if err := query.Order("name ASC").Find(&athleteMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list athletes")
	}

	athletes := make([]*entity.Athlete, len(athleteMs))
	for i := range athleteMs {
		athletes[i] = toAthleteDomain(&athleteMs[i])
	}

	return athletes, nil
}

// UpdateAthlete updates an existing athlete record.
func (repo *athleteRepository) UpdateAthlete(ctx context.Context, athlete *entity.Athlete) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AthleteModel{}).
		Where("id = ?", athlete.ID).
		Updates(map[string]any{
			"name":         athlete.Name,
			"birth_date":   athlete.BirthDate,
			"category":     athlete.Category.String(),
			"position":     athlete.Position,
			"shirt_number": athlete.ShirtNumber,
			"active":       athlete.Active,
			"entry_date":   athlete.EntryDate,
			"notes":        athlete.Notes,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update athlete")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAthleteNotFound
	}

	return nil
}

func toAthleteDomain(m *model.AthleteModel) *entity.Athlete {
	return &entity.Athlete{
		ID:          m.ID,
		Name:        m.Name,
		BirthDate:   m.BirthDate,
		Category:    entity.Category(m.Category),
		Position:    m.Position,
		ShirtNumber: m.ShirtNumber,
		Active:      m.Active,
		EntryDate:   m.EntryDate,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromAthleteDomain(e *entity.Athlete) *model.AthleteModel {
	return &model.AthleteModel{
		ID:          e.ID,
		Name:        e.Name,
		BirthDate:   e.BirthDate,
		Category:    e.Category.String(),
		Position:    e.Position,
		ShirtNumber: e.ShirtNumber,
		Active:      e.Active,
		EntryDate:   e.EntryDate,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
