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

// periodRepository implements the repository.PeriodRepository interface using GORM.
type periodRepository struct {
	db *gorm.DB
}

// NewPeriodRepository is the constructor for periodRepository.
func NewPeriodRepository(db *gorm.DB) repository.PeriodRepository {
	return &periodRepository{db: db}
}

// CreatePeriod persists a new period. The unique index on year/quarter
// surfaces duplicates as ErrPeriodExists.
func (repo *periodRepository) CreatePeriod(ctx context.Context, period *entity.Period) error {
	periodM := fromPeriodDomain(period)
	if err := repo.db.WithContext(ctx).Create(periodM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrPeriodExists
		}

		return errors.Wrap(err, "failed to create period")
	}

	period.ID = periodM.ID
	period.CreatedAt = periodM.CreatedAt

	return nil
}

// FindPeriodByID retrieves a period by its unique ID.
func (repo *periodRepository) FindPeriodByID(ctx context.Context, id uuid.UUID) (*entity.Period, error) {
	var periodM model.PeriodModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&periodM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPeriodNotFound
		}

		return nil, errors.Wrap(err, "failed to find period by id")
	}

	return toPeriodDomain(&periodM), nil
}

// ListPeriods retrieves all periods, newest first.
func (repo *periodRepository) ListPeriods(ctx context.Context) ([]*entity.Period, error) {
	var periodMs []model.PeriodModel
	err := repo.db.WithContext(ctx).
		Order("year DESC, quarter DESC").
		Find(&periodMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list periods")
	}

	periods := make([]*entity.Period, len(periodMs))
	for i := range periodMs {
		periods[i] = toPeriodDomain(&periodMs[i])
	}

	return periods, nil
}

// UpdatePeriod updates an existing period record.
func (repo *periodRepository) UpdatePeriod(ctx context.Context, period *entity.Period) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PeriodModel{}).
		Where("id = ?", period.ID).
		Updates(map[string]any{
			"start_date": period.StartDate,
			"end_date":   period.EndDate,
			"closed":     period.Closed,
			"closed_at":  period.ClosedAt,
			"closed_by":  period.ClosedBy,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update period")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPeriodNotFound
	}

	return nil
}

func toPeriodDomain(m *model.PeriodModel) *entity.Period {
	return &entity.Period{
		ID:        m.ID,
		Year:      m.Year,
		Quarter:   m.Quarter,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Closed:    m.Closed,
		ClosedAt:  m.ClosedAt,
		ClosedBy:  m.ClosedBy,
		CreatedAt: m.CreatedAt,
	}
}

func fromPeriodDomain(e *entity.Period) *model.PeriodModel {
	return &model.PeriodModel{
		ID:        e.ID,
		Year:      e.Year,
		Quarter:   e.Quarter,
		StartDate: e.StartDate,
		EndDate:   e.EndDate,
		Closed:    e.Closed,
		ClosedAt:  e.ClosedAt,
		ClosedBy:  e.ClosedBy,
		CreatedAt: e.CreatedAt,
	}
}
