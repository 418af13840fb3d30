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

// schoolRecordRepository implements the repository.SchoolRecordRepository interface using GORM.
type schoolRecordRepository struct {
	db *gorm.DB
}

// NewSchoolRecordRepository is the constructor for schoolRecordRepository.
func NewSchoolRecordRepository(db *gorm.DB) repository.SchoolRecordRepository {
	return &schoolRecordRepository{db: db}
}

// CreateSchoolRecord persists a new school record.
func (repo *schoolRecordRepository) CreateSchoolRecord(ctx context.Context, record *entity.SchoolRecord) error {
	recordM := fromSchoolRecordDomain(record)
	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAthleteNotFound
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return repository.ErrSchoolRecordInvalid
		}

		return errors.Wrap(err, "failed to create school record")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt
	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

// FindSchoolRecordByID retrieves a school record by its unique ID.
func (repo *schoolRecordRepository) FindSchoolRecordByID(ctx context.Context, id uuid.UUID) (*entity.SchoolRecord, error) {
	var recordM model.SchoolRecordModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&recordM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSchoolRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find school record by id")
	}

	return toSchoolRecordDomain(&recordM), nil
}

// ListSchoolRecords retrieves school records matching the filter, newest first.
func (repo *schoolRecordRepository) ListSchoolRecords(ctx context.Context, filter repository.SchoolRecordFilter) ([]*entity.SchoolRecord, error) {
	query := repo.db.WithContext(ctx).Model(&model.SchoolRecordModel{})
	if filter.AthleteID != nil {
		query = query.Where("athlete_id = ?", *filter.AthleteID)
	}
	if filter.PeriodID != nil {
		query = query.Where("period_id = ?", *filter.PeriodID)
	}

	var recordMs []model.SchoolRecordModel
	if err := query.Order("recorded_at DESC").Find(&recordMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list school records")
	}

	records := make([]*entity.SchoolRecord, len(recordMs))
	for i := range recordMs {
		records[i] = toSchoolRecordDomain(&recordMs[i])
	}

	return records, nil
}

// UpdateSchoolRecord updates an existing school record.
func (repo *schoolRecordRepository) UpdateSchoolRecord(ctx context.Context, record *entity.SchoolRecord) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SchoolRecordModel{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"period_id":      record.PeriodID,
			"attendance_pct": record.AttendancePct,
			"grade_average":  record.GradeAverage,
			"complaints":     record.Complaints,
			"incidents":      record.Incidents,
			"notes":          record.Notes,
			"recorded_at":    record.RecordedAt,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) || isNotNullConstraintViolation(result.Error) {
			return repository.ErrSchoolRecordInvalid
		}

		return errors.Wrap(result.Error, "failed to update school record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSchoolRecordNotFound
	}

	return nil
}

// DeleteSchoolRecord removes a school record.
func (repo *schoolRecordRepository) DeleteSchoolRecord(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SchoolRecordModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete school record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSchoolRecordNotFound
	}

	return nil
}

func toSchoolRecordDomain(m *model.SchoolRecordModel) *entity.SchoolRecord {
	return &entity.SchoolRecord{
		ID:             m.ID,
		AthleteID:      m.AthleteID,
		ProfessionalID: m.ProfessionalID,
		PeriodID:       m.PeriodID,
		AttendancePct:  m.AttendancePct,
		GradeAverage:   m.GradeAverage,
		Complaints:     m.Complaints,
		Incidents:      m.Incidents,
		Notes:          m.Notes,
		RecordedAt:     m.RecordedAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func fromSchoolRecordDomain(e *entity.SchoolRecord) *model.SchoolRecordModel {
	return &model.SchoolRecordModel{
		ID:             e.ID,
		AthleteID:      e.AthleteID,
		ProfessionalID: e.ProfessionalID,
		PeriodID:       e.PeriodID,
		AttendancePct:  e.AttendancePct,
		GradeAverage:   e.GradeAverage,
		Complaints:     e.Complaints,
		Incidents:      e.Incidents,
		Notes:          e.Notes,
		RecordedAt:     e.RecordedAt,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
