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

// enrollmentRepository implements the repository.EnrollmentRepository interface using GORM.
type enrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository is the constructor for enrollmentRepository.
func NewEnrollmentRepository(db *gorm.DB) repository.EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

// CreateEnrollment persists a new enrollment.
func (repo *enrollmentRepository) CreateEnrollment(ctx context.Context, enrollment *entity.Enrollment) error {
	enrollmentM := fromEnrollmentDomain(enrollment)
	if err := repo.db.WithContext(ctx).Create(enrollmentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAthleteNotFound
		}

		return errors.Wrap(err, "failed to create enrollment")
	}

	enrollment.ID = enrollmentM.ID
	enrollment.CreatedAt = enrollmentM.CreatedAt
	enrollment.UpdatedAt = enrollmentM.UpdatedAt

	return nil
}

// FindEnrollmentByID retrieves an enrollment by its unique ID.
func (repo *enrollmentRepository) FindEnrollmentByID(ctx context.Context, id uuid.UUID) (*entity.Enrollment, error) {
	var enrollmentM model.EnrollmentModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&enrollmentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEnrollmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find enrollment by id")
	}

	return toEnrollmentDomain(&enrollmentM), nil
}

// ListEnrollments retrieves enrollments; athleteID narrows to one athlete when set.
func (repo *enrollmentRepository) ListEnrollments(ctx context.Context, athleteID *uuid.UUID) ([]*entity.Enrollment, error) {
	query := repo.db.WithContext(ctx).Model(&model.EnrollmentModel{})
	if athleteID != nil {
		query = query.Where("athlete_id = ?", *athleteID)
	}

	var enrollmentMs []model.EnrollmentModel
	if err := query.Order("school_year DESC, created_at DESC").Find(&enrollmentMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list enrollments")
	}

	enrollments := make([]*entity.Enrollment, len(enrollmentMs))
	for i := range enrollmentMs {
		enrollments[i] = toEnrollmentDomain(&enrollmentMs[i])
	}

	return enrollments, nil
}

// UpdateEnrollment updates an existing enrollment record.
func (repo *enrollmentRepository) UpdateEnrollment(ctx context.Context, enrollment *entity.Enrollment) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EnrollmentModel{}).
		Where("id = ?", enrollment.ID).
		Updates(map[string]any{
			"school_id":   enrollment.SchoolID,
			"grade":       enrollment.Grade,
			"shift":       enrollment.Shift,
			"school_year": enrollment.SchoolYear,
			"active":      enrollment.Active,
			"enrolled_at": enrollment.EnrolledAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update enrollment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEnrollmentNotFound
	}

	return nil
}

func toEnrollmentDomain(m *model.EnrollmentModel) *entity.Enrollment {
	return &entity.Enrollment{
		ID:         m.ID,
		AthleteID:  m.AthleteID,
		SchoolID:   m.SchoolID,
		Grade:      m.Grade,
		Shift:      m.Shift,
		SchoolYear: m.SchoolYear,
		Active:     m.Active,
		EnrolledAt: m.EnrolledAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func fromEnrollmentDomain(e *entity.Enrollment) *model.EnrollmentModel {
	return &model.EnrollmentModel{
		ID:         e.ID,
		AthleteID:  e.AthleteID,
		SchoolID:   e.SchoolID,
		Grade:      e.Grade,
		Shift:      e.Shift,
		SchoolYear: e.SchoolYear,
		Active:     e.Active,
		EnrolledAt: e.EnrolledAt,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
