package repository

import (
	"context"

	"gestao/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrEnrollmentNotFound is returned when an enrollment is not found.
var ErrEnrollmentNotFound = errors.New("enrollment not found")

// EnrollmentRepository manages athlete school enrollments.
type EnrollmentRepository interface {
	// CreateEnrollment persists a new enrollment.
	CreateEnrollment(ctx context.Context, enrollment *entity.Enrollment) error

	// FindEnrollmentByID retrieves an enrollment by its unique ID.
	FindEnrollmentByID(ctx context.Context, id uuid.UUID) (*entity.Enrollment, error)

	// ListEnrollments retrieves enrollments; athleteID narrows to one athlete when set.
	ListEnrollments(ctx context.Context, athleteID *uuid.UUID) ([]*entity.Enrollment, error)

	// UpdateEnrollment updates an existing enrollment record.
	UpdateEnrollment(ctx context.Context, enrollment *entity.Enrollment) error
}
