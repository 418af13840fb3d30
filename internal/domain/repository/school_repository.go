package repository

import (
	"context"

	"gestao/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSchoolNotFound is returned when a school is not found.
var ErrSchoolNotFound = errors.New("school not found")

// SchoolRepository manages partner schools.
type SchoolRepository interface {
	// CreateSchool persists a new school.
	CreateSchool(ctx context.Context, school *entity.School) error

	// FindSchoolByID retrieves a school by its unique ID.
	FindSchoolByID(ctx context.Context, id uuid.UUID) (*entity.School, error)

	// ListSchools retrieves all schools ordered by name.
	ListSchools(ctx context.Context) ([]*entity.School, error)

	// UpdateSchool updates an existing school record.
	UpdateSchool(ctx context.Context, school *entity.School) error
}
