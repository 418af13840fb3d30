package repository

import (
	"context"

	"gestao/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for period persistence.
var (
	// ErrPeriodNotFound is returned when a period is not found.
	ErrPeriodNotFound = errors.New("period not found")
	// ErrPeriodExists is returned when a period for the year/quarter pair already exists.
	ErrPeriodExists = errors.New("period already exists")
)

// PeriodRepository manages quarterly reporting periods.
type PeriodRepository interface {
	// CreatePeriod persists a new period. Fails with ErrPeriodExists when the
	// year/quarter pair is already registered.
	CreatePeriod(ctx context.Context, period *entity.Period) error

	// FindPeriodByID retrieves a period by its unique ID.
	FindPeriodByID(ctx context.Context, id uuid.UUID) (*entity.Period, error)

	// ListPeriods retrieves all periods, newest first.
	ListPeriods(ctx context.Context) ([]*entity.Period, error)

	// UpdatePeriod updates an existing period record.
	UpdatePeriod(ctx context.Context, period *entity.Period) error
}
