package repository

import (
	"context"

	"gestao/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrSchoolRecordNotFound is returned when a school record is not found.
	ErrSchoolRecordNotFound = errors.New("school record not found")
	// ErrSchoolRecordInvalid is returned when the database rejects a record,
	// such as an attendance percentage outside the 0-100 range check.
	ErrSchoolRecordInvalid = errors.New("school record rejected by a table constraint")
)

// SchoolRecordFilter narrows school record listings.
type SchoolRecordFilter struct {
	AthleteID *uuid.UUID
	PeriodID  *uuid.UUID
}

// SchoolRecordRepository manages pedagogy follow-up records.
type SchoolRecordRepository interface {
	// CreateSchoolRecord persists a new school record.
	CreateSchoolRecord(ctx context.Context, record *entity.SchoolRecord) error

	// FindSchoolRecordByID retrieves a school record by its unique ID.
	FindSchoolRecordByID(ctx context.Context, id uuid.UUID) (*entity.SchoolRecord, error)

	// ListSchoolRecords retrieves school records matching the filter, newest first.
	ListSchoolRecords(ctx context.Context, filter SchoolRecordFilter) ([]*entity.SchoolRecord, error)

	// UpdateSchoolRecord updates an existing school record.
	UpdateSchoolRecord(ctx context.Context, record *entity.SchoolRecord) error

	// DeleteSchoolRecord removes a school record.
	DeleteSchoolRecord(ctx context.Context, id uuid.UUID) error
}
