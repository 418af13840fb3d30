package usecase

import (
	"context"
	"time"

	"gestao/internal/domain/entity"

	"github.com/google/uuid"
)

// PedagogyUsecase defines the interface for pedagogy department records:
// partner schools, enrollments and school follow-up records.
type PedagogyUsecase interface {
	CreateSchool(ctx context.Context, input *CreateSchoolInput) (*entity.School, error)
	ListSchools(ctx context.Context) ([]*entity.School, error)
	UpdateSchool(ctx context.Context, id uuid.UUID, input *UpdateSchoolInput) (*entity.School, error)

	CreateEnrollment(ctx context.Context, input *CreateEnrollmentInput) (*entity.Enrollment, error)
	ListEnrollments(ctx context.Context, athleteID *uuid.UUID) ([]*entity.Enrollment, error)
	UpdateEnrollment(ctx context.Context, id uuid.UUID, input *UpdateEnrollmentInput) (*entity.Enrollment, error)

	CreateSchoolRecord(ctx context.Context, actorProfileID uuid.UUID, input *CreateSchoolRecordInput) (*entity.SchoolRecord, error)
	ListSchoolRecords(ctx context.Context, input *ListSchoolRecordsInput) ([]*entity.SchoolRecord, error)
	UpdateSchoolRecord(ctx context.Context, id uuid.UUID, input *UpdateSchoolRecordInput) (*entity.SchoolRecord, error)
	DeleteSchoolRecord(ctx context.Context, id uuid.UUID) error
}

// --- Input DTOs ---

// CreateSchoolInput defines the data required to register a school.
type CreateSchoolInput struct {
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Coordinator string `json:"coordinator,omitempty"`
}

// UpdateSchoolInput defines the data that can change on a school. Nil
// fields are left untouched.
type UpdateSchoolInput struct {
	Name        *string `json:"name,omitempty"`
	Address     *string `json:"address,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	Coordinator *string `json:"coordinator,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// CreateEnrollmentInput defines the data required to enroll an athlete.
type CreateEnrollmentInput struct {
	AthleteID  uuid.UUID `json:"athlete_id"`
	SchoolID   uuid.UUID `json:"school_id"`
	Grade      string    `json:"grade,omitempty"`
	Shift      string    `json:"shift,omitempty"`
	SchoolYear int       `json:"school_year"`
	EnrolledAt time.Time `json:"enrolled_at,omitempty"`
}

// UpdateEnrollmentInput defines the data that can change on an enrollment.
// Nil fields are left untouched.
type UpdateEnrollmentInput struct {
	SchoolID   *uuid.UUID `json:"school_id,omitempty"`
	Grade      *string    `json:"grade,omitempty"`
	Shift      *string    `json:"shift,omitempty"`
	SchoolYear *int       `json:"school_year,omitempty"`
	Active     *bool      `json:"active,omitempty"`
	EnrolledAt *time.Time `json:"enrolled_at,omitempty"`
}

// CreateSchoolRecordInput defines the data required to record a follow-up.
type CreateSchoolRecordInput struct {
	AthleteID     uuid.UUID  `json:"athlete_id"`
	PeriodID      *uuid.UUID `json:"period_id,omitempty"`
	AttendancePct *float64   `json:"attendance_pct,omitempty"`
	GradeAverage  *float64   `json:"grade_average,omitempty"`
	Complaints    string     `json:"complaints,omitempty"`
	Incidents     string     `json:"incidents,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	RecordedAt    time.Time  `json:"recorded_at"`
}

// ListSchoolRecordsInput narrows a school record listing.
type ListSchoolRecordsInput struct {
	AthleteID *uuid.UUID `json:"athlete_id,omitempty"`
	PeriodID  *uuid.UUID `json:"period_id,omitempty"`
}

// UpdateSchoolRecordInput defines the data that can change on a school
// record. Nil fields are left untouched.
type UpdateSchoolRecordInput struct {
	PeriodID      *uuid.UUID `json:"period_id,omitempty"`
	AttendancePct *float64   `json:"attendance_pct,omitempty"`
	GradeAverage  *float64   `json:"grade_average,omitempty"`
	Complaints    *string    `json:"complaints,omitempty"`
	Incidents     *string    `json:"incidents,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	RecordedAt    *time.Time `json:"recorded_at,omitempty"`
}
