package entity

import (
	"time"

	"github.com/google/uuid"
)

// School is a partner school athletes are enrolled in.
type School struct {
	ID          uuid.UUID
	Name        string
	Address     string
	Phone       string
	Email       string
	Coordinator string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Enrollment links an athlete to a school for a school year.
type Enrollment struct {
	ID         uuid.UUID
	AthleteID  uuid.UUID
	SchoolID   uuid.UUID
	Grade      string
	Shift      string // "manha", "tarde" or "noite".
	SchoolYear int
	Active     bool
	EnrolledAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SchoolRecord is a pedagogy follow-up entry: attendance, grades and
// school-reported issues, optionally linked to a quarterly period.
type SchoolRecord struct {
	ID             uuid.UUID
	AthleteID      uuid.UUID
	ProfessionalID uuid.UUID
	PeriodID       *uuid.UUID
	AttendancePct  *float64
	GradeAverage   *float64
	Complaints     string
	Incidents      string
	Notes          string
	RecordedAt     time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
