package model

import (
	"time"

	"github.com/google/uuid"
)

// SchoolModel mirrors the 'schools' table.
type SchoolModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Address     string    `gorm:"type:text"`
	Phone       string    `gorm:"type:varchar(32)"`
	Email       string    `gorm:"type:varchar(255)"`
	Coordinator string    `gorm:"type:varchar(255)"`
	Active      bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SchoolModel) TableName() string {
	return "schools"
}

// EnrollmentModel mirrors the 'enrollments' table.
type EnrollmentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AthleteID  uuid.UUID `gorm:"type:uuid;not null;index"`
	SchoolID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Grade      string    `gorm:"type:varchar(64)"`
	Shift      string    `gorm:"type:varchar(16)"`
	SchoolYear int       `gorm:"not null"`
	Active     bool      `gorm:"not null;default:true"`
	EnrolledAt time.Time `gorm:"type:date"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (EnrollmentModel) TableName() string {
	return "enrollments"
}

// SchoolRecordModel mirrors the 'school_records' table.
type SchoolRecordModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AthleteID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProfessionalID uuid.UUID  `gorm:"type:uuid;not null;index"`
	PeriodID       *uuid.UUID `gorm:"type:uuid;index"`
	AttendancePct  *float64   `gorm:"check:chk_attendance_pct,attendance_pct >= 0 AND attendance_pct <= 100"`
	GradeAverage   *float64
	Complaints     string    `gorm:"type:text"`
	Incidents      string    `gorm:"type:text"`
	Notes          string    `gorm:"type:text"`
	RecordedAt     time.Time `gorm:"type:date;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (SchoolRecordModel) TableName() string {
	return "school_records"
}
