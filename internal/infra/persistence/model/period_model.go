package model

import (
	"time"

	"github.com/google/uuid"
)

// PeriodModel mirrors the 'periods' table. Year and quarter are unique
// together; closing stamps who closed it and when.
type PeriodModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Year      int       `gorm:"not null;uniqueIndex:idx_periods_year_quarter"`
	Quarter   int       `gorm:"not null;uniqueIndex:idx_periods_year_quarter"`
	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`
	Closed    bool      `gorm:"not null;default:false"`
	ClosedAt  *time.Time
	ClosedBy  *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PeriodModel) TableName() string {
	return "periods"
}
