package model

import (
	"time"

	"github.com/google/uuid"
)

// AthleteModel mirrors the 'athletes' table.
type AthleteModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	BirthDate   time.Time `gorm:"type:date;not null"`
	Category    string    `gorm:"type:varchar(32);not null;index"`
	Position    string    `gorm:"type:varchar(64)"`
	ShirtNumber *int
	Active      bool      `gorm:"not null;default:true;index"`
	EntryDate   time.Time `gorm:"type:date"`
	Notes       string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AthleteModel) TableName() string {
	return "athletes"
}
