package model

import (
	"time"

	"github.com/google/uuid"
)

// InterventionModel mirrors the 'interventions' table.
type InterventionModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProfessionalID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type              string     `gorm:"type:varchar(48);not null;index"`
	Date              time.Time  `gorm:"type:date;not null;index"`
	StartTime         string     `gorm:"type:varchar(5)"`
	EndTime           string     `gorm:"type:varchar(5)"`
	Category          *string    `gorm:"type:varchar(32)"`
	PeriodID          *uuid.UUID `gorm:"type:uuid;index"`
	Description       string     `gorm:"type:text"`
	ConfidentialNotes string     `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Athletes []InterventionAthleteModel `gorm:"foreignKey:InterventionID"`
}

// TableName explicitly sets the table name for GORM.
func (InterventionModel) TableName() string {
	return "interventions"
}

// InterventionAthleteModel mirrors the 'intervention_athletes' join table.
type InterventionAthleteModel struct {
	InterventionID uuid.UUID `gorm:"type:uuid;primaryKey"`
	AthleteID      uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName explicitly sets the table name for GORM.
func (InterventionAthleteModel) TableName() string {
	return "intervention_athletes"
}
