package model

import (
	"time"

	"github.com/google/uuid"
)

// AnamnesisModel mirrors the 'anamneses' table.
type AnamnesisModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AthleteID         uuid.UUID `gorm:"type:uuid;not null;index"`
	ProfessionalID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FamilyComposition string    `gorm:"type:text"`
	HousingSituation  string    `gorm:"type:text"`
	FamilyIncome      string    `gorm:"type:varchar(128)"`
	SocialBenefits    string    `gorm:"type:text"`
	SchoolSituation   string    `gorm:"type:text"`
	Notes             string    `gorm:"type:text"`
	RecordedAt        time.Time `gorm:"type:date;not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (AnamnesisModel) TableName() string {
	return "anamneses"
}

// ContactModel mirrors the 'contacts' table.
type ContactModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AthleteID    *uuid.UUID `gorm:"type:uuid;index"`
	Name         string     `gorm:"type:varchar(255);not null"`
	Relationship string     `gorm:"type:varchar(64)"`
	Phone        string     `gorm:"type:varchar(32)"`
	Email        string     `gorm:"type:varchar(255)"`
	Address      string     `gorm:"type:text"`
	Notes        string     `gorm:"type:text"`
	Active       bool       `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}

// ReferralModel mirrors the 'referrals' table.
type ReferralModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AthleteID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind           string    `gorm:"type:varchar(64);not null"`
	Destination    string    `gorm:"type:varchar(255)"`
	Reason         string    `gorm:"type:text"`
	Date           time.Time `gorm:"type:date;not null"`
	Status         string    `gorm:"type:varchar(32);not null;index"`
	Return         string    `gorm:"type:text;column:return_notes"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReferralModel) TableName() string {
	return "referrals"
}
