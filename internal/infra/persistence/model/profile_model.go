package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table.
type ProfileModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	IdentityID uuid.UUID `gorm:"type:uuid;unique;not null"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Email      string    `gorm:"type:varchar(255);not null"`
	Active     bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// RoleAssignmentModel mirrors the 'user_roles' table. The unique constraint
// on IdentityID enforces one role per identity; assignment is an upsert.
type RoleAssignmentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	IdentityID uuid.UUID `gorm:"type:uuid;unique;not null"`
	Role       string    `gorm:"type:varchar(32);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoleAssignmentModel) TableName() string {
	return "user_roles"
}
