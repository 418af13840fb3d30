// Package model contains the GORM persistence models mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// CredentialModel mirrors the 'credentials' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type CredentialModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	IdentityID   uuid.UUID `gorm:"type:uuid;unique;not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}

// SessionModel mirrors the 'sessions' table. The raw token is never stored;
// only its hash is.
type SessionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	IdentityID uuid.UUID `gorm:"type:uuid;index;not null"`
	TokenHash  string    `gorm:"type:varchar(255);unique;not null"`
	ExpiresAt  time.Time `gorm:"index;not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
