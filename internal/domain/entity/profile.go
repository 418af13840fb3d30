package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the user-facing record of a person with access to the system.
// It is created at sign-up and approved later by an administrator through
// a RoleAssignment.
type Profile struct {
	ID         uuid.UUID // The unique identifier of the profile.
	IdentityID uuid.UUID // The identity this profile belongs to.
	Name       string
	Email      string
	Active     bool // Inactive profiles keep their history but cannot act.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RoleAssignment grants one role to one identity. Absence of an
// assignment means the account is still pending approval.
type RoleAssignment struct {
	ID         uuid.UUID
	IdentityID uuid.UUID
	Role       Role
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
