// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the department role an identity can hold. An identity
// holds at most one role; an identity without a role is awaiting approval.
type Role string

const (
	// RoleAdmin indicates a system administrator.
	RoleAdmin Role = "admin"
	// RolePsicologo indicates a psychology department professional.
	RolePsicologo Role = "psicologo"
	// RoleAssistenteSocial indicates a social work professional.
	RoleAssistenteSocial Role = "assistente_social"
	// RolePedagogo indicates a pedagogy department professional.
	RolePedagogo Role = "pedagogo"
	// RoleGestor indicates a manager with cross-department read access.
	RoleGestor Role = "gestor"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RolePsicologo, RoleAssistenteSocial, RolePedagogo, RoleGestor:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// AllRoles lists every assignable role.
func AllRoles() Roles {
	return Roles{RoleAdmin, RolePsicologo, RoleAssistenteSocial, RolePedagogo, RoleGestor}
}

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
