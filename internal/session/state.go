// Package session implements the authentication and authorization state
// machine behind every protected area: one controller per signed-in web
// session, a pure route-guard decision function, and a poller that watches
// for role approval while an account is still pending.
package session

import (
	"gestao/internal/domain/entity"
)

// State is the authorization state of one controller.
type State string

const (
	// StateUninitialized is the state before the first session check.
	StateUninitialized State = "uninitialized"
	// StateLoading means a session/profile/role fetch is outstanding.
	StateLoading State = "loading"
	// StateUnauthenticated means there is no valid session.
	StateUnauthenticated State = "unauthenticated"
	// StateAuthenticatedNoRole means the session is valid but no role has
	// been assigned yet; the account is pending administrator approval.
	StateAuthenticatedNoRole State = "authenticated_no_role"
	// StateAuthenticatedWithRole means session, profile and role are loaded.
	StateAuthenticatedWithRole State = "authenticated_with_role"
)

// Authenticated reports whether the state carries a valid session.
func (s State) Authenticated() bool {
	return s == StateAuthenticatedNoRole || s == StateAuthenticatedWithRole
}

// Snapshot is an immutable view of a controller's state. The payload always
// reflects the latest successful fetch for the current identity; it is never
// invented locally. Epoch increases on every superseding event and lets
// callers correlate a snapshot with the event that produced it.
type Snapshot struct {
	State   State
	Session *entity.Session
	Profile *entity.Profile
	Role    *entity.Role
	LastErr error // Last background fetch failure; cleared on the next success.
	Epoch   uint64
}
