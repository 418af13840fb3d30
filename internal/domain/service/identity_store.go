package service

import (
	"context"

	"gestao/internal/domain/entity"

	"github.com/google/uuid"
)

// AuthEventType classifies a change in authentication state.
type AuthEventType string

const (
	// AuthEventSignedIn fires after a session is established.
	AuthEventSignedIn AuthEventType = "SIGNED_IN"
	// AuthEventSignedOut fires after a session ends, for any reason.
	AuthEventSignedOut AuthEventType = "SIGNED_OUT"
	// AuthEventTokenRefreshed fires when an existing session is re-validated.
	AuthEventTokenRefreshed AuthEventType = "TOKEN_REFRESHED"
)

// AuthEvent notifies subscribers of a change in authentication state.
// Session is nil for AuthEventSignedOut.
type AuthEvent struct {
	Type    AuthEventType
	Session *entity.Session
}

// SignUpInput carries the data needed to register a new account.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

// IdentityStore is the authentication boundary of one client session.
// Implementations hold the session state for exactly one caller; the rest
// of the system never reaches around this contract to the credential
// storage directly.
//
// Event delivery: handlers registered through OnAuthStateChange are invoked
// synchronously by the operation that changed the state. Handlers must not
// call back into the store from inside the callback.
type IdentityStore interface {
	// CurrentSession returns the session bound to this store, or nil when
	// there is none. An expired or revoked session yields (nil, nil), not
	// an error; errors mean the check itself could not be performed.
	CurrentSession(ctx context.Context) (*entity.Session, error)

	// SignInWithPassword authenticates with email and password, binding the
	// resulting session to this store.
	SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error)

	// SignUp registers a new account. It never grants a role; the account
	// stays pending until an administrator approves it.
	SignUp(ctx context.Context, input SignUpInput) error

	// SignOut revokes the bound session. Revocation failures are reported
	// but the local binding is always cleared.
	SignOut(ctx context.Context) error

	// OnAuthStateChange registers a handler for auth events and returns an
	// unsubscribe function. Unsubscribing is idempotent.
	OnAuthStateChange(handler func(event AuthEvent)) (unsubscribe func())
}

// Directory resolves the profile and role of an authenticated identity.
// FetchProfile never returns (nil, nil): a missing profile is an error.
// FetchRole returns (nil, nil) when the identity has no role yet; an error
// means the lookup itself failed and nothing can be said about the role.
type Directory interface {
	FetchProfile(ctx context.Context, identityID uuid.UUID) (*entity.Profile, error)
	FetchRole(ctx context.Context, identityID uuid.UUID) (*entity.Role, error)
}
