package session

import (
	"gestao/internal/domain/entity"
)

// Decision is the outcome of a route-guard evaluation.
type Decision string

const (
	// DecisionLoading tells the caller to show a loading indicator.
	DecisionLoading Decision = "loading"
	// DecisionRedirectSignIn sends the caller to the sign-in page,
	// preserving the originally requested path.
	DecisionRedirectSignIn Decision = "redirect_sign_in"
	// DecisionPendingApproval shows the waiting-for-approval interstitial.
	DecisionPendingApproval Decision = "pending_approval"
	// DecisionRender admits the caller to the requested view.
	DecisionRender Decision = "render"
	// DecisionRedirectLanding sends an authenticated caller without the
	// required role to the default landing view.
	DecisionRedirectLanding Decision = "redirect_landing"
)

// Decide maps a controller snapshot and a route's allowed-role set to an
// access decision. An empty allowed set admits any authenticated role.
// Decide is a pure function of its inputs.
func Decide(snap Snapshot, allowed entity.Roles) Decision {
	switch snap.State {
	case StateUninitialized, StateLoading:
		return DecisionLoading
	case StateUnauthenticated:
		return DecisionRedirectSignIn
	case StateAuthenticatedNoRole:
		return DecisionPendingApproval
	case StateAuthenticatedWithRole:
		if len(allowed) == 0 {
			return DecisionRender
		}
		if snap.Role != nil && allowed.Contains(*snap.Role) {
			return DecisionRender
		}

		return DecisionRedirectLanding
	default:
		return DecisionRedirectSignIn
	}
}
