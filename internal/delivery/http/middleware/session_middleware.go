package middleware

import (
	"log/slog"
	"net/http"

	"gestao/internal/delivery/http/response"
	"gestao/internal/domain/entity"
	domainerrors "gestao/internal/domain/errors"
	"gestao/internal/session"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie that carries the opaque web-session ID.
// The cookie maps to a live controller in the session manager; the session
// token itself never leaves the server.
const SessionCookieName = "gestao_sid"

// LandingPath is the default view a caller is sent to when the requested
// route's role set excludes their role.
const LandingPath = "/api/athletes"

// Context keys set for handlers once a request is admitted.
const (
	ContextKeyIdentityID = "identityID"
	ContextKeyProfileID  = "profileID"
	ContextKeyRole       = "role"
)

// SessionMiddleware gates route groups on the route-guard decision table.
type SessionMiddleware struct {
	manager *session.Manager
	metrics session.Metrics
	logger  *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(manager *session.Manager, metrics session.Metrics, logger *slog.Logger) *SessionMiddleware {
	if metrics == nil {
		metrics = session.NopMetrics{}
	}

	return &SessionMiddleware{
		manager: manager,
		metrics: metrics,
		logger:  logger,
	}
}

// RequireRoles admits the request according to the guard decision for the
// caller's auth snapshot. An empty role list admits any authenticated role.
func (m *SessionMiddleware) RequireRoles(allowed ...entity.Role) echo.MiddlewareFunc {
	roles := entity.Roles(allowed)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			snap := m.snapshot(c)
			decision := session.Decide(snap, roles)
			m.metrics.GuardDecision(decision)

			switch decision {
			case session.DecisionRender:
				c.Set(ContextKeyIdentityID, snap.Session.IdentityID)
				c.Set(ContextKeyProfileID, snap.Profile.ID)
				if snap.Role != nil {
					c.Set(ContextKeyRole, *snap.Role)
				}

				return next(c)
			case session.DecisionLoading:
				// The auth snapshot is still being fetched; the caller
				// should retry rather than be bounced to sign-in.
				c.Response().Header().Set("Retry-After", "1")

				return response.Error(c, http.StatusServiceUnavailable,
					domainerrors.ErrAuthStateLoading.ErrorCode(),
					domainerrors.ErrAuthStateLoading.Message(), "")
			case session.DecisionPendingApproval:
				return response.Forbidden(c,
					domainerrors.ErrPendingApproval.ErrorCode(),
					domainerrors.ErrPendingApproval.Message())
			case session.DecisionRedirectLanding:
				// Authenticated but not allowed here; tell the client
				// where to land instead.
				return response.Error(c, http.StatusForbidden,
					domainerrors.ErrRoleNotAllowed.ErrorCode(),
					domainerrors.ErrRoleNotAllowed.Message(), LandingPath)
			default: // DecisionRedirectSignIn
				// Carry the requested path so the client can come back
				// here after signing in.
				return response.Error(c, http.StatusUnauthorized,
					domainerrors.ErrSignedOut.ErrorCode(),
					domainerrors.ErrSignedOut.Message(), c.Request().RequestURI)
			}
		}
	}
}

// snapshot resolves the caller's controller snapshot. Requests without a
// live web session evaluate as unauthenticated.
func (m *SessionMiddleware) snapshot(c echo.Context) session.Snapshot {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return session.Snapshot{State: session.StateUnauthenticated}
	}

	handle, ok := m.manager.Lookup(cookie.Value)
	if !ok {
		return session.Snapshot{State: session.StateUnauthenticated}
	}

	return handle.Controller.Snapshot()
}
