package handler

import (
	"log/slog"
	"net/http"

	"gestao/internal/delivery/http/middleware"
	"gestao/internal/delivery/http/response"
	domainerrors "gestao/internal/domain/errors"
	"gestao/internal/domain/service"
	"gestao/internal/session"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler drives the session lifecycle over HTTP. Each browser gets an
// opaque sid cookie that maps to one live controller in the session manager;
// the session token itself never crosses the wire.
type AuthHandler struct {
	manager *session.Manager
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(manager *session.Manager, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		manager: manager,
		logger:  logger,
	}
}

type signUpRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type profileView struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Active bool      `json:"active"`
}

// sessionView is the wire form of a controller snapshot. The session token
// and identity internals are deliberately absent.
type sessionView struct {
	State           string       `json:"state"`
	Profile         *profileView `json:"profile,omitempty"`
	Role            *string      `json:"role,omitempty"`
	PendingApproval bool         `json:"pending_approval"`
	LastError       string       `json:"last_error,omitempty"`
}

func newSessionView(snap session.Snapshot) sessionView {
	view := sessionView{
		State:           string(snap.State),
		PendingApproval: snap.State == session.StateAuthenticatedNoRole,
	}
	if snap.Profile != nil {
		view.Profile = &profileView{
			ID:     snap.Profile.ID,
			Name:   snap.Profile.Name,
			Email:  snap.Profile.Email,
			Active: snap.Profile.Active,
		}
	}
	if snap.Role != nil {
		role := snap.Role.String()
		view.Role = &role
	}
	if snap.LastErr != nil {
		view.LastError = snap.LastErr.Error()
	}

	return view
}

// SignUp registers a new account. The account stays pending until an
// administrator assigns a role.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	handle := h.ensureHandle(c)
	input := service.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := handle.Controller.SignUp(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("Account registered", "email", req.Email)

	return response.Success(c, http.StatusCreated, nil, "Account created; awaiting role approval")
}

// SignIn authenticates with email and password and binds the resulting
// session to the caller's sid cookie. The profile/role load runs in the
// background; poll GET /auth/session until the state settles.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	handle := h.ensureHandle(c)
	if err := handle.Controller.SignIn(c.Request().Context(), req.Email, req.Password); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSessionView(handle.Controller.Snapshot()), "Signed in")
}

// Session returns the caller's current auth snapshot.
func (h *AuthHandler) Session(c echo.Context) error {
	handle, ok := h.lookupHandle(c)
	if !ok {
		view := newSessionView(session.Snapshot{State: session.StateUnauthenticated})

		return response.Success(c, http.StatusOK, view, "")
	}

	return response.Success(c, http.StatusOK, newSessionView(handle.Controller.Snapshot()), "")
}

// Refresh forces an immediate re-check of session, profile and role. Used by
// the pending-approval screen's "check now" button; the underlying check
// keeps its minimum visible duration even when the round trip is fast.
func (h *AuthHandler) Refresh(c echo.Context) error {
	handle, ok := h.lookupHandle(c)
	if !ok {
		return response.Unauthorized(c,
			domainerrors.ErrSignedOut.ErrorCode(),
			domainerrors.ErrSignedOut.Message())
	}

	if err := handle.Poller.CheckNow(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSessionView(handle.Controller.Snapshot()), "")
}

// SignOut clears the local session first and then revokes the server-side
// session. The caller is signed out even when revocation fails; the failure
// is only logged.
func (h *AuthHandler) SignOut(c echo.Context) error {
	handle, ok := h.lookupHandle(c)
	if ok {
		if err := handle.Controller.SignOut(c.Request().Context()); err != nil {
			h.logger.Warn("Session revocation failed during sign-out", "error", err.Error())
		}
		h.manager.Discard(handle.SID)
	}

	h.clearCookie(c)

	return response.Success(c, http.StatusOK, nil, "Signed out")
}

// ensureHandle resolves the caller's handle, opening a fresh controller and
// setting the sid cookie when the caller has none yet.
func (h *AuthHandler) ensureHandle(c echo.Context) *session.Handle {
	if handle, ok := h.lookupHandle(c); ok {
		return handle
	}

	handle := h.manager.Open()
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    handle.SID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return handle
}

func (h *AuthHandler) lookupHandle(c echo.Context) (*session.Handle, bool) {
	cookie, err := c.Cookie(middleware.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}

	return h.manager.Lookup(cookie.Value)
}

func (h *AuthHandler) clearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
