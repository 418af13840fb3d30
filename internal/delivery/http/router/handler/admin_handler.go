package handler

import (
	"log/slog"
	"net/http"

	"gestao/internal/delivery/http/response"
	"gestao/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the administration handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

type assignRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type setProfileActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// ListUsers returns every profile with its role assignment. Profiles without
// a role form the pending-approval queue.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

// AssignRole grants or replaces an identity's role, approving the account on
// first assignment.
func (h *AdminHandler) AssignRole(c echo.Context) error {
	identityID, err := pathUUID(c, "identityID")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid identity ID")
	}

	var req assignRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.AssignRole(c.Request().Context(), identityID, req.Role); err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("Role assigned", "identityID", identityID, "role", req.Role)

	return response.Success(c, http.StatusOK, nil, "Role assigned successfully")
}

// RemoveRole revokes an identity's role, returning the account to the
// pending-approval state.
func (h *AdminHandler) RemoveRole(c echo.Context) error {
	identityID, err := pathUUID(c, "identityID")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid identity ID")
	}

	if err := h.uc.RemoveRole(c.Request().Context(), identityID); err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("Role removed", "identityID", identityID)

	return response.Success(c, http.StatusOK, nil, "Role removed successfully")
}

// SetProfileActive flips the active flag of a profile.
func (h *AdminHandler) SetProfileActive(c echo.Context) error {
	profileID, err := pathUUID(c, "profileID")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid profile ID")
	}

	var req setProfileActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.SetProfileActive(c.Request().Context(), profileID, *req.Active); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Profile updated successfully")
}

// ListPeriods returns every quarterly period, newest first.
func (h *AdminHandler) ListPeriods(c echo.Context) error {
	periods, err := h.uc.ListPeriods(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, periods, "")
}

// CreatePeriod opens a new quarterly period.
func (h *AdminHandler) CreatePeriod(c echo.Context) error {
	var input *usecase.CreatePeriodInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid period input")
	}

	period, err := h.uc.CreatePeriod(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, period, "Period created successfully")
}

// ClosePeriod freezes a period. Records bound to it become read-only.
func (h *AdminHandler) ClosePeriod(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid period ID")
	}

	period, err := h.uc.ClosePeriod(c.Request().Context(), id, actorProfileID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("Period closed", "periodID", id)

	return response.Success(c, http.StatusOK, period, "Period closed successfully")
}
