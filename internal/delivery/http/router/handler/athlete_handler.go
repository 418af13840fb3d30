package handler

import (
	"log/slog"
	"net/http"

	"gestao/internal/delivery/http/response"
	"gestao/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AthleteHandler holds dependencies for the athlete registry handlers.
type AthleteHandler struct {
	uc     usecase.AthleteUsecase
	logger *slog.Logger
}

// NewAthleteHandler is the constructor for AthleteHandler, injected by Fx.
func NewAthleteHandler(uc usecase.AthleteUsecase, logger *slog.Logger) *AthleteHandler {
	return &AthleteHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateAthlete handles athlete registration.
func (h *AthleteHandler) CreateAthlete(c echo.Context) error {
	var input *usecase.CreateAthleteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid athlete input")
	}

	athlete, err := h.uc.CreateAthlete(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, athlete, "Athlete registered successfully")
}

// GetAthlete returns one athlete by ID.
func (h *AthleteHandler) GetAthlete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid athlete ID")
	}

	athlete, err := h.uc.GetAthlete(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, athlete, "")
}

// ListAthletes returns athletes, optionally filtered by category. Inactive
// athletes are excluded unless include_inactive=true.
func (h *AthleteHandler) ListAthletes(c echo.Context) error {
	input := &usecase.ListAthletesInput{
		IncludeInactive: c.QueryParam("include_inactive") == "true",
	}
	if category := c.QueryParam("category"); category != "" {
		input.Category = &category
	}

	athletes, err := h.uc.ListAthletes(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, athletes, "")
}

// UpdateAthlete applies a partial update to an athlete.
func (h *AthleteHandler) UpdateAthlete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid athlete ID")
	}

	var input *usecase.UpdateAthleteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid athlete input")
	}

	athlete, err := h.uc.UpdateAthlete(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, athlete, "Athlete updated successfully")
}

// DeactivateAthlete marks an athlete inactive. History is preserved.
func (h *AthleteHandler) DeactivateAthlete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid athlete ID")
	}

	if err := h.uc.DeactivateAthlete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Athlete deactivated successfully")
}
