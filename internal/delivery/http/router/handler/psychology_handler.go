package handler

import (
	"log/slog"
	"net/http"
	"time"

	"gestao/internal/delivery/http/response"
	"gestao/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PsychologyHandler holds dependencies for intervention record handlers.
type PsychologyHandler struct {
	uc     usecase.PsychologyUsecase
	logger *slog.Logger
}

// NewPsychologyHandler is the constructor for PsychologyHandler, injected by Fx.
func NewPsychologyHandler(uc usecase.PsychologyUsecase, logger *slog.Logger) *PsychologyHandler {
	return &PsychologyHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateIntervention records an intervention owned by the acting professional.
func (h *PsychologyHandler) CreateIntervention(c echo.Context) error {
	var input *usecase.CreateInterventionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid intervention input")
	}

	intervention, err := h.uc.CreateIntervention(c.Request().Context(), actorProfileID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, intervention, "Intervention recorded successfully")
}

// GetIntervention returns one intervention. Confidential notes are redacted
// unless the caller owns the record or is an administrator.
func (h *PsychologyHandler) GetIntervention(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid intervention ID")
	}

	intervention, err := h.uc.GetIntervention(c.Request().Context(), actorProfileID(c), actorRole(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, intervention, "")
}

// ListInterventions returns interventions filtered by the query parameters.
func (h *PsychologyHandler) ListInterventions(c echo.Context) error {
	input := &usecase.ListInterventionsInput{
		OnlyMine: c.QueryParam("only_mine") == "true",
	}

	var err error
	if input.AthleteID, err = queryUUID(c, "athlete_id"); err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid athlete ID")
	}
	if input.PeriodID, err = queryUUID(c, "period_id"); err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid period ID")
	}
	if interventionType := c.QueryParam("type"); interventionType != "" {
		input.Type = &interventionType
	}
	if input.From, err = queryDate(c, "from"); err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Invalid from date, expected YYYY-MM-DD")
	}
	if input.To, err = queryDate(c, "to"); err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Invalid to date, expected YYYY-MM-DD")
	}

	interventions, err := h.uc.ListInterventions(c.Request().Context(), actorProfileID(c), actorRole(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, interventions, "")
}

// UpdateIntervention applies a partial update. Only the owner or an
// administrator may update a record.
func (h *PsychologyHandler) UpdateIntervention(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid intervention ID")
	}

	var input *usecase.UpdateInterventionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid intervention input")
	}

	intervention, err := h.uc.UpdateIntervention(c.Request().Context(), actorProfileID(c), actorRole(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, intervention, "Intervention updated successfully")
}

// DeleteIntervention removes a record. Only the owner or an administrator
// may delete it.
func (h *PsychologyHandler) DeleteIntervention(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid intervention ID")
	}

	if err := h.uc.DeleteIntervention(c.Request().Context(), actorProfileID(c), actorRole(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Intervention deleted successfully")
}

// queryDate parses an optional YYYY-MM-DD query parameter; nil when absent.
func queryDate(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
