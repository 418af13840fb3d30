package handler

import (
	"log/slog"
	"net/http"

	"gestao/internal/delivery/http/response"
	"gestao/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SocialHandler holds dependencies for the social work department handlers.
type SocialHandler struct {
	uc     usecase.SocialUsecase
	logger *slog.Logger
}

// NewSocialHandler is the constructor for SocialHandler, injected by Fx.
func NewSocialHandler(uc usecase.SocialUsecase, logger *slog.Logger) *SocialHandler {
	return &SocialHandler{
		uc:     uc,
		logger: logger,
	}
}

// --- Anamneses ---

// CreateAnamnesis records a social anamnesis for an athlete.
func (h *SocialHandler) CreateAnamnesis(c echo.Context) error {
	var input *usecase.CreateAnamnesisInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid anamnesis input")
	}

	anamnesis, err := h.uc.CreateAnamnesis(c.Request().Context(), actorProfileID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, anamnesis, "Anamnesis recorded successfully")
}

// GetAnamnesis returns one anamnesis by ID.
func (h *SocialHandler) GetAnamnesis(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid anamnesis ID")
	}

	anamnesis, err := h.uc.GetAnamnesis(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, anamnesis, "")
}

// ListAnamneses returns the anamneses recorded for one athlete.
func (h *SocialHandler) ListAnamneses(c echo.Context) error {
	athleteID, err := pathUUID(c, "athleteID")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid athlete ID")
	}

	anamneses, err := h.uc.ListAnamneses(c.Request().Context(), athleteID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, anamneses, "")
}

// UpdateAnamnesis applies a partial update to an anamnesis.
func (h *SocialHandler) UpdateAnamnesis(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid anamnesis ID")
	}

	var input *usecase.UpdateAnamnesisInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid anamnesis input")
	}

	anamnesis, err := h.uc.UpdateAnamnesis(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, anamnesis, "Anamnesis updated successfully")
}

// DeleteAnamnesis removes an anamnesis.
func (h *SocialHandler) DeleteAnamnesis(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid anamnesis ID")
	}

	if err := h.uc.DeleteAnamnesis(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Anamnesis deleted successfully")
}

// --- Contacts ---

// CreateContact registers a guardian or emergency contact.
func (h *SocialHandler) CreateContact(c echo.Context) error {
	var input *usecase.CreateContactInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}

	contact, err := h.uc.CreateContact(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, contact, "Contact registered successfully")
}

// ListContacts returns contacts, optionally filtered by athlete.
func (h *SocialHandler) ListContacts(c echo.Context) error {
	athleteID, err := queryUUID(c, "athlete_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid athlete ID")
	}

	contacts, err := h.uc.ListContacts(c.Request().Context(), athleteID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, contacts, "")
}

// UpdateContact applies a partial update to a contact.
func (h *SocialHandler) UpdateContact(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid contact ID")
	}

	var input *usecase.UpdateContactInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}

	contact, err := h.uc.UpdateContact(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, contact, "Contact updated successfully")
}

// DeleteContact removes a contact.
func (h *SocialHandler) DeleteContact(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid contact ID")
	}

	if err := h.uc.DeleteContact(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Contact deleted successfully")
}

// --- Referrals ---

// CreateReferral opens an external referral. New referrals start pending.
func (h *SocialHandler) CreateReferral(c echo.Context) error {
	var input *usecase.CreateReferralInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid referral input")
	}

	referral, err := h.uc.CreateReferral(c.Request().Context(), actorProfileID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, referral, "Referral opened successfully")
}

// ListReferrals returns referrals filtered by the query parameters.
func (h *SocialHandler) ListReferrals(c echo.Context) error {
	input := &usecase.ListReferralsInput{}

	var err error
	if input.AthleteID, err = queryUUID(c, "athlete_id"); err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid athlete ID")
	}
	if status := c.QueryParam("status"); status != "" {
		input.Status = &status
	}

	referrals, err := h.uc.ListReferrals(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, referrals, "")
}

// UpdateReferral applies a partial update, including status transitions and
// the return notes recorded when the referral concludes.
func (h *SocialHandler) UpdateReferral(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid referral ID")
	}

	var input *usecase.UpdateReferralInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid referral input")
	}

	referral, err := h.uc.UpdateReferral(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, referral, "Referral updated successfully")
}

// DeleteReferral removes a referral.
func (h *SocialHandler) DeleteReferral(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid referral ID")
	}

	if err := h.uc.DeleteReferral(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Referral deleted successfully")
}
