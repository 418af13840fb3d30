package handler

import (
	"log/slog"
	"net/http"

	"gestao/internal/delivery/http/response"
	"gestao/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PedagogyHandler holds dependencies for the pedagogy department handlers.
type PedagogyHandler struct {
	uc     usecase.PedagogyUsecase
	logger *slog.Logger
}

// NewPedagogyHandler is the constructor for PedagogyHandler, injected by Fx.
func NewPedagogyHandler(uc usecase.PedagogyUsecase, logger *slog.Logger) *PedagogyHandler {
	return &PedagogyHandler{
		uc:     uc,
		logger: logger,
	}
}

// --- Schools ---

// CreateSchool registers a partner school.
func (h *PedagogyHandler) CreateSchool(c echo.Context) error {
	var input *usecase.CreateSchoolInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid school input")
	}

	school, err := h.uc.CreateSchool(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, school, "School registered successfully")
}

// ListSchools returns every registered school.
func (h *PedagogyHandler) ListSchools(c echo.Context) error {
	schools, err := h.uc.ListSchools(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, schools, "")
}

// UpdateSchool applies a partial update to a school.
func (h *PedagogyHandler) UpdateSchool(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid school ID")
	}

	var input *usecase.UpdateSchoolInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid school input")
	}

	school, err := h.uc.UpdateSchool(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, school, "School updated successfully")
}

// --- Enrollments ---

// CreateEnrollment links an athlete to a school for a school year.
func (h *PedagogyHandler) CreateEnrollment(c echo.Context) error {
	var input *usecase.CreateEnrollmentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid enrollment input")
	}

	enrollment, err := h.uc.CreateEnrollment(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, enrollment, "Enrollment created successfully")
}

// ListEnrollments returns enrollments, optionally filtered by athlete.
func (h *PedagogyHandler) ListEnrollments(c echo.Context) error {
	athleteID, err := queryUUID(c, "athlete_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid athlete ID")
	}

	enrollments, err := h.uc.ListEnrollments(c.Request().Context(), athleteID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, enrollments, "")
}

// UpdateEnrollment applies a partial update to an enrollment.
func (h *PedagogyHandler) UpdateEnrollment(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid enrollment ID")
	}

	var input *usecase.UpdateEnrollmentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid enrollment input")
	}

	enrollment, err := h.uc.UpdateEnrollment(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, enrollment, "Enrollment updated successfully")
}

// --- School records ---

// CreateSchoolRecord records a school follow-up for an athlete.
func (h *PedagogyHandler) CreateSchoolRecord(c echo.Context) error {
	var input *usecase.CreateSchoolRecordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid school record input")
	}

	record, err := h.uc.CreateSchoolRecord(c.Request().Context(), actorProfileID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, record, "School record created successfully")
}

// ListSchoolRecords returns school records filtered by the query parameters.
func (h *PedagogyHandler) ListSchoolRecords(c echo.Context) error {
	input := &usecase.ListSchoolRecordsInput{}

	var err error
	if input.AthleteID, err = queryUUID(c, "athlete_id"); err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid athlete ID")
	}
	if input.PeriodID, err = queryUUID(c, "period_id"); err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid period ID")
	}

	records, err := h.uc.ListSchoolRecords(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "")
}

// UpdateSchoolRecord applies a partial update to a school record.
func (h *PedagogyHandler) UpdateSchoolRecord(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid school record ID")
	}

	var input *usecase.UpdateSchoolRecordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid school record input")
	}

	record, err := h.uc.UpdateSchoolRecord(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "School record updated successfully")
}

// DeleteSchoolRecord removes a school record.
func (h *PedagogyHandler) DeleteSchoolRecord(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid school record ID")
	}

	if err := h.uc.DeleteSchoolRecord(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "School record deleted successfully")
}
