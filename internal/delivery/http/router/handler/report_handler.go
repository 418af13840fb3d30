package handler

import (
	"log/slog"
	"net/http"

	"gestao/internal/delivery/http/response"
	"gestao/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReportHandler holds dependencies for the reporting handlers.
type ReportHandler struct {
	uc     usecase.ReportUsecase
	logger *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(uc usecase.ReportUsecase, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetSummary returns the organization-wide summary, optionally narrowed to
// one quarterly period via the period_id query parameter.
func (h *ReportHandler) GetSummary(c echo.Context) error {
	periodID, err := queryUUID(c, "period_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid period ID")
	}

	summary, err := h.uc.GetSummary(c.Request().Context(), periodID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "")
}
