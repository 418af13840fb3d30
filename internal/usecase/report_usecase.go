package usecase

import (
	"context"

	"gestao/internal/domain/entity"

	"github.com/google/uuid"
)

// ReportUsecase defines the interface for cross-department reporting.
type ReportUsecase interface {
	// GetSummary assembles the organization-wide summary, optionally
	// narrowed to one quarterly period.
	GetSummary(ctx context.Context, periodID *uuid.UUID) (*entity.Summary, error)
}
