package impl

import (
	"context"
	"log/slog"

	"gestao/internal/domain/entity"
	domainerrors "gestao/internal/domain/errors"
	"gestao/internal/domain/repository"
	"gestao/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	reports repository.ReportRepository
	periods repository.PeriodRepository
	logger  *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(
	reports repository.ReportRepository,
	periods repository.PeriodRepository,
	logger *slog.Logger,
) usecase.ReportUsecase {
	return &reportService{
		reports: reports,
		periods: periods,
		logger:  logger,
	}
}

// GetSummary assembles the organization-wide summary from the database
// aggregations. Period-aware indicators narrow to the period when given.
func (srv *reportService) GetSummary(ctx context.Context, periodID *uuid.UUID) (*entity.Summary, error) {
	srv.logger.Debug("Building report summary")

	if periodID != nil {
		if _, err := srv.periods.FindPeriodByID(ctx, *periodID); err != nil {
			if errors.Is(err, repository.ErrPeriodNotFound) {
				return nil, errors.Wrap(domainerrors.ErrNotFound, "period not found")
			}

			return nil, errors.Wrap(err, "failed to find period")
		}
	}

	activeAthletes, err := srv.reports.CountActiveAthletes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active athletes")
	}

	byCategory, err := srv.reports.CountAthletesByCategory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count athletes by category")
	}

	byType, err := srv.reports.CountInterventionsByType(ctx, periodID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count interventions by type")
	}

	byStatus, err := srv.reports.CountReferralsByStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count referrals by status")
	}

	averages, err := srv.reports.SchoolAverages(ctx, periodID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to average school records")
	}

	activeProfiles, pendingApprovals, err := srv.reports.CountProfiles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count profiles")
	}

	return &entity.Summary{
		ActiveAthletes:      activeAthletes,
		AthletesByCategory:  byCategory,
		InterventionsByType: byType,
		ReferralsByStatus:   byStatus,
		AvgAttendancePct:    averages.AttendancePct,
		AvgGradeAverage:     averages.GradeAverage,
		ActiveProfiles:      activeProfiles,
		PendingApprovals:    pendingApprovals,
	}, nil
}
