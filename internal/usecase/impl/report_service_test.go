package impl

import (
	"context"
	"testing"

	"gestao/internal/domain/entity"
	domainerrors "gestao/internal/domain/errors"
	"gestao/internal/domain/repository"
	mockRepo "gestao/internal/mocks/repository"
	"gestao/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reportServiceFixtures holds all test dependencies for report service tests.
type reportServiceFixtures struct {
	service    usecase.ReportUsecase
	reportRepo *mockRepo.MockReportRepository
	periodRepo *mockRepo.MockPeriodRepository
}

func createTestReportService(t *testing.T) reportServiceFixtures {
	reportRepo := mockRepo.NewMockReportRepository(t)
	periodRepo := mockRepo.NewMockPeriodRepository(t)
	service := NewReportService(reportRepo, periodRepo, newDiscardLogger())

	return reportServiceFixtures{
		service:    service,
		reportRepo: reportRepo,
		periodRepo: periodRepo,
	}
}

func TestReportService_GetSummary_Success(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	attendance := 88.4
	grades := 6.7

	fx.reportRepo.EXPECT().CountActiveAthletes(ctx).Return(42, nil)
	fx.reportRepo.EXPECT().CountAthletesByCategory(ctx).
		Return(map[entity.Category]int64{entity.CategorySub15: 20, entity.CategorySub17: 22}, nil)
	fx.reportRepo.EXPECT().CountInterventionsByType(ctx, (*uuid.UUID)(nil)).
		Return(map[entity.InterventionType]int64{entity.InterventionAtendimentoIndividual: 7}, nil)
	fx.reportRepo.EXPECT().CountReferralsByStatus(ctx).
		Return(map[string]int64{entity.ReferralStatusPendente: 3}, nil)
	fx.reportRepo.EXPECT().SchoolAverages(ctx, (*uuid.UUID)(nil)).
		Return(&repository.SchoolAverages{AttendancePct: &attendance, GradeAverage: &grades}, nil)
	fx.reportRepo.EXPECT().CountProfiles(ctx).Return(5, 2, nil)

	summary, err := fx.service.GetSummary(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(42), summary.ActiveAthletes)
	assert.Equal(t, int64(20), summary.AthletesByCategory[entity.CategorySub15])
	assert.Equal(t, int64(7), summary.InterventionsByType[entity.InterventionAtendimentoIndividual])
	assert.Equal(t, int64(3), summary.ReferralsByStatus[entity.ReferralStatusPendente])
	require.NotNil(t, summary.AvgAttendancePct)
	assert.InDelta(t, 88.4, *summary.AvgAttendancePct, 0.001)
	assert.Equal(t, int64(5), summary.ActiveProfiles)
	assert.Equal(t, int64(2), summary.PendingApprovals)
}

func TestReportService_GetSummary_NarrowedToPeriod(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	periodID := uuid.New()

	fx.periodRepo.EXPECT().
		FindPeriodByID(ctx, periodID).
		Return(&entity.Period{ID: periodID, Year: 2025, Quarter: 1}, nil)

	fx.reportRepo.EXPECT().CountActiveAthletes(ctx).Return(10, nil)
	fx.reportRepo.EXPECT().CountAthletesByCategory(ctx).Return(map[entity.Category]int64{}, nil)
	fx.reportRepo.EXPECT().CountInterventionsByType(ctx, &periodID).
		Return(map[entity.InterventionType]int64{}, nil)
	fx.reportRepo.EXPECT().CountReferralsByStatus(ctx).Return(map[string]int64{}, nil)
	fx.reportRepo.EXPECT().SchoolAverages(ctx, &periodID).
		Return(&repository.SchoolAverages{}, nil)
	fx.reportRepo.EXPECT().CountProfiles(ctx).Return(0, 0, nil)

	summary, err := fx.service.GetSummary(ctx, &periodID)
	require.NoError(t, err)
	assert.Nil(t, summary.AvgAttendancePct)
	assert.Nil(t, summary.AvgGradeAverage)
}

func TestReportService_GetSummary_UnknownPeriod(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	periodID := uuid.New()

	fx.periodRepo.EXPECT().
		FindPeriodByID(ctx, periodID).
		Return(nil, repository.ErrPeriodNotFound)

	summary, err := fx.service.GetSummary(ctx, &periodID)
	require.Error(t, err)
	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
