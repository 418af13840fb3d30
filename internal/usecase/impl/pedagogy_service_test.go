package impl

import (
	"context"
	"testing"
	"time"

	"gestao/internal/domain/entity"
	domainerrors "gestao/internal/domain/errors"
	"gestao/internal/domain/repository"
	mockRepo "gestao/internal/mocks/repository"
	"gestao/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pedagogyServiceFixtures holds all test dependencies for pedagogy service tests.
type pedagogyServiceFixtures struct {
	service        usecase.PedagogyUsecase
	schoolRepo     *mockRepo.MockSchoolRepository
	enrollmentRepo *mockRepo.MockEnrollmentRepository
	recordRepo     *mockRepo.MockSchoolRecordRepository
	periodRepo     *mockRepo.MockPeriodRepository
}

func createTestPedagogyService(t *testing.T) pedagogyServiceFixtures {
	schoolRepo := mockRepo.NewMockSchoolRepository(t)
	enrollmentRepo := mockRepo.NewMockEnrollmentRepository(t)
	recordRepo := mockRepo.NewMockSchoolRecordRepository(t)
	periodRepo := mockRepo.NewMockPeriodRepository(t)
	service := NewPedagogyService(schoolRepo, enrollmentRepo, recordRepo, periodRepo, newDiscardLogger())

	return pedagogyServiceFixtures{
		service:        service,
		schoolRepo:     schoolRepo,
		enrollmentRepo: enrollmentRepo,
		recordRepo:     recordRepo,
		periodRepo:     periodRepo,
	}
}

func TestPedagogyService_CreateSchool_Success(t *testing.T) {
	fx := createTestPedagogyService(t)

	ctx := context.Background()
	input := &usecase.CreateSchoolInput{
		Name:        "EE Professor Almeida",
		Coordinator: "Dona Clara",
	}

	fx.schoolRepo.EXPECT().
		CreateSchool(ctx, mock.AnythingOfType("*entity.School")).
		Run(func(ctx context.Context, school *entity.School) {
			school.ID = uuid.New()
		}).
		Return(nil)

	school, err := fx.service.CreateSchool(ctx, input)
	require.NoError(t, err)
	assert.True(t, school.Active)
	assert.Equal(t, "EE Professor Almeida", school.Name)
}

func TestPedagogyService_CreateEnrollment_UnknownSchool(t *testing.T) {
	fx := createTestPedagogyService(t)

	ctx := context.Background()
	schoolID := uuid.New()
	input := &usecase.CreateEnrollmentInput{
		AthleteID:  uuid.New(),
		SchoolID:   schoolID,
		SchoolYear: 2025,
	}

	fx.schoolRepo.EXPECT().
		FindSchoolByID(ctx, schoolID).
		Return(nil, repository.ErrSchoolNotFound)

	enrollment, err := fx.service.CreateEnrollment(ctx, input)
	require.Error(t, err)
	assert.Nil(t, enrollment)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPedagogyService_CreateEnrollment_Success(t *testing.T) {
	fx := createTestPedagogyService(t)

	ctx := context.Background()
	schoolID := uuid.New()
	input := &usecase.CreateEnrollmentInput{
		AthleteID:  uuid.New(),
		SchoolID:   schoolID,
		Grade:      "7º ano",
		Shift:      "manhã",
		SchoolYear: 2025,
		EnrolledAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	fx.schoolRepo.EXPECT().
		FindSchoolByID(ctx, schoolID).
		Return(&entity.School{ID: schoolID, Name: "EE Professor Almeida", Active: true}, nil)

	fx.enrollmentRepo.EXPECT().
		CreateEnrollment(ctx, mock.AnythingOfType("*entity.Enrollment")).
		Run(func(ctx context.Context, enrollment *entity.Enrollment) {
			enrollment.ID = uuid.New()
		}).
		Return(nil)

	enrollment, err := fx.service.CreateEnrollment(ctx, input)
	require.NoError(t, err)
	assert.True(t, enrollment.Active)
	assert.Equal(t, schoolID, enrollment.SchoolID)
}

func TestPedagogyService_CreateSchoolRecord_ClosedPeriod(t *testing.T) {
	fx := createTestPedagogyService(t)

	ctx := context.Background()
	periodID := uuid.New()
	input := &usecase.CreateSchoolRecordInput{
		AthleteID:  uuid.New(),
		PeriodID:   &periodID,
		RecordedAt: time.Now(),
	}

	fx.periodRepo.EXPECT().
		FindPeriodByID(ctx, periodID).
		Return(&entity.Period{ID: periodID, Closed: true}, nil)

	record, err := fx.service.CreateSchoolRecord(ctx, uuid.New(), input)
	require.Error(t, err)
	assert.Nil(t, record)
	assert.True(t, errors.Is(err, domainerrors.ErrPeriodClosed))
}

func TestPedagogyService_CreateSchoolRecord_Success(t *testing.T) {
	fx := createTestPedagogyService(t)

	ctx := context.Background()
	professionalID := uuid.New()
	attendance := 92.5
	input := &usecase.CreateSchoolRecordInput{
		AthleteID:     uuid.New(),
		AttendancePct: &attendance,
		Notes:         "frequência estável",
		RecordedAt:    time.Now(),
	}

	// No period linked, so no period lookup happens.
	fx.recordRepo.EXPECT().
		CreateSchoolRecord(ctx, mock.AnythingOfType("*entity.SchoolRecord")).
		Run(func(ctx context.Context, record *entity.SchoolRecord) {
			record.ID = uuid.New()
		}).
		Return(nil)

	record, err := fx.service.CreateSchoolRecord(ctx, professionalID, input)
	require.NoError(t, err)
	assert.Equal(t, professionalID, record.ProfessionalID)
	require.NotNil(t, record.AttendancePct)
	assert.InDelta(t, 92.5, *record.AttendancePct, 0.001)
}

func TestPedagogyService_CreateSchoolRecord_ConstraintRejected(t *testing.T) {
	fx := createTestPedagogyService(t)

	ctx := context.Background()
	attendance := 140.0
	input := &usecase.CreateSchoolRecordInput{
		AthleteID:     uuid.New(),
		AttendancePct: &attendance,
		RecordedAt:    time.Now(),
	}

	fx.recordRepo.EXPECT().
		CreateSchoolRecord(ctx, mock.AnythingOfType("*entity.SchoolRecord")).
		Return(repository.ErrSchoolRecordInvalid)

	record, err := fx.service.CreateSchoolRecord(ctx, uuid.New(), input)
	require.Error(t, err)
	assert.Nil(t, record)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPedagogyService_UpdateSchoolRecord_FrozenByClosedPeriod(t *testing.T) {
	fx := createTestPedagogyService(t)

	ctx := context.Background()
	recordID := uuid.New()
	periodID := uuid.New()
	notes := "tentativa de edição"

	fx.recordRepo.EXPECT().
		FindSchoolRecordByID(ctx, recordID).
		Return(&entity.SchoolRecord{ID: recordID, PeriodID: &periodID}, nil)

	fx.periodRepo.EXPECT().
		FindPeriodByID(ctx, periodID).
		Return(&entity.Period{ID: periodID, Closed: true}, nil)

	record, err := fx.service.UpdateSchoolRecord(ctx, recordID, &usecase.UpdateSchoolRecordInput{Notes: &notes})
	require.Error(t, err)
	assert.Nil(t, record)
	assert.True(t, errors.Is(err, domainerrors.ErrPeriodClosed))
}

func TestPedagogyService_DeleteSchoolRecord_Success(t *testing.T) {
	fx := createTestPedagogyService(t)

	ctx := context.Background()
	recordID := uuid.New()

	fx.recordRepo.EXPECT().
		FindSchoolRecordByID(ctx, recordID).
		Return(&entity.SchoolRecord{ID: recordID}, nil)

	fx.recordRepo.EXPECT().
		DeleteSchoolRecord(ctx, recordID).
		Return(nil)

	err := fx.service.DeleteSchoolRecord(ctx, recordID)
	require.NoError(t, err)
}
