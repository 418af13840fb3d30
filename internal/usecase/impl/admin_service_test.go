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

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service     usecase.AdminUsecase
	txManager   *mockRepo.MockTransactionManager
	profileRepo *mockRepo.MockProfileRepository
	roleRepo    *mockRepo.MockRoleRepository
	periodRepo  *mockRepo.MockPeriodRepository
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	roleRepo := mockRepo.NewMockRoleRepository(t)
	periodRepo := mockRepo.NewMockPeriodRepository(t)
	service := NewAdminService(txManager, profileRepo, roleRepo, periodRepo, newDiscardLogger())

	return adminServiceFixtures{
		service:     service,
		txManager:   txManager,
		profileRepo: profileRepo,
		roleRepo:    roleRepo,
		periodRepo:  periodRepo,
	}
}

func TestAdminService_ListUsers_MergesRoles(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	approvedIdentity := uuid.New()
	pendingIdentity := uuid.New()

	fx.profileRepo.EXPECT().
		ListProfiles(ctx).
		Return([]*entity.Profile{
			{ID: uuid.New(), IdentityID: approvedIdentity, Name: "Ana", Active: true},
			{ID: uuid.New(), IdentityID: pendingIdentity, Name: "Bruno", Active: true},
		}, nil)

	fx.roleRepo.EXPECT().
		ListRoles(ctx).
		Return([]*entity.RoleAssignment{
			{IdentityID: approvedIdentity, Role: entity.RolePsicologo},
		}, nil)

	accounts, err := fx.service.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	require.NotNil(t, accounts[0].Role)
	assert.Equal(t, entity.RolePsicologo, *accounts[0].Role)
	assert.Nil(t, accounts[1].Role)
}

func TestAdminService_AssignRole_InvalidRole(t *testing.T) {
	fx := createTestAdminService(t)

	err := fx.service.AssignRole(context.Background(), uuid.New(), "faxineiro")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRole))
}

func TestAdminService_AssignRole_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	identityID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			profileRepo := mockRepo.NewMockProfileRepository(t)
			roleRepo := mockRepo.NewMockRoleRepository(t)

			factory.EXPECT().NewProfileRepository().Return(profileRepo)
			factory.EXPECT().NewRoleRepository().Return(roleRepo)

			profileRepo.EXPECT().
				FindProfileByIdentityID(ctx, identityID).
				Return(&entity.Profile{ID: uuid.New(), IdentityID: identityID, Active: true}, nil)

			roleRepo.EXPECT().
				UpsertRole(ctx, mock.MatchedBy(func(assignment *entity.RoleAssignment) bool {
					return assignment.IdentityID == identityID && assignment.Role == entity.RolePedagogo
				})).
				Return(nil)

			return fn(factory)
		})

	err := fx.service.AssignRole(ctx, identityID, "pedagogo")
	require.NoError(t, err)
}

func TestAdminService_AssignRole_NoProfile(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	identityID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			profileRepo := mockRepo.NewMockProfileRepository(t)

			factory.EXPECT().NewProfileRepository().Return(profileRepo)

			profileRepo.EXPECT().
				FindProfileByIdentityID(ctx, identityID).
				Return(nil, repository.ErrProfileNotFound)

			return fn(factory)
		})

	err := fx.service.AssignRole(ctx, identityID, "gestor")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestAdminService_RemoveRole_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	identityID := uuid.New()

	fx.roleRepo.EXPECT().
		DeleteRoleByIdentityID(ctx, identityID).
		Return(repository.ErrRoleAssignmentNotFound)

	err := fx.service.RemoveRole(ctx, identityID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestAdminService_SetProfileActive_Deactivates(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	profileID := uuid.New()

	fx.profileRepo.EXPECT().
		FindProfileByID(ctx, profileID).
		Return(&entity.Profile{ID: profileID, Name: "Ana", Active: true}, nil)

	fx.profileRepo.EXPECT().
		UpdateProfile(ctx, mock.MatchedBy(func(profile *entity.Profile) bool {
			return profile.ID == profileID && !profile.Active
		})).
		Return(nil)

	err := fx.service.SetProfileActive(ctx, profileID, false)
	require.NoError(t, err)
}

func TestAdminService_CreatePeriod_InvalidQuarter(t *testing.T) {
	fx := createTestAdminService(t)

	period, err := fx.service.CreatePeriod(context.Background(), &usecase.CreatePeriodInput{
		Year:      2025,
		Quarter:   5,
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)
	assert.Nil(t, period)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAdminService_CreatePeriod_Duplicate(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	input := &usecase.CreatePeriodInput{
		Year:      2025,
		Quarter:   2,
		StartDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	fx.periodRepo.EXPECT().
		CreatePeriod(ctx, mock.AnythingOfType("*entity.Period")).
		Return(repository.ErrPeriodExists)

	period, err := fx.service.CreatePeriod(ctx, input)
	require.Error(t, err)
	assert.Nil(t, period)
	assert.True(t, errors.Is(err, domainerrors.ErrPeriodAlreadyExists))
}

func TestAdminService_ClosePeriod_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	periodID := uuid.New()
	closedBy := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			periodRepo := mockRepo.NewMockPeriodRepository(t)

			factory.EXPECT().NewPeriodRepository().Return(periodRepo)

			periodRepo.EXPECT().
				FindPeriodByID(ctx, periodID).
				Return(&entity.Period{ID: periodID, Year: 2025, Quarter: 1}, nil)

			periodRepo.EXPECT().
				UpdatePeriod(ctx, mock.MatchedBy(func(period *entity.Period) bool {
					return period.Closed && period.ClosedAt != nil &&
						period.ClosedBy != nil && *period.ClosedBy == closedBy
				})).
				Return(nil)

			return fn(factory)
		})

	period, err := fx.service.ClosePeriod(ctx, periodID, closedBy)
	require.NoError(t, err)
	assert.True(t, period.Closed)
	require.NotNil(t, period.ClosedBy)
	assert.Equal(t, closedBy, *period.ClosedBy)
}

func TestAdminService_ClosePeriod_AlreadyClosed(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	periodID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			periodRepo := mockRepo.NewMockPeriodRepository(t)

			factory.EXPECT().NewPeriodRepository().Return(periodRepo)

			periodRepo.EXPECT().
				FindPeriodByID(ctx, periodID).
				Return(&entity.Period{ID: periodID, Closed: true}, nil)

			return fn(factory)
		})

	period, err := fx.service.ClosePeriod(ctx, periodID, uuid.New())
	require.Error(t, err)
	assert.Nil(t, period)
	assert.True(t, errors.Is(err, domainerrors.ErrPeriodClosed))
}
