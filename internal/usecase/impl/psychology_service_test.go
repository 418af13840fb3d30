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

// psychologyServiceFixtures holds all test dependencies for psychology service tests.
type psychologyServiceFixtures struct {
	service   usecase.PsychologyUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestPsychologyService(t *testing.T) psychologyServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewPsychologyService(txManager, newDiscardLogger())

	return psychologyServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestPsychologyService_CreateIntervention_Success(t *testing.T) {
	fx := createTestPsychologyService(t)

	ctx := context.Background()
	professionalID := uuid.New()
	periodID := uuid.New()
	input := &usecase.CreateInterventionInput{
		Type:              "atendimento_individual",
		Date:              time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		PeriodID:          &periodID,
		ConfidentialNotes: "anotações sigilosas",
		AthleteIDs:        []uuid.UUID{uuid.New()},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			periodRepo := mockRepo.NewMockPeriodRepository(t)
			interventionRepo := mockRepo.NewMockInterventionRepository(t)

			factory.EXPECT().NewPeriodRepository().Return(periodRepo)
			factory.EXPECT().NewInterventionRepository().Return(interventionRepo)

			periodRepo.EXPECT().
				FindPeriodByID(ctx, periodID).
				Return(&entity.Period{ID: periodID, Year: 2025, Quarter: 2}, nil)

			interventionRepo.EXPECT().
				CreateIntervention(ctx, mock.AnythingOfType("*entity.Intervention")).
				Run(func(ctx context.Context, intervention *entity.Intervention) {
					intervention.ID = uuid.New()
				}).
				Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)

	intervention, err := fx.service.CreateIntervention(ctx, professionalID, input)
	require.NoError(t, err)
	assert.Equal(t, professionalID, intervention.ProfessionalID)
	assert.Equal(t, entity.InterventionAtendimentoIndividual, intervention.Type)
	assert.NotEqual(t, uuid.Nil, intervention.ID)
}

func TestPsychologyService_CreateIntervention_InvalidType(t *testing.T) {
	fx := createTestPsychologyService(t)

	ctx := context.Background()
	input := &usecase.CreateInterventionInput{
		Type: "sessao_estranha",
		Date: time.Now(),
	}

	intervention, err := fx.service.CreateIntervention(ctx, uuid.New(), input)
	require.Error(t, err)
	assert.Nil(t, intervention)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPsychologyService_CreateIntervention_ClosedPeriod(t *testing.T) {
	fx := createTestPsychologyService(t)

	ctx := context.Background()
	periodID := uuid.New()
	input := &usecase.CreateInterventionInput{
		Type:     "atendimento_grupo",
		Date:     time.Now(),
		PeriodID: &periodID,
	}

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

	intervention, err := fx.service.CreateIntervention(ctx, uuid.New(), input)
	require.Error(t, err)
	assert.Nil(t, intervention)
	assert.True(t, errors.Is(err, domainerrors.ErrPeriodClosed))
}

func TestPsychologyService_GetIntervention_RedactsForOtherProfessionals(t *testing.T) {
	fx := createTestPsychologyService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	readerID := uuid.New()
	interventionID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			interventionRepo := mockRepo.NewMockInterventionRepository(t)

			factory.EXPECT().NewInterventionRepository().Return(interventionRepo)

			interventionRepo.EXPECT().
				FindInterventionByID(ctx, interventionID).
				Return(&entity.Intervention{
					ID:                interventionID,
					ProfessionalID:    ownerID,
					Type:              entity.InterventionAtendimentoIndividual,
					ConfidentialNotes: "anotações sigilosas",
				}, nil)

			return fn(factory)
		})

	intervention, err := fx.service.GetIntervention(ctx, readerID, entity.RolePsicologo, interventionID)
	require.NoError(t, err)
	assert.Empty(t, intervention.ConfidentialNotes)
}

func TestPsychologyService_GetIntervention_AdminSeesConfidentialNotes(t *testing.T) {
	fx := createTestPsychologyService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	interventionID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			interventionRepo := mockRepo.NewMockInterventionRepository(t)

			factory.EXPECT().NewInterventionRepository().Return(interventionRepo)

			interventionRepo.EXPECT().
				FindInterventionByID(ctx, interventionID).
				Return(&entity.Intervention{
					ID:                interventionID,
					ProfessionalID:    ownerID,
					Type:              entity.InterventionAtendimentoIndividual,
					ConfidentialNotes: "anotações sigilosas",
				}, nil)

			return fn(factory)
		})

	intervention, err := fx.service.GetIntervention(ctx, uuid.New(), entity.RoleAdmin, interventionID)
	require.NoError(t, err)
	assert.Equal(t, "anotações sigilosas", intervention.ConfidentialNotes)
}

func TestPsychologyService_UpdateIntervention_ForbiddenForNonOwner(t *testing.T) {
	fx := createTestPsychologyService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	actorID := uuid.New()
	interventionID := uuid.New()
	newDescription := "nova descrição"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			interventionRepo := mockRepo.NewMockInterventionRepository(t)
			periodRepo := mockRepo.NewMockPeriodRepository(t)

			factory.EXPECT().NewInterventionRepository().Return(interventionRepo)
			factory.EXPECT().NewPeriodRepository().Return(periodRepo)

			interventionRepo.EXPECT().
				FindInterventionByID(ctx, interventionID).
				Return(&entity.Intervention{ID: interventionID, ProfessionalID: ownerID}, nil)

			return fn(factory)
		})

	intervention, err := fx.service.UpdateIntervention(ctx, actorID, entity.RolePsicologo, interventionID,
		&usecase.UpdateInterventionInput{Description: &newDescription})
	require.Error(t, err)
	assert.Nil(t, intervention)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPsychologyService_DeleteIntervention_OwnerSuccess(t *testing.T) {
	fx := createTestPsychologyService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	interventionID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			interventionRepo := mockRepo.NewMockInterventionRepository(t)
			periodRepo := mockRepo.NewMockPeriodRepository(t)

			factory.EXPECT().NewInterventionRepository().Return(interventionRepo)
			factory.EXPECT().NewPeriodRepository().Return(periodRepo)

			interventionRepo.EXPECT().
				FindInterventionByID(ctx, interventionID).
				Return(&entity.Intervention{ID: interventionID, ProfessionalID: ownerID}, nil)

			interventionRepo.EXPECT().
				DeleteIntervention(ctx, interventionID).
				Return(nil)

			return fn(factory)
		})

	err := fx.service.DeleteIntervention(ctx, ownerID, entity.RolePsicologo, interventionID)
	require.NoError(t, err)
}

func TestPsychologyService_ListInterventions_OnlyMine(t *testing.T) {
	fx := createTestPsychologyService(t)

	ctx := context.Background()
	actorID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			interventionRepo := mockRepo.NewMockInterventionRepository(t)

			factory.EXPECT().NewInterventionRepository().Return(interventionRepo)

			interventionRepo.EXPECT().
				ListInterventions(ctx, mock.MatchedBy(func(filter repository.InterventionFilter) bool {
					return filter.ProfessionalID != nil && *filter.ProfessionalID == actorID
				})).
				Return([]*entity.Intervention{}, nil)

			return fn(factory)
		})

	interventions, err := fx.service.ListInterventions(ctx, actorID, entity.RolePsicologo,
		&usecase.ListInterventionsInput{OnlyMine: true})
	require.NoError(t, err)
	assert.Empty(t, interventions)
}
