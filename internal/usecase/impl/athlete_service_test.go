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

// athleteServiceFixtures holds all test dependencies for athlete service tests.
type athleteServiceFixtures struct {
	service     usecase.AthleteUsecase
	athleteRepo *mockRepo.MockAthleteRepository
}

func createTestAthleteService(t *testing.T) athleteServiceFixtures {
	athleteRepo := mockRepo.NewMockAthleteRepository(t)
	service := NewAthleteService(athleteRepo, newDiscardLogger())

	return athleteServiceFixtures{
		service:     service,
		athleteRepo: athleteRepo,
	}
}

func TestAthleteService_CreateAthlete_Success(t *testing.T) {
	fx := createTestAthleteService(t)

	ctx := context.Background()
	input := &usecase.CreateAthleteInput{
		Name:      "João Silva",
		BirthDate: time.Date(2010, 3, 14, 0, 0, 0, 0, time.UTC),
		Category:  "sub15",
		Position:  "atacante",
	}

	fx.athleteRepo.EXPECT().
		CreateAthlete(ctx, mock.AnythingOfType("*entity.Athlete")).
		Run(func(ctx context.Context, athlete *entity.Athlete) {
			athlete.ID = uuid.New()
		}).
		Return(nil)

	athlete, err := fx.service.CreateAthlete(ctx, input)
	require.NoError(t, err)
	assert.NotNil(t, athlete)
	assert.Equal(t, input.Name, athlete.Name)
	assert.Equal(t, entity.CategorySub15, athlete.Category)
	assert.True(t, athlete.Active)
	assert.NotEqual(t, uuid.Nil, athlete.ID)
}

func TestAthleteService_CreateAthlete_InvalidCategory(t *testing.T) {
	fx := createTestAthleteService(t)

	ctx := context.Background()
	input := &usecase.CreateAthleteInput{
		Name:      "João Silva",
		BirthDate: time.Date(2010, 3, 14, 0, 0, 0, 0, time.UTC),
		Category:  "sub99",
	}

	athlete, err := fx.service.CreateAthlete(ctx, input)
	require.Error(t, err)
	assert.Nil(t, athlete)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAthleteService_GetAthlete_NotFound(t *testing.T) {
	fx := createTestAthleteService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.athleteRepo.EXPECT().
		FindAthleteByID(ctx, id).
		Return(nil, repository.ErrAthleteNotFound)

	athlete, err := fx.service.GetAthlete(ctx, id)
	require.Error(t, err)
	assert.Nil(t, athlete)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestAthleteService_ListAthletes_CategoryFilter(t *testing.T) {
	fx := createTestAthleteService(t)

	ctx := context.Background()
	category := "sub17"
	expected := []*entity.Athlete{{ID: uuid.New(), Name: "Maria", Category: entity.CategorySub17, Active: true}}

	fx.athleteRepo.EXPECT().
		ListAthletes(ctx, mock.MatchedBy(func(filter repository.AthleteFilter) bool {
			return filter.Category != nil && *filter.Category == entity.CategorySub17 && !filter.IncludeInactive
		})).
		Return(expected, nil)

	athletes, err := fx.service.ListAthletes(ctx, &usecase.ListAthletesInput{Category: &category})
	require.NoError(t, err)
	assert.Equal(t, expected, athletes)
}

func TestAthleteService_UpdateAthlete_PartialUpdate(t *testing.T) {
	fx := createTestAthleteService(t)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Athlete{
		ID:       id,
		Name:     "João Silva",
		Category: entity.CategorySub15,
		Position: "atacante",
		Active:   true,
	}

	newPosition := "goleiro"
	input := &usecase.UpdateAthleteInput{Position: &newPosition}

	fx.athleteRepo.EXPECT().
		FindAthleteByID(ctx, id).
		Return(existing, nil)

	fx.athleteRepo.EXPECT().
		UpdateAthlete(ctx, mock.AnythingOfType("*entity.Athlete")).
		Return(nil)

	athlete, err := fx.service.UpdateAthlete(ctx, id, input)
	require.NoError(t, err)
	assert.Equal(t, "goleiro", athlete.Position)
	// Untouched fields stay as they were.
	assert.Equal(t, "João Silva", athlete.Name)
	assert.Equal(t, entity.CategorySub15, athlete.Category)
}

func TestAthleteService_DeactivateAthlete_Success(t *testing.T) {
	fx := createTestAthleteService(t)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Athlete{ID: id, Name: "João Silva", Category: entity.CategorySub15, Active: true}

	fx.athleteRepo.EXPECT().
		FindAthleteByID(ctx, id).
		Return(existing, nil)

	fx.athleteRepo.EXPECT().
		UpdateAthlete(ctx, mock.MatchedBy(func(athlete *entity.Athlete) bool {
			return athlete.ID == id && !athlete.Active
		})).
		Return(nil)

	err := fx.service.DeactivateAthlete(ctx, id)
	require.NoError(t, err)
}
