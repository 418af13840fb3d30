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

// socialServiceFixtures holds all test dependencies for social service tests.
type socialServiceFixtures struct {
	service       usecase.SocialUsecase
	anamnesisRepo *mockRepo.MockAnamnesisRepository
	contactRepo   *mockRepo.MockContactRepository
	referralRepo  *mockRepo.MockReferralRepository
}

func createTestSocialService(t *testing.T) socialServiceFixtures {
	anamnesisRepo := mockRepo.NewMockAnamnesisRepository(t)
	contactRepo := mockRepo.NewMockContactRepository(t)
	referralRepo := mockRepo.NewMockReferralRepository(t)
	service := NewSocialService(anamnesisRepo, contactRepo, referralRepo, newDiscardLogger())

	return socialServiceFixtures{
		service:       service,
		anamnesisRepo: anamnesisRepo,
		contactRepo:   contactRepo,
		referralRepo:  referralRepo,
	}
}

func TestSocialService_CreateAnamnesis_Success(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	professionalID := uuid.New()
	input := &usecase.CreateAnamnesisInput{
		AthleteID:         uuid.New(),
		FamilyComposition: "mãe e dois irmãos",
		RecordedAt:        time.Now(),
	}

	fx.anamnesisRepo.EXPECT().
		CreateAnamnesis(ctx, mock.AnythingOfType("*entity.Anamnesis")).
		Run(func(ctx context.Context, anamnesis *entity.Anamnesis) {
			anamnesis.ID = uuid.New()
		}).
		Return(nil)

	anamnesis, err := fx.service.CreateAnamnesis(ctx, professionalID, input)
	require.NoError(t, err)
	assert.Equal(t, professionalID, anamnesis.ProfessionalID)
	assert.Equal(t, input.AthleteID, anamnesis.AthleteID)
}

func TestSocialService_CreateAnamnesis_UnknownAthlete(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	input := &usecase.CreateAnamnesisInput{AthleteID: uuid.New(), RecordedAt: time.Now()}

	fx.anamnesisRepo.EXPECT().
		CreateAnamnesis(ctx, mock.AnythingOfType("*entity.Anamnesis")).
		Return(repository.ErrAthleteNotFound)

	anamnesis, err := fx.service.CreateAnamnesis(ctx, uuid.New(), input)
	require.Error(t, err)
	assert.Nil(t, anamnesis)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSocialService_CreateContact_StartsActive(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	input := &usecase.CreateContactInput{
		Name:         "Maria Souza",
		Relationship: "mãe",
		Phone:        "11 99999-0000",
	}

	fx.contactRepo.EXPECT().
		CreateContact(ctx, mock.MatchedBy(func(contact *entity.Contact) bool {
			return contact.Active && contact.Name == "Maria Souza"
		})).
		Return(nil)

	contact, err := fx.service.CreateContact(ctx, input)
	require.NoError(t, err)
	assert.True(t, contact.Active)
}

func TestSocialService_CreateReferral_StartsPending(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	professionalID := uuid.New()
	input := &usecase.CreateReferralInput{
		AthleteID:   uuid.New(),
		Kind:        "saude",
		Destination: "UBS Vila Nova",
		Date:        time.Now(),
	}

	fx.referralRepo.EXPECT().
		CreateReferral(ctx, mock.AnythingOfType("*entity.Referral")).
		Return(nil)

	referral, err := fx.service.CreateReferral(ctx, professionalID, input)
	require.NoError(t, err)
	assert.Equal(t, entity.ReferralStatusPendente, referral.Status)
	assert.Equal(t, professionalID, referral.ProfessionalID)
}

func TestSocialService_UpdateReferral_StatusAndReturn(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Referral{
		ID:     id,
		Kind:   "saude",
		Status: entity.ReferralStatusPendente,
	}

	status := "concluido"
	returnNotes := "atendido em 12/05"
	input := &usecase.UpdateReferralInput{Status: &status, Return: &returnNotes}

	fx.referralRepo.EXPECT().
		FindReferralByID(ctx, id).
		Return(existing, nil)

	fx.referralRepo.EXPECT().
		UpdateReferral(ctx, mock.MatchedBy(func(referral *entity.Referral) bool {
			return referral.Status == entity.ReferralStatusConcluido && referral.Return == returnNotes
		})).
		Return(nil)

	referral, err := fx.service.UpdateReferral(ctx, id, input)
	require.NoError(t, err)
	assert.Equal(t, entity.ReferralStatusConcluido, referral.Status)
}

func TestSocialService_DeleteContact_NotFound(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.contactRepo.EXPECT().
		DeleteContact(ctx, id).
		Return(repository.ErrContactNotFound)

	err := fx.service.DeleteContact(ctx, id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
