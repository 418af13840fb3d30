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

// socialService implements the SocialUsecase interface.
type socialService struct {
	anamneses repository.AnamnesisRepository
	contacts  repository.ContactRepository
	referrals repository.ReferralRepository
	logger    *slog.Logger
}

// NewSocialService is the constructor for socialService.
func NewSocialService(
	anamneses repository.AnamnesisRepository,
	contacts repository.ContactRepository,
	referrals repository.ReferralRepository,
	logger *slog.Logger,
) usecase.SocialUsecase {
	return &socialService{
		anamneses: anamneses,
		contacts:  contacts,
		referrals: referrals,
		logger:    logger,
	}
}

// CreateAnamnesis records an intake owned by the acting professional.
func (srv *socialService) CreateAnamnesis(ctx context.Context, actorProfileID uuid.UUID, input *usecase.CreateAnamnesisInput) (*entity.Anamnesis, error) {
	srv.logger.Info("Creating anamnesis", "athleteID", input.AthleteID, "professionalID", actorProfileID)

	anamnesis := &entity.Anamnesis{
		AthleteID:         input.AthleteID,
		ProfessionalID:    actorProfileID,
		FamilyComposition: input.FamilyComposition,
		HousingSituation:  input.HousingSituation,
		FamilyIncome:      input.FamilyIncome,
		SocialBenefits:    input.SocialBenefits,
		SchoolSituation:   input.SchoolSituation,
		Notes:             input.Notes,
		RecordedAt:        input.RecordedAt,
	}
	if err := srv.anamneses.CreateAnamnesis(ctx, anamnesis); err != nil {
		if errors.Is(err, repository.ErrAthleteNotFound) {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "athlete does not exist")
		}

		return nil, errors.Wrap(err, "failed to create anamnesis")
	}

	return anamnesis, nil
}

// GetAnamnesis retrieves one anamnesis by ID.
func (srv *socialService) GetAnamnesis(ctx context.Context, id uuid.UUID) (*entity.Anamnesis, error) {
	anamnesis, err := srv.anamneses.FindAnamnesisByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAnamnesisNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "anamnesis not found")
		}

		return nil, errors.Wrap(err, "failed to find anamnesis")
	}

	return anamnesis, nil
}

// ListAnamneses retrieves an athlete's intake history.
func (srv *socialService) ListAnamneses(ctx context.Context, athleteID uuid.UUID) ([]*entity.Anamnesis, error) {
	anamneses, err := srv.anamneses.ListAnamnesesByAthleteID(ctx, athleteID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list anamneses")
	}

	return anamneses, nil
}

// UpdateAnamnesis applies the non-nil input fields to an anamnesis.
func (srv *socialService) UpdateAnamnesis(ctx context.Context, id uuid.UUID, input *usecase.UpdateAnamnesisInput) (*entity.Anamnesis, error) {
	srv.logger.Info("Updating anamnesis", "anamnesisID", id)

	anamnesis, err := srv.anamneses.FindAnamnesisByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAnamnesisNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "anamnesis not found")
		}

		return nil, errors.Wrap(err, "failed to find anamnesis")
	}

	if input.FamilyComposition != nil {
		anamnesis.FamilyComposition = *input.FamilyComposition
	}
	if input.HousingSituation != nil {
		anamnesis.HousingSituation = *input.HousingSituation
	}
	if input.FamilyIncome != nil {
		anamnesis.FamilyIncome = *input.FamilyIncome
	}
	if input.SocialBenefits != nil {
		anamnesis.SocialBenefits = *input.SocialBenefits
	}
	if input.SchoolSituation != nil {
		anamnesis.SchoolSituation = *input.SchoolSituation
	}
	if input.Notes != nil {
		anamnesis.Notes = *input.Notes
	}
	if input.RecordedAt != nil {
		anamnesis.RecordedAt = *input.RecordedAt
	}

	if err := srv.anamneses.UpdateAnamnesis(ctx, anamnesis); err != nil {
		return nil, errors.Wrap(err, "failed to update anamnesis")
	}

	return anamnesis, nil
}

// DeleteAnamnesis removes an anamnesis record.
func (srv *socialService) DeleteAnamnesis(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting anamnesis", "anamnesisID", id)

	if err := srv.anamneses.DeleteAnamnesis(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAnamnesisNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "anamnesis not found")
		}

		return errors.Wrap(err, "failed to delete anamnesis")
	}

	return nil
}

// CreateContact registers a guardian or emergency contact.
func (srv *socialService) CreateContact(ctx context.Context, input *usecase.CreateContactInput) (*entity.Contact, error) {
	srv.logger.Info("Creating contact")

	contact := &entity.Contact{
		AthleteID:    input.AthleteID,
		Name:         input.Name,
		Relationship: input.Relationship,
		Phone:        input.Phone,
		Email:        input.Email,
		Address:      input.Address,
		Notes:        input.Notes,
		Active:       true,
	}
	if err := srv.contacts.CreateContact(ctx, contact); err != nil {
		if errors.Is(err, repository.ErrAthleteNotFound) {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "athlete does not exist")
		}

		return nil, errors.Wrap(err, "failed to create contact")
	}

	return contact, nil
}

// ListContacts retrieves contacts, optionally narrowed to one athlete.
func (srv *socialService) ListContacts(ctx context.Context, athleteID *uuid.UUID) ([]*entity.Contact, error) {
	contacts, err := srv.contacts.ListContacts(ctx, athleteID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contacts")
	}

	return contacts, nil
}

// UpdateContact applies the non-nil input fields to a contact.
func (srv *socialService) UpdateContact(ctx context.Context, id uuid.UUID, input *usecase.UpdateContactInput) (*entity.Contact, error) {
	srv.logger.Info("Updating contact", "contactID", id)

	contact, err := srv.contacts.FindContactByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "contact not found")
		}

		return nil, errors.Wrap(err, "failed to find contact")
	}

	if input.Name != nil {
		contact.Name = *input.Name
	}
	if input.Relationship != nil {
		contact.Relationship = *input.Relationship
	}
	if input.Phone != nil {
		contact.Phone = *input.Phone
	}
	if input.Email != nil {
		contact.Email = *input.Email
	}
	if input.Address != nil {
		contact.Address = *input.Address
	}
	if input.Notes != nil {
		contact.Notes = *input.Notes
	}
	if input.Active != nil {
		contact.Active = *input.Active
	}

	if err := srv.contacts.UpdateContact(ctx, contact); err != nil {
		return nil, errors.Wrap(err, "failed to update contact")
	}

	return contact, nil
}

// DeleteContact removes a contact.
func (srv *socialService) DeleteContact(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting contact", "contactID", id)

	if err := srv.contacts.DeleteContact(ctx, id); err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "contact not found")
		}

		return errors.Wrap(err, "failed to delete contact")
	}

	return nil
}

// CreateReferral opens a referral in the pending status.
func (srv *socialService) CreateReferral(ctx context.Context, actorProfileID uuid.UUID, input *usecase.CreateReferralInput) (*entity.Referral, error) {
	srv.logger.Info("Creating referral", "athleteID", input.AthleteID, "professionalID", actorProfileID)

	referral := &entity.Referral{
		AthleteID:      input.AthleteID,
		ProfessionalID: actorProfileID,
		Kind:           input.Kind,
		Destination:    input.Destination,
		Reason:         input.Reason,
		Date:           input.Date,
		Status:         entity.ReferralStatusPendente,
	}
	if err := srv.referrals.CreateReferral(ctx, referral); err != nil {
		if errors.Is(err, repository.ErrAthleteNotFound) {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "athlete does not exist")
		}

		return nil, errors.Wrap(err, "failed to create referral")
	}

	return referral, nil
}

// ListReferrals retrieves referrals matching the filter.
func (srv *socialService) ListReferrals(ctx context.Context, input *usecase.ListReferralsInput) ([]*entity.Referral, error) {
	filter := repository.ReferralFilter{}
	if input != nil {
		filter.AthleteID = input.AthleteID
		filter.Status = input.Status
	}

	referrals, err := srv.referrals.ListReferrals(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list referrals")
	}

	return referrals, nil
}

// UpdateReferral applies the non-nil input fields to a referral.
func (srv *socialService) UpdateReferral(ctx context.Context, id uuid.UUID, input *usecase.UpdateReferralInput) (*entity.Referral, error) {
	srv.logger.Info("Updating referral", "referralID", id)

	referral, err := srv.referrals.FindReferralByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReferralNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "referral not found")
		}

		return nil, errors.Wrap(err, "failed to find referral")
	}

	if input.Kind != nil {
		referral.Kind = *input.Kind
	}
	if input.Destination != nil {
		referral.Destination = *input.Destination
	}
	if input.Reason != nil {
		referral.Reason = *input.Reason
	}
	if input.Status != nil {
		referral.Status = *input.Status
	}
	if input.Return != nil {
		referral.Return = *input.Return
	}

	if err := srv.referrals.UpdateReferral(ctx, referral); err != nil {
		return nil, errors.Wrap(err, "failed to update referral")
	}

	return referral, nil
}

// DeleteReferral removes a referral.
func (srv *socialService) DeleteReferral(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting referral", "referralID", id)

	if err := srv.referrals.DeleteReferral(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReferralNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "referral not found")
		}

		return errors.Wrap(err, "failed to delete referral")
	}

	return nil
}
