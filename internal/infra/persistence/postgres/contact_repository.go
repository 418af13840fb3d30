package postgres

import (
	"context"

	"gestao/internal/domain/entity"
	"gestao/internal/domain/repository"
	"gestao/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// contactRepository implements the repository.ContactRepository interface using GORM.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

// CreateContact persists a new contact.
func (repo *contactRepository) CreateContact(ctx context.Context, contact *entity.Contact) error {
	contactM := fromContactDomain(contact)
	if err := repo.db.WithContext(ctx).Create(contactM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAthleteNotFound
		}

		return errors.Wrap(err, "failed to create contact")
	}

	contact.ID = contactM.ID
	contact.CreatedAt = contactM.CreatedAt
	contact.UpdatedAt = contactM.UpdatedAt

	return nil
}

// FindContactByID retrieves a contact by its unique ID.
func (repo *contactRepository) FindContactByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	var contactM model.ContactModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&contactM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact by id")
	}

	return toContactDomain(&contactM), nil
}

// ListContacts retrieves contacts; athleteID narrows to one athlete when set.
func (repo *contactRepository) ListContacts(ctx context.Context, athleteID *uuid.UUID) ([]*entity.Contact, error) {
	query := repo.db.WithContext(ctx).Model(&model.ContactModel{})
	if athleteID != nil {
		query = query.Where("athlete_id = ?", *athleteID)
	}

	var contactMs []model.ContactModel
	if err := query.Order("name ASC").Find(&contactMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list contacts")
	}

	contacts := make([]*entity.Contact, len(contactMs))
	for i := range contactMs {
		contacts[i] = toContactDomain(&contactMs[i])
	}

	return contacts, nil
}

// UpdateContact updates an existing contact record.
func (repo *contactRepository) UpdateContact(ctx context.Context, contact *entity.Contact) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ContactModel{}).
		Where("id = ?", contact.ID).
		Updates(map[string]any{
			"athlete_id":   contact.AthleteID,
			"name":         contact.Name,
			"relationship": contact.Relationship,
			"phone":        contact.Phone,
			"email":        contact.Email,
			"address":      contact.Address,
			"notes":        contact.Notes,
			"active":       contact.Active,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update contact")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

// DeleteContact removes a contact.
func (repo *contactRepository) DeleteContact(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ContactModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete contact")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

func toContactDomain(m *model.ContactModel) *entity.Contact {
	return &entity.Contact{
		ID:           m.ID,
		AthleteID:    m.AthleteID,
		Name:         m.Name,
		Relationship: m.Relationship,
		Phone:        m.Phone,
		Email:        m.Email,
		Address:      m.Address,
		Notes:        m.Notes,
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromContactDomain(e *entity.Contact) *model.ContactModel {
	return &model.ContactModel{
		ID:           e.ID,
		AthleteID:    e.AthleteID,
		Name:         e.Name,
		Relationship: e.Relationship,
		Phone:        e.Phone,
		Email:        e.Email,
		Address:      e.Address,
		Notes:        e.Notes,
		Active:       e.Active,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
