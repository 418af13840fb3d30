package repository

import (
	"context"

	"gestao/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrContactNotFound is returned when a contact is not found.
var ErrContactNotFound = errors.New("contact not found")

// ContactRepository manages guardian and emergency contacts.
type ContactRepository interface {
	// CreateContact persists a new contact.
	CreateContact(ctx context.Context, contact *entity.Contact) error

	// FindContactByID retrieves a contact by its unique ID.
	FindContactByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)

	// ListContacts retrieves contacts; athleteID narrows to one athlete when set.
	ListContacts(ctx context.Context, athleteID *uuid.UUID) ([]*entity.Contact, error)

	// UpdateContact updates an existing contact record.
	UpdateContact(ctx context.Context, contact *entity.Contact) error

	// DeleteContact removes a contact.
	DeleteContact(ctx context.Context, id uuid.UUID) error
}
