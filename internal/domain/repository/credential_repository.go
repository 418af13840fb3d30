// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"gestao/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for credential persistence.
var (
	// ErrCredentialNotFound is returned when no credential exists for a lookup.
	ErrCredentialNotFound = errors.New("credential not found")
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
)

// CredentialRepository manages the stored login credentials of identities.
type CredentialRepository interface {
	// CreateCredential persists a new credential. Fails with ErrEmailTaken
	// when the email is already registered.
	CreateCredential(ctx context.Context, credential *entity.Credential) error

	// FindCredentialByEmail retrieves a credential by its login email.
	FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error)
}
