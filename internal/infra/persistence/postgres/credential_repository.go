// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"gestao/internal/domain/entity"
	"gestao/internal/domain/repository"
	"gestao/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// credentialRepository implements the repository.CredentialRepository interface using GORM.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// CreateCredential persists a new credential. The database generates the UUID
// and creation timestamp; both are copied back onto the entity.
func (repo *credentialRepository) CreateCredential(ctx context.Context, credential *entity.Credential) error {
	credentialM := fromCredentialDomain(credential)
	if err := repo.db.WithContext(ctx).Create(credentialM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailTaken
		}

		return errors.Wrap(err, "failed to create credential")
	}

	credential.ID = credentialM.ID
	credential.CreatedAt = credentialM.CreatedAt

	return nil
}

// FindCredentialByEmail retrieves a credential by its login email.
func (repo *credentialRepository) FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	var credentialM model.CredentialModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&credentialM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by email")
	}

	return toCredentialDomain(&credentialM), nil
}

// toCredentialDomain maps the persistence model back to a pure domain entity.
func toCredentialDomain(m *model.CredentialModel) *entity.Credential {
	return &entity.Credential{
		ID:           m.ID,
		IdentityID:   m.IdentityID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

// fromCredentialDomain maps a domain entity to its persistence model.
func fromCredentialDomain(e *entity.Credential) *model.CredentialModel {
	return &model.CredentialModel{
		ID:           e.ID,
		IdentityID:   e.IdentityID,
		Email:        e.Email,
		PasswordHash: e.PasswordHash,
		CreatedAt:    e.CreatedAt,
	}
}
