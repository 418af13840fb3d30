package postgres

import (
	"context"
	"time"

	"gestao/internal/domain/entity"
	"gestao/internal/domain/repository"
	"gestao/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the repository.SessionRepository interface using GORM.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// CreateSession persists a new session.
func (repo *sessionRepository) CreateSession(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)
	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		return errors.Wrap(err, "failed to create session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindSessionByTokenHash retrieves a session by the hash of its token.
// Expired rows are reported as ErrSessionExpired so callers can treat
// them as invalid without a second check.
func (repo *sessionRepository) FindSessionByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	var sessionM model.SessionModel
	err := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(&sessionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by token hash")
	}

	session := toSessionDomain(&sessionM)
	if session.Expired(time.Now()) {
		return nil, repository.ErrSessionExpired
	}

	return session, nil
}

// DeleteSession removes a session by its ID, ending it.
func (repo *sessionRepository) DeleteSession(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SessionModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// DeleteSessionsByIdentityID removes every session of an identity.
func (repo *sessionRepository) DeleteSessionsByIdentityID(ctx context.Context, identityID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("identity_id = ?", identityID).
		Delete(&model.SessionModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete sessions by identity id")
	}

	return nil
}

// DeleteExpiredSessions removes all expired sessions.
func (repo *sessionRepository) DeleteExpiredSessions(ctx context.Context) error {
	err := repo.db.WithContext(ctx).
		Where("expires_at <= ?", time.Now()).
		Delete(&model.SessionModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete expired sessions")
	}

	return nil
}

func toSessionDomain(m *model.SessionModel) *entity.Session {
	return &entity.Session{
		ID:         m.ID,
		IdentityID: m.IdentityID,
		TokenHash:  m.TokenHash,
		ExpiresAt:  m.ExpiresAt,
		CreatedAt:  m.CreatedAt,
	}
}

func fromSessionDomain(e *entity.Session) *model.SessionModel {
	return &model.SessionModel{
		ID:         e.ID,
		IdentityID: e.IdentityID,
		TokenHash:  e.TokenHash,
		ExpiresAt:  e.ExpiresAt,
		CreatedAt:  e.CreatedAt,
	}
}
