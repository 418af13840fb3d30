// Package identity implements the server-side identity boundary: account
// registration, password sign-in and session issuance. Each web session talks
// to it through its own Client; nothing else reaches the credential storage.
package identity

import (
	"context"
	"log/slog"
	"time"

	"gestao/internal/domain/entity"
	domainerrors "gestao/internal/domain/errors"
	"gestao/internal/domain/repository"
	"gestao/internal/domain/service"
	"gestao/internal/errors"
	"gestao/internal/infra/auth"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// ProviderParams defines the dependencies of the Provider.
type ProviderParams struct {
	fx.In

	TxManager      repository.TransactionManager
	Credentials    repository.CredentialRepository
	Sessions       repository.SessionRepository
	TokenService   service.TokenService
	PasswordHasher service.PasswordHasher
	PasswordPolicy *auth.PasswordPolicy
	Logger         *slog.Logger
}

// Provider holds the shared identity operations. It is safe for concurrent
// use; per-session state lives on the Client.
type Provider struct {
	txManager      repository.TransactionManager
	credentials    repository.CredentialRepository
	sessions       repository.SessionRepository
	tokenService   service.TokenService
	passwordHasher service.PasswordHasher
	passwordPolicy *auth.PasswordPolicy
	logger         *slog.Logger
}

// NewProvider is the constructor for Provider.
func NewProvider(params ProviderParams) *Provider {
	return &Provider{
		txManager:      params.TxManager,
		credentials:    params.Credentials,
		sessions:       params.Sessions,
		tokenService:   params.TokenService,
		passwordHasher: params.PasswordHasher,
		passwordPolicy: params.PasswordPolicy,
		logger:         params.Logger,
	}
}

// CreateAccount registers a new account: one credential plus one profile,
// atomically. The account receives no role; it stays pending until an
// administrator assigns one.
func (p *Provider) CreateAccount(ctx context.Context, input service.SignUpInput) error {
	if err := p.passwordPolicy.Validate(input.Password); err != nil {
		return err
	}

	hash, err := p.passwordHasher.Hash(input.Password)
	if err != nil {
		// Never attach the hashing error detail; it can echo input length hints.
		return domainerrors.ErrPasswordHashFailed
	}

	identityID := uuid.New()
	err = p.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		credential := &entity.Credential{
			IdentityID:   identityID,
			Email:        input.Email,
			PasswordHash: hash,
		}
		if err := factory.NewCredentialRepository().CreateCredential(ctx, credential); err != nil {
			return err
		}

		profile := &entity.Profile{
			IdentityID: identityID,
			Name:       input.Name,
			Email:      input.Email,
			Active:     true,
		}

		return factory.NewProfileRepository().CreateProfile(ctx, profile)
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return domainerrors.ErrEmailAlreadyRegistered
		}

		return errors.Wrap(err, "failed to create account")
	}

	p.logger.InfoContext(ctx, "account created", slog.String("identityID", identityID.String()))

	return nil
}

// Authenticate verifies the email/password pair and issues a new session.
// It returns the session and the raw token; only the token hash is stored.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (p *Provider) Authenticate(ctx context.Context, email, password string) (*entity.Session, string, error) {
	credential, err := p.credentials.FindCredentialByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, "", domainerrors.ErrInvalidCredentials
		}

		return nil, "", errors.Wrap(err, "failed to look up credential")
	}

	if !p.passwordHasher.Check(password, credential.PasswordHash) {
		return nil, "", domainerrors.ErrInvalidCredentials
	}

	// The session ID is minted here rather than by the database because the
	// token embeds it.
	sessionID := uuid.New()
	token, err := p.tokenService.GenerateSessionToken(sessionID, credential.IdentityID)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to generate session token")
	}

	session := &entity.Session{
		ID:         sessionID,
		IdentityID: credential.IdentityID,
		TokenHash:  p.tokenService.HashToken(token),
		ExpiresAt:  time.Now().Add(p.tokenService.GetSessionDuration()),
	}
	if err := p.sessions.CreateSession(ctx, session); err != nil {
		return nil, "", errors.Wrap(err, "failed to persist session")
	}

	p.logger.InfoContext(ctx, "session issued",
		slog.String("identityID", credential.IdentityID.String()),
		slog.String("sessionID", sessionID.String()),
	)

	return session, token, nil
}

// SessionByToken resolves a raw token to its stored session. An invalid,
// expired or revoked token yields (nil, nil); an error means the lookup
// itself could not be performed.
func (p *Provider) SessionByToken(ctx context.Context, token string) (*entity.Session, error) {
	claims, err := p.tokenService.ValidateSessionToken(token)
	if err != nil {
		return nil, nil
	}

	session, err := p.sessions.FindSessionByTokenHash(ctx, p.tokenService.HashToken(token))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) || errors.Is(err, repository.ErrSessionExpired) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to look up session")
	}

	// The stored row must match the token's claims; a mismatch means the
	// token was issued for a different session row.
	if session.ID != claims.SessionID || session.IdentityID != claims.IdentityID {
		return nil, nil
	}

	return session, nil
}

// RevokeSession deletes the session row, ending the session everywhere.
func (p *Provider) RevokeSession(ctx context.Context, session *entity.Session) error {
	if err := p.sessions.DeleteSession(ctx, session.ID); err != nil {
		return errors.Wrap(err, "failed to revoke session")
	}

	p.logger.InfoContext(ctx, "session revoked", slog.String("sessionID", session.ID.String()))

	return nil
}
