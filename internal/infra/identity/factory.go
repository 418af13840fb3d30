package identity

import (
	"log/slog"

	"gestao/internal/domain/service"
	"gestao/internal/session"
)

// storeFactory mints one fresh Client per web session.
type storeFactory struct {
	provider *Provider
	logger   *slog.Logger
}

// NewStoreFactory is the constructor for the session store factory.
func NewStoreFactory(provider *Provider, logger *slog.Logger) session.StoreFactory {
	return &storeFactory{
		provider: provider,
		logger:   logger,
	}
}

// NewStore returns a new identity store bound to nothing yet.
func (f *storeFactory) NewStore() service.IdentityStore {
	return NewClient(f.provider, f.logger)
}
