package identity

import (
	"context"
	"log/slog"
	"sync"

	"gestao/internal/domain/entity"
	"gestao/internal/domain/service"
)

// Client binds one web session to the Provider. It implements
// service.IdentityStore: the raw session token never leaves the process;
// browsers only carry the opaque session cookie that maps to this client.
//
// Auth event handlers run synchronously inside the operation that changed
// the state, so handlers must not call back into the client.
type Client struct {
	provider *Provider
	logger   *slog.Logger

	mu          sync.Mutex
	session     *entity.Session
	token       string
	handlers    map[int]func(service.AuthEvent)
	nextHandler int
}

// NewClient is the constructor for Client.
func NewClient(provider *Provider, logger *slog.Logger) *Client {
	return &Client{
		provider: provider,
		logger:   logger,
		handlers: map[int]func(service.AuthEvent){},
	}
}

// CurrentSession re-validates the bound token against storage. A missing,
// expired or revoked session clears the binding and yields (nil, nil).
func (c *Client) CurrentSession(ctx context.Context) (*entity.Session, error) {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()

	if token == "" {
		return nil, nil
	}

	session, err := c.provider.SessionByToken(ctx, token)
	if err != nil {
		// Keep the binding: the check failed, nothing is known about the session.
		return nil, err
	}

	c.mu.Lock()
	if c.token == token {
		if session == nil {
			c.token = ""
		}
		c.session = session
	}
	c.mu.Unlock()

	return session, nil
}

// SignInWithPassword authenticates and binds the resulting session.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error) {
	session, token, err := c.provider.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.session = session
	c.token = token
	c.mu.Unlock()

	c.emit(service.AuthEvent{Type: service.AuthEventSignedIn, Session: session})

	return session, nil
}

// SignUp registers a new account. No session is established; the account
// stays pending until an administrator assigns a role.
func (c *Client) SignUp(ctx context.Context, input service.SignUpInput) error {
	return c.provider.CreateAccount(ctx, input)
}

// SignOut clears the binding first, then revokes the session row. The local
// clear always happens, even when revocation fails.
func (c *Client) SignOut(ctx context.Context) error {
	c.mu.Lock()
	session := c.session
	c.session = nil
	c.token = ""
	c.mu.Unlock()

	c.emit(service.AuthEvent{Type: service.AuthEventSignedOut})

	if session == nil {
		return nil
	}

	if err := c.provider.RevokeSession(ctx, session); err != nil {
		c.logger.WarnContext(ctx, "session revocation failed after local sign-out",
			slog.String("sessionID", session.ID.String()),
			slog.Any("error", err),
		)

		return err
	}

	return nil
}

// OnAuthStateChange registers a handler for auth events. The returned
// unsubscribe function is idempotent.
func (c *Client) OnAuthStateChange(handler func(event service.AuthEvent)) func() {
	c.mu.Lock()
	id := c.nextHandler
	c.nextHandler++
	c.handlers[id] = handler
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.handlers, id)
		c.mu.Unlock()
	}
}

// emit invokes every registered handler outside the client lock.
func (c *Client) emit(event service.AuthEvent) {
	c.mu.Lock()
	handlers := make([]func(service.AuthEvent), 0, len(c.handlers))
	for _, handler := range c.handlers {
		handlers = append(handlers, handler)
	}
	c.mu.Unlock()

	for _, handler := range handlers {
		handler(event)
	}
}
