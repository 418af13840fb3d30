package session

import (
	"context"
	"log/slog"
	"sync"

	"gestao/internal/domain/entity"
	"gestao/internal/domain/service"
	"gestao/internal/errors"

	"golang.org/x/sync/singleflight"
)

const taskQueueSize = 32

// Controller owns the authorization projection of one identity: the current
// session, its profile and its role. It is the only writer of that state;
// consumers observe it through Snapshot and Subscribe.
//
// Fetches triggered by an auth event never run synchronously inside the
// callback that delivered the event; they go through an internal task queue.
// The identity store's client is not reentrant.
type Controller struct {
	store     service.IdentityStore
	directory service.Directory
	logger    *slog.Logger
	metrics   Metrics
	flight    singleflight.Group

	mu      sync.Mutex
	state   State
	session *entity.Session
	profile *entity.Profile
	role    *entity.Role
	lastErr error
	epoch   uint64
	subs    map[int]func(Snapshot)
	nextSub int

	tasks       chan func()
	quit        chan struct{}
	closeOnce   sync.Once
	unsubscribe func()
}

// NewController builds a controller. Call Start before use and Close when
// the owning web session ends.
func NewController(store service.IdentityStore, directory service.Directory, logger *slog.Logger, metrics Metrics) *Controller {
	if metrics == nil {
		metrics = NopMetrics{}
	}

	return &Controller{
		store:     store,
		directory: directory,
		logger:    logger,
		metrics:   metrics,
		state:     StateUninitialized,
		subs:      make(map[int]func(Snapshot)),
		tasks:     make(chan func(), taskQueueSize),
		quit:      make(chan struct{}),
	}
}

// Start subscribes to the identity store's auth events, starts the task
// loop and schedules the initial session restore.
func (c *Controller) Start() {
	c.unsubscribe = c.store.OnAuthStateChange(c.handleAuthEvent)

	go c.run()

	c.mu.Lock()
	c.state = StateLoading
	epoch := c.epoch
	c.mu.Unlock()
	c.notify()

	c.enqueue(func() {
		c.restore(context.Background(), epoch)
	})
}

// Close tears the controller down. It is safe to call more than once.
func (c *Controller) Close() {
	c.closeOnce.Do(func() {
		if c.unsubscribe != nil {
			c.unsubscribe()
		}
		close(c.quit)
	})
}

// Snapshot returns the current state projection.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshotLocked()
}

// Subscribe registers fn for every state change and returns an idempotent
// unsubscribe function. fn runs on the goroutine applying the change and
// must not block.
func (c *Controller) Subscribe(fn func(Snapshot)) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// SignIn authenticates with email and password. On failure the state is left
// unchanged and the error is returned to the caller; on success the reload
// is driven by the store's SIGNED_IN event.
func (c *Controller) SignIn(ctx context.Context, email, password string) error {
	if _, err := c.store.SignInWithPassword(ctx, email, password); err != nil {
		return errors.Wrap(err, "sign in")
	}
	c.metrics.SignIn()

	return nil
}

// SignUp registers a new account. No role is granted; the account stays
// pending until an administrator approves it.
func (c *Controller) SignUp(ctx context.Context, input service.SignUpInput) error {
	if err := c.store.SignUp(ctx, input); err != nil {
		return errors.Wrap(err, "sign up")
	}

	return nil
}

// SignOut clears the local state first and then revokes the remote session.
// The local clear always happens, even when revocation fails; the returned
// error only reports the remote side. Signing out twice is harmless.
func (c *Controller) SignOut(ctx context.Context) error {
	c.clear()
	c.metrics.SignOut()

	if err := c.store.SignOut(ctx); err != nil {
		c.logger.Warn("remote sign-out failed, local session already cleared",
			slog.String("error", err.Error()))

		return errors.Wrap(err, "sign out")
	}

	return nil
}

// Refresh re-fetches profile and role for the current identity. It is a
// no-op when unauthenticated. Concurrent calls share a single in-flight
// fetch, and a result that arrives after the epoch advanced is discarded.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	if c.session == nil {
		c.mu.Unlock()

		return nil
	}
	sess := c.session
	epoch := c.epoch
	c.state = StateLoading
	c.mu.Unlock()
	c.notify()
	c.metrics.Refresh()

	_, err, _ := c.flight.Do(sess.IdentityID.String(), func() (any, error) {
		return nil, c.refreshOnce(ctx, epoch)
	})

	return err
}

func (c *Controller) run() {
	for {
		select {
		case <-c.quit:
			return
		case task := <-c.tasks:
			task()
		}
	}
}

func (c *Controller) enqueue(task func()) {
	select {
	case c.tasks <- task:
	case <-c.quit:
	}
}

// handleAuthEvent runs synchronously inside the store's delivery callback,
// so it only mutates local state and defers any fetch to the task loop.
func (c *Controller) handleAuthEvent(event service.AuthEvent) {
	switch event.Type {
	case service.AuthEventSignedOut:
		c.clear()
	case service.AuthEventSignedIn, service.AuthEventTokenRefreshed:
		sess := event.Session
		if sess == nil {
			return
		}

		c.mu.Lock()
		c.epoch++
		epoch := c.epoch
		c.session = sess
		c.state = StateLoading
		c.mu.Unlock()
		c.notify()

		c.enqueue(func() {
			if err := c.load(context.Background(), sess, epoch); err != nil {
				c.logger.Warn("profile/role load failed after auth event",
					slog.String("event", string(event.Type)),
					slog.String("error", err.Error()))
			}
		})
	}
}

// restore resolves the initial state: restored session or unauthenticated.
func (c *Controller) restore(ctx context.Context, epoch uint64) {
	sess, err := c.store.CurrentSession(ctx)
	if err != nil {
		c.settleFailure(epoch, err)

		return
	}
	if sess == nil {
		c.settleUnauthenticated(epoch)

		return
	}

	c.mu.Lock()
	if c.epoch != epoch {
		c.mu.Unlock()
		c.metrics.StaleDiscard()

		return
	}
	c.session = sess
	c.mu.Unlock()

	if err := c.load(ctx, sess, epoch); err != nil {
		c.logger.Warn("profile/role load failed on restore", slog.String("error", err.Error()))
	}
}

func (c *Controller) refreshOnce(ctx context.Context, epoch uint64) error {
	sess, err := c.store.CurrentSession(ctx)
	if err != nil {
		c.settleFailure(epoch, err)

		return errors.Wrap(err, "check session")
	}
	if sess == nil {
		// The session itself is invalid; demote rather than retain.
		c.settleUnauthenticated(epoch)

		return nil
	}

	return c.load(ctx, sess, epoch)
}

// load fetches profile and role, then applies the result unless the epoch
// advanced while the fetch was in flight.
func (c *Controller) load(ctx context.Context, sess *entity.Session, epoch uint64) error {
	profile, err := c.directory.FetchProfile(ctx, sess.IdentityID)
	if err != nil {
		c.settleFailure(epoch, err)

		return errors.Wrap(err, "fetch profile")
	}
	if profile == nil {
		// Directories report a missing profile as an error; a nil profile
		// with a nil error must never reach the authenticated states.
		err := errors.New("directory returned nil profile")
		c.settleFailure(epoch, err)

		return errors.Wrap(err, "fetch profile")
	}

	role, err := c.directory.FetchRole(ctx, sess.IdentityID)
	if err != nil {
		c.settleFailure(epoch, err)

		return errors.Wrap(err, "fetch role")
	}

	c.mu.Lock()
	if c.epoch != epoch {
		c.mu.Unlock()
		c.metrics.StaleDiscard()

		return nil
	}
	c.session = sess
	c.profile = profile
	c.role = role
	c.lastErr = nil
	if role != nil {
		c.state = StateAuthenticatedWithRole
	} else {
		c.state = StateAuthenticatedNoRole
	}
	c.mu.Unlock()
	c.notify()

	return nil
}

// settleFailure records a transport failure without demoting an already
// authenticated identity: the previously loaded payload stays in place and
// the error is surfaced through Snapshot.LastErr. With no prior payload the
// state remains Loading so the caller can retry.
func (c *Controller) settleFailure(epoch uint64, err error) {
	c.mu.Lock()
	if c.epoch != epoch {
		c.mu.Unlock()
		c.metrics.StaleDiscard()

		return
	}
	c.lastErr = err
	if c.profile != nil {
		if c.role != nil {
			c.state = StateAuthenticatedWithRole
		} else {
			c.state = StateAuthenticatedNoRole
		}
	}
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) settleUnauthenticated(epoch uint64) {
	c.mu.Lock()
	if c.epoch != epoch {
		c.mu.Unlock()
		c.metrics.StaleDiscard()

		return
	}
	c.state = StateUnauthenticated
	c.session = nil
	c.profile = nil
	c.role = nil
	c.lastErr = nil
	c.mu.Unlock()
	c.notify()
}

// clear applies a local sign-out: it advances the epoch so any in-flight
// fetch result is discarded, then drops the whole payload.
func (c *Controller) clear() {
	c.mu.Lock()
	c.epoch++
	c.state = StateUnauthenticated
	c.session = nil
	c.profile = nil
	c.role = nil
	c.lastErr = nil
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		State:   c.state,
		Session: c.session,
		Profile: c.profile,
		Role:    c.role,
		LastErr: c.lastErr,
		Epoch:   c.epoch,
	}
}

func (c *Controller) notify() {
	c.mu.Lock()
	snap := c.snapshotLocked()
	handlers := make([]func(Snapshot), 0, len(c.subs))
	for _, fn := range c.subs {
		handlers = append(handlers, fn)
	}
	c.mu.Unlock()

	for _, fn := range handlers {
		fn(snap)
	}
}
