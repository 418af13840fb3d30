package session

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gestao/internal/domain/entity"
	"gestao/internal/domain/errors"
	"gestao/internal/domain/service"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not reached: %s", msg)
}

// fakeStore is an in-memory identity store emitting events synchronously,
// the way the production client does.
type fakeStore struct {
	mu       sync.Mutex
	session  *entity.Session
	handlers map[int]func(service.AuthEvent)
	nextSub  int

	identityID uuid.UUID
	signInErr  error
	signUpErr  error
	signOutErr error
	currentErr error

	signOutCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		handlers:   make(map[int]func(service.AuthEvent)),
		identityID: uuid.New(),
	}
}

func (s *fakeStore) CurrentSession(_ context.Context) (*entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentErr != nil {
		return nil, s.currentErr
	}

	return s.session, nil
}

func (s *fakeStore) SignInWithPassword(_ context.Context, _, _ string) (*entity.Session, error) {
	s.mu.Lock()
	if s.signInErr != nil {
		err := s.signInErr
		s.mu.Unlock()

		return nil, err
	}
	sess := &entity.Session{
		ID:         uuid.New(),
		IdentityID: s.identityID,
		ExpiresAt:  time.Now().Add(time.Hour),
		CreatedAt:  time.Now(),
	}
	s.session = sess
	handlers := s.snapshotHandlers()
	s.mu.Unlock()

	for _, fn := range handlers {
		fn(service.AuthEvent{Type: service.AuthEventSignedIn, Session: sess})
	}

	return sess, nil
}

func (s *fakeStore) SignUp(_ context.Context, _ service.SignUpInput) error {
	return s.signUpErr
}

func (s *fakeStore) SignOut(_ context.Context) error {
	s.mu.Lock()
	s.signOutCalls++
	s.session = nil
	err := s.signOutErr
	handlers := s.snapshotHandlers()
	s.mu.Unlock()

	for _, fn := range handlers {
		fn(service.AuthEvent{Type: service.AuthEventSignedOut})
	}

	return err
}

func (s *fakeStore) OnAuthStateChange(handler func(service.AuthEvent)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.handlers[id] = handler
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.handlers, id)
		s.mu.Unlock()
	}
}

// snapshotHandlers copies handlers; callers hold s.mu.
func (s *fakeStore) snapshotHandlers() []func(service.AuthEvent) {
	handlers := make([]func(service.AuthEvent), 0, len(s.handlers))
	for _, fn := range s.handlers {
		handlers = append(handlers, fn)
	}

	return handlers
}

// fakeDirectory resolves profiles and roles from in-memory maps. An optional
// gate blocks profile fetches until released, to exercise in-flight races.
type fakeDirectory struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*entity.Profile
	roles    map[uuid.UUID]entity.Role

	profileErr error
	roleErr    error
	nilProfile bool
	gate       chan struct{}

	roleFetches atomic.Int64
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		profiles: make(map[uuid.UUID]*entity.Profile),
		roles:    make(map[uuid.UUID]entity.Role),
	}
}

func (d *fakeDirectory) FetchProfile(_ context.Context, identityID uuid.UUID) (*entity.Profile, error) {
	d.mu.Lock()
	gate := d.gate
	d.mu.Unlock()
	if gate != nil {
		<-gate
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.profileErr != nil {
		return nil, d.profileErr
	}
	if d.nilProfile {
		return nil, nil
	}
	profile, ok := d.profiles[identityID]
	if !ok {
		return nil, errors.ErrProfileNotFound
	}

	return profile, nil
}

func (d *fakeDirectory) FetchRole(_ context.Context, identityID uuid.UUID) (*entity.Role, error) {
	d.roleFetches.Add(1)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.roleErr != nil {
		return nil, d.roleErr
	}
	role, ok := d.roles[identityID]
	if !ok {
		return nil, nil
	}

	return &role, nil
}

func (d *fakeDirectory) addProfile(identityID uuid.UUID, name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.profiles[identityID] = &entity.Profile{
		ID:         uuid.New(),
		IdentityID: identityID,
		Name:       name,
		Email:      name + "@clube.test",
		Active:     true,
	}
}

func (d *fakeDirectory) setRole(identityID uuid.UUID, role entity.Role) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.roles[identityID] = role
}

func (d *fakeDirectory) setNilProfile(v bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nilProfile = v
}

func (d *fakeDirectory) setRoleErr(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.roleErr = err
}

// countingMetrics counts measurements with atomics.
type countingMetrics struct {
	signIns       atomic.Int64
	signOuts      atomic.Int64
	refreshes     atomic.Int64
	staleDiscards atomic.Int64
	pollerTicks   atomic.Int64
	opened        atomic.Int64
	closed        atomic.Int64
}

func (m *countingMetrics) SignIn()                  { m.signIns.Add(1) }
func (m *countingMetrics) SignOut()                 { m.signOuts.Add(1) }
func (m *countingMetrics) Refresh()                 { m.refreshes.Add(1) }
func (m *countingMetrics) StaleDiscard()            { m.staleDiscards.Add(1) }
func (m *countingMetrics) PollerTick()              { m.pollerTicks.Add(1) }
func (m *countingMetrics) GuardDecision(_ Decision) {}
func (m *countingMetrics) ControllerOpened()        { m.opened.Add(1) }
func (m *countingMetrics) ControllerClosed()        { m.closed.Add(1) }

// startedController builds and starts a controller over store and directory,
// waiting until the initial restore settles.
func startedController(t *testing.T, store *fakeStore, directory *fakeDirectory, metrics Metrics) *Controller {
	t.Helper()

	controller := NewController(store, directory, newDiscardLogger(), metrics)
	controller.Start()
	t.Cleanup(controller.Close)

	waitFor(t, func() bool {
		return controller.Snapshot().State != StateLoading
	}, "initial restore settled")

	return controller
}
