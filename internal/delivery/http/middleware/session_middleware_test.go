package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gestao/internal/domain/entity"
	"gestao/internal/domain/service"
	"gestao/internal/session"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStore is a minimal in-memory identity store for guard tests.
type stubStore struct {
	identityID uuid.UUID
	session    *entity.Session
	handler    func(service.AuthEvent)
}

func (s *stubStore) CurrentSession(_ context.Context) (*entity.Session, error) {
	return s.session, nil
}

func (s *stubStore) SignInWithPassword(_ context.Context, _, _ string) (*entity.Session, error) {
	sess := &entity.Session{
		ID:         uuid.New(),
		IdentityID: s.identityID,
		ExpiresAt:  time.Now().Add(time.Hour),
		CreatedAt:  time.Now(),
	}
	s.session = sess
	if s.handler != nil {
		s.handler(service.AuthEvent{Type: service.AuthEventSignedIn, Session: sess})
	}

	return sess, nil
}

func (s *stubStore) SignUp(_ context.Context, _ service.SignUpInput) error {
	return nil
}

func (s *stubStore) SignOut(_ context.Context) error {
	s.session = nil
	if s.handler != nil {
		s.handler(service.AuthEvent{Type: service.AuthEventSignedOut})
	}

	return nil
}

func (s *stubStore) OnAuthStateChange(handler func(service.AuthEvent)) func() {
	s.handler = handler

	return func() { s.handler = nil }
}

type stubStoreFactory struct {
	store *stubStore
}

func (f *stubStoreFactory) NewStore() service.IdentityStore {
	return f.store
}

// stubDirectory serves one profile and an optional role for one identity.
type stubDirectory struct {
	identityID uuid.UUID
	profile    *entity.Profile
	role       *entity.Role
}

func (d *stubDirectory) FetchProfile(_ context.Context, identityID uuid.UUID) (*entity.Profile, error) {
	if identityID == d.identityID {
		return d.profile, nil
	}

	return nil, nil
}

func (d *stubDirectory) FetchRole(_ context.Context, identityID uuid.UUID) (*entity.Role, error) {
	if identityID == d.identityID {
		return d.role, nil
	}

	return nil, nil
}

func newGuardFixture(t *testing.T, role *entity.Role) (*SessionMiddleware, *session.Manager) {
	t.Helper()

	identityID := uuid.New()
	store := &stubStore{identityID: identityID}
	directory := &stubDirectory{
		identityID: identityID,
		profile: &entity.Profile{
			ID:         uuid.New(),
			IdentityID: identityID,
			Name:       "Ana",
			Active:     true,
		},
		role: role,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := session.NewManager(&stubStoreFactory{store: store}, directory, session.ManagerConfig{}, logger, nil)
	t.Cleanup(manager.Close)

	return NewSessionMiddleware(manager, nil, logger), manager
}

func waitForState(t *testing.T, controller *session.Controller, want session.State) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if controller.Snapshot().State == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("state never reached %s, got %s", want, controller.Snapshot().State)
}

// requestedPath is the route every guard test asks for.
const requestedPath = "/api/reports/summary"

func invokeGuarded(t *testing.T, mw *SessionMiddleware, sid string, allowed ...entity.Role) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, requestedPath, nil)
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sid})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := mw.RequireRoles(allowed...)(func(c echo.Context) error {
		reached = true

		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return rec, reached
}

func TestRequireRolesWithoutCookieIsUnauthorized(t *testing.T) {
	mw, _ := newGuardFixture(t, nil)

	rec, reached := invokeGuarded(t, mw, "")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "SIGNED_OUT")
	// The response carries the requested path so the client can return
	// here after signing in.
	assert.Contains(t, rec.Body.String(), `"details":"`+requestedPath+`"`)
}

func TestRequireRolesUnknownSIDIsUnauthorized(t *testing.T) {
	mw, _ := newGuardFixture(t, nil)

	rec, reached := invokeGuarded(t, mw, uuid.NewString())
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRolesAdmitsMatchingRole(t *testing.T) {
	role := entity.RolePsicologo
	mw, manager := newGuardFixture(t, &role)

	handle := manager.Open()
	require.NoError(t, handle.Controller.SignIn(context.Background(), "ana@clube.test", "senha-forte"))
	waitForState(t, handle.Controller, session.StateAuthenticatedWithRole)

	rec, reached := invokeGuarded(t, mw, handle.SID,
		entity.RoleAdmin, entity.RolePsicologo, entity.RoleGestor)
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRolesRejectsDisallowedRole(t *testing.T) {
	role := entity.RolePsicologo
	mw, manager := newGuardFixture(t, &role)

	handle := manager.Open()
	require.NoError(t, handle.Controller.SignIn(context.Background(), "ana@clube.test", "senha-forte"))
	waitForState(t, handle.Controller, session.StateAuthenticatedWithRole)

	rec, reached := invokeGuarded(t, mw, handle.SID, entity.RoleAdmin)
	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "ROLE_NOT_ALLOWED")
	assert.Contains(t, rec.Body.String(), `"details":"`+LandingPath+`"`)
}

func TestRequireRolesEmptySetAdmitsAnyRole(t *testing.T) {
	role := entity.RoleGestor
	mw, manager := newGuardFixture(t, &role)

	handle := manager.Open()
	require.NoError(t, handle.Controller.SignIn(context.Background(), "ana@clube.test", "senha-forte"))
	waitForState(t, handle.Controller, session.StateAuthenticatedWithRole)

	rec, reached := invokeGuarded(t, mw, handle.SID)
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRolesPendingApprovalIsForbidden(t *testing.T) {
	mw, manager := newGuardFixture(t, nil)

	handle := manager.Open()
	require.NoError(t, handle.Controller.SignIn(context.Background(), "ana@clube.test", "senha-forte"))
	waitForState(t, handle.Controller, session.StateAuthenticatedNoRole)

	rec, reached := invokeGuarded(t, mw, handle.SID)
	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "PENDING_APPROVAL")
}
