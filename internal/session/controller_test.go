package session

import (
	"context"
	"testing"

	"gestao/internal/domain/entity"
	domainerrors "gestao/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerRestoreWithoutSession(t *testing.T) {
	store := newFakeStore()
	directory := newFakeDirectory()

	controller := startedController(t, store, directory, nil)

	snap := controller.Snapshot()
	assert.Equal(t, StateUnauthenticated, snap.State)
	assert.Nil(t, snap.Session)
	assert.Nil(t, snap.Profile)
	assert.Nil(t, snap.Role)
}

func TestControllerSignInResolvesRole(t *testing.T) {
	store := newFakeStore()
	directory := newFakeDirectory()
	directory.addProfile(store.identityID, "ana")
	directory.setRole(store.identityID, entity.RolePsicologo)

	controller := startedController(t, store, directory, nil)

	require.NoError(t, controller.SignIn(context.Background(), "ana@clube.test", "senha-forte"))

	waitFor(t, func() bool {
		return controller.Snapshot().State == StateAuthenticatedWithRole
	}, "sign-in resolved to authenticated with role")

	snap := controller.Snapshot()
	require.NotNil(t, snap.Role)
	assert.Equal(t, entity.RolePsicologo, *snap.Role)
	require.NotNil(t, snap.Profile)
	assert.Equal(t, "ana", snap.Profile.Name)
	assert.NoError(t, snap.LastErr)
}

func TestControllerSignInWithoutRoleIsPendingApproval(t *testing.T) {
	store := newFakeStore()
	directory := newFakeDirectory()
	directory.addProfile(store.identityID, "bruno")

	controller := startedController(t, store, directory, nil)

	require.NoError(t, controller.SignIn(context.Background(), "bruno@clube.test", "senha-forte"))

	waitFor(t, func() bool {
		return controller.Snapshot().State == StateAuthenticatedNoRole
	}, "sign-in resolved to pending approval")

	snap := controller.Snapshot()
	assert.NotNil(t, snap.Profile)
	assert.Nil(t, snap.Role)
}

func TestControllerSignInFailureLeavesStateUnchanged(t *testing.T) {
	store := newFakeStore()
	store.signInErr = domainerrors.ErrInvalidCredentials
	directory := newFakeDirectory()

	controller := startedController(t, store, directory, nil)

	err := controller.SignIn(context.Background(), "ana@clube.test", "senha-errada")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, StateUnauthenticated, controller.Snapshot().State)
}

func TestControllerSignOutIsIdempotent(t *testing.T) {
	store := newFakeStore()
	directory := newFakeDirectory()
	directory.addProfile(store.identityID, "carla")
	directory.setRole(store.identityID, entity.RoleGestor)

	controller := startedController(t, store, directory, nil)
	require.NoError(t, controller.SignIn(context.Background(), "carla@clube.test", "senha-forte"))
	waitFor(t, func() bool {
		return controller.Snapshot().State == StateAuthenticatedWithRole
	}, "signed in")

	require.NoError(t, controller.SignOut(context.Background()))
	require.NoError(t, controller.SignOut(context.Background()))

	snap := controller.Snapshot()
	assert.Equal(t, StateUnauthenticated, snap.State)
	assert.Nil(t, snap.Session)
	assert.Nil(t, snap.Profile)
	assert.Nil(t, snap.Role)
}

func TestControllerSignOutClearsLocallyWhenRemoteFails(t *testing.T) {
	store := newFakeStore()
	store.signOutErr = domainerrors.ErrTransportFailure
	directory := newFakeDirectory()
	directory.addProfile(store.identityID, "davi")
	directory.setRole(store.identityID, entity.RoleAdmin)

	controller := startedController(t, store, directory, nil)
	require.NoError(t, controller.SignIn(context.Background(), "davi@clube.test", "senha-forte"))
	waitFor(t, func() bool {
		return controller.Snapshot().State == StateAuthenticatedWithRole
	}, "signed in")

	err := controller.SignOut(context.Background())
	require.Error(t, err)

	// The remote failure must never undo the local clear.
	snap := controller.Snapshot()
	assert.Equal(t, StateUnauthenticated, snap.State)
	assert.Nil(t, snap.Profile)
}

func TestControllerRefreshIsNoopWhenUnauthenticated(t *testing.T) {
	store := newFakeStore()
	directory := newFakeDirectory()

	controller := startedController(t, store, directory, nil)

	require.NoError(t, controller.Refresh(context.Background()))
	assert.Equal(t, StateUnauthenticated, controller.Snapshot().State)
	assert.Zero(t, directory.roleFetches.Load())
}

func TestControllerRefreshPicksUpNewRole(t *testing.T) {
	store := newFakeStore()
	directory := newFakeDirectory()
	directory.addProfile(store.identityID, "elisa")

	controller := startedController(t, store, directory, nil)
	require.NoError(t, controller.SignIn(context.Background(), "elisa@clube.test", "senha-forte"))
	waitFor(t, func() bool {
		return controller.Snapshot().State == StateAuthenticatedNoRole
	}, "pending approval")

	// Administrator approves the account out of band.
	directory.setRole(store.identityID, entity.RolePedagogo)

	require.NoError(t, controller.Refresh(context.Background()))

	waitFor(t, func() bool {
		return controller.Snapshot().State == StateAuthenticatedWithRole
	}, "role picked up without re-login")
	require.NotNil(t, controller.Snapshot().Role)
	assert.Equal(t, entity.RolePedagogo, *controller.Snapshot().Role)
}

func TestControllerTransportFailureRetainsAuthenticatedState(t *testing.T) {
	store := newFakeStore()
	directory := newFakeDirectory()
	directory.addProfile(store.identityID, "fabio")
	directory.setRole(store.identityID, entity.RolePsicologo)

	controller := startedController(t, store, directory, nil)
	require.NoError(t, controller.SignIn(context.Background(), "fabio@clube.test", "senha-forte"))
	waitFor(t, func() bool {
		return controller.Snapshot().State == StateAuthenticatedWithRole
	}, "signed in")

	directory.setRoleErr(domainerrors.ErrTransportFailure)
	err := controller.Refresh(context.Background())
	require.Error(t, err)

	// The cached role survives the failed fetch and the error is observable.
	snap := controller.Snapshot()
	assert.Equal(t, StateAuthenticatedWithRole, snap.State)
	require.NotNil(t, snap.Role)
	assert.Equal(t, entity.RolePsicologo, *snap.Role)
	assert.Error(t, snap.LastErr)

	directory.setRoleErr(nil)
	require.NoError(t, controller.Refresh(context.Background()))
	waitFor(t, func() bool {
		return controller.Snapshot().LastErr == nil
	}, "last error cleared after successful refresh")
}

func TestControllerSignOutDuringRefreshDiscardsStaleResult(t *testing.T) {
	store := newFakeStore()
	directory := newFakeDirectory()
	directory.addProfile(store.identityID, "gisele")
	directory.setRole(store.identityID, entity.RoleAssistenteSocial)
	metrics := &countingMetrics{}

	controller := startedController(t, store, directory, metrics)
	require.NoError(t, controller.SignIn(context.Background(), "gisele@clube.test", "senha-forte"))
	waitFor(t, func() bool {
		return controller.Snapshot().State == StateAuthenticatedWithRole
	}, "signed in")

	gate := make(chan struct{})
	directory.mu.Lock()
	directory.gate = gate
	directory.mu.Unlock()

	refreshDone := make(chan struct{})
	go func() {
		defer close(refreshDone)
		_ = controller.Refresh(context.Background())
	}()

	waitFor(t, func() bool {
		return controller.Snapshot().State == StateLoading
	}, "refresh in flight")

	require.NoError(t, controller.SignOut(context.Background()))
	close(gate)
	<-refreshDone

	// The fetch that was in flight at sign-out must not resurrect the session.
	snap := controller.Snapshot()
	assert.Equal(t, StateUnauthenticated, snap.State)
	assert.Nil(t, snap.Profile)
	assert.Nil(t, snap.Role)
	assert.GreaterOrEqual(t, metrics.staleDiscards.Load(), int64(1))
}

func TestControllerSubscribeAndUnsubscribe(t *testing.T) {
	store := newFakeStore()
	directory := newFakeDirectory()

	controller := startedController(t, store, directory, nil)

	var notified int
	unsubscribe := controller.Subscribe(func(_ Snapshot) {
		notified++
	})

	require.NoError(t, controller.SignOut(context.Background()))
	assert.Positive(t, notified)

	seen := notified
	unsubscribe()
	unsubscribe() // Unsubscribing twice is safe.

	require.NoError(t, controller.SignOut(context.Background()))
	assert.Equal(t, seen, notified)
}

func TestControllerNilProfileStaysLoading(t *testing.T) {
	store := newFakeStore()
	directory := newFakeDirectory()
	directory.setNilProfile(true)

	controller := startedController(t, store, directory, nil)
	require.NoError(t, controller.SignIn(context.Background(), "ana@clube.test", "senha-forte"))

	waitFor(t, func() bool {
		return controller.Snapshot().LastErr != nil
	}, "nil profile surfaced as load error")

	// A directory answering (nil, nil) must never reach an authenticated
	// state; the controller keeps loading so the caller can retry.
	snap := controller.Snapshot()
	assert.Equal(t, StateLoading, snap.State)
	assert.Nil(t, snap.Profile)
	assert.Nil(t, snap.Role)
}
