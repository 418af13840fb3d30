package session

import (
	"context"
	"testing"
	"time"

	"gestao/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startedPoller(t *testing.T, controller *Controller, interval, minCheck time.Duration, metrics Metrics) *Poller {
	t.Helper()

	poller := NewPoller(controller, interval, minCheck, newDiscardLogger(), metrics)
	poller.Start()
	t.Cleanup(poller.Stop)

	return poller
}

func TestPollerActivatesOnlyWhilePendingApproval(t *testing.T) {
	store := newFakeStore()
	directory := newFakeDirectory()
	directory.addProfile(store.identityID, "helena")

	controller := startedController(t, store, directory, nil)
	poller := startedPoller(t, controller, 10*time.Millisecond, time.Millisecond, nil)

	assert.False(t, poller.Active(), "no timer while unauthenticated")

	require.NoError(t, controller.SignIn(context.Background(), "helena@clube.test", "senha-forte"))
	waitFor(t, func() bool {
		return controller.Snapshot().State == StateAuthenticatedNoRole
	}, "pending approval")
	waitFor(t, poller.Active, "timer running while pending approval")

	require.NoError(t, controller.SignOut(context.Background()))
	waitFor(t, func() bool { return !poller.Active() }, "timer cancelled on sign-out")
}

func TestPollerPromotesAccountOnTick(t *testing.T) {
	store := newFakeStore()
	directory := newFakeDirectory()
	directory.addProfile(store.identityID, "igor")
	metrics := &countingMetrics{}

	controller := startedController(t, store, directory, metrics)
	poller := startedPoller(t, controller, 10*time.Millisecond, time.Millisecond, metrics)

	require.NoError(t, controller.SignIn(context.Background(), "igor@clube.test", "senha-forte"))
	waitFor(t, func() bool {
		return controller.Snapshot().State == StateAuthenticatedNoRole
	}, "pending approval")
	waitFor(t, poller.Active, "timer running")

	// Approval arrives out of band; the next tick must pick it up.
	directory.setRole(store.identityID, entity.RoleAssistenteSocial)

	waitFor(t, func() bool {
		return controller.Snapshot().State == StateAuthenticatedWithRole
	}, "promoted without re-login")
	waitFor(t, func() bool { return !poller.Active() }, "timer cancelled after promotion")
	assert.GreaterOrEqual(t, metrics.pollerTicks.Load(), int64(1))
}

func TestPollerStopIsIdempotent(t *testing.T) {
	store := newFakeStore()
	directory := newFakeDirectory()
	directory.addProfile(store.identityID, "joana")

	controller := startedController(t, store, directory, nil)
	poller := startedPoller(t, controller, 10*time.Millisecond, time.Millisecond, nil)

	require.NoError(t, controller.SignIn(context.Background(), "joana@clube.test", "senha-forte"))
	waitFor(t, poller.Active, "timer running")

	poller.Stop()
	poller.Stop()
	assert.False(t, poller.Active())

	// A stopped poller ignores further state changes.
	require.NoError(t, controller.Refresh(context.Background()))
	assert.False(t, poller.Active())
}

func TestPollerCheckNowHoldsCheckingForMinimumDuration(t *testing.T) {
	store := newFakeStore()
	directory := newFakeDirectory()
	directory.addProfile(store.identityID, "karen")

	controller := startedController(t, store, directory, nil)
	minCheck := 60 * time.Millisecond
	poller := startedPoller(t, controller, time.Hour, minCheck, nil)

	require.NoError(t, controller.SignIn(context.Background(), "karen@clube.test", "senha-forte"))
	waitFor(t, func() bool {
		return controller.Snapshot().State == StateAuthenticatedNoRole
	}, "pending approval")

	start := time.Now()
	require.NoError(t, poller.CheckNow(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), minCheck)
	assert.False(t, poller.Checking())
}

func TestPollerCheckNowPicksUpRole(t *testing.T) {
	store := newFakeStore()
	directory := newFakeDirectory()
	directory.addProfile(store.identityID, "lia")

	controller := startedController(t, store, directory, nil)
	poller := startedPoller(t, controller, time.Hour, time.Millisecond, nil)

	require.NoError(t, controller.SignIn(context.Background(), "lia@clube.test", "senha-forte"))
	waitFor(t, func() bool {
		return controller.Snapshot().State == StateAuthenticatedNoRole
	}, "pending approval")

	directory.setRole(store.identityID, entity.RoleAdmin)
	require.NoError(t, poller.CheckNow(context.Background()))

	assert.Equal(t, StateAuthenticatedWithRole, controller.Snapshot().State)
}
