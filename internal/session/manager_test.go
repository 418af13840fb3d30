package session

import (
	"testing"
	"time"

	"gestao/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStoreFactory struct {
	stores []*fakeStore
}

func (f *fakeStoreFactory) NewStore() service.IdentityStore {
	store := newFakeStore()
	f.stores = append(f.stores, store)

	return store
}

func newTestManager(metrics Metrics) (*Manager, *fakeStoreFactory) {
	factory := &fakeStoreFactory{}
	manager := NewManager(factory, newFakeDirectory(), ManagerConfig{
		PollInterval:        10 * time.Millisecond,
		CheckNowMinDuration: time.Millisecond,
		RegistryTTL:         time.Minute,
		RegistrySweep:       time.Minute,
	}, newDiscardLogger(), metrics)

	return manager, factory
}

func TestManagerOpenAndLookup(t *testing.T) {
	manager, _ := newTestManager(nil)
	t.Cleanup(manager.Close)

	handle := manager.Open()
	require.NotEmpty(t, handle.SID)

	waitFor(t, func() bool {
		return handle.Controller.Snapshot().State == StateUnauthenticated
	}, "fresh controller settles unauthenticated")

	found, ok := manager.Lookup(handle.SID)
	require.True(t, ok)
	assert.Same(t, handle, found)

	_, ok = manager.Lookup("unknown-sid")
	assert.False(t, ok)
}

func TestManagerDiscardTearsDownController(t *testing.T) {
	metrics := &countingMetrics{}
	manager, _ := newTestManager(metrics)
	t.Cleanup(manager.Close)

	handle := manager.Open()
	assert.Equal(t, int64(1), metrics.opened.Load())

	manager.Discard(handle.SID)

	_, ok := manager.Lookup(handle.SID)
	assert.False(t, ok)
	assert.Equal(t, int64(1), metrics.closed.Load())
	assert.False(t, handle.Poller.Active())
}

func TestManagerDiscardUnknownSIDIsSafe(t *testing.T) {
	manager, _ := newTestManager(nil)
	t.Cleanup(manager.Close)

	manager.Discard("never-opened")
}

func TestManagerCloseTearsDownEveryController(t *testing.T) {
	metrics := &countingMetrics{}
	manager, _ := newTestManager(metrics)

	first := manager.Open()
	second := manager.Open()
	require.NotEqual(t, first.SID, second.SID)

	manager.Close()

	assert.Equal(t, int64(2), metrics.closed.Load())
	_, ok := manager.Lookup(first.SID)
	assert.False(t, ok)
}
