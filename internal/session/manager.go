package session

import (
	"log/slog"
	"time"

	"gestao/internal/domain/service"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// Default registry timings.
const (
	// DefaultRegistryTTL is how long an idle controller survives between
	// requests before it is evicted and torn down.
	DefaultRegistryTTL = 30 * time.Minute
	// DefaultRegistrySweep is how often expired controllers are collected.
	DefaultRegistrySweep = 5 * time.Minute
)

// StoreFactory builds the identity store client bound to one new web session.
type StoreFactory interface {
	NewStore() service.IdentityStore
}

// ManagerConfig tunes the controllers a manager creates.
type ManagerConfig struct {
	PollInterval        time.Duration
	CheckNowMinDuration time.Duration
	RegistryTTL         time.Duration
	RegistrySweep       time.Duration
}

// Handle bundles the per-web-session pieces: the identity store client, its
// controller and the pending-approval poller.
type Handle struct {
	SID        string
	Store      service.IdentityStore
	Controller *Controller
	Poller     *Poller
}

func (h *Handle) close() {
	h.Poller.Stop()
	h.Controller.Close()
}

// Manager owns every live controller, keyed by the sid cookie value. It is
// the single constructed entry point the delivery layer reads auth state
// through; nothing else holds controller references. Idle controllers are
// evicted after RegistryTTL and torn down on eviction.
type Manager struct {
	factory   StoreFactory
	directory service.Directory
	logger    *slog.Logger
	metrics   Metrics
	cfg       ManagerConfig
	registry  *gocache.Cache
}

// NewManager builds a manager. Zero config fields fall back to defaults.
func NewManager(factory StoreFactory, directory service.Directory, cfg ManagerConfig, logger *slog.Logger, metrics Metrics) *Manager {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.CheckNowMinDuration <= 0 {
		cfg.CheckNowMinDuration = DefaultCheckNowMinDuration
	}
	if cfg.RegistryTTL <= 0 {
		cfg.RegistryTTL = DefaultRegistryTTL
	}
	if cfg.RegistrySweep <= 0 {
		cfg.RegistrySweep = DefaultRegistrySweep
	}
	if metrics == nil {
		metrics = NopMetrics{}
	}

	manager := &Manager{
		factory:   factory,
		directory: directory,
		logger:    logger,
		metrics:   metrics,
		cfg:       cfg,
		registry:  gocache.New(cfg.RegistryTTL, cfg.RegistrySweep),
	}

	manager.registry.OnEvicted(func(_ string, value any) {
		handle, ok := value.(*Handle)
		if !ok {
			return
		}
		handle.close()
		metrics.ControllerClosed()
	})

	return manager
}

// Open creates a fresh handle with a new sid and starts its controller and
// poller.
func (m *Manager) Open() *Handle {
	sid := uuid.NewString()
	store := m.factory.NewStore()
	logger := m.logger.With(slog.String("sid", sid))

	controller := NewController(store, m.directory, logger, m.metrics)
	controller.Start()

	poller := NewPoller(controller, m.cfg.PollInterval, m.cfg.CheckNowMinDuration, logger, m.metrics)
	poller.Start()

	handle := &Handle{
		SID:        sid,
		Store:      store,
		Controller: controller,
		Poller:     poller,
	}
	m.registry.SetDefault(sid, handle)
	m.metrics.ControllerOpened()

	return handle
}

// Lookup returns the live handle for sid and slides its registry TTL.
func (m *Manager) Lookup(sid string) (*Handle, bool) {
	value, ok := m.registry.Get(sid)
	if !ok {
		return nil, false
	}
	handle, ok := value.(*Handle)
	if !ok {
		return nil, false
	}
	m.registry.SetDefault(sid, handle)

	return handle, true
}

// Discard removes and tears down the handle for sid. Unknown sids are a no-op.
func (m *Manager) Discard(sid string) {
	m.registry.Delete(sid)
}

// Close tears down every live controller. Used on shutdown.
func (m *Manager) Close() {
	for sid := range m.registry.Items() {
		m.registry.Delete(sid)
	}
}
