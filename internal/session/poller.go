package session

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Default timings of the pending-approval poller.
const (
	// DefaultPollInterval is how often the poller re-checks for a role.
	DefaultPollInterval = 15 * time.Second
	// DefaultCheckNowMinDuration is the minimum time a manual check reports
	// as "checking". Cosmetic only; it keeps the UI feedback visible.
	DefaultCheckNowMinDuration = 2 * time.Second
)

// Poller re-checks role assignment while, and only while, the controller is
// in StateAuthenticatedNoRole, so a newly approved account is promoted
// without a manual reload. Cancellation is unconditional and idempotent.
type Poller struct {
	controller *Controller
	interval   time.Duration
	minCheck   time.Duration
	logger     *slog.Logger
	metrics    Metrics

	mu          sync.Mutex
	cancelTick  func() // Stops the running tick loop; nil while idle.
	checking    bool
	unsubscribe func()
	closed      bool
}

// NewPoller builds a poller bound to controller. Non-positive durations fall
// back to the defaults.
func NewPoller(controller *Controller, interval, minCheck time.Duration, logger *slog.Logger, metrics Metrics) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if minCheck <= 0 {
		minCheck = DefaultCheckNowMinDuration
	}
	if metrics == nil {
		metrics = NopMetrics{}
	}

	return &Poller{
		controller: controller,
		interval:   interval,
		minCheck:   minCheck,
		logger:     logger,
		metrics:    metrics,
	}
}

// Start subscribes to the controller and aligns the timer with its current
// state.
func (p *Poller) Start() {
	p.mu.Lock()
	if p.closed || p.unsubscribe != nil {
		p.mu.Unlock()

		return
	}
	p.mu.Unlock()

	unsubscribe := p.controller.Subscribe(func(snap Snapshot) {
		p.evaluate(snap.State)
	})

	p.mu.Lock()
	p.unsubscribe = unsubscribe
	p.mu.Unlock()

	p.evaluate(p.controller.Snapshot().State)
}

// Stop cancels the timer and unsubscribes. Stopping twice is safe.
func (p *Poller) Stop() {
	p.mu.Lock()
	p.closed = true
	p.cancelLocked()
	unsubscribe := p.unsubscribe
	p.unsubscribe = nil
	p.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// CheckNow triggers an immediate role re-check, holding the checking
// indicator for at least the configured minimum duration.
func (p *Poller) CheckNow(ctx context.Context) error {
	p.mu.Lock()
	if p.checking {
		p.mu.Unlock()

		return nil
	}
	p.checking = true
	p.mu.Unlock()

	start := time.Now()
	err := p.controller.Refresh(ctx)

	if remaining := p.minCheck - time.Since(start); remaining > 0 {
		select {
		case <-time.After(remaining):
		case <-ctx.Done():
		}
	}

	p.mu.Lock()
	p.checking = false
	p.mu.Unlock()

	return err
}

// Checking reports whether a manual check is in progress.
func (p *Poller) Checking() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.checking
}

// Active reports whether the tick loop is currently running.
func (p *Poller) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.cancelTick != nil
}

func (p *Poller) evaluate(state State) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	if state == StateAuthenticatedNoRole {
		if p.cancelTick == nil {
			p.cancelTick = p.spawnLocked()
		}

		return
	}

	p.cancelLocked()
}

func (p *Poller) spawnLocked() func() {
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.metrics.PollerTick()
				if err := p.controller.Refresh(ctx); err != nil {
					p.logger.Warn("pending-approval poll failed", slog.String("error", err.Error()))
				}
			}
		}
	}()

	return cancel
}

// cancelLocked is idempotent; callers hold p.mu.
func (p *Poller) cancelLocked() {
	if p.cancelTick != nil {
		p.cancelTick()
		p.cancelTick = nil
	}
}
