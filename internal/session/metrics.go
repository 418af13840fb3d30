package session

// Metrics receives measurements from the session core. Implementations must
// be safe for concurrent use; the Prometheus-backed implementation lives in
// the infra layer.
type Metrics interface {
	SignIn()
	SignOut()
	Refresh()
	StaleDiscard()
	PollerTick()
	GuardDecision(decision Decision)
	ControllerOpened()
	ControllerClosed()
}

// NopMetrics discards every measurement.
type NopMetrics struct{}

func (NopMetrics) SignIn()                  {}
func (NopMetrics) SignOut()                 {}
func (NopMetrics) Refresh()                 {}
func (NopMetrics) StaleDiscard()            {}
func (NopMetrics) PollerTick()              {}
func (NopMetrics) GuardDecision(_ Decision) {}
func (NopMetrics) ControllerOpened()        {}
func (NopMetrics) ControllerClosed()        {}
