// Package metrics provides the Prometheus-backed implementation of the
// session metrics contract and the /metrics HTTP handler.
package metrics

import (
	"net/http"

	"gestao/internal/session"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SessionMetrics records session-core measurements into Prometheus.
type SessionMetrics struct {
	signIns           prometheus.Counter
	signOuts          prometheus.Counter
	refreshes         prometheus.Counter
	staleDiscards     prometheus.Counter
	pollerTicks       prometheus.Counter
	guardDecisions    *prometheus.CounterVec
	controllersActive prometheus.Gauge
}

var _ session.Metrics = (*SessionMetrics)(nil)

// NewSessionMetrics builds the collector and registers it with the registry.
func NewSessionMetrics(reg prometheus.Registerer) *SessionMetrics {
	m := &SessionMetrics{
		signIns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gestao_session_sign_ins_total",
			Help: "Total de autenticações bem-sucedidas.",
		}),
		signOuts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gestao_session_sign_outs_total",
			Help: "Total de encerramentos de sessão.",
		}),
		refreshes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gestao_session_refreshes_total",
			Help: "Total de revalidações de sessão.",
		}),
		staleDiscards: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gestao_session_stale_discards_total",
			Help: "Total de resultados de busca descartados por época obsoleta.",
		}),
		pollerTicks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gestao_session_poller_ticks_total",
			Help: "Total de verificações do poller de aprovação pendente.",
		}),
		guardDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gestao_session_guard_decisions_total",
			Help: "Decisões do guard de rota, por resultado.",
		}, []string{"decision"}),
		controllersActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gestao_session_controllers_active",
			Help: "Controladores de sessão vivos no registro.",
		}),
	}

	reg.MustRegister(
		m.signIns,
		m.signOuts,
		m.refreshes,
		m.staleDiscards,
		m.pollerTicks,
		m.guardDecisions,
		m.controllersActive,
	)

	return m
}

// SignIn records one successful authentication.
func (m *SessionMetrics) SignIn() {
	m.signIns.Inc()
}

// SignOut records one session end.
func (m *SessionMetrics) SignOut() {
	m.signOuts.Inc()
}

// Refresh records one session re-validation.
func (m *SessionMetrics) Refresh() {
	m.refreshes.Inc()
}

// StaleDiscard records one fetch result dropped by the epoch check.
func (m *SessionMetrics) StaleDiscard() {
	m.staleDiscards.Inc()
}

// PollerTick records one pending-approval check.
func (m *SessionMetrics) PollerTick() {
	m.pollerTicks.Inc()
}

// GuardDecision records one route guard outcome.
func (m *SessionMetrics) GuardDecision(decision session.Decision) {
	m.guardDecisions.WithLabelValues(string(decision)).Inc()
}

// ControllerOpened records a controller entering the registry.
func (m *SessionMetrics) ControllerOpened() {
	m.controllersActive.Inc()
}

// ControllerClosed records a controller leaving the registry.
func (m *SessionMetrics) ControllerClosed() {
	m.controllersActive.Dec()
}

// Handler exposes the registry in the Prometheus text format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
