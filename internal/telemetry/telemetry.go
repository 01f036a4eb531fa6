// Package telemetry exposes pipeline counters on a private Prometheus
// registry served at /metrics.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Telemetry holds the service's metric instruments.
type Telemetry struct {
	registry *prometheus.Registry

	// Actions counts recommendation actions by outcome (ok, error).
	Actions *prometheus.CounterVec
	// Upstream counts outbound calls by target (discover, videos, chat)
	// and outcome (ok, error).
	Upstream *prometheus.CounterVec
	// Memo counts memo lookups by result (hit, miss).
	Memo *prometheus.CounterVec
}

// New creates a Telemetry with all instruments registered.
func New() *Telemetry {
	reg := prometheus.NewRegistry()
	t := &Telemetry{
		registry: reg,
		Actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "moodreel",
			Name:      "actions_total",
			Help:      "Recommendation actions by outcome.",
		}, []string{"outcome"}),
		Upstream: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "moodreel",
			Name:      "upstream_requests_total",
			Help:      "Outbound upstream calls by target and outcome.",
		}, []string{"target", "outcome"}),
		Memo: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "moodreel",
			Name:      "memo_lookups_total",
			Help:      "Memo cache lookups by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(t.Actions, t.Upstream, t.Memo)
	return t
}

// ObserveMemo records one memo lookup.
func (t *Telemetry) ObserveMemo(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	t.Memo.WithLabelValues(result).Inc()
}

// ObserveUpstream records one outbound call.
func (t *Telemetry) ObserveUpstream(target string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	t.Upstream.WithLabelValues(target, outcome).Inc()
}

// Handler serves the registry in Prometheus exposition format.
func (t *Telemetry) Handler() http.Handler {
	return promhttp.HandlerFor(t.registry, promhttp.HandlerOpts{})
}
