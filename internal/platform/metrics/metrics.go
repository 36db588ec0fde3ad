// Package metrics registers the Prometheus metrics shared across validation
// modules. Methods tolerate a nil receiver so handlers and services can run
// without metrics in tests.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Validation outcomes by module ("intake", "evidence", "packet") and
	// result ("valid", "invalid").
	ValidationOutcome *prometheus.CounterVec

	// Issues emitted, by issue code.
	IssuesEmitted *prometheus.CounterVec

	// Audit log state.
	AuditChainLength prometheus.Gauge
	AuditAppends     *prometheus.CounterVec

	// Request handling latency by route.
	RequestLatency *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		ValidationOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "reggate_validation_outcomes_total",
			Help: "Total validation outcomes by module and result",
		}, []string{"module", "result"}),

		IssuesEmitted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "reggate_validation_issues_total",
			Help: "Total validation issues emitted by issue code",
		}, []string{"code"}),

		AuditChainLength: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "reggate_audit_chain_length",
			Help: "Number of events currently in the audit chain",
		}),

		AuditAppends: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "reggate_audit_appends_total",
			Help: "Total audit append attempts by result",
		}, []string{"result"}), // result: "ok", "chain_mismatch", "rejected"

		RequestLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "reggate_request_duration_seconds",
			Help:    "Duration of request handling by route",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route"}),
	}
}

// IncrementOutcome records one validation outcome for a module.
func (m *Metrics) IncrementOutcome(module string, valid bool) {
	if m == nil {
		return
	}
	result := "invalid"
	if valid {
		result = "valid"
	}
	m.ValidationOutcome.WithLabelValues(module, result).Inc()
}

// CountIssues records emitted issues by code.
func (m *Metrics) CountIssues(codes []string) {
	if m == nil {
		return
	}
	for _, code := range codes {
		m.IssuesEmitted.WithLabelValues(code).Inc()
	}
}

// SetChainLength records the current audit chain length.
func (m *Metrics) SetChainLength(n int) {
	if m == nil {
		return
	}
	m.AuditChainLength.Set(float64(n))
}

// IncrementAppend records one audit append attempt.
func (m *Metrics) IncrementAppend(result string) {
	if m == nil {
		return
	}
	m.AuditAppends.WithLabelValues(result).Inc()
}

// ObserveRequestLatency records handling duration for a route.
func (m *Metrics) ObserveRequestLatency(route string, d time.Duration) {
	if m == nil {
		return
	}
	m.RequestLatency.WithLabelValues(route).Observe(d.Seconds())
}
