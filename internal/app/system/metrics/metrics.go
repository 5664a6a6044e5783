// internal/app/system/metrics/metrics.go
//
// Package metrics holds the Prometheus collectors for list queries and form
// submissions, registered on a private registry served at /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for form submissions.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeLimited  = "limited"
)

// Metrics bundles the application's collectors.
type Metrics struct {
	reg *prometheus.Registry

	ListQueries     *prometheus.CounterVec
	ListResults     *prometheus.HistogramVec
	FormSubmissions *prometheus.CounterVec
	MissingFields   *prometheus.CounterVec
}

// New builds a registry with the application collectors plus the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		reg: reg,
		ListQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "consulthub",
			Name:      "list_queries_total",
			Help:      "List page renders by page and whether a search term was present.",
		}, []string{"page", "searched"}),
		ListResults: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "consulthub",
			Name:      "list_results",
			Help:      "Records returned per list page render.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50},
		}, []string{"page"}),
		FormSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "consulthub",
			Name:      "consultation_submissions_total",
			Help:      "Start-consultation submissions by outcome.",
		}, []string{"outcome"}),
		MissingFields: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "consulthub",
			Name:      "consultation_missing_fields_total",
			Help:      "Required fields absent from rejected submissions.",
		}, []string{"field"}),
	}
	reg.MustRegister(
		m.ListQueries,
		m.ListResults,
		m.FormSubmissions,
		m.MissingFields,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveList records one list page render. Safe on a nil receiver.
func (m *Metrics) ObserveList(page string, searched bool, results int) {
	if m == nil {
		return
	}
	s := "false"
	if searched {
		s = "true"
	}
	m.ListQueries.WithLabelValues(page, s).Inc()
	m.ListResults.WithLabelValues(page).Observe(float64(results))
}

// ObserveSubmission records one form submission. Safe on a nil receiver.
func (m *Metrics) ObserveSubmission(missing []string) {
	if m == nil {
		return
	}
	if len(missing) == 0 {
		m.FormSubmissions.WithLabelValues(OutcomeAccepted).Inc()
		return
	}
	m.FormSubmissions.WithLabelValues(OutcomeRejected).Inc()
	for _, f := range missing {
		m.MissingFields.WithLabelValues(f).Inc()
	}
}

// ObserveLimited records a submission refused by the rate limiter.
// Safe on a nil receiver.
func (m *Metrics) ObserveLimited() {
	if m == nil {
		return
	}
	m.FormSubmissions.WithLabelValues(OutcomeLimited).Inc()
}

// Registry exposes the underlying registry for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

// Handler serves the exposition format for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}
