// Package metrics provides Prometheus instrumentation shared by modules.
// This is part of the platform layer and contains no business logic.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors exported by the service. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	TaskboardRequests    *prometheus.CounterVec
	TaskboardMergedTasks *prometheus.HistogramVec
	ExportRows           prometheus.Counter
	LookupFailures       *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		TaskboardRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taskboard_requests_total",
			Help: "Call-task board operations by outcome.",
		}, []string{"operation", "outcome"}),
		TaskboardMergedTasks: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "taskboard_merged_tasks",
			Help:    "Tasks contributed per source to a merged board.",
			Buckets: []float64{0, 10, 50, 100, 250, 500, 1000, 5000},
		}, []string{"source"}),
		ExportRows: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taskboard_export_rows_total",
			Help: "Rows written by call-task exports.",
		}),
		LookupFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taskboard_lookup_failures_total",
			Help: "Related-entity lookups that degraded to N/A.",
		}, []string{"entity"}),
	}

	if reg != nil {
		reg.MustRegister(
			m.HTTPRequestsTotal,
			m.HTTPRequestDuration,
			m.TaskboardRequests,
			m.TaskboardMergedTasks,
			m.ExportRows,
			m.LookupFailures,
		)
	}

	return m
}

// ObserveOperation counts a board operation outcome.
func (m *Metrics) ObserveOperation(operation string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.TaskboardRequests.WithLabelValues(operation, outcome).Inc()
}

// ObserveMerged records how many tasks a source contributed.
func (m *Metrics) ObserveMerged(source string, count int) {
	if m == nil {
		return
	}
	m.TaskboardMergedTasks.WithLabelValues(source).Observe(float64(count))
}

// AddExportRows counts exported rows.
func (m *Metrics) AddExportRows(n int) {
	if m == nil {
		return
	}
	m.ExportRows.Add(float64(n))
}

// LookupFailed counts a degraded lookup.
func (m *Metrics) LookupFailed(entity string) {
	if m == nil {
		return
	}
	m.LookupFailures.WithLabelValues(entity).Inc()
}
