// Package metrics provides Prometheus metrics for the CMS backend.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReconcileRunsTotal counts reconciliation runs by outcome.
	ReconcileRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cms",
			Name:      "reconcile_runs_total",
			Help:      "Total number of reconciliation runs",
		},
		[]string{"status"},
	)

	// ReconcileAssignedTotal counts committed article assignments per strategy.
	ReconcileAssignedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cms",
			Name:      "reconcile_assigned_total",
			Help:      "Total number of articles assigned to an issue",
		},
		[]string{"strategy"},
	)

	// ReconcileUnmatchedTotal counts candidates with no issue for their publication.
	ReconcileUnmatchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cms",
			Name:      "reconcile_unmatched_total",
			Help:      "Total number of candidate articles without a matching issue",
		},
		[]string{"strategy"},
	)

	// AssignmentEventsTotal counts assignment events sent to the broker.
	AssignmentEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cms",
			Name:      "assignment_events_total",
			Help:      "Total number of published assignment events",
		},
		[]string{"status"},
	)

	// HTTPRequestsTotal counts HTTP requests by route and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cms",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration measures request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cms",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// RecordReconcileRun records the outcome of one reconciliation run.
func RecordReconcileRun(status string) {
	ReconcileRunsTotal.WithLabelValues(status).Inc()
}

// RecordStrategy records matched and unmatched counts for a strategy.
func RecordStrategy(strategy string, assigned, unmatched int) {
	ReconcileAssignedTotal.WithLabelValues(strategy).Add(float64(assigned))
	ReconcileUnmatchedTotal.WithLabelValues(strategy).Add(float64(unmatched))
}

// RecordAssignmentEvent records a publish attempt.
func RecordAssignmentEvent(status string) {
	AssignmentEventsTotal.WithLabelValues(status).Inc()
}

// RecordHTTP records one served request.
func RecordHTTP(method, route, status string, seconds float64) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}
