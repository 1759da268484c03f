// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DatasetRows is the number of normalized records held in memory per dataset.
	DatasetRows = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "orgmap_dataset_rows",
		Help: "Normalized records loaded per dataset.",
	}, []string{"dataset"})

	// CandidateFailures counts candidate CSV locations that failed during load.
	CandidateFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orgmap_candidate_failures_total",
		Help: "Dataset candidate fetch/parse failures.",
	}, []string{"dataset"})

	// ViewEvents counts view-state commands applied, by command type.
	ViewEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orgmap_view_events_total",
		Help: "View-state commands applied to sessions.",
	}, []string{"type"})

	// Sessions is the number of live view-state sessions.
	Sessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "orgmap_sessions",
		Help: "Live view-state sessions.",
	})

	// InFlight is the number of HTTP requests currently being served.
	InFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "orgmap_http_in_flight_requests",
		Help: "HTTP requests currently being served.",
	})
)
