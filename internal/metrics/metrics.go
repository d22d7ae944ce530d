// Package metrics exposes Prometheus instrumentation for the resolution
// pipeline. Collectors are registered once at package load via promauto.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	resolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portfoliochat",
		Name:      "resolutions_total",
		Help:      "Chat resolutions by provenance source",
	}, []string{"source"})

	completionOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portfoliochat",
		Subsystem: "gemini",
		Name:      "completion_outcomes_total",
		Help:      "Remote completion attempts by classified outcome",
	}, []string{"outcome"})

	resolutionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "portfoliochat",
		Name:      "resolution_duration_seconds",
		Help:      "End-to-end resolution latency",
		Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 2, 4, 8, 10},
	})
)

// RecordResolution counts a finished resolution and observes its latency.
func RecordResolution(source string, d time.Duration) {
	resolutionsTotal.WithLabelValues(source).Inc()
	resolutionDuration.Observe(d.Seconds())
}

// RecordCompletionOutcome counts a classified remote completion outcome.
func RecordCompletionOutcome(outcome string) {
	completionOutcomesTotal.WithLabelValues(outcome).Inc()
}
