// Package metrics defines Prometheus instrumentation for the pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Fetch metrics
	FetchRequestsTotal   *prometheus.CounterVec
	FetchDurationSeconds prometheus.Histogram

	// Resolution metrics
	ResolutionsTotal     *prometheus.CounterVec
	RunDurationSeconds   prometheus.Histogram
	CoursesResolvedTotal prometheus.Counter
}

// Resolution tier label values for ResolutionsTotal.
const (
	TierPage    = "page"    // signal extracted from fetched page text
	TierTable   = "table"   // fallback table hit
	TierGeneric = "generic" // generic placeholder
)

// Fetch status label values for FetchRequestsTotal.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusSkipped = "skipped"
)

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	return &Metrics{
		FetchRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "uniscrape_fetch_requests_total",
				Help: "Total number of page fetch attempts by status",
			},
			[]string{"status"},
		),

		FetchDurationSeconds: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "uniscrape_fetch_duration_seconds",
				Help:    "Page fetch duration in seconds",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10}, // Matches 10s fetch timeout
			},
		),

		ResolutionsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "uniscrape_resolutions_total",
				Help: "Total number of duration resolutions by tier",
			},
			[]string{"tier"}, // tier: page, table, generic
		),

		RunDurationSeconds: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "uniscrape_run_duration_seconds",
				Help:    "Full pipeline run duration in seconds",
				Buckets: []float64{1, 5, 15, 30, 60, 120, 300},
			},
		),

		CoursesResolvedTotal: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "uniscrape_courses_resolved_total",
				Help: "Total number of course records resolved",
			},
		),
	}
}

// RecordFetch records the outcome of one page fetch.
func (m *Metrics) RecordFetch(status string, seconds float64) {
	if m == nil {
		return
	}
	m.FetchRequestsTotal.WithLabelValues(status).Inc()
	if status != StatusSkipped {
		m.FetchDurationSeconds.Observe(seconds)
	}
}

// RecordResolution records which tier produced a course's duration.
func (m *Metrics) RecordResolution(tier string) {
	if m == nil {
		return
	}
	m.ResolutionsTotal.WithLabelValues(tier).Inc()
	m.CoursesResolvedTotal.Inc()
}
