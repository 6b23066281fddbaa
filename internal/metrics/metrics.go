// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SubmissionsTotal counts accepted profile submissions by BMI category.
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nutriguide_submissions_total",
		Help: "Total number of accepted profile submissions by BMI category",
	}, []string{"category"})

	// ValidationFailuresTotal counts rejected submissions by offending field.
	ValidationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nutriguide_validation_failures_total",
		Help: "Total number of rejected submissions by field",
	}, []string{"field"})

	// ProfilesStored is the number of rows in the users table, refreshed by
	// Store.Count and bumped on every save.
	ProfilesStored = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "nutriguide_profiles",
		Help: "Number of stored profiles",
	})

	// DashboardViewsTotal counts dashboard renders by section.
	DashboardViewsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nutriguide_dashboard_views_total",
		Help: "Total number of dashboard views by section",
	}, []string{"section"})

	// DatabaseQueryLatency records store query latency by operation.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "nutriguide_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// DatabaseErrorsTotal counts failed store operations.
	DatabaseErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nutriguide_database_errors_total",
		Help: "Total number of failed database operations",
	}, []string{"operation"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
