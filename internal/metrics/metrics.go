// Package metrics provides Prometheus metrics collection for the order service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// SelectionEventsTotal tracks selection events by product kind and result.
	SelectionEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "selection_events_total",
			Help: "Total number of selection events processed",
		},
		[]string{"kind", "result"},
	)

	// SubmissionsTotal tracks order submissions by terminal status.
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_submissions_total",
			Help: "Total number of order submissions by terminal status",
		},
		[]string{"status"},
	)

	// SubmissionPhaseDuration tracks the duration of each submission phase.
	SubmissionPhaseDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_submission_phase_duration_seconds",
			Help:    "Duration of submission workflow phases in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
		[]string{"phase"},
	)

	// ActiveForms tracks the number of live form sessions.
	ActiveForms = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_forms",
			Help: "Number of form sessions currently held in memory",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordSelection records a processed selection event.
func RecordSelection(kind, result string) {
	SelectionEventsTotal.WithLabelValues(kind, result).Inc()
}

// RecordSubmission records a submission outcome.
func RecordSubmission(status string) {
	SubmissionsTotal.WithLabelValues(status).Inc()
}

// RecordSubmissionPhase records the duration of a single workflow phase.
func RecordSubmissionPhase(phase string, duration time.Duration) {
	SubmissionPhaseDuration.WithLabelValues(phase).Observe(duration.Seconds())
}

// SetActiveForms updates the live form session gauge.
func SetActiveForms(n int) {
	ActiveForms.Set(float64(n))
}
