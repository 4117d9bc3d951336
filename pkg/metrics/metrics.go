package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request count
	HTTPRequestCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// Document uploads by outcome
	DocumentUploadCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "document_upload_count",
			Help: "Total number of document upload attempts",
		},
		[]string{"status"}, // status: accepted, rejected
	)

	// Client onboarding count
	ClientIntakeCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "client_intake_count",
			Help: "Total number of clients onboarded through intake",
		},
	)

	// Entity status transitions by kind
	StatusUpdateCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "status_update_count",
			Help: "Total number of entity status updates",
		},
		[]string{"entity"}, // entity: activity, deliverable, use_case, strategy_document
	)
)

// RecordHTTPRequest records one completed HTTP request.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	s := strconv.Itoa(status)
	HTTPRequestDuration.WithLabelValues(method, path, s).Observe(duration.Seconds())
	HTTPRequestCount.WithLabelValues(method, path, s).Inc()
}

// RecordDocumentUpload records an upload attempt outcome.
func RecordDocumentUpload(status string) {
	DocumentUploadCount.WithLabelValues(status).Inc()
}

// RecordClientIntake records a completed client onboarding.
func RecordClientIntake() {
	ClientIntakeCount.Inc()
}

// RecordStatusUpdate records a status transition on an entity kind.
func RecordStatusUpdate(entity string) {
	StatusUpdateCount.WithLabelValues(entity).Inc()
}
