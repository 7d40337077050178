package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups every collector the API exposes on /metrics.
type Metrics struct {
	RequestCounter     *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
	TenantResolutions  *prometheus.CounterVec
	AuthzDecisions     *prometheus.CounterVec
	ImageUploads       *prometheus.CounterVec
	ImageUploadLatency prometheus.Histogram
	QueueMessages      *prometheus.CounterVec
}

// New registers the collectors on reg. Tests pass prometheus.NewRegistry() so
// repeated construction never panics on duplicate registration.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		TenantResolutions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tenant_resolutions_total",
				Help:      "Tenant resolution outcomes by source",
			},
			[]string{"source", "outcome"},
		),
		AuthzDecisions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "authz_decisions_total",
				Help:      "Route authorization decisions by access level",
			},
			[]string{"access", "decision"},
		),
		ImageUploads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "image_uploads_total",
				Help:      "Image host uploads by outcome",
			},
			[]string{"outcome"},
		),
		ImageUploadLatency: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "image_upload_duration_seconds",
				Help:      "Duration of image uploads including retries",
				Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
			},
		),
		QueueMessages: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "queue_messages_total",
				Help:      "Queue messages by type and outcome",
			},
			[]string{"type", "outcome"},
		),
	}
}
