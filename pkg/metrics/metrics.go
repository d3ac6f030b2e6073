package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DocumentsRegisteredTotal    prometheus.Counter
	ExtractionRunsEnqueuedTotal prometheus.Counter
	RunQueueDepth               prometheus.Gauge
	TableRendersTotal           *prometheus.CounterVec
)

var initOnce sync.Once

// Init registers all collectors. Safe to call more than once; tests share the
// default registry.
func Init() {
	initOnce.Do(register)
}

func register() {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	DocumentsRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "documents_registered_total",
			Help: "Total number of documents registered in the console.",
		},
	)

	ExtractionRunsEnqueuedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "extraction_runs_enqueued_total",
			Help: "Total number of extraction runs handed to the runner queue.",
		},
	)

	RunQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "extraction_runs_in_queue",
			Help: "Current number of extraction runs waiting in the queue.",
		},
	)

	TableRendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "table_renders_total",
			Help: "Total number of table views rendered, by pagination mode.",
		},
		[]string{"mode"},
	)
}
