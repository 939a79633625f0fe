// Package metrics provides Prometheus metrics for the HTTP layer and
// the organization/classification pipeline.
//
// Example:
//
//	err := metrics.InitMetrics(config.Metrics)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	metrics.RequestCounter.WithLabelValues("POST", "/api/v1/organize").Inc()
package metrics

import (
	"net/http"
	_ "net/http/pprof" // registers pprof endpoints

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Himan2899/SmartFileOrganizer/pkg/configs"
)

var (
	// RequestCounter counts HTTP requests.
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint"},
	)

	// RequestDuration measures HTTP request duration.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// ActiveConnections tracks in-flight connections.
	ActiveConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_connections",
			Help: "Number of active connections",
		},
	)

	// FilesOrganized counts files processed by the organization engine.
	FilesOrganized = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "organizer_files_organized_total",
			Help: "Total number of files processed by the organization engine",
		},
	)

	// DuplicatesDetected counts duplicate files found within batches.
	DuplicatesDetected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "organizer_duplicates_detected_total",
			Help: "Total number of duplicate files detected within batches",
		},
	)

	// ClassificationRequests counts classification calls by kind and result.
	ClassificationRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "organizer_classification_requests_total",
			Help: "Total number of AI classification requests",
		},
		[]string{"kind", "result"},
	)

	// ClassificationFallbacks counts responses replaced by the fallback category.
	ClassificationFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "organizer_classification_fallbacks_total",
			Help: "Total number of classification responses replaced by the fallback category",
		},
	)

	// ClassificationDuration measures classification call latency.
	ClassificationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "organizer_classification_duration_seconds",
			Help:    "AI classification call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	// registry is the process-wide Prometheus registry.
	registry = prometheus.NewRegistry()
)

// InitMetrics registers the collectors.
func InitMetrics(config configs.MetricsConfig) error {
	if !config.Enabled {
		return nil
	}

	if config.RuntimeMetrics {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	registry.MustRegister(
		RequestCounter, RequestDuration, ActiveConnections,
		FilesOrganized, DuplicatesDetected,
		ClassificationRequests, ClassificationFallbacks, ClassificationDuration,
	)

	return nil
}

// StartMetricsServer mounts the metrics endpoint on the debug engine.
func StartMetricsServer(config configs.MetricsConfig, debugEngine *gin.Engine) error {
	if !config.Enabled {
		return nil
	}

	debugEngine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	if config.Pprof {
		debugEngine.GET("/debug/pprof/*any", gin.WrapH(http.DefaultServeMux))
	}

	return nil
}

// GetRegistry returns the Prometheus registry.
func GetRegistry() *prometheus.Registry {
	return registry
}

// NewCounter creates and registers a counter metric.
func NewCounter(name, help string, labels []string) *prometheus.CounterVec {
	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
	registry.MustRegister(counter)

	return counter
}

// NewGauge creates and registers a gauge metric.
func NewGauge(name, help string, labels []string) *prometheus.GaugeVec {
	gauge := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
	registry.MustRegister(gauge)

	return gauge
}

// NewHistogram creates and registers a histogram metric.
func NewHistogram(name, help string, labels []string) *prometheus.HistogramVec {
	histogram := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: prometheus.DefBuckets,
		},
		labels,
	)
	registry.MustRegister(histogram)

	return histogram
}
