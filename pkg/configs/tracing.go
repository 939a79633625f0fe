package configs

import (
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultMaxBatchSize is the default span export batch size.
	DefaultMaxBatchSize = 512
	// DefaultMaxQueueSize is the default span export queue size.
	DefaultMaxQueueSize = 2048
)

// TracingConfig holds OpenTelemetry tracing settings.
type TracingConfig struct {
	Enabled        bool              `mapstructure:"enabled"`         // enable tracing
	ServiceName    string            `mapstructure:"service_name"`    // service name
	ServiceVersion string            `mapstructure:"service_version"` // service version
	ExporterType   string            `mapstructure:"exporter_type"`   // "otlp-http", "otlp-grpc" or "zipkin"
	Endpoint       string            `mapstructure:"endpoint"`        // exporter endpoint
	SampleRate     float64           `mapstructure:"sample_rate"`     // sample rate, 0.0-1.0
	BatchTimeout   time.Duration     `mapstructure:"batch_timeout"`   // batch timeout
	MaxBatchSize   int               `mapstructure:"max_batch_size"`  // max batch size
	MaxQueueSize   int               `mapstructure:"max_queue_size"`  // max queue size
	ResourceLabels map[string]string `mapstructure:"resource_labels"` // resource labels
}

// setDefaults registers tracing config defaults.
func (c *TracingConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "organizer")
	v.SetDefault("tracing.service_version", AppVersion)
	v.SetDefault("tracing.exporter_type", "otlp-http")
	v.SetDefault("tracing.endpoint", "http://localhost:4318")
	v.SetDefault("tracing.sample_rate", 1.0)
	v.SetDefault("tracing.batch_timeout", "5s")
	v.SetDefault("tracing.max_batch_size", DefaultMaxBatchSize)
	v.SetDefault("tracing.max_queue_size", DefaultMaxQueueSize)
	v.SetDefault("tracing.resource_labels", map[string]string{
		"service.name":    "organizer",
		"service.version": AppVersion,
	})
}
