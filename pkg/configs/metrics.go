package configs

import (
	"time"

	"github.com/spf13/viper"
)

// MetricsConfig holds Prometheus metrics settings.
type MetricsConfig struct {
	Enabled         bool              `mapstructure:"enabled"`          // enable metrics
	ServiceName     string            `mapstructure:"service_name"`     // service name
	ServiceVersion  string            `mapstructure:"service_version"`  // service version
	Endpoint        string            `mapstructure:"endpoint"`         // exporter endpoint
	CollectInterval time.Duration     `mapstructure:"collect_interval"` // collection interval
	RuntimeMetrics  bool              `mapstructure:"runtime_metrics"`  // collect runtime metrics
	Pprof           bool              `mapstructure:"pprof"`            // expose pprof endpoints
	Labels          map[string]string `mapstructure:"labels"`           // default labels
}

// setDefaults registers metrics config defaults.
func (c *MetricsConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.service_name", "organizer")
	v.SetDefault("metrics.service_version", AppVersion)
	v.SetDefault("metrics.endpoint", ":9090")
	v.SetDefault("metrics.collect_interval", "15s")
	v.SetDefault("metrics.runtime_metrics", true)
	v.SetDefault("metrics.pprof", false)
	v.SetDefault("metrics.labels", map[string]string{
		"service": "organizer",
		"version": AppVersion,
	})
}
