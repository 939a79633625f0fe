package configs

import (
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultClassifierModel       = "gpt-4o-mini" // model for document classification
	DefaultClassifierVisionModel = "gpt-4o"      // model for image classification
	DefaultClassifierMaxTokens   = 500           // completion budget for documents
	DefaultVisionMaxTokens       = 300           // completion budget for images
	DefaultClassifierTemperature = 0.1
	DefaultClassifierGroupSize   = 3 // files classified concurrently per group
	DefaultClassifierGroupDelay  = 1 // seconds between groups
	DefaultClassifierTimeout     = 60
)

// ClassifierConfig holds AI classification settings.
type ClassifierConfig struct {
	Enabled         bool                 `mapstructure:"enabled"`
	APIKey          string               `mapstructure:"api_key"`
	BaseURL         string               `mapstructure:"base_url"`
	Model           string               `mapstructure:"model"`
	VisionModel     string               `mapstructure:"vision_model"`
	MaxTokens       int                  `mapstructure:"max_tokens"        rule:"min=1,max=4096"`
	VisionMaxTokens int                  `mapstructure:"vision_max_tokens" rule:"min=1,max=4096"`
	Temperature     float32              `mapstructure:"temperature"       rule:"min=0,max=2"`
	GroupSize       int                  `mapstructure:"group_size"        rule:"min=1,max=32"`
	GroupDelay      int                  `mapstructure:"group_delay"       rule:"min=0,max=60"`
	Timeout         int                  `mapstructure:"timeout"           rule:"min=1,max=600"`
	CircuitBreaker  CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

// GetGroupDelay returns the pause between classification groups.
func (c *ClassifierConfig) GetGroupDelay() time.Duration {
	return time.Duration(c.GroupDelay) * time.Second
}

// GetTimeout returns the per-request timeout.
func (c *ClassifierConfig) GetTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// setDefaults registers classifier config defaults.
func (c *ClassifierConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("classifier.enabled", true)
	v.SetDefault("classifier.api_key", "")
	v.SetDefault("classifier.base_url", "")
	v.SetDefault("classifier.model", DefaultClassifierModel)
	v.SetDefault("classifier.vision_model", DefaultClassifierVisionModel)
	v.SetDefault("classifier.max_tokens", DefaultClassifierMaxTokens)
	v.SetDefault("classifier.vision_max_tokens", DefaultVisionMaxTokens)
	v.SetDefault("classifier.temperature", DefaultClassifierTemperature)
	v.SetDefault("classifier.group_size", DefaultClassifierGroupSize)
	v.SetDefault("classifier.group_delay", DefaultClassifierGroupDelay)
	v.SetDefault("classifier.timeout", DefaultClassifierTimeout)

	v.SetDefault("classifier.circuit_breaker.enabled", DefaultCBEnabled)
	v.SetDefault("classifier.circuit_breaker.failure_rate", DefaultCBFailureRate)
	v.SetDefault("classifier.circuit_breaker.min_requests", DefaultCBMinRequests)
	v.SetDefault("classifier.circuit_breaker.interval_seconds", DefaultCBIntervalSeconds)
	v.SetDefault("classifier.circuit_breaker.timeout_seconds", DefaultCBTimeoutSeconds)
	v.SetDefault("classifier.circuit_breaker.max_requests_in_half", DefaultCBMaxRequestsInHalf)
}
