package configs

import "time"

const (
	// Default circuit breaker settings.
	DefaultCBEnabled           = true
	DefaultCBFailureRate       = 0.5
	DefaultCBMinRequests       = 10
	DefaultCBIntervalSeconds   = 60
	DefaultCBTimeoutSeconds    = 30
	DefaultCBMaxRequestsInHalf = 3
)

// CircuitBreakerConfig holds circuit breaker settings for outbound calls.
type CircuitBreakerConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	FailureRate       float64 `mapstructure:"failure_rate"`         // failure ratio threshold [0,1]
	MinRequests       uint32  `mapstructure:"min_requests"`         // min requests before the ratio applies
	IntervalSeconds   int     `mapstructure:"interval_seconds"`     // closed-state counting window
	TimeoutSeconds    int     `mapstructure:"timeout_seconds"`      // open-state duration before half-open
	MaxRequestsInHalf uint32  `mapstructure:"max_requests_in_half"` // concurrent requests allowed half-open
}

// GetInterval returns the counting window as a time.Duration.
func (c *CircuitBreakerConfig) GetInterval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}

// GetTimeout returns the open-state duration as a time.Duration.
func (c *CircuitBreakerConfig) GetTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
