package configs

import "github.com/spf13/viper"

// EventsConfig controls event publishing (global and per-topic switches).
type EventsConfig struct {
	Enabled bool              `mapstructure:"enabled"` // master switch
	Batch   BatchEventsConfig `mapstructure:"batch"`
}

// BatchEventsConfig holds per-event switches for the batch domain.
type BatchEventsConfig struct {
	Organized  bool `mapstructure:"organized"`
	Classified bool `mapstructure:"classified"`
	Archived   bool `mapstructure:"archived"`
	Deleted    bool `mapstructure:"deleted"`
}

func (c *EventsConfig) setDefaults(v *viper.Viper) {
	// Master switch: event system enabled by default
	v.SetDefault("events.enabled", true)

	// Batch domain events: the minimal useful set is on by default
	v.SetDefault("events.batch.organized", true)
	v.SetDefault("events.batch.deleted", true)

	// Optional events, off unless needed
	v.SetDefault("events.batch.classified", false)
	v.SetDefault("events.batch.archived", false)
}
