// Package configs manages application configuration: server, storage,
// database, KV store, message queue, classifier and organizer settings.
// Multiple file formats are supported (YAML, JSON, TOML, dotenv) and hot
// reload can be enabled.
//
// Example:
//
//	err := configs.InitConfig("./")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	config := configs.GetConfig()
//	fmt.Println(config.Server.Port)
//
// Example accessing DB config:
//
//	config := configs.GetConfig()
//	dsn := config.DB.GetDSN()
//	fmt.Println("DSN:", dsn)
package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// AppVersion is stamped into tracing resources and event headers.
const AppVersion = "1.0.0"

type (
	// AppConfig is the aggregated application configuration.
	AppConfig struct {
		Server     ServerConfig     `mapstructure:"server"`
		Log        LogConfig        `mapstructure:"log"`
		DB         DBConfig         `mapstructure:"db"`
		S3         S3Config         `mapstructure:"s3"`
		KV         KVConfig         `mapstructure:"kv"`
		MQ         MQConfig         `mapstructure:"mq"`
		Events     EventsConfig     `mapstructure:"events"`
		Metrics    MetricsConfig    `mapstructure:"metrics"`
		Tracing    TracingConfig    `mapstructure:"tracing"`
		RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
		Classifier ClassifierConfig `mapstructure:"classifier"`
		Organizer  OrganizerConfig  `mapstructure:"organizer"`
	}
)

var (
	// globalConfig is the process-wide configuration instance.
	globalConfig AppConfig
	// appViper is the process-wide viper instance.
	appViper *viper.Viper
)

// InitConfig loads the application configuration. path may point to a
// concrete file or to a directory containing config.{yaml,yml,json,toml,env}.
func InitConfig(path string) error {
	appViper = viper.New()
	setAllDefaults(appViper)

	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		// A file path: viper detects the type from the extension.
		appViper.SetConfigFile(path)
	} else {
		appViper.SetConfigName("config")
		appViper.AddConfigPath(path)
		appViper.AddConfigPath(filepath.Join(path, "configs"))
	}

	appViper.SetEnvPrefix("ORGANIZER")
	appViper.AutomaticEnv()

	if err := appViper.ReadInConfig(); err != nil {
		// A missing config file is fine, defaults plus env carry the app.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := appViper.Unmarshal(&globalConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	reloadConfigs(appViper, globalConfig.Server.ReloadConfig)

	return nil
}

// setAllDefaults registers the default values of every config section.
func setAllDefaults(v *viper.Viper) {
	var (
		serverConfig     ServerConfig
		logConfig        LogConfig
		dbConfig         DBConfig
		s3Config         S3Config
		kvConfig         KVConfig
		mqConfig         MQConfig
		eventsConfig     EventsConfig
		metricsConfig    MetricsConfig
		tracingConfig    TracingConfig
		rateLimitConfig  RateLimitConfig
		classifierConfig ClassifierConfig
		organizerConfig  OrganizerConfig
	)

	serverConfig.setDefaults(v)
	logConfig.setDefaults(v)
	dbConfig.setDefaults(v)
	s3Config.setDefaults(v)
	kvConfig.setDefaults(v)
	mqConfig.setDefaults(v)
	eventsConfig.setDefaults(v)
	metricsConfig.setDefaults(v)
	tracingConfig.setDefaults(v)
	rateLimitConfig.setDefaults(v)
	classifierConfig.setDefaults(v)
	organizerConfig.setDefaults(v)
}

func reloadConfigs(v *viper.Viper, isHotReload bool) {
	if !isHotReload {
		return
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		fmt.Println("Config file changed:", e.Name)

		if err := v.Unmarshal(&globalConfig); err != nil {
			fmt.Printf("Error reloading config: %v\n", err)
		}
	})
	v.WatchConfig()
}

// GetConfig returns the global configuration instance.
func GetConfig() *AppConfig {
	return &globalConfig
}

// GetViper returns the global viper instance.
func GetViper() *viper.Viper {
	return appViper
}
