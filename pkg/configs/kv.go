package configs

import (
	"github.com/spf13/viper"
)

// KVConfig holds key-value store settings.
type KVConfig struct {
	Type       string             `mapstructure:"type"       rule:"oneof=memory redis groupcache"`
	Redis      RedisKVConfig      `mapstructure:"redis"`
	Groupcache GroupcacheKVConfig `mapstructure:"groupcache"`
}

// RedisKVConfig holds Redis KV settings.
type RedisKVConfig struct {
	Addr     string `mapstructure:"addr"     rule:"hostname_port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"       rule:"min=0,max=15"`
}

// GroupcacheKVConfig holds groupcache KV settings.
type GroupcacheKVConfig struct {
	Name       string   `mapstructure:"name"        rule:"required"`
	CacheBytes int64    `mapstructure:"cache_bytes" rule:"min=1048576"` // at least 1MB
	Peers      []string `mapstructure:"peers"`
	Self       string   `mapstructure:"self"        rule:"hostname_port"`
}

// GetKVType returns the configured KV backend type.
func (c *KVConfig) GetKVType() string {
	return c.Type
}

// setDefaults registers KV config defaults.
func (c *KVConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("kv.type", "memory")

	// Redis defaults
	v.SetDefault("kv.redis.addr", "localhost:6379")
	v.SetDefault("kv.redis.password", "")
	v.SetDefault("kv.redis.db", 0)

	const defaultGroupcacheCacheBytes = 512 * 1024 * 1024 // 512MB
	// Groupcache defaults
	v.SetDefault("kv.groupcache.name", "organizer-cache")
	v.SetDefault("kv.groupcache.cache_bytes", defaultGroupcacheCacheBytes)
	v.SetDefault("kv.groupcache.peers", []string{})
	v.SetDefault("kv.groupcache.self", "http://localhost:8080")
}
