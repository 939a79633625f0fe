// Package kv provides the key-value store interface and implementations.
package kv

import (
	"context"
	"fmt"
	"time"

	"github.com/Himan2899/SmartFileOrganizer/pkg/configs"
)

// KVStore is the key-value storage interface.
type KVStore interface {
	// Get returns the value for a key.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores a value with an optional TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes a key.
	Delete(ctx context.Context, key string) error
	// Exists reports whether a key exists.
	Exists(ctx context.Context, key string) (bool, error)
	// Keys lists keys matching a pattern (mainly for debugging).
	Keys(ctx context.Context, pattern string) ([]string, error)
	// Close closes the store.
	Close() error
}

// KVType names a key-value backend.
type KVType string

const (
	KVTypeMemory     KVType = "memory"
	KVTypeRedis      KVType = "redis"
	KVTypeGroupcache KVType = "groupcache"
)

// KVFactory builds a KVStore from its config section.
type KVFactory func(ctx context.Context, config *configs.KVConfig) (KVStore, error)

// kvFactories maps KV types to factories.
var kvFactories = make(map[KVType]KVFactory)

// RegisterKVFactory registers a KV factory.
func RegisterKVFactory(kvType KVType, factory KVFactory) {
	kvFactories[kvType] = factory
}

// GetRegisteredKVTypes returns the registered KV types.
func GetRegisteredKVTypes() []KVType {
	types := make([]KVType, 0, len(kvFactories))
	for kvType := range kvFactories {
		types = append(types, kvType)
	}

	return types
}

// New creates the KVStore selected by the config.
func New(ctx context.Context, cfg *configs.KVConfig) (KVStore, error) {
	factory, exists := kvFactories[KVType(cfg.Type)]
	if !exists {
		return nil, fmt.Errorf("unsupported KV type: %s", cfg.Type)
	}

	return factory(ctx, cfg)
}
