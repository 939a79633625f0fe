// Package cache provides a generic, type-safe cache on top of the KV
// store. Values are serialized as JSON (sonic) and support TTLs.
//
// Basic usage:
//
//	c := cache.NewCache(kvStore)
//
//	stats := BatchStats{FileCount: 3}
//	err := cache.Set(ctx, c, "stats:batch1", stats, time.Hour)
//
//	cached, err := cache.Get[BatchStats](ctx, c, "stats:batch1")
//
//	stats, err := cache.GetOrSet(ctx, c, "stats:batch1", func() (BatchStats, error) {
//	    return computeStats(ctx, batchID)
//	}, time.Hour)
//
// Thread safety follows the underlying KV store. A cache miss is
// returned as an error from the store, not treated specially here.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/storage/kv"
)

// Cache is a KV-backed cache.
type Cache struct {
	kvStore kv.KVStore
}

// NewCache creates a new cache instance.
func NewCache(kvStore kv.KVStore) *Cache {
	return &Cache{
		kvStore: kvStore,
	}
}

// Get fetches and decodes a cached value.
func Get[T any](ctx context.Context, c *Cache, key string) (T, error) {
	var zero T

	data, err := c.kvStore.Get(ctx, key)
	if err != nil {
		return zero, err
	}

	var value T
	if err := sonic.Unmarshal(data, &value); err != nil {
		return zero, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return value, nil
}

// Set encodes and stores a value.
func Set[T any](ctx context.Context, c *Cache, key string, value T, ttl time.Duration) error {
	data, err := sonic.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	return c.kvStore.Set(ctx, key, data, ttl)
}

// Delete removes a cached key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.kvStore.Delete(ctx, key)
}

// Exists reports whether a key is cached.
func (c *Cache) Exists(ctx context.Context, key string) (bool, error) {
	return c.kvStore.Exists(ctx, key)
}

// GetOrSet returns the cached value, computing and storing it on miss.
func GetOrSet[T any](ctx context.Context, c *Cache, key string, getter func() (T, error), ttl time.Duration) (T, error) {
	var zero T

	if value, err := Get[T](ctx, c, key); err == nil {
		return value, nil
	}

	value, err := getter()
	if err != nil {
		return zero, err
	}

	if setErr := Set(ctx, c, key, value, ttl); setErr != nil {
		// cache failure still returns the computed value
		return value, nil
	}

	return value, nil
}

// Clear removes every key the store can enumerate.
func (c *Cache) Clear(ctx context.Context) error {
	keys, err := c.kvStore.Keys(ctx, "*")
	if err != nil {
		return err
	}

	for _, key := range keys {
		if delErr := c.kvStore.Delete(ctx, key); delErr != nil {
			return delErr
		}
	}

	return nil
}
