package kv

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang/groupcache"

	"github.com/Himan2899/SmartFileOrganizer/pkg/configs"
)

// GroupcacheKV is a groupcache-backed KV implementation.
type GroupcacheKV struct {
	cache  *groupcache.Group
	peers  *groupcache.HTTPPool
	getter groupcache.Getter
	data   map[string][]byte
	mu     sync.RWMutex
}

// groupcacheGetter implements groupcache.Getter against local data.
type groupcacheGetter struct {
	kv *GroupcacheKV
}

func (g *groupcacheGetter) Get(ctx context.Context, key string, dest groupcache.Sink) error {
	g.kv.mu.RLock()
	value, exists := g.kv.data[key]
	g.kv.mu.RUnlock()

	if !exists {
		return fmt.Errorf("key not found: %s", key)
	}

	if err := dest.SetBytes(value); err != nil {
		return fmt.Errorf("failed to set bytes to sink: %w", err)
	}

	return nil
}

// NewGroupcacheKV creates the groupcache KV store.
func NewGroupcacheKV(ctx context.Context, config *configs.KVConfig) (KVStore, error) {
	gcConfig := config.Groupcache

	kv := &GroupcacheKV{
		data: make(map[string][]byte),
	}

	kv.getter = &groupcacheGetter{kv: kv}
	kv.cache = groupcache.NewGroup(gcConfig.Name, gcConfig.CacheBytes, kv.getter)

	// wire the HTTP pool when peers are configured
	if len(gcConfig.Peers) > 0 {
		kv.peers = groupcache.NewHTTPPoolOpts(gcConfig.Self, &groupcache.HTTPPoolOptions{})
		kv.peers.Set(gcConfig.Peers...)
	}

	return kv, nil
}

// Get returns the value for a key.
func (g *GroupcacheKV) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte

	err := g.cache.Get(ctx, key, groupcache.AllocatingByteSliceSink(&data))
	if err != nil {
		return nil, fmt.Errorf("failed to get key: %w", err)
	}

	plain, expired, _, err := decodeWithTTL(data, time.Now())
	if err != nil {
		return nil, err
	}

	if expired {
		g.mu.Lock()
		delete(g.data, key)
		g.mu.Unlock()

		return nil, fmt.Errorf("key not found: %s", key)
	}

	result := make([]byte, len(plain))
	copy(result, plain)

	return result, nil
}

// Set stores a value, wrapping it with an expiry marker when ttl > 0.
func (g *GroupcacheKV) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	data, _, err := encodeWithTTL(value, ttl)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.data[key] = make([]byte, len(data))
	copy(g.data[key], data)

	return nil
}

// Delete removes a key from the local data.
func (g *GroupcacheKV) Delete(ctx context.Context, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.data, key)

	return nil
}

// Exists reports whether a key exists locally.
func (g *GroupcacheKV) Exists(ctx context.Context, key string) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, exists := g.data[key]

	return exists, nil
}

// Keys lists local keys. A pattern ending in "*" matches by prefix.
func (g *GroupcacheKV) Keys(ctx context.Context, pattern string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	prefix, wildcard := strings.CutSuffix(pattern, "*")

	keys := make([]string, 0, len(g.data))
	for key := range g.data {
		switch {
		case pattern == "":
			keys = append(keys, key)
		case wildcard && strings.HasPrefix(key, prefix):
			keys = append(keys, key)
		case key == pattern:
			keys = append(keys, key)
		}
	}

	return keys, nil
}

// Close is a no-op, groupcache has no explicit shutdown.
func (g *GroupcacheKV) Close() error {
	return nil
}

func init() {
	RegisterKVFactory(KVTypeGroupcache, NewGroupcacheKV)
}
