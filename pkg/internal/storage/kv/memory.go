package kv

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Himan2899/SmartFileOrganizer/pkg/configs"
)

// MemoryKV is an in-memory KV backed by sync.Map.
type MemoryKV struct {
	data sync.Map
}

// NewMemoryKV creates the in-memory KV store.
func NewMemoryKV(ctx context.Context, config *configs.KVConfig) (KVStore, error) {
	// the memory backend needs no configuration
	return &MemoryKV{}, nil
}

// Get returns the value for a key.
func (m *MemoryKV) Get(ctx context.Context, key string) ([]byte, error) {
	value, exists := m.data.Load(key)
	if !exists {
		return nil, fmt.Errorf("key not found: %s", key)
	}

	data, ok := value.([]byte)
	if !ok {
		return nil, fmt.Errorf("invalid value type for key: %s", key)
	}

	plain, expired, _, err := decodeWithTTL(data, time.Now())
	if err != nil {
		return nil, err
	}

	if expired {
		m.data.Delete(key)

		return nil, fmt.Errorf("key not found: %s", key)
	}

	// return a copy
	result := make([]byte, len(plain))
	copy(result, plain)

	return result, nil
}

// Set stores a value, wrapping it with an expiry marker when ttl > 0.
func (m *MemoryKV) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	data, _, err := encodeWithTTL(value, ttl)
	if err != nil {
		return err
	}

	stored := make([]byte, len(data))
	copy(stored, data)

	m.data.Store(key, stored)

	return nil
}

// Delete removes a key.
func (m *MemoryKV) Delete(ctx context.Context, key string) error {
	m.data.Delete(key)

	return nil
}

// Exists reports whether a key exists.
func (m *MemoryKV) Exists(ctx context.Context, key string) (bool, error) {
	_, exists := m.data.Load(key)

	return exists, nil
}

// Keys lists keys. A pattern ending in "*" matches by prefix.
func (m *MemoryKV) Keys(ctx context.Context, pattern string) ([]string, error) {
	keys := make([]string, 0)
	prefix, wildcard := strings.CutSuffix(pattern, "*")

	m.data.Range(func(key, value any) bool {
		k, ok := key.(string)
		if !ok {
			return true
		}

		switch {
		case pattern == "":
			keys = append(keys, k)
		case wildcard && strings.HasPrefix(k, prefix):
			keys = append(keys, k)
		case k == pattern:
			keys = append(keys, k)
		}

		return true
	})

	return keys, nil
}

// Close is a no-op for the memory backend.
func (m *MemoryKV) Close() error {
	return nil
}

func init() {
	RegisterKVFactory(KVTypeMemory, NewMemoryKV)
}
