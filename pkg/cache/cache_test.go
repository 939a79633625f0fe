package cache_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Himan2899/SmartFileOrganizer/pkg/cache"
)

// batchStats is a small value type for cache round-trips.
type batchStats struct {
	FileCount  int     `json:"fileCount"`
	TotalSize  int64   `json:"totalSize"`
	Categories int     `json:"categories"`
	AvgConf    float64 `json:"avgConf"`
}

// mockKVStore is an in-memory KVStore for tests.
type mockKVStore struct {
	data map[string][]byte
}

func newMockKVStore() *mockKVStore {
	return &mockKVStore{
		data: make(map[string][]byte),
	}
}

func (m *mockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if value, exists := m.data[key]; exists {
		return value, nil
	}

	return nil, fmt.Errorf("key not found")
}

func (m *mockKVStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *mockKVStore) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *mockKVStore) Exists(ctx context.Context, key string) (bool, error) {
	_, exists := m.data[key]
	return exists, nil
}

func (m *mockKVStore) Keys(ctx context.Context, pattern string) ([]string, error) {
	keys := make([]string, 0, len(m.data))
	for key := range m.data {
		keys = append(keys, key)
	}

	return keys, nil
}

func (m *mockKVStore) Close() error {
	return nil
}

func TestCacheRoundTrip(t *testing.T) {
	mockStore := newMockKVStore()
	c := cache.NewCache(mockStore)
	ctx := context.Background()

	if _, err := cache.Get[batchStats](ctx, c, "nonexistent"); err == nil {
		t.Error("expected error for nonexistent key")
	}

	stats := batchStats{FileCount: 3, TotalSize: 4096, Categories: 2, AvgConf: 0.91}

	if err := cache.Set(ctx, c, "stats:batch1", stats, 0); err != nil {
		t.Fatalf("failed to set cache: %v", err)
	}

	got, err := cache.Get[batchStats](ctx, c, "stats:batch1")
	if err != nil {
		t.Fatalf("failed to get cache: %v", err)
	}

	if got != stats {
		t.Errorf("retrieved stats %+v do not match original %+v", got, stats)
	}
}

func TestCacheDeleteAndExists(t *testing.T) {
	mockStore := newMockKVStore()
	c := cache.NewCache(mockStore)
	ctx := context.Background()

	exists, err := c.Exists(ctx, "nonexistent")
	if err != nil {
		t.Fatalf("failed to check existence: %v", err)
	}

	if exists {
		t.Error("nonexistent key should not exist")
	}

	if err := cache.Set(ctx, c, "stats:batch2", batchStats{FileCount: 1}, 0); err != nil {
		t.Fatalf("failed to set cache: %v", err)
	}

	exists, err = c.Exists(ctx, "stats:batch2")
	if err != nil {
		t.Fatalf("failed to check existence: %v", err)
	}

	if !exists {
		t.Error("key should exist before deletion")
	}

	if err := c.Delete(ctx, "stats:batch2"); err != nil {
		t.Fatalf("failed to delete cache: %v", err)
	}

	exists, err = c.Exists(ctx, "stats:batch2")
	if err != nil {
		t.Fatalf("failed to check existence after deletion: %v", err)
	}

	if exists {
		t.Error("key should not exist after deletion")
	}
}

func TestGetOrSet(t *testing.T) {
	mockStore := newMockKVStore()
	c := cache.NewCache(mockStore)
	ctx := context.Background()

	callCount := 0
	getter := func() (batchStats, error) {
		callCount++
		return batchStats{FileCount: 5, TotalSize: 1024}, nil
	}

	// first call computes
	first, err := cache.GetOrSet(ctx, c, "stats:batch3", getter, 0)
	if err != nil {
		t.Fatalf("failed to get or set: %v", err)
	}

	if callCount != 1 {
		t.Errorf("expected getter to be called once, got %d", callCount)
	}

	// second call hits the cache
	second, err := cache.GetOrSet(ctx, c, "stats:batch3", getter, 0)
	if err != nil {
		t.Fatalf("failed to get or set: %v", err)
	}

	if callCount != 1 {
		t.Errorf("expected getter to be called only once, got %d", callCount)
	}

	if first != second {
		t.Errorf("results don't match: %+v vs %+v", first, second)
	}
}

func TestGetOrSetGetterError(t *testing.T) {
	mockStore := newMockKVStore()
	c := cache.NewCache(mockStore)
	ctx := context.Background()

	getter := func() (batchStats, error) {
		return batchStats{}, errors.New("getter error")
	}

	_, err := cache.GetOrSet(ctx, c, "stats:error", getter, 0)
	if err == nil {
		t.Error("expected error from getter")
	}

	if err.Error() != "getter error" {
		t.Errorf("expected 'getter error', got '%s'", err.Error())
	}
}

func TestCacheClear(t *testing.T) {
	mockStore := newMockKVStore()
	c := cache.NewCache(mockStore)
	ctx := context.Background()

	for i := range 3 {
		key := fmt.Sprintf("stats:batch%d", i)
		if err := cache.Set(ctx, c, key, batchStats{FileCount: i}, 0); err != nil {
			t.Fatalf("failed to set cache %d: %v", i, err)
		}
	}

	if len(mockStore.data) != 3 {
		t.Errorf("expected 3 items, got %d", len(mockStore.data))
	}

	if err := c.Clear(ctx); err != nil {
		t.Fatalf("failed to clear cache: %v", err)
	}

	if len(mockStore.data) != 0 {
		t.Errorf("expected 0 items after clear, got %d", len(mockStore.data))
	}
}

func TestCacheGenericTypes(t *testing.T) {
	mockStore := newMockKVStore()
	c := cache.NewCache(mockStore)
	ctx := context.Background()

	if err := cache.Set(ctx, c, "string:key", "hello world", 0); err != nil {
		t.Fatalf("failed to set string: %v", err)
	}

	str, err := cache.Get[string](ctx, c, "string:key")
	if err != nil {
		t.Fatalf("failed to get string: %v", err)
	}

	if str != "hello world" {
		t.Errorf("expected 'hello world', got '%s'", str)
	}

	slice := []string{"2024", "03", "document"}

	if err := cache.Set(ctx, c, "slice:key", slice, 0); err != nil {
		t.Fatalf("failed to set slice: %v", err)
	}

	retrieved, err := cache.Get[[]string](ctx, c, "slice:key")
	if err != nil {
		t.Fatalf("failed to get slice: %v", err)
	}

	if len(retrieved) != len(slice) {
		t.Fatalf("slice length mismatch: expected %d, got %d", len(slice), len(retrieved))
	}

	for i, v := range slice {
		if retrieved[i] != v {
			t.Errorf("slice element %d mismatch: expected %s, got %s", i, v, retrieved[i])
		}
	}
}
