package cache

import (
	"context"
	"sync"
	"time"

	"inkwell/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// PageStore holds rendered page output under a fixed key with a TTL. It is
// injected into the handlers that use it rather than accessed as an ambient
// singleton, so tests can swap in a memory or no-op store.
//
// A hit returns the stored bytes verbatim even if the underlying data changed
// in the interim; staleness up to one TTL window is intentional. Only expiry
// or an explicit Clear invalidates an entry — ordinary mutations never do.
type PageStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Clear(ctx context.Context, key string) error
}

// RedisPageStore backs the page cache with Redis.
type RedisPageStore struct {
	client *redis.Client
}

// NewRedisPageStore returns a PageStore backed by the given Redis client.
func NewRedisPageStore(client *redis.Client) *RedisPageStore {
	return &RedisPageStore{client: client}
}

func (s *RedisPageStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		middleware.CacheMisses.WithLabelValues("page").Inc()
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	middleware.CacheHits.WithLabelValues("page").Inc()
	return b, true, nil
}

func (s *RedisPageStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

func (s *RedisPageStore) Clear(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

type memoryPage struct {
	value     []byte
	expiresAt time.Time
}

// MemoryPageStore is an in-process PageStore. It serves single-instance
// deployments without Redis and is the default store in tests. Safe for
// concurrent readers and writers; two concurrent misses recomputing the same
// key both write, last writer wins.
type MemoryPageStore struct {
	mu      sync.RWMutex
	entries map[string]memoryPage
}

// NewMemoryPageStore returns an empty in-process PageStore.
func NewMemoryPageStore() *MemoryPageStore {
	return &MemoryPageStore{entries: make(map[string]memoryPage)}
}

func (s *MemoryPageStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		middleware.CacheMisses.WithLabelValues("page").Inc()
		return nil, false, nil
	}
	middleware.CacheHits.WithLabelValues("page").Inc()
	return entry.value, true, nil
}

func (s *MemoryPageStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	s.entries[key] = memoryPage{value: value, expiresAt: time.Now().Add(ttl)}
	s.mu.Unlock()
	return nil
}

func (s *MemoryPageStore) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

// NopPageStore never stores anything. Useful in tests that must observe
// every recomputation.
type NopPageStore struct{}

func (NopPageStore) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (NopPageStore) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NopPageStore) Clear(context.Context, string) error { return nil }
