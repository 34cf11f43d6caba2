package storage

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/nt-jambaa/toktok-mini-game/internal/repository"
)

// cachedValue records a lookup result, including absence, so misses are not re-queried
type cachedValue struct {
	Value string
	Found bool
}

// CachedStore is a write-through LRU cache in front of another KeyValueStore.
// Writes reach the backend before the cache is updated, so a failed write never
// leaves the cache ahead of durable state.
type CachedStore struct {
	backend repository.KeyValueStore
	lru     *expirable.LRU[string, *cachedValue]
}

var _ repository.KeyValueStore = (*CachedStore)(nil)

// NewCachedStore wraps backend with an expiring LRU.
// size: maximum number of cached keys
// ttl: time-to-live for cached entries
func NewCachedStore(backend repository.KeyValueStore, size int, ttl time.Duration) *CachedStore {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedStore{
		backend: backend,
		lru:     expirable.NewLRU[string, *cachedValue](size, nil, ttl),
	}
}

func (c *CachedStore) Get(ctx context.Context, key string) (string, bool, error) {
	if entry, ok := c.lru.Get(key); ok {
		return entry.Value, entry.Found, nil
	}

	value, found, err := c.backend.Get(ctx, key)
	if err != nil {
		return "", false, err
	}
	c.lru.Add(key, &cachedValue{Value: value, Found: found})
	return value, found, nil
}

func (c *CachedStore) Set(ctx context.Context, key, value string) error {
	if err := c.backend.Set(ctx, key, value); err != nil {
		c.lru.Remove(key)
		return err
	}
	c.lru.Add(key, &cachedValue{Value: value, Found: true})
	return nil
}

func (c *CachedStore) Delete(ctx context.Context, key string) error {
	if err := c.backend.Delete(ctx, key); err != nil {
		c.lru.Remove(key)
		return err
	}
	c.lru.Add(key, &cachedValue{Found: false})
	return nil
}

func (c *CachedStore) Ping(ctx context.Context) error {
	return c.backend.Ping(ctx)
}

// Close purges the cache and closes the backend
func (c *CachedStore) Close() error {
	c.lru.Purge()
	return c.backend.Close()
}

// Len reports how many keys are cached
func (c *CachedStore) Len() int {
	return c.lru.Len()
}
