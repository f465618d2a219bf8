package repository

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryCache is an in-process CacheRepository with TTL eviction.
type MemoryCache struct {
	items *cache.Cache
}

func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		items: cache.New(defaultTTL, cleanupInterval),
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	val, ok := m.items.Get(key)
	if !ok {
		return "", false, nil
	}
	s, ok := val.(string)
	return s, ok, nil
}

func (m *MemoryCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = cache.DefaultExpiration
	}
	m.items.Set(key, value, ttl)
	return nil
}

func (m *MemoryCache) ItemCount() int {
	return m.items.ItemCount()
}
