package http

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	bucketCleanupThreshold = 1 * time.Hour
	cleanupInterval        = 30 * time.Minute
)

type clientBucket struct {
	tokens     int
	lastRefill time.Time
}

// RateLimiter hands each client IP capacity requests per refill window.
// Buckets idle for longer than bucketCleanupThreshold are evicted by the
// cache janitor.
type RateLimiter struct {
	mu        sync.Mutex
	capacity  int
	refillDur time.Duration
	clients   *cache.Cache
	now       func() time.Time
}

func NewRateLimiter(capacity int, refillDur time.Duration) *RateLimiter {
	return &RateLimiter{
		capacity:  capacity,
		refillDur: refillDur,
		clients:   cache.New(bucketCleanupThreshold, cleanupInterval),
		now:       time.Now,
	}
}

func (r *RateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	v, exists := r.clients.Get(ip)

	if !exists {
		r.clients.SetDefault(ip, &clientBucket{
			tokens:     r.capacity - 1,
			lastRefill: now,
		})
		return r.capacity > 0
	}

	bucket := v.(*clientBucket)
	if now.Sub(bucket.lastRefill) >= r.refillDur {
		bucket.tokens = r.capacity
		bucket.lastRefill = now
	}
	// reinsertar renueva la expiración del bucket
	r.clients.SetDefault(ip, bucket)

	if bucket.tokens <= 0 {
		return false
	}

	bucket.tokens--
	return true
}

// Clients reports how many client buckets are currently tracked.
func (r *RateLimiter) Clients() int {
	return r.clients.ItemCount()
}
