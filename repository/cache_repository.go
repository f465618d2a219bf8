package repository

import (
	"context"
	"time"
)

// CacheRepository stores string values by key. A ttl of 0 keeps the
// implementation's default expiration.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
