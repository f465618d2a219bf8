package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type CacheDriver string

const (
	CacheMemory CacheDriver = "memory"
	CacheRedis  CacheDriver = "redis"
	CacheNone   CacheDriver = "none"
)

type Config struct {
	HTTPAddr    string
	CORSOrigins []string

	CacheDriver CacheDriver
	RedisAddr   string
	CacheTTL    time.Duration

	RateLimitCapacity int
	RateLimitWindow   time.Duration

	// Remote dashboard backend (users, reports, settings); empty disables it.
	AccountServiceURL     string
	AccountServiceTimeout time.Duration
}

func FromEnv() Config {
	driver := CacheDriver(strings.ToLower(envOr("CACHE_DRIVER", string(CacheMemory))))
	switch driver {
	case CacheMemory, CacheRedis, CacheNone:
	default:
		log.Printf("Warning: unknown CACHE_DRIVER %q, using %s", driver, CacheMemory)
		driver = CacheMemory
	}

	return Config{
		HTTPAddr:              envOr("HTTP_ADDR", ":8080"),
		CORSOrigins:           csvOr("CORS_ORIGINS", "http://localhost:3000"),
		CacheDriver:           driver,
		RedisAddr:             envOr("REDIS_ADDR", "localhost:6379"),
		CacheTTL:              envDuration("CACHE_TTL", 10*time.Minute),
		RateLimitCapacity:     envInt("RATE_LIMIT_CAPACITY", 60),
		RateLimitWindow:       envDuration("RATE_LIMIT_WINDOW", time.Minute),
		AccountServiceURL:     envOr("ACCOUNT_SERVICE_URL", ""),
		AccountServiceTimeout: envDuration("ACCOUNT_SERVICE_TIMEOUT", 15*time.Second),
	}
}

func envOr(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("Warning: invalid %s=%q, using %d", k, v, def)
		return def
	}
	return n
}

func envDuration(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s=%q, using %s", k, v, def)
		return def
	}
	return d
}

func csvOr(k, def string) []string {
	raw := envOr(k, def)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
