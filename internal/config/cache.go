package config

import (
	"strings"
	"time"
)

// Cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheFS     = "fs"
	CacheNone   = "none"
)

// CacheConfig selects and configures the upstream response cache.
type CacheConfig struct {
	Backend       string
	TTL           time.Duration
	Dir           string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func loadCache() CacheConfig {
	return CacheConfig{
		Backend:       strings.ToLower(envOrDefault(envCacheBackend, defaultCacheBackend)),
		TTL:           durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
		Dir:           envOrDefault(envCacheDir, defaultCacheDir),
		RedisAddr:     envOrDefault(envRedisAddr, defaultRedisAddr),
		RedisPassword: envOrDefault(envRedisPassword, ""),
		RedisDB:       nonNegativeIntEnvOrDefault(envRedisDB, 0),
	}
}
