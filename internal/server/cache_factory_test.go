package server

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"football-stats-service/internal/cache"
	"football-stats-service/internal/config"
	"football-stats-service/internal/testutil"
)

func TestBuildCacheSelectsBackend(t *testing.T) {
	mr := miniredis.RunT(t)

	tests := []struct {
		name  string
		cfg   config.CacheConfig
		check func(cache.Cache) bool
	}{
		{name: "default", cfg: config.CacheConfig{}, check: func(c cache.Cache) bool { _, ok := c.(*cache.Memory); return ok }},
		{name: "none", cfg: config.CacheConfig{Backend: config.CacheNone}, check: func(c cache.Cache) bool { _, ok := c.(cache.Noop); return ok }},
		{name: "fs", cfg: config.CacheConfig{Backend: config.CacheFS, Dir: t.TempDir(), TTL: time.Minute}, check: func(c cache.Cache) bool { _, ok := c.(*cache.FS); return ok }},
		{name: "redis", cfg: config.CacheConfig{Backend: config.CacheRedis, RedisAddr: mr.Addr(), TTL: time.Minute}, check: func(c cache.Cache) bool { _, ok := c.(*cache.Redis); return ok }},
		{name: "unknown", cfg: config.CacheConfig{Backend: "memcached"}, check: func(c cache.Cache) bool { _, ok := c.(*cache.Memory); return ok }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := buildCache(tt.cfg, nil)
			defer c.Close()
			if !tt.check(c) {
				t.Fatalf("unexpected cache %T", c)
			}
		})
	}
}

func TestBuildCacheFallsBackWhenRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	logger, buf := testutil.NewBufferLogger()
	c := buildCache(config.CacheConfig{Backend: config.CacheRedis, RedisAddr: addr}, logger)
	defer c.Close()

	if _, ok := c.(*cache.Memory); !ok {
		t.Fatalf("expected memory fallback, got %T", c)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected fallback warning logged")
	}
}
