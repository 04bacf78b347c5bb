package testutil

import (
	"testing"
	"time"

	"football-stats-service/internal/cache"
)

// NewTempFSCache returns a filesystem cache rooted in a temp dir.
func NewTempFSCache(t *testing.T, ttl time.Duration) *cache.FS {
	t.Helper()
	c, err := cache.NewFS(t.TempDir(), ttl)
	if err != nil {
		t.Fatalf("failed to create fs cache: %v", err)
	}
	return c
}

// NewMemoryCache returns a memory cache without background sweeping, closed on cleanup.
func NewMemoryCache(t *testing.T, ttl time.Duration) *cache.Memory {
	t.Helper()
	c := cache.NewMemory(ttl, 0)
	t.Cleanup(func() { _ = c.Close() })
	return c
}
