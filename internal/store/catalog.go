package store

import (
	"sync"
	"time"

	"football-stats-service/internal/domain/competitions"
)

// CatalogStore keeps a thread-safe snapshot of the competition catalog in memory.
type CatalogStore struct {
	mu        sync.RWMutex
	items     []competitions.Competition
	updatedAt time.Time
	now       func() time.Time
}

// NewCatalogStore constructs an empty CatalogStore.
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{now: time.Now}
}

// ListCompetitions returns a copy of the current catalog.
func (s *CatalogStore) ListCompetitions() []competitions.Competition {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]competitions.Competition, len(s.items))
	copy(result, s.items)
	return result
}

// SetCompetitions replaces the catalog with a new snapshot.
func (s *CatalogStore) SetCompetitions(items []competitions.Competition) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]competitions.Competition, len(items))
	copy(s.items, items)
	s.updatedAt = s.now()
}

// Loaded reports whether a snapshot has been stored, even an empty one.
func (s *CatalogStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.updatedAt.IsZero()
}
