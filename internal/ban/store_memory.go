package ban

import (
	"context"
	"sort"
	"sync"
)

// InMemoryStore keeps the ban ledger in process memory. Used in tests and
// for local development without a database.
type InMemoryStore struct {
	mu      sync.RWMutex
	entries []BannedIdentity
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Add(_ context.Context, b BannedIdentity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, b)
	return nil
}

func (s *InMemoryStore) Exists(_ context.Context, email, origin string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if (email != "" && e.Email == email) || (origin != "" && e.NetworkOrigin == origin) {
			return true, nil
		}
	}
	return false, nil
}

func (s *InMemoryStore) ListRecent(_ context.Context, limit int) ([]BannedIdentity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]BannedIdentity, len(s.entries))
	copy(out, s.entries)
	sort.Slice(out, func(i, j int) bool {
		return out[i].BannedAt.After(out[j].BannedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *InMemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}
