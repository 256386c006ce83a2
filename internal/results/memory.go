package results

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore keeps quiz results for the life of the process. It backs the
// leaderboard when no database is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	best map[int64]Result
}

// NewMemoryStore creates an empty in-memory results store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{best: make(map[int64]Result)}
}

// Record stores the result, keeping only each user's best run.
func (m *MemoryStore) Record(_ context.Context, r Result) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	prev, ok := m.best[r.UserID]
	if !ok || betterThan(r, prev) {
		m.best[r.UserID] = r
	}
	return nil
}

// Top returns up to limit best results, ordered best-first.
func (m *MemoryStore) Top(_ context.Context, limit int) ([]Result, error) {
	m.mu.RLock()
	out := make([]Result, 0, len(m.best))
	for _, r := range m.best {
		out = append(out, r)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return betterThan(out[i], out[j]) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
