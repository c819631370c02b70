package store

import (
	"context"
	"sync"
)

// InMemoryStore keeps decisions in process memory. Used when no database
// is configured and in tests.
type InMemoryStore struct {
	mu        sync.RWMutex
	decisions map[string][]Decision
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{decisions: make(map[string][]Decision)}
}

func (s *InMemoryStore) Append(_ context.Context, d Decision) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decisions[d.CaseID] = append(s.decisions[d.CaseID], d)
	return nil
}

func (s *InMemoryStore) ListByCase(_ context.Context, caseID string) ([]Decision, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Decision{}, s.decisions[caseID]...), nil
}
