package core

import (
	"fmt"
	"sync"
	"time"
)

// SharedState is the append-once result container propagated between agents.
// Keys are agent names (plus the reserved InputKey); values are the results
// committed by the engine. It is safe for concurrent access.
//
// Contract:
//   - Set is append-once: committing a key twice is an error
//   - Mutations update the Updated timestamp
//   - Snapshot returns a defensive copy to avoid external mutation
//   - Keys returns names in commit order.
type SharedState struct {
	values  map[string]any
	order   []string
	created time.Time
	updated time.Time
	mu      sync.RWMutex
}

// NewSharedState creates an empty shared state.
func NewSharedState() *SharedState {
	now := time.Now()
	return &SharedState{values: map[string]any{}, order: []string{}, created: now, updated: now}
}

// Get returns the value and existence flag for a key.
func (s *SharedState) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set commits a key/value pair. Committing an existing key returns an error
// so a completed agent's result can never be silently overwritten.
func (s *SharedState) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.values[key]; exists {
		return fmt.Errorf("shared state key %q already committed", key)
	}
	s.values[key] = value
	s.order = append(s.order, key)
	s.updated = time.Now()
	return nil
}

// Has reports whether a key has been committed.
func (s *SharedState) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.values[key]
	return ok
}

// Len returns the number of committed keys.
func (s *SharedState) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// Keys returns committed keys in commit order as a defensive copy.
func (s *SharedState) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, len(s.order))
	copy(keys, s.order)
	return keys
}

// Snapshot returns a copy of the full value map to prevent callers from
// mutating internal state.
func (s *SharedState) Snapshot() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := make(map[string]any, len(s.values))
	for k, v := range s.values {
		snap[k] = v
	}
	return snap
}

// Updated returns the timestamp of the most recent commit.
func (s *SharedState) Updated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updated
}
