package sink

import (
	"context"
	"sync"
)

// MemorySink is a trivial in-process Sink implementation useful for tests,
// examples and single-process prototypes. It keeps documents in a map guarded
// by an RWMutex.
//
// This implementation is intentionally minimal; it does not enforce retention
// limits or eviction. For durable output, use FileSink.
type MemorySink struct {
	mu   sync.RWMutex
	docs map[string]any
}

// NewMemorySink returns an empty in-memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{docs: make(map[string]any)}
}

// Write implements Sink.
func (s *MemorySink) Write(ctx context.Context, name string, doc any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[name] = doc

	return nil
}

// Get returns the stored document or ErrNotFound.
func (s *MemorySink) Get(name string) (any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[name]
	if !ok {
		return nil, ErrNotFound
	}

	return doc, nil
}

// List returns the stored document names. The slice is a snapshot and safe
// for caller mutation.
func (s *MemorySink) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.docs))
	for name := range s.docs {
		names = append(names, name)
	}

	return names
}

// Len returns the number of stored documents.
func (s *MemorySink) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.docs)
}
