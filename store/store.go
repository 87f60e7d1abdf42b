package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/hupe1980/contentforge/core"
)

// Run outcome values stored in RunRecord.Status.
const (
	RunCompleted = "completed"
	RunFailed    = "failed"
)

// RunRecord captures one pipeline run.
type RunRecord struct {
	RunID      string            `json:"run_id"`
	Product    string            `json:"product"` // product name the run generated content for
	Status     string            `json:"status"`  // RunCompleted or RunFailed
	Error      string            `json:"error,omitempty"`
	Statuses   map[string]string `json:"statuses"` // final per-agent statuses
	StartedAt  time.Time         `json:"started_at"`
	FinishedAt time.Time         `json:"finished_at"`
}

// Filter limits run queries.
type Filter struct {
	Product string
	Status  string
	Limit   int
}

// Store persists run records.
type Store interface {
	SaveRun(ctx context.Context, rec RunRecord) error
	ListRuns(ctx context.Context, filter Filter) ([]RunRecord, error)
}

// StatusSnapshot converts the engine's status map into the stored form.
func StatusSnapshot(statuses map[string]core.Status) map[string]string {
	out := make(map[string]string, len(statuses))
	for name, status := range statuses {
		out[name] = status.String()
	}

	return out
}

// MemoryStore keeps run records in memory.
type MemoryStore struct {
	mu   sync.Mutex
	runs []RunRecord
}

// NewMemoryStore returns an in-memory run store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SaveRun appends a run record.
func (s *MemoryStore) SaveRun(_ context.Context, rec RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, rec)

	return nil
}

// ListRuns returns filtered run records, most recent first.
func (s *MemoryStore) ListRuns(_ context.Context, filter Filter) ([]RunRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]RunRecord, 0, len(s.runs))

	for i := len(s.runs) - 1; i >= 0; i-- {
		rec := s.runs[i]
		if filter.Product != "" && rec.Product != filter.Product {
			continue
		}

		if filter.Status != "" && rec.Status != filter.Status {
			continue
		}

		out = append(out, rec)

		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}

	return out, nil
}

// encodeStatuses marshals the per-agent status map into JSON.
func encodeStatuses(statuses map[string]string) ([]byte, error) {
	if statuses == nil {
		return []byte("null"), nil
	}

	return json.Marshal(statuses)
}

// decodeStatuses parses a JSON status map.
func decodeStatuses(raw []byte) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var out map[string]string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// normalizeTime ensures timestamps are stored in UTC.
func normalizeTime(value time.Time) time.Time {
	if value.IsZero() {
		return value
	}

	return value.UTC()
}
