package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/contentforge/core"
)

func testRecord(runID, product, status string, started time.Time) RunRecord {
	return RunRecord{
		RunID:   runID,
		Product: product,
		Status:  status,
		Statuses: map[string]string{
			"parser":    "completed",
			"questions": "completed",
		},
		StartedAt:  started,
		FinishedAt: started.Add(3 * time.Second),
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	base := time.Now()
	require.NoError(t, s.SaveRun(ctx, testRecord("run-1", "Serum A", RunCompleted, base)))
	require.NoError(t, s.SaveRun(ctx, testRecord("run-2", "Serum B", RunFailed, base.Add(time.Minute))))
	require.NoError(t, s.SaveRun(ctx, testRecord("run-3", "Serum A", RunCompleted, base.Add(2*time.Minute))))

	runs, err := s.ListRuns(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "run-3", runs[0].RunID, "most recent first")

	runs, err = s.ListRuns(ctx, Filter{Product: "Serum A"})
	require.NoError(t, err)
	assert.Len(t, runs, 2)

	runs, err = s.ListRuns(ctx, Filter{Status: RunFailed})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-2", runs[0].RunID)

	runs, err = s.ListRuns(ctx, Filter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()

	db, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s, err := NewSQLiteStore(db)
	require.NoError(t, err)

	started := time.Now().UTC().Truncate(time.Second)
	rec := testRecord("run-1", "GlowBoost Vitamin C Serum", RunCompleted, started)
	rec.Error = ""

	require.NoError(t, s.SaveRun(ctx, rec))

	runs, err := s.ListRuns(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	assert.Equal(t, rec.RunID, got.RunID)
	assert.Equal(t, rec.Product, got.Product)
	assert.Equal(t, RunCompleted, got.Status)
	assert.Equal(t, rec.Statuses, got.Statuses)
	assert.True(t, got.StartedAt.Equal(rec.StartedAt), "started_at round trip")
	assert.True(t, got.FinishedAt.Equal(rec.FinishedAt), "finished_at round trip")
}

func TestSQLiteStoreFilters(t *testing.T) {
	ctx := context.Background()

	db, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s, err := NewSQLiteStore(db)
	require.NoError(t, err)

	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, s.SaveRun(ctx, testRecord("run-1", "Serum A", RunCompleted, base)))
	require.NoError(t, s.SaveRun(ctx, testRecord("run-2", "Serum B", RunFailed, base.Add(time.Minute))))

	runs, err := s.ListRuns(ctx, Filter{Status: RunFailed})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-2", runs[0].RunID)

	runs, err = s.ListRuns(ctx, Filter{Product: "Serum A"})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-1", runs[0].RunID)

	runs, err = s.ListRuns(ctx, Filter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-2", runs[0].RunID, "most recent first")
}

func TestStatusSnapshot(t *testing.T) {
	snap := StatusSnapshot(map[string]core.Status{
		"parser": core.StatusCompleted,
		"faq":    core.StatusPending,
	})

	assert.Equal(t, map[string]string{"parser": "completed", "faq": "pending"}, snap)
}
