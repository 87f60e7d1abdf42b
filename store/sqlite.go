package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// Open opens (creating if needed) the SQLite database at path. The caller
// owns the returned handle and should Close it when done.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open run store: %w", err)
	}

	return db, nil
}

// SQLiteStore persists run records in SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a SQLite-backed run store and ensures schema.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("db is nil")
	}

	if err := ensureRunSchema(db); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

// SaveRun stores a single run record.
func (s *SQLiteStore) SaveRun(ctx context.Context, rec RunRecord) error {
	statuses, err := encodeStatuses(rec.Statuses)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO content_runs (
			run_id, product, status, error_text, statuses_json, started_at, finished_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		rec.RunID,
		rec.Product,
		rec.Status,
		rec.Error,
		string(statuses),
		normalizeTime(rec.StartedAt),
		normalizeTime(rec.FinishedAt),
	)

	return err
}

// ListRuns returns run records matching the filter, most recent first.
func (s *SQLiteStore) ListRuns(ctx context.Context, filter Filter) ([]RunRecord, error) {
	query := `
		SELECT run_id, product, status, error_text, statuses_json, started_at, finished_at
		FROM content_runs
	`

	var args []any

	where := ""
	addFilter := func(clause string, value any) {
		if where == "" {
			where = " WHERE " + clause
		} else {
			where += " AND " + clause
		}
		args = append(args, value)
	}

	if filter.Product != "" {
		addFilter("product = ?", filter.Product)
	}

	if filter.Status != "" {
		addFilter("status = ?", filter.Status)
	}

	query += where + " ORDER BY started_at DESC, rowid DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunRecord

	for rows.Next() {
		var (
			rec          RunRecord
			statusesJSON string
			started      sql.NullTime
			finished     sql.NullTime
		)

		if err := rows.Scan(
			&rec.RunID,
			&rec.Product,
			&rec.Status,
			&rec.Error,
			&statusesJSON,
			&started,
			&finished,
		); err != nil {
			return nil, err
		}

		if statusesJSON != "" {
			if statuses, err := decodeStatuses([]byte(statusesJSON)); err == nil {
				rec.Statuses = statuses
			}
		}

		if started.Valid {
			rec.StartedAt = started.Time
		}

		if finished.Valid {
			rec.FinishedAt = finished.Time
		}

		runs = append(runs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return runs, nil
}

func ensureRunSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS content_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			product TEXT,
			status TEXT NOT NULL,
			error_text TEXT,
			statuses_json TEXT,
			started_at TIMESTAMP,
			finished_at TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_content_runs_run ON content_runs(run_id);
		CREATE INDEX IF NOT EXISTS idx_content_runs_status ON content_runs(status);
	`)

	return err
}
