package runstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps runs in the "runs" table of a SQLite file.
type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

// NewSQLiteStore returns a store for the database file at path; call Init before use.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

// Init opens the database, pings it and creates the schema if missing.
//
// Errors: an empty path, or any driver error.
func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("runstore: sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

// SaveRun upserts run by id. The tour is stored as a JSON array.
//
// Errors: ErrMissingID, ErrNotInitialized, driver errors.
func (s *SQLiteStore) SaveRun(ctx context.Context, run Run) error {
	if err := checkRun(run); err != nil {
		return err
	}
	db, err := s.getDB()
	if err != nil {
		return err
	}

	tour, err := json.Marshal(run.Tour)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, source, cities, seed, options, cost, tour, iterations, accepted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			created_at = excluded.created_at,
			source = excluded.source,
			cities = excluded.cities,
			seed = excluded.seed,
			options = excluded.options,
			cost = excluded.cost,
			tour = excluded.tour,
			iterations = excluded.iterations,
			accepted = excluded.accepted
	`, run.ID, run.CreatedAt.UnixNano(), run.Source, run.Cities, run.Seed, run.Options,
		run.Cost, string(tour), run.Iterations, run.Accepted)
	return err
}

// GetRun loads the run with id; ok is false when no row matches.
func (s *SQLiteStore) GetRun(ctx context.Context, id string) (Run, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return Run{}, false, err
	}

	row := db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, false, nil
		}
		return Run{}, false, err
	}
	return run, true, nil
}

// ListRuns returns runs ordered by created_at descending, ties by id.
func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs ORDER BY created_at DESC, id ASC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Run, 0)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

// Close releases the database handle. It is safe to call more than once.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrNotInitialized
	}
	return s.db, nil
}

const runColumns = `id, created_at, source, cities, seed, options, cost, tour, iterations, accepted`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var (
		run     Run
		created int64
		tour    string
	)
	err := row.Scan(&run.ID, &created, &run.Source, &run.Cities, &run.Seed, &run.Options,
		&run.Cost, &tour, &run.Iterations, &run.Accepted)
	if err != nil {
		return Run{}, err
	}
	if err := json.Unmarshal([]byte(tour), &run.Tour); err != nil {
		return Run{}, fmt.Errorf("decode tour of run %s: %w", run.ID, err)
	}
	run.CreatedAt = time.Unix(0, created).UTC()
	return run, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			created_at INTEGER NOT NULL,
			source TEXT NOT NULL,
			cities INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			options TEXT NOT NULL,
			cost REAL NOT NULL,
			tour TEXT NOT NULL,
			iterations INTEGER NOT NULL,
			accepted INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS runs_created_at ON runs (created_at);
	`)
	return err
}
