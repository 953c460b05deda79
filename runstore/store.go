// Package runstore persists finished annealing runs.
package runstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/annealtsp/tsp"
)

var (
	// ErrNotInitialized is returned by every operation before Init or after Close.
	ErrNotInitialized = errors.New("runstore: store is not initialized")

	// ErrMissingID is returned by SaveRun for a run without an id.
	ErrMissingID = errors.New("runstore: run id is required")
)

// Run is one finished solve. Tour holds external (1-based) city ids.
type Run struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Source     string    `json:"source"`
	Cities     int       `json:"cities"`
	Seed       int64     `json:"seed"`
	Options    string    `json:"options"`
	Cost       float64   `json:"cost"`
	Tour       []int     `json:"tour"`
	Iterations int       `json:"iterations"`
	Accepted   int       `json:"accepted"`
}

// Store defines persistence operations for runs.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	// ListRuns returns the newest runs first; limit ≤ 0 means all.
	ListRuns(ctx context.Context, limit int) ([]Run, error)
	Close() error
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*SQLiteStore)(nil)
)

// NewRun builds a Run with a fresh id stamped at now.
func NewRun(source string, seed int64, opts tsp.Options, res tsp.Result, tour []int) Run {
	return Run{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		Source:     source,
		Cities:     len(res.Tour),
		Seed:       seed,
		Options:    OptionsSummary(opts),
		Cost:       res.Cost,
		Tour:       append([]int(nil), tour...),
		Iterations: res.Stats.Iterations,
		Accepted:   res.Stats.Accepted,
	}
}

// OptionsSummary renders the schedule parameters of opts on one line.
func OptionsSummary(opts tsp.Options) string {
	s := fmt.Sprintf("iterations=%d temp=%g cooling=%g min-temp=%g init=%s",
		opts.MaxIterations, opts.InitialTemp, opts.CoolingRate, opts.MinTemperature, opts.Init)
	if opts.Polish {
		s += " polish"
	}
	return s
}

// Open returns an initialized store: in-memory for an empty path, SQLite otherwise.
func Open(ctx context.Context, path string) (Store, error) {
	var s Store
	if path == "" {
		s = NewMemoryStore()
	} else {
		s = NewSQLiteStore(path)
	}
	if err := s.Init(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func checkRun(run Run) error {
	if run.ID == "" {
		return ErrMissingID
	}
	if _, err := uuid.Parse(run.ID); err != nil {
		return fmt.Errorf("runstore: run id %q: %w", run.ID, err)
	}

	return nil
}
