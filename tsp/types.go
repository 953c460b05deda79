// Package tsp - core types and sentinel errors shared by the annealer.
//
// Data model:
//   - Point: immutable city record; slice position is the canonical city index.
//   - Tour:  open permutation of city indices, read as a cycle (last → first).
//   - Result: best tour found, its cost, and run statistics.
//
// Error policy: only the sentinels below, optionally wrapped with %w for context.
package tsp

import "errors"

var (
	// ErrInvalidInput is returned for shape errors: negative sizes or
	// reversal bounds outside the tour.
	ErrInvalidInput = errors.New("tsp: invalid input")

	// ErrInvalidTour is returned when a tour is not a permutation of 0..n-1.
	ErrInvalidTour = errors.New("tsp: tour is not a permutation")

	// ErrNumericDegenerate is returned when a coordinate or a computed cost
	// is NaN or ±Inf.
	ErrNumericDegenerate = errors.New("tsp: non-finite value")

	// ErrBadOptions is returned by Options.Validate.
	ErrBadOptions = errors.New("tsp: bad options")
)

// Point is a city in the plane.
//
// ID is the 0-based internal identifier (external id − 1). It is only used for
// reporting; the algorithm addresses cities by their position in the slice.
type Point struct {
	ID int
	X  float64
	Y  float64
}

// Tour is an ordered sequence of city indices. For n cities len(Tour)==n and
// every index in [0..n-1] appears exactly once. The successor of the last
// element is the first one; the closing city is NOT repeated.
type Tour []int

// Clone returns an independent copy of t (nil stays nil).
//
// Complexity: O(n) time, O(n) space.
func (t Tour) Clone() Tour {
	if t == nil {
		return nil
	}
	out := make(Tour, len(t))
	copy(out, t)

	return out
}

// Stats summarizes one annealing run.
type Stats struct {
	// Iterations is the number of Step phases executed.
	Iterations int

	// Accepted counts adopted candidates (downhill and uphill).
	Accepted int

	// Uphill counts adopted candidates with delta ≥ 0.
	Uphill int

	// Improvements counts strict best-cost updates after Init.
	Improvements int

	// FinalTemperature is the temperature after the last cooling step.
	FinalTemperature float64

	// StoppedEarly reports that Options.MinTemperature ended the run before
	// MaxIterations.
	StoppedEarly bool

	// PolishMoves counts 2-opt moves applied when Options.Polish is set.
	PolishMoves int
}

// Result is the outcome of Anneal / Solve.
type Result struct {
	// Tour is the best tour found (fresh slice owned by the caller).
	Tour Tour

	// Cost is the cyclic Euclidean length of Tour.
	Cost float64

	Stats Stats
}
