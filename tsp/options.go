// Package tsp - configuration for the annealing engine.
//
// All tuning constants live in Options; DefaultOptions reproduces the classic
// schedule (100000 iterations, T0 = 10000, geometric cooling by 0.9995).
package tsp

import (
	"fmt"
	"math"
)

// InitStrategy selects how the starting tour is built.
type InitStrategy int

const (
	// RandomInit shuffles [0..n-1] uniformly (default).
	RandomInit InitStrategy = iota

	// NearestNeighborInit builds a greedy nearest-neighbour tour from a
	// random start city (see NearestNeighborTour).
	NearestNeighborInit
)

// String returns the flag spelling of s.
func (s InitStrategy) String() string {
	switch s {
	case RandomInit:
		return "random"
	case NearestNeighborInit:
		return "nearest"
	default:
		return fmt.Sprintf("InitStrategy(%d)", int(s))
	}
}

// ParseInitStrategy is the inverse of InitStrategy.String.
func ParseInitStrategy(s string) (InitStrategy, error) {
	switch s {
	case "random", "":
		return RandomInit, nil
	case "nearest":
		return NearestNeighborInit, nil
	default:
		return 0, fmt.Errorf("%w: unknown init strategy %q", ErrBadOptions, s)
	}
}

// Default schedule.
const (
	DefaultMaxIterations = 100000
	DefaultInitialTemp   = 10000.0
	DefaultCoolingRate   = 0.9995
)

// Step describes one finished iteration; it is passed to Options.OnStep.
type Step struct {
	// Iteration is 0-based.
	Iteration int

	// Temperature is the value used for the acceptance decision (before cooling).
	Temperature float64

	CandidateCost float64
	Delta         float64
	Accepted      bool

	// CurrentCost and BestCost are the values after the decision.
	CurrentCost float64
	BestCost    float64

	// Current and Best are the engine's current and best tours after the
	// decision. They are only valid during the callback and must not be
	// modified or retained.
	Current Tour
	Best    Tour
}

// Options configures Anneal and Solve.
//
// Fields:
//   - MaxIterations  — fixed number of Step phases (≥ 0).
//   - InitialTemp    — starting temperature (finite, > 0).
//   - CoolingRate    — per-iteration multiplicative decay, 0 < r ≤ 1.
//   - MinTemperature — optional early stop: the loop ends once the temperature
//     drops below this floor. 0 disables it (fixed-budget default).
//   - Init           — starting tour strategy.
//   - Seed           — stream seed used by Solve (0 ⇒ fixed default stream).
//   - Polish         — run TwoOpt on the best tour after the Step phase.
//   - OnStep         — optional per-iteration observer, called after cooling.
type Options struct {
	MaxIterations  int
	InitialTemp    float64
	CoolingRate    float64
	MinTemperature float64
	Init           InitStrategy
	Seed           int64
	Polish         bool
	OnStep         func(Step)
}

// DefaultOptions returns the classic schedule with random initialization.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		InitialTemp:   DefaultInitialTemp,
		CoolingRate:   DefaultCoolingRate,
		Init:          RandomInit,
	}
}

// Validate checks Options for internal consistency.
//
// Complexity: O(1).
func (o Options) Validate() error {
	if o.MaxIterations < 0 {
		return fmt.Errorf("%w: MaxIterations %d < 0", ErrBadOptions, o.MaxIterations)
	}
	if !isFinite(o.InitialTemp) || o.InitialTemp <= 0 {
		return fmt.Errorf("%w: InitialTemp %v must be finite and > 0", ErrBadOptions, o.InitialTemp)
	}
	if math.IsNaN(o.CoolingRate) || o.CoolingRate <= 0 || o.CoolingRate > 1 {
		return fmt.Errorf("%w: CoolingRate %v outside (0, 1]", ErrBadOptions, o.CoolingRate)
	}
	if !isFinite(o.MinTemperature) || o.MinTemperature < 0 {
		return fmt.Errorf("%w: MinTemperature %v must be finite and ≥ 0", ErrBadOptions, o.MinTemperature)
	}
	switch o.Init {
	case RandomInit, NearestNeighborInit:
		// ok
	default:
		return fmt.Errorf("%w: unknown init strategy %d", ErrBadOptions, int(o.Init))
	}

	return nil
}
