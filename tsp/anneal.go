// Package tsp - the Annealing Engine.
//
// Anneal drives a single simulated-annealing chain over a fixed iteration budget:
//
//	Init: current = initial tour; best = current; T = InitialTemp
//	Step (MaxIterations times):
//	  candidate = Neighbor(current)
//	  delta     = cost(candidate) − cost(current)
//	  accept iff delta < 0, or exp(−delta/T) > r with r ~ U[0,1)
//	  on accept: current = candidate; best = current on strict improvement
//	  T *= CoolingRate
//	Terminal: optionally polish best with TwoOpt
//
// The uniform draw r is taken only when delta ≥ 0. This fixes the order in which
// the single random stream is consumed (see rng.go).
//
// Temperature underflow is expected: once T reaches 0 no uphill move is accepted.
// Non-finite costs are reported as ErrNumericDegenerate instead of being returned.
package tsp

import (
	"fmt"
	"math"
)

// state is the Search State of one run. It never escapes Anneal.
type state struct {
	current     Tour
	currentCost float64
	best        Tour
	bestCost    float64
	temperature float64
}

// Solve runs Anneal with a generator seeded from opts.Seed (see NewRand).
func Solve(points []Point, opts Options) (Result, error) {
	return Anneal(points, NewRand(opts.Seed), opts)
}

// Anneal searches for a short cyclic tour over points.
//
// Contract:
//   - opts must pass Options.Validate.
//   - points must have finite coordinates.
//   - rng must be non-nil when len(points) ≥ 2 or Init needs a start city.
//   - n == 0 ⇒ empty tour, cost 0; no Step phase and no random draws.
//   - n == 1 ⇒ [0], cost 0; the loop runs but every candidate equals current.
//
// Errors: ErrBadOptions, ErrNumericDegenerate, ErrInvalidInput (nil rng).
//
// Complexity: O(MaxIterations · n) time, O(n) space.
func Anneal(points []Point, rng Rand, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if err := ValidatePoints(points); err != nil {
		return Result{}, err
	}
	var n = len(points)
	if n == 0 {
		return Result{Tour: Tour{}, Cost: 0, Stats: Stats{FinalTemperature: opts.InitialTemp}}, nil
	}
	if rng == nil {
		return Result{}, fmt.Errorf("%w: nil random source", ErrInvalidInput)
	}

	// Init.
	start, err := initialTourFor(points, rng, opts.Init)
	if err != nil {
		return Result{}, err
	}
	st := state{
		current:     start,
		currentCost: TourCost(points, start),
		temperature: opts.InitialTemp,
	}
	if !isFinite(st.currentCost) {
		return Result{}, fmt.Errorf("%w: initial tour cost %v", ErrNumericDegenerate, st.currentCost)
	}
	st.best = st.current.Clone()
	st.bestCost = st.currentCost

	var (
		stats         Stats
		iter          int
		candidate     Tour
		candidateCost float64
		delta         float64
		accepted      bool
		usedTemp      float64
	)

	// Step.
	for iter = 0; iter < opts.MaxIterations; iter++ {
		if opts.MinTemperature > 0 && st.temperature < opts.MinTemperature {
			stats.StoppedEarly = true
			break
		}

		candidate = Neighbor(st.current, rng)
		candidateCost = TourCost(points, candidate)
		if !isFinite(candidateCost) {
			return Result{}, fmt.Errorf("%w: candidate cost %v at iteration %d", ErrNumericDegenerate, candidateCost, iter)
		}

		delta = candidateCost - st.currentCost
		accepted = delta < 0
		if !accepted {
			accepted = acceptanceProbability(delta, st.temperature) > rng.Float64()
		}

		if accepted {
			st.current, st.currentCost = candidate, candidateCost
			stats.Accepted++
			if delta >= 0 {
				stats.Uphill++
			}
			if st.currentCost < st.bestCost {
				st.best = st.current.Clone()
				st.bestCost = st.currentCost
				stats.Improvements++
			}
		}

		usedTemp = st.temperature
		st.temperature *= opts.CoolingRate
		stats.Iterations++

		if opts.OnStep != nil {
			opts.OnStep(Step{
				Iteration:     iter,
				Temperature:   usedTemp,
				CandidateCost: candidateCost,
				Delta:         delta,
				Accepted:      accepted,
				CurrentCost:   st.currentCost,
				BestCost:      st.bestCost,
				Current:       st.current,
				Best:          st.best,
			})
		}
	}

	// Terminal.
	stats.FinalTemperature = st.temperature
	if opts.Polish {
		st.best, st.bestCost, stats.PolishMoves, err = TwoOpt(points, st.best, 0)
		if err != nil {
			return Result{}, err
		}
	}

	return Result{Tour: st.best, Cost: st.bestCost, Stats: stats}, nil
}

// acceptanceProbability is the Metropolis rule for delta ≥ 0: exp(−delta/T).
// A non-positive temperature yields 0 (frozen chain), including delta == 0.
//
// Complexity: O(1).
func acceptanceProbability(delta, temperature float64) float64 {
	if temperature <= 0 {
		return 0
	}

	return math.Exp(-delta / temperature)
}

// initialTourFor dispatches on the Init strategy.
func initialTourFor(points []Point, rng Rand, strategy InitStrategy) (Tour, error) {
	switch strategy {
	case NearestNeighborInit:
		return NearestNeighborTour(points, rng)
	default:
		return InitialTour(len(points), rng)
	}
}
