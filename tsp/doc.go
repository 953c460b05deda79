// Package tsp approximates the Euclidean Travelling Salesman Problem with
// simulated annealing.
//
// Given n points in the plane, Anneal searches for a short cyclic visiting order:
//
//   - Geometry/Cost — Distance and TourCost (cost.go).
//   - Tour Generator — InitialTour, a fair Fisher–Yates shuffle (rng.go), or
//     NearestNeighborTour, a greedy R-tree walk (nearest.go).
//   - Neighbor Operator — Neighbor, a random 2-opt segment reversal (neighbor.go).
//   - Annealing Engine — Anneal / Solve, Metropolis acceptance with geometric
//     cooling over a fixed iteration budget (anneal.go).
//
// TwoOpt (two_opt.go) is an optional deterministic polish of the final tour,
// enabled with Options.Polish.
//
// Tours are open permutations of city indices ([]int of length n) read as cycles.
// Every operation returns a fresh tour; no caller-visible slice is mutated.
//
// Randomness is explicit: Anneal takes a Rand (any *rand.Rand works) and consumes
// it in a fixed order, so a fixed stream reproduces a run exactly.
//
// Usage:
//
//	pts := []tsp.Point{{ID: 0, X: 0, Y: 0}, {ID: 1, X: 3, Y: 0}, {ID: 2, X: 3, Y: 4}}
//	opts := tsp.DefaultOptions()
//	res, err := tsp.Anneal(pts, tsp.NewRand(42), opts)
//	if err != nil {
//		// ErrBadOptions, ErrNumericDegenerate, ...
//	}
//	fmt.Println(res.Cost, res.Tour)
//
// Complexity: O(MaxIterations · n) time, O(n) memory.
//
// This is a heuristic: there is no optimality or convergence guarantee.
package tsp
