// Package tsp - deterministic 2-opt polish.
//
// TwoOpt performs first-improvement 2-opt on a cyclic tour over Euclidean points.
// For cut positions 1 ≤ i < k ≤ n−1 with a=T[i−1], b=T[i], c=T[k], d=T[(k+1) mod n]:
//
//	Δ = d(a,c) + d(b,d) − d(a,b) − d(c,d)
//
// and the move reverses T[i..k] whenever Δ < −polishEps. The scan restarts after
// every applied move and stops at a 2-opt local optimum (or after maxMoves).
//
// No random draws are taken, so polishing never perturbs the engine's stream.
//
// Complexity:
//   - One pass: O(n²) candidate checks, O(n) per applied move.
//   - Space: O(n) for the working copy.
package tsp

import "fmt"

// polishEps is the minimum gain for a move to count as an improvement.
const polishEps = 1e-9

// TwoOpt improves tour to a 2-opt local optimum and returns the new tour, its
// cost and the number of moves applied. maxMoves ≤ 0 means unlimited.
// The input is not modified; tours with fewer than 4 cities are returned as a copy.
//
// Errors: ErrNumericDegenerate (non-finite coordinates), ErrInvalidTour.
func TwoOpt(points []Point, tour Tour, maxMoves int) (Tour, float64, int, error) {
	if err := ValidatePoints(points); err != nil {
		return nil, 0, 0, err
	}
	var n = len(points)
	if err := ValidatePermutation(tour, n); err != nil {
		return nil, 0, 0, err
	}

	cur := tour.Clone()
	if n < 4 {
		return cur, TourCost(points, cur), 0, nil
	}

	var (
		moves      int
		improved   bool
		i, k       int
		a, b, c, d Point
		delta      float64
	)
	for {
		improved = false
		for i = 1; i <= n-2; i++ {
			for k = i + 1; k <= n-1; k++ {
				a = points[cur[i-1]]
				b = points[cur[i]]
				c = points[cur[k]]
				d = points[cur[(k+1)%n]]

				delta = (Distance(a, c) + Distance(b, d)) - (Distance(a, b) + Distance(c, d))
				if delta >= -polishEps {
					continue
				}

				reverseInPlace(cur, i, k)
				moves++
				improved = true
				if maxMoves > 0 && moves >= maxMoves {
					return finishPolish(points, cur, moves)
				}
			}
		}
		if !improved {
			break
		}
	}

	return finishPolish(points, cur, moves)
}

func finishPolish(points []Point, tour Tour, moves int) (Tour, float64, int, error) {
	cost := TourCost(points, tour)
	if !isFinite(cost) {
		return nil, 0, 0, fmt.Errorf("%w: polished cost %v", ErrNumericDegenerate, cost)
	}

	return tour, cost, moves, nil
}
