// Package tsp - geometry and cost utilities.
//
// This file is the leaf layer of the annealer: Euclidean distance between two
// points and the cyclic length of a tour. Both are pure and side-effect free.
//
// Design:
//   - Distances are computed by orb/planar on orb.Point values.
//   - TourCost assumes a valid permutation; callers validate upfront.
//   - No rounding: the engine compares raw float64 deltas.
package tsp

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Distance returns the Euclidean distance sqrt((ax-bx)² + (ay-by)²).
// It is symmetric, non-negative and zero iff the coordinates coincide.
//
// Complexity: O(1).
func Distance(a, b Point) float64 {
	return planar.Distance(a.Orb(), b.Orb())
}

// TourCost sums Distance over consecutive cities of tour, including the
// closing edge tour[n-1] → tour[0].
//
// Contract:
//   - tour is a permutation of indices into points (see ValidatePermutation).
//   - n == 0 ⇒ 0 (empty sum); n == 1 ⇒ 0 (self-loop).
//
// Complexity: O(n) time, O(1) space.
func TourCost(points []Point, tour Tour) float64 {
	var n = len(tour)
	if n < 2 {
		return 0
	}

	// Summation order: edges i → i+1 for i = 0..n-2, closing edge last.
	var (
		sum  float64
		i    int
		next int
	)
	for i = 0; i < n; i++ {
		next = i + 1
		if next == n {
			next = 0
		}
		sum += Distance(points[tour[i]], points[tour[next]])
	}

	return sum
}

// Orb converts p to an orb.Point.
func (p Point) Orb() orb.Point {
	return orb.Point{p.X, p.Y}
}

// PointsToOrb converts points into an orb.MultiPoint preserving order.
//
// Complexity: O(n).
func PointsToOrb(points []Point) orb.MultiPoint {
	mp := make(orb.MultiPoint, len(points))

	var i int
	for i = range points {
		mp[i] = points[i].Orb()
	}

	return mp
}

// Bounds returns the axis-aligned bounding box of points.
// For an empty slice the zero orb.Bound is returned.
//
// Complexity: O(n).
func Bounds(points []Point) orb.Bound {
	if len(points) == 0 {
		return orb.Bound{}
	}

	return PointsToOrb(points).Bound()
}
