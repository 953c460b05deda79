// Package tsp - the Neighbor Operator (random 2-opt move).
//
// Neighbor draws two distinct positions i < j and reverses the closed range
// tour[i..j] on a fresh copy. On a cycle this removes the edges entering and
// leaving the range and reconnects the path the only other way that keeps a
// single cycle. Whether the move is good is decided by the engine, not here.
//
// Contracts:
//   - The input tour is never mutated; every call returns a new slice.
//   - n < 2 ⇒ unchanged copy, no random draws.
package tsp

import "fmt"

// Neighbor returns a copy of tour with a uniformly chosen segment reversed.
//
// Draw order (part of the determinism contract):
//  1. i = rng.Intn(n)
//  2. j = rng.Intn(n), redrawn while j == i
//
// Complexity: O(n) time (copy), O(n) space.
func Neighbor(tour Tour, rng Rand) Tour {
	var n = len(tour)
	if n < 2 {
		return tour.Clone()
	}

	i, j := drawPositions(n, rng)
	out := tour.Clone()
	reverseInPlace(out, i, j)

	return out
}

// ReverseSegment returns a copy of tour with the closed range [i..j] reversed.
// Positions may be given in either order.
//
// Errors: ErrInvalidInput when i or j lies outside [0..len(tour)-1].
//
// Complexity: O(n) time, O(n) space.
func ReverseSegment(tour Tour, i, j int) (Tour, error) {
	var n = len(tour)
	if i < 0 || i >= n || j < 0 || j >= n {
		return nil, fmt.Errorf("%w: segment [%d, %d] outside tour of length %d", ErrInvalidInput, i, j, n)
	}
	if i > j {
		i, j = j, i
	}
	out := tour.Clone()
	reverseInPlace(out, i, j)

	return out, nil
}

// drawPositions returns two distinct positions in [0, n) ordered so i < j.
// Requires n ≥ 2, otherwise the redraw loop cannot terminate.
func drawPositions(n int, rng Rand) (int, int) {
	var (
		i = rng.Intn(n)
		j = rng.Intn(n)
	)
	for j == i {
		j = rng.Intn(n)
	}
	if i > j {
		i, j = j, i
	}

	return i, j
}

// reverseInPlace reverses t[i..j] (inclusive), 0 ≤ i ≤ j < len(t).
//
// Complexity: O(j-i) time, O(1) space.
func reverseInPlace(t Tour, i, j int) {
	for i < j {
		t[i], t[j] = t[j], t[i]
		i++
		j--
	}
}
