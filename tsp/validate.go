// Package tsp - validation utilities.
//
// Small, side-effect free checks run before the engine touches its inputs:
//  1. Permutation shape of a tour.
//  2. Finiteness of point coordinates.
//
// Options validation lives next to Options in options.go.
package tsp

import (
	"fmt"
	"math"
)

// ValidatePermutation checks that tour is a permutation of {0..n-1}.
// An empty tour is valid for n == 0.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(tour Tour, n int) error {
	if n < 0 {
		return ErrInvalidInput
	}
	if len(tour) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidTour, len(tour), n)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: index %d out of range at position %d", ErrInvalidTour, v, i)
		}
		if seen[v] {
			return fmt.Errorf("%w: duplicate index %d at position %d", ErrInvalidTour, v, i)
		}
		seen[v] = true
	}

	return nil
}

// ValidatePoints rejects NaN and ±Inf coordinates.
//
// Complexity: O(n).
func ValidatePoints(points []Point) error {
	var i int
	for i = range points {
		if !isFinite(points[i].X) || !isFinite(points[i].Y) {
			return fmt.Errorf("%w: point %d has coordinates (%v, %v)",
				ErrNumericDegenerate, points[i].ID, points[i].X, points[i].Y)
		}
	}

	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
