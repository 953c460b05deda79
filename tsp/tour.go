// Package tsp - tour utilities.
//
// Helpers that operate purely on tour structure (index sequences), without
// looking at coordinates:
//   - RotateToStart: cyclic shift so the tour begins at a given city.
//   - Canonical: rotation to city 0 plus a fixed orientation.
//   - SameCycle: equality under rotation and reflection.
//   - String: compact printable form.
//
// All helpers return fresh slices; inputs are never mutated.
package tsp

import (
	"strconv"
	"strings"
)

// RotateToStart returns a copy of tour shifted so that out[0] == start.
//
// Errors: ErrInvalidInput if start does not occur in tour.
//
// Complexity: O(n) time, O(n) space.
func RotateToStart(tour Tour, start int) (Tour, error) {
	var (
		n     = len(tour)
		pivot = indexOf(tour, start)
	)
	if pivot == -1 {
		return nil, ErrInvalidInput
	}
	out := make(Tour, n)

	var i int
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}

	return out, nil
}

// Canonical returns the representative of tour's cycle class: it starts at
// city 0 and its second city is not greater than its last one. Two tours of
// the same cycle (any rotation, either direction) have equal Canonical forms.
// Tours without city 0 (including the empty tour) are returned as copies.
//
// Complexity: O(n) time, O(n) space.
func Canonical(tour Tour) Tour {
	out, err := RotateToStart(tour, 0)
	if err != nil {
		return tour.Clone()
	}
	var n = len(out)
	if n >= 3 && out[1] > out[n-1] {
		reverseInPlace(out, 1, n-1)
	}

	return out
}

// SameCycle reports whether a and b visit the same cycle, allowing rotation
// and reversed direction.
//
// Complexity: O(n) time.
func SameCycle(a, b Tour) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	var (
		n = len(a)
		p = indexOf(b, a[0])
	)
	if p == -1 {
		return false
	}

	var (
		i       int
		forward = true
		reverse = true
	)
	for i = 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			forward = false
		}
		if a[i] != b[(p-i+n)%n] {
			reverse = false
		}
		if !forward && !reverse {
			return false
		}
	}

	return true
}

// String returns e.g. "[0 3 1 2]".
func (t Tour) String() string {
	var sb strings.Builder
	sb.WriteByte('[')

	var i int
	for i = range t {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(t[i]))
	}
	sb.WriteByte(']')

	return sb.String()
}

// indexOf returns the first position of v in t, or -1.
func indexOf(t Tour, v int) int {
	var i int
	for i = range t {
		if t[i] == v {
			return i
		}
	}

	return -1
}
