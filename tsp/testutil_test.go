// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/annealtsp/tsp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsTiny is the absolute tolerance for cost comparisons.
	epsTiny = 1e-9

	// seedDet is a deterministic seed for NewRand (0 ⇒ default stream).
	seedDet = int64(0)
)

// -----------------------------------------------------------------------------
// Scripted random source
// -----------------------------------------------------------------------------

// scriptedRand replays fixed draws and records the Intn bounds it was asked for.
// Running past the end of a script fails the test.
type scriptedRand struct {
	t      *testing.T
	ints   []int
	floats []float64
	bounds []int
	nf     int
}

var _ tsp.Rand = (*scriptedRand)(nil)

func newScripted(t *testing.T, ints []int, floats []float64) *scriptedRand {
	t.Helper()

	return &scriptedRand{t: t, ints: ints, floats: floats}
}

func (s *scriptedRand) Intn(n int) int {
	s.t.Helper()
	require.NotEmpty(s.t, s.ints, "unexpected Intn(%d): int script exhausted", n)
	v := s.ints[0]
	s.ints = s.ints[1:]
	require.True(s.t, v >= 0 && v < n, "scripted value %d outside [0,%d)", v, n)
	s.bounds = append(s.bounds, n)

	return v
}

func (s *scriptedRand) Float64() float64 {
	s.t.Helper()
	require.NotEmpty(s.t, s.floats, "unexpected Float64(): float script exhausted")
	v := s.floats[0]
	s.floats = s.floats[1:]
	s.nf++

	return v
}

// requireExhausted asserts every scripted draw was consumed.
func (s *scriptedRand) requireExhausted() {
	s.t.Helper()
	require.Empty(s.t, s.ints, "unused int draws")
	require.Empty(s.t, s.floats, "unused float draws")
}

// -----------------------------------------------------------------------------
// Geometric generators
// -----------------------------------------------------------------------------

// circlePoints places n cities on a circle of radius r, in angular order, then
// permutes their slice positions with a fixed stride so the identity tour is
// not already optimal.
func circlePoints(n int, r float64) []tsp.Point {
	pts := make([]tsp.Point, n)

	var (
		i   int
		pos int
		th  float64
	)
	for i = 0; i < n; i++ {
		pos = (i * 5) % n // stride 5 is a bijection for n not divisible by 5
		th = 2 * math.Pi * float64(i) / float64(n)
		pts[pos] = tsp.Point{ID: pos, X: r * math.Cos(th), Y: r * math.Sin(th)}
	}

	return pts
}

// regularPolygonPerimeter is the optimal tour length over circlePoints(n, r).
func regularPolygonPerimeter(n int, r float64) float64 {
	return float64(n) * 2 * r * math.Sin(math.Pi/float64(n))
}

// squarePoints returns the unit square (0,0),(1,0),(1,1),(0,1).
func squarePoints() []tsp.Point {
	return []tsp.Point{
		{ID: 0, X: 0, Y: 0},
		{ID: 1, X: 1, Y: 0},
		{ID: 2, X: 1, Y: 1},
		{ID: 3, X: 0, Y: 1},
	}
}

// randomPoints draws n points in [0,100)² from a seeded stream.
func randomPoints(n int, seed int64) []tsp.Point {
	rng := tsp.NewRand(seed)
	pts := make([]tsp.Point, n)

	var i int
	for i = 0; i < n; i++ {
		pts[i] = tsp.Point{ID: i, X: rng.Float64() * 100, Y: rng.Float64() * 100}
	}

	return pts
}

// -----------------------------------------------------------------------------
// Assertions
// -----------------------------------------------------------------------------

// requirePermutation asserts tour is a permutation of 0..n-1.
func requirePermutation(t *testing.T, tour tsp.Tour, n int) {
	t.Helper()
	require.NoError(t, tsp.ValidatePermutation(tour, n), "tour %v", tour)
}
