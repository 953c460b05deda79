package tsp_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/annealtsp/tsp"
)

// TestDistance checks the Euclidean formula, symmetry and the zero case.
func TestDistance(t *testing.T) {
	a := tsp.Point{X: 0, Y: 0}
	b := tsp.Point{X: 3, Y: 4}

	assert.Equal(t, 5.0, tsp.Distance(a, b))
	assert.Equal(t, tsp.Distance(a, b), tsp.Distance(b, a), "distance must be symmetric")
	assert.Equal(t, 0.0, tsp.Distance(b, b), "self distance must be zero")
	assert.Equal(t, 0.0, tsp.Distance(tsp.Point{ID: 1, X: 2, Y: 2}, tsp.Point{ID: 7, X: 2, Y: 2}),
		"distance ignores IDs")
}

// TestTourCost_FixedTriangle covers the 3-4-5 triangle: 3 + 5 + 4 = 12.
func TestTourCost_FixedTriangle(t *testing.T) {
	pts := []tsp.Point{{ID: 0, X: 0, Y: 0}, {ID: 1, X: 3, Y: 0}, {ID: 2, X: 3, Y: 4}}

	assert.Equal(t, 12.0, tsp.TourCost(pts, tsp.Tour{0, 1, 2}))
	assert.Equal(t, 12.0, tsp.TourCost(pts, tsp.Tour{2, 1, 0}), "reversed cycle has the same cost")
	assert.Equal(t, 12.0, tsp.TourCost(pts, tsp.Tour{1, 2, 0}), "rotated cycle has the same cost")
}

// TestTourCost_Trivial checks the empty and single-city sums.
func TestTourCost_Trivial(t *testing.T) {
	assert.Equal(t, 0.0, tsp.TourCost(nil, tsp.Tour{}))
	assert.Equal(t, 0.0, tsp.TourCost([]tsp.Point{{X: 5, Y: 5}}, tsp.Tour{0}))
}

// TestTourCost_TwoCities counts the edge twice (there and back).
func TestTourCost_TwoCities(t *testing.T) {
	pts := []tsp.Point{{X: 0, Y: 0}, {X: 0, Y: 2}}
	assert.Equal(t, 4.0, tsp.TourCost(pts, tsp.Tour{1, 0}))
}

// TestTourCost_NonNegative samples random tours over random points.
func TestTourCost_NonNegative(t *testing.T) {
	pts := randomPoints(40, 7)
	rng := tsp.NewRand(11)

	var i int
	for i = 0; i < 50; i++ {
		tour, err := tsp.InitialTour(len(pts), rng)
		require.NoError(t, err)
		c := tsp.TourCost(pts, tour)
		require.False(t, math.IsNaN(c))
		require.GreaterOrEqual(t, c, 0.0)
	}
}

// TestBounds uses orb's bounding box over the point set.
func TestBounds(t *testing.T) {
	pts := []tsp.Point{{X: -1, Y: 2}, {X: 4, Y: -3}, {X: 0, Y: 0}}
	b := tsp.Bounds(pts)

	assert.Equal(t, -1.0, b.Min.X())
	assert.Equal(t, -3.0, b.Min.Y())
	assert.Equal(t, 4.0, b.Max.X())
	assert.Equal(t, 2.0, b.Max.Y())

	assert.Equal(t, orb.Bound{}, tsp.Bounds(nil), "empty input yields the zero bound")
}
