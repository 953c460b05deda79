// Package tsp - greedy nearest-neighbour seeding backed by an R-tree.
//
// NearestNeighborTour is the alternative starting tour selected by
// Options.Init = NearestNeighborInit. Cities are indexed in a 2D R-tree; the walk
// starts at a random city, removes it from the index, and jumps to the nearest
// remaining city until the index is empty.
//
// Complexity: O(n log n) expected (n inserts, n deletes, n nearest queries).
package tsp

import (
	"fmt"

	"github.com/dhconnelly/rtreego"
)

// pointTol is the half side of the degenerate box each city occupies in the tree.
const pointTol = 1e-9

// cityEntry adapts a city index to rtreego.Spatial.
type cityEntry struct {
	idx  int
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (c *cityEntry) Bounds() rtreego.Rect {
	return c.bbox
}

// NearestNeighborTour builds a greedy tour over points.
//
// Random draws: exactly one rng.Intn(n) for the start city when n ≥ 1.
//
// Errors: ErrNumericDegenerate for non-finite coordinates, or when the
// remaining cities are only reachable over distances that overflow float64.
//
// Complexity: see file header.
func NearestNeighborTour(points []Point, rng Rand) (Tour, error) {
	var n = len(points)
	if n == 0 {
		return Tour{}, nil
	}
	if err := ValidatePoints(points); err != nil {
		return nil, err
	}

	tree := rtreego.NewTree(2, 25, 50)
	entries := make([]*cityEntry, n)

	var (
		i   int
		box rtreego.Rect
		err error
	)
	for i = 0; i < n; i++ {
		box, err = rtreego.NewRect(
			rtreego.Point{points[i].X - pointTol, points[i].Y - pointTol},
			[]float64{2 * pointTol, 2 * pointTol},
		)
		if err != nil {
			return nil, fmt.Errorf("%w: city %d: %v", ErrNumericDegenerate, i, err)
		}
		entries[i] = &cityEntry{idx: i, bbox: box}
		tree.Insert(entries[i])
	}

	var (
		cur   = rng.Intn(n)
		tour  = make(Tour, 0, n)
		next  *cityEntry
		found bool
	)
	for {
		tour = append(tour, cur)
		tree.Delete(entries[cur])
		if tree.Size() == 0 {
			break
		}
		// nil when every remaining squared distance overflows to +Inf.
		next, found = tree.NearestNeighbor(rtreego.Point{points[cur].X, points[cur].Y}).(*cityEntry)
		if !found || next == nil {
			return nil, fmt.Errorf("%w: nearest neighbour of city %d has no finite distance", ErrNumericDegenerate, cur)
		}
		cur = next.idx
	}

	return tour, nil
}
