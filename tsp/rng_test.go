// Package tsp_test validates the Tour Generator: permutation shape, the exact
// Fisher–Yates draw sequence, seed determinism and uniformity.
package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/annealtsp/tsp"
)

// TestInitialTour_Permutation checks shape for a range of sizes.
func TestInitialTour_Permutation(t *testing.T) {
	rng := tsp.NewRand(seedDet)
	for _, n := range []int{0, 1, 2, 3, 10, 257} {
		tour, err := tsp.InitialTour(n, rng)
		require.NoError(t, err, "n=%d", n)
		require.NotNil(t, tour, "n=%d must return a non-nil tour", n)
		requirePermutation(t, tour, n)
	}
}

// TestInitialTour_Negative rejects n < 0.
func TestInitialTour_Negative(t *testing.T) {
	_, err := tsp.InitialTour(-1, tsp.NewRand(seedDet))
	assert.ErrorIs(t, err, tsp.ErrInvalidInput)
}

// TestInitialTour_FisherYatesDraws replays a scripted stream: for n=4 the shuffle
// asks for Intn(4), Intn(3), Intn(2) in that order.
func TestInitialTour_FisherYatesDraws(t *testing.T) {
	rng := newScripted(t, []int{0, 0, 0}, nil)

	tour, err := tsp.InitialTour(4, rng)
	require.NoError(t, err)
	// [0 1 2 3] → swap(3,0) → [3 1 2 0] → swap(2,0) → [2 1 3 0] → swap(1,0) → [1 2 3 0]
	assert.Equal(t, tsp.Tour{1, 2, 3, 0}, tour)
	assert.Equal(t, []int{4, 3, 2}, rng.bounds)
	rng.requireExhausted()
}

// TestInitialTour_NoDrawsForTrivialSizes: n ≤ 1 must not touch the stream.
func TestInitialTour_NoDrawsForTrivialSizes(t *testing.T) {
	rng := newScripted(t, nil, nil)

	tour, err := tsp.InitialTour(0, rng)
	require.NoError(t, err)
	assert.Empty(t, tour)

	tour, err = tsp.InitialTour(1, rng)
	require.NoError(t, err)
	assert.Equal(t, tsp.Tour{0}, tour)
}

// TestInitialTour_SeedDeterminism: same seed ⇒ same tour; different seed ⇒
// (almost surely) a different tour for n=50.
func TestInitialTour_SeedDeterminism(t *testing.T) {
	a, err := tsp.InitialTour(50, tsp.NewRand(42))
	require.NoError(t, err)
	b, err := tsp.InitialTour(50, tsp.NewRand(42))
	require.NoError(t, err)
	c, err := tsp.InitialTour(50, tsp.NewRand(43))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

// TestNewRand_ZeroSeedIsStable: seed 0 maps to a fixed default stream.
func TestNewRand_ZeroSeedIsStable(t *testing.T) {
	assert.Equal(t, tsp.NewRand(0).Int63(), tsp.NewRand(0).Int63())
	assert.Equal(t, tsp.NewRand(0).Int63(), tsp.NewRand(1).Int63(), "seed 0 aliases the default seed")
}

// TestInitialTour_Uniform counts the 6 permutations of n=3 over many draws.
// Each must land within 5% of the expected share (≈ 5.5σ at this sample size).
func TestInitialTour_Uniform(t *testing.T) {
	const draws = 60000
	rng := tsp.NewRand(2024)
	counts := make(map[[3]int]int)

	var i int
	for i = 0; i < draws; i++ {
		tour, err := tsp.InitialTour(3, rng)
		require.NoError(t, err)
		counts[[3]int{tour[0], tour[1], tour[2]}]++
	}

	require.Len(t, counts, 6, "every permutation must appear")
	want := draws / 6
	for perm, c := range counts {
		assert.InDelta(t, want, c, float64(want)*0.05, "permutation %v", perm)
	}
}
