// Package tsp - random source and the Tour Generator.
//
// The annealer consumes exactly one random stream, passed in explicitly:
//   - InitialTour draws n-1 values (Fisher–Yates),
//   - every Step draws the two neighbour positions (plus redraws on i==j),
//   - every Step with delta ≥ 0 draws one acceptance value.
//
// Determinism: same stream ⇒ identical run. There is no process-wide state and no
// time-based source anywhere in this package; callers that want a fresh run per
// invocation pick the seed themselves.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a Rand across goroutines.
package tsp

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// Rand is the subset of *rand.Rand the annealer consumes.
//
//   - Intn(n) returns a uniform int in [0, n), n > 0.
//   - Float64() returns a uniform float64 in [0, 1).
type Rand interface {
	Intn(n int) int
	Float64() float64
}

var _ Rand = (*rand.Rand)(nil)

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// InitialTour returns [0, 1, …, n-1] shuffled uniformly with Fisher–Yates
// driven by rng.Intn. Every permutation is equally likely.
//
// Contract:
//   - n < 0 ⇒ ErrInvalidInput.
//   - n == 0 ⇒ empty (non-nil) tour, no draws.
//   - n == 1 ⇒ [0], no draws.
//
// Complexity: O(n) time, O(n) space.
func InitialTour(n int, rng Rand) (Tour, error) {
	if n < 0 {
		return nil, ErrInvalidInput
	}
	t := make(Tour, n)

	var i int
	for i = 0; i < n; i++ {
		t[i] = i
	}
	shuffleInPlace(t, rng)

	return t, nil
}

// shuffleInPlace performs an in-place Fisher–Yates shuffle of a.
// If rng==nil, the deterministic default stream is used.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace(a Tour, rng Rand) {
	var n = len(a)
	if n <= 1 {
		return
	}

	var (
		r Rand
		i int
		j int
	)
	r = rng
	if r == nil {
		r = NewRand(0)
	}

	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
