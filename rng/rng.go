// Package rng - the single seeded pseudo-random stream threaded through the
// generation pipeline.
//
// Goals:
//   - Determinism: same seed ⇒ identical draw sequence on every platform.
//   - Encapsulation: one Stream per generation call; no time-based sources and
//     no package-level state anywhere in the pipeline.
//   - Accountability: every value taken from the stream is counted, so tests can
//     assert that a stage consumed nothing (e.g. obstacle density 0).
//
// Concurrency:
//   - A Stream is NOT goroutine-safe. It belongs to exactly one generation call.
//   - Use DeriveSeed to hand independent seeds to parallel callers.
package rng

import "math/rand"

// Stream is a counted wrapper around *rand.Rand.
type Stream struct {
	r     *rand.Rand
	seed  int64
	draws uint64
}

// New returns a Stream seeded verbatim with seed (0 is a valid seed).
//
// Complexity: O(1).
func New(seed int64) *Stream {
	return &Stream{r: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the seed the stream was created with.
func (s *Stream) Seed() int64 { return s.seed }

// Draws reports how many values have been taken from the stream so far.
func (s *Stream) Draws() uint64 { return s.draws }

// Intn returns a uniform int in [0, n). n must be > 0.
func (s *Stream) Intn(n int) int {
	s.draws++
	return s.r.Intn(n)
}

// IntRange returns a uniform int in the closed range [lo, hi].
// If hi < lo the bounds are swapped; lo == hi still consumes one draw so that
// the consumption order never depends on the sampled values.
//
// Complexity: O(1).
func (s *Stream) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + s.Intn(hi-lo+1)
}

// Float64 returns a uniform float64 in [0, 1).
func (s *Stream) Float64() float64 {
	s.draws++
	return s.r.Float64()
}

// Bool returns true with probability 1/2.
func (s *Stream) Bool() bool {
	return s.Intn(2) == 1
}

// Chance returns true with probability p. p ≤ 0 and p ≥ 1 still draw once.
func (s *Stream) Chance(p float64) bool {
	return s.Float64() < p
}

// Shuffle performs an in-place Fisher-Yates shuffle over n elements using swap.
//
// Complexity: O(n) time, O(1) extra space.
func (s *Stream) Shuffle(n int, swap func(i, j int)) {
	var i, j int
	for i = n - 1; i > 0; i-- {
		j = s.Intn(i + 1)
		swap(i, j)
	}
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed.
//
// A SplitMix64-style finaliser is applied so that consecutive stream ids give
// well-spread, uncorrelated seeds.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
