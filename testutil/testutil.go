// Package testutil provides testing utilities for geco.
//
// This package is intended for use in tests and benchmarks only. It
// provides a seeded random source for generating attribute values with a
// controllable amount of duplication.
//
//	rng := testutil.NewRNG(seed)
//	values := rng.Values(16, 100, 10) // 100 records of 16 bytes drawn from 10 distinct patterns
package testutil

import (
	"math/rand"
	"sync"
)

// RNG encapsulates a seeded random number generator. It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// FillBytes fills p with random bytes.
func (r *RNG) FillBytes(p []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Read(p) //nolint:errcheck // never fails
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Values generates count records of size bytes each, concatenated, drawn
// uniformly from numDistinct random patterns. With numDistinct < count the
// result is guaranteed to contain duplicates somewhere, which is the shape
// deduplication tests need.
func (r *RNG) Values(size, count, numDistinct int) []byte {
	patterns := make([][]byte, numDistinct)
	for i := range patterns {
		patterns[i] = make([]byte, size)
		r.FillBytes(patterns[i])
	}

	out := make([]byte, 0, size*count)
	for i := 0; i < count; i++ {
		out = append(out, patterns[r.Intn(numDistinct)]...)
	}
	return out
}
