// Package hash provides the deterministic, non-cryptographic fingerprint
// primitives used for attribute equality and caching.
//
// Fingerprints are BLAKE3 digests truncated to 64 bits. BLAKE3 is overkill
// for a non-adversarial equality key, but it is fast (vectorized, multi-core
// capable), has excellent avalanche behavior, and produces identical output
// on every platform, which keeps fingerprints stable across runs and
// architectures.
package hash

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// Fingerprint returns a 64-bit fingerprint of data. Equal inputs always
// produce equal fingerprints; distinct inputs collide with probability
// 2^-64. Not suitable for tamper detection.
func Fingerprint(data []byte) uint64 {
	sum := blake3.Sum256(data)
	return binary.LittleEndian.Uint64(sum[:8])
}

// Combine folds value into seed, producing a new 64-bit state. The fold is
// order-sensitive: Combine(a, Combine(b, s)) differs from
// Combine(b, Combine(a, s)) for a != b, which is what makes it usable for
// hashing an ordered sequence of fields.
func Combine(value, seed uint64) uint64 {
	// Mixer from splitmix64; full 64-bit avalanche per fold.
	h := seed ^ (value + 0x9e3779b97f4a7c15 + (seed << 12) + (seed >> 4))
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31
	return h
}

// CombineBool is Combine over a boolean field.
func CombineBool(value bool, seed uint64) uint64 {
	if value {
		return Combine(1, seed)
	}
	return Combine(0, seed)
}
