package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint_Deterministic(t *testing.T) {
	data := []byte("attribute bytes")
	assert.Equal(t, Fingerprint(data), Fingerprint(data))
}

func TestFingerprint_Distinguishes(t *testing.T) {
	a := Fingerprint([]byte{1, 2, 3})
	b := Fingerprint([]byte{1, 2, 4})
	assert.NotEqual(t, a, b)
}

func TestFingerprint_Empty(t *testing.T) {
	// Empty input is a valid fingerprint target, not a panic.
	assert.Equal(t, Fingerprint(nil), Fingerprint([]byte{}))
}

func TestCombine_OrderSensitive(t *testing.T) {
	ab := Combine(2, Combine(1, 0))
	ba := Combine(1, Combine(2, 0))
	assert.NotEqual(t, ab, ba)
}

func TestCombine_Deterministic(t *testing.T) {
	assert.Equal(t, Combine(42, 7), Combine(42, 7))
}

func TestCombineBool(t *testing.T) {
	assert.Equal(t, Combine(1, 9), CombineBool(true, 9))
	assert.Equal(t, Combine(0, 9), CombineBool(false, 9))
	assert.NotEqual(t, CombineBool(true, 9), CombineBool(false, 9))
}
