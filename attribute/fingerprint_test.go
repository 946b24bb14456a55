package attribute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/geco/core"
	"github.com/hupe1980/geco/testutil"
)

// buildAttribute fills a fresh uint8x4 attribute from raw, one record per
// point, identity mapped.
func buildAttribute(raw []byte) *PointAttribute {
	n := len(raw) / 4
	pa := NewPointAttribute(NewGeometryAttribute(TypeColor, DataTypeUint8, 4, true))
	pa.Reset(n)
	for i := 0; i < n; i++ {
		pa.SetAttributeValue(core.AttributeValueIndex(i), raw[i*4:(i+1)*4])
	}
	return pa
}

func TestFingerprint_ContentEquivalence(t *testing.T) {
	rng := testutil.NewRNG(7)
	raw := rng.Values(4, 64, 12)

	a := buildAttribute(raw)
	b := buildAttribute(raw)

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	// Still equal after both are deduplicated (same canonical result).
	_, err := a.DeduplicateValues(&a.GeometryAttribute)
	require.NoError(t, err)
	_, err = b.DeduplicateValues(&b.GeometryAttribute)
	require.NoError(t, err)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprint_RandomPerturbation(t *testing.T) {
	rng := testutil.NewRNG(99)

	const trials = 25
	for trial := 0; trial < trials; trial++ {
		raw := rng.Values(4, 32, 8)

		a := buildAttribute(raw)

		// Flip one bit of one stored value.
		perturbed := make([]byte, len(raw))
		copy(perturbed, raw)
		pos := rng.Intn(len(perturbed))
		perturbed[pos] ^= 1 << uint(rng.Intn(8))
		b := buildAttribute(perturbed)

		assert.NotEqual(t, a.Fingerprint(), b.Fingerprint(), "trial %d: flipped byte %d", trial, pos)
	}
}

func TestFingerprint_MappingModeMatters(t *testing.T) {
	a := buildAttribute([]byte{1, 2, 3, 4, 5, 6, 7, 8})

	b := buildAttribute([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	b.SetExplicitMapping(2)
	b.SetPointMapEntry(0, 0)
	b.SetPointMapEntry(1, 1)

	// Same mapped values point for point, but different logical state.
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprint_MapContentsMatter(t *testing.T) {
	mk := func() *PointAttribute {
		pa := buildAttribute([]byte{1, 2, 3, 4, 5, 6, 7, 8})
		pa.SetExplicitMapping(3)
		pa.SetPointMapEntry(0, 0)
		pa.SetPointMapEntry(1, 1)
		pa.SetPointMapEntry(2, 0)
		return pa
	}

	a := mk()
	b := mk()
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	b.SetPointMapEntry(2, 1)
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}
