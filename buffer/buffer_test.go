package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataBuffer_Basic(t *testing.T) {
	b := NewWithSize(8)
	require.Equal(t, 8, b.Size())

	b.Write(2, []byte{1, 2, 3})

	out := make([]byte, 3)
	b.Read(2, out)
	assert.Equal(t, []byte{1, 2, 3}, out)
}

func TestDataBuffer_ZeroValue(t *testing.T) {
	var b DataBuffer
	assert.Equal(t, 0, b.Size())
	assert.Nil(t, b.Data())

	b.Resize(4)
	assert.Equal(t, []byte{0, 0, 0, 0}, b.Data())
}

func TestDataBuffer_ResizePreservesPrefix(t *testing.T) {
	b := NewWithSize(4)
	b.Write(0, []byte{9, 8, 7, 6})

	b.Resize(2)
	assert.Equal(t, []byte{9, 8}, b.Data())

	// Growing back into retained capacity exposes zeroed bytes, not stale
	// ones.
	b.Resize(4)
	assert.Equal(t, []byte{9, 8, 0, 0}, b.Data())
}

func TestDataBuffer_Update(t *testing.T) {
	b := NewWithSize(2)
	b.Update([]byte{5, 6, 7})
	assert.Equal(t, 3, b.Size())
	assert.Equal(t, []byte{5, 6, 7}, b.Data())
}

func TestDataBuffer_OutOfRange(t *testing.T) {
	b := NewWithSize(4)

	assert.Panics(t, func() { b.Write(3, []byte{1, 2}) })
	assert.Panics(t, func() { b.Read(-1, make([]byte, 1)) })
}
