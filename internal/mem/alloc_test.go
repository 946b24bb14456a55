package mem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestAllocAligned(t *testing.T) {
	sizes := []int{1, 10, 63, 64, 65, 100, 1024}

	for _, size := range sizes {
		buf := AllocAligned(size)
		assert.Len(t, buf, size)

		ptr := unsafe.Pointer(&buf[0])
		addr := uintptr(ptr)
		assert.Equal(t, uintptr(0), addr%Alignment, "address %d should be aligned to %d for size %d", addr, Alignment, size)
	}
}

func TestAllocAligned_Zero(t *testing.T) {
	assert.Nil(t, AllocAligned(0))
}

func TestAllocAligned_Writable(t *testing.T) {
	buf := AllocAligned(128)
	for i := range buf {
		buf[i] = byte(i)
	}
	for i := range buf {
		assert.Equal(t, byte(i), buf[i])
	}
}
