// Package mem provides memory allocation utilities.
//
// Attribute value buffers are allocated 64-byte aligned so that downstream
// vectorized readers (quantizers, predictors) can load whole records without
// crossing cache lines.
package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of all buffer allocations (64 bytes,
// cache-line and AVX-512 friendly).
const Alignment = 64

// AllocAligned allocates a byte slice of the given size with 64-byte
// alignment. The returned slice is guaranteed to start at a memory address
// divisible by 64.
//
// Note: This function allocates slightly more memory than requested to
// ensure alignment. The underlying array is kept alive by the returned
// slice.
func AllocAligned(size int) []byte {
	if size == 0 {
		return nil
	}

	// Allocate size + alignment so an aligned offset always exists within
	// the block.
	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}
