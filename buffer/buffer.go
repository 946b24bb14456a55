// Package buffer provides the raw byte storage backing attribute values.
//
// A DataBuffer is an opaque, resizable byte region. Attribute code
// addresses it as entry_index*stride (plus an optional base offset for
// interleaved layouts); the buffer itself knows nothing about strides or
// entries.
//
// Thread safety: none. A buffer is owned by exactly one attribute and all
// access is single-threaded (see the attribute package contract).
package buffer

import (
	"github.com/hupe1980/geco/internal/mem"
)

// DataBuffer is a contiguous resizable byte store.
//
// The zero value is an empty buffer ready for use. Slices returned by Data
// alias internal memory and are invalidated by the next Resize or Update.
type DataBuffer struct {
	data []byte
}

// New creates an empty DataBuffer.
func New() *DataBuffer {
	return &DataBuffer{}
}

// NewWithSize creates a DataBuffer of the given size. The contents are
// zeroed.
func NewWithSize(size int) *DataBuffer {
	b := &DataBuffer{}
	b.Resize(size)
	return b
}

// Size returns the current logical size in bytes.
func (b *DataBuffer) Size() int {
	return len(b.data)
}

// Data returns the underlying bytes. The slice aliases internal memory; do
// not hold it across a Resize or Update.
func (b *DataBuffer) Data() []byte {
	return b.data
}

// Resize grows or shrinks the buffer to size bytes. Bytes within the
// retained prefix are preserved; newly exposed bytes are zero. Shrinking
// never reallocates, so a later grow back into previous capacity is cheap.
func (b *DataBuffer) Resize(size int) {
	if size <= cap(b.data) {
		old := len(b.data)
		b.data = b.data[:size]
		if size > old {
			clear(b.data[old:])
		}
		return
	}
	grown := mem.AllocAligned(size)
	copy(grown, b.data)
	b.data = grown
}

// Write copies data into the buffer starting at offset. The target range
// [offset, offset+len(data)) must lie within the current size; writing out
// of range is a caller contract violation and panics.
func (b *DataBuffer) Write(offset int, data []byte) {
	if offset < 0 || offset+len(data) > len(b.data) {
		panic("buffer: write out of range")
	}
	copy(b.data[offset:], data)
}

// Read copies len(out) bytes starting at offset into out. The source range
// must lie within the current size.
func (b *DataBuffer) Read(offset int, out []byte) {
	if offset < 0 || offset+len(out) > len(b.data) {
		panic("buffer: read out of range")
	}
	copy(out, b.data[offset:])
}

// Update replaces the whole buffer contents with data, resizing as needed.
func (b *DataBuffer) Update(data []byte) {
	b.Resize(len(data))
	copy(b.data, data)
}
