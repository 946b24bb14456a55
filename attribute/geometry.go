package attribute

import (
	"github.com/hupe1980/geco/buffer"
	"github.com/hupe1980/geco/core"
	"github.com/hupe1980/geco/internal/hash"
)

// GeometryAttribute describes one typed data channel of a geometry: its
// semantic role, component layout, and the byte region of a DataBuffer that
// holds its values.
//
// The layout (data type, component count, stride) is fixed at Init and
// never changes for the lifetime of the attribute. A GeometryAttribute does
// not own its buffer; see PointAttribute for the owning variant.
type GeometryAttribute struct {
	buf *buffer.DataBuffer

	attributeType Type
	dataType      DataType
	numComponents int
	normalized    bool

	// Values of entry i live at byteOffset + i*byteStride. A stride larger
	// than the entry size allows interleaved layouts where several
	// attributes share one buffer.
	byteStride int
	byteOffset int
}

// Init configures the descriptor. The default byte stride is the dense
// entry size (component size times component count); use SetBuffer to
// attach storage with a different stride or base offset.
func (a *GeometryAttribute) Init(attributeType Type, dataType DataType, numComponents int, normalized bool) {
	a.attributeType = attributeType
	a.dataType = dataType
	a.numComponents = numComponents
	a.normalized = normalized
	a.byteStride = dataType.ByteSize() * numComponents
	a.byteOffset = 0
}

// NewGeometryAttribute returns a descriptor with the given layout and no
// attached buffer.
func NewGeometryAttribute(attributeType Type, dataType DataType, numComponents int, normalized bool) *GeometryAttribute {
	a := &GeometryAttribute{}
	a.Init(attributeType, dataType, numComponents, normalized)
	return a
}

// SetBuffer attaches buf as the value storage, with entry i starting at
// byteOffset + i*byteStride.
func (a *GeometryAttribute) SetBuffer(buf *buffer.DataBuffer, byteStride, byteOffset int) {
	a.buf = buf
	a.byteStride = byteStride
	a.byteOffset = byteOffset
}

// AttributeType returns the semantic role of the attribute.
func (a *GeometryAttribute) AttributeType() Type { return a.attributeType }

// DataType returns the component data type.
func (a *GeometryAttribute) DataType() DataType { return a.dataType }

// NumComponents returns the number of components per value.
func (a *GeometryAttribute) NumComponents() int { return a.numComponents }

// Normalized reports whether integer values represent normalized [0, 1]
// quantities.
func (a *GeometryAttribute) Normalized() bool { return a.normalized }

// ByteStride returns the distance in bytes between consecutive entries.
func (a *GeometryAttribute) ByteStride() int { return a.byteStride }

// ByteOffset returns the byte position of entry 0 within the buffer.
func (a *GeometryAttribute) ByteOffset() int { return a.byteOffset }

// Buffer returns the attached value buffer, or nil.
func (a *GeometryAttribute) Buffer() *buffer.DataBuffer { return a.buf }

// EntrySize returns the dense byte size of one value (component size times
// component count). This is the number of meaningful bytes per entry even
// when the stride is larger.
func (a *GeometryAttribute) EntrySize() int {
	return a.dataType.ByteSize() * a.numComponents
}

// GetValue copies len(out) bytes of entry idx into out. len(out) must not
// exceed the entry size; idx must address a valid entry of the attached
// buffer.
func (a *GeometryAttribute) GetValue(idx core.AttributeValueIndex, out []byte) {
	a.buf.Read(a.byteOffset+int(idx)*a.byteStride, out)
}

// valueBytes returns the bytes of entry idx, aliasing the buffer.
func (a *GeometryAttribute) valueBytes(idx core.AttributeValueIndex) []byte {
	pos := a.byteOffset + int(idx)*a.byteStride
	return a.buf.Data()[pos : pos+a.EntrySize()]
}

// Fingerprint returns a deterministic fingerprint of the descriptor layout.
// It covers the semantic type and the value layout but not the attached
// buffer, so two independently built attributes with equal layout (and,
// via PointAttribute.Fingerprint, equal contents) fingerprint identically.
func (a *GeometryAttribute) Fingerprint() uint64 {
	h := hash.Combine(uint64(a.attributeType), 0)
	h = hash.Combine(uint64(a.dataType), h)
	h = hash.Combine(uint64(a.numComponents), h)
	h = hash.CombineBool(a.normalized, h)
	h = hash.Combine(uint64(a.byteStride), h)
	return hash.Combine(uint64(a.byteOffset), h)
}
