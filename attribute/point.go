package attribute

import (
	"encoding/binary"

	"github.com/hupe1980/geco/buffer"
	"github.com/hupe1980/geco/core"
	"github.com/hupe1980/geco/internal/hash"
)

// pointMap resolves the unique-value entry referenced by a point. Exactly
// one of the two representations is active at any time, so an identity
// attribute can never carry a stale explicit map.
type pointMap interface {
	mappedIndex(p core.PointIndex) core.AttributeValueIndex
}

// identityMap is the storage-free mapping where point index and value index
// coincide.
type identityMap struct{}

func (identityMap) mappedIndex(p core.PointIndex) core.AttributeValueIndex {
	return core.AttributeValueIndex(p)
}

// explicitMap holds one value index per point, indexed by PointIndex.
type explicitMap []core.AttributeValueIndex

func (m explicitMap) mappedIndex(p core.PointIndex) core.AttributeValueIndex {
	return m[p]
}

// PointAttribute stores the per-point data of one attribute: the unique
// value records plus the mapping from point indices to value entries.
// Multiple points commonly share one value (shared normals on a flat face);
// the mapping is what makes that sharing representable.
//
// Unlike a bare GeometryAttribute, a PointAttribute owns its buffer.
//
// Thread safety: none. All access, including DeduplicateValues, is
// single-threaded per attribute.
type PointAttribute struct {
	GeometryAttribute

	pm               pointMap
	numUniqueEntries int
}

// NewPointAttribute creates an empty point attribute with the layout of the
// given descriptor and an identity mapping. Call Reset to allocate value
// storage.
func NewPointAttribute(att *GeometryAttribute) *PointAttribute {
	pa := &PointAttribute{pm: identityMap{}}
	pa.Init(att.AttributeType(), att.DataType(), att.NumComponents(), att.Normalized())
	return pa
}

// Reset prepares storage for numValues entries. Entry contents are
// undefined until written. The attribute re-homes to its own dense buffer
// regardless of any previously attached storage.
func (pa *PointAttribute) Reset(numValues int) {
	if pa.buf == nil {
		pa.buf = buffer.New()
	}
	entrySize := pa.EntrySize()
	pa.buf.Resize(numValues * entrySize)
	pa.byteStride = entrySize
	pa.byteOffset = 0
	pa.numUniqueEntries = numValues
}

// Size returns the number of currently valid unique entries.
func (pa *PointAttribute) Size() int { return pa.numUniqueEntries }

// Resize sets the logical unique-entry count without touching buffer
// contents. Entries in range must remain meaningful; this exists to support
// shrink-after-dedup without a reallocation.
func (pa *PointAttribute) Resize(numUniqueEntries int) {
	pa.numUniqueEntries = numUniqueEntries
}

// MappedIndex resolves the value entry referenced by point p. In identity
// mode this is the point index itself; in explicit mode an array lookup.
func (pa *PointAttribute) MappedIndex(p core.PointIndex) core.AttributeValueIndex {
	return pa.pm.mappedIndex(p)
}

// IsMappingIdentity reports whether the point-to-value mapping is the
// storage-free identity.
func (pa *PointAttribute) IsMappingIdentity() bool {
	_, ok := pa.pm.(identityMap)
	return ok
}

// SetIdentityMapping switches to identity mapping, discarding any explicit
// map. Requires Size() to cover every point of the owning geometry.
func (pa *PointAttribute) SetIdentityMapping() {
	pa.pm = identityMap{}
}

// SetExplicitMapping switches to an explicit map of numPoints slots, all
// initialized to core.InvalidAttributeValueIndex. Any prior map is
// discarded.
func (pa *PointAttribute) SetExplicitMapping(numPoints int) {
	m := make(explicitMap, numPoints)
	for i := range m {
		m[i] = core.InvalidAttributeValueIndex
	}
	pa.pm = m
}

// SetPointMapEntry sets the value entry referenced by point p. Only valid
// in explicit mode; calling it on an identity mapping is a contract
// violation.
func (pa *PointAttribute) SetPointMapEntry(p core.PointIndex, v core.AttributeValueIndex) {
	m, ok := pa.pm.(explicitMap)
	if !ok {
		panic("attribute: SetPointMapEntry on identity mapping")
	}
	m[p] = v
}

// NumPoints returns the explicit map length, or 0 for identity mapping.
func (pa *PointAttribute) NumPoints() int {
	if m, ok := pa.pm.(explicitMap); ok {
		return len(m)
	}
	return 0
}

// SetAttributeValue copies one entry-sized value into entry idx. idx must
// be below Size().
func (pa *PointAttribute) SetAttributeValue(idx core.AttributeValueIndex, value []byte) {
	pa.buf.Write(int(idx)*pa.byteStride, value[:pa.EntrySize()])
}

// GetMappedValue copies the value referenced by point p into out. It is the
// composition of MappedIndex and GetValue.
func (pa *PointAttribute) GetMappedValue(p core.PointIndex, out []byte) {
	pa.GetValue(pa.MappedIndex(p), out)
}

// MappedValue returns the bytes of the value referenced by point p. The
// slice aliases internal memory and is invalidated by the next mutation.
func (pa *PointAttribute) MappedValue(p core.PointIndex) []byte {
	return pa.valueBytes(pa.MappedIndex(p))
}

// CopyFrom replaces this attribute's state with a deep copy of other.
func (pa *PointAttribute) CopyFrom(other *PointAttribute) {
	pa.Init(other.attributeType, other.dataType, other.numComponents, other.normalized)
	if pa.buf == nil {
		pa.buf = buffer.New()
	}
	if other.buf != nil {
		pa.buf.Update(other.buf.Data())
	} else {
		pa.buf.Resize(0)
	}
	pa.byteStride = other.byteStride
	pa.byteOffset = other.byteOffset
	pa.numUniqueEntries = other.numUniqueEntries

	if m, ok := other.pm.(explicitMap); ok {
		cp := make(explicitMap, len(m))
		copy(cp, m)
		pa.pm = cp
	} else {
		pa.pm = identityMap{}
	}
}

// Fingerprint returns a deterministic fingerprint of the attribute's full
// logical state: the descriptor layout, the mapping mode, the unique-entry
// count, the map contents and the buffer contents, combined in that fixed
// order. Equal logical state always fingerprints equal; this is an
// equality/caching key, not a cryptographic digest.
func (pa *PointAttribute) Fingerprint() uint64 {
	h := pa.GeometryAttribute.Fingerprint()
	h = hash.CombineBool(pa.IsMappingIdentity(), h)
	h = hash.Combine(uint64(pa.numUniqueEntries), h)

	m, _ := pa.pm.(explicitMap)
	h = hash.Combine(uint64(len(m)), h)
	if len(m) > 0 {
		raw := make([]byte, len(m)*4)
		for i, v := range m {
			binary.LittleEndian.PutUint32(raw[i*4:], uint32(v))
		}
		h = hash.Combine(hash.Fingerprint(raw), h)
	}
	if pa.buf != nil {
		h = hash.Combine(hash.Fingerprint(pa.buf.Data()), h)
	}
	return h
}
