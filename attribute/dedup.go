package attribute

import (
	"encoding/binary"
	"math"

	"github.com/hupe1980/geco/buffer"
	"github.com/hupe1980/geco/core"
)

// maxDedupComponents is the largest component count the deduplication
// engine knows how to key. Wider layouts fail with ErrUnsupportedLayout.
const maxDedupComponents = 8

// DeduplicateValues collapses duplicate values referenced by this
// attribute's entries, reading them from in. in may be this attribute's own
// descriptor (in-place compaction).
//
// Distinct values are assigned sequential output indices in first-seen
// order, which makes the result canonical: identical input always produces
// an identical value store and map. On success the new unique-entry count
// is returned and the point-to-value map is rewritten accordingly
// (an identity mapping that no longer holds becomes explicit). On failure
// the attribute is untouched.
//
// The result is written into the receiver's attached buffer, so the
// receiver must own that storage exclusively (a Reset attribute does). A
// receiver still attached to a shared interleaved buffer would clobber the
// other attributes resident in it.
func (pa *PointAttribute) DeduplicateValues(in *GeometryAttribute) (int, error) {
	return pa.DeduplicateValuesFrom(in, 0)
}

// DeduplicateValuesFrom is DeduplicateValues with a sampling offset: entry
// i of this attribute is read from entry i+offset of in. This supports
// sources whose logical entries start partway into a shared interleaved
// buffer.
func (pa *PointAttribute) DeduplicateValuesFrom(in *GeometryAttribute, offset core.AttributeValueIndex) (int, error) {
	if in.DataType() != pa.dataType || in.NumComponents() != pa.numComponents {
		return 0, &ErrUnsupportedLayout{DataType: in.DataType(), NumComponents: in.NumComponents()}
	}

	// One generic instantiation per component type. Keying the lookup with
	// decoded component values (not raw bytes) gives each type its own
	// equality: float zero signs collapse, NaN never matches.
	switch in.DataType() {
	case DataTypeInt8:
		return deduplicateTyped(pa, in, offset, decodeInt8)
	case DataTypeUint8, DataTypeBool:
		return deduplicateTyped(pa, in, offset, decodeUint8)
	case DataTypeInt16:
		return deduplicateTyped(pa, in, offset, decodeInt16)
	case DataTypeUint16:
		return deduplicateTyped(pa, in, offset, decodeUint16)
	case DataTypeInt32:
		return deduplicateTyped(pa, in, offset, decodeInt32)
	case DataTypeUint32:
		return deduplicateTyped(pa, in, offset, decodeUint32)
	case DataTypeInt64:
		return deduplicateTyped(pa, in, offset, decodeInt64)
	case DataTypeUint64:
		return deduplicateTyped(pa, in, offset, decodeUint64)
	case DataTypeFloat32:
		return deduplicateTyped(pa, in, offset, decodeFloat32)
	case DataTypeFloat64:
		return deduplicateTyped(pa, in, offset, decodeFloat64)
	default:
		return 0, &ErrUnsupportedLayout{DataType: in.DataType(), NumComponents: in.NumComponents()}
	}
}

// valueKey is the lookup key for one decoded value. Components beyond the
// attribute's count stay at the zero value, so keys of a single dedup run
// compare exactly on the meaningful components.
type valueKey[T comparable] struct {
	c [maxDedupComponents]T
}

func deduplicateTyped[T comparable](pa *PointAttribute, in *GeometryAttribute, offset core.AttributeValueIndex, decode func([]byte) T) (int, error) {
	numComponents := in.NumComponents()
	if numComponents < 1 || numComponents > maxDedupComponents {
		return 0, &ErrUnsupportedLayout{DataType: in.DataType(), NumComponents: numComponents}
	}

	n := pa.numUniqueEntries
	if n == 0 {
		return 0, nil
	}

	entrySize := in.EntrySize()
	componentSize := in.DataType().ByteSize()

	// Unique values are accumulated into fresh storage and swapped in at
	// the end. The source bytes are therefore never overwritten while still
	// being read, which is what makes the self-alias case safe, and a
	// failed run leaves the attribute in its prior state.
	lookup := make(map[valueKey[T]]core.AttributeValueIndex, n)
	valueMap := make([]core.AttributeValueIndex, n)
	uniqueData := make([]byte, 0, n*entrySize)
	scratch := make([]byte, entrySize)

	unique := 0
	for i := 0; i < n; i++ {
		in.GetValue(offset+core.AttributeValueIndex(i), scratch)

		var k valueKey[T]
		for c := 0; c < numComponents; c++ {
			k.c[c] = decode(scratch[c*componentSize:])
		}

		idx, ok := lookup[k]
		if !ok {
			idx = core.AttributeValueIndex(unique)
			lookup[k] = idx
			uniqueData = append(uniqueData, scratch...)
			unique++
		}
		valueMap[i] = idx
	}

	// The values are committed even when nothing collapsed: the source may
	// be a different attribute, or the receiver's own entries sampled at an
	// offset, and either way the destination must end up holding them at
	// their output positions.
	if pa.buf == nil {
		pa.buf = buffer.New()
	}
	pa.buf.Update(uniqueData)
	pa.byteStride = entrySize
	pa.byteOffset = 0

	if unique == n {
		// Every entry was already distinct; the mapping is unchanged.
		return unique, nil
	}

	switch m := pa.pm.(type) {
	case explicitMap:
		// Remap every point through the old-to-new index map.
		for p, old := range m {
			m[p] = valueMap[old]
		}
	default:
		// The identity no longer holds once entries collapsed; switch to an
		// explicit map over the former entry count (one slot per point).
		pa.SetExplicitMapping(n)
		for i, v := range valueMap {
			pa.SetPointMapEntry(core.PointIndex(i), v)
		}
	}

	pa.numUniqueEntries = unique
	return unique, nil
}

func decodeInt8(b []byte) int8   { return int8(b[0]) }
func decodeUint8(b []byte) uint8 { return b[0] }

func decodeInt16(b []byte) int16   { return int16(binary.LittleEndian.Uint16(b)) }
func decodeUint16(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }

func decodeInt32(b []byte) int32   { return int32(binary.LittleEndian.Uint32(b)) }
func decodeUint32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }

func decodeInt64(b []byte) int64   { return int64(binary.LittleEndian.Uint64(b)) }
func decodeUint64(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }

func decodeFloat32(b []byte) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(b)) }
func decodeFloat64(b []byte) float64 { return math.Float64frombits(binary.LittleEndian.Uint64(b)) }
