package attribute

// DataType is the component data type of an attribute value. Together with
// the component count it fixes the byte stride of one stored record.
type DataType uint8

const (
	// DataTypeInvalid marks an uninitialized descriptor.
	DataTypeInvalid DataType = iota
	DataTypeInt8
	DataTypeUint8
	DataTypeInt16
	DataTypeUint16
	DataTypeInt32
	DataTypeUint32
	DataTypeInt64
	DataTypeUint64
	DataTypeFloat32
	DataTypeFloat64
	DataTypeBool
)

// ByteSize returns the size of a single component in bytes, or 0 for
// DataTypeInvalid.
func (dt DataType) ByteSize() int {
	switch dt {
	case DataTypeInt8, DataTypeUint8, DataTypeBool:
		return 1
	case DataTypeInt16, DataTypeUint16:
		return 2
	case DataTypeInt32, DataTypeUint32, DataTypeFloat32:
		return 4
	case DataTypeInt64, DataTypeUint64, DataTypeFloat64:
		return 8
	default:
		return 0
	}
}

// String implements fmt.Stringer.
func (dt DataType) String() string {
	switch dt {
	case DataTypeInt8:
		return "int8"
	case DataTypeUint8:
		return "uint8"
	case DataTypeInt16:
		return "int16"
	case DataTypeUint16:
		return "uint16"
	case DataTypeInt32:
		return "int32"
	case DataTypeUint32:
		return "uint32"
	case DataTypeInt64:
		return "int64"
	case DataTypeUint64:
		return "uint64"
	case DataTypeFloat32:
		return "float32"
	case DataTypeFloat64:
		return "float64"
	case DataTypeBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Type is the semantic role of an attribute within a geometry.
type Type uint8

const (
	// TypeGeneric is an attribute with no special semantic meaning.
	TypeGeneric Type = iota
	TypePosition
	TypeNormal
	TypeColor
	TypeTexCoord
)

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case TypePosition:
		return "position"
	case TypeNormal:
		return "normal"
	case TypeColor:
		return "color"
	case TypeTexCoord:
		return "tex_coord"
	default:
		return "generic"
	}
}
