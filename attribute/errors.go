package attribute

import (
	"fmt"
)

// ErrUnsupportedLayout indicates a value layout the deduplication engine
// cannot interpret: either an unknown (data type, component count)
// combination, or a source whose layout does not match the target's.
//
// The failed attribute is left untouched; callers typically fall back to
// keeping the attribute uncompacted.
type ErrUnsupportedLayout struct {
	DataType      DataType
	NumComponents int
}

func (e *ErrUnsupportedLayout) Error() string {
	return fmt.Sprintf("unsupported attribute layout: %s x%d", e.DataType, e.NumComponents)
}
