// Package core defines the strong index types shared by all geometry
// packages.
//
// PointIndex and AttributeValueIndex are deliberately distinct named types:
// a point id must never be used where a value id is expected (and vice
// versa) without an explicit conversion at the call site.
package core

// PointIndex identifies a single point of the geometry that owns an
// attribute. It is strictly 32-bit, allowing for max 4 billion points per
// geometry. Beyond equality, ordering and use as a subscript it carries no
// arithmetic semantics.
type PointIndex uint32

// AttributeValueIndex identifies one stored unique attribute value. For an
// attribute over N points there are at most N unique values.
type AttributeValueIndex uint32

// InvalidAttributeValueIndex marks an unset entry in an explicit
// point-to-value map. Reading a slot that still holds this sentinel is a
// caller contract violation.
const InvalidAttributeValueIndex = ^AttributeValueIndex(0)
