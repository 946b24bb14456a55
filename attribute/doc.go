// Package attribute implements per-attribute value storage and
// deduplication for geometry compression.
//
// A geometry carries one or more attributes (position, normal, color, ...),
// each a sequence of fixed-size typed values addressed by strong index
// types from the core package. Many points legitimately share the exact
// same value; PointAttribute stores each distinct value once and maps
// points onto the shared entries, either implicitly (identity mapping) or
// through an explicit per-point index array.
//
// # Deduplication
//
// DeduplicateValues rewrites a raw, possibly redundant attribute into a
// minimal set of unique values plus an index mapping:
//
//	att := attribute.NewPointAttribute(
//		attribute.NewGeometryAttribute(attribute.TypeNormal, attribute.DataTypeFloat32, 3, false))
//	att.Reset(numPoints)
//	// ... fill values ...
//	uniqueCount, err := att.DeduplicateValues(&att.GeometryAttribute)
//
// The rewrite is canonical: values keep first-seen order, so repeated runs
// on identical input produce identical compressed output.
//
// # Fingerprints
//
// PointAttribute.Fingerprint computes a deterministic digest of the full
// logical state, usable by higher layers to memoize or compare whole
// attributes without a byte-wise scan.
package attribute
