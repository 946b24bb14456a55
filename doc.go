// Package geco is the attribute storage core of a 3D geometry (point
// cloud / mesh) compression library.
//
// A geometry carries typed per-point attributes (position, normal, color,
// texture coordinate, ...). Compression ratio depends on recognizing that
// many points share the exact same value and storing each distinct value
// only once. This module provides the building blocks for that:
//
//   - core: strong PointIndex / AttributeValueIndex types
//   - buffer: the raw resizable byte store backing attribute values
//   - attribute: descriptors, point attributes, the deduplication engine
//     and content fingerprints
//
// Encoding pipelines call attribute.PointAttribute.DeduplicateValues before
// entropy coding and rely on its deterministic first-seen ordering for
// reproducible compressed streams.
//
// The module performs no I/O and exposes no wire format; serialization of
// the deduplicated state is the concern of downstream encoders.
package geco
