// Package layout computes radar chart geometry.
//
// # Overview
//
// [Compute] turns an ordered list of dimensions and a flat list of
// technologies into planar geometry for a square chart of a given size:
//
//   - Ring boundaries: one closed regular D-gon per ring ([RingBoundary])
//   - Sectors: one wedge per dimension with its separator line ([Sector])
//   - Labels: one anchor per dimension, outside the outer ring ([Label])
//   - Legend: one fixed entry per ring ([LegendEntry])
//   - Points: one position per placeable technology ([Point])
//
// Angles follow screen coordinates with 0 at 12 o'clock: dimension 0 sits at
// the top and dimensions proceed clockwise. Ring r has outer radius
// (r+1)·MaxRadius/4.
//
// # Placement
//
// Technologies are placed with a deterministic jitter derived from [Seed], the
// sum of the character codes of the technology id. The angle is spread over
// the middle 60% of the sector around its edge midpoint; the radius over
// 70-100% of the ring's outer radius. The same id, ring and dimension always
// land on the same spot, regardless of which other technologies are present
// or in what order they are given.
//
// # Degenerate Input
//
// A technology whose ring or dimension cannot be resolved is left out of
// [Layout.Points] and recorded in [Layout.Skipped]. With zero dimensions or a
// non-positive size the layout is empty; nothing is divided by zero.
//
// # Concurrency
//
// Every function in this package is pure. Layouts may be computed from any
// number of goroutines.
package layout
