// Package geom provides the world-space geometry used by the whiteboard engine.
//
// # Overview
//
// Everything in this package is a pure function over small value types:
//
//   - [Point] and [Rect]: world-space coordinates and axis-aligned boxes
//   - [DistanceToSegment]: point-to-segment distance for polyline hit tests
//   - [Resize] and [ResizeKeepAspect]: handle-driven resize math with a
//     [MinSize] floor on every edge
//   - [Snapper]: grid and neighbor snapping for moved and resized boxes
//
// # Snapping
//
// A moving box exposes three vertical lines (left, center, right) and three
// horizontal lines (top, middle, bottom). Each line is compared against the
// nearest grid multiple and against the same lines of every stationary box.
// The smallest correction within the threshold wins, per axis:
//
//	s := geom.Snapper{Grid: 40, Threshold: 8 / zoom}
//	offset := s.Move(moved, stationary)
//
// Exact ties are broken deterministically: a grid line beats a neighbor line,
// and among equal sources the lower target coordinate wins. This makes the
// result independent of the order in which stationary boxes are listed.
//
// # Resize
//
// [Resize] moves only the edges owned by the dragged [Handle] and never lets
// the box collapse below [MinSize]. [ResizeKeepAspect] anchors the corner
// opposite the handle and preserves the initial width/height ratio, which is
// how image elements are resized.
package geom
