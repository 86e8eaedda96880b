// Package controller turns pointer, wheel and keyboard-level commands into
// board mutations.
//
// A [Controller] owns a [board.Board] and a [viewport.Cell]. Pointer events
// arrive in screen coordinates and drive a small state machine:
//
//	idle -> panning     pan gesture
//	idle -> resizing    press on a handle of the single selected element
//	idle -> moving      press on an element
//	idle -> box-select  press on empty space
//	*    -> idle        pointer up
//
// Moves and resizes are always recomputed from the bounds captured at
// pointer down, so snap corrections never accumulate. Snapping aligns the
// dragged edges to a 40 unit grid and to the edges and centers of the other
// elements, within 8 screen pixels.
//
// The controller is not safe for concurrent use. It is meant to be driven
// by a single event loop; the only background work is icon hydration, whose
// results are delivered on [Controller.Hydrations] and applied by the loop
// with [Controller.ApplyHydration].
package controller
