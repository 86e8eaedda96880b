// Package viewport maps between world and screen coordinates.
//
// A Viewport is the affine transform
//
//	screen = (world + offset) * zoom
//	world  = screen / zoom - offset
//
// with zoom clamped to [MinZoom, MaxZoom].
package viewport

import (
	"math"

	"github.com/matzehuels/whiteboard/pkg/geom"
)

const (
	MinZoom = 0.2
	MaxZoom = 4.0

	// Per-tick wheel factors.
	ZoomInFactor  = 1.1
	ZoomOutFactor = 0.9
)

// Viewport is the zoom and pan state of a board view.
type Viewport struct {
	Zoom    float64 `json:"zoom"`
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
}

// Default returns the identity viewport.
func Default() Viewport { return Viewport{Zoom: 1} }

// ClampZoom limits z to [MinZoom, MaxZoom]. Non-finite or non-positive
// values yield 1.
func ClampZoom(z float64) float64 {
	if math.IsNaN(z) || math.IsInf(z, 0) || z <= 0 {
		return 1
	}
	return math.Min(MaxZoom, math.Max(MinZoom, z))
}

// Normalize returns v with a clamped zoom and finite offsets.
func (v Viewport) Normalize() Viewport {
	v.Zoom = ClampZoom(v.Zoom)
	if math.IsNaN(v.OffsetX) || math.IsInf(v.OffsetX, 0) {
		v.OffsetX = 0
	}
	if math.IsNaN(v.OffsetY) || math.IsInf(v.OffsetY, 0) {
		v.OffsetY = 0
	}
	return v
}

// ToWorld converts a screen point into world space.
func (v Viewport) ToWorld(p geom.Point) geom.Point {
	return geom.Point{X: p.X/v.Zoom - v.OffsetX, Y: p.Y/v.Zoom - v.OffsetY}
}

// ToScreen converts a world point into screen space.
func (v Viewport) ToScreen(p geom.Point) geom.Point {
	return geom.Point{X: (p.X + v.OffsetX) * v.Zoom, Y: (p.Y + v.OffsetY) * v.Zoom}
}

// WorldLength converts a screen distance into world units.
func (v Viewport) WorldLength(px float64) float64 {
	return px / math.Max(0.0001, v.Zoom)
}

// Pan moves the view by a screen-space delta.
func (v Viewport) Pan(screenDelta geom.Point) Viewport {
	v.OffsetX += screenDelta.X / v.Zoom
	v.OffsetY += screenDelta.Y / v.Zoom
	return v
}

// ZoomAt applies one wheel tick anchored at the screen point. A positive
// deltaY zooms out, anything else zooms in. The world point under the cursor
// stays under the cursor.
func (v Viewport) ZoomAt(screen geom.Point, deltaY float64) Viewport {
	factor := ZoomInFactor
	if deltaY > 0 {
		factor = ZoomOutFactor
	}
	return v.ZoomTo(screen, v.Zoom*factor)
}

// ZoomTo sets the zoom to z, clamped, keeping the world point under screen
// fixed.
func (v Viewport) ZoomTo(screen geom.Point, z float64) Viewport {
	before := v.ToWorld(screen)
	next := ClampZoom(z)
	return Viewport{
		Zoom:    next,
		OffsetX: screen.X/next - before.X,
		OffsetY: screen.Y/next - before.Y,
	}
}
