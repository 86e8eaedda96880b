package render

import (
	"github.com/matzehuels/whiteboard/pkg/element"
	"github.com/matzehuels/whiteboard/pkg/geom"
)

// Scene is a whole board ready to paint.
type Scene struct {
	Primitives []Primitive `json:"primitives"`
	// Bounds is the union of the element bounds; zero for an empty board.
	Bounds geom.Rect `json:"bounds"`
}

// NewScene describes elements in z-order.
func NewScene(elements []element.Element, opts ...Option) Scene {
	var s Scene
	rects := make([]geom.Rect, 0, len(elements))
	for _, e := range elements {
		s.Primitives = append(s.Primitives, Describe(e, opts...)...)
		rects = append(rects, extent(e))
	}
	s.Bounds, _ = geom.Union(rects)
	return s
}

// extent is the area an element may paint, including the stroke of a
// freehand line.
func extent(e element.Element) geom.Rect {
	b := e.Common().Bounds()
	if f, ok := e.(*element.FreeDraw); ok {
		half := f.StrokeWidth / 2
		b = geom.Rect{X: b.X - half, Y: b.Y - half, Width: b.Width + f.StrokeWidth, Height: b.Height + f.StrokeWidth}
	}
	return b
}

// Frame maps world coordinates onto an output surface.
type Frame struct {
	Origin  geom.Point // world point drawn at (Padding, Padding)
	Scale   float64
	Padding float64
	Width   float64 // output size including padding
	Height  float64
}

// NewFrame fits bounds into an output surface with padding around it. The
// surface is never smaller than one unit in each direction.
func NewFrame(bounds geom.Rect, padding, scale float64) Frame {
	if scale <= 0 {
		scale = 1
	}
	return Frame{
		Origin:  geom.Point{X: bounds.X, Y: bounds.Y},
		Scale:   scale,
		Padding: padding,
		Width:   max(1, bounds.Width*scale+2*padding),
		Height:  max(1, bounds.Height*scale+2*padding),
	}
}

// Point maps a world point to the surface.
func (f Frame) Point(p geom.Point) geom.Point {
	return geom.Point{
		X: (p.X-f.Origin.X)*f.Scale + f.Padding,
		Y: (p.Y-f.Origin.Y)*f.Scale + f.Padding,
	}
}

// Rect maps a world box to the surface.
func (f Frame) Rect(r geom.Rect) geom.Rect {
	p := f.Point(geom.Point{X: r.X, Y: r.Y})
	return geom.Rect{X: p.X, Y: p.Y, Width: r.Width * f.Scale, Height: r.Height * f.Scale}
}

// Length scales a world length.
func (f Frame) Length(v float64) float64 { return v * f.Scale }
