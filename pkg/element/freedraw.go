package element

import (
	"math"

	"github.com/matzehuels/whiteboard/pkg/geom"
)

// Freehand stroke defaults.
const (
	DefaultStrokeWidth = 3.0
	DefaultStrokeColor = "#9ca3af"
)

// FreeDraw is a freehand polyline. Points are stored in unit space relative
// to the bounds, so resizing the element rescales the stroke.
type FreeDraw struct {
	Base
	Points      []geom.Point
	StrokeWidth float64
	StrokeColor string
}

func defaultStroke() []geom.Point {
	return []geom.Point{{X: 0, Y: 0.5}, {X: 1, Y: 0.5}}
}

// NewFreeDraw returns a stroke over r. Fewer than two points are replaced by
// a horizontal line through the middle of the box.
func NewFreeDraw(id string, r geom.Rect, points []geom.Point) *FreeDraw {
	f := &FreeDraw{
		Base:        NewBase(id, r),
		Points:      defaultStroke(),
		StrokeWidth: DefaultStrokeWidth,
		StrokeColor: DefaultStrokeColor,
	}
	if len(points) >= 2 {
		f.Points = append([]geom.Point(nil), points...)
	}
	return f
}

// FreeDrawFromPath builds a stroke from world-space points. The bounds are
// fitted to the path, floored at one unit on each axis, and the points are
// normalized into them. It returns false for fewer than two points.
func FreeDrawFromPath(id string, path []geom.Point, width float64, color string) (*FreeDraw, bool) {
	if len(path) < 2 {
		return nil, false
	}
	bounds, _ := geom.BoundsOf(path)
	bounds.Width = math.Max(1, bounds.Width)
	bounds.Height = math.Max(1, bounds.Height)

	points := make([]geom.Point, len(path))
	for i, p := range path {
		points[i] = geom.Point{
			X: (p.X - bounds.X) / bounds.Width,
			Y: (p.Y - bounds.Y) / bounds.Height,
		}
	}

	f := NewFreeDraw(id, bounds, points)
	if width > 0 {
		f.StrokeWidth = math.Max(1, width)
	}
	if color != "" {
		f.StrokeColor = color
	}
	return f, true
}

func (f *FreeDraw) Kind() Kind              { return KindFreeDraw }
func (f *FreeDraw) Controls() Controls      { return Controls{BorderColor: true} }
func (f *FreeDraw) BorderColor() string     { return f.StrokeColor }
func (f *FreeDraw) SetBorderColor(c string) { f.StrokeColor = c }

// AbsolutePoints maps the stroke into world space.
func (f *FreeDraw) AbsolutePoints() []geom.Point {
	out := make([]geom.Point, len(f.Points))
	for i, p := range f.Points {
		out[i] = geom.Point{X: f.X + p.X*f.Width, Y: f.Y + p.Y*f.Height}
	}
	return out
}

// HitPadding is the distance from the stroke that still counts as a hit.
func (f *FreeDraw) HitPadding() float64 {
	return math.Max(12, f.StrokeWidth*2+4)
}

// Contains reports whether p lies within HitPadding of any segment.
func (f *FreeDraw) Contains(p geom.Point) bool {
	if len(f.Points) < 2 {
		return false
	}
	pad := f.HitPadding()
	if p.X < f.X-pad || p.X > f.X+f.Width+pad || p.Y < f.Y-pad || p.Y > f.Y+f.Height+pad {
		return false
	}

	abs := f.AbsolutePoints()
	for i := 1; i < len(abs); i++ {
		if geom.DistanceToSegment(p, abs[i-1], abs[i]) <= pad {
			return true
		}
	}
	return false
}

func (f *FreeDraw) ToJSON() JSON {
	j := f.toJSON(KindFreeDraw)
	j.Points = append([]geom.Point(nil), f.Points...)
	j.StrokeWidth = ptr(f.StrokeWidth)
	j.StrokeColor = ptr(f.StrokeColor)
	return j
}

func freeDrawFromJSON(j JSON) *FreeDraw {
	var points []geom.Point
	if len(j.Points) >= 2 {
		for _, p := range j.Points {
			if isFinite(p.X) && isFinite(p.Y) {
				points = append(points, p)
			}
		}
	}

	base := baseFromJSON(j)
	base.Width = math.Max(1, base.Width)
	base.Height = math.Max(1, base.Height)

	f := &FreeDraw{
		Base:        base,
		Points:      defaultStroke(),
		StrokeWidth: math.Max(1, valueOr(j.StrokeWidth, DefaultStrokeWidth)),
		StrokeColor: valueOr(j.StrokeColor, DefaultStrokeColor),
	}
	if len(points) >= 2 {
		f.Points = points
	}
	return f
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
