package element

import "github.com/matzehuels/whiteboard/pkg/geom"

// Default shape colors.
const (
	DefaultRectangleFill   = "#dbeafe"
	DefaultRectangleBorder = "#1e3a8a"
	DefaultEllipseFill     = "#dcfce7"
	DefaultEllipseBorder   = "#166534"
)

// Rectangle is a filled box with a border.
type Rectangle struct {
	Base
	Fill   string
	Border string
}

// NewRectangle returns a rectangle with the default colors.
func NewRectangle(id string, r geom.Rect) *Rectangle {
	return &Rectangle{
		Base:   NewBase(id, r),
		Fill:   DefaultRectangleFill,
		Border: DefaultRectangleBorder,
	}
}

func (r *Rectangle) Kind() Kind                 { return KindRectangle }
func (r *Rectangle) Contains(p geom.Point) bool { return r.inBounds(p) }
func (r *Rectangle) Controls() Controls         { return Controls{FillColor: true, BorderColor: true} }
func (r *Rectangle) FillColor() string          { return r.Fill }
func (r *Rectangle) SetFillColor(c string)      { r.Fill = c }
func (r *Rectangle) BorderColor() string        { return r.Border }
func (r *Rectangle) SetBorderColor(c string)    { r.Border = c }

func (r *Rectangle) ToJSON() JSON {
	j := r.toJSON(KindRectangle)
	j.FillColor = ptr(r.Fill)
	j.BorderColor = ptr(r.Border)
	return j
}

func rectangleFromJSON(j JSON) *Rectangle {
	return &Rectangle{
		Base:   baseFromJSON(j),
		Fill:   valueOr(j.FillColor, DefaultRectangleFill),
		Border: valueOr(j.BorderColor, DefaultRectangleBorder),
	}
}

// Ellipse is the ellipse inscribed in its bounds.
type Ellipse struct {
	Base
	Fill   string
	Border string
}

// NewEllipse returns an ellipse with the default colors.
func NewEllipse(id string, r geom.Rect) *Ellipse {
	return &Ellipse{
		Base:   NewBase(id, r),
		Fill:   DefaultEllipseFill,
		Border: DefaultEllipseBorder,
	}
}

func (e *Ellipse) Kind() Kind              { return KindEllipse }
func (e *Ellipse) Controls() Controls      { return Controls{FillColor: true, BorderColor: true} }
func (e *Ellipse) FillColor() string       { return e.Fill }
func (e *Ellipse) SetFillColor(c string)   { e.Fill = c }
func (e *Ellipse) BorderColor() string     { return e.Border }
func (e *Ellipse) SetBorderColor(c string) { e.Border = c }

// Contains tests p against the ellipse equation. A zero radius on either axis
// contains nothing.
func (e *Ellipse) Contains(p geom.Point) bool {
	rx := abs(e.Width) / 2
	ry := abs(e.Height) / 2
	if rx == 0 || ry == 0 {
		return false
	}
	c := e.Bounds().Center()
	nx := (p.X - c.X) / rx
	ny := (p.Y - c.Y) / ry
	return nx*nx+ny*ny <= 1
}

func (e *Ellipse) ToJSON() JSON {
	j := e.toJSON(KindEllipse)
	j.FillColor = ptr(e.Fill)
	j.BorderColor = ptr(e.Border)
	return j
}

func ellipseFromJSON(j JSON) *Ellipse {
	return &Ellipse{
		Base:   baseFromJSON(j),
		Fill:   valueOr(j.FillColor, DefaultEllipseFill),
		Border: valueOr(j.BorderColor, DefaultEllipseBorder),
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
