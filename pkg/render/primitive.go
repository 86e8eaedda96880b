package render

import (
	"github.com/matzehuels/whiteboard/pkg/element"
	"github.com/matzehuels/whiteboard/pkg/geom"
)

// Kind identifies a drawing primitive.
type Kind string

const (
	KindRect     Kind = "rect"
	KindEllipse  Kind = "ellipse"
	KindPolyline Kind = "polyline"
	KindPolygon  Kind = "polygon"
	KindText     Kind = "text"
	KindImage    Kind = "image"
)

// Primitive is one draw call in world coordinates. Which fields are used
// depends on Kind:
//
//   - rect: Bounds, Radius, Fill, Stroke, StrokeWidth, Dashed
//   - ellipse: Bounds, Fill, Stroke, StrokeWidth
//   - polyline, polygon: Points, Fill (polygon only), Stroke, StrokeWidth
//   - text: Bounds, Text, FontSize, FontWeight, Align, Color, Padding, Middle
//   - image: Bounds, DataURL
//
// An empty or "transparent" color means nothing is painted for it.
type Primitive struct {
	Kind      Kind   `json:"kind"`
	ElementID string `json:"elementId,omitempty"`

	Bounds geom.Rect    `json:"bounds"`
	Points []geom.Point `json:"points,omitempty"`
	Radius float64      `json:"radius,omitempty"`

	Fill        string  `json:"fill,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
	Dashed      bool    `json:"dashed,omitempty"`

	Text       string             `json:"text,omitempty"`
	FontSize   float64            `json:"fontSize,omitempty"`
	FontWeight element.FontWeight `json:"fontWeight,omitempty"`
	Align      element.TextAlign  `json:"align,omitempty"`
	Color      string             `json:"color,omitempty"`
	Padding    float64            `json:"padding,omitempty"`
	Middle     bool               `json:"middle,omitempty"` // center vertically

	DataURL string `json:"dataUrl,omitempty"`
}

// HasFill reports whether the primitive paints a fill.
func (p Primitive) HasFill() bool { return Visible(p.Fill) }

// HasStroke reports whether the primitive paints an outline.
func (p Primitive) HasStroke() bool { return Visible(p.Stroke) && p.StrokeWidth > 0 }
