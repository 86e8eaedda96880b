package element

import (
	"github.com/matzehuels/whiteboard/pkg/geom"
)

// Kind is the type tag stored in the "type" field of the JSON form.
type Kind string

const (
	KindRectangle Kind = "rectangle"
	KindEllipse   Kind = "ellipse"
	KindText      Kind = "text"
	KindSticky    Kind = "sticky"
	KindImage     Kind = "image"
	KindVideo     Kind = "video"
	KindFreeDraw  Kind = "freedraw"
)

// Kinds lists every element kind.
var Kinds = []Kind{KindRectangle, KindEllipse, KindText, KindSticky, KindImage, KindVideo, KindFreeDraw}

// Valid reports whether k names a known element kind.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// TextAlign is the horizontal alignment of text inside its box.
type TextAlign string

const (
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
	AlignRight  TextAlign = "right"
)

// Valid reports whether a is one of the three alignments.
func (a TextAlign) Valid() bool {
	return a == AlignLeft || a == AlignCenter || a == AlignRight
}

// FontWeight is the weight of text.
type FontWeight string

const (
	WeightNormal FontWeight = "normal"
	WeightBold   FontWeight = "bold"
)

// Valid reports whether w is a supported weight.
func (w FontWeight) Valid() bool { return w == WeightNormal || w == WeightBold }

// Controls lists the style controls that are meaningful for a variant.
type Controls struct {
	FillColor   bool `json:"fillColor"`
	BorderColor bool `json:"borderColor"`
	TextColor   bool `json:"textColor"`
	TextAlign   bool `json:"textAlign"`
	FontSize    bool `json:"fontSize"`
	FontWeight  bool `json:"fontWeight"`
}

// Element is implemented by every whiteboard shape.
type Element interface {
	// ID returns the element's stable identifier.
	ID() string
	// Kind returns the variant tag.
	Kind() Kind
	// Common exposes the shared spatial fields for in-place mutation.
	Common() *Base
	// Contains reports whether the world point p hits the element.
	Contains(p geom.Point) bool
	// Controls reports which style controls apply to the variant.
	Controls() Controls
	// ToJSON returns the persisted form.
	ToJSON() JSON

	sealed()
}

// Base holds the fields shared by all variants.
type Base struct {
	id       string
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Rotation float64 // persisted, never changed by interaction
	Selected bool
}

// NewBase returns a Base with the given id and bounds.
func NewBase(id string, r geom.Rect) Base {
	return Base{id: id, X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func (b *Base) ID() string    { return b.id }
func (b *Base) Common() *Base { return b }
func (b *Base) sealed()       {}

// Bounds returns the element's axis-aligned box.
func (b *Base) Bounds() geom.Rect {
	return geom.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// SetBounds moves and resizes the element.
func (b *Base) SetBounds(r geom.Rect) {
	b.X, b.Y, b.Width, b.Height = r.X, r.Y, r.Width, r.Height
}

// SetPosition moves the element without resizing it.
func (b *Base) SetPosition(p geom.Point) {
	b.X, b.Y = p.X, p.Y
}

func (b *Base) inBounds(p geom.Point) bool {
	return b.Bounds().Contains(p)
}

func (b *Base) toJSON(kind Kind) JSON {
	return JSON{
		Type:       kind,
		ID:         b.id,
		X:          b.X,
		Y:          b.Y,
		Width:      b.Width,
		Height:     b.Height,
		Rotation:   b.Rotation,
		IsSelected: b.Selected,
	}
}

func baseFromJSON(j JSON) Base {
	return Base{
		id:       j.ID,
		X:        j.X,
		Y:        j.Y,
		Width:    j.Width,
		Height:   j.Height,
		Rotation: j.Rotation,
		Selected: j.IsSelected,
	}
}

// Style accessors. A variant implements the interfaces for the fields it
// carries; Controls decides whether a control is offered for it.

type FillStyler interface {
	FillColor() string
	SetFillColor(string)
}

type BorderStyler interface {
	BorderColor() string
	SetBorderColor(string)
}

type TextColorer interface {
	TextColor() string
	SetTextColor(string)
}

type Aligner interface {
	TextAlign() TextAlign
	SetTextAlign(TextAlign)
}

type FontSizer interface {
	FontSize() float64
	SetFontSize(float64)
}

type FontWeighter interface {
	FontWeight() FontWeight
	SetFontWeight(FontWeight)
}

// TextHolder is implemented by elements that display editable text.
type TextHolder interface {
	Element
	Text() string
	SetText(string)
}
