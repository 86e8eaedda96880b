package element

import (
	"github.com/matzehuels/whiteboard/pkg/errors"
	"github.com/matzehuels/whiteboard/pkg/geom"
)

// JSON is the flat persisted form of an element. Type, ID, the bounds and
// Rotation are always present; every other field belongs to one or more
// variants and is omitted when the variant does not carry it.
type JSON struct {
	Type       Kind    `json:"type"`
	ID         string  `json:"id"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Rotation   float64 `json:"rotation"`
	IsSelected bool    `json:"isSelected,omitempty"`

	Text        *string     `json:"text,omitempty"`
	FontSize    *float64    `json:"fontSize,omitempty"`
	FontWeight  *FontWeight `json:"fontWeight,omitempty"`
	FillColor   *string     `json:"fillColor,omitempty"`
	BorderColor *string     `json:"borderColor,omitempty"`
	TextColor   *string     `json:"textColor,omitempty"`
	TextAlign   *TextAlign  `json:"textAlign,omitempty"`

	ImageDataURL *string `json:"imageDataUrl,omitempty"`
	IconID       *string `json:"iconId,omitempty"`
	IconColor    *string `json:"iconColor,omitempty"`

	VideoURL *string `json:"videoUrl,omitempty"`

	Points      []geom.Point `json:"points,omitempty"`
	StrokeWidth *float64     `json:"strokeWidth,omitempty"`
	StrokeColor *string      `json:"strokeColor,omitempty"`
}

// Bounds returns the box described by the snapshot.
func (j JSON) Bounds() geom.Rect {
	return geom.Rect{X: j.X, Y: j.Y, Width: j.Width, Height: j.Height}
}

// FromJSON rebuilds the variant named by j.Type. Missing optional fields take
// the variant's defaults. An unknown type is an error and nothing is built.
func FromJSON(j JSON) (Element, error) {
	switch j.Type {
	case KindRectangle:
		return rectangleFromJSON(j), nil
	case KindEllipse:
		return ellipseFromJSON(j), nil
	case KindText:
		return textFromJSON(j), nil
	case KindSticky:
		return stickyFromJSON(j), nil
	case KindImage:
		return imageFromJSON(j), nil
	case KindVideo:
		return videoFromJSON(j), nil
	case KindFreeDraw:
		return freeDrawFromJSON(j), nil
	default:
		return nil, errors.New(errors.ErrCodeUnknownElementType, "unknown element type: %q", j.Type)
	}
}

// FromJSONList rebuilds every snapshot in order. The first failure aborts the
// whole list.
func FromJSONList(list []JSON) ([]Element, error) {
	out := make([]Element, 0, len(list))
	for i, j := range list {
		e, err := FromJSON(j)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "element %d", i)
		}
		out = append(out, e)
	}
	return out, nil
}

// Clone returns a deep copy of e with the same id.
func Clone(e Element) Element {
	c, err := FromJSON(e.ToJSON())
	if err != nil {
		// ToJSON always produces a known type.
		panic(err)
	}
	return c
}

func ptr[T any](v T) *T { return &v }

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
