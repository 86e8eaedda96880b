package render

import (
	"github.com/matzehuels/whiteboard/pkg/element"
	"github.com/matzehuels/whiteboard/pkg/geom"
)

// Appearance constants shared by every sink.
const (
	SelectionColor   = "#2563eb"
	SelectionWidth   = 2.0
	SelectionPadding = 4.0

	ShapeStrokeWidth = 2.0
	TextStrokeWidth  = 1.0
	TextPadding      = 8.0
	StickyPadding    = 12.0
	StickyRadius     = 4.0

	PlaceholderFill   = "#f3f4f6"
	PlaceholderStroke = "#9ca3af"
	VideoFill         = "#111827"
	VideoPlayColor    = "#ffffff"
	VideoLabelColor   = "#e5e7eb"
)

// Option configures Describe and NewScene.
type Option func(*options)

type options struct {
	selection bool
}

// WithoutSelection leaves out the selection outlines.
func WithoutSelection() Option { return func(o *options) { o.selection = false } }

func newOptions(opts []Option) options {
	o := options{selection: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Describe returns the primitives that draw e, back to front.
func Describe(e element.Element, opts ...Option) []Primitive {
	o := newOptions(opts)
	b := e.Common().Bounds()

	var out []Primitive
	switch v := e.(type) {
	case *element.Rectangle:
		out = append(out, Primitive{Kind: KindRect, Bounds: b, Fill: v.Fill, Stroke: v.Border, StrokeWidth: ShapeStrokeWidth})
	case *element.Ellipse:
		out = append(out, Primitive{Kind: KindEllipse, Bounds: b, Fill: v.Fill, Stroke: v.Border, StrokeWidth: ShapeStrokeWidth})
	case *element.Text:
		out = append(out,
			Primitive{Kind: KindRect, Bounds: b, Fill: v.Fill, Stroke: v.Border, StrokeWidth: TextStrokeWidth},
			Primitive{
				Kind: KindText, Bounds: b, Text: v.Content, FontSize: v.Size, FontWeight: v.Weight,
				Align: v.Align, Color: v.Color, Padding: TextPadding,
			},
		)
	case *element.Sticky:
		out = append(out,
			Primitive{Kind: KindRect, Bounds: b, Radius: StickyRadius, Fill: v.Fill, Stroke: v.Border, StrokeWidth: TextStrokeWidth},
			Primitive{
				Kind: KindText, Bounds: b, Text: v.Content, FontSize: v.Size, FontWeight: element.WeightNormal,
				Align: element.AlignCenter, Color: v.Color, Padding: StickyPadding, Middle: true,
			},
		)
	case *element.Image:
		if v.DataURL != "" {
			out = append(out, Primitive{Kind: KindImage, Bounds: b, DataURL: v.DataURL})
		} else {
			out = append(out, Primitive{
				Kind: KindRect, Bounds: b, Fill: PlaceholderFill,
				Stroke: PlaceholderStroke, StrokeWidth: TextStrokeWidth, Dashed: true,
			})
		}
	case *element.Video:
		out = append(out, Primitive{Kind: KindRect, Bounds: b, Radius: 6, Fill: VideoFill})
		out = append(out, playButton(b))
		out = append(out, Primitive{
			Kind: KindText, Bounds: geom.Rect{X: b.X, Y: b.Bottom() - 28, Width: b.Width, Height: 28},
			Text: "YouTube video", FontSize: 12, FontWeight: element.WeightNormal,
			Align: element.AlignCenter, Color: VideoLabelColor, Padding: 6, Middle: true,
		})
	case *element.FreeDraw:
		out = append(out, Primitive{
			Kind: KindPolyline, Bounds: b, Points: v.AbsolutePoints(),
			Stroke: v.StrokeColor, StrokeWidth: v.StrokeWidth,
		})
	}

	for i := range out {
		out[i].ElementID = e.ID()
	}
	if o.selection && e.Common().Selected {
		out = append(out, SelectionOutline(e))
	}
	return out
}

// SelectionOutline returns the highlight drawn around a selected element.
func SelectionOutline(e element.Element) Primitive {
	b := e.Common().Bounds()
	return Primitive{
		Kind:      KindRect,
		ElementID: e.ID(),
		Bounds: geom.Rect{
			X:      b.X - SelectionPadding,
			Y:      b.Y - SelectionPadding,
			Width:  b.Width + 2*SelectionPadding,
			Height: b.Height + 2*SelectionPadding,
		},
		Stroke:      SelectionColor,
		StrokeWidth: SelectionWidth,
		Dashed:      true,
	}
}

// playButton is a triangle centered in the video box.
func playButton(b geom.Rect) Primitive {
	size := min(b.Width, b.Height) * 0.2
	c := b.Center()
	return Primitive{
		Kind: KindPolygon,
		Points: []geom.Point{
			{X: c.X - size*0.4, Y: c.Y - size/2},
			{X: c.X + size*0.6, Y: c.Y},
			{X: c.X - size*0.4, Y: c.Y + size/2},
		},
		Fill: VideoPlayColor,
	}
}
