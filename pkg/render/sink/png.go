package sink

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/whiteboard/pkg/element"
	"github.com/matzehuels/whiteboard/pkg/fonts"
	"github.com/matzehuels/whiteboard/pkg/geom"
	"github.com/matzehuels/whiteboard/pkg/render"
)

type faceKey struct {
	size float64
	bold bool
}

type pngRenderer struct {
	dc    *gg.Context
	frame render.Frame
	faces map[faceKey]font.Face
}

// RenderPNG rasterizes the scene.
func RenderPNG(s render.Scene, opts ...Option) ([]byte, error) {
	c := newConfig(opts)
	f := c.frame(s)
	r := pngRenderer{
		dc:    gg.NewContext(int(math.Ceil(f.Width)), int(math.Ceil(f.Height))),
		frame: f,
		faces: make(map[faceKey]font.Face),
	}
	if bg, ok := render.ParseColor(c.background); ok {
		r.dc.SetColor(bg)
		r.dc.Clear()
	}
	r.dc.SetLineCapRound()
	r.dc.SetLineJoinRound()

	for _, p := range s.Primitives {
		if err := r.draw(p); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := r.dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pngRenderer) draw(p render.Primitive) error {
	f := r.frame
	switch p.Kind {
	case render.KindRect:
		b := f.Rect(p.Bounds)
		if p.Radius > 0 {
			r.dc.DrawRoundedRectangle(b.X, b.Y, b.Width, b.Height, f.Length(p.Radius))
		} else {
			r.dc.DrawRectangle(b.X, b.Y, b.Width, b.Height)
		}
		r.paint(p)
	case render.KindEllipse:
		b := f.Rect(p.Bounds)
		c := b.Center()
		r.dc.DrawEllipse(c.X, c.Y, abs(b.Width/2), abs(b.Height/2))
		r.paint(p)
	case render.KindPolyline, render.KindPolygon:
		if len(p.Points) == 0 {
			return nil
		}
		r.dc.NewSubPath()
		for i, pt := range p.Points {
			q := f.Point(pt)
			if i == 0 {
				r.dc.MoveTo(q.X, q.Y)
			} else {
				r.dc.LineTo(q.X, q.Y)
			}
		}
		if p.Kind == render.KindPolygon {
			r.dc.ClosePath()
		} else {
			p.Fill = ""
		}
		r.paint(p)
	case render.KindText:
		return r.drawText(p)
	case render.KindImage:
		r.drawImage(p)
	}
	return nil
}

// paint fills and strokes the current path.
func (r *pngRenderer) paint(p render.Primitive) {
	fill, hasFill := render.ParseColor(p.Fill)
	stroke, hasStroke := render.ParseColor(p.Stroke)
	hasStroke = hasStroke && p.StrokeWidth > 0

	if hasFill {
		r.dc.SetColor(fill)
		if hasStroke {
			r.dc.FillPreserve()
		} else {
			r.dc.Fill()
		}
	}
	if hasStroke {
		r.dc.SetColor(stroke)
		r.dc.SetLineWidth(r.frame.Length(p.StrokeWidth))
		if p.Dashed {
			r.dc.SetDash(r.frame.Length(6), r.frame.Length(4))
		} else {
			r.dc.SetDash()
		}
		r.dc.Stroke()
	}
	if !hasFill && !hasStroke {
		r.dc.ClearPath()
	}
}

func (r *pngRenderer) face(size float64, bold bool) (font.Face, error) {
	key := faceKey{size: size, bold: bold}
	if f, ok := r.faces[key]; ok {
		return f, nil
	}
	f, err := fonts.Face(size, bold)
	if err != nil {
		return nil, err
	}
	r.faces[key] = f
	return f, nil
}

func (r *pngRenderer) drawText(p render.Primitive) error {
	color, ok := render.ParseColor(p.Color)
	if !ok || p.Text == "" {
		return nil
	}
	face, err := r.face(r.frame.Length(p.FontSize), p.FontWeight == element.WeightBold)
	if err != nil {
		return err
	}
	r.dc.SetFontFace(face)
	r.dc.SetColor(color)

	measure := func(s string) float64 {
		w, _ := r.dc.MeasureString(s)
		return w / r.frame.Scale
	}
	ax := 0.0
	switch p.Align {
	case element.AlignCenter:
		ax = 0.5
	case element.AlignRight:
		ax = 1
	}
	for _, line := range render.LayoutText(p, measure) {
		q := r.frame.Point(geom.Point{X: line.X, Y: line.Y})
		r.dc.DrawStringAnchored(line.Text, q.X, q.Y, ax, 0)
	}
	return nil
}

func (r *pngRenderer) drawImage(p render.Primitive) {
	b := r.frame.Rect(p.Bounds)
	img, err := decodeImage(p.DataURL)
	if err != nil {
		r.dc.DrawRectangle(b.X, b.Y, b.Width, b.Height)
		r.paint(placeholder(p))
		return
	}
	size := img.Bounds().Size()
	if size.X == 0 || size.Y == 0 {
		return
	}
	r.dc.Push()
	r.dc.Translate(b.X, b.Y)
	r.dc.Scale(b.Width/float64(size.X), b.Height/float64(size.Y))
	r.dc.DrawImage(img, 0, 0)
	r.dc.Pop()
}

func decodeImage(dataURL string) (image.Image, error) {
	_, data, err := render.DecodeDataURL(dataURL)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

func placeholder(p render.Primitive) render.Primitive {
	p.Kind = render.KindRect
	p.Fill = render.PlaceholderFill
	p.Stroke = render.PlaceholderStroke
	p.StrokeWidth = 1
	p.Dashed = true
	return p
}
