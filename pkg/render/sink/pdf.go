package sink

import (
	"bytes"
	"fmt"
	"image"

	"github.com/jung-kurt/gofpdf"

	"github.com/matzehuels/whiteboard/pkg/element"
	"github.com/matzehuels/whiteboard/pkg/geom"
	"github.com/matzehuels/whiteboard/pkg/render"
)

const pdfFont = "Helvetica"

var pdfImageTypes = map[string]string{
	"png":  "PNG",
	"jpeg": "JPG",
	"gif":  "GIF",
}

type pdfRenderer struct {
	pdf       *gofpdf.Fpdf
	frame     render.Frame
	translate func(string) string
	images    int
}

// RenderPDF paints the scene on a single page sized to the content, one
// point per output unit.
func RenderPDF(s render.Scene, opts ...Option) ([]byte, error) {
	c := newConfig(opts)
	f := c.frame(s)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: f.Width, Ht: f.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	r := pdfRenderer{pdf: pdf, frame: f, translate: pdf.UnicodeTranslatorFromDescriptor("")}
	if bg, ok := render.ParseColor(c.background); ok {
		pdf.SetFillColor(int(bg.R), int(bg.G), int(bg.B))
		pdf.Rect(0, 0, f.Width, f.Height, "F")
	}
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")

	for _, p := range s.Primitives {
		r.draw(p)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pdfRenderer) draw(p render.Primitive) {
	f := r.frame
	switch p.Kind {
	case render.KindRect:
		style := r.style(p)
		if style == "" {
			return
		}
		b := f.Rect(p.Bounds)
		r.pdf.Rect(b.X, b.Y, b.Width, b.Height, style)
	case render.KindEllipse:
		style := r.style(p)
		if style == "" {
			return
		}
		b := f.Rect(p.Bounds)
		c := b.Center()
		r.pdf.Ellipse(c.X, c.Y, abs(b.Width/2), abs(b.Height/2), 0, style)
	case render.KindPolygon:
		style := r.style(p)
		if style == "" || len(p.Points) < 3 {
			return
		}
		points := make([]gofpdf.PointType, len(p.Points))
		for i, pt := range p.Points {
			q := f.Point(pt)
			points[i] = gofpdf.PointType{X: q.X, Y: q.Y}
		}
		r.pdf.Polygon(points, style)
	case render.KindPolyline:
		p.Fill = ""
		if r.style(p) == "" {
			return
		}
		for i := 1; i < len(p.Points); i++ {
			a, b := f.Point(p.Points[i-1]), f.Point(p.Points[i])
			r.pdf.Line(a.X, a.Y, b.X, b.Y)
		}
	case render.KindText:
		r.drawText(p)
	case render.KindImage:
		r.drawImage(p)
	}
}

// style sets the colors, width and dash of p and returns the gofpdf style
// string, or "" when nothing is painted.
func (r *pdfRenderer) style(p render.Primitive) string {
	style := ""
	if fill, ok := render.ParseColor(p.Fill); ok {
		r.pdf.SetFillColor(int(fill.R), int(fill.G), int(fill.B))
		style += "F"
	}
	if stroke, ok := render.ParseColor(p.Stroke); ok && p.StrokeWidth > 0 {
		r.pdf.SetDrawColor(int(stroke.R), int(stroke.G), int(stroke.B))
		r.pdf.SetLineWidth(r.frame.Length(p.StrokeWidth))
		if p.Dashed {
			r.pdf.SetDashPattern([]float64{r.frame.Length(6), r.frame.Length(4)}, 0)
		} else {
			r.pdf.SetDashPattern([]float64{}, 0)
		}
		style += "D"
	}
	return style
}

func (r *pdfRenderer) drawText(p render.Primitive) {
	color, ok := render.ParseColor(p.Color)
	if !ok || p.Text == "" {
		return
	}
	fontStyle := ""
	if p.FontWeight == element.WeightBold {
		fontStyle = "B"
	}
	size := r.frame.Length(p.FontSize)
	r.pdf.SetFont(pdfFont, fontStyle, size)
	r.pdf.SetTextColor(int(color.R), int(color.G), int(color.B))

	measure := func(s string) float64 {
		return r.pdf.GetStringWidth(r.translate(s)) / r.frame.Scale
	}
	for _, line := range render.LayoutText(p, measure) {
		s := r.translate(line.Text)
		q := r.frame.Point(geom.Point{X: line.X, Y: line.Y})
		switch p.Align {
		case element.AlignCenter:
			q.X -= r.pdf.GetStringWidth(s) / 2
		case element.AlignRight:
			q.X -= r.pdf.GetStringWidth(s)
		}
		r.pdf.Text(q.X, q.Y, s)
	}
}

func (r *pdfRenderer) drawImage(p render.Primitive) {
	b := r.frame.Rect(p.Bounds)
	_, data, err := render.DecodeDataURL(p.DataURL)
	var imageType string
	if err == nil {
		// gofpdf errors are sticky, so only hand it formats it can read.
		if _, format, cfgErr := image.DecodeConfig(bytes.NewReader(data)); cfgErr == nil {
			imageType = pdfImageTypes[format]
		}
	}
	if imageType == "" {
		ph := placeholder(p)
		r.pdf.Rect(b.X, b.Y, b.Width, b.Height, r.style(ph))
		return
	}

	r.images++
	name := fmt.Sprintf("img%d", r.images)
	opts := gofpdf.ImageOptions{ImageType: imageType}
	r.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	r.pdf.ImageOptions(name, b.X, b.Y, b.Width, b.Height, false, opts, 0, "")
}
