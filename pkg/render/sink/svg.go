package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/matzehuels/whiteboard/pkg/element"
	"github.com/matzehuels/whiteboard/pkg/fonts"
	"github.com/matzehuels/whiteboard/pkg/geom"
	"github.com/matzehuels/whiteboard/pkg/render"
)

// RenderSVG paints the scene as a standalone SVG document.
func RenderSVG(s render.Scene, opts ...Option) []byte {
	c := newConfig(opts)
	f := c.frame(s)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		f.Width, f.Height, f.Width, f.Height)
	if render.Visible(c.background) {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", attr(c.background))
	}
	for _, p := range s.Primitives {
		writeSVGPrimitive(&buf, f, p)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func writeSVGPrimitive(buf *bytes.Buffer, f render.Frame, p render.Primitive) {
	switch p.Kind {
	case render.KindRect:
		r := f.Rect(p.Bounds)
		fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"`, r.X, r.Y, r.Width, r.Height)
		if p.Radius > 0 {
			fmt.Fprintf(buf, ` rx="%.2f"`, f.Length(p.Radius))
		}
		writePaint(buf, f, p)
		buf.WriteString("/>\n")
	case render.KindEllipse:
		r := f.Rect(p.Bounds)
		c := r.Center()
		fmt.Fprintf(buf, `  <ellipse cx="%.2f" cy="%.2f" rx="%.2f" ry="%.2f"`, c.X, c.Y, abs(r.Width/2), abs(r.Height/2))
		writePaint(buf, f, p)
		buf.WriteString("/>\n")
	case render.KindPolyline, render.KindPolygon:
		tag := "polyline"
		if p.Kind == render.KindPolygon {
			tag = "polygon"
		}
		fmt.Fprintf(buf, `  <%s points="%s"`, tag, svgPoints(f, p.Points))
		if p.Kind == render.KindPolyline {
			p.Fill = ""
			buf.WriteString(` stroke-linecap="round" stroke-linejoin="round"`)
		}
		writePaint(buf, f, p)
		buf.WriteString("/>\n")
	case render.KindText:
		writeSVGText(buf, f, p)
	case render.KindImage:
		r := f.Rect(p.Bounds)
		fmt.Fprintf(buf, `  <image x="%.2f" y="%.2f" width="%.2f" height="%.2f" preserveAspectRatio="none" href="%s"/>`+"\n",
			r.X, r.Y, r.Width, r.Height, attr(p.DataURL))
	}
}

func writePaint(buf *bytes.Buffer, f render.Frame, p render.Primitive) {
	if p.HasFill() {
		fmt.Fprintf(buf, ` fill="%s"`, attr(p.Fill))
	} else {
		buf.WriteString(` fill="none"`)
	}
	if p.HasStroke() {
		fmt.Fprintf(buf, ` stroke="%s" stroke-width="%.2f"`, attr(p.Stroke), f.Length(p.StrokeWidth))
		if p.Dashed {
			fmt.Fprintf(buf, ` stroke-dasharray="%.1f %.1f"`, f.Length(6), f.Length(4))
		}
	}
}

func writeSVGText(buf *bytes.Buffer, f render.Frame, p render.Primitive) {
	lines := render.LayoutText(p, func(s string) float64 { return render.ApproxWidth(s, p.FontSize) })
	if len(lines) == 0 {
		return
	}
	anchor := "start"
	switch p.Align {
	case element.AlignCenter:
		anchor = "middle"
	case element.AlignRight:
		anchor = "end"
	}
	weight := "normal"
	if p.FontWeight == element.WeightBold {
		weight = "bold"
	}
	color := p.Color
	if !render.Visible(color) {
		color = "#000000"
	}

	fmt.Fprintf(buf, `  <text font-family="%s" font-size="%.2f" font-weight="%s" fill="%s" text-anchor="%s">`,
		attr(fonts.CSSFontFamily), f.Length(p.FontSize), weight, attr(color), anchor)
	for _, line := range lines {
		pt := f.Point(geom.Point{X: line.X, Y: line.Y})
		fmt.Fprintf(buf, `<tspan x="%.2f" y="%.2f">%s</tspan>`, pt.X, pt.Y, text(line.Text))
	}
	buf.WriteString("</text>\n")
}

func svgPoints(f render.Frame, points []geom.Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		q := f.Point(p)
		parts[i] = fmt.Sprintf("%.2f,%.2f", q.X, q.Y)
	}
	return strings.Join(parts, " ")
}

func text(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

func attr(s string) string { return text(s) }

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
