package render

import (
	"strings"

	"github.com/matzehuels/whiteboard/pkg/element"
	"github.com/matzehuels/whiteboard/pkg/geom"
)

// LineHeight is the line advance as a multiple of the font size.
const LineHeight = 1.3

// WrapLines splits text at newlines and then greedily wraps each paragraph
// at spaces so that no line measures more than width. A single word wider
// than width gets a line of its own.
func WrapLines(text string, width float64, measure func(string) float64) []string {
	var lines []string
	for _, para := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if candidate := line + " " + w; measure(candidate) <= width {
				line = candidate
				continue
			}
			lines = append(lines, line)
			line = w
		}
		lines = append(lines, line)
	}
	return lines
}

// ApproxWidth estimates the width of s in a proportional sans-serif face at
// the given size, for sinks without font metrics.
func ApproxWidth(s string, size float64) float64 {
	return float64(len([]rune(s))) * size * 0.55
}

// TextLine is one laid out line. X is the anchor given by the alignment
// (left edge, center or right edge) and Y the baseline, in world units.
type TextLine struct {
	Text string
	X    float64
	Y    float64
}

// LayoutText wraps a text primitive inside its padded bounds. Lines that do
// not fit the height are dropped, but at least one line is always kept.
func LayoutText(p Primitive, measure func(string) float64) []TextLine {
	if p.Text == "" || p.FontSize <= 0 {
		return nil
	}
	inner := geomInset(p)
	lines := WrapLines(p.Text, max(1, inner.Width), measure)

	lineHeight := p.FontSize * LineHeight
	fit := max(1, int(inner.Height/lineHeight))
	if len(lines) > fit {
		lines = lines[:fit]
	}

	top := inner.Y
	if p.Middle {
		top = p.Bounds.Y + (p.Bounds.Height-float64(len(lines))*lineHeight)/2
	}
	var x float64
	switch p.Align {
	case element.AlignCenter:
		x = inner.X + inner.Width/2
	case element.AlignRight:
		x = inner.Right()
	default:
		x = inner.X
	}

	out := make([]TextLine, len(lines))
	for i, line := range lines {
		out[i] = TextLine{
			Text: line,
			X:    x,
			Y:    top + float64(i)*lineHeight + (lineHeight-p.FontSize)/2 + p.FontSize*0.8,
		}
	}
	return out
}

func geomInset(p Primitive) geom.Rect {
	return geom.Rect{
		X:      p.Bounds.X + p.Padding,
		Y:      p.Bounds.Y + p.Padding,
		Width:  p.Bounds.Width - 2*p.Padding,
		Height: p.Bounds.Height - 2*p.Padding,
	}
}
