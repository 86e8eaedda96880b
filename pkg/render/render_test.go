package render

import (
	"image/color"
	"math"
	"reflect"
	"testing"

	"github.com/matzehuels/whiteboard/pkg/element"
	"github.com/matzehuels/whiteboard/pkg/geom"
)

func TestDescribe(t *testing.T) {
	r := geom.Rect{X: 10, Y: 20, Width: 100, Height: 50}
	tests := []struct {
		name  string
		e     element.Element
		kinds []Kind
	}{
		{"rectangle", element.NewRectangle("a", r), []Kind{KindRect}},
		{"ellipse", element.NewEllipse("a", r), []Kind{KindEllipse}},
		{"text", element.NewText("a", r, "hi"), []Kind{KindRect, KindText}},
		{"sticky", element.NewSticky("a", r, "hi"), []Kind{KindRect, KindText}},
		{"image", element.NewImage("a", r, "data:image/png;base64,AAAA"), []Kind{KindImage}},
		{"icon placeholder", element.NewIconImage("a", r, "star", ""), []Kind{KindRect}},
		{"video", element.NewVideo("a", r, ""), []Kind{KindRect, KindPolygon, KindText}},
		{"freedraw", element.NewFreeDraw("a", r, nil), []Kind{KindPolyline}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prims := Describe(tt.e)
			var kinds []Kind
			for _, p := range prims {
				kinds = append(kinds, p.Kind)
				if p.ElementID != "a" {
					t.Errorf("ElementID = %q, want a", p.ElementID)
				}
			}
			if !reflect.DeepEqual(kinds, tt.kinds) {
				t.Errorf("kinds = %v, want %v", kinds, tt.kinds)
			}
		})
	}
}

func TestDescribeSelection(t *testing.T) {
	e := element.NewRectangle("a", geom.Rect{Width: 10, Height: 10})
	e.Selected = true

	prims := Describe(e)
	if len(prims) != 2 {
		t.Fatalf("len(Describe()) = %d, want 2", len(prims))
	}
	outline := prims[1]
	if outline.Stroke != SelectionColor || outline.Bounds != (geom.Rect{X: -4, Y: -4, Width: 18, Height: 18}) {
		t.Errorf("outline = %+v", outline)
	}
	if got := Describe(e, WithoutSelection()); len(got) != 1 {
		t.Errorf("len(Describe(WithoutSelection)) = %d, want 1", len(got))
	}
}

func TestStickyTextIsCentered(t *testing.T) {
	prims := Describe(element.NewSticky("s", geom.Rect{Width: 10, Height: 10}, "x"))
	if prims[1].Align != element.AlignCenter {
		t.Errorf("Align = %q, want center", prims[1].Align)
	}
}

func TestNewScene(t *testing.T) {
	elements := []element.Element{
		element.NewRectangle("a", geom.Rect{X: -10, Y: 0, Width: 20, Height: 20}),
		element.NewFreeDraw("b", geom.Rect{X: 50, Y: 50, Width: 10, Height: 10}, nil),
	}
	s := NewScene(elements)
	if len(s.Primitives) != 2 || s.Primitives[0].ElementID != "a" {
		t.Errorf("Primitives = %+v", s.Primitives)
	}
	want := geom.Rect{X: -10, Y: 0, Width: 71.5, Height: 61.5}
	if s.Bounds != want {
		t.Errorf("Bounds = %v, want %v", s.Bounds, want)
	}

	if empty := NewScene(nil); empty.Bounds != (geom.Rect{}) || len(empty.Primitives) != 0 {
		t.Errorf("NewScene(nil) = %+v, want zero", empty)
	}
}

func TestFrame(t *testing.T) {
	f := NewFrame(geom.Rect{X: 100, Y: 50, Width: 200, Height: 100}, 10, 2)
	if f.Width != 420 || f.Height != 220 {
		t.Errorf("size = %vx%v, want 420x220", f.Width, f.Height)
	}
	if got := f.Point(geom.Point{X: 100, Y: 50}); got != (geom.Point{X: 10, Y: 10}) {
		t.Errorf("Point(origin) = %v, want {10 10}", got)
	}
	if got := f.Rect(geom.Rect{X: 150, Y: 60, Width: 5, Height: 5}); got != (geom.Rect{X: 110, Y: 30, Width: 10, Height: 10}) {
		t.Errorf("Rect() = %v", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
		ok   bool
	}{
		{"#dbeafe", color.NRGBA{R: 0xdb, G: 0xea, B: 0xfe, A: 255}, true},
		{"#FFF", color.NRGBA{R: 255, G: 255, B: 255, A: 255}, true},
		{"#11223380", color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x80}, true},
		{"transparent", color.NRGBA{}, false},
		{"", color.NRGBA{}, false},
		{"#zzzzzz", color.NRGBA{}, false},
		{"black", color.NRGBA{A: 255}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseColor(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseColor(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestWrapLines(t *testing.T) {
	measure := func(s string) float64 { return float64(len(s)) }
	tests := []struct {
		text  string
		width float64
		want  []string
	}{
		{"hello world", 20, []string{"hello world"}},
		{"hello world", 8, []string{"hello", "world"}},
		{"a b c d", 3, []string{"a b", "c d"}},
		{"first\n\nthird", 20, []string{"first", "", "third"}},
		{"extraordinary", 4, []string{"extraordinary"}},
	}
	for _, tt := range tests {
		if got := WrapLines(tt.text, tt.width, measure); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("WrapLines(%q, %v) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestDataURL(t *testing.T) {
	encoded := EncodeDataURL("image/png", []byte{1, 2, 3})
	mt, data, err := DecodeDataURL(encoded)
	if err != nil {
		t.Fatalf("DecodeDataURL() error = %v", err)
	}
	if mt != "image/png" || !reflect.DeepEqual(data, []byte{1, 2, 3}) {
		t.Errorf("DecodeDataURL() = %q, %v", mt, data)
	}

	mt, data, err = DecodeDataURL("data:,hello%20world")
	if err != nil || mt != "text/plain" || string(data) != "hello world" {
		t.Errorf("DecodeDataURL(plain) = %q, %q, %v", mt, data, err)
	}

	for _, bad := range []string{"http://x", "data:image/png;base64", "data:image/png;base64,!!!"} {
		if _, _, err := DecodeDataURL(bad); err == nil {
			t.Errorf("DecodeDataURL(%q) error = nil", bad)
		}
	}
}

func TestLayoutText(t *testing.T) {
	measure := func(s string) float64 { return float64(len(s)) * 10 }
	p := Primitive{
		Kind: KindText, Bounds: geom.Rect{X: 0, Y: 0, Width: 100, Height: 100},
		Text: "one two three", FontSize: 10, Padding: 10, Align: element.AlignRight,
	}
	lines := LayoutText(p, measure)
	if len(lines) != 2 || lines[0].Text != "one two" || lines[1].Text != "three" {
		t.Fatalf("LayoutText() = %+v", lines)
	}
	if lines[0].X != 90 {
		t.Errorf("right anchor = %v, want 90", lines[0].X)
	}
	if math.Abs(lines[1].Y-lines[0].Y-13) > 1e-9 {
		t.Errorf("line advance = %v, want 13", lines[1].Y-lines[0].Y)
	}

	p.Bounds.Height = 20
	if got := LayoutText(p, measure); len(got) != 1 {
		t.Errorf("LayoutText() in short box = %d lines, want 1", len(got))
	}
	if got := LayoutText(Primitive{Kind: KindText, FontSize: 10}, measure); got != nil {
		t.Errorf("LayoutText(empty) = %v, want nil", got)
	}
}
