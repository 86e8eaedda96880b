package geom

import (
	"math"
	"testing"
)

func TestResize(t *testing.T) {
	initial := Rect{X: 100, Y: 100, Width: 200, Height: 150}
	tests := []struct {
		name   string
		handle Handle
		p      Point
		want   Rect
	}{
		{"se unchanged", HandleSE, Point{X: 300, Y: 250}, Rect{X: 100, Y: 100, Width: 200, Height: 150}},
		{"se grow", HandleSE, Point{X: 350, Y: 300}, Rect{X: 100, Y: 100, Width: 250, Height: 200}},
		{"se past origin", HandleSE, Point{X: 50, Y: 50}, Rect{X: 100, Y: 100, Width: 12, Height: 12}},
		{"nw past corner", HandleNW, Point{X: 400, Y: 400}, Rect{X: 288, Y: 238, Width: 12, Height: 12}},
		{"ne crossed", HandleNE, Point{X: 0, Y: 300}, Rect{X: 100, Y: 238, Width: 12, Height: 12}},
		{"sw crossed", HandleSW, Point{X: 500, Y: 0}, Rect{X: 288, Y: 100, Width: 12, Height: 12}},
		{"nw grow", HandleNW, Point{X: 50, Y: 60}, Rect{X: 50, Y: 60, Width: 250, Height: 190}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resize(initial, tt.p, tt.handle); got != tt.want {
				t.Errorf("Resize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResizeNeverBelowMinSize(t *testing.T) {
	initial := Rect{X: 0, Y: 0, Width: 80, Height: 40}
	points := []Point{
		{X: 0, Y: 0}, {X: 80, Y: 40}, {X: 40, Y: 20},
		{X: -500, Y: 500}, {X: 500, Y: -500}, {X: 1e6, Y: 1e6},
	}

	for _, h := range Handles {
		for _, p := range points {
			for _, keep := range []bool{false, true} {
				var got Rect
				if keep {
					got = ResizeKeepAspect(initial, p, h)
				} else {
					got = Resize(initial, p, h)
				}
				if got.Width < MinSize-1e-9 || got.Height < MinSize-1e-9 {
					t.Errorf("handle %s point %+v keepAspect=%v: size %vx%v below %v",
						h, p, keep, got.Width, got.Height, MinSize)
				}
			}
		}
	}
}

func TestResizeKeepAspect(t *testing.T) {
	initial := Rect{X: 0, Y: 0, Width: 200, Height: 100}
	tests := []struct {
		name   string
		handle Handle
		p      Point
		want   Rect
	}{
		{"se square drag", HandleSE, Point{X: 150, Y: 150}, Rect{X: 0, Y: 0, Width: 150, Height: 75}},
		{"nw grow", HandleNW, Point{X: -100, Y: -100}, Rect{X: -100, Y: -50, Width: 300, Height: 150}},
		{"se collapse", HandleSE, Point{X: 1, Y: 1}, Rect{X: 0, Y: 0, Width: 24, Height: 12}},
		{"sw height bound", HandleSW, Point{X: -400, Y: 60}, Rect{X: 80, Y: 0, Width: 120, Height: 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResizeKeepAspect(initial, tt.p, tt.handle)
			if got != tt.want {
				t.Errorf("ResizeKeepAspect() = %+v, want %+v", got, tt.want)
			}
			if ratio := got.Width / got.Height; math.Abs(ratio-2) > 1e-9 {
				t.Errorf("ratio = %v, want 2", ratio)
			}
		})
	}
}

func TestHandlePosition(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	want := map[Handle]Point{
		HandleNW: {X: 10, Y: 20},
		HandleNE: {X: 40, Y: 20},
		HandleSW: {X: 10, Y: 60},
		HandleSE: {X: 40, Y: 60},
	}
	for h, p := range want {
		if got := h.Position(r); got != p {
			t.Errorf("%s.Position() = %+v, want %+v", h, got, p)
		}
	}
}
