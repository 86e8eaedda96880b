package geom

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{X: 50, Y: 50, Width: 100, Height: 100}, true},
		{"contained", Rect{X: 10, Y: 10, Width: 5, Height: 5}, true},
		{"touching edge", Rect{X: 100, Y: 0, Width: 10, Height: 10}, true},
		{"touching corner", Rect{X: 100, Y: 100, Width: 10, Height: 10}, true},
		{"left of", Rect{X: -20, Y: 0, Width: 10, Height: 10}, false},
		{"below", Rect{X: 0, Y: 101, Width: 10, Height: 10}, false},
		{"zero size inside", Rect{X: 30, Y: 30}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectFromPoints(t *testing.T) {
	got := RectFromPoints(Point{X: 10, Y: 20}, Point{X: 4, Y: 5})
	want := Rect{X: 4, Y: 5, Width: 6, Height: 15}
	if got != want {
		t.Errorf("RectFromPoints() = %+v, want %+v", got, want)
	}
}

func TestUnion(t *testing.T) {
	if _, ok := Union(nil); ok {
		t.Error("Union(nil) ok = true, want false")
	}

	got, ok := Union([]Rect{
		{X: 10, Y: 10, Width: 20, Height: 20},
		{X: -5, Y: 15, Width: 10, Height: 40},
	})
	want := Rect{X: -5, Y: 10, Width: 35, Height: 45}
	if !ok || got != want {
		t.Errorf("Union() = %+v, %v, want %+v, true", got, ok, want)
	}
}

func TestBoundsOf(t *testing.T) {
	got, ok := BoundsOf([]Point{{X: 3, Y: 9}, {X: -1, Y: 4}, {X: 7, Y: 5}})
	want := Rect{X: -1, Y: 4, Width: 8, Height: 5}
	if !ok || got != want {
		t.Errorf("BoundsOf() = %+v, %v, want %+v, true", got, ok, want)
	}
}

func TestDistanceToSegment(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b Point
		want    float64
	}{
		{"perpendicular", Point{X: 5, Y: 5}, Point{}, Point{X: 10}, 5},
		{"past end", Point{X: 15}, Point{}, Point{X: 10}, 5},
		{"before start", Point{X: -3, Y: 4}, Point{}, Point{X: 10}, 5},
		{"on segment", Point{X: 4}, Point{}, Point{X: 10}, 0},
		{"degenerate", Point{X: 3, Y: 4}, Point{}, Point{}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DistanceToSegment(tt.p, tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DistanceToSegment() = %v, want %v", got, tt.want)
			}
		})
	}
}
