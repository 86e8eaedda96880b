package geom

import "math"

// Snapper finds the corrections that align moving boxes to a world grid and
// to the edges and centers of stationary boxes.
type Snapper struct {
	Grid      float64 // grid spacing in world units; zero disables grid lines
	Threshold float64 // largest correction that may be applied, in world units
}

// Axis lines of a box: left, center, right (vertical) and top, middle, bottom
// (horizontal).
func axisLines(r Rect) (vertical, horizontal [3]float64) {
	vertical = [3]float64{r.X, r.X + r.Width/2, r.Right()}
	horizontal = [3]float64{r.Y, r.Y + r.Height/2, r.Bottom()}
	return vertical, horizontal
}

// Targets collects the snap lines of every stationary box.
func Targets(rects []Rect) (vertical, horizontal []float64) {
	vertical = make([]float64, 0, len(rects)*3)
	horizontal = make([]float64, 0, len(rects)*3)
	for _, r := range rects {
		v, h := axisLines(r)
		vertical = append(vertical, v[:]...)
		horizontal = append(horizontal, h[:]...)
	}
	return vertical, horizontal
}

type snapSource int

const (
	sourceGrid snapSource = iota
	sourceNeighbor
)

type candidate struct {
	delta    float64
	distance float64
	target   float64
	source   snapSource
}

// beats orders candidates by distance, then grid before neighbor, then lower
// target coordinate.
func (c candidate) beats(o candidate) bool {
	if c.distance != o.distance {
		return c.distance < o.distance
	}
	if c.source != o.source {
		return c.source < o.source
	}
	return c.target < o.target
}

// Delta returns the correction to add to the moving lines so that the best
// of them lands on a grid or target line. It returns 0 when nothing lies
// within the threshold.
func (s Snapper) Delta(moving, targets []float64) float64 {
	var best candidate
	found := false
	consider := func(c candidate) {
		if c.distance > s.Threshold {
			return
		}
		if !found || c.beats(best) {
			best, found = c, true
		}
	}

	for _, line := range moving {
		if s.Grid > 0 {
			// Half-way values round up, toward positive infinity.
			nearest := math.Floor(line/s.Grid+0.5) * s.Grid
			consider(candidate{
				delta:    nearest - line,
				distance: math.Abs(nearest - line),
				target:   nearest,
				source:   sourceGrid,
			})
		}
		for _, t := range targets {
			consider(candidate{
				delta:    t - line,
				distance: math.Abs(t - line),
				target:   t,
				source:   sourceNeighbor,
			})
		}
	}

	if !found {
		return 0
	}
	return best.delta
}

// Move returns the offset that snaps the union of moved onto the grid or the
// stationary boxes, computed independently for each axis.
func (s Snapper) Move(moved, stationary []Rect) Point {
	bounds, ok := Union(moved)
	if !ok {
		return Point{}
	}
	v, h := axisLines(bounds)
	tv, th := Targets(stationary)
	return Point{X: s.Delta(v[:], tv), Y: s.Delta(h[:], th)}
}

// Resize snaps each edge dragged by h independently, then restores MinSize by
// moving the dragged edge back if the snap made the box too small.
func (s Snapper) Resize(bounds Rect, h Handle, stationary []Rect) Rect {
	tv, th := Targets(stationary)

	left, right := bounds.X, bounds.Right()
	top, bottom := bounds.Y, bounds.Bottom()

	if h.MovesLeft() {
		left += s.Delta([]float64{left}, tv)
		if right-left < MinSize {
			left = right - MinSize
		}
	}
	if h.MovesRight() {
		right += s.Delta([]float64{right}, tv)
		if right-left < MinSize {
			right = left + MinSize
		}
	}
	if h.MovesTop() {
		top += s.Delta([]float64{top}, th)
		if bottom-top < MinSize {
			top = bottom - MinSize
		}
	}
	if h.MovesBottom() {
		bottom += s.Delta([]float64{bottom}, th)
		if bottom-top < MinSize {
			bottom = top + MinSize
		}
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}
