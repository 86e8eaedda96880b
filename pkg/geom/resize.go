package geom

import "math"

// Handle identifies one of the four corner resize handles.
type Handle string

const (
	HandleNW Handle = "nw"
	HandleNE Handle = "ne"
	HandleSW Handle = "sw"
	HandleSE Handle = "se"
)

// Handles lists the corner handles in display order.
var Handles = []Handle{HandleNW, HandleNE, HandleSW, HandleSE}

// MovesLeft reports whether the handle drags the left edge.
func (h Handle) MovesLeft() bool { return h == HandleNW || h == HandleSW }

// MovesRight reports whether the handle drags the right edge.
func (h Handle) MovesRight() bool { return h == HandleNE || h == HandleSE }

// MovesTop reports whether the handle drags the top edge.
func (h Handle) MovesTop() bool { return h == HandleNW || h == HandleNE }

// MovesBottom reports whether the handle drags the bottom edge.
func (h Handle) MovesBottom() bool { return h == HandleSW || h == HandleSE }

// Position returns the world position of h on r.
func (h Handle) Position(r Rect) Point {
	p := Point{X: r.X, Y: r.Y}
	if h.MovesRight() {
		p.X = r.Right()
	}
	if h.MovesBottom() {
		p.Y = r.Bottom()
	}
	return p
}

// Resize drags the edges owned by h to p. Edges not owned by the handle stay
// where they were in initial, and each dragged edge stops MinSize short of its
// opposite edge.
func Resize(initial Rect, p Point, h Handle) Rect {
	left, right := initial.X, initial.Right()
	top, bottom := initial.Y, initial.Bottom()

	if h.MovesLeft() {
		left = math.Min(p.X, right-MinSize)
	}
	if h.MovesRight() {
		right = math.Max(p.X, left+MinSize)
	}
	if h.MovesTop() {
		top = math.Min(p.Y, bottom-MinSize)
	}
	if h.MovesBottom() {
		bottom = math.Max(p.Y, top+MinSize)
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// ResizeKeepAspect resizes initial from the corner opposite h so that the
// result keeps the initial width/height ratio. The box grows toward p until
// the first of the two dimensions reaches the pointer, and neither side drops
// below MinSize.
func ResizeKeepAspect(initial Rect, p Point, h Handle) Rect {
	ratio := math.Max(MinSize, initial.Width) / math.Max(MinSize, initial.Height)

	anchor := Point{X: initial.X, Y: initial.Y}
	if h.MovesLeft() {
		anchor.X = initial.Right()
	}
	if h.MovesTop() {
		anchor.Y = initial.Bottom()
	}

	width := math.Min(math.Abs(p.X-anchor.X), math.Abs(p.Y-anchor.Y)*ratio)
	height := width / ratio
	if width < MinSize {
		width = MinSize
		height = width / ratio
	}
	if height < MinSize {
		height = MinSize
		width = height * ratio
	}

	r := Rect{X: anchor.X, Y: anchor.Y, Width: width, Height: height}
	if h.MovesLeft() {
		r.X = anchor.X - width
	}
	if h.MovesTop() {
		r.Y = anchor.Y - height
	}
	return r
}
