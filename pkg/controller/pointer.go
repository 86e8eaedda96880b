package controller

import (
	"github.com/matzehuels/whiteboard/pkg/element"
	"github.com/matzehuels/whiteboard/pkg/geom"
	"github.com/matzehuels/whiteboard/pkg/viewport"
)

// PointerOptions describes the modifiers of a pointer gesture.
type PointerOptions struct {
	// Additive toggles membership instead of replacing the selection.
	Additive bool
	// Pan makes the gesture pan the view.
	Pan bool
}

// HandlePosition is a resize handle in world space.
type HandlePosition struct {
	Handle geom.Handle `json:"handle"`
	X      float64     `json:"x"`
	Y      float64     `json:"y"`
}

// ResizeHandles returns the four corner handles of the selected element, or
// nil unless exactly one element is selected.
func (c *Controller) ResizeHandles() []HandlePosition {
	e, ok := c.SingleSelected()
	if !ok {
		return nil
	}
	bounds := e.Common().Bounds()
	out := make([]HandlePosition, 0, len(geom.Handles))
	for _, h := range geom.Handles {
		p := h.Position(bounds)
		out = append(out, HandlePosition{Handle: h, X: p.X, Y: p.Y})
	}
	return out
}

// SelectionRect returns the box-select rectangle while one is active.
func (c *Controller) SelectionRect() (geom.Rect, bool) {
	if c.selectionRect == nil {
		return geom.Rect{}, false
	}
	return *c.selectionRect, true
}

func (c *Controller) handleAt(world geom.Point) (geom.Handle, bool) {
	r := c.view.Get().WorldLength(HandleRadius)
	for _, h := range c.ResizeHandles() {
		if abs(h.X-world.X) <= r && abs(h.Y-world.Y) <= r {
			return h.Handle, true
		}
	}
	return "", false
}

// PointerDown starts a gesture at a screen point.
func (c *Controller) PointerDown(screen geom.Point, opts PointerOptions) {
	world := c.ToWorld(screen)
	c.dragging = true
	c.dragStartWorld = world
	c.lastScreen = screen

	if opts.Pan {
		c.setMode(ModePanning)
		return
	}

	if h, ok := c.handleAt(world); ok {
		if e, ok := c.SingleSelected(); ok {
			c.resize = &activeResize{id: e.ID(), handle: h, initial: e.Common().Bounds()}
			c.setMode(ModeResizing)
			return
		}
	}

	if hit, ok := c.board.HitTest(world); ok {
		id := hit.ID()
		switch {
		case opts.Additive && c.selected[id]:
			delete(c.selected, id)
		case opts.Additive:
			c.selected[id] = true
		case !c.selected[id]:
			c.selected = map[string]bool{id: true}
		}
		c.syncSelection()

		c.movingInitial = c.movingInitial[:0]
		for _, e := range c.board.Selected() {
			c.movingInitial = append(c.movingInitial, boundsSnapshot{id: e.ID(), bounds: e.Common().Bounds()})
		}
		c.setMode(ModeMoving)
		return
	}

	if !opts.Additive {
		c.selected = map[string]bool{}
		c.syncSelection()
	}
	c.selectionRect = &geom.Rect{X: world.X, Y: world.Y}
	c.setMode(ModeBoxSelect)
}

// PointerMove advances the active gesture. It does nothing unless a pointer
// is down.
func (c *Controller) PointerMove(screen geom.Point) {
	if !c.dragging {
		return
	}
	world := c.ToWorld(screen)

	switch c.mode {
	case ModePanning:
		delta := screen.Sub(c.lastScreen)
		c.view.Update(func(v viewport.Viewport) viewport.Viewport { return v.Pan(delta) })
	case ModeMoving:
		c.moveSelection(world)
	case ModeResizing:
		c.resizeTarget(world)
	case ModeBoxSelect:
		r := geom.RectFromPoints(c.dragStartWorld, world)
		c.selectionRect = &r
	}

	c.lastScreen = screen
}

func (c *Controller) moveSelection(world geom.Point) {
	if len(c.movingInitial) == 0 {
		return
	}
	total := world.Sub(c.dragStartWorld)

	moved := make([]geom.Rect, len(c.movingInitial))
	initial := make(map[string]geom.Rect, len(c.movingInitial))
	for i, s := range c.movingInitial {
		moved[i] = s.bounds.Translate(total)
		initial[s.id] = s.bounds
	}

	if c.snapping {
		var stationary []geom.Rect
		for _, e := range c.board.Elements() {
			if !e.Common().Selected {
				stationary = append(stationary, e.Common().Bounds())
			}
		}
		total = total.Add(c.snapper().Move(moved, stationary))
	}

	for _, e := range c.board.Selected() {
		start, ok := initial[e.ID()]
		if !ok {
			continue
		}
		e.Common().SetPosition(geom.Point{X: start.X + total.X, Y: start.Y + total.Y})
	}
}

func (c *Controller) resizeTarget(world geom.Point) {
	if c.resize == nil {
		return
	}
	target, ok := c.board.Get(c.resize.id)
	if !ok {
		return
	}

	var bounds geom.Rect
	if _, isImage := target.(*element.Image); isImage {
		bounds = geom.ResizeKeepAspect(c.resize.initial, world, c.resize.handle)
	} else {
		bounds = geom.Resize(c.resize.initial, world, c.resize.handle)
	}

	if c.snapping {
		var stationary []geom.Rect
		for _, e := range c.board.Elements() {
			if e.ID() != target.ID() {
				stationary = append(stationary, e.Common().Bounds())
			}
		}
		bounds = c.snapper().Resize(bounds, c.resize.handle, stationary)
	}
	target.Common().SetBounds(bounds)
}

// PointerUp ends the gesture. A box selection is committed: the new
// selection is every element touching the box, plus the previous selection
// when additive.
func (c *Controller) PointerUp(opts PointerOptions) {
	if c.mode == ModeBoxSelect && c.selectionRect != nil {
		next := map[string]bool{}
		if opts.Additive {
			for id := range c.selected {
				next[id] = true
			}
		}
		for _, e := range c.board.Intersecting(*c.selectionRect) {
			next[e.ID()] = true
		}
		c.selected = next
		c.syncSelection()
		c.logger.Debug("box select", "rect", *c.selectionRect, "selected", len(next))
	}
	c.reset()
}

// WheelZoom zooms one tick about the screen point. A positive deltaY zooms
// out.
func (c *Controller) WheelZoom(screen geom.Point, deltaY float64) {
	c.view.Update(func(v viewport.Viewport) viewport.Viewport { return v.ZoomAt(screen, deltaY) })
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
