package controller

import (
	"github.com/matzehuels/whiteboard/pkg/element"
	"github.com/matzehuels/whiteboard/pkg/geom"
)

// EditableTextTarget describes a text box or sticky note for an inline
// editor overlay.
type EditableTextTarget struct {
	ID          string            `json:"id"`
	Text        string            `json:"text"`
	Kind        element.Kind      `json:"kind"`
	X           float64           `json:"x"`
	Y           float64           `json:"y"`
	Width       float64           `json:"width"`
	Height      float64           `json:"height"`
	FontSize    float64           `json:"fontSize"`
	FillColor   string            `json:"fillColor"`
	BorderColor string            `json:"borderColor"`
	TextColor   string            `json:"textColor"`
	TextAlign   element.TextAlign `json:"textAlign"`
}

// ElementByID returns the element with the given id.
func (c *Controller) ElementByID(id string) (element.Element, bool) { return c.board.Get(id) }

// ElementAt returns the topmost element at a world point.
func (c *Controller) ElementAt(world geom.Point) (element.Element, bool) {
	return c.board.HitTest(world)
}

// EditableTextTargetAt returns the editor target for the topmost element at
// a world point when that element is a text box or sticky note.
func (c *Controller) EditableTextTargetAt(world geom.Point) (EditableTextTarget, bool) {
	hit, ok := c.board.HitTest(world)
	if !ok {
		return EditableTextTarget{}, false
	}
	b := hit.Common()
	target := EditableTextTarget{
		ID:     hit.ID(),
		Kind:   hit.Kind(),
		X:      b.X,
		Y:      b.Y,
		Width:  b.Width,
		Height: b.Height,
	}
	switch v := hit.(type) {
	case *element.Text:
		target.Text, target.FontSize, target.TextAlign = v.Content, v.Size, v.Align
		target.FillColor, target.BorderColor, target.TextColor = v.Fill, v.Border, v.Color
	case *element.Sticky:
		target.Text, target.FontSize, target.TextAlign = v.Content, v.Size, element.AlignCenter
		target.FillColor, target.BorderColor, target.TextColor = v.Fill, v.Border, v.Color
	default:
		return EditableTextTarget{}, false
	}
	return target, true
}

// UpdateElementText replaces the text of a text box or sticky note. A
// missing id or a variant without text is ignored.
func (c *Controller) UpdateElementText(id, text string) bool {
	e, ok := c.board.Get(id)
	if !ok {
		return false
	}
	t, ok := e.(element.TextHolder)
	if ok {
		t.SetText(text)
	}
	return ok
}
