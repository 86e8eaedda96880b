package controller

import (
	"math"

	"github.com/matzehuels/whiteboard/pkg/element"
	"github.com/matzehuels/whiteboard/pkg/geom"
)

// CopySelection returns deep snapshots of the selected elements with the
// selection flag cleared.
func (c *Controller) CopySelection() []element.JSON {
	selected := c.board.Selected()
	out := make([]element.JSON, 0, len(selected))
	for _, e := range selected {
		j := element.Clone(e).ToJSON()
		j.IsSelected = false
		out = append(out, j)
	}
	return out
}

// PasteAt adds copies of snapshots so that the group's top-left corner lands
// on cursor. Every copy gets a fresh id, and the pasted elements become the
// selection. It returns the new ids; snapshots of unknown type are skipped.
func (c *Controller) PasteAt(snapshots []element.JSON, cursor geom.Point) []string {
	if len(snapshots) == 0 {
		return nil
	}
	minX, minY := math.Inf(1), math.Inf(1)
	for _, s := range snapshots {
		minX = math.Min(minX, s.X)
		minY = math.Min(minY, s.Y)
	}

	pasted := make([]string, 0, len(snapshots))
	for _, s := range snapshots {
		s.ID = c.newID()
		s.X = cursor.X + (s.X - minX)
		s.Y = cursor.Y + (s.Y - minY)
		s.IsSelected = true
		s.Points = append([]geom.Point(nil), s.Points...)

		e, err := element.FromJSON(s)
		if err != nil {
			c.logger.Debug("paste skipped", "type", s.Type, "err", err)
			continue
		}
		c.board.Add(e)
		pasted = append(pasted, e.ID())
	}
	c.SetSelection(pasted...)
	return pasted
}
