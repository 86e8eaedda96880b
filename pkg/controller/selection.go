package controller

import "github.com/matzehuels/whiteboard/pkg/element"

// SelectedIDs returns a copy of the selection set.
func (c *Controller) SelectedIDs() map[string]bool {
	out := make(map[string]bool, len(c.selected))
	for id := range c.selected {
		out[id] = true
	}
	return out
}

// SetSelection replaces the selection with ids. Ids not on the board are
// kept in the set but select nothing.
func (c *Controller) SetSelection(ids ...string) {
	c.selected = make(map[string]bool, len(ids))
	for _, id := range ids {
		c.selected[id] = true
	}
	c.syncSelection()
}

// SelectSingleElement makes id the only selected element.
func (c *Controller) SelectSingleElement(id string) { c.SetSelection(id) }

// ClearSelection deselects everything.
func (c *Controller) ClearSelection() { c.SetSelection() }

// SingleSelected returns the selected element when exactly one is selected.
func (c *Controller) SingleSelected() (element.Element, bool) {
	selected := c.board.Selected()
	if len(selected) != 1 {
		return nil, false
	}
	return selected[0], true
}

// DeleteSelection removes every selected element and clears the selection.
// It returns the number of removed elements.
func (c *Controller) DeleteSelection() int {
	n := c.board.RemoveSet(c.selected)
	c.selected = map[string]bool{}
	c.logger.Debug("delete selection", "removed", n)
	return n
}

func (c *Controller) syncSelection() { c.board.SetSelection(c.selected) }
