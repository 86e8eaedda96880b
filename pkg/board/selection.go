package board

import "github.com/matzehuels/whiteboard/pkg/element"

// SetSelection sets every element's Selected flag from membership in ids.
func (b *Board) SetSelection(ids map[string]bool) {
	for _, e := range b.elements {
		e.Common().Selected = ids[e.ID()]
	}
}

// ClearSelection deselects every element.
func (b *Board) ClearSelection() {
	for _, e := range b.elements {
		e.Common().Selected = false
	}
}

// Selected returns the selected elements in z-order.
func (b *Board) Selected() []element.Element {
	var out []element.Element
	for _, e := range b.elements {
		if e.Common().Selected {
			out = append(out, e)
		}
	}
	return out
}

// SelectedIDs returns the ids of the selected elements as a set.
func (b *Board) SelectedIDs() map[string]bool {
	ids := make(map[string]bool)
	for _, e := range b.elements {
		if e.Common().Selected {
			ids[e.ID()] = true
		}
	}
	return ids
}
