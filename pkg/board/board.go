// Package board holds the ordered element collection of a whiteboard.
//
// Storage order is the z-order: later elements paint on top and win
// hit-testing. Selection lives on each element's Selected flag; SetSelection
// is the point where an externally tracked id set is written back to the
// flags.
package board

import (
	"github.com/matzehuels/whiteboard/pkg/element"
	"github.com/matzehuels/whiteboard/pkg/geom"
)

// Board is an ordered sequence of elements with unique ids.
//
// Board is not safe for concurrent use. Elements returned by its methods are
// live references.
type Board struct {
	elements []element.Element
}

// New returns a board holding elements in the given order.
func New(elements ...element.Element) *Board {
	return &Board{elements: elements}
}

// Len returns the number of elements.
func (b *Board) Len() int { return len(b.elements) }

// Elements returns the live ordered sequence, back to front. Callers must not
// assume a copy.
func (b *Board) Elements() []element.Element { return b.elements }

// SetElements replaces the whole sequence.
func (b *Board) SetElements(elements []element.Element) { b.elements = elements }

// Add appends e on top of the z-order. An element whose id is already
// present replaces the existing one in place.
func (b *Board) Add(e element.Element) {
	if i := b.index(e.ID()); i >= 0 {
		b.elements[i] = e
		return
	}
	b.elements = append(b.elements, e)
}

// Remove deletes the element with the given id and reports whether it was
// present. Removing an absent id is not an error.
func (b *Board) Remove(id string) bool {
	i := b.index(id)
	if i < 0 {
		return false
	}
	b.elements = append(b.elements[:i], b.elements[i+1:]...)
	return true
}

// RemoveSet deletes every element whose id is in ids and returns how many
// were removed.
func (b *Board) RemoveSet(ids map[string]bool) int {
	kept := b.elements[:0]
	for _, e := range b.elements {
		if !ids[e.ID()] {
			kept = append(kept, e)
		}
	}
	removed := len(b.elements) - len(kept)
	for i := len(kept); i < len(b.elements); i++ {
		b.elements[i] = nil
	}
	b.elements = kept
	return removed
}

// Get returns the element with the given id.
func (b *Board) Get(id string) (element.Element, bool) {
	if i := b.index(id); i >= 0 {
		return b.elements[i], true
	}
	return nil, false
}

// Index returns the z-order position of id, or -1.
func (b *Board) Index(id string) int { return b.index(id) }

func (b *Board) index(id string) int {
	for i, e := range b.elements {
		if e.ID() == id {
			return i
		}
	}
	return -1
}

// HitTest returns the topmost element containing p.
func (b *Board) HitTest(p geom.Point) (element.Element, bool) {
	for i := len(b.elements) - 1; i >= 0; i-- {
		if b.elements[i].Contains(p) {
			return b.elements[i], true
		}
	}
	return nil, false
}

// Intersecting returns the elements whose bounds touch or overlap r, in
// z-order.
func (b *Board) Intersecting(r geom.Rect) []element.Element {
	var out []element.Element
	for _, e := range b.elements {
		if r.Intersects(e.Common().Bounds()) {
			out = append(out, e)
		}
	}
	return out
}
