package board

import "github.com/matzehuels/whiteboard/pkg/element"

// Hydration is the outcome of resolving an icon image's bitmap.
type Hydration struct {
	ID      string
	DataURL string
	Err     error
}

// PendingImages returns the images that still need their icon bitmap and
// have no resolution in flight.
func (b *Board) PendingImages() []*element.Image {
	var out []*element.Image
	for _, e := range b.elements {
		if img, ok := e.(*element.Image); ok && img.NeedsHydration() {
			out = append(out, img)
		}
	}
	return out
}

// ApplyHydration patches the image with h.ID if it is still on the board.
// It reports whether an image was updated; a result for a removed or
// replaced element is dropped.
func (b *Board) ApplyHydration(h Hydration) bool {
	e, ok := b.Get(h.ID)
	if !ok {
		return false
	}
	img, ok := e.(*element.Image)
	if !ok || !img.Hydrating() {
		return false
	}
	if h.Err != nil {
		img.CompleteHydration("")
		return false
	}
	img.CompleteHydration(h.DataURL)
	return h.DataURL != ""
}
