package controller

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/matzehuels/whiteboard/pkg/element"
)

// LayerItem is one row of the layer panel.
type LayerItem struct {
	ID              string       `json:"id"`
	Type            element.Kind `json:"type"`
	Title           string       `json:"title"`
	IsSelected      bool         `json:"isSelected"`
	CanMoveForward  bool         `json:"canMoveForward"`
	CanMoveBackward bool         `json:"canMoveBackward"`
}

const layerTitleLimit = 30

// LayerItems lists the elements front to back.
func (c *Controller) LayerItems() []LayerItem {
	elements := c.board.Elements()
	total := len(elements)
	out := make([]LayerItem, 0, total)
	for i := total - 1; i >= 0; i-- {
		e := elements[i]
		out = append(out, LayerItem{
			ID:              e.ID(),
			Type:            e.Kind(),
			Title:           LayerTitle(e),
			IsSelected:      e.Common().Selected,
			CanMoveForward:  i < total-1,
			CanMoveBackward: i > 0,
		})
	}
	return out
}

// LayerTitle names an element in the layer panel: the start of its text for
// text boxes and sticky notes, "YouTube video" for videos, otherwise the
// capitalized type.
func LayerTitle(e element.Element) string {
	switch v := e.(type) {
	case *element.Text, *element.Sticky:
		text := strings.TrimSpace(v.(element.TextHolder).Text())
		if text != "" {
			return truncate(text, layerTitleLimit)
		}
	case *element.Video:
		return "YouTube video"
	}
	kind := string(e.Kind())
	r, size := utf8.DecodeRuneInString(kind)
	return string(unicode.ToUpper(r)) + kind[size:]
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// MoveLayerForward moves the element one step toward the front.
func (c *Controller) MoveLayerForward(id string) bool { return c.board.MoveBy(id, 1) }

// MoveLayerBackward moves the element one step toward the back.
func (c *Controller) MoveLayerBackward(id string) bool { return c.board.MoveBy(id, -1) }

// BringLayerToFront moves the element above every other element.
func (c *Controller) BringLayerToFront(id string) bool { return c.board.MoveToFront(id) }

// SendLayerToBack moves the element below every other element.
func (c *Controller) SendLayerToBack(id string) bool { return c.board.MoveToBack(id) }
