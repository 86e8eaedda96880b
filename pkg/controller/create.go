package controller

import (
	"math"
	"strings"
	"unicode/utf16"

	"github.com/matzehuels/whiteboard/pkg/element"
	"github.com/matzehuels/whiteboard/pkg/geom"
)

// Creatable names the shapes offered by CreateElement.
type Creatable string

const (
	CreateRectangle Creatable = "rectangle"
	CreateEllipse   Creatable = "ellipse"
	CreateText      Creatable = "text"
	CreateHeading   Creatable = "heading"
	CreateSticky    Creatable = "sticky"
)

// Creatables lists the CreateElement kinds in toolbar order.
var Creatables = []Creatable{CreateRectangle, CreateEllipse, CreateText, CreateHeading, CreateSticky}

// Size is a width and height in world units.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Sizing constants for created elements.
const (
	ImageDefaultWidth  = 320.0
	ImageDefaultHeight = 240.0
	ImageMaxWidth      = 360.0
	ImageMaxHeight     = 280.0
	ImageMinSide       = 40.0
	VideoWidth         = 420.0
	VideoHeight        = 236.0
	IconSize           = 96.0
)

func centered(pos geom.Point, w, h float64) geom.Rect {
	return geom.Rect{X: pos.X - w/2, Y: pos.Y - h/2, Width: w, Height: h}
}

// CreateElement adds a default-styled shape centered on the world point.
// It returns false for an unknown kind.
func (c *Controller) CreateElement(kind Creatable, pos geom.Point) (element.Element, bool) {
	var e element.Element
	id := c.newID()
	switch kind {
	case CreateRectangle:
		e = element.NewRectangle(id, centered(pos, 160, 100))
	case CreateEllipse:
		e = element.NewEllipse(id, centered(pos, 160, 100))
	case CreateText:
		e = element.NewText(id, centered(pos, 120, 30), element.DefaultText)
	case CreateHeading:
		t := element.NewText(id, centered(pos, 440, 60), "Heading")
		t.Size = 36
		t.Weight = element.WeightBold
		t.Fill = "transparent"
		t.Border = "transparent"
		e = t
	case CreateSticky:
		e = element.NewSticky(id, centered(pos, 160, 160), element.DefaultStickyText)
	default:
		return nil, false
	}
	c.board.Add(e)
	c.logger.Debug("create", "kind", kind, "id", id)
	return e, true
}

// AddImageElement adds an image centered on pos. The natural size defaults
// to 320x240 and is scaled down to fit 360x280, keeping each side at least
// 40.
func (c *Controller) AddImageElement(dataURL string, pos geom.Point, natural *Size) *element.Image {
	w, h := ImageDefaultWidth, ImageDefaultHeight
	if natural != nil {
		w, h = natural.Width, natural.Height
	}
	scale := math.Min(1, math.Min(ImageMaxWidth/math.Max(1, w), ImageMaxHeight/math.Max(1, h)))
	width := math.Max(ImageMinSide, w*scale)
	height := math.Max(ImageMinSide, h*scale)

	img := element.NewImage(c.newID(), centered(pos, width, height), dataURL)
	c.board.Add(img)
	return img
}

// AddIconElement adds a 96x96 image whose bitmap is rendered from an icon
// by a later HydrateImages call.
func (c *Controller) AddIconElement(iconID, color string, pos geom.Point) *element.Image {
	img := element.NewIconImage(c.newID(), centered(pos, IconSize, IconSize), iconID, color)
	c.board.Add(img)
	return img
}

// AddTextElement adds pasted text centered on pos, sized from its line count
// and longest line. Blank text adds nothing and returns false.
func (c *Controller) AddTextElement(text string, pos geom.Point) (*element.Text, bool) {
	normalized := strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if normalized == "" {
		return nil, false
	}

	lines := strings.Split(normalized, "\n")
	// Line length counts UTF-16 code units, so emoji take two columns.
	longest := 1
	for _, line := range lines {
		longest = max(longest, len(utf16.Encode([]rune(line))))
	}
	width := math.Min(420, math.Max(140, float64(longest)*9+24))
	height := math.Min(320, math.Max(44, float64(len(lines))*26+18))

	t := element.NewText(c.newID(), centered(pos, width, height), normalized)
	c.board.Add(t)
	return t, true
}

// AddYouTubeVideoElement adds a 420x236 video placeholder centered on pos.
// It returns false and leaves the board unchanged when url does not name a
// YouTube video.
func (c *Controller) AddYouTubeVideoElement(url string, pos geom.Point) (*element.Video, bool) {
	if _, ok := element.YouTubeID(url); !ok {
		c.logger.Debug("rejected video url", "url", url)
		return nil, false
	}
	v := element.NewVideo(c.newID(), centered(pos, VideoWidth, VideoHeight), strings.TrimSpace(url))
	c.board.Add(v)
	return v, true
}

// AddFreeDrawElement adds a stroke through the given world points. It
// returns false for fewer than two points.
func (c *Controller) AddFreeDrawElement(points []geom.Point, strokeWidth float64, color string) (*element.FreeDraw, bool) {
	f, ok := element.FreeDrawFromPath(c.newID(), points, strokeWidth, color)
	if !ok {
		return nil, false
	}
	c.board.Add(f)
	return f, true
}
