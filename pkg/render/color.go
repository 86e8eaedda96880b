package render

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Visible reports whether s names a painted color.
func Visible(s string) bool {
	_, ok := ParseColor(s)
	return ok
}

// ParseColor parses #rgb, #rrggbb and #rrggbbaa colors. Empty strings,
// "transparent", "none" and unparsable values report false.
func ParseColor(s string) (color.NRGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "transparent", "none":
		return color.NRGBA{}, false
	case "white":
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}, true
	case "black":
		return color.NRGBA{A: 255}, true
	}

	alpha := uint8(255)
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:9], 16, 8)
		if err != nil {
			return color.NRGBA{}, false
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, false
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, true
}
