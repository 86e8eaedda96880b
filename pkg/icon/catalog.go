package icon

import (
	"math"
	"sort"
	"strings"

	"github.com/fogleman/gg"
)

// Grid is the side length of the icon coordinate system.
const Grid = 24.0

// Item is a catalog entry as shown in an icon picker.
type Item struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type drawFunc func(dc *gg.Context)

var catalog = map[string]drawFunc{
	"circle": func(dc *gg.Context) { dc.DrawCircle(12, 12, 9) },
	"square": func(dc *gg.Context) { dc.DrawRoundedRectangle(4, 4, 16, 16, 2) },
	"triangle": func(dc *gg.Context) {
		polygon(dc, 12, 3, 21, 20, 3, 20)
	},
	"star": drawStar,
	"check": func(dc *gg.Context) {
		polyline(dc, 4, 12.5, 9.5, 18, 20, 6)
	},
	"x": func(dc *gg.Context) {
		polyline(dc, 6, 6, 18, 18)
		polyline(dc, 18, 6, 6, 18)
	},
	"arrow-right": func(dc *gg.Context) {
		polyline(dc, 4, 12, 20, 12)
		polyline(dc, 13, 5, 20, 12, 13, 19)
	},
	"arrow-left": func(dc *gg.Context) {
		polyline(dc, 20, 12, 4, 12)
		polyline(dc, 11, 5, 4, 12, 11, 19)
	},
	"arrow-up": func(dc *gg.Context) {
		polyline(dc, 12, 20, 12, 4)
		polyline(dc, 5, 11, 12, 4, 19, 11)
	},
	"arrow-down": func(dc *gg.Context) {
		polyline(dc, 12, 4, 12, 20)
		polyline(dc, 5, 13, 12, 20, 19, 13)
	},
	"heart": drawHeart,
	"plus": func(dc *gg.Context) {
		polyline(dc, 12, 5, 12, 19)
		polyline(dc, 5, 12, 19, 12)
	},
	"minus": func(dc *gg.Context) { polyline(dc, 5, 12, 19, 12) },
}

// Has reports whether id names a catalog icon.
func Has(id string) bool {
	_, ok := catalog[id]
	return ok
}

// Items lists the catalog sorted by label.
func Items() []Item {
	items := make([]Item, 0, len(catalog))
	for id := range catalog {
		items = append(items, Item{ID: id, Label: Label(id)})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Label < items[j].Label })
	return items
}

// Label turns "arrow-right" into "Arrow Right".
func Label(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func polyline(dc *gg.Context, xy ...float64) {
	dc.MoveTo(xy[0], xy[1])
	for i := 2; i+1 < len(xy); i += 2 {
		dc.LineTo(xy[i], xy[i+1])
	}
}

func polygon(dc *gg.Context, xy ...float64) {
	polyline(dc, xy...)
	dc.ClosePath()
}

func drawStar(dc *gg.Context) {
	const outer, inner = 10.0, 4.2
	cx, cy := 12.0, 12.5
	xy := make([]float64, 0, 20)
	for i := 0; i < 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/5
		xy = append(xy, cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	polygon(dc, xy...)
}

func drawHeart(dc *gg.Context) {
	dc.MoveTo(12, 20.5)
	dc.CubicTo(5, 15.5, 2, 11.5, 2, 8)
	dc.CubicTo(2, 5, 4.5, 3, 7.5, 3)
	dc.CubicTo(9.5, 3, 11, 4.2, 12, 6)
	dc.CubicTo(13, 4.2, 14.5, 3, 16.5, 3)
	dc.CubicTo(19.5, 3, 22, 5, 22, 8)
	dc.CubicTo(22, 11.5, 19, 15.5, 12, 20.5)
	dc.ClosePath()
}
