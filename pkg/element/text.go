package element

import "github.com/matzehuels/whiteboard/pkg/geom"

// Text and sticky note defaults.
const (
	DefaultText           = "Text"
	DefaultTextFontSize   = 18.0
	DefaultTextFill       = "#ffffff"
	DefaultTextBorder     = "#6b7280"
	DefaultTextColor      = "#111827"
	DefaultStickyText     = "Sticky note"
	DefaultStickyFontSize = 16.0
	DefaultStickyFill     = "#fef08a"
	DefaultStickyBorder   = "#854d0e"
	DefaultStickyColor    = "#1f2937"
)

// Text is a text box.
type Text struct {
	Base
	Content string
	Size    float64 // font size in world units
	Weight  FontWeight
	Fill    string
	Border  string
	Color   string // text color
	Align   TextAlign
}

// NewText returns a text box holding s with the default style.
func NewText(id string, r geom.Rect, s string) *Text {
	return &Text{
		Base:    NewBase(id, r),
		Content: s,
		Size:    DefaultTextFontSize,
		Weight:  WeightNormal,
		Fill:    DefaultTextFill,
		Border:  DefaultTextBorder,
		Color:   DefaultTextColor,
		Align:   AlignLeft,
	}
}

func (t *Text) Kind() Kind                 { return KindText }
func (t *Text) Contains(p geom.Point) bool { return t.inBounds(p) }
func (t *Text) Text() string               { return t.Content }
func (t *Text) SetText(s string)           { t.Content = s }
func (t *Text) FillColor() string          { return t.Fill }
func (t *Text) SetFillColor(c string)      { t.Fill = c }
func (t *Text) BorderColor() string        { return t.Border }
func (t *Text) SetBorderColor(c string)    { t.Border = c }
func (t *Text) TextColor() string          { return t.Color }
func (t *Text) SetTextColor(c string)      { t.Color = c }
func (t *Text) TextAlign() TextAlign       { return t.Align }
func (t *Text) SetTextAlign(a TextAlign)   { t.Align = a }
func (t *Text) FontSize() float64          { return t.Size }
func (t *Text) SetFontSize(s float64)      { t.Size = s }
func (t *Text) FontWeight() FontWeight     { return t.Weight }
func (t *Text) SetFontWeight(w FontWeight) { t.Weight = w }

func (t *Text) Controls() Controls {
	return Controls{
		FillColor:   true,
		BorderColor: true,
		TextColor:   true,
		TextAlign:   true,
		FontSize:    true,
		FontWeight:  true,
	}
}

func (t *Text) ToJSON() JSON {
	j := t.toJSON(KindText)
	j.Text = ptr(t.Content)
	j.FontSize = ptr(t.Size)
	j.FontWeight = ptr(t.Weight)
	j.FillColor = ptr(t.Fill)
	j.BorderColor = ptr(t.Border)
	j.TextColor = ptr(t.Color)
	j.TextAlign = ptr(t.Align)
	return j
}

func textFromJSON(j JSON) *Text {
	t := &Text{
		Base:    baseFromJSON(j),
		Content: valueOr(j.Text, DefaultText),
		Size:    valueOr(j.FontSize, DefaultTextFontSize),
		Weight:  valueOr(j.FontWeight, WeightNormal),
		Fill:    valueOr(j.FillColor, DefaultTextFill),
		Border:  valueOr(j.BorderColor, DefaultTextBorder),
		Color:   valueOr(j.TextColor, DefaultTextColor),
		Align:   valueOr(j.TextAlign, AlignLeft),
	}
	if !t.Weight.Valid() {
		t.Weight = WeightNormal
	}
	if !t.Align.Valid() {
		t.Align = AlignLeft
	}
	return t
}

// Sticky is a sticky note. Its text is always centered.
type Sticky struct {
	Base
	Content string
	Size    float64
	Fill    string
	Border  string
	Color   string
}

// NewSticky returns a sticky note holding s with the default style.
func NewSticky(id string, r geom.Rect, s string) *Sticky {
	return &Sticky{
		Base:    NewBase(id, r),
		Content: s,
		Size:    DefaultStickyFontSize,
		Fill:    DefaultStickyFill,
		Border:  DefaultStickyBorder,
		Color:   DefaultStickyColor,
	}
}

func (s *Sticky) Kind() Kind                 { return KindSticky }
func (s *Sticky) Contains(p geom.Point) bool { return s.inBounds(p) }
func (s *Sticky) Text() string               { return s.Content }
func (s *Sticky) SetText(v string)           { s.Content = v }
func (s *Sticky) FillColor() string          { return s.Fill }
func (s *Sticky) SetFillColor(c string)      { s.Fill = c }
func (s *Sticky) BorderColor() string        { return s.Border }
func (s *Sticky) SetBorderColor(c string)    { s.Border = c }
func (s *Sticky) TextColor() string          { return s.Color }
func (s *Sticky) SetTextColor(c string)      { s.Color = c }
func (s *Sticky) FontSize() float64          { return s.Size }
func (s *Sticky) SetFontSize(v float64)      { s.Size = v }

// TextAlign is always AlignCenter.
func (s *Sticky) TextAlign() TextAlign { return AlignCenter }

// SetTextAlign does nothing; sticky note text stays centered.
func (s *Sticky) SetTextAlign(TextAlign) {}

func (s *Sticky) Controls() Controls {
	return Controls{
		FillColor:   true,
		BorderColor: true,
		TextColor:   true,
		FontSize:    true,
	}
}

func (s *Sticky) ToJSON() JSON {
	j := s.toJSON(KindSticky)
	j.Text = ptr(s.Content)
	j.FontSize = ptr(s.Size)
	j.FillColor = ptr(s.Fill)
	j.BorderColor = ptr(s.Border)
	j.TextColor = ptr(s.Color)
	j.TextAlign = ptr(AlignCenter)
	return j
}

func stickyFromJSON(j JSON) *Sticky {
	return &Sticky{
		Base:    baseFromJSON(j),
		Content: valueOr(j.Text, DefaultStickyText),
		Size:    valueOr(j.FontSize, DefaultStickyFontSize),
		Fill:    valueOr(j.FillColor, DefaultStickyFill),
		Border:  valueOr(j.BorderColor, DefaultStickyBorder),
		Color:   valueOr(j.TextColor, DefaultStickyColor),
	}
}
