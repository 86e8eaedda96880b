package controller

import "github.com/matzehuels/whiteboard/pkg/element"

// FontSizeSteps are the sizes walked by the font size buttons.
var FontSizeSteps = []float64{10, 12, 14, 16, 18, 20, 24, 28, 32, 36, 40, 44, 48}

// StyleState describes the style panel for the single selected element.
// A value field is nil when the element does not carry it.
type StyleState struct {
	Controls            element.Controls    `json:"controls"`
	FillColor           *string             `json:"fillColor"`
	BorderColor         *string             `json:"borderColor"`
	TextColor           *string             `json:"textColor"`
	TextAlign           *element.TextAlign  `json:"textAlign"`
	FontSize            *float64            `json:"fontSize"`
	FontWeight          *element.FontWeight `json:"fontWeight"`
	CanDecreaseFontSize bool                `json:"canDecreaseFontSize"`
	CanIncreaseFontSize bool                `json:"canIncreaseFontSize"`
}

// SelectedStyleState returns the style panel state, or false unless exactly
// one element is selected. A control is offered only when the variant
// supports it and carries the field.
func (c *Controller) SelectedStyleState() (StyleState, bool) {
	e, ok := c.SingleSelected()
	if !ok {
		return StyleState{}, false
	}
	caps := e.Controls()
	var s StyleState

	if v, ok := e.(element.FillStyler); ok {
		s.FillColor = ptr(v.FillColor())
	}
	if v, ok := e.(element.BorderStyler); ok {
		s.BorderColor = ptr(v.BorderColor())
	}
	if v, ok := e.(element.TextColorer); ok {
		s.TextColor = ptr(v.TextColor())
	}
	if v, ok := e.(element.Aligner); ok && v.TextAlign().Valid() {
		s.TextAlign = ptr(v.TextAlign())
	}
	if v, ok := e.(element.FontSizer); ok {
		size := v.FontSize()
		s.FontSize = &size
		_, s.CanDecreaseFontSize = stepDown(size)
		_, s.CanIncreaseFontSize = stepUp(size)
	}
	if v, ok := e.(element.FontWeighter); ok {
		s.FontWeight = ptr(v.FontWeight())
	}

	s.Controls = element.Controls{
		FillColor:   caps.FillColor && s.FillColor != nil,
		BorderColor: caps.BorderColor && s.BorderColor != nil,
		TextColor:   caps.TextColor && s.TextColor != nil,
		TextAlign:   caps.TextAlign && s.TextAlign != nil,
		FontSize:    caps.FontSize && s.FontSize != nil,
		FontWeight:  caps.FontWeight && s.FontWeight != nil,
	}
	return s, true
}

// stepDown returns the largest step below size.
func stepDown(size float64) (float64, bool) {
	for i := len(FontSizeSteps) - 1; i >= 0; i-- {
		if FontSizeSteps[i] < size {
			return FontSizeSteps[i], true
		}
	}
	return 0, false
}

// stepUp returns the smallest step above size.
func stepUp(size float64) (float64, bool) {
	for _, s := range FontSizeSteps {
		if s > size {
			return s, true
		}
	}
	return 0, false
}

// applyToSingle runs fn on the selected element when exactly one is
// selected and reports whether fn changed it.
func (c *Controller) applyToSingle(fn func(element.Element) bool) bool {
	e, ok := c.SingleSelected()
	if !ok {
		return false
	}
	return fn(e)
}

// SetSelectedFillColor sets the fill of the single selected element.
func (c *Controller) SetSelectedFillColor(color string) bool {
	return c.applyToSingle(func(e element.Element) bool {
		v, ok := e.(element.FillStyler)
		if ok {
			v.SetFillColor(color)
		}
		return ok
	})
}

// SetSelectedBorderColor sets the border, or stroke, color.
func (c *Controller) SetSelectedBorderColor(color string) bool {
	return c.applyToSingle(func(e element.Element) bool {
		v, ok := e.(element.BorderStyler)
		if ok {
			v.SetBorderColor(color)
		}
		return ok
	})
}

// SetSelectedTextColor sets the text color of a text or sticky element.
func (c *Controller) SetSelectedTextColor(color string) bool {
	return c.applyToSingle(func(e element.Element) bool {
		v, ok := e.(element.TextColorer)
		if ok {
			v.SetTextColor(color)
		}
		return ok
	})
}

// SetSelectedTextAlign changes the alignment when the variant offers the
// control. Sticky notes stay centered.
func (c *Controller) SetSelectedTextAlign(align element.TextAlign) bool {
	if !align.Valid() {
		return false
	}
	return c.applyToSingle(func(e element.Element) bool {
		if !e.Controls().TextAlign {
			return false
		}
		v, ok := e.(element.Aligner)
		if ok {
			v.SetTextAlign(align)
		}
		return ok
	})
}

// SetSelectedFontWeight switches between normal and bold text.
func (c *Controller) SetSelectedFontWeight(weight element.FontWeight) bool {
	if !weight.Valid() {
		return false
	}
	return c.applyToSingle(func(e element.Element) bool {
		v, ok := e.(element.FontWeighter)
		if ok && e.Controls().FontWeight {
			v.SetFontWeight(weight)
			return true
		}
		return false
	})
}

// IncreaseSelectedFontSize moves the font size one step up. At the largest
// step it does nothing.
func (c *Controller) IncreaseSelectedFontSize() bool {
	return c.stepFontSize(stepUp)
}

// DecreaseSelectedFontSize moves the font size one step down.
func (c *Controller) DecreaseSelectedFontSize() bool {
	return c.stepFontSize(stepDown)
}

func (c *Controller) stepFontSize(step func(float64) (float64, bool)) bool {
	return c.applyToSingle(func(e element.Element) bool {
		v, ok := e.(element.FontSizer)
		if !ok {
			return false
		}
		next, ok := step(v.FontSize())
		if ok {
			v.SetFontSize(next)
		}
		return ok
	})
}

func ptr[T any](v T) *T { return &v }
