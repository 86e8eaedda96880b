// Package element defines the shapes that live on a whiteboard.
//
// # Variants
//
// The set of element kinds is closed:
//
//   - [Rectangle] and [Ellipse]: filled, bordered shapes
//   - [Text]: a text box with font size, weight, alignment and colors
//   - [Sticky]: a sticky note whose text is always centered
//   - [Image]: a bitmap given as a data URI, or an icon resolved later
//   - [Video]: a YouTube video placeholder
//   - [FreeDraw]: a freehand polyline stored in unit space
//
// Every variant embeds [Base], which carries the id, the bounds, the rotation
// and the selection flag. The [Element] interface cannot be implemented
// outside this package, so a type switch over the variants is exhaustive.
//
// # Style capabilities
//
// Each variant reports which style controls are meaningful for it through
// [Element.Controls]. Field access goes through small interfaces such as
// [FillStyler] and [FontSizer]; a caller checks both the capability and the
// interface before writing:
//
//	if e.Controls().FillColor {
//	    if f, ok := e.(element.FillStyler); ok {
//	        f.SetFillColor("#fef08a")
//	    }
//	}
//
// # JSON
//
// [JSON] is the flat persisted form shared by all variants. [FromJSON]
// rebuilds a variant from it, substituting documented defaults for missing
// optional fields, and fails with an UNKNOWN_ELEMENT_TYPE error for any
// other type tag. For every variant, FromJSON(e.ToJSON()) reproduces e.
package element
