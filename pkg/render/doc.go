// Package render describes how board elements look.
//
// # Overview
//
// The interaction engine never issues draw calls. Instead [Describe] turns
// each element into an ordered list of [Primitive] values (filled and
// stroked boxes, ellipses, polylines, text blocks, images) in world
// coordinates, and [NewScene] concatenates them for a whole board in z-order
// together with the content bounds. Anything that can draw rectangles,
// ellipses, lines, text and bitmaps can paint a scene: the [sink] subpackage
// provides SVG, PNG and PDF output.
//
//	scene := render.NewScene(b.Elements())
//	svg := sink.RenderSVG(scene, sink.WithPadding(40))
//
// # Selection
//
// Selected elements get an extra outline primitive in [SelectionColor] on
// top of their own primitives. Pass [WithoutSelection] to leave it out, for
// example when exporting.
//
// # Helpers
//
// [ParseColor] understands the CSS hex forms and "transparent" used by the
// element palette. [WrapLines] breaks text into lines for a given measuring
// function, and [DecodeDataURL] extracts the bitmap of an image element.
//
// [sink]: github.com/matzehuels/whiteboard/pkg/render/sink
package render
