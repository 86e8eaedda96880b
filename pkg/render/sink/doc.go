// Package sink paints a [render.Scene] as SVG, PNG or PDF.
//
// All sinks share the same [Option] set. The scene bounds are mapped onto
// the output with [WithPadding] around them and [WithScale] output units per
// world unit:
//
//	scene := render.NewScene(elements, render.WithoutSelection())
//	svg := sink.RenderSVG(scene)
//	png, err := sink.RenderPNG(scene, sink.WithScale(2))
//	pdf, err := sink.RenderPDF(scene, sink.WithBackground("#ffffff"))
//
// PNG output is rasterized with fogleman/gg using the embedded Go fonts;
// PDF output uses gofpdf with its built-in Helvetica. Images whose data URI
// cannot be decoded are drawn as placeholders instead of failing the export.
//
// [render.Scene]: github.com/matzehuels/whiteboard/pkg/render.Scene
package sink
