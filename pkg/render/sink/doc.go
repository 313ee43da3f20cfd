// Package sink provides the output format renderers for frame diagrams.
//
// # Overview
//
// A "sink" turns a computed [layout.Scene] into a final output format:
//
//   - PNG: raster image drawn with fogleman/gg
//   - SVG: vector graphics with the same geometry
//   - JSON: the scene itself, for external tools
//
// Sinks draw elements in scene order, so later elements (rulers, the
// highlight outlines) paint over earlier ones.
//
// # PNG Output
//
// [RenderPNG] draws the scene at device size. Scenes built with a
// supersample factor above one are drawn large and then downscaled to
// [layout.Scene.OutWidth] x [layout.Scene.OutHeight], which smooths edges
// and small text:
//
//	png, err := sink.RenderPNG(scene)
//	png, err := sink.RenderPNG(scene, sink.WithResampleFilter(imaging.CatmullRom))
//
// Rectangles cover whole pixels: a box from L to R fills columns L through R
// inclusive. Strokes are drawn inside that area so neighbouring outlines do
// not bleed into each other.
//
// # SVG Output
//
// [RenderSVG] uses the device size as its viewBox and the output size as
// its width and height. Text is set in Go Mono; pass [WithEmbeddedFont] to
// embed the font so the SVG renders the same without it installed.
//
// # Labels
//
// Labels are centred in their box. A label wider than its box is stacked one
// character per line (see [styles.FitLabel]) rather than truncated.
//
// [layout.Scene]: github.com/matzehuels/framegram/pkg/layout.Scene
// [layout.Scene.OutWidth]: github.com/matzehuels/framegram/pkg/layout.Scene
// [layout.Scene.OutHeight]: github.com/matzehuels/framegram/pkg/layout.Scene
// [styles.FitLabel]: github.com/matzehuels/framegram/pkg/render/styles.FitLabel
package sink
