// Package render draws a laid-out frame diagram.
//
// # Overview
//
// Rendering starts from a [layout.Scene]: an ordered list of rectangles and
// labels in device units. The scene is independent of the output format;
// sinks turn it into bytes:
//
//   - [sink.RenderPNG]: raster output drawn with fogleman/gg, downscaled
//     with a Lanczos filter when the scene is supersampled
//   - [sink.RenderSVG]: vector output with the same geometry
//   - [sink.RenderJSON]: the scene itself, for external tools
//
// The [styles] subpackage holds what sinks share about text: measuring,
// the one-character-per-line fallback for labels that do not fit, and XML
// escaping.
//
//	scene, err := layout.Build(root, layout.DefaultOptions())
//	png, err := sink.RenderPNG(scene)
//
// [layout.Scene]: github.com/matzehuels/framegram/pkg/layout.Scene
// [sink.RenderPNG]: github.com/matzehuels/framegram/pkg/render/sink.RenderPNG
// [sink.RenderSVG]: github.com/matzehuels/framegram/pkg/render/sink.RenderSVG
// [sink.RenderJSON]: github.com/matzehuels/framegram/pkg/render/sink.RenderJSON
// [styles]: github.com/matzehuels/framegram/pkg/render/styles
package render
