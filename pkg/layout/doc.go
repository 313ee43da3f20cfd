// Package layout turns a field tree into a [Scene]: the ordered list of
// rectangles and labels that make up a frame diagram.
//
// # Geometry
//
// The root's bit range is laid out as one horizontal stream Width pixels per
// Wrap bits. When the frame is wider than one page, the stream wraps onto
// further rows of Height pixels; every rectangle is folded onto the rows with
// [geom.Box.PartitionX]. Each row stacks, top to bottom:
//
//   - the struct region: nested field boxes, each level reserving the top
//     ParentShare of its parent's height for the parent label
//   - the values strip: each leaf's values, split evenly under the leaf
//   - the byte ruler: one cell per 8 bits
//   - the bit ruler (optional): one cell per bit, numbered modulo 8
//
// A second pass outlines the fields marked important, extended down over the
// values strip.
//
// Coordinates are device units: output pixels times Supersample. Sinks in
// [github.com/matzehuels/framegram/pkg/render] draw the scene and scale it
// back to [Scene.OutWidth] x [Scene.OutHeight].
//
// # Usage
//
//	opts := layout.DefaultOptions()
//	opts.Wrap = 32
//	scene, err := layout.Build(root, opts)
package layout
