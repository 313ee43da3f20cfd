// Package pkg provides the libraries behind framegram, a renderer for
// bit-field diagrams of protocol frames.
//
// # Overview
//
// A frame is described as a tree of named fields: leaves have a bit width
// and optional literal values, composites group other fields. framegram
// draws the tree as nested boxes sized by bit width, with a strip of values
// and rulers numbering bytes and bits underneath. Frames wider than one page
// wrap onto further rows.
//
// The pkg directory is organized as:
//
//  1. [frame] - the field tree and its derived quantities
//  2. [geom] - immutable boxes and the row-wrapping partition
//  3. [layout] - turns a field tree into a scene of rectangles and labels
//  4. [render] - sinks drawing a scene as PNG, SVG or JSON
//  5. [io] - JSON and TOML documents
//  6. [pipeline] - orchestration (load → layout → render → write)
//
// Support packages: [errors] (coded errors), [fonts] (the embedded Go Mono
// face), [observability] (event hooks) and [buildinfo] (version data).
//
// # Architecture
//
// The typical data flow through framegram:
//
//	JSON/TOML document
//	         ↓
//	    [io] package (decode into a field tree + options)
//	         ↓
//	    [layout] package (scene in device units)
//	         ↓
//	    [render/sink] package (draw and encode)
//	         ↓
//	    PNG/SVG/JSON output
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/framegram/pkg/io"
//	    "github.com/matzehuels/framegram/pkg/layout"
//	    "github.com/matzehuels/framegram/pkg/render/sink"
//	)
//
//	doc, _ := io.Load("ethernet.json")
//
//	opts := layout.DefaultOptions()
//	_ = doc.Options.Apply(&opts) // CONFIGURATION_ERROR for a non-positive wrap
//
//	scene, _ := layout.Build(doc.Root, opts)
//	png, _ := sink.RenderPNG(scene)
//
// Most callers should use [pipeline.Runner], which also resolves option
// precedence and writes the outputs atomically.
//
// [frame]: github.com/matzehuels/framegram/pkg/frame
// [geom]: github.com/matzehuels/framegram/pkg/geom
// [layout]: github.com/matzehuels/framegram/pkg/layout
// [render]: github.com/matzehuels/framegram/pkg/render
// [render/sink]: github.com/matzehuels/framegram/pkg/render/sink
// [io]: github.com/matzehuels/framegram/pkg/io
// [pipeline]: github.com/matzehuels/framegram/pkg/pipeline
// [pipeline.Runner]: github.com/matzehuels/framegram/pkg/pipeline.Runner
// [errors]: github.com/matzehuels/framegram/pkg/errors
// [fonts]: github.com/matzehuels/framegram/pkg/fonts
// [observability]: github.com/matzehuels/framegram/pkg/observability
// [buildinfo]: github.com/matzehuels/framegram/pkg/buildinfo
package pkg
