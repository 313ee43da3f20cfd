package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	fio "github.com/matzehuels/framegram/pkg/io"
	"github.com/matzehuels/framegram/pkg/layout"
	"github.com/matzehuels/framegram/pkg/observability"
)

// Runner executes the pipeline.
//
// The Runner is stateless except for the logger; it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → layout → render → write pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	doc, err := r.Load(ctx, opts.Input)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Document = doc
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Fields = doc.Root.Count() - 1
	result.Stats.Leaves = len(doc.Root.Leaves())
	result.Stats.Bits = doc.Root.TotalBits()

	r.Logger.Info("loaded document",
		"fields", result.Stats.Fields,
		"bits", result.Stats.Bits,
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	scene, err := r.Layout(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Scene = scene
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.Pages = scene.Pages
	result.Stats.Rows = scene.Rows
	result.Stats.Elements = len(scene.Elements)

	r.Logger.Info("computed layout",
		"rows", scene.Rows,
		"elements", len(scene.Elements),
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, scene, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	// Stage 4: Write
	writeStart := time.Now()
	paths := opts.OutputPaths()
	if err := Write(ctx, artifacts, paths); err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}
	result.Paths = paths
	result.Stats.WriteTime = time.Since(writeStart)

	for _, f := range opts.Formats {
		r.Logger.Debug("wrote artifact", "format", f, "path", paths[f], "bytes", len(artifacts[f]))
	}

	return result, nil
}

// Load reads the document at path.
func (r *Runner) Load(ctx context.Context, path string) (*fio.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()

	doc, err := fio.Load(path)

	count := 0
	if err == nil {
		count = doc.Root.Count() - 1
	}
	hooks.OnLoadComplete(ctx, path, count, time.Since(start), err)
	return doc, err
}

// Layout builds the scene of doc with the options resolved from opts.
func (r *Runner) Layout(ctx context.Context, doc *fio.Document, opts Options) (layout.Scene, error) {
	if err := ctx.Err(); err != nil {
		return layout.Scene{}, err
	}
	lopts, err := opts.LayoutOptions(doc.Options)
	if err != nil {
		return layout.Scene{}, err
	}
	r.Logger.Debug("layout options",
		"width", lopts.Width,
		"height", lopts.Height,
		"wrap", lopts.Wrap,
		"bits", lopts.Bits,
		"font_size", lopts.FontSize,
		"supersample", lopts.Supersample)

	hooks := observability.Pipeline()
	bits := doc.Root.TotalBits()
	hooks.OnLayoutStart(ctx, bits)
	start := time.Now()

	scene, err := layout.Build(doc.Root, lopts)

	hooks.OnLayoutComplete(ctx, len(scene.Elements), time.Since(start), err)
	return scene, err
}

// Render encodes the scene in every format of opts.
func (r *Runner) Render(ctx context.Context, s layout.Scene, opts Options) (map[string][]byte, error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := Render(ctx, s, opts)

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}
