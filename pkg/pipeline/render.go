package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/framegram/pkg/layout"
	"github.com/matzehuels/framegram/pkg/render/sink"
)

// Render encodes the scene in every requested format. Formats are rendered
// concurrently; the first failure cancels the rest.
func Render(ctx context.Context, s layout.Scene, opts Options) (map[string][]byte, error) {
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, err
	}

	results := make([][]byte, len(opts.Formats))
	g, gctx := errgroup.WithContext(ctx)
	for i, format := range opts.Formats {
		i, format := i, format
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := renderFormat(s, format, opts)
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			results[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(results))
	for i, format := range opts.Formats {
		artifacts[format] = results[i]
	}
	return artifacts, nil
}

func renderFormat(s layout.Scene, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatPNG:
		return sink.RenderPNG(s)
	case FormatSVG:
		var svgOpts []sink.SVGOption
		if opts.EmbedFont {
			svgOpts = append(svgOpts, sink.WithEmbeddedFont())
		}
		return sink.RenderSVG(s, svgOpts...), nil
	case FormatJSON:
		return sink.RenderJSON(s)
	}
	return nil, ValidateFormat(format)
}
