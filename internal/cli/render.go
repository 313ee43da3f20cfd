package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framegram/pkg/layout"
	"github.com/matzehuels/framegram/pkg/pipeline"
)

// renderOpts holds the command-line flags.
type renderOpts struct {
	output      string  // output file (single format) or base path (multiple)
	formats     string  // comma-separated output formats
	width       int     // page width in pixels
	height      int     // page height in pixels
	wrap        int     // bits per page, 0 for the whole frame
	bits        bool    // draw the bit ruler
	fontSize    float64 // label size as a fraction of the page height
	supersample int     // draw at this multiple of the output size
	byteModulo  int     // number the byte ruler modulo this value
	embedFont   bool    // embed the font in SVG output
}

func defaultRenderOpts() renderOpts {
	return renderOpts{
		formats:     pipeline.DefaultFormat,
		width:       layout.DefaultWidth,
		height:      layout.DefaultHeight,
		bits:        true,
		fontSize:    layout.DefaultFontSize,
		supersample: layout.DefaultSupersample,
	}
}

// flagSettings maps layout flags to the pipeline settings they override.
var flagSettings = map[string]string{
	"width":       pipeline.SetWidth,
	"height":      pipeline.SetHeight,
	"wrap":        pipeline.SetWrap,
	"bits":        pipeline.SetBits,
	"font-size":   pipeline.SetFontSize,
	"supersample": pipeline.SetSupersample,
}

func (o *renderOpts) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVarP(&o.width, "width", "w", o.width, "page width in pixels")
	f.IntVarP(&o.height, "height", "h", o.height, "page height in pixels")
	f.IntVar(&o.wrap, "wrap", o.wrap, "bits per page (default: the whole frame on one page)")
	f.StringVarP(&o.output, "output", "o", "", "output file (single format) or base path (multiple); default: input with its extension replaced")
	f.StringVarP(&o.formats, "format", "f", o.formats, "output format(s): png, svg, json (comma-separated)")
	f.BoolVar(&o.bits, "bits", o.bits, "draw the bit ruler")
	f.Float64Var(&o.fontSize, "font-size", o.fontSize, "label size as a fraction of the page height")
	f.IntVar(&o.supersample, "supersample", o.supersample, "draw at N times the output size and scale down")
	f.IntVar(&o.byteModulo, "byte-modulo", 0, "number the byte ruler modulo N (0: off)")
	f.BoolVar(&o.embedFont, "embed-font", false, "embed the font in SVG output")
}

// pipelineOptions converts the flags into pipeline options. Layout flags are
// marked as set only when they were given on the command line, so document
// opts apply otherwise.
func (o *renderOpts) pipelineOptions(cmd *cobra.Command, input string) (pipeline.Options, error) {
	formats := pipeline.ParseFormats(o.formats)
	if err := pipeline.ValidateFormats(formats); err != nil {
		return pipeline.Options{}, err
	}

	set := make(map[string]bool)
	for flag, setting := range flagSettings {
		if cmd.Flags().Changed(flag) {
			set[setting] = true
		}
	}

	return pipeline.Options{
		Input:       input,
		Output:      o.output,
		Formats:     formats,
		Width:       o.width,
		Height:      o.height,
		Wrap:        o.wrap,
		Bits:        o.bits,
		FontSize:    o.fontSize,
		Supersample: o.supersample,
		ByteModulo:  o.byteModulo,
		EmbedFont:   o.embedFont,
		Set:         set,
		Logger:      loggerFromContext(cmd.Context()),
	}, nil
}

// runRender executes the pipeline and reports the written files.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", opts.Input)
	prog := newProgress(logger)

	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done("Diagram complete", "formats", len(result.Paths))

	printSuccess("Rendered %s", opts.Input)
	for _, f := range opts.Formats {
		printFile(result.Paths[f])
	}
	printStats(result.Stats)
	return nil
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
