// Package pipeline provides the load → layout → render pipeline of framegram.
//
// The CLI drives a render through a [Runner]; keeping the stages here gives
// every entry point the same option precedence, logging and output
// guarantees.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Load: read the JSON or TOML document at Options.Input
//  2. Layout: resolve the layout options and build the scene
//  3. Render: encode the scene in every requested format, concurrently
//  4. Write: store every artifact next to the input (or at Options.Output)
//
// Every failure is fatal. Artifacts are written to temporary files and only
// renamed into place once all of them were rendered and stored, so a failed
// run leaves no new output behind.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:   "ethernet.json",
//	    Formats: []string{"png", "svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Paths["png"]) // ethernet.png
//
// # Option Precedence
//
// Layout settings are resolved from, in increasing priority: the defaults of
// [layout.DefaultOptions], the "opts" of the document, and the settings named
// in Options.Set. The CLI marks a setting as set when its flag was given on
// the command line.
package pipeline

import (
	"io"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	ferrors "github.com/matzehuels/framegram/pkg/errors"
	fio "github.com/matzehuels/framegram/pkg/io"
	"github.com/matzehuels/framegram/pkg/layout"
)

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// DefaultFormat is rendered when no format is requested.
const DefaultFormat = FormatPNG

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatSVG:  true,
	FormatJSON: true,
}

// Names of the layout settings that can be forced through Options.Set.
const (
	SetWidth       = "width"
	SetHeight      = "height"
	SetWrap        = "wrap"
	SetBits        = "bits"
	SetFontSize    = "font_size"
	SetSupersample = "supersample"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one render.
type Options struct {
	// Input is the path of the JSON or TOML document.
	Input string

	// Output is the artifact path. Empty derives it from Input by replacing
	// the extension with the format name. With several formats, Output is
	// used as a base whose extension is replaced per format.
	Output string

	// Formats to render; defaults to PNG.
	Formats []string

	// Layout settings. They take effect only when named in Set; otherwise
	// the document's opts and the layout defaults apply.
	Width       int
	Height      int
	Wrap        int
	Bits        bool
	FontSize    float64
	Supersample int

	// ByteModulo numbers the byte ruler modulo this value; zero disables it.
	ByteModulo int

	// EmbedFont embeds the font in SVG output.
	EmbedFont bool

	// Set names the layout settings given explicitly by the caller.
	Set map[string]bool

	// Logger receives progress messages; nil discards them.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the loaded input.
	Document *fio.Document

	// Scene is the computed layout.
	Scene layout.Scene

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Paths contains the written file of every format.
	Paths map[string]string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Fields     int
	Leaves     int
	Bits       int
	Pages      float64
	Rows       int
	Elements   int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
	WriteTime  time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return ferrors.New(ferrors.ErrCodeConfiguration, "invalid format: %q (must be one of: png, svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, trimming blanks and
// dropping duplicates.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Input == "" {
		return ferrors.New(ferrors.ErrCodeConfiguration, "input file is required")
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	for _, path := range o.OutputPaths() {
		if filepath.Clean(path) == filepath.Clean(o.Input) {
			return ferrors.New(ferrors.ErrCodeConfiguration, "output %s would overwrite the input", path)
		}
	}
	if o.ByteModulo < 0 {
		return ferrors.New(ferrors.ErrCodeConfiguration, "byte modulo must not be negative, got %d", o.ByteModulo)
	}
	if err := o.validateWrap(); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// LayoutOptions resolves the layout settings for a document with the given
// opts: defaults first, then the document, then every setting named in Set.
func (o *Options) LayoutOptions(file fio.FileOptions) (layout.Options, error) {
	opts := layout.DefaultOptions()
	if err := file.Apply(&opts); err != nil {
		return opts, err
	}
	if err := o.validateWrap(); err != nil {
		return opts, err
	}

	if o.Set[SetWidth] {
		opts.Width = o.Width
	}
	if o.Set[SetHeight] {
		opts.Height = o.Height
	}
	if o.Set[SetWrap] {
		opts.Wrap = o.Wrap
	}
	if o.Set[SetBits] {
		opts.Bits = o.Bits
	}
	if o.Set[SetFontSize] {
		opts.FontSize = o.FontSize
	}
	if o.Set[SetSupersample] {
		opts.Supersample = o.Supersample
	}
	opts.ByteModulo = o.ByteModulo
	return opts, nil
}

// validateWrap rejects an explicitly set wrap that is not positive. Zero is
// only the unset value.
func (o *Options) validateWrap() error {
	if o.Set[SetWrap] && o.Wrap <= 0 {
		return ferrors.New(ferrors.ErrCodeConfiguration, "wrap must be positive, got %d", o.Wrap)
	}
	return nil
}

// OutputPaths returns the artifact path of every format.
func (o *Options) OutputPaths() map[string]string {
	paths := make(map[string]string, len(o.Formats))
	for _, f := range o.Formats {
		switch {
		case o.Output == "":
			paths[f] = fio.OutputPath(o.Input, "."+f)
		case len(o.Formats) == 1:
			paths[f] = o.Output
		default:
			paths[f] = fio.OutputPath(o.Output, "."+f)
		}
	}
	return paths
}
