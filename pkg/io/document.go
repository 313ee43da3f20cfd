package io

import (
	"path/filepath"
	"strings"

	ferrors "github.com/matzehuels/framegram/pkg/errors"
	"github.com/matzehuels/framegram/pkg/frame"
	"github.com/matzehuels/framegram/pkg/layout"
)

// Document is a decoded frame description.
type Document struct {
	Options FileOptions
	Root    *frame.Field
}

// FileOptions holds the layout settings found in a document. Nil fields were
// absent.
type FileOptions struct {
	Width       *int     `json:"width,omitempty"`
	Height      *int     `json:"height,omitempty"`
	Wrap        *int     `json:"wrap,omitempty"`
	Bits        *bool    `json:"bits,omitempty"`
	FontSize    *float64 `json:"font_size,omitempty"`
	Supersample *int     `json:"supersample,omitempty"`
}

// IsZero reports whether no option was set.
func (o FileOptions) IsZero() bool {
	return o == FileOptions{}
}

// Apply copies every present option onto opts. An absent wrap leaves the
// whole frame on one page; a present wrap must be positive.
func (o FileOptions) Apply(opts *layout.Options) error {
	if o.Wrap != nil && *o.Wrap <= 0 {
		return ferrors.New(ferrors.ErrCodeConfiguration, "opts/wrap must be positive, got %d", *o.Wrap)
	}
	if o.Width != nil {
		opts.Width = *o.Width
	}
	if o.Height != nil {
		opts.Height = *o.Height
	}
	if o.Wrap != nil {
		opts.Wrap = *o.Wrap
	}
	if o.Bits != nil {
		opts.Bits = *o.Bits
	}
	if o.FontSize != nil {
		opts.FontSize = *o.FontSize
	}
	if o.Supersample != nil {
		opts.Supersample = *o.Supersample
	}
	return nil
}

// OutputPath returns input with its final extension replaced by ext, which
// should include the leading dot.
//
// A leading dot belongs to the name, not the extension.
//
//	OutputPath("a/b/example.txt.txt.txt", ".png") // "a/b/example.txt.txt.png"
//	OutputPath(".hidden", ".png")                 // ".hidden.png"
func OutputPath(input, ext string) string {
	old := filepath.Ext(input)
	if old == filepath.Base(input) {
		old = ""
	}
	return strings.TrimSuffix(input, old) + ext
}
