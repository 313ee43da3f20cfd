// Package fonts provides the font used to draw labels.
//
// The Go Mono face ships inside golang.org/x/image, so the binary needs no
// font files at run time. The parsed font is cached after first use.
package fonts

import (
	"encoding/base64"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	ferrors "github.com/matzehuels/framegram/pkg/errors"
)

// FontFamily is the CSS font-family name of the embedded font.
const FontFamily = "Go Mono"

// FallbackFontFamily is used by SVG output on systems without Go Mono.
const FallbackFontFamily = `'Go Mono', 'DejaVu Sans Mono', Menlo, Consolas, monospace`

// CharWidth is the advance of every glyph of the monospace face, as a
// fraction of the font size.
const CharWidth = 0.6

var (
	monoOnce sync.Once
	monoFont *truetype.Font
	monoErr  error
)

// MonoTTF returns the raw TrueType data.
func MonoTTF() []byte {
	return gomono.TTF
}

// Cache for the base64-encoded font (computed once on first access).
var (
	monoBase64     string
	monoBase64Once sync.Once
)

// MonoTTFBase64 returns the TrueType data as a base64 string for embedding
// in SVG documents.
func MonoTTFBase64() string {
	monoBase64Once.Do(func() {
		monoBase64 = base64.StdEncoding.EncodeToString(gomono.TTF)
	})
	return monoBase64
}

// Mono returns the parsed monospace font.
func Mono() (*truetype.Font, error) {
	monoOnce.Do(func() {
		monoFont, monoErr = truetype.Parse(gomono.TTF)
		if monoErr != nil {
			monoErr = ferrors.Wrap(ferrors.ErrCodeConfiguration, monoErr, "parse embedded font")
		}
	})
	return monoFont, monoErr
}

// MonoFace returns a face of the monospace font at size pixels.
func MonoFace(size float64) (font.Face, error) {
	f, err := Mono()
	if err != nil {
		return nil, err
	}
	if !(size > 0) {
		return nil, ferrors.New(ferrors.ErrCodeConfiguration, "font size must be positive, got %g", size)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
