package sink

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	ferrors "github.com/matzehuels/framegram/pkg/errors"
	"github.com/matzehuels/framegram/pkg/fonts"
	"github.com/matzehuels/framegram/pkg/layout"
	"github.com/matzehuels/framegram/pkg/render/styles"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	filter imaging.ResampleFilter
}

// WithResampleFilter sets the filter used to downscale supersampled scenes
// (default Lanczos).
func WithResampleFilter(f imaging.ResampleFilter) PNGOption {
	return func(r *pngRenderer) { r.filter = f }
}

// RenderPNG draws the scene and encodes it as PNG at the scene's output size.
func RenderPNG(s layout.Scene, opts ...PNGOption) ([]byte, error) {
	img, err := Rasterize(s, opts...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// Rasterize draws the scene and returns the image at the scene's output size.
func Rasterize(s layout.Scene, opts ...PNGOption) (image.Image, error) {
	r := pngRenderer{filter: imaging.Lanczos}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := int(s.Width), int(s.Height)
	if w < 1 || h < 1 {
		return nil, ferrors.New(ferrors.ErrCodeConfiguration, "png: empty canvas %dx%d", w, h)
	}

	face, err := fonts.MonoFace(s.FontSize)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(w, h)
	dc.SetHexColor(layout.Background)
	dc.Clear()
	dc.SetFontFace(face)

	for _, e := range s.Elements {
		switch e.Kind {
		case layout.KindRect:
			drawRect(dc, e)
		case layout.KindLabel:
			drawLabel(dc, e)
		}
	}

	img := dc.Image()
	if s.Scale > 1 || img.Bounds().Dx() != s.OutWidth || img.Bounds().Dy() != s.OutHeight {
		img = imaging.Resize(img, s.OutWidth, s.OutHeight, r.filter)
	}
	return img, nil
}

func drawRect(dc *gg.Context, e layout.Element) {
	b := e.Box
	w, h := b.Width()+1, b.Height()+1

	if e.Fill != "" {
		dc.DrawRectangle(b.L, b.T, w, h)
		dc.SetHexColor(e.Fill)
		dc.Fill()
	}
	if e.Stroke != "" && e.StrokeWidth > 0 {
		lw := e.StrokeWidth
		dc.DrawRectangle(b.L+lw/2, b.T+lw/2, w-lw, h-lw)
		dc.SetLineWidth(lw)
		dc.SetHexColor(e.Stroke)
		dc.Stroke()
	}
}

func drawLabel(dc *gg.Context, e layout.Element) {
	lines := styles.FitLabel(e.Text, e.Box.Width(), dc)
	x, y := e.Box.Center()

	dc.SetHexColor(e.Color)
	for i, dy := range styles.LineOffsets(len(lines), dc.FontHeight()) {
		dc.DrawStringAnchored(lines[i], x, y+dy, 0.5, 0.5)
	}
}
