package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/framegram/pkg/fonts"
	"github.com/matzehuels/framegram/pkg/layout"
	"github.com/matzehuels/framegram/pkg/render/styles"
)

// svgLineHeight is the distance between stacked label lines, in font sizes.
const svgLineHeight = 1.2

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	embedFont bool
}

// WithEmbeddedFont embeds Go Mono as a data URL.
func WithEmbeddedFont() SVGOption { return func(r *svgRenderer) { r.embedFont = true } }

// RenderSVG writes the scene as a standalone SVG document. The viewBox is in
// device units and the width and height attributes are the output size, so
// supersampled scenes display at the same size as plain ones. Labels that do
// not fit their box are stacked one character per line.
func RenderSVG(s layout.Scene, opts ...SVGOption) []byte {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%d" height="%d">`+"\n",
		s.Width, s.Height, s.OutWidth, s.OutHeight)

	if r.embedFont {
		renderFontFace(&buf)
	}
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n", s.Width, s.Height, layout.Background)

	m := styles.MonoMetrics{Size: s.FontSize}
	for _, e := range s.Elements {
		switch e.Kind {
		case layout.KindRect:
			renderSVGRect(&buf, e)
		case layout.KindLabel:
			renderSVGText(&buf, e, m)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderFontFace(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>\n    @font-face { font-family: '%s'; src: url(data:font/ttf;base64,%s) format('truetype'); }\n  </style>\n",
		fonts.FontFamily, fonts.MonoTTFBase64())
}

func renderSVGRect(buf *bytes.Buffer, e layout.Element) {
	b := e.Box
	w, h := b.Width()+1, b.Height()+1

	if e.Fill != "" {
		fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" data-role="%s"/>`+"\n",
			b.L, b.T, w, h, e.Fill, e.Role)
	}
	if e.Stroke != "" && e.StrokeWidth > 0 {
		lw := e.StrokeWidth
		fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="%s" stroke-width="%.1f" data-role="%s"/>`+"\n",
			b.L+lw/2, b.T+lw/2, w-lw, h-lw, e.Stroke, lw, e.Role)
	}
}

func renderSVGText(buf *bytes.Buffer, e layout.Element, m styles.MonoMetrics) {
	lines := styles.FitLabel(e.Text, e.Box.Width(), m)
	x, y := e.Box.Center()

	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.2f" fill="%s" text-anchor="middle" dominant-baseline="central" data-role="%s">`,
		x, y, fonts.FallbackFontFamily, m.Size, e.Color, e.Role)

	if len(lines) == 1 {
		buf.WriteString(styles.EscapeXML(lines[0]))
	} else {
		for i, dy := range styles.LineOffsets(len(lines), m.Size*svgLineHeight) {
			fmt.Fprintf(buf, `<tspan x="%.2f" y="%.2f">%s</tspan>`, x, y+dy, styles.EscapeXML(lines[i]))
		}
	}
	buf.WriteString("</text>\n")
}
