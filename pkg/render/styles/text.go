// Package styles holds the text handling shared by the output sinks.
package styles

import (
	"bytes"
	"encoding/xml"
	"unicode/utf8"

	"github.com/matzehuels/framegram/pkg/fonts"
)

// Measurer reports the rendered size of a single line of text.
// *gg.Context satisfies it.
type Measurer interface {
	MeasureString(s string) (w, h float64)
}

// MonoMetrics measures text set in the embedded monospace font without
// rasterizing it.
type MonoMetrics struct {
	Size float64
}

// MeasureString implements [Measurer].
func (m MonoMetrics) MeasureString(s string) (w, h float64) {
	return float64(utf8.RuneCountInString(s)) * m.Size * fonts.CharWidth, m.Size
}

// FitLabel returns the lines to draw text in a cell maxWidth wide. Text that
// fits stays on one line; otherwise it is stacked one character per line.
// The label is never truncated.
func FitLabel(text string, maxWidth float64, m Measurer) []string {
	if w, _ := m.MeasureString(text); w <= maxWidth {
		return []string{text}
	}
	lines := make([]string, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		lines = append(lines, string(r))
	}
	return lines
}

// LineOffsets returns the vertical offset of each of n lines, spaced
// lineHeight apart and centred on zero.
func LineOffsets(n int, lineHeight float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = (float64(i) - float64(n-1)/2) * lineHeight
	}
	return out
}

// EscapeXML escapes s for use as SVG text or attribute content.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
