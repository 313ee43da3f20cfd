package sink

import (
	"encoding/json"

	ferrors "github.com/matzehuels/framegram/pkg/errors"
	"github.com/matzehuels/framegram/pkg/layout"
)

type jsonOutput struct {
	Width       float64       `json:"width"`
	Height      float64       `json:"height"`
	OutWidth    int           `json:"out_width"`
	OutHeight   int           `json:"out_height"`
	Scale       int           `json:"scale"`
	Pages       float64       `json:"pages"`
	Rows        int           `json:"rows"`
	RowWidth    float64       `json:"row_width"`
	RowHeight   float64       `json:"row_height"`
	StripHeight float64       `json:"strip_height"`
	FontSize    float64       `json:"font_size"`
	Bits        int           `json:"bits"`
	Elements    []jsonElement `json:"elements"`
}

type jsonElement struct {
	Kind        string  `json:"kind"`
	Role        string  `json:"role"`
	Field       string  `json:"field,omitempty"`
	Left        float64 `json:"left"`
	Top         float64 `json:"top"`
	Right       float64 `json:"right"`
	Bottom      float64 `json:"bottom"`
	Fill        string  `json:"fill,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"stroke_width,omitempty"`
	Text        string  `json:"text,omitempty"`
	Color       string  `json:"color,omitempty"`
}

// RenderJSON exports the scene in device units. Boxes keep the inclusive
// right and bottom edges the raster sink draws.
func RenderJSON(s layout.Scene) ([]byte, error) {
	out := jsonOutput{
		Width:       s.Width,
		Height:      s.Height,
		OutWidth:    s.OutWidth,
		OutHeight:   s.OutHeight,
		Scale:       s.Scale,
		Pages:       s.Pages,
		Rows:        s.Rows,
		RowWidth:    s.RowWidth,
		RowHeight:   s.RowHeight,
		StripHeight: s.StripHeight,
		FontSize:    s.FontSize,
		Bits:        s.Bits,
		Elements:    make([]jsonElement, 0, len(s.Elements)),
	}
	for _, e := range s.Elements {
		out.Elements = append(out.Elements, jsonElement{
			Kind:        string(e.Kind),
			Role:        string(e.Role),
			Field:       e.Field,
			Left:        e.Box.L,
			Top:         e.Box.T,
			Right:       e.Box.R,
			Bottom:      e.Box.B,
			Fill:        e.Fill,
			Stroke:      e.Stroke,
			StrokeWidth: e.StrokeWidth,
			Text:        e.Text,
			Color:       e.Color,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeInternal, err, "marshal scene")
	}
	return data, nil
}
