package layout

import "github.com/matzehuels/framegram/pkg/geom"

// Palette is cycled through for struct boxes and indexed by leaf order for
// value cells. Colours are decoration only.
var Palette = []string{
	"#ffb5a7",
	"#fcd5ce",
	"#f8edeb",
	"#f9dcc4",
	"#fec89a",
	"#f8edeb",
}

// Fixed colours of the diagram.
const (
	OutlineColor   = "#aaaaaa"
	TextColor      = "#444444"
	HighlightColor = "#ff3333"
	RulerFill      = "#ffffff"
	Background     = "#ffffff"
)

// Kind tells sinks how to draw an [Element].
type Kind string

const (
	KindRect  Kind = "rect"
	KindLabel Kind = "label"
)

// Role records which part of the diagram produced an [Element].
type Role string

const (
	RoleStruct    Role = "struct"
	RoleValue     Role = "value"
	RoleByte      Role = "byte"
	RoleBit       Role = "bit"
	RoleHighlight Role = "highlight"
)

// Element is one drawing instruction. Rects carry Fill (empty for outline
// only), Stroke and StrokeWidth; labels carry Text and Color and are centred
// in Box.
type Element struct {
	Kind        Kind
	Role        Role
	Box         geom.Box
	Fill        string
	Stroke      string
	StrokeWidth float64
	Text        string
	Color       string
	Field       string
}

// Scene is the complete layout of one diagram in device units.
type Scene struct {
	// Width and Height of the device canvas.
	Width, Height float64

	// OutWidth and OutHeight of the final image in pixels.
	OutWidth, OutHeight int

	// Scale is the supersampling factor between device units and pixels.
	Scale int

	// Pages is the fractional number of rows the bit stream fills; Rows is
	// its ceiling.
	Pages float64
	Rows  int

	RowWidth, RowHeight float64
	StripHeight         float64

	// FontSize is the label size in device units.
	FontSize float64

	// Bits is the root's total width.
	Bits int

	// Elements in draw order.
	Elements []Element
}

// Filter returns the elements of the given kind and role, in draw order.
// An empty role matches every role.
func (s Scene) Filter(kind Kind, role Role) []Element {
	var out []Element
	for _, e := range s.Elements {
		if e.Kind == kind && (role == "" || e.Role == role) {
			out = append(out, e)
		}
	}
	return out
}

// Labels returns the text of every label of the given role, in draw order.
func (s Scene) Labels(role Role) []string {
	var out []string
	for _, e := range s.Filter(KindLabel, role) {
		out = append(out, e.Text)
	}
	return out
}
