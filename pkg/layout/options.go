package layout

import (
	ferrors "github.com/matzehuels/framegram/pkg/errors"
)

// Defaults applied by [DefaultOptions].
const (
	DefaultWidth       = 800
	DefaultHeight      = 600
	DefaultParentShare = 0.25
	DefaultStripShare  = 0.1
	DefaultFontSize    = 0.05
	DefaultSupersample = 1

	// BitModulo numbers the cells of the bit ruler.
	BitModulo = 8

	// maxSupersample bounds the device canvas size.
	maxSupersample = 8

	// MaxBits bounds the frame width. Rulers emit elements per bit, so
	// larger frames are rejected instead of exhausting memory. A 9000-byte
	// jumbo frame fits.
	MaxBits = 1 << 17
)

// Options configures [Build].
type Options struct {
	// Width and Height are the size of one page (row) in output pixels.
	Width  int
	Height int

	// Wrap is the number of bits per page. Zero is the unset value and puts
	// the whole frame on one page; documents and flags reject an explicit
	// zero before it gets here.
	Wrap int

	// Bits enables the per-bit ruler strip.
	Bits bool

	// ParentShare is the fraction of a box's height reserved for its label
	// above its children.
	ParentShare float64

	// StripShare is the height of each strip as a fraction of the row height.
	StripShare float64

	// FontSize is the label size as a fraction of the row height.
	FontSize float64

	// Supersample multiplies every device coordinate; sinks scale back down.
	Supersample int

	// ByteModulo numbers the byte ruler modulo this value; zero disables it.
	ByteModulo int
}

// DefaultOptions returns the options for an 800x600 single-page diagram with
// the bit ruler enabled.
func DefaultOptions() Options {
	return Options{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Bits:        true,
		ParentShare: DefaultParentShare,
		StripShare:  DefaultStripShare,
		FontSize:    DefaultFontSize,
		Supersample: DefaultSupersample,
	}
}

// Validate reports a CONFIGURATION_ERROR for sizes and fractions the layout
// cannot honor. Row wrapping in particular requires a positive page size.
func (o Options) Validate() error {
	if err := ferrors.ValidatePositive("width", o.Width); err != nil {
		return err
	}
	if err := ferrors.ValidatePositive("height", o.Height); err != nil {
		return err
	}
	if o.Wrap < 0 {
		return ferrors.New(ferrors.ErrCodeConfiguration, "wrap must be positive, got %d", o.Wrap)
	}
	if err := ferrors.ValidatePositive("supersample", o.Supersample); err != nil {
		return err
	}
	if o.Supersample > maxSupersample {
		return ferrors.New(ferrors.ErrCodeConfiguration, "supersample must be at most %d, got %d", maxSupersample, o.Supersample)
	}
	if err := ferrors.ValidateFraction("parent share", o.ParentShare); err != nil {
		return err
	}
	if err := ferrors.ValidateFraction("strip share", o.StripShare); err != nil {
		return err
	}
	if used := float64(o.strips()) * o.StripShare; used >= 1 {
		return ferrors.New(ferrors.ErrCodeConfiguration, "%d strips of %g leave no room for the struct region", o.strips(), o.StripShare)
	}
	if !(o.FontSize > 0) {
		return ferrors.New(ferrors.ErrCodeConfiguration, "font size must be positive, got %g", o.FontSize)
	}
	if o.ByteModulo < 0 {
		return ferrors.New(ferrors.ErrCodeConfiguration, "byte modulo must not be negative, got %d", o.ByteModulo)
	}
	return nil
}

// strips is the number of fixed-height strips below the struct region.
func (o Options) strips() int {
	if o.Bits {
		return 3
	}
	return 2
}
