// Package geom provides the axis-aligned boxes the layout engine draws with
// and the row-wrap partitioning that folds a long horizontal box onto
// fixed-width rows.
package geom

import "math"

// Box is an axis-aligned rectangle in device units with y growing downward.
// Box is a value: every operation returns a new box and leaves the receiver
// untouched, so a box can be shared between regions without copying.
type Box struct {
	L, T, R, B float64
}

// Rect returns the box with the given edges.
func Rect(l, t, r, b float64) Box { return Box{L: l, T: t, R: r, B: b} }

// Width returns the horizontal span of the box.
func (b Box) Width() float64 { return b.R - b.L }

// Height returns the vertical span of the box.
func (b Box) Height() float64 { return b.B - b.T }

// Center returns the midpoint of the box.
func (b Box) Center() (x, y float64) { return (b.L + b.R) / 2, (b.T + b.B) / 2 }

// Move translates the box.
func (b Box) Move(dx, dy float64) Box {
	return Box{L: b.L + dx, T: b.T + dy, R: b.R + dx, B: b.B + dy}
}

// Resize keeps the top-left corner and sets width and height.
func (b Box) Resize(w, h float64) Box {
	return Box{L: b.L, T: b.T, R: b.L + w, B: b.T + h}
}

// ResizeWidth keeps the top-left corner and the height and sets the width.
func (b Box) ResizeWidth(w float64) Box { return b.Resize(w, b.Height()) }

// ResizeHeight keeps the top-left corner and the width and sets the height.
func (b Box) ResizeHeight(h float64) Box { return b.Resize(b.Width(), h) }

// Stretch moves each edge independently by the given deltas.
func (b Box) Stretch(dl, dt, dr, db float64) Box {
	return Box{L: b.L + dl, T: b.T + dt, R: b.R + dr, B: b.B + db}
}

// WithL returns the box with its left edge replaced.
func (b Box) WithL(l float64) Box { b.L = l; return b }

// WithT returns the box with its top edge replaced.
func (b Box) WithT(t float64) Box { b.T = t; return b }

// WithR returns the box with its right edge replaced.
func (b Box) WithR(r float64) Box { b.R = r; return b }

// WithB returns the box with its bottom edge replaced.
func (b Box) WithB(bottom float64) Box { b.B = bottom; return b }

// AdvanceDown moves the box down by its own height, the step used to stack
// horizontal strips.
func (b Box) AdvanceDown() Box { return b.Move(0, b.Height()) }

// Clamp limits the right and bottom edges to maxR and maxB. Left and top
// edges are never beyond a clamped edge, so the result may be degenerate but
// is never inverted past the limits.
func (b Box) Clamp(maxR, maxB float64) Box {
	b.R = math.Min(b.R, maxR)
	b.B = math.Min(b.B, maxB)
	return b
}

// CutX splits the box at x. It reports false, and returns the box unchanged
// as left, when x is not strictly inside the box.
func (b Box) CutX(x float64) (left, right Box, ok bool) {
	if !(b.L < x && x < b.R) {
		return b, Box{}, false
	}
	return b.WithR(x), b.WithL(x), true
}

// Widest returns the first box with the greatest width.
func Widest(boxes []Box) (Box, bool) {
	if len(boxes) == 0 {
		return Box{}, false
	}
	best := boxes[0]
	for _, b := range boxes[1:] {
		if b.Width() > best.Width() {
			best = b
		}
	}
	return best, true
}
