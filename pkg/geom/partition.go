package geom

import "math"

// PartitionX folds the box onto rows of pageW columns stacked pageH apart.
//
// The box is read as a span of a single horizontal stream that wraps every
// pageW units. The result holds one piece per row the span touches, in
// order; each piece lies within [0, pageW] horizontally and is shifted down
// by pageH per row. The pieces cover the original span exactly.
//
// A box ending exactly on a row boundary is not split, and a zero-width box
// is returned as a single piece. PartitionX panics if pageW or pageH is not
// positive; callers validate page sizes before laying out.
func (b Box) PartitionX(pageW, pageH float64) []Box {
	if !(pageW > 0) || !(pageH > 0) {
		panic("geom: PartitionX requires a positive page size")
	}

	box := normalizeRow(b, pageW, pageH)

	var parts []Box
	for {
		left, right, ok := box.CutX(pageW)
		if !ok {
			return append(parts, box)
		}
		parts = append(parts, left)
		box = right.Stretch(-pageW, pageH, -pageW, pageH)
	}
}

// normalizeRow shifts the box by whole rows until its left edge lies in
// [0, pageW). Moving one row left means moving pageW right and pageH up.
func normalizeRow(b Box, pageW, pageH float64) Box {
	if b.L < 0 || b.L >= pageW {
		rows := math.Floor(b.L / pageW)
		b = b.Stretch(-rows*pageW, rows*pageH, -rows*pageW, rows*pageH)
	}
	// Rounding in the division may leave the edge one ulp outside.
	for b.L < 0 {
		b = b.Stretch(pageW, -pageH, pageW, -pageH)
	}
	for b.L >= pageW {
		b = b.Stretch(-pageW, pageH, -pageW, pageH)
	}
	return b
}
