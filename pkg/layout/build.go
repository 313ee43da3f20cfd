package layout

import (
	"math"
	"strconv"

	ferrors "github.com/matzehuels/framegram/pkg/errors"
	"github.com/matzehuels/framegram/pkg/frame"
	"github.com/matzehuels/framegram/pkg/geom"
)

const (
	structStroke    = 1.0
	highlightStroke = 2.0

	// minLabelWidth is the narrowest piece, in device units, that receives a
	// label.
	minLabelWidth = 1.0
)

// Build lays out root with opts. The returned scene holds the struct pass,
// the values strip, the rulers and the highlight pass, in that order.
func Build(root *frame.Field, opts Options) (Scene, error) {
	if root == nil {
		return Scene{}, ferrors.New(ferrors.ErrCodeConfiguration, "layout: nil field tree")
	}
	if err := opts.Validate(); err != nil {
		return Scene{}, err
	}

	total := root.TotalBits()
	if total > MaxBits {
		return Scene{}, ferrors.New(ferrors.ErrCodeConfiguration, "frame is %d bits wide, at most %d are supported", total, MaxBits)
	}
	wrap := total
	if opts.Wrap > 0 {
		wrap = opts.Wrap
	}

	scale := float64(opts.Supersample)
	pages := float64(total) / float64(wrap)
	rows := int(math.Ceil(pages))
	rowW := float64(opts.Width) * scale
	rowH := float64(opts.Height) * scale
	strip := rowH * opts.StripShare

	b := &builder{
		opts: opts,
		rowW: rowW,
		rowH: rowH,
		maxR: rowW - 1,
		maxB: rowH*float64(rows) - 1,
		scene: Scene{
			Width:       rowW,
			Height:      rowH * float64(rows),
			OutWidth:    opts.Width,
			OutHeight:   opts.Height * rows,
			Scale:       opts.Supersample,
			Pages:       pages,
			Rows:        rows,
			RowWidth:    rowW,
			RowHeight:   rowH,
			StripHeight: strip,
			FontSize:    rowH * opts.FontSize,
			Bits:        total,
		},
	}

	// The struct box starts above the canvas by the parent band of the root,
	// so the root's children begin at y=0.
	ps := opts.ParentShare
	cursor := geom.Rect(0, 0, pages*rowW, rowH).Stretch(0, 0, 0, -float64(opts.strips())*strip)
	cursor = cursor.Stretch(0, -ps*cursor.B/(1-ps), 0, 0)
	structBox := cursor

	b.structure(root, structBox, 0, false)

	cursor = cursor.AdvanceDown().ResizeHeight(strip)
	b.values(root, cursor)

	cursor = cursor.AdvanceDown()
	b.byteRuler(cursor, total)

	if opts.Bits {
		cursor = cursor.AdvanceDown()
		b.bitRuler(cursor, total)
	}

	b.structure(root, structBox, 0, true)

	return b.scene, nil
}

type builder struct {
	opts       Options
	rowW, rowH float64
	maxR, maxB float64
	scene      Scene
}

// structure divides rect among f's children and recurses. color is the
// palette index of the next box; the index after the last box drawn is
// returned. In the highlight pass only important fields are outlined, with
// their bottom edge pushed down over the values strip, and no labels are
// emitted.
func (b *builder) structure(f *frame.Field, rect geom.Box, color int, highlight bool) int {
	ps := b.opts.ParentShare
	top := rect.T + rect.Height()*ps
	w := rect.Width()

	l := rect.L
	shares := f.ChildShares()
	for i, share := range shares {
		child := f.Child(i)
		r := l + share*w
		if i == len(shares)-1 {
			r = rect.R
		}
		cell := geom.Rect(l, top, r, rect.B)

		if highlight {
			if child.Important() {
				b.rect(RoleHighlight, cell.WithB(cell.B+b.scene.StripHeight), "", HighlightColor, highlightStroke, child.Name())
			}
		} else {
			b.rect(RoleStruct, cell, Palette[color], OutlineColor, structStroke, child.Name())
		}
		color = (color + 1) % len(Palette)

		color = b.structure(child, cell, color, highlight)

		if !highlight {
			text := cell
			if !child.IsLeaf() {
				text = cell.WithB(cell.B - cell.Height()*(1-ps))
			}
			b.label(RoleStruct, text, child.Name(), child.Name())
		}
		l = r
	}
	return color
}

// cell is one slot of a strip: a share of the strip width, split evenly
// among its values.
type cell struct {
	share  float64
	values []string
	fill   string
	field  string
}

func (b *builder) values(root *frame.Field, box geom.Box) {
	leaves := root.Leaves()
	shares := root.LeafShares()
	values := root.LeafValues()
	orders := root.LeafOrders()

	cells := make([]cell, len(leaves))
	for i := range leaves {
		cells[i] = cell{
			share:  shares[i],
			values: values[i],
			fill:   Palette[orders[i]%len(Palette)],
			field:  leaves[i].Name(),
		}
	}
	b.strip(RoleValue, box, cells)
}

// byteRuler numbers every started byte; a trailing partial byte gets a
// proportionally narrower cell.
func (b *builder) byteRuler(box geom.Box, bits int) {
	n := (bits + 7) / 8
	cells := make([]cell, n)
	for i := range cells {
		width := min(8, bits-8*i)
		label := i
		if b.opts.ByteModulo > 0 {
			label %= b.opts.ByteModulo
		}
		cells[i] = cell{
			share:  float64(width) / float64(bits),
			values: []string{strconv.Itoa(label)},
			fill:   RulerFill,
		}
	}
	b.strip(RoleByte, box, cells)
}

func (b *builder) bitRuler(box geom.Box, bits int) {
	cells := make([]cell, bits)
	for i := range cells {
		cells[i] = cell{
			share:  1 / float64(bits),
			values: []string{strconv.Itoa(i % BitModulo)},
			fill:   RulerFill,
		}
	}
	b.strip(RoleBit, box, cells)
}

func (b *builder) strip(role Role, box geom.Box, cells []cell) {
	w := box.Width()
	l := box.L
	for i, c := range cells {
		cw := w * c.share
		end := l + cw
		if i == len(cells)-1 {
			end = box.R
		}

		if len(c.values) == 0 {
			b.rect(role, geom.Rect(l, box.T, end, box.B), c.fill, OutlineColor, structStroke, c.field)
			l = end
			continue
		}

		sub := (end - l) / float64(len(c.values))
		for j, v := range c.values {
			x := l + float64(j)*sub
			piece := geom.Rect(x, box.T, x+sub, box.B)
			if j == len(c.values)-1 {
				piece = piece.WithR(end)
			}
			b.rect(role, piece, c.fill, OutlineColor, structStroke, c.field)
			b.label(role, piece, v, c.field)
		}
		l = end
	}
}

// rect emits one rectangle per row the box touches, clamped to the canvas.
func (b *builder) rect(role Role, box geom.Box, fill, stroke string, width float64, field string) {
	for _, p := range box.PartitionX(b.rowW, b.rowH) {
		b.scene.Elements = append(b.scene.Elements, Element{
			Kind:        KindRect,
			Role:        role,
			Box:         p.Clamp(b.maxR, b.maxB),
			Fill:        fill,
			Stroke:      stroke,
			StrokeWidth: width * float64(b.opts.Supersample),
			Field:       field,
		})
	}
}

// label places text once, in the widest piece of the wrapped box. Empty text
// (an unnamed field) places nothing.
func (b *builder) label(role Role, box geom.Box, text, field string) {
	if text == "" {
		return
	}
	piece, ok := geom.Widest(box.PartitionX(b.rowW, b.rowH))
	if !ok || piece.Width() < minLabelWidth*float64(b.opts.Supersample) {
		return
	}
	b.scene.Elements = append(b.scene.Elements, Element{
		Kind:  KindLabel,
		Role:  role,
		Box:   piece,
		Text:  text,
		Color: TextColor,
		Field: field,
	})
}
