package frame

import (
	"errors"

	ferrors "github.com/matzehuels/framegram/pkg/errors"
)

var (
	// ErrZeroWidth is wrapped by [NewLeaf] when a leaf declares a width
	// below one bit.
	ErrZeroWidth = errors.New("field width must be at least one bit")

	// ErrNoChildren is wrapped by [NewComposite] when a composite has no
	// children, which would make it a zero-width field.
	ErrNoChildren = errors.New("composite field has no children")
)

// RootName is the name given to the synthetic root built by [NewRoot].
const RootName = "root"

// Kind distinguishes leaves from composites.
type Kind int

const (
	// Leaf fields carry an explicit width and optional values.
	Leaf Kind = iota
	// Composite fields derive their width from their children.
	Composite
)

// String returns "leaf" or "composite".
func (k Kind) String() string {
	if k == Composite {
		return "composite"
	}
	return "leaf"
}

// Field is a node of the field tree. Fields are built with [NewLeaf],
// [NewComposite] or [NewRoot] and are read-only afterwards; the exported
// accessors never hand out the internal slices.
type Field struct {
	name      string
	kind      Kind
	important bool

	// leaf
	width  int
	values []string

	// composite
	children []*Field
}

// NewLeaf builds a leaf of the given bit width. values are the literals
// displayed under the leaf in the values strip; nil or empty means the leaf
// is drawn as an unlabeled cell.
func NewLeaf(name string, width int, values []string, important bool) (*Field, error) {
	if width < 1 {
		return nil, ferrors.Wrap(ferrors.ErrCodeConfiguration, ErrZeroWidth, "field %q: width %d", name, width)
	}
	return &Field{
		name:      name,
		kind:      Leaf,
		important: important,
		width:     width,
		values:    append([]string(nil), values...),
	}, nil
}

// NewComposite builds a composite whose width is the sum of its children.
func NewComposite(name string, children []*Field, important bool) (*Field, error) {
	if len(children) == 0 {
		return nil, ferrors.Wrap(ferrors.ErrCodeConfiguration, ErrNoChildren, "field %q", name)
	}
	for _, c := range children {
		if c == nil {
			return nil, ferrors.New(ferrors.ErrCodeInternal, "field %q: nil child", name)
		}
	}
	return &Field{
		name:      name,
		kind:      Composite,
		important: important,
		children:  append([]*Field(nil), children...),
	}, nil
}

// NewRoot wraps the top-level fields of a document in a composite named
// [RootName].
func NewRoot(children []*Field) (*Field, error) {
	return NewComposite(RootName, children, false)
}

// Name returns the display label.
func (f *Field) Name() string { return f.name }

// Kind reports whether f is a leaf or a composite.
func (f *Field) Kind() Kind { return f.kind }

// IsLeaf reports whether f has an explicit width.
func (f *Field) IsLeaf() bool { return f.kind == Leaf }

// Important reports whether f is drawn in the highlight pass.
func (f *Field) Important() bool { return f.important }

// Values returns a copy of the leaf's literal values. Composites have none.
func (f *Field) Values() []string {
	if len(f.values) == 0 {
		return []string{}
	}
	return append([]string(nil), f.values...)
}

// Children returns a copy of the child list. Leaves have none.
func (f *Field) Children() []*Field {
	return append([]*Field(nil), f.children...)
}

// Child returns the i-th child, or nil when i is out of range.
func (f *Field) Child(i int) *Field {
	if i < 0 || i >= len(f.children) {
		return nil
	}
	return f.children[i]
}

// NumChildren returns the number of direct children.
func (f *Field) NumChildren() int { return len(f.children) }

// TotalBits returns the explicit width of a leaf or the sum of the widths of
// a composite's children.
func (f *Field) TotalBits() int {
	if f.kind == Leaf {
		return f.width
	}
	total := 0
	for _, c := range f.children {
		total += c.TotalBits()
	}
	return total
}

// ChildShares returns, for every direct child, its fraction of f's width.
// The shares sum to 1; a leaf has no shares.
func (f *Field) ChildShares() []float64 {
	total := float64(f.TotalBits())
	shares := make([]float64, len(f.children))
	for i, c := range f.children {
		shares[i] = float64(c.TotalBits()) / total
	}
	return shares
}

// LeafShares returns, for every leaf below f in depth-first order, its
// fraction of f's width: the product of the child shares along the leaf's
// ancestor chain. A leaf reports a single share of 1.
func (f *Field) LeafShares() []float64 {
	if f.kind == Leaf {
		return []float64{1}
	}
	var out []float64
	for i, share := range f.ChildShares() {
		for _, s := range f.children[i].LeafShares() {
			out = append(out, share*s)
		}
	}
	return out
}

// LeafValues returns the values of every leaf below f in depth-first order.
// Leaves without values yield an empty slice.
func (f *Field) LeafValues() [][]string {
	leaves := f.Leaves()
	out := make([][]string, len(leaves))
	for i, l := range leaves {
		out[i] = l.Values()
	}
	return out
}

// LeafOrders returns the depth-first rank of every leaf below f: 0, 1, 2...
func (f *Field) LeafOrders() []int {
	n := len(f.Leaves())
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Leaves returns the leaves below f in depth-first order. A leaf returns
// itself.
func (f *Field) Leaves() []*Field {
	var out []*Field
	f.Walk(func(path []*Field) bool {
		if n := path[len(path)-1]; n.kind == Leaf {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Walk visits f and its descendants depth-first. fn receives the path from
// f to the visited field (inclusive) and returns false to skip the field's
// children. The path slice is reused between calls.
func (f *Field) Walk(fn func(path []*Field) bool) {
	var visit func(path []*Field)
	visit = func(path []*Field) {
		if !fn(path) {
			return
		}
		n := path[len(path)-1]
		for _, c := range n.children {
			visit(append(path, c))
		}
	}
	visit([]*Field{f})
}

// Find follows child names from f and returns the field at the end of the
// path, or nil when a name is not found. The first child with a matching
// name wins.
func (f *Field) Find(names ...string) *Field {
	cur := f
	for _, name := range names {
		var next *Field
		for _, c := range cur.children {
			if c.name == name {
				next = c
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

// Count returns the number of fields in the tree rooted at f, f included.
func (f *Field) Count() int {
	n := 0
	f.Walk(func([]*Field) bool { n++; return true })
	return n
}
