// Package frame models the field tree of a frame diagram.
//
// # Overview
//
// A frame diagram documents the bit layout of a packet header or binary
// record. The layout is described as a tree of named fields: a leaf has an
// explicit bit width, a composite derives its width from its children. The
// tree is a strict partition of the root's bit range, so the root's width is
// the sum of all leaf widths and the depth-first leaf order is the order of
// the bits on the wire.
//
// # Construction
//
// Fields are validated when they are built. [NewLeaf] rejects zero and
// negative widths, [NewComposite] rejects empty child lists; both return a
// CONFIGURATION_ERROR from [github.com/matzehuels/framegram/pkg/errors] that
// wraps [ErrZeroWidth] or [ErrNoChildren]. A tree is never mutated after it
// has been built.
//
//	pcp, _ := frame.NewLeaf("PCP", 3, nil, false)
//	dei, _ := frame.NewLeaf("DEI", 1, nil, false)
//	vid, _ := frame.NewLeaf("VID", 12, nil, false)
//	tci, _ := frame.NewComposite("TCI", []*frame.Field{pcp, dei, vid}, true)
//	tci.TotalBits() // 16
//
// # Derived views
//
// All queries recompute from the tree on every call:
//
//   - [Field.TotalBits]: explicit width or the sum over children
//   - [Field.ChildShares]: each child's fraction of its parent
//   - [Field.LeafShares]: each leaf's fraction of the receiver's width
//   - [Field.LeafValues]: the literal values attached to each leaf
//   - [Field.LeafOrders]: the depth-first rank of each leaf, used as a
//     stable colouring key
package frame
