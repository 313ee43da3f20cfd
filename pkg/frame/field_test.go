package frame

import (
	"errors"
	"math"
	"reflect"
	"testing"

	ferrors "github.com/matzehuels/framegram/pkg/errors"
)

func mustLeaf(t *testing.T, name string, width int, values ...string) *Field {
	t.Helper()
	f, err := NewLeaf(name, width, values, false)
	if err != nil {
		t.Fatalf("NewLeaf(%q): %v", name, err)
	}
	return f
}

func mustComposite(t *testing.T, name string, children ...*Field) *Field {
	t.Helper()
	f, err := NewComposite(name, children, false)
	if err != nil {
		t.Fatalf("NewComposite(%q): %v", name, err)
	}
	return f
}

// ethernet builds the 802.1Q tagged Ethernet header used across the tests:
// 144 bits, seven leaves, PCP nested three levels below the root.
func ethernet(t *testing.T) *Field {
	t.Helper()
	mac := []string{"DE", "AD", "BE", "EF", "CC", "DD"}
	tci := mustComposite(t, "TCI",
		mustLeaf(t, "PCP", 3),
		mustLeaf(t, "DEI", 1),
		mustLeaf(t, "VID", 12),
	)
	tag := mustComposite(t, "802.1Q Tag", mustLeaf(t, "TPID", 16), tci)
	frameField := mustComposite(t, "Ethernet Frame",
		mustLeaf(t, "Destination", 48, mac...),
		mustLeaf(t, "Source", 48, mac...),
		tag,
		mustLeaf(t, "EtherType", 16),
	)
	root, err := NewRoot([]*Field{frameField})
	if err != nil {
		t.Fatalf("NewRoot: %v", err)
	}
	return root
}

func TestNewLeafRejectsZeroWidth(t *testing.T) {
	for _, w := range []int{0, -8} {
		_, err := NewLeaf("bad", w, nil, false)
		if err == nil {
			t.Fatalf("NewLeaf(width=%d) succeeded, want error", w)
		}
		if !errors.Is(err, ErrZeroWidth) {
			t.Errorf("error %v should wrap ErrZeroWidth", err)
		}
		if !ferrors.Is(err, ferrors.ErrCodeConfiguration) {
			t.Errorf("code = %q, want CONFIGURATION_ERROR", ferrors.GetCode(err))
		}
	}
}

func TestNewCompositeRejectsEmpty(t *testing.T) {
	_, err := NewComposite("empty", nil, false)
	if !errors.Is(err, ErrNoChildren) {
		t.Fatalf("NewComposite(nil) error = %v, want ErrNoChildren", err)
	}
	if !ferrors.Is(err, ferrors.ErrCodeConfiguration) {
		t.Errorf("code = %q, want CONFIGURATION_ERROR", ferrors.GetCode(err))
	}
}

func TestTotalBits(t *testing.T) {
	root := ethernet(t)

	tests := []struct {
		name string
		path []string
		want int
	}{
		{"root", nil, 144},
		{"frame", []string{"Ethernet Frame"}, 144},
		{"tag", []string{"Ethernet Frame", "802.1Q Tag"}, 32},
		{"tci", []string{"Ethernet Frame", "802.1Q Tag", "TCI"}, 16},
		{"pcp", []string{"Ethernet Frame", "802.1Q Tag", "TCI", "PCP"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := root.Find(tt.path...)
			if f == nil {
				t.Fatalf("Find(%v) = nil", tt.path)
			}
			if got := f.TotalBits(); got != tt.want {
				t.Errorf("TotalBits() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNestedIndexing(t *testing.T) {
	root := ethernet(t)
	pcp := root.Child(0).Child(2).Child(1).Child(0)
	if pcp == nil || pcp.Name() != "PCP" {
		t.Fatalf("children[0][2][1][0] = %v, want PCP", pcp)
	}
	if pcp.TotalBits() != 3 {
		t.Errorf("PCP.TotalBits() = %d, want 3", pcp.TotalBits())
	}
	if root.Child(5) != nil || root.Child(-1) != nil {
		t.Error("Child out of range should be nil")
	}
}

func TestChildSharesSumToOne(t *testing.T) {
	root := ethernet(t)
	root.Walk(func(path []*Field) bool {
		f := path[len(path)-1]
		if f.IsLeaf() {
			return true
		}
		var sum float64
		for _, s := range f.ChildShares() {
			if s <= 0 || s > 1 {
				t.Errorf("%s: share %v outside (0,1]", f.Name(), s)
			}
			sum += s
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("%s: ChildShares sum = %v, want 1", f.Name(), sum)
		}
		return true
	})
}

func TestLeafShares(t *testing.T) {
	root := ethernet(t)
	shares := root.LeafShares()

	if len(shares) != 7 {
		t.Fatalf("len(LeafShares()) = %d, want 7", len(shares))
	}

	want := []float64{1.0 / 3, 1.0 / 3, 1.0 / 9, 3.0 / 144, 1.0 / 144, 12.0 / 144, 1.0 / 9}
	var sum float64
	for i, s := range shares {
		if math.Abs(s-want[i]) > 1e-12 {
			t.Errorf("LeafShares()[%d] = %v, want %v", i, s, want[i])
		}
		sum += s
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("sum(LeafShares()) = %v, want 1", sum)
	}

	leaf := mustLeaf(t, "x", 4)
	if got := leaf.LeafShares(); !reflect.DeepEqual(got, []float64{1}) {
		t.Errorf("leaf LeafShares() = %v, want [1]", got)
	}
}

func TestLeafValues(t *testing.T) {
	root := ethernet(t)
	mac := []string{"DE", "AD", "BE", "EF", "CC", "DD"}
	want := [][]string{mac, mac, {}, {}, {}, {}, {}}

	got := root.LeafValues()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LeafValues() = %v, want %v", got, want)
	}
}

func TestLeafOrders(t *testing.T) {
	root := ethernet(t)
	got := root.LeafOrders()
	want := []int{0, 1, 2, 3, 4, 5, 6}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LeafOrders() = %v, want %v", got, want)
	}
}

func TestValuesAreCopies(t *testing.T) {
	in := []string{"AA", "BB"}
	f := mustLeaf(t, "x", 16, in...)
	in[0] = "ZZ"

	vals := f.Values()
	if vals[0] != "AA" {
		t.Errorf("Values()[0] = %q, want AA (construction must copy)", vals[0])
	}
	vals[1] = "ZZ"
	if f.Values()[1] != "BB" {
		t.Error("Values() must return a copy")
	}
}

func TestFindAndCount(t *testing.T) {
	root := ethernet(t)
	if root.Find("Ethernet Frame", "nope") != nil {
		t.Error("Find with unknown name should return nil")
	}
	if root.Find() != root {
		t.Error("Find() with no names should return the receiver")
	}
	// root + frame + 4 children + TPID + TCI + 3 TCI leaves
	if got := root.Count(); got != 11 {
		t.Errorf("Count() = %d, want 11", got)
	}
}

func TestKindString(t *testing.T) {
	if Leaf.String() != "leaf" || Composite.String() != "composite" {
		t.Errorf("Kind strings = %q, %q", Leaf, Composite)
	}
}
