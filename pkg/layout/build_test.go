package layout

import (
	"math"
	"reflect"
	"strconv"
	"testing"

	ferrors "github.com/matzehuels/framegram/pkg/errors"
	"github.com/matzehuels/framegram/pkg/frame"
	"github.com/matzehuels/framegram/pkg/geom"
)

func leaf(t *testing.T, name string, width int, values ...string) *frame.Field {
	t.Helper()
	f, err := frame.NewLeaf(name, width, values, false)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func composite(t *testing.T, name string, important bool, children ...*frame.Field) *frame.Field {
	t.Helper()
	f, err := frame.NewComposite(name, children, important)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func root(t *testing.T, children ...*frame.Field) *frame.Field {
	t.Helper()
	f, err := frame.NewRoot(children)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

// ethernet is the 144-bit tagged Ethernet header; importantTCI marks the TCI
// composite for the highlight pass.
func ethernet(t *testing.T, importantTCI bool) *frame.Field {
	t.Helper()
	mac := []string{"DE", "AD", "BE", "EF", "CC", "DD"}
	tci := composite(t, "TCI", importantTCI, leaf(t, "PCP", 3), leaf(t, "DEI", 1), leaf(t, "VID", 12))
	tag := composite(t, "802.1Q Tag", false, leaf(t, "TPID", 16), tci)
	return root(t, composite(t, "Ethernet Frame", false,
		leaf(t, "Destination", 48, mac...),
		leaf(t, "Source", 48, mac...),
		tag,
		leaf(t, "EtherType", 16),
	))
}

func build(t *testing.T, f *frame.Field, opts Options) Scene {
	t.Helper()
	s, err := Build(f, opts)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return s
}

func TestBuildDefaultSinglePage(t *testing.T) {
	s := build(t, ethernet(t, false), DefaultOptions())

	if s.OutWidth != 800 || s.OutHeight != 600 {
		t.Errorf("output size = %dx%d, want 800x600", s.OutWidth, s.OutHeight)
	}
	if s.Rows != 1 || s.Pages != 1 {
		t.Errorf("Rows = %d, Pages = %v, want 1, 1", s.Rows, s.Pages)
	}
	if s.Bits != 144 {
		t.Errorf("Bits = %d, want 144", s.Bits)
	}
	if s.StripHeight != 60 || s.FontSize != 30 {
		t.Errorf("StripHeight = %v, FontSize = %v, want 60, 30", s.StripHeight, s.FontSize)
	}
}

func TestBuildStructBoxes(t *testing.T) {
	s := build(t, ethernet(t, false), DefaultOptions())
	rects := s.Filter(KindRect, RoleStruct)

	// root + frame + 4 + TPID + TCI + 3 leaves, minus the root itself
	if len(rects) != 10 {
		t.Fatalf("struct rects = %d, want 10", len(rects))
	}

	first := rects[0]
	if first.Field != "Ethernet Frame" {
		t.Errorf("first rect field = %q, want Ethernet Frame", first.Field)
	}
	if want := geom.Rect(0, 0, 799, 420); first.Box != want {
		t.Errorf("frame box = %+v, want %+v (clamped to the canvas)", first.Box, want)
	}

	dst := rects[1]
	if dst.Box.T != 105 || dst.Box.B != 420 {
		t.Errorf("Destination top/bottom = %v/%v, want 105/420", dst.Box.T, dst.Box.B)
	}
	if math.Abs(dst.Box.Width()-800.0/3) > 1e-9 {
		t.Errorf("Destination width = %v, want %v", dst.Box.Width(), 800.0/3)
	}

	for i, r := range rects {
		if want := Palette[i%len(Palette)]; r.Fill != want {
			t.Errorf("rect %d (%s) fill = %s, want %s", i, r.Field, r.Fill, want)
		}
		if r.Stroke != OutlineColor || r.StrokeWidth != 1 {
			t.Errorf("rect %d stroke = %s/%v", i, r.Stroke, r.StrokeWidth)
		}
	}
}

func TestBuildStructLabels(t *testing.T) {
	s := build(t, ethernet(t, false), DefaultOptions())

	want := []string{
		"Destination", "Source", "TPID", "PCP", "DEI", "VID", "TCI",
		"802.1Q Tag", "EtherType", "Ethernet Frame",
	}
	if got := s.Labels(RoleStruct); !reflect.DeepEqual(got, want) {
		t.Errorf("struct labels = %v, want %v", got, want)
	}

	for _, l := range s.Filter(KindLabel, RoleStruct) {
		if l.Field != "Ethernet Frame" {
			continue
		}
		// composites label their parent band only
		if want := geom.Rect(0, 0, 800, 105); l.Box != want {
			t.Errorf("frame label box = %+v, want %+v", l.Box, want)
		}
	}
}

func TestBuildValuesStrip(t *testing.T) {
	s := build(t, ethernet(t, false), DefaultOptions())

	labels := s.Labels(RoleValue)
	mac := []string{"DE", "AD", "BE", "EF", "CC", "DD"}
	if want := append(append([]string{}, mac...), mac...); !reflect.DeepEqual(labels, want) {
		t.Errorf("value labels = %v, want %v", labels, want)
	}

	rects := s.Filter(KindRect, RoleValue)
	if len(rects) != 17 {
		t.Fatalf("value rects = %d, want 17 (12 values + 5 unlabeled leaves)", len(rects))
	}
	for _, r := range rects {
		if r.Box.T != 420 || r.Box.B != 480 {
			t.Errorf("value rect %+v, want rows 420..480", r.Box)
			break
		}
	}
	if math.Abs(rects[0].Box.Width()-800.0/3/6) > 1e-9 {
		t.Errorf("first value width = %v, want %v", rects[0].Box.Width(), 800.0/3/6)
	}
	// leaf order 6 (EtherType) wraps around the palette
	if last := rects[len(rects)-1]; last.Fill != Palette[6%len(Palette)] {
		t.Errorf("EtherType value fill = %s, want %s", last.Fill, Palette[0])
	}
}

func TestBuildRulers(t *testing.T) {
	s := build(t, ethernet(t, false), DefaultOptions())

	bytes := s.Labels(RoleByte)
	if len(bytes) != 18 {
		t.Fatalf("byte labels = %d, want 18", len(bytes))
	}
	for i, l := range bytes {
		if l != strconv.Itoa(i) {
			t.Errorf("byte label %d = %q", i, l)
		}
	}

	bits := s.Labels(RoleBit)
	if len(bits) != 144 {
		t.Fatalf("bit labels = %d, want 144", len(bits))
	}
	for i, l := range bits {
		if l != strconv.Itoa(i%8) {
			t.Errorf("bit label %d = %q, want %d", i, l, i%8)
			break
		}
	}

	for _, r := range s.Filter(KindRect, RoleBit) {
		if r.Box.T != 540 || r.Box.B != 599 {
			t.Errorf("bit rect %+v, want rows 540..599 (bottom clamped)", r.Box)
			break
		}
	}
}

func TestBuildWithoutBits(t *testing.T) {
	opts := DefaultOptions()
	opts.Bits = false
	s := build(t, ethernet(t, false), opts)

	if n := len(s.Filter(KindRect, RoleBit)); n != 0 {
		t.Errorf("bit rects = %d, want 0", n)
	}
	if r := s.Filter(KindRect, RoleValue)[0]; r.Box.T != 480 || r.Box.B != 540 {
		t.Errorf("value strip = %v..%v, want 480..540", r.Box.T, r.Box.B)
	}
	if r := s.Filter(KindRect, RoleByte)[0]; r.Box.B != 599 {
		t.Errorf("byte strip bottom = %v, want 599", r.Box.B)
	}
}

func TestBuildByteRulerPartialByte(t *testing.T) {
	s := build(t, root(t, leaf(t, "flags", 12)), DefaultOptions())

	if got := s.Labels(RoleByte); !reflect.DeepEqual(got, []string{"0", "1"}) {
		t.Errorf("byte labels = %v, want [0 1]", got)
	}
	rects := s.Filter(KindRect, RoleByte)
	if math.Abs(rects[0].Box.Width()-800*8.0/12) > 1e-9 {
		t.Errorf("first byte width = %v, want %v", rects[0].Box.Width(), 800*8.0/12)
	}
}

func TestBuildByteModulo(t *testing.T) {
	opts := DefaultOptions()
	opts.ByteModulo = 4
	s := build(t, root(t, leaf(t, "addr", 48)), opts)

	want := []string{"0", "1", "2", "3", "0", "1"}
	if got := s.Labels(RoleByte); !reflect.DeepEqual(got, want) {
		t.Errorf("byte labels = %v, want %v", got, want)
	}
}

func TestBuildHighlightPass(t *testing.T) {
	s := build(t, ethernet(t, true), DefaultOptions())

	hl := s.Filter(KindRect, RoleHighlight)
	if len(hl) != 1 {
		t.Fatalf("highlight rects = %d, want 1", len(hl))
	}
	h := hl[0]
	if h.Field != "TCI" || h.Fill != "" || h.Stroke != HighlightColor || h.StrokeWidth != 2 {
		t.Errorf("highlight = %+v", h)
	}
	if h.Box.T != 183.75 || h.Box.B != 480 {
		t.Errorf("highlight top/bottom = %v/%v, want 183.75/480", h.Box.T, h.Box.B)
	}
	if last := s.Elements[len(s.Elements)-1]; last.Role != RoleHighlight {
		t.Errorf("highlight pass must be drawn last, last element role = %s", last.Role)
	}
	if n := len(s.Filter(KindLabel, RoleHighlight)); n != 0 {
		t.Errorf("highlight labels = %d, want 0", n)
	}
}

func TestBuildWrap(t *testing.T) {
	opts := DefaultOptions()
	opts.Wrap = 64
	s := build(t, ethernet(t, false), opts)

	if s.Rows != 3 || s.Pages != 2.25 {
		t.Errorf("Rows = %d, Pages = %v, want 3, 2.25", s.Rows, s.Pages)
	}
	if s.OutWidth != 800 || s.OutHeight != 1800 {
		t.Errorf("output size = %dx%d, want 800x1800", s.OutWidth, s.OutHeight)
	}

	maxRow := 0
	for _, e := range s.Filter(KindRect, "") {
		b := e.Box
		if b.L < 0 || b.T < 0 || b.R > 799 || b.B > 1799 {
			t.Errorf("%s rect %+v outside the canvas", e.Role, b)
		}
		if row := int(b.T / 600); row > maxRow {
			maxRow = row
		}
	}
	if maxRow != 2 {
		t.Errorf("deepest row used = %d, want 2", maxRow)
	}

	// the 144 bit labels still appear once each
	if n := len(s.Labels(RoleBit)); n != 144 {
		t.Errorf("bit labels = %d, want 144", n)
	}
}

func TestBuildWrappedLabelUsesWidestPiece(t *testing.T) {
	opts := DefaultOptions()
	opts.Wrap = 8
	s := build(t, root(t, leaf(t, "A", 6), leaf(t, "B", 10)), opts)

	var b []Element
	for _, r := range s.Filter(KindRect, RoleStruct) {
		if r.Field == "B" {
			b = append(b, r)
		}
	}
	if len(b) != 2 {
		t.Fatalf("B pieces = %d, want 2", len(b))
	}

	for _, l := range s.Filter(KindLabel, RoleStruct) {
		if l.Text != "B" {
			continue
		}
		if l.Box.L != 0 || l.Box.R != 800 || l.Box.T < 600 {
			t.Errorf("B label box = %+v, want the full second row piece", l.Box)
		}
		return
	}
	t.Error("no label for B")
}

func TestBuildSupersample(t *testing.T) {
	opts := DefaultOptions()
	opts.Supersample = 2
	s := build(t, ethernet(t, false), opts)

	if s.Width != 1600 || s.Height != 1200 {
		t.Errorf("device size = %vx%v, want 1600x1200", s.Width, s.Height)
	}
	if s.OutWidth != 800 || s.OutHeight != 600 {
		t.Errorf("output size = %dx%d, want 800x600", s.OutWidth, s.OutHeight)
	}
	if s.FontSize != 60 {
		t.Errorf("FontSize = %v, want 60", s.FontSize)
	}
	if r := s.Filter(KindRect, RoleStruct)[0]; r.StrokeWidth != 2 || r.Box.R != 1599 {
		t.Errorf("first rect = %+v, want stroke 2 and right edge 1599", r)
	}
}

func TestBuildErrors(t *testing.T) {
	if _, err := Build(nil, DefaultOptions()); !ferrors.Is(err, ferrors.ErrCodeConfiguration) {
		t.Errorf("Build(nil) error = %v, want configuration error", err)
	}

	opts := DefaultOptions()
	opts.Wrap = -1
	if _, err := Build(ethernet(t, false), opts); !ferrors.Is(err, ferrors.ErrCodeConfiguration) {
		t.Errorf("Build(wrap=-1) error = %v, want configuration error", err)
	}
}

func TestBuildMaxBits(t *testing.T) {
	tests := []struct {
		name    string
		tree    *frame.Field
		wantErr bool
	}{
		{"huge leaf", root(t, leaf(t, "Payload", math.MaxInt32)), true},
		{"sum over limit", root(t, leaf(t, "A", MaxBits), leaf(t, "B", 1)), true},
		{"jumbo frame", root(t, leaf(t, "Payload", 9000*8)), false},
	}

	opts := DefaultOptions()
	opts.Bits = false
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.tree, opts)
			if tt.wantErr && !ferrors.Is(err, ferrors.ErrCodeConfiguration) {
				t.Errorf("Build() error = %v, want configuration error", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Build() error = %v", err)
			}
		})
	}
}
