package sink

import (
	"testing"

	"github.com/matzehuels/framegram/pkg/frame"
	"github.com/matzehuels/framegram/pkg/layout"
)

func mustField(t *testing.T, f *frame.Field, err error) *frame.Field {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
	return f
}

// ethernet returns the 144-bit tagged Ethernet header with TCI marked
// important.
func ethernet(t *testing.T) *frame.Field {
	t.Helper()
	leaf := func(name string, width int, values ...string) *frame.Field {
		f, err := frame.NewLeaf(name, width, values, false)
		return mustField(t, f, err)
	}
	composite := func(name string, important bool, children ...*frame.Field) *frame.Field {
		f, err := frame.NewComposite(name, children, important)
		return mustField(t, f, err)
	}

	mac := []string{"DE", "AD", "BE", "EF", "CC", "DD"}
	tci := composite("TCI", true, leaf("PCP", 3), leaf("DEI", 1), leaf("VID", 12))
	eth := composite("Ethernet Frame", false,
		leaf("Destination", 48, mac...),
		leaf("Source", 48, mac...),
		composite("802.1Q Tag", false, leaf("TPID", 16), tci),
		leaf("EtherType", 16),
	)
	r, err := frame.NewRoot([]*frame.Field{eth})
	return mustField(t, r, err)
}

func scene(t *testing.T, f *frame.Field, mutate func(*layout.Options)) layout.Scene {
	t.Helper()
	opts := layout.DefaultOptions()
	if mutate != nil {
		mutate(&opts)
	}
	s, err := layout.Build(f, opts)
	if err != nil {
		t.Fatalf("layout.Build() error: %v", err)
	}
	return s
}
