package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	ferrors "github.com/matzehuels/framegram/pkg/errors"
)

const frameDoc = `{"opts": {"width": 320}, "structs": [
  {"name": "Type", "_": 8, "val": ["0x08"]},
  {"name": "Flags", "important": true, "_": [{"name": "A", "_": 4}, {"name": "B", "_": 4}]},
  {"name": "Length", "_": 16}
]}`

func writeFrame(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "frame.json")
	if err := os.WriteFile(path, []byte(frameDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := New(io.Discard, LogInfo).RootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.ExecuteContext(context.Background())
}

func TestRootCommandFlags(t *testing.T) {
	cmd := New(io.Discard, LogInfo).RootCommand()

	tests := []struct {
		name      string
		shorthand string
		def       string
	}{
		{"width", "w", "800"},
		{"height", "h", "600"},
		{"wrap", "", "0"},
		{"output", "o", ""},
		{"format", "f", "png"},
		{"bits", "", "true"},
		{"font-size", "", "0.05"},
		{"supersample", "", "1"},
		{"verbose", "v", "false"},
		{"help", "", "false"},
	}
	for _, tt := range tests {
		f := cmd.Flags().Lookup(tt.name)
		if f == nil {
			t.Errorf("flag --%s missing", tt.name)
			continue
		}
		if f.Shorthand != tt.shorthand {
			t.Errorf("--%s shorthand = %q, want %q", tt.name, f.Shorthand, tt.shorthand)
		}
		if f.DefValue != tt.def {
			t.Errorf("--%s default = %q, want %q", tt.name, f.DefValue, tt.def)
		}
	}
}

func TestRootCommandRender(t *testing.T) {
	input := writeFrame(t)
	dir := filepath.Dir(input)

	if err := execute(t, "-h", "200", "-f", "png,svg", input); err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, name := range []string{"frame.png", "frame.svg"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}

	svg, err := os.ReadFile(filepath.Join(dir, "frame.svg"))
	if err != nil {
		t.Fatal(err)
	}
	// width from the document, height from the flag
	if !bytes.Contains(svg, []byte(`width="320" height="200"`)) {
		t.Error("svg should be 320x200")
	}
}

func TestRootCommandOutput(t *testing.T) {
	input := writeFrame(t)
	out := filepath.Join(t.TempDir(), "diagram.out")

	if err := execute(t, "--output", out, "--wrap", "16", input); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestRootCommandErrors(t *testing.T) {
	input := writeFrame(t)

	tests := []struct {
		name string
		args []string
		code ferrors.Code
	}{
		{"bad format", []string{"-f", "gif", input}, ferrors.ErrCodeConfiguration},
		{"zero width", []string{"-w", "0", input}, ferrors.ErrCodeConfiguration},
		{"negative wrap", []string{"--wrap", "-1", input}, ferrors.ErrCodeConfiguration},
		{"zero wrap", []string{"--wrap", "0", input}, ferrors.ErrCodeConfiguration},
		{"missing file", []string{filepath.Join(t.TempDir(), "none.json")}, ferrors.ErrCodeIO},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := execute(t, tt.args...)
			if got := ferrors.GetCode(err); got != tt.code {
				t.Errorf("code = %s, want %s (%v)", got, tt.code, err)
			}
		})
	}

	if err := execute(t); err == nil {
		t.Error("missing file argument should fail")
	}
	if err := execute(t, "a.json", "b.json"); err == nil {
		t.Error("two file arguments should fail")
	}
}

func TestRootCommandHelpAndVersion(t *testing.T) {
	if err := execute(t, "--help"); err != nil {
		t.Errorf("--help: %v", err)
	}
	if err := execute(t, "--version"); err != nil {
		t.Errorf("--version: %v", err)
	}
}
