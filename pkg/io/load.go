package io

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ferrors "github.com/matzehuels/framegram/pkg/errors"
)

// Load reads the document at path. Files ending in ".toml" are decoded as
// TOML, everything else as JSON. Errors carry the path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	read := ReadJSON
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		read = ReadTOML
	}
	doc, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
