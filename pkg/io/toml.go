package io

import (
	"io"

	"github.com/BurntSushi/toml"

	ferrors "github.com/matzehuels/framegram/pkg/errors"
)

// ReadTOML decodes a TOML document from r. The schema matches the object
// form of [ReadJSON]: an optional [opts] table and a [[structs]] array whose
// nested fields are [[structs._]] tables or inline tables.
func ReadTOML(r io.Reader) (*Document, error) {
	var v map[string]any
	if _, err := toml.NewDecoder(r).Decode(&v); err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeParse, err, "decode toml")
	}
	return decodeDocument(v)
}
