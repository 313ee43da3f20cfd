package io

import (
	"encoding/json"
	"io"

	ferrors "github.com/matzehuels/framegram/pkg/errors"
	"github.com/matzehuels/framegram/pkg/frame"
)

// ReadJSON decodes a JSON document from r.
//
// The input is either a bare array of fields or an object with "structs"
// and optional "opts" (see the package documentation). ReadJSON does not
// close r. Anything but whitespace after the document is a PARSE_ERROR.
func ReadJSON(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeParse, err, "decode json")
	}
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, ferrors.New(ferrors.ErrCodeParse, "decode json: unexpected data after the document at offset %d", dec.InputOffset())
	}
	return decodeDocument(v)
}

type document struct {
	Options *FileOptions `json:"opts,omitempty"`
	Structs []field      `json:"structs"`
}

type field struct {
	Name      string   `json:"name"`
	Width     any      `json:"_"`
	Values    []string `json:"val,omitempty"`
	Important bool     `json:"important,omitempty"`
}

// WriteJSON encodes doc in the object form. Values are written as strings,
// so a document read and written again keeps its literal spelling.
func WriteJSON(doc *Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(encodeDocument(doc)); err != nil {
		return ferrors.Wrap(ferrors.ErrCodeIO, err, "encode json")
	}
	return nil
}

func encodeDocument(doc *Document) document {
	out := document{Structs: []field{}}
	if !doc.Options.IsZero() {
		opts := doc.Options
		out.Options = &opts
	}
	if doc.Root != nil {
		for _, c := range doc.Root.Children() {
			out.Structs = append(out.Structs, encodeField(c))
		}
	}
	return out
}

func encodeField(f *frame.Field) field {
	out := field{Name: f.Name(), Important: f.Important()}
	if f.IsLeaf() {
		out.Width = f.TotalBits()
		if v := f.Values(); len(v) > 0 {
			out.Values = v
		}
		return out
	}
	children := make([]field, f.NumChildren())
	for i, c := range f.Children() {
		children[i] = encodeField(c)
	}
	out.Width = children
	return out
}
