package io

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	ferrors "github.com/matzehuels/framegram/pkg/errors"
	"github.com/matzehuels/framegram/pkg/frame"
)

// decodeDocument converts a generic decoded value (as produced by
// encoding/json with UseNumber, or by the TOML decoder) into a Document.
func decodeDocument(v any) (*Document, error) {
	switch top := v.(type) {
	case []any:
		root, err := decodeRoot("", top)
		if err != nil {
			return nil, err
		}
		return &Document{Root: root}, nil

	case map[string]any:
		var doc Document
		if raw, ok := top["opts"]; ok && raw != nil {
			opts, err := decodeOptions(raw)
			if err != nil {
				return nil, err
			}
			doc.Options = opts
		}
		raw, ok := top["structs"]
		if !ok {
			return nil, ferrors.New(ferrors.ErrCodeParse, `document has no "structs"`)
		}
		list, ok := asList(raw)
		if !ok {
			return nil, ferrors.New(ferrors.ErrCodeParse, `structs: must be a list of fields`)
		}
		root, err := decodeRoot("structs", list)
		if err != nil {
			return nil, err
		}
		doc.Root = root
		return &doc, nil

	default:
		return nil, ferrors.New(ferrors.ErrCodeParse, "document must be a list of fields or an object, got %s", typeName(v))
	}
}

func decodeRoot(path string, list []any) (*frame.Field, error) {
	if len(list) == 0 {
		return nil, ferrors.Wrap(ferrors.ErrCodeConfiguration, frame.ErrNoChildren, "%s: document has no fields", nonEmpty(path))
	}
	children := make([]*frame.Field, len(list))
	for i, item := range list {
		f, err := decodeField(fmt.Sprintf("%s[%d]", path, i), item)
		if err != nil {
			return nil, err
		}
		children[i] = f
	}
	return frame.NewRoot(children)
}

func decodeField(path string, v any) (*frame.Field, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, ferrors.New(ferrors.ErrCodeParse, "%s: field must be an object, got %s", path, typeName(v))
	}

	rawName, ok := m["name"]
	if !ok {
		return nil, ferrors.New(ferrors.ErrCodeParse, `%s: missing "name"`, path)
	}
	name, ok := rawName.(string)
	if !ok {
		return nil, ferrors.New(ferrors.ErrCodeParse, `%s: "name" must be a string, got %s`, path, typeName(rawName))
	}
	if err := ferrors.ValidateFieldName(path, name); err != nil {
		return nil, err
	}

	var important bool
	if raw, ok := m["important"]; ok && raw != nil {
		if important, ok = raw.(bool); !ok {
			return nil, ferrors.New(ferrors.ErrCodeParse, `%s/%s: "important" must be a boolean, got %s`, path, name, typeName(raw))
		}
	}

	var values []string
	if raw, ok := m["val"]; ok && raw != nil {
		var err error
		if values, err = decodeValues(path+"/"+name+"/val", raw); err != nil {
			return nil, err
		}
	}

	raw, ok := m["_"]
	if !ok {
		return nil, ferrors.New(ferrors.ErrCodeParse, `%s/%s: missing "_"`, path, name)
	}
	if width, ok := asInt(raw); ok {
		if width < 1 {
			return nil, ferrors.Wrap(ferrors.ErrCodeConfiguration, frame.ErrZeroWidth, "%s/%s: width %d", path, name, width)
		}
		return frame.NewLeaf(name, width, values, important)
	}
	list, ok := asList(raw)
	if !ok {
		return nil, ferrors.New(ferrors.ErrCodeParse, `%s/%s: "_" must be an integer or a list, got %s`, path, name, typeName(raw))
	}
	if len(list) == 0 {
		return nil, ferrors.Wrap(ferrors.ErrCodeConfiguration, frame.ErrNoChildren, "%s/%s", path, name)
	}

	// "val" on a composite is not drawn.
	children := make([]*frame.Field, len(list))
	for i, item := range list {
		c, err := decodeField(fmt.Sprintf("%s/%s/_[%d]", path, name, i), item)
		if err != nil {
			return nil, err
		}
		children[i] = c
	}
	return frame.NewComposite(name, children, important)
}

func decodeValues(path string, v any) ([]string, error) {
	list, ok := asList(v)
	if !ok {
		return nil, ferrors.New(ferrors.ErrCodeParse, "%s: must be a list of literals, got %s", path, typeName(v))
	}
	values := make([]string, len(list))
	for i, item := range list {
		s, ok := literal(item)
		if !ok {
			return nil, ferrors.New(ferrors.ErrCodeParse, "%s[%d]: not a literal: %s", path, i, typeName(item))
		}
		values[i] = s
	}
	return values, nil
}

func decodeOptions(v any) (FileOptions, error) {
	var o FileOptions
	m, ok := v.(map[string]any)
	if !ok {
		return o, ferrors.New(ferrors.ErrCodeParse, "opts: must be an object, got %s", typeName(v))
	}

	ints := []struct {
		key string
		dst **int
	}{
		{"width", &o.Width},
		{"height", &o.Height},
		{"wrap", &o.Wrap},
		{"supersample", &o.Supersample},
	}
	for _, opt := range ints {
		raw, ok := m[opt.key]
		if !ok || raw == nil {
			continue
		}
		n, ok := asInt(raw)
		if !ok {
			return o, ferrors.New(ferrors.ErrCodeParse, "opts/%s: must be an integer, got %s", opt.key, typeName(raw))
		}
		*opt.dst = &n
	}

	if raw, ok := m["bits"]; ok && raw != nil {
		b, ok := raw.(bool)
		if !ok {
			return o, ferrors.New(ferrors.ErrCodeParse, "opts/bits: must be a boolean, got %s", typeName(raw))
		}
		o.Bits = &b
	}

	if raw, ok := m["font_size"]; ok && raw != nil {
		f, ok := asFloat(raw)
		if !ok {
			return o, ferrors.New(ferrors.ErrCodeParse, "opts/font_size: must be a number, got %s", typeName(raw))
		}
		o.FontSize = &f
	}

	return o, nil
}

func asList(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []map[string]any:
		out := make([]any, len(l))
		for i, m := range l {
			out[i] = m
		}
		return out, true
	}
	return nil, false
}

func asInt(v any) (int, bool) {
	var n int64
	switch x := v.(type) {
	case json.Number:
		var err error
		if n, err = x.Int64(); err != nil {
			return 0, false
		}
	case int64:
		n = x
	case int:
		n = int64(x)
	default:
		return 0, false
	}
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, false
	}
	return int(n), true
}

func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case float64:
		return x, true
	case int64:
		return float64(x), true
	}
	return 0, false
}

// literal returns the display text of a scalar value. Numbers keep the
// spelling they had in a JSON document.
func literal(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), true
	case bool:
		return strconv.FormatBool(x), true
	}
	return "", false
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, int64, int, float64:
		return "number"
	case []any, []map[string]any:
		return "list"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}

func nonEmpty(path string) string {
	if path == "" {
		return "document"
	}
	return path
}
