// Package io reads frame documents and writes them back out.
//
// # Overview
//
// A document describes one frame as a tree of fields, plus optional layout
// settings. Two encodings share the same schema: JSON and TOML.
//
// # JSON Format
//
// Either a bare array of field descriptions:
//
//	[{"name": "Type", "_": 8}, {"name": "Length", "_": 8}]
//
// or an object carrying layout options next to the fields:
//
//	{
//	  "opts": {"width": 1200, "wrap": 32, "bits": false},
//	  "structs": [
//	    {"name": "Destination", "_": 48, "val": ["DE", "AD", "BE", "EF", "CC", "DD"]},
//	    {"name": "TCI", "important": true, "_": [
//	      {"name": "PCP", "_": 3},
//	      {"name": "DEI", "_": 1},
//	      {"name": "VID", "_": 12}
//	    ]}
//	  ]
//	}
//
// # Field Keys
//
// Required:
//   - name: label drawn in the field's box; may be empty for padding
//   - _: bit width (integer, leaf) or list of child fields (composite)
//
// Optional:
//   - val: literals drawn under a leaf in the values strip; numbers keep the
//     spelling they have in the file
//   - important: outline the field in the highlight pass
//
// # Options
//
// Recognized keys of "opts": width, height, wrap, bits, font_size,
// supersample. Unknown keys are ignored. Each option is a pointer in
// [FileOptions] so callers can tell an absent key from a zero value: an
// absent wrap puts the frame on one page, a wrap of zero is rejected.
//
// # TOML Format
//
// The TOML encoding uses the object form with tables:
//
//	[opts]
//	wrap = 32
//
//	[[structs]]
//	name = "TCI"
//	important = true
//
//	  [[structs._]]
//	  name = "PCP"
//	  _ = 3
//
// [Load] picks the decoder from the file extension (".toml", otherwise JSON).
//
// # Errors
//
// Malformed documents fail with PARSE_ERROR and invalid geometry with
// CONFIGURATION_ERROR. Both carry the path of the offending node, e.g.
// "structs[0]/802.1Q Tag/_[1]": the second child of the first top-level
// field, which is named "802.1Q Tag".
package io
