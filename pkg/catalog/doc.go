// Package catalog reads technology radar catalogs from disk.
//
// # Overview
//
// A catalog lists the dimensions (sectors) of a radar, optional ring
// metadata, and the technologies to place. Catalogs are stored as JSON or
// YAML with the same field names:
//
//	{
//	  "title": "Engineering Radar",
//	  "dimensions": [
//	    {"id": "languages", "name": "Languages"},
//	    {"id": "tools", "name": "Tools"}
//	  ],
//	  "rings": [
//	    {"id": "adopt", "name": "Adopt", "color": "#588157"}
//	  ],
//	  "technologies": [
//	    {"id": "go", "name": "Go", "ring": "adopt", "dimension": "languages",
//	     "tags": ["backend"], "isNew": true}
//	  ]
//	}
//
// [ImportFile] picks the decoder from the file extension (.json, .yaml,
// .yml).
//
// # Per-item problems
//
// Loading never rejects a catalog because of a single bad technology. An
// unknown ring or dimension is left for the layout engine to skip, and
// [Check] reports such items as warnings for the CLI to print.
//
// # Detail documents
//
// A technology may have a markdown document with optional YAML front matter:
//
//	---
//	ring: trial
//	rationale: Works well for internal tools.
//	---
//	# React
//
//	Longer discussion...
//
// [LoadDetails] reads <dir>/<id>.md for every technology. Front matter
// fields override the catalog entry and the body is stored verbatim in
// Technology.Content. Missing documents are not an error.
package catalog
