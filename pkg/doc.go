// Package pkg provides the libraries behind techradar, a technology radar
// renderer.
//
// # Overview
//
// A technology radar places technologies on a polar chart: each dimension
// (languages, tools, platforms, ...) owns an angular sector and each adoption
// ring (adopt, trial, assess, hold) owns a radial band. The pkg directory is
// organized into these areas:
//
//  1. [radar] - Data model and catalog queries
//  2. [radar/layout] - The radial layout engine
//  3. [catalog] - Reading catalogs and detail documents
//  4. [render] - Output (SVG, JSON, PNG, PDF, Graphviz)
//  5. [pipeline] - Orchestration (load → layout → render)
//
// # Architecture
//
//	catalog.json / catalog.yaml (+ details/<id>.md)
//	         ↓
//	    [catalog] package (decode, merge details, report warnings)
//	         ↓
//	    [radar] package (filter, sort)
//	         ↓
//	    [radar/layout] package (rings, sectors, labels, points)
//	         ↓
//	    [render/sink] package (SVG/JSON/PNG/PDF)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/techradar/pkg/catalog"
//	    "github.com/matzehuels/techradar/pkg/radar/layout"
//	    "github.com/matzehuels/techradar/pkg/render/sink"
//	)
//
//	c, _ := catalog.ImportFile("radar.yaml")
//	l := layout.Compute(c.Dimensions, c.Technologies, 700)
//	svg := sink.RenderSVG(l, sink.WithTitle(c.Title))
//
// # Main Packages
//
// [radar/layout] - Deterministic placement. A technology's position depends
// only on its id, ring, dimension, the number of dimensions and the chart
// size, so the same catalog always produces the same chart. Technologies with
// an unknown ring or dimension are reported as skipped, never placed.
//
// [render/styles] - Visual styles (simple, tinted) drawn with svgo.
//
// [render/nodelink] - An alternative tree view of the catalog using Graphviz.
//
// [config] - TOML settings for the cosmetic constants (size, margins, label
// offset, colours).
//
// [observability] - Hooks around each pipeline stage.
//
// [errors] - Structured error codes shared by every package.
//
// # Testing
//
//	go test ./...                 # All tests
//	go test ./pkg/radar/layout/   # The layout engine
//	go test -run Example ./...    # Examples only
//
// PNG and PDF tests are skipped when rsvg-convert is not installed.
//
// [radar]: https://pkg.go.dev/github.com/matzehuels/techradar/pkg/radar
// [radar/layout]: https://pkg.go.dev/github.com/matzehuels/techradar/pkg/radar/layout
// [catalog]: https://pkg.go.dev/github.com/matzehuels/techradar/pkg/catalog
// [render]: https://pkg.go.dev/github.com/matzehuels/techradar/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/techradar/pkg/render/sink
// [render/styles]: https://pkg.go.dev/github.com/matzehuels/techradar/pkg/render/styles
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/techradar/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/techradar/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/techradar/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/techradar/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/techradar/pkg/errors
package pkg
