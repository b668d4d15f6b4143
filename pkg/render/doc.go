// Package render provides output conversion for radar charts.
//
// # Overview
//
// This package holds the format conversion shared by all renderers:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Radar chart output (in [sink] with visual styles in [styles])
//   - Node-link diagrams of the catalog (in [nodelink])
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg):
//
//	svg := sink.RenderSVG(l, opts...)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// When rsvg-convert is missing the error carries
// [errors.ErrCodeUnsupported] and installation hints.
//
// [sink]: github.com/matzehuels/techradar/pkg/render/sink
// [styles]: github.com/matzehuels/techradar/pkg/render/styles
// [nodelink]: github.com/matzehuels/techradar/pkg/render/nodelink
// [errors.ErrCodeUnsupported]: github.com/matzehuels/techradar/pkg/errors
package render
