// Package sink provides output format renderers for radar layouts.
//
// # Overview
//
// A "sink" transforms a computed [layout.Layout] into a final output format:
//
//   - SVG: the radar chart, with hover tooltips and technology links
//   - JSON: the computed geometry for external tools
//   - PDF: print-ready output (requires rsvg-convert)
//   - PNG: raster output (requires rsvg-convert)
//
// # SVG Output
//
// [RenderSVG] draws sectors, ring polygons, separators, dimension labels,
// technology dots with their new/changed badges, and the ring legend:
//
//	svg := sink.RenderSVG(l,
//	    sink.WithStyle(styles.Tinted{}),
//	    sink.WithTheme(radar.ThemeFor(catalog)),
//	    sink.WithRings(catalog.RingList()),
//	    sink.WithTooltips(),
//	)
//
// # JSON Output
//
// [RenderJSON] exports every computed element. Each point carries a
// name-based UUID derived from the technology id, so the same technology
// keeps the same key across exports.
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] generate SVG first and convert it with
// [render.ToPDF] and [render.ToPNG]. These require librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
package sink
