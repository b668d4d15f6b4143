// Package nodelink renders a radar catalog as a node-link diagram.
//
// # Overview
//
// This is an alternative view of the same catalog the radar chart shows:
// one node per dimension, one node per technology, and an edge from each
// dimension to the technologies it contains. Technology nodes are filled
// with their ring colour, so the diagram reads like a radar unrolled into a
// tree. Graphviz does the layout.
//
// # Usage
//
// Convert a catalog to DOT, then render to SVG:
//
//	dot := nodelink.ToDOT(catalog, nodelink.Options{Theme: &theme})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)  // 2x scale
//
// # Options
//
//   - Detailed: technology labels also list the ring and tags
//   - Theme: colour table for node fills (nil uses the default)
//
// Technologies whose ring or dimension is unknown are drawn dashed and
// unconnected, mirroring how the radar chart leaves them out.
package nodelink
