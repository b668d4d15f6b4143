package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/techradar/pkg/radar"
	"github.com/matzehuels/techradar/pkg/render"
)

// Node ids are prefixed so a dimension and a technology sharing an id stay
// distinct.
const (
	rootID      = "radar"
	dimPrefix   = "dim:"
	techPrefix  = "tech:"
	unknownFill = "#eeeeee"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the ring name and tags to technology labels.
	// When false, only the technology name is shown.
	Detailed bool
	// Theme supplies ring and dimension colours. Nil means [radar.DefaultTheme].
	Theme *radar.Theme
}

// ToDOT converts a catalog to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(c *radar.Catalog, opts Options) string {
	th := radar.DefaultTheme()
	if opts.Theme != nil {
		th = *opts.Theme
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.8;\n")
	buf.WriteString("  nodesep=0.2;\n")
	buf.WriteString("\n")

	title := c.Title
	if title == "" {
		title = "Technology Radar"
	}
	fmt.Fprintf(&buf, "  %q [label=%q, shape=ellipse, fontsize=18];\n", rootID, title)

	for i, d := range c.Dimensions {
		label := d.Name
		if label == "" {
			label = d.ID
		}
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q];\n", dimPrefix+d.ID, label, th.DimensionColor(i))
		fmt.Fprintf(&buf, "  %q -> %q;\n", rootID, dimPrefix+d.ID)
	}

	buf.WriteString("\n")
	for _, t := range c.Technologies {
		attrs := fmtAttrs(t, c, th, opts.Detailed)
		fmt.Fprintf(&buf, "  %q [%s];\n", techPrefix+t.ID, strings.Join(attrs, ", "))
		if _, ok := c.DimensionIndex(t.Dimension); ok {
			fmt.Fprintf(&buf, "  %q -> %q;\n", dimPrefix+t.Dimension, techPrefix+t.ID)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(t radar.Technology, c *radar.Catalog, detailed bool) string {
	if !detailed {
		return t.Label()
	}
	ring := string(t.Ring)
	if r, ok := c.Ring(t.Ring); ok && r.Name != "" {
		ring = r.Name
	}
	parts := []string{t.Label(), "ring: " + ring}
	if len(t.Tags) > 0 {
		parts = append(parts, "tags: "+strings.Join(t.Tags, ", "))
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(t radar.Technology, c *radar.Catalog, th radar.Theme, detailed bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(t, c, detailed))}

	ri, ringOK := radar.RingIndex(t.Ring)
	_, dimOK := c.DimensionIndex(t.Dimension)
	if !ringOK || !dimOK {
		return append(attrs, "style=\"rounded,filled,dashed\"", fmt.Sprintf("fillcolor=%q", unknownFill), "fontcolor=grey40")
	}

	attrs = append(attrs, fmt.Sprintf("fillcolor=%q", th.RingColor(ri)), "fontcolor=white")
	if t.URL != "" {
		attrs = append(attrs, fmt.Sprintf("URL=%q", t.URL), "target=\"_blank\"")
	}
	if t.IsNew {
		attrs = append(attrs, "penwidth=3", "color=\"#28a745\"")
	} else if t.HasChanged {
		attrs = append(attrs, "penwidth=3", "color=\"#ffc107\"")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based <svg> header with a
// pixel-sized one that keeps the xlink namespace used by node URLs.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
