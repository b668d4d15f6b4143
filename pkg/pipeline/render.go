package pipeline

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/techradar/pkg/catalog"
	"github.com/matzehuels/techradar/pkg/radar"
	"github.com/matzehuels/techradar/pkg/radar/layout"
	"github.com/matzehuels/techradar/pkg/render/nodelink"
	"github.com/matzehuels/techradar/pkg/render/sink"
	"github.com/matzehuels/techradar/pkg/render/styles"
)

// Render generates radar artifacts in the requested formats.
func Render(c *radar.Catalog, l layout.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	style, err := styles.Lookup(opts.Style)
	if err != nil {
		return nil, err
	}

	svgOpts := buildSVGOptions(c, style, opts)
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(l, svgOpts...)
		case FormatJSON:
			data, err = sink.RenderJSON(l, sink.WithJSONTitle(title(c, opts)), sink.WithJSONStyle(style.Name()))
		case FormatPNG:
			data, err = sink.RenderPNG(l, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(l, sink.WithPDFSVGOptions(svgOpts...))
		default:
			return nil, fmt.Errorf("unsupported radar format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// RenderNodelink generates node-link artifacts from a DOT graph. The JSON
// artifact is the selected catalog itself.
func RenderNodelink(c *radar.Catalog, techs []radar.Technology, dot string, opts Options) (map[string][]byte, error) {
	if dot == "" {
		return nil, fmt.Errorf("nodelink render missing DOT string")
	}
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatDOT:
			data = []byte(dot)
		case FormatSVG:
			data, err = nodelink.RenderSVG(dot)
		case FormatPNG:
			data, err = nodelink.RenderPNG(dot, opts.Scale)
		case FormatPDF:
			data, err = nodelink.RenderPDF(dot)
		case FormatJSON:
			var buf bytes.Buffer
			err = catalog.WriteJSON(subset(c, techs), &buf)
			data = buf.Bytes()
		default:
			return nil, fmt.Errorf("unsupported nodelink format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func buildSVGOptions(c *radar.Catalog, style styles.Style, opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{
		sink.WithStyle(style),
		sink.WithTheme(opts.Config.Theme(c)),
		sink.WithRings(c.RingList()),
	}
	if t := title(c, opts); t != "" {
		svgOpts = append(svgOpts, sink.WithTitle(t))
	}
	if opts.Tooltips {
		svgOpts = append(svgOpts, sink.WithTooltips())
	}
	if opts.NoLegend {
		svgOpts = append(svgOpts, sink.WithoutLegend())
	}
	return svgOpts
}

func title(c *radar.Catalog, opts Options) string {
	if opts.Title != "" {
		return opts.Title
	}
	return c.Title
}
