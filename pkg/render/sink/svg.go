package sink

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/techradar/pkg/radar"
	"github.com/matzehuels/techradar/pkg/radar/layout"
	"github.com/matzehuels/techradar/pkg/render/styles"
)

// Legend position from the top-left corner.
const legendInset = 20.0

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style    styles.Style
	theme    radar.Theme
	rings    []radar.Ring
	title    string
	tooltips bool
	legend   bool
}

func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }
func WithTheme(t radar.Theme) SVGOption  { return func(r *svgRenderer) { r.theme = t } }
func WithTitle(s string) SVGOption       { return func(r *svgRenderer) { r.title = s } }
func WithTooltips() SVGOption            { return func(r *svgRenderer) { r.tooltips = true } }
func WithoutLegend() SVGOption           { return func(r *svgRenderer) { r.legend = false } }

// WithRings supplies ring display names for the legend. Rings are matched by
// id; missing rings use [radar.DefaultRings].
func WithRings(rings []radar.Ring) SVGOption {
	return func(r *svgRenderer) { r.rings = rings }
}

// RenderSVG draws l as a standalone SVG document. An empty layout yields an
// empty canvas of the layout's size.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	size := max(0, styles.Round(l.Size))
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(size, size, fmt.Sprintf(`viewBox="0 0 %d %d"`, size, size), `class="radar-chart"`)
	if r.title != "" {
		canvas.Title(r.title)
	}
	r.style.RenderDefs(canvas)

	if !l.IsEmpty() {
		sectors := buildSectors(l, r.theme)
		for _, s := range sectors {
			r.style.RenderSector(canvas, s)
		}
		for _, ring := range buildRings(l, r.theme, r.rings) {
			r.style.RenderRing(canvas, ring)
		}
		for _, s := range sectors {
			r.style.RenderSeparator(canvas, s)
		}
		for _, lb := range buildLabels(l, r.theme) {
			r.style.RenderLabel(canvas, lb)
		}
		for _, p := range buildPoints(l, r.theme, r.tooltips) {
			r.style.RenderPoint(canvas, p)
		}
	}
	if r.legend {
		r.style.RenderLegend(canvas, buildLegend(l, r.theme, r.rings))
	}

	canvas.End()
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Simple{}, theme: radar.DefaultTheme(), legend: true}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func buildSectors(l layout.Layout, th radar.Theme) []styles.Sector {
	out := make([]styles.Sector, len(l.Sectors))
	for i, s := range l.Sectors {
		out[i] = styles.Sector{
			ID:    s.Dimension,
			Index: s.Index,
			Path:  s.Triangle().Path(),
			Fill:  th.SectorTint(s.Index),
			X1:    s.Separator.From.X,
			Y1:    s.Separator.From.Y,
			X2:    s.Separator.To.X,
			Y2:    s.Separator.To.Y,
		}
	}
	return out
}

func buildRings(l layout.Layout, th radar.Theme, rings []radar.Ring) []styles.Ring {
	out := make([]styles.Ring, len(l.Rings))
	for i, rb := range l.Rings {
		out[i] = styles.Ring{
			ID:    string(rb.Ring),
			Name:  ringName(rings, rb.Ring),
			Index: rb.Index,
			Path:  rb.Polygon.Path(),
			Color: th.RingColor(rb.Index),
		}
	}
	return out
}

func buildLabels(l layout.Layout, th radar.Theme) []styles.Label {
	out := make([]styles.Label, len(l.Labels))
	for i, lb := range l.Labels {
		out[i] = styles.Label{
			ID:     lb.Dimension,
			Text:   lb.Text,
			X:      lb.X,
			Y:      lb.Y,
			Anchor: lb.TextAnchor,
			Color:  th.DimensionColor(lb.Index),
		}
	}
	return out
}

func buildPoints(l layout.Layout, th radar.Theme, tooltips bool) []styles.Point {
	out := make([]styles.Point, len(l.Points))
	for i, p := range l.Points {
		label := p.Name
		if label == "" {
			label = p.ID
		}
		out[i] = styles.Point{
			ID:         p.ID,
			Label:      label,
			Ring:       string(p.Ring),
			X:          p.X,
			Y:          p.Y,
			Color:      th.RingColor(p.RingIndex),
			URL:        p.URL,
			IsNew:      p.IsNew,
			HasChanged: p.HasChanged,
			Tooltip:    tooltips,
		}
	}
	return out
}

func buildLegend(l layout.Layout, th radar.Theme, rings []radar.Ring) styles.Legend {
	lg := styles.Legend{X: legendInset, Y: legendInset}
	for _, e := range l.Legend {
		lg.Items = append(lg.Items, styles.LegendItem{
			Name:  ringName(rings, e.Ring),
			Color: th.RingColor(e.Index),
		})
	}
	return lg
}

func ringName(rings []radar.Ring, id radar.RingID) string {
	for _, r := range rings {
		if r.ID == id && r.Name != "" {
			return r.Name
		}
	}
	for _, r := range radar.DefaultRings() {
		if r.ID == id {
			return r.Name
		}
	}
	return string(id)
}
