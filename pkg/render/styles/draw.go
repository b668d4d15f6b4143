package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"
)

// Fixed element sizes.
const (
	DotRadius      = 6.0
	DotHoverRadius = 8.0
	BadgeRadius    = 3.0
	BadgeOffset    = 8.0

	newBadgeColor     = "#28a745"
	changedBadgeColor = "#ffc107"

	tooltipHeight   = 20
	tooltipMinWidth = 120
	tooltipCharW    = 7
)

// baseCSS is shared by every style. Tooltips and the hover dot size are pure
// CSS so the SVG works without JavaScript.
const baseCSS = `
    .tech-dot { transition: r 0.2s ease; cursor: pointer; }
    .tech:hover .tech-dot { r: 8px; filter: brightness(1.2); }
    .tech .tooltip { visibility: hidden; pointer-events: none; }
    .tech:hover .tooltip { visibility: visible; }
    .dimension-label { font-family: sans-serif; font-size: 12px; font-weight: bold; }
    .legend text { font-family: sans-serif; font-size: 13px; font-weight: 600; }
    .tooltip text { font-family: sans-serif; font-size: 12px; font-weight: bold; }`

// F formats a coordinate with two decimals.
func F(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Round converts a coordinate to the integer grid of svgo's primitives.
func Round(v float64) int {
	return int(math.Round(v))
}

// EscapeXML escapes s for use in text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// attr formats name="value" with value escaped.
func attr(name, value string) string {
	return name + `="` + EscapeXML(value) + `"`
}

// circle writes a circle at sub-pixel precision. svgo's Circle only accepts
// integer coordinates.
func circle(c *svg.SVG, x, y, r float64, attrs string) {
	fmt.Fprintf(c.Writer, "<circle cx=%q cy=%q r=%q %s/>\n", F(x), F(y), F(r), attrs)
}

// line writes a straight path between two points.
func line(c *svg.SVG, x1, y1, x2, y2 float64, attrs ...string) {
	c.Path(fmt.Sprintf("M %s %s L %s %s", F(x1), F(y1), F(x2), F(y2)), attrs...)
}

// wrapLink draws fn inside an <a> element when url is set.
func wrapLink(c *svg.SVG, url, title string, fn func()) {
	if url == "" {
		fn()
		return
	}
	c.Link(EscapeXML(url), EscapeXML(title))
	fn()
	c.LinkEnd()
}

// renderBaseDefs writes the shared stylesheet followed by extra rules.
func renderBaseDefs(c *svg.SVG, extra string) {
	c.Style("text/css", baseCSS+extra+"\n  ")
}

// renderRingOutline draws a ring polygon in the ring colour.
func renderRingOutline(c *svg.SVG, r Ring) {
	c.Path(r.Path,
		attr("id", "ring-"+r.ID),
		`class="ring"`,
		`fill="none"`,
		attr("stroke", r.Color),
		`stroke-width="2"`,
		`stroke-opacity="0.3"`,
	)
}

// renderPoint draws the dot, its badges and an optional tooltip.
func renderPoint(c *svg.SVG, p Point) {
	c.Group(attr("id", "tech-"+p.ID), `class="tech"`, attr("data-ring", p.Ring))
	c.Title(p.Label)
	wrapLink(c, p.URL, p.Label, func() {
		circle(c, p.X, p.Y, DotRadius,
			`class="tech-dot" `+attr("fill", p.Color)+` stroke="white" stroke-width="2"`)
	})
	if p.IsNew {
		circle(c, p.X+BadgeOffset, p.Y-BadgeOffset, BadgeRadius,
			`class="badge-new" `+attr("fill", newBadgeColor)+` stroke="white" stroke-width="1"`)
	}
	if p.HasChanged {
		circle(c, p.X+BadgeOffset, p.Y+BadgeOffset, BadgeRadius,
			`class="badge-changed" `+attr("fill", changedBadgeColor)+` stroke="white" stroke-width="1"`)
	}
	if p.Tooltip {
		renderTooltip(c, p)
	}
	c.Gend()
}

func renderTooltip(c *svg.SVG, p Point) {
	w := max(tooltipMinWidth, len([]rune(p.Label))*tooltipCharW+10)
	x, y := Round(p.X), Round(p.Y)
	c.Group(`class="tooltip"`)
	c.Roundrect(x+15, y-10, w, tooltipHeight, 4, 4, `fill="rgba(0,0,0,0.8)"`)
	c.Text(x+20, y+3, p.Label, `fill="white"`)
	c.Gend()
}

// renderLabel draws a dimension label in color.
func renderLabel(c *svg.SVG, l Label, color string) {
	c.Text(Round(l.X), Round(l.Y), l.Text,
		attr("id", "label-"+l.ID),
		`class="dimension-label"`,
		attr("text-anchor", l.Anchor),
		`dominant-baseline="middle"`,
		attr("fill", color),
	)
}

const legendLineHeight = 22

// renderLegend draws one coloured marker and name per ring.
func renderLegend(c *svg.SVG, l Legend) {
	if len(l.Items) == 0 {
		return
	}
	c.Group(`class="legend"`)
	for i, it := range l.Items {
		y := l.Y + float64(i*legendLineHeight)
		circle(c, l.X, y, DotRadius, attr("fill", it.Color))
		c.Text(Round(l.X+14), Round(y), it.Name,
			`dominant-baseline="middle"`,
			attr("fill", it.Color),
		)
	}
	c.Gend()
}
