package styles

import (
	"fmt"

	svg "github.com/ajstarks/svgo"
)

// Tinted shades alternating sectors and colours each label with its
// dimension's palette entry.
type Tinted struct{}

func (Tinted) Name() string { return NameTinted }

func (Tinted) RenderDefs(c *svg.SVG) {
	renderBaseDefs(c, `
    .sector { transition: opacity 0.2s ease; }
    .sector:hover { opacity: 0.7; }`)
}

func (Tinted) RenderSector(c *svg.SVG, s Sector) {
	c.Path(s.Path,
		attr("id", "sector-"+s.ID),
		`class="sector"`,
		attr("fill", s.Fill),
		`stroke="none"`,
	)
}

func (Tinted) RenderRing(c *svg.SVG, r Ring) { renderRingOutline(c, r) }

func (Tinted) RenderSeparator(c *svg.SVG, s Sector) {
	line(c, s.X1, s.Y1, s.X2, s.Y2,
		fmt.Sprintf(`id="separator-%d"`, s.Index),
		`class="separator"`,
		attr("stroke", separatorColor),
		`stroke-width="1"`,
	)
}

func (Tinted) RenderLabel(c *svg.SVG, l Label) {
	color := l.Color
	if color == "" {
		color = labelColor
	}
	renderLabel(c, l, color)
}

func (Tinted) RenderPoint(c *svg.SVG, p Point) { renderPoint(c, p) }

func (Tinted) RenderLegend(c *svg.SVG, l Legend) { renderLegend(c, l) }
