package styles

import (
	"fmt"

	svg "github.com/ajstarks/svgo"
)

const (
	separatorColor = "#dddddd"
	labelColor     = "#333333"
)

// Simple draws outlined rings on a white background with dashed separators.
type Simple struct{}

func (Simple) Name() string { return NameSimple }

func (Simple) RenderDefs(c *svg.SVG) { renderBaseDefs(c, "") }

// RenderSector draws nothing; Simple has no sector backgrounds.
func (Simple) RenderSector(*svg.SVG, Sector) {}

func (Simple) RenderRing(c *svg.SVG, r Ring) { renderRingOutline(c, r) }

func (Simple) RenderSeparator(c *svg.SVG, s Sector) {
	line(c, s.X1, s.Y1, s.X2, s.Y2,
		fmt.Sprintf(`id="separator-%d"`, s.Index),
		`class="separator"`,
		attr("stroke", separatorColor),
		`stroke-width="1"`,
		`stroke-dasharray="5,5"`,
	)
}

func (Simple) RenderLabel(c *svg.SVG, l Label) { renderLabel(c, l, labelColor) }

func (Simple) RenderPoint(c *svg.SVG, p Point) { renderPoint(c, p) }

func (Simple) RenderLegend(c *svg.SVG, l Legend) { renderLegend(c, l) }
