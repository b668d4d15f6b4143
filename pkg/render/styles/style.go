package styles

import (
	"slices"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/techradar/pkg/errors"
)

// Style names.
const (
	NameSimple = "simple"
	NameTinted = "tinted"
)

// Names lists the available styles.
var Names = []string{NameSimple, NameTinted}

// Style defines the visual appearance of a radar chart.
type Style interface {
	// Name returns the style's registry name.
	Name() string
	// RenderDefs writes stylesheet and <defs> content.
	RenderDefs(c *svg.SVG)
	// RenderSector writes the background of one sector.
	RenderSector(c *svg.SVG, s Sector)
	// RenderRing writes one ring boundary polygon.
	RenderRing(c *svg.SVG, r Ring)
	// RenderSeparator writes the line between two sectors.
	RenderSeparator(c *svg.SVG, s Sector)
	// RenderLabel writes a dimension name.
	RenderLabel(c *svg.SVG, l Label)
	// RenderPoint writes a technology dot with its badges.
	RenderPoint(c *svg.SVG, p Point)
	// RenderLegend writes the ring legend.
	RenderLegend(c *svg.SVG, l Legend)
}

// Ring is one ring boundary ready to draw.
type Ring struct {
	ID    string
	Name  string
	Index int
	Path  string // closed polygon path
	Color string
}

// Sector is one dimension wedge ready to draw.
type Sector struct {
	ID             string
	Index          int
	Path           string // background triangle
	Fill           string
	X1, Y1, X2, Y2 float64 // separator from the centre to the first vertex
}

// Label is a dimension name anchored outside the outer ring.
type Label struct {
	ID     string
	Text   string
	X, Y   float64
	Anchor string
	Color  string
}

// Point is a technology dot ready to draw.
type Point struct {
	ID         string
	Label      string
	Ring       string
	X, Y       float64
	Color      string
	URL        string
	IsNew      bool
	HasChanged bool
	Tooltip    bool
}

// Legend lists the rings in ring order at a fixed corner of the chart.
type Legend struct {
	X, Y  float64
	Items []LegendItem
}

// LegendItem is one ring entry in the legend.
type LegendItem struct {
	Name  string
	Color string
}

// Lookup returns the style registered under name.
func Lookup(name string) (Style, error) {
	switch name {
	case "", NameSimple:
		return Simple{}, nil
	case NameTinted:
		return Tinted{}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidStyle, "unknown style %q (want one of %v)", name, Names)
}

// Valid reports whether name is a registered style.
func Valid(name string) bool {
	return slices.Contains(Names, name)
}
