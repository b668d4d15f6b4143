package radar

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Theme is a read-only colour table. Lookups never fail: out-of-range indices
// fall back to the first entry, and an empty table falls back to grey.
type Theme struct {
	rings      []string
	dimensions []string
	tints      [2]string
}

const fallbackColor = "#808080"

// DefaultTheme returns the stock palette.
func DefaultTheme() Theme {
	rings := make([]string, 0, RingCount)
	for _, r := range DefaultRings() {
		rings = append(rings, r.Color)
	}
	return Theme{
		rings:      rings,
		dimensions: []string{"#00f4cb", "#00b2a2", "#0f878a", "#0f6a73", "#0f434a"},
		tints:      [2]string{"#fafafa", "#f0f0f0"},
	}
}

// NewTheme builds a theme from explicit colour lists. Empty lists keep the
// default entries.
func NewTheme(rings, dimensions []string) Theme {
	t := DefaultTheme()
	if len(rings) > 0 {
		t.rings = append([]string(nil), rings...)
	}
	if len(dimensions) > 0 {
		t.dimensions = append([]string(nil), dimensions...)
	}
	return t
}

// ThemeFor returns the default theme with ring colours taken from the
// catalog's ring definitions and dimension colours from its dimensions.
// Entries without a colour keep the default.
func ThemeFor(c *Catalog) Theme {
	rings := make([]string, 0, RingCount)
	for _, r := range c.RingList() {
		rings = append(rings, r.Color)
	}
	dims := make([]string, len(c.Dimensions))
	for i, d := range c.Dimensions {
		dims[i] = d.Color
	}
	return DefaultTheme().WithRings(rings).WithDimensions(dims)
}

// WithRings returns a copy of t with ring colours replaced by colors, in ring
// order. Empty entries keep the current colour.
func (t Theme) WithRings(colors []string) Theme {
	t.rings = overlay(t.rings, colors)
	return t
}

// WithDimensions returns a copy of t with the dimension palette replaced by
// colors. Empty entries keep the current palette colour for that index.
func (t Theme) WithDimensions(colors []string) Theme {
	t.dimensions = overlay(t.dimensions, colors)
	return t
}

func overlay(base, colors []string) []string {
	if !slices.ContainsFunc(colors, func(c string) bool { return c != "" }) {
		return base
	}
	out := make([]string, max(len(base), len(colors)))
	for i := range out {
		if i < len(colors) && colors[i] != "" {
			out[i] = colors[i]
			continue
		}
		out[i] = pick(base, i)
	}
	return out
}

// RingColor returns the colour of the ring at index.
func (t Theme) RingColor(index int) string { return pick(t.rings, index) }

// DimensionColor returns the palette colour for the dimension at index.
func (t Theme) DimensionColor(index int) string { return pick(t.dimensions, index) }

// SectorTint returns one of two alternating sector background colours.
func (t Theme) SectorTint(index int) string { return t.tints[index&1] }

func pick(colors []string, i int) string {
	if len(colors) == 0 {
		return fallbackColor
	}
	if i < 0 || i >= len(colors) {
		return colors[0]
	}
	return colors[i]
}

// RGBA converts a "#rrggbb" colour into a CSS rgba() string.
// Unparsable input yields grey.
func RGBA(hex string, alpha float64) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		r, g, b = 128, 128, 128
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(alpha, 'f', -1, 64))
}

func parseHex(s string) (r, g, b uint8, ok bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}
