package radar

import (
	"slices"
)

// Catalog is a complete radar document.
type Catalog struct {
	Title        string       `json:"title,omitempty" yaml:"title,omitempty"`
	Version      string       `json:"version,omitempty" yaml:"version,omitempty"`
	Description  string       `json:"description,omitempty" yaml:"description,omitempty"`
	Dimensions   []Dimension  `json:"dimensions" yaml:"dimensions"`
	Rings        []Ring       `json:"rings,omitempty" yaml:"rings,omitempty"`
	Technologies []Technology `json:"technologies" yaml:"technologies"`
}

// Technology returns the first technology with the given id.
func (c *Catalog) Technology(id string) (Technology, bool) {
	i := slices.IndexFunc(c.Technologies, func(t Technology) bool { return t.ID == id })
	if i < 0 {
		return Technology{}, false
	}
	return c.Technologies[i], true
}

// Dimension returns the dimension with the given id.
func (c *Catalog) Dimension(id string) (Dimension, bool) {
	i, ok := c.DimensionIndex(id)
	if !ok {
		return Dimension{}, false
	}
	return c.Dimensions[i], true
}

// DimensionIndex returns the angular position of dimension id.
func (c *Catalog) DimensionIndex(id string) (int, bool) {
	return DimensionIndex(c.Dimensions, id)
}

// DimensionIndex returns the position of id within dims, or (-1, false).
func DimensionIndex(dims []Dimension, id string) (int, bool) {
	i := slices.IndexFunc(dims, func(d Dimension) bool { return d.ID == id })
	return i, i >= 0
}

// Ring returns the display definition for id. Rings missing from the catalog
// fall back to [DefaultRings].
func (c *Catalog) Ring(id RingID) (Ring, bool) {
	for _, r := range c.Rings {
		if r.ID == id {
			return r, true
		}
	}
	for _, r := range DefaultRings() {
		if r.ID == id {
			return r, true
		}
	}
	return Ring{}, false
}

// RingList returns the four rings in ring order, taking display data from the
// catalog where present.
func (c *Catalog) RingList() []Ring {
	out := make([]Ring, 0, RingCount)
	for _, id := range RingOrder {
		r, _ := c.Ring(id)
		out = append(out, r)
	}
	return out
}

// ByRing returns the technologies assigned to ring, in catalog order.
func (c *Catalog) ByRing(ring RingID) []Technology {
	return c.where(func(t Technology) bool { return t.Ring == ring })
}

// ByDimension returns the technologies assigned to dimension id.
func (c *Catalog) ByDimension(id string) []Technology {
	return c.where(func(t Technology) bool { return t.Dimension == id })
}

// ByTag returns the technologies carrying tag.
func (c *Catalog) ByTag(tag string) []Technology {
	return c.where(func(t Technology) bool { return t.HasTag(tag) })
}

// Tags returns every tag used in the catalog, sorted and deduplicated.
func (c *Catalog) Tags() []string {
	var tags []string
	for _, t := range c.Technologies {
		tags = append(tags, t.Tags...)
	}
	slices.Sort(tags)
	return slices.Compact(tags)
}

func (c *Catalog) where(keep func(Technology) bool) []Technology {
	var out []Technology
	for _, t := range c.Technologies {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
