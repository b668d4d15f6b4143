package catalog

import (
	"fmt"
	"maps"
	"slices"

	"github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/radar"
)

// Warning describes a catalog entry that will render badly or not at all.
type Warning struct {
	ID      string // technology or dimension id, empty for catalog-level issues
	Message string
}

func (w Warning) String() string {
	if w.ID == "" {
		return w.Message
	}
	return fmt.Sprintf("%s: %s", w.ID, w.Message)
}

// Check reports data problems in c without rejecting it. Items with an
// unknown ring or dimension are skipped by the layout; everything else still
// renders.
func Check(c *radar.Catalog) []Warning {
	var out []Warning
	warn := func(id, format string, args ...any) {
		out = append(out, Warning{ID: id, Message: fmt.Sprintf(format, args...)})
	}

	if len(c.Dimensions) == 0 {
		warn("", "catalog has no dimensions; nothing will be placed")
	}

	dims := make(map[string]bool, len(c.Dimensions))
	for _, d := range c.Dimensions {
		if d.ID == "" {
			warn("", "dimension %q has an empty id", d.Name)
			continue
		}
		if dims[d.ID] {
			warn(d.ID, "duplicate dimension id")
		}
		dims[d.ID] = true
	}

	for _, r := range c.Rings {
		if _, ok := radar.RingIndex(r.ID); !ok {
			warn(string(r.ID), "ring is not one of %v", radar.RingOrder)
		}
	}

	seen := make(map[string]bool, len(c.Technologies))
	for _, t := range c.Technologies {
		if t.ID == "" {
			warn("", "technology %q has an empty id", t.Name)
			continue
		}
		if seen[t.ID] {
			warn(t.ID, "duplicate technology id")
		}
		seen[t.ID] = true

		if _, ok := radar.RingIndex(t.Ring); !ok {
			warn(t.ID, "unknown ring %q; technology will not be placed", t.Ring)
		}
		if !dims[t.Dimension] {
			warn(t.ID, "unknown dimension %q; technology will not be placed", t.Dimension)
		}
		for _, dim := range slices.Sorted(maps.Keys(t.Scores)) {
			if !dims[dim] {
				warn(t.ID, "score for unknown dimension %q", dim)
			}
			if v := t.Scores[dim]; !(v >= radar.MinScore && v <= radar.MaxScore) {
				warn(t.ID, "score %v for %q outside %v-%v", v, dim, radar.MinScore, radar.MaxScore)
			}
		}
		if t.URL != "" {
			if err := errors.ValidateURL(t.URL); err != nil {
				warn(t.ID, "%s", errors.UserMessage(err))
			}
		}
	}
	return out
}
