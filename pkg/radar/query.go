package radar

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Query selects technologies the way the overview table does. Zero fields
// match everything.
type Query struct {
	Search    string   // case-insensitive substring of the name or any tag
	Ring      RingID   // exact ring
	Dimension string   // exact dimension id
	Tags      []string // technology must carry at least one of these
}

// Match reports whether t satisfies q.
func (q Query) Match(t Technology) bool {
	if q.Ring != "" && t.Ring != q.Ring {
		return false
	}
	if q.Dimension != "" && t.Dimension != q.Dimension {
		return false
	}
	if len(q.Tags) > 0 && !slices.ContainsFunc(q.Tags, t.HasTag) {
		return false
	}
	return q.matchSearch(t)
}

func (q Query) matchSearch(t Technology) bool {
	if q.Search == "" {
		return true
	}
	term := strings.ToLower(q.Search)
	if strings.Contains(strings.ToLower(t.Name), term) {
		return true
	}
	return slices.ContainsFunc(t.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), term)
	})
}

// IsZero reports whether q matches every technology.
func (q Query) IsZero() bool {
	return q.Search == "" && q.Ring == "" && q.Dimension == "" && len(q.Tags) == 0
}

// Filter returns the technologies matching q, in catalog order.
func (c *Catalog) Filter(q Query) []Technology {
	return c.where(q.Match)
}

// SortKey names an ordering for technology lists.
type SortKey string

// Supported sort keys.
const (
	SortByName    SortKey = "name"
	SortByRing    SortKey = "ring"
	SortByNewest  SortKey = "newest"
	SortByChanged SortKey = "changed"
)

// ParseSortKey validates s. The empty string selects [SortByName].
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case "":
		return SortByName, nil
	case SortByName, SortByRing, SortByNewest, SortByChanged:
		return k, nil
	default:
		return "", fmt.Errorf("invalid sort key: %q (must be one of: name, ring, newest, changed)", s)
	}
}

// Sort returns a sorted copy of techs. Ties are broken by name.
// Technologies with an unknown ring sort after all known rings.
func Sort(techs []Technology, key SortKey) []Technology {
	out := slices.Clone(techs)
	slices.SortStableFunc(out, func(a, b Technology) int {
		var c int
		switch key {
		case SortByRing:
			c = cmp.Compare(ringRank(a.Ring), ringRank(b.Ring))
		case SortByNewest:
			c = -cmp.Compare(boolRank(a.IsNew), boolRank(b.IsNew))
		case SortByChanged:
			c = -cmp.Compare(boolRank(a.HasChanged), boolRank(b.HasChanged))
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(strings.ToLower(a.Label()), strings.ToLower(b.Label()))
	})
	return out
}

func ringRank(id RingID) int {
	if i, ok := RingIndex(id); ok {
		return i
	}
	return RingCount
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// RingGroup is the technologies of one ring within a dimension.
type RingGroup struct {
	Ring         Ring
	Technologies []Technology
}

// GroupByRing returns the technologies of techs that belong to dimension,
// grouped by ring in ring order. Within a group technologies are ordered by
// their score in dimension, highest first; equal scores keep input order.
// Rings with no technologies and technologies with an unknown ring are left
// out.
func (c *Catalog) GroupByRing(techs []Technology, dimension string) []RingGroup {
	var out []RingGroup
	for _, r := range c.RingList() {
		var group []Technology
		for _, t := range techs {
			if t.Dimension == dimension && t.Ring == r.ID {
				group = append(group, t)
			}
		}
		if len(group) == 0 {
			continue
		}
		slices.SortStableFunc(group, func(a, b Technology) int {
			return cmp.Compare(b.Score(dimension), a.Score(dimension))
		})
		out = append(out, RingGroup{Ring: r, Technologies: group})
	}
	return out
}
