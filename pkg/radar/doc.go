// Package radar defines the technology radar data model.
//
// # Overview
//
// A radar is a catalog of technologies, each assigned to one of four fixed
// adoption rings and to one of an ordered list of dimensions:
//
//   - [Ring]: adopt, trial, assess, hold (innermost to outermost)
//   - [Dimension]: a named sector of the chart; order is angular order
//   - [Technology]: an entry that references a ring and a dimension by id
//   - [Catalog]: the whole document as supplied by the catalog source
//
// References are not validated here. A technology pointing at an unknown ring
// or dimension is still a valid [Technology]; the layout engine in
// [github.com/matzehuels/techradar/pkg/radar/layout] simply leaves it out.
//
// # Queries
//
// [Catalog] offers the lookups the views need: by id, by ring, by tag, and
// the overview-style [Catalog.Filter] plus [Sort].
//
//	q := radar.Query{Search: "react", Ring: radar.Adopt}
//	techs := radar.Sort(c.Filter(q), radar.SortByName)
//
// # Theme
//
// [Theme] is a read-only colour lookup table keyed by ring and dimension
// index. [DefaultTheme] returns the stock palette.
package radar
