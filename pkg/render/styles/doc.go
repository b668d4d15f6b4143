// Package styles defines how radar elements are drawn into an SVG canvas.
//
// A [Style] receives flat, pre-coloured element descriptions ([Ring],
// [Sector], [Label], [Point], [Legend]) built by the sink from a computed
// layout and writes them with an [svg.SVG] canvas. Styles never compute
// geometry.
//
// # Available Styles
//
//   - [Simple]: outlined ring polygons, dashed sector separators, no fills.
//   - [Tinted]: alternating sector backgrounds, solid separators, labels in
//     the dimension palette.
//
// Use [Lookup] to resolve a style by name.
//
// [svg.SVG]: https://pkg.go.dev/github.com/ajstarks/svgo
package styles
