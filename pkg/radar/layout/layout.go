package layout

import (
	"math"

	"github.com/matzehuels/techradar/pkg/radar"
)

// Default cosmetic constants.
const (
	DefaultMarginLarge     = 80.0
	DefaultMarginSmall     = 40.0
	DefaultMarginThreshold = 400.0
	DefaultLabelOffset     = 35.0
	DefaultReferenceSize   = 700.0
)

// Options holds the cosmetic constants of a layout. None of them affect where
// a technology lands relative to its ring and sector.
type Options struct {
	MarginLarge     float64 // margin when size > MarginThreshold
	MarginSmall     float64 // margin otherwise
	MarginThreshold float64
	LabelOffset     float64 // label distance beyond the outer ring at ReferenceSize
	ReferenceSize   float64 // below this size the label offset shrinks proportionally
}

// DefaultOptions returns the stock constants.
func DefaultOptions() Options {
	return Options{
		MarginLarge:     DefaultMarginLarge,
		MarginSmall:     DefaultMarginSmall,
		MarginThreshold: DefaultMarginThreshold,
		LabelOffset:     DefaultLabelOffset,
		ReferenceSize:   DefaultReferenceSize,
	}
}

// Option configures [Compute] and [Place].
type Option func(*Options)

// WithMargins sets the margin used above and below threshold.
func WithMargins(large, small, threshold float64) Option {
	return func(o *Options) {
		o.MarginLarge, o.MarginSmall, o.MarginThreshold = large, small, threshold
	}
}

// WithLabelOffset sets the full-size label offset in pixels.
func WithLabelOffset(px float64) Option {
	return func(o *Options) { o.LabelOffset = px }
}

// Margin returns the margin used for a chart of the given size.
func (o Options) Margin(size float64) float64 {
	if size > o.MarginThreshold {
		return o.MarginLarge
	}
	return o.MarginSmall
}

// labelOffset scales the offset down for charts smaller than the reference.
func (o Options) labelOffset(size float64) float64 {
	if o.ReferenceSize <= 0 || size >= o.ReferenceSize {
		return o.LabelOffset
	}
	return o.LabelOffset * size / o.ReferenceSize
}

// frame carries the derived chart constants shared by every computation of a
// single layout.
type frame struct {
	d           int
	size        float64
	margin      float64
	maxRadius   float64
	center      Point2
	step        float64
	labelOffset float64
}

func newFrame(d int, size float64, opts ...Option) frame {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	f := frame{d: d, size: size}
	if !(size > 0) || math.IsInf(size, 0) {
		return frame{d: d}
	}
	f.center = Point2{size / 2, size / 2}
	f.margin = o.Margin(size)
	f.maxRadius = size/2 - f.margin
	f.labelOffset = o.labelOffset(size)
	if d > 0 {
		f.step = sectorStep(d)
	}
	return f
}

// empty reports whether nothing can be drawn.
func (f frame) empty() bool {
	return f.d <= 0 || !(f.maxRadius > 0)
}

func (f frame) ringRadius(r int) float64 { return RingRadius(r, f.maxRadius) }

// RingRadius returns the outer radius of ring index r for the given maximum
// radius.
func RingRadius(r int, maxRadius float64) float64 {
	return float64(r+1) * maxRadius / radar.RingCount
}

// RingBoundary is the outline of one ring.
type RingBoundary struct {
	Ring    radar.RingID
	Index   int
	Radius  float64
	Polygon Polygon
}

// Sector is the wedge of one dimension, bounded by two consecutive vertices
// of the outer ring.
type Sector struct {
	Index      int
	Dimension  string
	Name       string
	StartAngle float64
	EndAngle   float64
	Center     Point2
	Start, End Point2
	Separator  Line // from the centre to Start
	Tinted     bool // odd sectors take the second background tint
}

// Triangle returns the sector's background triangle (centre, start, end).
func (s Sector) Triangle() Polygon {
	return Polygon{s.Center, s.Start, s.End}
}

// Text anchors for labels.
const (
	AnchorStart  = "start"
	AnchorMiddle = "middle"
	AnchorEnd    = "end"
)

// Label is the anchor of a dimension name.
type Label struct {
	Index      int
	Dimension  string
	Text       string
	X, Y       float64
	Angle      float64
	TextAnchor string
}

// LegendEntry is one ring in the legend. Entries are not placed on the chart.
type LegendEntry struct {
	Ring   radar.RingID
	Index  int
	Radius float64
}

// SkipReason explains why a technology has no position.
type SkipReason string

// Skip reasons.
const (
	SkipUnknownRing      SkipReason = "unknown ring"
	SkipUnknownDimension SkipReason = "unknown dimension"
	SkipNoDimensions     SkipReason = "no dimensions"
)

// Skip records a technology left out of the layout.
type Skip struct {
	ID     string
	Reason SkipReason
}

// Layout is the complete geometry of one chart.
type Layout struct {
	Size      float64
	Center    Point2
	Margin    float64
	MaxRadius float64
	Rings     []RingBoundary
	Sectors   []Sector
	Labels    []Label
	Legend    []LegendEntry
	Points    []Point
	Skipped   []Skip
}

// IsEmpty reports whether the layout has nothing to draw.
func (l Layout) IsEmpty() bool { return len(l.Rings) == 0 }

// Compute lays out dims and techs on a chart of the given pixel size.
// Points keep the order of techs; skipped technologies keep theirs too.
func Compute(dims []radar.Dimension, techs []radar.Technology, size float64, opts ...Option) Layout {
	f := newFrame(len(dims), size, opts...)
	l := Layout{
		Size:   f.size,
		Center: f.center,
		Margin: f.margin,
		Legend: legend(f),
	}

	if f.empty() {
		for _, t := range techs {
			l.Skipped = append(l.Skipped, Skip{ID: t.ID, Reason: SkipNoDimensions})
		}
		return l
	}

	l.MaxRadius = f.maxRadius
	l.Rings = rings(f)
	l.Sectors = sectors(f, dims)
	l.Labels = labels(f, dims)

	l.Points = make([]Point, 0, len(techs))
	for _, t := range techs {
		p, reason := f.place(dims, t)
		if reason != "" {
			l.Skipped = append(l.Skipped, Skip{ID: t.ID, Reason: reason})
			continue
		}
		l.Points = append(l.Points, p)
	}
	return l
}

func rings(f frame) []RingBoundary {
	out := make([]RingBoundary, radar.RingCount)
	for i, id := range radar.RingOrder {
		r := f.ringRadius(i)
		out[i] = RingBoundary{Ring: id, Index: i, Radius: r, Polygon: vertices(f.center, r, f.d)}
	}
	return out
}

func legend(f frame) []LegendEntry {
	out := make([]LegendEntry, radar.RingCount)
	for i, id := range radar.RingOrder {
		var r float64
		if !f.empty() {
			r = f.ringRadius(i)
		}
		out[i] = LegendEntry{Ring: id, Index: i, Radius: r}
	}
	return out
}

func sectors(f frame, dims []radar.Dimension) []Sector {
	outer := vertices(f.center, f.maxRadius, f.d)
	out := make([]Sector, len(dims))
	for i, d := range dims {
		start, end := outer[i], outer[(i+1)%len(outer)]
		out[i] = Sector{
			Index:      i,
			Dimension:  d.ID,
			Name:       d.Name,
			StartAngle: sectorAngle(i, f.step),
			EndAngle:   sectorAngle(i+1, f.step),
			Center:     f.center,
			Start:      start,
			End:        end,
			Separator:  Line{From: f.center, To: start},
			Tinted:     i%2 == 1,
		}
	}
	return out
}

func labels(f frame, dims []radar.Dimension) []Label {
	outer := vertices(f.center, f.maxRadius, f.d)
	out := make([]Label, len(dims))
	for i, d := range dims {
		mid := outer[i].Mid(outer[(i+1)%len(outer)])
		dist := mid.Dist(f.center)

		// Two sectors put the chord midpoint on the centre; fall back to the
		// sector's mid angle.
		angle := edgeMidAngle(i, f.step)
		if dist > 1e-9 {
			angle = math.Atan2(mid.Y-f.center.Y, mid.X-f.center.X)
		}
		pos := Polar(f.center, dist+f.labelOffset, angle)

		text := d.Name
		if text == "" {
			text = d.ID
		}
		out[i] = Label{
			Index:      i,
			Dimension:  d.ID,
			Text:       text,
			X:          pos.X,
			Y:          pos.Y,
			Angle:      angle,
			TextAnchor: textAnchor(pos.X-f.center.X, f.size),
		}
	}
	return out
}

func textAnchor(dx, size float64) string {
	switch tol := size * 0.01; {
	case dx > tol:
		return AnchorStart
	case dx < -tol:
		return AnchorEnd
	default:
		return AnchorMiddle
	}
}

// PointAt returns the point nearest to (x, y) within tolerance pixels.
func (l Layout) PointAt(x, y, tolerance float64) (Point, bool) {
	target := Point2{x, y}
	best, bestDist := -1, tolerance
	for i, p := range l.Points {
		if d := p.Pos().Dist(target); d <= bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Point{}, false
	}
	return l.Points[best], true
}

// PointFor returns the computed position of technology id.
func (l Layout) PointFor(id string) (Point, bool) {
	for _, p := range l.Points {
		if p.ID == id {
			return p, true
		}
	}
	return Point{}, false
}
