package layout

import (
	"math"

	"github.com/matzehuels/techradar/pkg/radar"
)

const (
	angularSpread = 0.6 // share of the sector width used for jitter
	radialFloor   = 0.7 // innermost share of a ring's outer radius
	radialSpan    = 0.3
)

// Seed derives the placement seed of a technology from its id: the sum of its
// character codes. It depends on nothing but the id.
func Seed(id string) int {
	s := 0
	for _, r := range id {
		s += int(r)
	}
	return s
}

// Jitter returns the angular and radial jitter fractions for seed.
// The angular fraction lies in [-0.5, 0.5), the radial one in [0, 1).
func Jitter(seed int) (angular, radial float64) {
	angular = float64(mod(seed, 200))/200 - 0.5
	radial = float64(mod(seed, 100)) / 100
	return angular, radial
}

func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// Point is the computed position of a technology.
type Point struct {
	ID             string
	Name           string
	Ring           radar.RingID
	RingIndex      int
	Dimension      string
	DimensionIndex int
	X              float64
	Y              float64
	Radius         float64
	Angle          float64
	IsNew          bool
	HasChanged     bool
	URL            string
}

// Pos returns the point's coordinates.
func (p Point) Pos() Point2 { return Point2{p.X, p.Y} }

// Place positions a single technology on a chart of the given size.
// It reports false when the ring or dimension cannot be resolved or when the
// chart is degenerate.
func Place(dims []radar.Dimension, t radar.Technology, size float64, opts ...Option) (Point, bool) {
	f := newFrame(len(dims), size, opts...)
	p, reason := f.place(dims, t)
	return p, reason == ""
}

func (f frame) place(dims []radar.Dimension, t radar.Technology) (Point, SkipReason) {
	if f.empty() {
		return Point{}, SkipNoDimensions
	}
	ringIdx, ok := radar.RingIndex(t.Ring)
	if !ok {
		return Point{}, SkipUnknownRing
	}
	dimIdx, ok := radar.DimensionIndex(dims, t.Dimension)
	if !ok {
		return Point{}, SkipUnknownDimension
	}

	aj, rj := Jitter(Seed(t.ID))
	angle := edgeMidAngle(dimIdx, f.step) + aj*angularSpread*f.step
	radius := f.ringRadius(ringIdx) * (radialFloor + rj*radialSpan)
	pos := Polar(f.center, radius, angle)

	return Point{
		ID:             t.ID,
		Name:           t.Label(),
		Ring:           t.Ring,
		RingIndex:      ringIdx,
		Dimension:      t.Dimension,
		DimensionIndex: dimIdx,
		X:              pos.X,
		Y:              pos.Y,
		Radius:         radius,
		Angle:          angle,
		IsNew:          t.IsNew,
		HasChanged:     t.HasChanged,
		URL:            t.URL,
	}, ""
}

// InSector reports whether p's angle lies inside the wedge of sector i out of
// d sectors.
func InSector(p Point, i, d int) bool {
	if d <= 0 || i < 0 || i >= d {
		return false
	}
	step := sectorStep(d)
	a := normAngle(p.Angle)
	lo := float64(i) * step
	return a >= lo && a < lo+step || math.Abs(a-lo) < 1e-9
}
