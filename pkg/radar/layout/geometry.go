package layout

import (
	"math"
	"strconv"
	"strings"
)

// Point2 is a position in chart coordinates (pixels, y grows downward).
type Point2 struct {
	X, Y float64
}

// Dist returns the euclidean distance between p and q.
func (p Point2) Dist(q Point2) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Mid returns the midpoint of p and q.
func (p Point2) Mid(q Point2) Point2 { return Point2{(p.X + q.X) / 2, (p.Y + q.Y) / 2} }

// Polar returns the point at radius r and angle a around c.
func Polar(c Point2, r, a float64) Point2 {
	return Point2{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
}

// Polygon is an ordered vertex list. It is implicitly closed.
type Polygon []Point2

// Path returns an SVG path that visits every vertex and closes back to the
// first one. An empty polygon yields "".
func (p Polygon) Path() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for i, v := range p {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(fmtFloat(v.X))
		b.WriteByte(' ')
		b.WriteString(fmtFloat(v.Y))
	}
	b.WriteString(" Z")
	return b.String()
}

// Closed returns the vertices with the first vertex repeated at the end.
func (p Polygon) Closed() []Point2 {
	if len(p) == 0 {
		return nil
	}
	out := make([]Point2, 0, len(p)+1)
	out = append(out, p...)
	return append(out, p[0])
}

// Line is a straight segment.
type Line struct {
	From, To Point2
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// sectorStep returns the angular width of one of d sectors.
func sectorStep(d int) float64 { return 2 * math.Pi / float64(d) }

// sectorAngle is the start angle of sector i, rotated so 0 is straight up.
func sectorAngle(i int, step float64) float64 { return float64(i)*step - math.Pi/2 }

// edgeMidAngle is the angle halfway between the two boundary lines of sector i.
func edgeMidAngle(i int, step float64) float64 { return (float64(i)+0.5)*step - math.Pi/2 }

// vertices returns the d polygon vertices at radius r around c.
func vertices(c Point2, r float64, d int) Polygon {
	if d <= 0 {
		return nil
	}
	step := sectorStep(d)
	p := make(Polygon, d)
	for i := range p {
		p[i] = Polar(c, r, sectorAngle(i, step))
	}
	return p
}

// normAngle maps a into [0, 2π) measured clockwise from 12 o'clock.
func normAngle(a float64) float64 {
	a = math.Mod(a+math.Pi/2, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
