package sink

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/matzehuels/techradar/pkg/radar/layout"
)

// pointNamespace scopes the name-based point UUIDs.
var pointNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/matzehuels/techradar/point"))

// PointUUID returns the stable key of the technology with the given id.
func PointUUID(id string) uuid.UUID {
	return uuid.NewSHA1(pointNamespace, []byte(id))
}

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	title string
	style string
}

// WithJSONTitle records the catalog title in the output.
func WithJSONTitle(s string) JSONOption { return func(r *jsonRenderer) { r.title = s } }

// WithJSONStyle records the style name (e.g., "simple", "tinted") in the
// output for documentation or re-rendering.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

type jsonOutput struct {
	Title     string        `json:"title,omitempty"`
	Style     string        `json:"style,omitempty"`
	Size      float64       `json:"size"`
	Center    jsonXY        `json:"center"`
	Margin    float64       `json:"margin"`
	MaxRadius float64       `json:"max_radius"`
	Rings     []jsonRing    `json:"rings"`
	Sectors   []jsonSector  `json:"sectors"`
	Labels    []jsonLabel   `json:"labels"`
	Legend    []jsonLegend  `json:"legend"`
	Points    []jsonPoint   `json:"points"`
	Skipped   []jsonSkipped `json:"skipped,omitempty"`
}

type jsonXY struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonRing struct {
	Ring   string  `json:"ring"`
	Index  int     `json:"index"`
	Radius float64 `json:"radius"`
	Path   string  `json:"path"`
}

type jsonSector struct {
	Dimension  string  `json:"dimension"`
	Name       string  `json:"name,omitempty"`
	Index      int     `json:"index"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
	Start      jsonXY  `json:"start"`
	End        jsonXY  `json:"end"`
	Tinted     bool    `json:"tinted,omitempty"`
}

type jsonLabel struct {
	Dimension  string  `json:"dimension"`
	Text       string  `json:"text"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	TextAnchor string  `json:"text_anchor"`
}

type jsonLegend struct {
	Ring   string  `json:"ring"`
	Index  int     `json:"index"`
	Radius float64 `json:"radius"`
}

type jsonPoint struct {
	UUID       string  `json:"uuid"`
	ID         string  `json:"id"`
	Name       string  `json:"name,omitempty"`
	Ring       string  `json:"ring"`
	Dimension  string  `json:"dimension"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Radius     float64 `json:"radius"`
	Angle      float64 `json:"angle"`
	IsNew      bool    `json:"is_new,omitempty"`
	HasChanged bool    `json:"has_changed,omitempty"`
	URL        string  `json:"url,omitempty"`
}

type jsonSkipped struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// RenderJSON exports the computed geometry as a pretty-printed JSON document.
//
// Arrays are never null: an empty layout produces empty arrays so consumers
// can iterate without checks. RenderJSON does not modify l.
func RenderJSON(l layout.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Title:     r.title,
		Style:     r.style,
		Size:      l.Size,
		Center:    xy(l.Center),
		Margin:    l.Margin,
		MaxRadius: l.MaxRadius,
		Rings:     make([]jsonRing, 0, len(l.Rings)),
		Sectors:   make([]jsonSector, 0, len(l.Sectors)),
		Labels:    make([]jsonLabel, 0, len(l.Labels)),
		Legend:    make([]jsonLegend, 0, len(l.Legend)),
		Points:    make([]jsonPoint, 0, len(l.Points)),
	}

	for _, rb := range l.Rings {
		out.Rings = append(out.Rings, jsonRing{
			Ring: string(rb.Ring), Index: rb.Index, Radius: rb.Radius, Path: rb.Polygon.Path(),
		})
	}
	for _, s := range l.Sectors {
		out.Sectors = append(out.Sectors, jsonSector{
			Dimension:  s.Dimension,
			Name:       s.Name,
			Index:      s.Index,
			StartAngle: s.StartAngle,
			EndAngle:   s.EndAngle,
			Start:      xy(s.Start),
			End:        xy(s.End),
			Tinted:     s.Tinted,
		})
	}
	for _, lb := range l.Labels {
		out.Labels = append(out.Labels, jsonLabel{
			Dimension: lb.Dimension, Text: lb.Text, X: lb.X, Y: lb.Y, TextAnchor: lb.TextAnchor,
		})
	}
	for _, e := range l.Legend {
		out.Legend = append(out.Legend, jsonLegend{Ring: string(e.Ring), Index: e.Index, Radius: e.Radius})
	}
	for _, p := range l.Points {
		out.Points = append(out.Points, jsonPoint{
			UUID:       PointUUID(p.ID).String(),
			ID:         p.ID,
			Name:       p.Name,
			Ring:       string(p.Ring),
			Dimension:  p.Dimension,
			X:          p.X,
			Y:          p.Y,
			Radius:     p.Radius,
			Angle:      p.Angle,
			IsNew:      p.IsNew,
			HasChanged: p.HasChanged,
			URL:        p.URL,
		})
	}
	for _, s := range l.Skipped {
		out.Skipped = append(out.Skipped, jsonSkipped{ID: s.ID, Reason: string(s.Reason)})
	}

	return json.MarshalIndent(out, "", "  ")
}

func xy(p layout.Point2) jsonXY { return jsonXY{X: p.X, Y: p.Y} }
