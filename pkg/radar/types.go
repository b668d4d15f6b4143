package radar

import "slices"

// RingID identifies one of the four adoption rings.
type RingID string

// Ring identifiers, innermost first.
const (
	Adopt  RingID = "adopt"
	Trial  RingID = "trial"
	Assess RingID = "assess"
	Hold   RingID = "hold"
)

// RingOrder is the fixed ring order. The index of a ring in this slice is its
// ring index: 0 is the innermost band.
var RingOrder = []RingID{Adopt, Trial, Assess, Hold}

// RingCount is the number of rings on every radar.
const RingCount = 4

// RingIndex returns the position of id in [RingOrder].
// Unknown ids return (-1, false).
func RingIndex(id RingID) (int, bool) {
	i := slices.Index(RingOrder, id)
	return i, i >= 0
}

// Ring describes how a ring is displayed.
type Ring struct {
	ID          RingID `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Color       string `json:"color" yaml:"color"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// DefaultRings returns the stock ring definitions in ring order.
func DefaultRings() []Ring {
	return []Ring{
		{ID: Adopt, Name: "Adopt", Color: "#588157"},
		{ID: Trial, Name: "Trial", Color: "#457b9d"},
		{ID: Assess, Name: "Assess", Color: "#bc6c25"},
		{ID: Hold, Name: "Hold", Color: "#d62828"},
	}
}

// Dimension is one sector of the radar.
type Dimension struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Color       string `json:"color,omitempty" yaml:"color,omitempty"`
}

// Technology is a single radar entry.
type Technology struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Ring        RingID   `json:"ring" yaml:"ring"`
	Dimension   string   `json:"dimension" yaml:"dimension"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	IsNew       bool     `json:"isNew,omitempty" yaml:"isNew,omitempty"`
	HasChanged  bool     `json:"hasChanged,omitempty" yaml:"hasChanged,omitempty"`
	URL         string   `json:"url,omitempty" yaml:"url,omitempty"`
	Rationale   string   `json:"rationale,omitempty" yaml:"rationale,omitempty"`

	// Scores rates the technology per dimension id on a 0-10 scale. A
	// dimension without an entry scores 0.
	Scores map[string]float64 `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`

	// Content is the markdown body of the technology's detail document.
	// It is passed through verbatim.
	Content string `json:"content,omitempty" yaml:"-"`
}

// HasTag reports whether t carries tag.
func (t Technology) HasTag(tag string) bool {
	return slices.Contains(t.Tags, tag)
}

// Label returns the display name, falling back to the id.
func (t Technology) Label() string {
	if t.Name != "" {
		return t.Name
	}
	return t.ID
}

// Score bounds.
const (
	MinScore = 0.0
	MaxScore = 10.0
)

// Score returns t's score in dimension, or 0 when it has none.
func (t Technology) Score(dimension string) float64 {
	return t.Scores[dimension]
}
