package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/techradar/pkg/radar"
)

func testCatalog() *radar.Catalog {
	return &radar.Catalog{
		Title: "Team Radar",
		Dimensions: []radar.Dimension{
			{ID: "lang", Name: "Languages"},
			{ID: "tools", Name: "Tools"},
		},
		Technologies: []radar.Technology{
			{ID: "go", Name: "Go", Ring: radar.Adopt, Dimension: "lang", Tags: []string{"backend"}, URL: "https://go.dev", IsNew: true},
			{ID: "make", Name: "Make", Ring: radar.Hold, Dimension: "tools", HasChanged: true},
			{ID: "cobol", Name: "COBOL", Ring: radar.Hold, Dimension: "mainframe"},
		},
	}
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(testCatalog(), Options{})

	for _, want := range []string{
		"digraph G",
		`"radar" [label="Team Radar"`,
		`"radar" -> "dim:lang"`,
		`"dim:lang" -> "tech:go"`,
		`"dim:tools" -> "tech:make"`,
		`"tech:go" [label="Go"`,
		`fillcolor="#588157"`,
		`URL="https://go.dev"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, `-> "tech:cobol"`) {
		t.Error("technology with unknown dimension should not be connected")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(testCatalog(), Options{Detailed: true})

	if !strings.Contains(dot, `ring: Adopt`) {
		t.Error("ToDOT() detailed output missing ring name")
	}
	if !strings.Contains(dot, `tags: backend`) {
		t.Error("ToDOT() detailed output missing tags")
	}
}

func TestToDOT_Theme(t *testing.T) {
	th := radar.DefaultTheme().WithRings([]string{"#123456"})
	dot := ToDOT(testCatalog(), Options{Theme: &th})
	if !strings.Contains(dot, `fillcolor="#123456"`) {
		t.Error("ToDOT() ignored the theme")
	}
}

func TestToDOT_Untitled(t *testing.T) {
	dot := ToDOT(&radar.Catalog{}, Options{})
	if !strings.Contains(dot, `label="Technology Radar"`) {
		t.Errorf("ToDOT() empty catalog should use a default title:\n%s", dot)
	}
}

func TestFmtAttrs_Unplaced(t *testing.T) {
	c := testCatalog()
	attrs := strings.Join(fmtAttrs(c.Technologies[2], c, radar.DefaultTheme(), false), ", ")
	if !strings.Contains(attrs, "dashed") || !strings.Contains(attrs, unknownFill) {
		t.Errorf("unplaced technology attrs = %s", attrs)
	}
}

func TestFmtAttrs_Badges(t *testing.T) {
	c := testCatalog()
	th := radar.DefaultTheme()

	if attrs := strings.Join(fmtAttrs(c.Technologies[0], c, th, false), ", "); !strings.Contains(attrs, "#28a745") {
		t.Errorf("new technology should get a green border: %s", attrs)
	}
	if attrs := strings.Join(fmtAttrs(c.Technologies[1], c, th, false), ", "); !strings.Contains(attrs, "#ffc107") {
		t.Errorf("changed technology should get an amber border: %s", attrs)
	}
}

func TestFmtLabel(t *testing.T) {
	c := testCatalog()
	if got := fmtLabel(radar.Technology{ID: "x"}, c, false); got != "x" {
		t.Errorf("fmtLabel() = %q, want id fallback", got)
	}
	want := "Go\nring: Adopt\ntags: backend"
	if got := fmtLabel(c.Technologies[0], c, true); got != want {
		t.Errorf("fmtLabel() detailed = %q, want %q", got, want)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00" width="100" height="50"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
	if !strings.Contains(out, "xmlns:xlink") {
		t.Error("normalizeViewBox() dropped the xlink namespace")
	}

	plain := []byte("<svg></svg>")
	if string(normalizeViewBox(plain)) != "<svg></svg>" {
		t.Error("normalizeViewBox() changed an svg without viewBox")
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(ToDOT(testCatalog(), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output is not SVG")
	}
}
