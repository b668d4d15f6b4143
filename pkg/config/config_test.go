package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/radar"
	"github.com/matzehuels/techradar/pkg/radar/layout"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "techradar.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Chart.Size != DefaultSize || cfg.Chart.Style != DefaultStyle {
		t.Errorf("Default() chart = %+v", cfg.Chart)
	}
	if cfg.Chart.Margin.Large != layout.DefaultMarginLarge || cfg.Chart.LabelOffset != layout.DefaultLabelOffset {
		t.Errorf("Default() margins = %+v", cfg.Chart.Margin)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadPartial(t *testing.T) {
	path := writeConfig(t, `
[chart]
size = 900
style = "tinted"

[chart.margin]
large = 100

[colors.rings]
hold = "#9d0208"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Chart.Size != 900 || cfg.Chart.Style != "tinted" {
		t.Errorf("chart = %+v", cfg.Chart)
	}
	if cfg.Chart.Margin.Large != 100 || cfg.Chart.Margin.Small != layout.DefaultMarginSmall {
		t.Errorf("margin = %+v, want large overridden and small kept", cfg.Chart.Margin)
	}
	if cfg.Chart.LabelOffset != layout.DefaultLabelOffset {
		t.Errorf("label offset = %v, want default", cfg.Chart.LabelOffset)
	}
	if got := cfg.Theme(nil).RingColor(3); got != "#9d0208" {
		t.Errorf("hold colour = %s", got)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.Code
	}{
		{"syntax", "[chart\nsize = 1", errors.ErrCodeInvalidConfig},
		{"unknown key", "[chart]\nwidth = 10", errors.ErrCodeInvalidConfig},
		{"negative size", "[chart]\nsize = -5", errors.ErrCodeInvalidConfig},
		{"zero size", "[chart]\nsize = 0", errors.ErrCodeInvalidConfig},
		{"bad ring", "[colors.rings]\nretire = \"#000000\"", errors.ErrCodeInvalidConfig},
		{"bad colour", "[colors]\ndimensions = [\"teal\"]", errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, tt.code) {
				t.Errorf("Load() error = %v, want code %s", err, tt.code)
			}
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v", err)
	}
}

func TestResolve(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, used, err := Resolve("")
	if err != nil || used != "" || cfg.Chart.Size != DefaultSize {
		t.Fatalf("Resolve(\"\") without file = %+v, %q, %v", cfg.Chart, used, err)
	}

	if err := os.WriteFile(DefaultFile, []byte("[chart]\nsize = 500\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, used, err = Resolve("")
	if err != nil || used != DefaultFile || cfg.Chart.Size != 500 {
		t.Errorf("Resolve(\"\") with file = %+v, %q, %v", cfg.Chart, used, err)
	}
}

func TestLayoutOptions(t *testing.T) {
	cfg := Default()
	cfg.Chart.Margin = Margin{Large: 50, Small: 10, Threshold: 300}
	cfg.Chart.LabelOffset = 0

	dims := []radar.Dimension{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	l := layout.Compute(dims, nil, 600, cfg.LayoutOptions()...)
	if l.Margin != 50 || l.MaxRadius != 250 {
		t.Errorf("margin = %v, max radius = %v", l.Margin, l.MaxRadius)
	}
}

func TestThemePrecedence(t *testing.T) {
	cat := &radar.Catalog{Rings: []radar.Ring{
		{ID: radar.Adopt, Color: "#111111"},
		{ID: radar.Trial, Color: "#222222"},
	}}
	cfg := Default()
	cfg.Colors.Rings = map[string]string{"trial": "#333333"}
	cfg.Colors.Dimensions = []string{"#abcdef"}

	th := cfg.Theme(cat)
	want := []string{"#111111", "#333333", "#bc6c25", "#d62828"}
	for i, w := range want {
		if got := th.RingColor(i); got != w {
			t.Errorf("RingColor(%d) = %s, want %s", i, got, w)
		}
	}
	if got := th.DimensionColor(0); got != "#abcdef" {
		t.Errorf("DimensionColor(0) = %s, want configured colour", got)
	}
	if got := th.DimensionColor(1); got != "#00b2a2" {
		t.Errorf("DimensionColor(1) = %s, want default palette", got)
	}
}
