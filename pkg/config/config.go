// Package config loads the cosmetic settings of techradar from TOML.
//
// Every setting is optional. Values missing from the file keep their
// defaults, and command-line flags override the file:
//
//	[chart]
//	size = 900
//	style = "tinted"
//	label_offset = 40
//
//	[chart.margin]
//	large = 80
//	small = 40
//	threshold = 400
//
//	[colors]
//	dimensions = ["#00f4cb", "#00b2a2", "#0f878a"]
//
//	[colors.rings]
//	adopt = "#2d6a4f"
//	hold = "#9d0208"
//
// None of these settings move a technology relative to its ring and sector.
package config

import (
	"fmt"
	"math"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/radar"
	"github.com/matzehuels/techradar/pkg/radar/layout"
)

// DefaultFile is the config file picked up from the working directory when
// no --config flag is given.
const DefaultFile = "techradar.toml"

// Defaults for chart settings that the layout package does not own.
const (
	DefaultSize  = 700.0
	DefaultStyle = "simple"
)

// Config is the decoded configuration file.
type Config struct {
	Chart  Chart  `toml:"chart"`
	Colors Colors `toml:"colors"`
}

// Chart holds chart geometry settings.
type Chart struct {
	Size        float64 `toml:"size"`
	Style       string  `toml:"style"`
	LabelOffset float64 `toml:"label_offset"`
	Margin      Margin  `toml:"margin"`
}

// Margin selects the chart margin by size.
type Margin struct {
	Large     float64 `toml:"large"`
	Small     float64 `toml:"small"`
	Threshold float64 `toml:"threshold"`
}

// Colors overrides the theme. Ring colours set here win over the catalog's.
type Colors struct {
	Rings      map[string]string `toml:"rings"`
	Dimensions []string          `toml:"dimensions"`
}

// Default returns the built-in configuration.
func Default() Config {
	o := layout.DefaultOptions()
	return Config{
		Chart: Chart{
			Size:        DefaultSize,
			Style:       DefaultStyle,
			LabelOffset: o.LabelOffset,
			Margin: Margin{
				Large:     o.MarginLarge,
				Small:     o.MarginSmall,
				Threshold: o.MarginThreshold,
			},
		},
	}
}

// Load reads the file at path on top of [Default] and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", path, keys[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads path when given. Otherwise it loads [DefaultFile] if one
// exists in the working directory and falls back to [Default]. The returned
// string names the file that was read, or is empty.
func Resolve(path string) (Config, string, error) {
	if path != "" {
		cfg, err := Load(path)
		return cfg, path, err
	}
	if _, err := os.Stat(DefaultFile); err != nil {
		return Default(), "", nil
	}
	cfg, err := Load(DefaultFile)
	return cfg, DefaultFile, err
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate rejects settings that cannot produce a chart.
func (c Config) Validate() error {
	ch := c.Chart
	for name, v := range map[string]float64{
		"chart.size":             ch.Size,
		"chart.label_offset":     ch.LabelOffset,
		"chart.margin.large":     ch.Margin.Large,
		"chart.margin.small":     ch.Margin.Small,
		"chart.margin.threshold": ch.Margin.Threshold,
	} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be a non-negative number, got %v", name, v)
		}
	}
	if ch.Size == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "chart.size must be positive")
	}

	for id, color := range c.Colors.Rings {
		if _, ok := radar.RingIndex(radar.RingID(id)); !ok {
			return errors.New(errors.ErrCodeInvalidConfig, "colors.rings: unknown ring %q", id)
		}
		if !hexColor.MatchString(color) {
			return errors.New(errors.ErrCodeInvalidConfig, "colors.rings.%s: %q is not a #rrggbb colour", id, color)
		}
	}
	for i, color := range c.Colors.Dimensions {
		if !hexColor.MatchString(color) {
			return errors.New(errors.ErrCodeInvalidConfig, "colors.dimensions[%d]: %q is not a #rrggbb colour", i, color)
		}
	}
	return nil
}

// LayoutOptions converts the chart settings to layout options.
func (c Config) LayoutOptions() []layout.Option {
	m := c.Chart.Margin
	return []layout.Option{
		layout.WithMargins(m.Large, m.Small, m.Threshold),
		layout.WithLabelOffset(c.Chart.LabelOffset),
	}
}

// Theme returns the colour table for cat. Colours set in the config win over
// the catalog's, which win over the defaults.
func (c Config) Theme(cat *radar.Catalog) radar.Theme {
	th := radar.DefaultTheme()
	if cat != nil {
		th = radar.ThemeFor(cat)
	}
	rings := make([]string, len(radar.RingOrder))
	for i, id := range radar.RingOrder {
		rings[i] = c.Colors.Rings[string(id)]
	}
	return th.WithRings(rings).WithDimensions(c.Colors.Dimensions)
}
