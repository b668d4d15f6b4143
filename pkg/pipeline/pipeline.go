// Package pipeline provides the load → layout → render pipeline of techradar.
//
// Every CLI command that draws or exports a radar runs through this package,
// so flags, config defaults and validation behave the same everywhere.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read the catalog (JSON or YAML) and merge optional detail documents
//  2. Layout: Filter the technologies and compute the radial geometry
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON, DOT)
//
// Filtering happens before layout, so a filtered chart contains only the
// selected technologies while every sector is still drawn.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    CatalogPath: "radar.json",
//	    Formats:     []string{"svg"},
//	    Query:       radar.Query{Ring: radar.Adopt},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Stages can also be run one at a time with [Load], [ComputeLayout] and
// [Render].
package pipeline

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/techradar/pkg/catalog"
	"github.com/matzehuels/techradar/pkg/config"
	"github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/radar"
	"github.com/matzehuels/techradar/pkg/radar/layout"
	"github.com/matzehuels/techradar/pkg/render/styles"
)

// Visualization types.
const (
	VizTypeRadar    = "radar"
	VizTypeNodelink = "nodelink"
)

// DefaultVizType is the default visualization type.
const DefaultVizType = VizTypeRadar

// DefaultScale is the PNG scale factor.
const DefaultScale = 2.0

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypeRadar:    true,
	VizTypeNodelink: true,
}

// Options contains all configuration for the pipeline.
type Options struct {
	// Load options
	CatalogPath string `json:"catalog_path,omitempty"`
	DetailsDir  string `json:"details_dir,omitempty"`

	// Filter options
	Query radar.Query `json:"-"`

	// Layout options
	VizType string  `json:"viz_type,omitempty"`
	Size    float64 `json:"size,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Style    string   `json:"style,omitempty"`
	Title    string   `json:"title,omitempty"` // overrides the catalog title
	Tooltips bool     `json:"tooltips,omitempty"`
	NoLegend bool     `json:"no_legend,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // nodelink: ring and tags in labels
	Scale    float64  `json:"scale,omitempty"`

	// Runtime options (not serialized)
	Catalog *radar.Catalog `json:"-"` // preloaded catalog; CatalogPath is then only a label
	Config  *config.Config `json:"-"`
	Logger  *log.Logger    `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Catalog is the loaded catalog, details merged.
	Catalog *radar.Catalog

	// Warnings lists data problems found while loading. They never fail a run.
	Warnings []catalog.Warning

	// Technologies is the filtered selection that was laid out.
	Technologies []radar.Technology

	// Layout is the radar geometry. It is empty for nodelink runs.
	Layout layout.Layout

	// DOT is the Graphviz source of a nodelink run.
	DOT string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	DimensionCount  int
	TechnologyCount int
	SelectedCount   int
	PlacedCount     int
	SkippedCount    int
	LoadTime        time.Duration
	LayoutTime      time.Duration
	RenderTime      time.Duration
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !styles.Valid(style) {
		return errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %q (must be one of: %s)", style, strings.Join(styles.Names, ", "))
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid viz_type: %q (must be one of: radar, nodelink)", vizType)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading.
func (o *Options) ValidateForLoad() error {
	if o.Catalog == nil && o.CatalogPath == "" {
		return errors.New(errors.ErrCodeInvalidInput, "catalog path is required")
	}
	if o.Query.Ring != "" {
		if _, ok := radar.RingIndex(o.Query.Ring); !ok {
			return errors.New(errors.ErrCodeInvalidInput,
				"invalid ring: %q (must be one of: %v)", o.Query.Ring, radar.RingOrder)
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
// Explicit options win over the config, which wins over built-in defaults.
func (o *Options) SetLayoutDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if o.Config == nil {
		cfg := config.Default()
		o.Config = &cfg
	}
	if o.Size == 0 {
		o.Size = o.Config.Chart.Size
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if o.Size < 0 || math.IsNaN(o.Size) || math.IsInf(o.Size, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "invalid size: %v", o.Size)
	}
	return ValidateVizType(o.VizType)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Config == nil {
		cfg := config.Default()
		o.Config = &cfg
	}
	if o.Style == "" {
		o.Style = o.Config.Chart.Style
	}
	if o.Style == "" {
		o.Style = config.DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.IsRadar() && slices.Contains(o.Formats, FormatDOT) {
		return errors.New(errors.ErrCodeInvalidFormat, "format %q requires viz_type %q", FormatDOT, VizTypeNodelink)
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "invalid scale: %v", o.Scale)
	}
	return ValidateStyle(o.Style)
}

// IsRadar returns true if this is a radar visualization.
func (o *Options) IsRadar() bool {
	return o.VizType == "" || o.VizType == VizTypeRadar
}

// IsNodelink returns true if this is a nodelink visualization.
func (o *Options) IsNodelink() bool {
	return o.VizType == VizTypeNodelink
}

// Source names where the catalog comes from, for logs and hooks.
func (o *Options) Source() string {
	if o.CatalogPath != "" {
		return o.CatalogPath
	}
	return "memory"
}

func (o *Options) String() string {
	return fmt.Sprintf("%s viz=%s size=%v formats=%v", o.Source(), o.VizType, o.Size, o.Formats)
}
