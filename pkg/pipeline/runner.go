package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/techradar/pkg/observability"
)

// Runner executes the pipeline and reports each stage to the logger and the
// registered [observability.PipelineHooks].
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	hooks := observability.Pipeline()
	r.Logger.Debug("starting pipeline", "options", opts.String())

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	hooks.OnLoadStart(ctx, opts.Source())
	c, warnings, err := Load(ctx, opts)
	result.Stats.LoadTime = time.Since(loadStart)
	if err != nil {
		hooks.OnLoadComplete(ctx, opts.Source(), 0, result.Stats.LoadTime, err)
		return nil, fmt.Errorf("load: %w", err)
	}
	hooks.OnLoadComplete(ctx, opts.Source(), len(c.Technologies), result.Stats.LoadTime, nil)
	result.Catalog = c
	result.Warnings = warnings
	result.Stats.DimensionCount = len(c.Dimensions)
	result.Stats.TechnologyCount = len(c.Technologies)

	r.Logger.Info("loaded catalog",
		"source", opts.Source(),
		"dimensions", len(c.Dimensions),
		"technologies", len(c.Technologies),
		"duration", result.Stats.LoadTime)
	for _, w := range warnings {
		r.Logger.Warn(w.Message, "id", w.ID)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Filter + layout
	techs := Select(c, opts)
	result.Technologies = techs
	result.Stats.SelectedCount = len(techs)
	if !opts.Query.IsZero() {
		r.Logger.Debug("filtered technologies", "selected", len(techs), "of", len(c.Technologies))
	}

	layoutStart := time.Now()
	hooks.OnLayoutStart(ctx, len(c.Dimensions), len(techs))
	if opts.IsNodelink() {
		dot, err := GenerateDOT(c, techs, opts)
		if err != nil {
			return nil, fmt.Errorf("layout: %w", err)
		}
		result.DOT = dot
		result.Stats.PlacedCount = len(techs)
	} else {
		l, err := ComputeLayout(c, techs, opts)
		if err != nil {
			return nil, fmt.Errorf("layout: %w", err)
		}
		result.Layout = l
		result.Stats.PlacedCount = len(l.Points)
		result.Stats.SkippedCount = len(l.Skipped)
		for _, s := range l.Skipped {
			r.Logger.Debug("technology not placed", "id", s.ID, "reason", s.Reason)
		}
	}
	result.Stats.LayoutTime = time.Since(layoutStart)
	hooks.OnLayoutComplete(ctx, result.Stats.PlacedCount, result.Stats.SkippedCount, result.Stats.LayoutTime)

	r.Logger.Info("computed layout",
		"viz", opts.VizType,
		"placed", result.Stats.PlacedCount,
		"skipped", result.Stats.SkippedCount,
		"duration", result.Stats.LayoutTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)
	var artifacts map[string][]byte
	if opts.IsNodelink() {
		artifacts, err = RenderNodelink(c, techs, result.DOT, opts)
	} else {
		artifacts, err = Render(c, result.Layout, opts)
	}
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
