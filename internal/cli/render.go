package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/techradar/pkg/pipeline"
)

// stdoutPath selects standard output as the render target.
const stdoutPath = "-"

// renderCommand creates the render command for generating chart files.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		filter     filterFlags
		source     sourceFlags
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [catalog]",
		Short: "Render a catalog as a radar chart",
		Long: `Render a catalog as a radar chart.

The catalog is a JSON or YAML file with dimensions and technologies. Each
technology is placed in the sector of its dimension and the band of its ring.
Technologies with an unknown ring or dimension are left out and reported.

Formats: svg (default), png, pdf, json (chart geometry). With -t nodelink the
catalog is drawn as a Graphviz tree instead and dot is also available.

PNG and PDF output require rsvg-convert (librsvg).`,
		Example: `  techradar render radar.json
  techradar render radar.yaml -f svg,png --style tinted --tooltips
  techradar render radar.json --ring adopt -o adopt.svg
  techradar render radar.json -t nodelink -f dot -o -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			opts.CatalogPath = args[0]
			opts.DetailsDir = source.details
			opts.Query = filter.query()
			return c.runRender(cmd.Context(), opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format), base path (multiple), or - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot (comma-separated)")
	cmd.Flags().StringVarP(&opts.VizType, "type", "t", "", "visualization type: radar (default), nodelink")
	cmd.Flags().Float64Var(&opts.Size, "size", 0, "chart size in pixels (default from config, 700)")
	cmd.Flags().StringVar(&opts.Style, "style", "", "visual style: simple (default), tinted")
	cmd.Flags().StringVar(&opts.Title, "title", "", "chart title (default: catalog title)")
	cmd.Flags().BoolVar(&opts.Tooltips, "tooltips", false, "show technology details on hover (svg)")
	cmd.Flags().BoolVar(&opts.NoLegend, "no-legend", false, "omit the ring legend")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "show ring and tags in node labels (nodelink)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "PNG scale factor (default 2)")
	filter.register(cmd)
	source.register(cmd)

	return cmd
}

// runRender executes the pipeline and writes every artifact.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	opts.Config = cfg
	opts.Logger = c.Logger

	if output == stdoutPath && len(opts.Formats) > 1 {
		return fmt.Errorf("cannot write %d formats to stdout", len(opts.Formats))
	}

	prog := newProgress(c.Logger)
	var spinner *Spinner
	if slices.Contains(opts.Formats, pipeline.FormatPNG) || slices.Contains(opts.Formats, pipeline.FormatPDF) {
		spinner = newSpinner(ctx, "Converting...")
		spinner.Start()
	}

	result, err := c.newRunner().Execute(ctx, opts)
	if spinner != nil {
		if err != nil {
			spinner.StopWithError("Render failed")
		} else {
			spinner.Stop()
		}
	}
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths, err := writeArtifacts(result.Artifacts, opts.Formats, opts.CatalogPath, output)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d file(s)", len(paths)))

	if output == stdoutPath {
		return nil
	}
	printSuccess("Render complete")
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.SelectedCount, result.Stats.PlacedCount, result.Stats.SkippedCount)
	printWarnings(result)
	return nil
}

// printWarnings lists skipped technologies and catalog warnings.
func printWarnings(result *pipeline.Result) {
	for _, s := range result.Layout.Skipped {
		printWarning("%s not placed: %s", s.ID, s.Reason)
	}
	for _, w := range result.Warnings {
		printDetail("%s", w.String())
	}
}

// writeArtifacts writes artifacts in format order and returns the paths written.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) ([]string, error) {
	var paths []string
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := outputPath(input, output, format, len(formats))
		if err := writeOutput(path, data); err != nil {
			return paths, err
		}
		if path != stdoutPath {
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// outputPath derives the file for one format. A single format writes to
// output as given; multiple formats use output (or the input) as a base path.
func outputPath(input, output, format string, count int) string {
	if output == stdoutPath {
		return stdoutPath
	}
	if output != "" && count == 1 {
		return output
	}
	return basePath(output, input) + "." + format
}

// basePath strips a known format extension from output, or derives the base
// from the input file when output is empty.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns standard output for "-" and creates path otherwise.
func openOutput(path string) (io.WriteCloser, error) {
	if path == stdoutPath {
		return nopCloser{os.Stdout}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}

func writeOutput(path string, data []byte) error {
	f, err := openOutput(path)
	if err != nil {
		return fmt.Errorf("open output %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write output %s: %w", path, err)
	}
	return f.Close()
}
