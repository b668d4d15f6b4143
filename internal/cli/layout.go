package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/techradar/pkg/pipeline"
)

// layoutCommand creates the layout command for exporting chart geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output string
		filter filterFlags
		source sourceFlags
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [catalog]",
		Short: "Compute the radar geometry and write it as JSON",
		Long: `Compute the radar geometry and write it as JSON.

The output lists ring radii, sector triangles, label anchors and the position
of every placed technology, plus the technologies that could not be placed.
Positions are deterministic: the same catalog always yields the same file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.CatalogPath = args[0]
			opts.DetailsDir = source.details
			opts.Query = filter.query()
			opts.Formats = []string{pipeline.FormatJSON}
			return c.runLayout(cmd.Context(), opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <catalog>.layout.json), or - for stdout")
	cmd.Flags().Float64Var(&opts.Size, "size", 0, "chart size in pixels (default from config, 700)")
	cmd.Flags().StringVar(&opts.Style, "style", "", "style name recorded in the output")
	filter.register(cmd)
	source.register(cmd)

	return cmd
}

// runLayout computes the layout and writes the JSON geometry.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	opts.Config = cfg
	opts.Logger = c.Logger

	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	path := output
	if path == "" {
		path = strings.TrimSuffix(opts.CatalogPath, filepath.Ext(opts.CatalogPath)) + ".layout.json"
	}
	if err := writeOutput(path, result.Artifacts[pipeline.FormatJSON]); err != nil {
		return err
	}
	if path == stdoutPath {
		return nil
	}

	printSuccess("Layout complete")
	printFile(path)
	printStats(result.Stats.SelectedCount, result.Stats.PlacedCount, result.Stats.SkippedCount)
	printWarnings(result)
	printNewline()
	printNextStep("Render", appName+" render "+opts.CatalogPath)
	return nil
}
