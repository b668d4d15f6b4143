// Package cli implements the techradar command-line interface.
//
// The CLI loads a radar catalog (JSON or YAML), lays it out with the radial
// layout engine and renders the chart, or lists and browses the catalog on
// the terminal. It is built on cobra, logs with charmbracelet/log and styles
// its output with lipgloss.
//
// # Commands
//
//   - layout: Compute the chart geometry and write it as JSON
//   - render: Generate SVG, PNG, PDF, JSON or DOT output
//   - list: Print the catalog as a filtered, sorted table
//   - tags: Print every tag with its usage count
//   - show: Print one technology with its detail document
//   - browse: Explore the catalog interactively
//
// # Configuration
//
// Cosmetic settings come from a TOML file given with --config, or from
// techradar.toml in the working directory. Flags win over the file.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/techradar/pkg/buildinfo"
	"github.com/matzehuels/techradar/pkg/config"
	"github.com/matzehuels/techradar/pkg/pipeline"
)

// appName is the application name used for display.
const appName = "techradar"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger     *log.Logger
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Techradar lays out and renders technology radars",
		Long:         `Techradar places technologies on a polar chart of dimensions and adoption rings (adopt, trial, assess, hold) and renders the result as SVG, PNG, PDF or JSON.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: ./"+config.DefaultFile+" if present)")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.tagsCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.completionCommand())

	for _, cmd := range root.Commands() {
		registerValueCompletions(cmd)
	}

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// loadConfig resolves the --config flag.
func (c *CLI) loadConfig() (*config.Config, error) {
	cfg, path, err := config.Resolve(c.configPath)
	if err != nil {
		return nil, err
	}
	if path != "" {
		c.Logger.Debug("loaded config", "path", path)
	}
	return &cfg, nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
