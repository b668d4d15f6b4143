package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/radar"
)

// showCommand creates the show command for printing one technology.
func (c *CLI) showCommand() *cobra.Command {
	var source sourceFlags

	cmd := &cobra.Command{
		Use:   "show [catalog] [id]",
		Short: "Show one technology with its detail document",
		Long: `Show one technology with its detail document.

With --details, <dir>/<id>.md is merged in: front matter fields override the
catalog and the markdown body is printed verbatim.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, _, err := c.loadCatalog(cmd.Context(), args[0], radar.Query{}, source)
			if err != nil {
				return err
			}
			t, ok := cat.Technology(args[1])
			if !ok {
				return errors.New(errors.ErrCodeNotFound, "technology %q not in %s", args[1], args[0])
			}
			printTechnology(cat, t)
			return nil
		},
	}

	source.register(cmd)
	return cmd
}

func printTechnology(cat *radar.Catalog, t radar.Technology) {
	fmt.Fprintln(out, StyleTitle.Render(t.Label())+"  "+badges(t))
	if t.Description != "" {
		fmt.Fprintln(out, StyleDim.Render(t.Description))
	}
	printNewline()

	printKeyValue("ID", t.ID)
	printKeyValue("Ring", ringStyle(t.Ring).Render(ringName(cat, t.Ring)))
	printKeyValue("Dimension", dimensionName(cat, t.Dimension))
	if len(t.Tags) > 0 {
		printKeyValue("Tags", strings.Join(t.Tags, ", "))
	}
	if t.URL != "" {
		printKeyValue("URL", StyleLink.Render(t.URL))
	}
	if t.Rationale != "" {
		printKeyValue("Rationale", t.Rationale)
	}
	if len(t.Scores) > 0 {
		printNewline()
		fmt.Fprintln(out, StyleDim.Render("Scores"))
		for _, d := range cat.Dimensions {
			v := t.Score(d.ID)
			printKeyValue(dimensionName(cat, d.ID), scoreBar(v)+" "+formatScore(v))
		}
	}
	if r, ok := cat.Ring(t.Ring); ok && r.Description != "" {
		printNewline()
		fmt.Fprintln(out, StyleDim.Render("About "+r.Name))
		fmt.Fprintln(out, r.Description)
	}
	if t.Content != "" {
		printNewline()
		fmt.Fprint(out, t.Content)
		if !strings.HasSuffix(t.Content, "\n") {
			printNewline()
		}
	}
}

const scoreBarWidth = 10

// scoreBar draws v on a fixed-width bar, clamped to the score range.
func scoreBar(v float64) string {
	if math.IsNaN(v) {
		v = radar.MinScore
	}
	filled := int(math.Round(min(max(v, radar.MinScore), radar.MaxScore) / radar.MaxScore * scoreBarWidth))
	return StyleSuccess.Render(strings.Repeat("█", filled)) + StyleDim.Render(strings.Repeat("░", scoreBarWidth-filled))
}
