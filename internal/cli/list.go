package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/techradar/pkg/catalog"
	"github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/pipeline"
	"github.com/matzehuels/techradar/pkg/radar"
)

// loadCatalog reads a catalog and its detail documents through the pipeline's
// load stage, logging data warnings. q is validated but not applied.
func (c *CLI) loadCatalog(ctx context.Context, path string, q radar.Query, src sourceFlags) (*radar.Catalog, []catalog.Warning, error) {
	cat, warnings, err := pipeline.Load(ctx, pipeline.Options{
		CatalogPath: path,
		DetailsDir:  src.details,
		Query:       q,
		Logger:      c.Logger,
	})
	if err != nil {
		return nil, nil, err
	}
	for _, w := range warnings {
		c.Logger.Warn(w.Message, "id", w.ID)
	}
	return cat, warnings, nil
}

// listCommand creates the list command for printing the catalog as a table.
func (c *CLI) listCommand() *cobra.Command {
	var (
		sortKey     string
		byDimension bool
		filter      filterFlags
		source      sourceFlags
	)

	cmd := &cobra.Command{
		Use:   "list [catalog]",
		Short: "List technologies as a table",
		Long: `List technologies as a table.

Filters combine: --search matches a substring of the name or any tag, --ring
and --dimension match exactly, and --tag keeps technologies carrying any of
the given tags.

With --by-dimension the selection is printed per dimension instead, grouped by
ring and ordered by each technology's score in that dimension.`,
		Example: `  techradar list radar.json --ring adopt
  techradar list radar.json --search cloud --sort newest
  techradar list radar.json --by-dimension`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := radar.ParseSortKey(sortKey)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "--sort")
			}
			q := filter.query()
			cat, _, err := c.loadCatalog(cmd.Context(), args[0], q, source)
			if err != nil {
				return err
			}
			techs := cat.Filter(q)
			if byDimension {
				printDimensionGroups(cat, techs)
			} else {
				fmt.Fprintln(out, renderTechTable(cat, radar.Sort(techs, key)))
			}
			printDetail("%d of %d technologies", len(techs), len(cat.Technologies))
			return nil
		},
	}

	cmd.Flags().StringVar(&sortKey, "sort", "", "sort by: name (default), ring, newest, changed")
	cmd.Flags().BoolVar(&byDimension, "by-dimension", false, "group by dimension and ring, highest score first")
	filter.register(cmd)
	source.register(cmd)

	return cmd
}

// maxListedTags is how many tags a grouped entry shows before "+n".
const maxListedTags = 3

// printDimensionGroups prints techs per dimension, grouped by ring and ordered
// by score. Dimensions without selected technologies are left out.
func printDimensionGroups(cat *radar.Catalog, techs []radar.Technology) {
	printed := false
	for _, d := range cat.Dimensions {
		groups := cat.GroupByRing(techs, d.ID)
		if len(groups) == 0 {
			continue
		}
		if printed {
			printNewline()
		}
		printed = true

		fmt.Fprintln(out, StyleTitle.Render(dimensionName(cat, d.ID)))
		if d.Description != "" {
			fmt.Fprintln(out, StyleDim.Render(d.Description))
		}
		for _, g := range groups {
			name := g.Ring.Name
			if name == "" {
				name = string(g.Ring.ID)
			}
			fmt.Fprintln(out, "  "+ringStyle(g.Ring.ID).Bold(true).Render(fmt.Sprintf("%s (%d)", name, len(g.Technologies))))
			for _, t := range g.Technologies {
				line := fmt.Sprintf("    %-24s %s", t.Label(), StyleValue.Render(formatScore(t.Score(d.ID))))
				if b := badges(t); b != "" {
					line += "  " + b
				}
				if tags := shortTags(t.Tags); tags != "" {
					line += "  " + StyleDim.Render(tags)
				}
				fmt.Fprintln(out, line)
			}
		}
	}
	if !printed {
		printInfo("No technologies")
	}
}

// formatScore renders a score as "n/10".
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "/" + strconv.FormatFloat(radar.MaxScore, 'f', -1, 64)
}

// shortTags joins the first few tags and counts the rest.
func shortTags(tags []string) string {
	if len(tags) <= maxListedTags {
		return strings.Join(tags, ", ")
	}
	return fmt.Sprintf("%s +%d", strings.Join(tags[:maxListedTags], ", "), len(tags)-maxListedTags)
}

// renderTechTable renders techs as a bordered table.
func renderTechTable(cat *radar.Catalog, techs []radar.Technology) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, len(techs))
	for i, t := range techs {
		rows[i] = []string{t.Label(), ringName(cat, t.Ring), dimensionName(cat, t.Dimension), strings.Join(t.Tags, ", "), badges(t)}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Technology", "Ring", "Dimension", "Tags", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			switch col {
			case 0:
				return base.Foreground(colorWhite)
			case 1:
				return ringStyle(techs[row].Ring).Padding(0, 1)
			case 3:
				return base.Foreground(colorDim)
			}
			return base
		}).
		String()
}

func ringName(cat *radar.Catalog, id radar.RingID) string {
	if r, ok := cat.Ring(id); ok {
		return r.Name
	}
	if id == "" {
		return "—"
	}
	return string(id) + "?"
}

func dimensionName(cat *radar.Catalog, id string) string {
	if d, ok := cat.Dimension(id); ok && d.Name != "" {
		return d.Name
	}
	if id == "" {
		return "—"
	}
	return id + "?"
}
