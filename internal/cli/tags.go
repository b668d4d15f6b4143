package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/techradar/pkg/radar"
)

// tagCount is a tag with the number of selected technologies carrying it.
type tagCount struct {
	Tag   string
	Count int
}

// countTags counts tag usage in techs, most used first, then by name.
func countTags(techs []radar.Technology) []tagCount {
	counts := map[string]int{}
	for _, t := range techs {
		for _, tag := range slices.Compact(slices.Sorted(slices.Values(t.Tags))) {
			counts[tag]++
		}
	}
	out := make([]tagCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, tagCount{tag, n})
	}
	slices.SortFunc(out, func(a, b tagCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Tag, b.Tag)
	})
	return out
}

// tagsCommand creates the tags command.
func (c *CLI) tagsCommand() *cobra.Command {
	var (
		filter filterFlags
		source sourceFlags
	)

	cmd := &cobra.Command{
		Use:   "tags [catalog]",
		Short: "List tags with usage counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := filter.query()
			cat, _, err := c.loadCatalog(cmd.Context(), args[0], q, source)
			if err != nil {
				return err
			}
			counts := countTags(cat.Filter(q))
			if len(counts) == 0 {
				printInfo("No tags")
				return nil
			}
			width := 0
			for _, tc := range counts {
				width = max(width, len(tc.Tag))
			}
			for _, tc := range counts {
				fmt.Fprintf(out, "%s  %s\n", StyleValue.Render(fmt.Sprintf("%-*s", width, tc.Tag)), StyleDim.Render(fmt.Sprint(tc.Count)))
			}
			return nil
		},
	}

	filter.register(cmd)
	source.register(cmd)
	return cmd
}
