package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/techradar/pkg/radar"
)

// filterFlags are the selection flags shared by render, layout, list and browse.
type filterFlags struct {
	search    string
	ring      string
	dimension string
	tags      []string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "match name or tag (case-insensitive substring)")
	cmd.Flags().StringVarP(&f.ring, "ring", "r", "", "only this ring: adopt, trial, assess, hold")
	cmd.Flags().StringVarP(&f.dimension, "dimension", "d", "", "only this dimension id")
	cmd.Flags().StringSliceVar(&f.tags, "tag", nil, "only technologies carrying any of these tags (repeatable)")
}

func (f *filterFlags) query() radar.Query {
	return radar.Query{
		Search:    f.search,
		Ring:      radar.RingID(f.ring),
		Dimension: f.dimension,
		Tags:      f.tags,
	}
}

// sourceFlags locate the catalog's detail documents.
type sourceFlags struct {
	details string
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.details, "details", "", "directory of <id>.md detail documents")
}
