package pipeline

import (
	"github.com/matzehuels/techradar/pkg/radar"
	"github.com/matzehuels/techradar/pkg/radar/layout"
	"github.com/matzehuels/techradar/pkg/render/nodelink"
)

// Select applies the filter query of opts. Every dimension stays on the chart;
// only technologies are dropped.
func Select(c *radar.Catalog, opts Options) []radar.Technology {
	if opts.Query.IsZero() {
		return c.Technologies
	}
	return c.Filter(opts.Query)
}

// ComputeLayout lays out techs on the dimensions of c using the chart settings
// of opts.
func ComputeLayout(c *radar.Catalog, techs []radar.Technology, opts Options) (layout.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Layout{}, err
	}
	return layout.Compute(c.Dimensions, techs, opts.Size, opts.Config.LayoutOptions()...), nil
}

// GenerateDOT builds the node-link graph of techs.
func GenerateDOT(c *radar.Catalog, techs []radar.Technology, opts Options) (string, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return "", err
	}
	th := opts.Config.Theme(c)
	return nodelink.ToDOT(subset(c, techs), nodelink.Options{
		Detailed: opts.Detailed,
		Theme:    &th,
	}), nil
}

// subset returns a shallow copy of c holding only techs.
func subset(c *radar.Catalog, techs []radar.Technology) *radar.Catalog {
	cp := *c
	cp.Technologies = techs
	return &cp
}
