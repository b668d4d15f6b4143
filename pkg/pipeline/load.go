package pipeline

import (
	"context"

	"github.com/matzehuels/techradar/pkg/catalog"
	"github.com/matzehuels/techradar/pkg/radar"
)

// Load reads the catalog named by opts and merges detail documents when a
// details directory is set. A preloaded opts.Catalog is used as is, except
// that details are still merged into a copy of it.
//
// Data problems are returned as warnings, never as errors.
func Load(ctx context.Context, opts Options) (*radar.Catalog, []catalog.Warning, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	var c *radar.Catalog
	if opts.Catalog != nil {
		cp := *opts.Catalog
		cp.Technologies = append([]radar.Technology(nil), opts.Catalog.Technologies...)
		c = &cp
	} else {
		var err error
		if c, err = catalog.ImportFile(opts.CatalogPath); err != nil {
			return nil, nil, err
		}
	}

	if opts.DetailsDir != "" {
		n, err := catalog.LoadDetails(c, opts.DetailsDir)
		if err != nil {
			return nil, nil, err
		}
		opts.Logger.Debug("merged detail documents", "dir", opts.DetailsDir, "count", n)
	}

	return c, catalog.Check(c), nil
}
