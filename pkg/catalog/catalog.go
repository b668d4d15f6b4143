package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/radar"
)

// Supported catalog file formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ReadJSON decodes a JSON catalog from r.
//
// Unknown fields are ignored. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*radar.Catalog, error) {
	var c radar.Catalog
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "decode json catalog")
	}
	return &c, nil
}

// ReadYAML decodes a YAML catalog from r.
//
// An empty document yields an empty catalog. ReadYAML does not close r.
func ReadYAML(r io.Reader) (*radar.Catalog, error) {
	var c radar.Catalog
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && err != io.EOF {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "decode yaml catalog")
	}
	return &c, nil
}

// Read decodes a catalog from r in the given format.
func Read(r io.Reader, format string) (*radar.Catalog, error) {
	switch format {
	case FormatJSON:
		return ReadJSON(r)
	case FormatYAML:
		return ReadYAML(r)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported catalog format: %q", format)
	}
}

// FormatOf returns the catalog format implied by path's extension.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"cannot infer catalog format from %q (want .json, .yaml or .yml)", path)
	}
}

// ImportFile reads the catalog at path, choosing the decoder by extension.
func ImportFile(path string) (*radar.Catalog, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "catalog %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	c, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// WriteJSON encodes c as indented JSON. Detail bodies are included.
func WriteJSON(c *radar.Catalog, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
