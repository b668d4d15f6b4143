package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/radar"
)

const frontMatterDelim = "---"

// DetailExt is the file extension of technology detail documents.
const DetailExt = ".md"

// Detail is a parsed technology detail document. Nil fields were absent from
// the front matter.
type Detail struct {
	Name        *string       `yaml:"name"`
	Description *string       `yaml:"description"`
	Ring        *radar.RingID `yaml:"ring"`
	Dimension   *string       `yaml:"dimension"`
	Tags        []string      `yaml:"tags"`
	IsNew       *bool         `yaml:"isNew"`
	HasChanged  *bool         `yaml:"hasChanged"`
	URL         *string       `yaml:"url"`
	Rationale   *string       `yaml:"rationale"`

	Scores map[string]float64 `yaml:"dimensions"`

	// Body is the markdown after the front matter.
	Body string `yaml:"-"`
}

// ReadDetail parses a markdown document with optional "---" delimited YAML
// front matter.
func ReadDetail(r io.Reader) (*Detail, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read detail: %w", err)
	}

	front, body, ok := splitFrontMatter(data)
	d := &Detail{Body: string(body)}
	if !ok {
		return d, nil
	}
	if err := yaml.Unmarshal(front, d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "front matter")
	}
	return d, nil
}

// splitFrontMatter separates a leading "---" block from the body. A document
// whose first line is not the delimiter, or whose block is never closed, has
// no front matter.
func splitFrontMatter(data []byte) (front, body []byte, ok bool) {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	first := bytes.IndexByte(data, '\n')
	if first < 0 || strings.TrimSpace(string(data[:first])) != frontMatterDelim {
		return nil, data, false
	}

	start := first + 1
	for pos := start; pos < len(data); {
		line, next := data[pos:], len(data)
		if end := bytes.IndexByte(data[pos:], '\n'); end >= 0 {
			line, next = data[pos:pos+end], pos+end+1
		}
		if strings.TrimSpace(string(line)) == frontMatterDelim {
			return data[start:pos], bytes.TrimLeft(data[next:], "\r\n"), true
		}
		pos = next
	}
	return nil, data, false
}

// Apply merges d into t. Front matter fields override catalog fields; the
// body becomes t.Content.
func (d *Detail) Apply(t radar.Technology) radar.Technology {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&t.Name, d.Name)
	set(&t.Description, d.Description)
	set(&t.Dimension, d.Dimension)
	set(&t.URL, d.URL)
	set(&t.Rationale, d.Rationale)
	if d.Ring != nil {
		t.Ring = *d.Ring
	}
	if d.Tags != nil {
		t.Tags = d.Tags
	}
	if d.Scores != nil {
		t.Scores = d.Scores
	}
	if d.IsNew != nil {
		t.IsNew = *d.IsNew
	}
	if d.HasChanged != nil {
		t.HasChanged = *d.HasChanged
	}
	t.Content = d.Body
	return t
}

// ReadDetailFile parses the detail document at path.
func ReadDetailFile(path string) (*Detail, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "detail %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	d, err := ReadDetail(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// DetailPath returns the path of id's detail document inside dir.
func DetailPath(dir, id string) (string, error) {
	if err := errors.ValidateID(id); err != nil {
		return "", err
	}
	name := id + DetailExt
	if err := errors.ValidatePath(name); err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// LoadDetails merges <dir>/<id>.md into every technology of c that has one
// and returns the number of documents applied. Technologies whose id cannot
// name a file, or that have no document, are left unchanged.
func LoadDetails(c *radar.Catalog, dir string) (int, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, errors.Wrap(errors.ErrCodeFileNotFound, err, "details directory %s", dir)
		}
		return 0, fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s is not a directory", dir)
	}

	n := 0
	for i, t := range c.Technologies {
		path, err := DetailPath(dir, t.ID)
		if err != nil {
			continue
		}
		d, err := ReadDetailFile(path)
		if errors.Is(err, errors.ErrCodeFileNotFound) {
			continue
		}
		if err != nil {
			return n, err
		}
		c.Technologies[i] = d.Apply(t)
		n++
	}
	return n, nil
}
