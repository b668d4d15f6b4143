package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/radar"
)

func TestReadDetail(t *testing.T) {
	doc := "---\nring: trial\ntags: [ui, web]\nisNew: false\nrationale: Good for dashboards.\ndimensions: {tools: 8}\n---\n\n# React\n\nBody text.\n"

	d, err := ReadDetail(strings.NewReader(doc))
	require.NoError(t, err)
	require.NotNil(t, d.Ring)
	require.Equal(t, radar.Trial, *d.Ring)
	require.Equal(t, []string{"ui", "web"}, d.Tags)
	require.NotNil(t, d.IsNew)
	require.False(t, *d.IsNew)
	require.Nil(t, d.Name)
	require.Equal(t, map[string]float64{"tools": 8}, d.Scores)
	require.Equal(t, "# React\n\nBody text.\n", d.Body)
}

func TestReadDetailWithoutFrontMatter(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"plain markdown", "# Title\n\ntext\n"},
		{"unclosed block", "---\nring: hold\n# Title\n"},
		{"single line", "---"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ReadDetail(strings.NewReader(tt.doc))
			require.NoError(t, err)
			require.Nil(t, d.Ring)
			require.Equal(t, tt.doc, d.Body)
		})
	}
}

func TestReadDetailCRLF(t *testing.T) {
	d, err := ReadDetail(strings.NewReader("---\r\nname: Go\r\n---\r\nbody\r\n"))
	require.NoError(t, err)
	require.NotNil(t, d.Name)
	require.Equal(t, "Go", *d.Name)
	require.Equal(t, "body\r\n", d.Body)
}

func TestReadDetailBadFrontMatter(t *testing.T) {
	_, err := ReadDetail(strings.NewReader("---\ntags: [a, b\n---\nbody"))
	require.True(t, errors.Is(err, errors.ErrCodeInvalidCatalog))
}

func TestDetailApply(t *testing.T) {
	ring := radar.Hold
	name := "ReactJS"
	d := &Detail{Ring: &ring, Name: &name, Body: "body"}

	base := radar.Technology{ID: "react", Name: "React", Ring: radar.Adopt, Dimension: "tools", Tags: []string{"ui"}, IsNew: true}
	got := d.Apply(base)

	require.Equal(t, radar.Technology{
		ID:        "react",
		Name:      "ReactJS",
		Ring:      radar.Hold,
		Dimension: "tools",
		Tags:      []string{"ui"},
		IsNew:     true,
		Content:   "body",
	}, got)
	require.Equal(t, "React", base.Name)

	scored := &Detail{Scores: map[string]float64{"tools": 7}}
	require.Equal(t, 7.0, scored.Apply(base).Score("tools"))
	require.Nil(t, base.Scores)
}

func TestDetailPath(t *testing.T) {
	p, err := DetailPath("data", "react")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("data", "react.md"), p)

	_, err = DetailPath("data", "../secrets")
	require.Error(t, err)
}

func TestLoadDetails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.md"),
		[]byte("---\nhasChanged: true\n---\nGo details\n"), 0o644))

	c := &radar.Catalog{
		Dimensions: []radar.Dimension{{ID: "lang"}},
		Technologies: []radar.Technology{
			{ID: "go", Ring: radar.Adopt, Dimension: "lang"},
			{ID: "rust", Ring: radar.Trial, Dimension: "lang"},
			{ID: "../escape", Ring: radar.Trial, Dimension: "lang"},
		},
	}

	n, err := LoadDetails(c, dir)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.True(t, c.Technologies[0].HasChanged)
	require.Equal(t, "Go details\n", c.Technologies[0].Content)
	require.Empty(t, c.Technologies[1].Content)

	_, err = LoadDetails(c, filepath.Join(dir, "missing"))
	require.True(t, errors.Is(err, errors.ErrCodeFileNotFound))
}
