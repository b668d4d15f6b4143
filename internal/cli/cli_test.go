package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/techradar/pkg/errors"
)

const testCatalogJSON = `{
  "title": "CLI Radar",
  "dimensions": [
    {"id": "languages", "name": "Languages"},
    {"id": "tools", "name": "Tools"}
  ],
  "rings": [
    {"id": "adopt", "name": "Adopt", "description": "Use by default."}
  ],
  "technologies": [
    {"id": "go", "name": "Go", "ring": "adopt", "dimension": "languages", "tags": ["backend", "compiled"], "dimensions": {"languages": 9, "tools": 4}},
    {"id": "react", "name": "React", "ring": "trial", "dimension": "tools", "tags": ["frontend"], "isNew": true, "dimensions": {"tools": 7}},
    {"id": "bazel", "name": "Bazel", "ring": "assess", "dimension": "tools", "tags": ["build", "compiled"], "dimensions": {"tools": 8.5}},
    {"id": "perl", "name": "Perl", "ring": "retired", "dimension": "languages"}
  ]
}`

// captureOutput redirects user-facing output for the duration of the test.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := out
	out = &buf
	t.Cleanup(func() { out = prev })
	return &buf
}

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "radar.json")
	if err := os.WriteFile(path, []byte(testCatalogJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	want := []string{"browse", "completion", "layout", "list", "render", "show", "tags"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("--config flag missing")
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"svg"}},
		{"svg", []string{"svg"}},
		{"svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"svg, json,", []string{"svg", "json"}},
	}

	for _, tt := range tests {
		got := parseFormats(tt.input)
		if strings.Join(got, ",") != strings.Join(tt.want, ",") {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input, output, format string
		count                 int
		want                  string
	}{
		{"data/radar.json", "", "svg", 1, "data/radar.svg"},
		{"data/radar.json", "chart.svg", "svg", 1, "chart.svg"},
		{"radar.yaml", "out/chart.svg", "png", 2, "out/chart.png"},
		{"radar.yaml", "out/chart", "pdf", 2, "out/chart.pdf"},
		{"radar.yaml", "-", "svg", 1, "-"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.input, tt.output, tt.format, tt.count); got != tt.want {
			t.Errorf("outputPath(%q, %q, %q, %d) = %q, want %q", tt.input, tt.output, tt.format, tt.count, got, tt.want)
		}
	}
}

func TestRenderCommand(t *testing.T) {
	buf := captureOutput(t)
	catalogPath := writeCatalog(t)
	base := filepath.Join(t.TempDir(), "out", "chart")

	if err := execute(t, "render", catalogPath, "-f", "svg,json", "-o", base, "--style", "tinted", "--tooltips"); err != nil {
		t.Fatalf("render: %v", err)
	}

	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(svg, []byte("<svg")) || !bytes.Contains(svg, []byte("CLI Radar")) {
		t.Errorf("svg output malformed: %.100s", svg)
	}

	var doc struct {
		Style  string            `json:"style"`
		Points []json.RawMessage `json:"points"`
	}
	data, err := os.ReadFile(base + ".json")
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Style != "tinted" || len(doc.Points) != 3 {
		t.Errorf("json output = style %q, %d points", doc.Style, len(doc.Points))
	}

	if !strings.Contains(buf.String(), "perl not placed") {
		t.Errorf("output should report the skipped technology:\n%s", buf.String())
	}
}

func TestRenderCommandFilterAndConfig(t *testing.T) {
	captureOutput(t)
	catalogPath := writeCatalog(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "techradar.toml")
	if err := os.WriteFile(cfgPath, []byte("[chart]\nsize = 500\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, "layout.json")

	if err := execute(t, "layout", catalogPath, "--config", cfgPath, "--tag", "compiled", "-o", output); err != nil {
		t.Fatalf("layout: %v", err)
	}

	var doc struct {
		Size   float64 `json:"size"`
		Points []struct {
			ID string `json:"id"`
		} `json:"points"`
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Size != 500 {
		t.Errorf("size = %v, want 500 from config", doc.Size)
	}
	if len(doc.Points) != 2 {
		t.Errorf("points = %d, want 2 compiled technologies", len(doc.Points))
	}
}

func TestRenderCommandErrors(t *testing.T) {
	captureOutput(t)
	catalogPath := writeCatalog(t)

	if err := execute(t, "render", catalogPath, "-f", "gif"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("bad format: error = %v", err)
	}
	if err := execute(t, "render", catalogPath, "--style", "neon"); !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("bad style: error = %v", err)
	}
	if err := execute(t, "render", filepath.Join(t.TempDir(), "none.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing catalog: error = %v", err)
	}
	if err := execute(t, "render", catalogPath, "-f", "svg,json", "-o", "-"); err == nil {
		t.Error("several formats to stdout should fail")
	}
}

func TestListCommand(t *testing.T) {
	buf := captureOutput(t)
	catalogPath := writeCatalog(t)

	if err := execute(t, "list", catalogPath, "--dimension", "tools", "--sort", "ring"); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.Contains(got, "React") || !strings.Contains(got, "Bazel") {
		t.Errorf("list output missing technologies:\n%s", got)
	}
	if strings.Contains(got, "Go ") {
		t.Errorf("list output should be filtered:\n%s", got)
	}
	if strings.Index(got, "React") > strings.Index(got, "Bazel") {
		t.Error("trial should sort before assess")
	}
	if !strings.Contains(got, "2 of 4 technologies") {
		t.Errorf("list summary missing:\n%s", got)
	}

	if err := execute(t, "list", catalogPath, "--sort", "stars"); err == nil {
		t.Error("invalid sort key should fail")
	}
}

func TestListByDimension(t *testing.T) {
	buf := captureOutput(t)
	catalogPath := writeCatalog(t)

	if err := execute(t, "list", catalogPath, "--by-dimension"); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{"Languages", "Tools", "Adopt (1)", "Trial (1)", "Assess (1)", "9/10", "7/10", "8.5/10"} {
		if !strings.Contains(got, want) {
			t.Errorf("grouped output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Perl") {
		t.Errorf("technology with unknown ring should not be grouped:\n%s", got)
	}
	if strings.Index(got, "Languages") > strings.Index(got, "Tools") {
		t.Error("dimensions should keep catalog order")
	}
	if strings.Index(got, "Trial (1)") > strings.Index(got, "Assess (1)") {
		t.Error("rings should keep ring order")
	}

	buf.Reset()
	if err := execute(t, "list", catalogPath, "--by-dimension", "--dimension", "tools"); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "Languages") {
		t.Errorf("--dimension should limit the groups:\n%s", buf.String())
	}
}

func TestFilterRingIsValidated(t *testing.T) {
	captureOutput(t)
	catalogPath := writeCatalog(t)

	for _, args := range [][]string{
		{"list", catalogPath, "--ring", "bogus"},
		{"tags", catalogPath, "--ring", "bogus"},
		{"browse", catalogPath, "--ring", "bogus"},
	} {
		if err := execute(t, args...); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("%s --ring bogus: error = %v, want INVALID_INPUT", args[0], err)
		}
	}
}

func TestFormatScore(t *testing.T) {
	tests := map[float64]string{0: "0/10", 7: "7/10", 8.5: "8.5/10"}
	for v, want := range tests {
		if got := formatScore(v); got != want {
			t.Errorf("formatScore(%v) = %q, want %q", v, got, want)
		}
	}
	if got := shortTags([]string{"a", "b", "c", "d", "e"}); got != "a, b, c +2" {
		t.Errorf("shortTags() = %q", got)
	}
}

func TestTagsCommand(t *testing.T) {
	buf := captureOutput(t)
	if err := execute(t, "tags", writeCatalog(t)); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 || !strings.HasPrefix(lines[0], "compiled") {
		t.Errorf("tags output = %q, want compiled first of 4", lines)
	}
}

func TestShowCommand(t *testing.T) {
	buf := captureOutput(t)
	catalogPath := writeCatalog(t)
	details := t.TempDir()
	if err := os.WriteFile(filepath.Join(details, "go.md"), []byte("---\nrationale: Fast builds\n---\n# Why Go\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := execute(t, "show", catalogPath, "go", "--details", details); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{"Go", "Languages", "backend, compiled", "Fast builds", "# Why Go", "Scores", "9/10", "4/10", "About Adopt", "Use by default."} {
		if !strings.Contains(got, want) {
			t.Errorf("show output missing %q:\n%s", want, got)
		}
	}

	if err := execute(t, "show", catalogPath, "rust"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("unknown id: error = %v", err)
	}
}

func TestCountTags(t *testing.T) {
	got := countTags(nil)
	if len(got) != 0 {
		t.Errorf("countTags(nil) = %v", got)
	}
}
