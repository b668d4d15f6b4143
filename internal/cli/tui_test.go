package cli

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/techradar/pkg/radar"
)

func browseCatalog() *radar.Catalog {
	return &radar.Catalog{
		Title:      "TUI Radar",
		Dimensions: []radar.Dimension{{ID: "lang", Name: "Languages"}},
		Technologies: []radar.Technology{
			{ID: "cobol", Name: "COBOL", Ring: radar.Hold, Dimension: "lang"},
			{ID: "go", Name: "Go", Ring: radar.Adopt, Dimension: "lang", Description: "Compiled language"},
			{ID: "zig", Name: "Zig", Ring: radar.Assess, Dimension: "lang", IsNew: true},
			{ID: "rust", Name: "Rust", Ring: radar.Adopt, Dimension: "lang"},
		},
	}
}

func press(m BrowseModel, keys ...string) BrowseModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(BrowseModel)
	}
	return m
}

func TestBrowseModelNavigation(t *testing.T) {
	c := browseCatalog()
	m := NewBrowseModel(c, c.Technologies)

	if cur, _ := m.Current(); cur.ID != "go" {
		t.Errorf("first item = %s, want go (adopt, by name)", cur.ID)
	}

	m = press(m, "down", "down", "down", "down", "down")
	if cur, _ := m.Current(); cur.ID != "cobol" {
		t.Errorf("cursor should stop at the last item, got %s", cur.ID)
	}
	m = press(m, "up")
	if cur, _ := m.Current(); cur.ID != "zig" {
		t.Errorf("after up = %s, want zig", cur.ID)
	}
}

func TestBrowseModelTabs(t *testing.T) {
	c := browseCatalog()
	m := NewBrowseModel(c, c.Technologies)

	m = press(m, "down", "tab")
	if m.Tab != 1 || m.Cursor != 0 {
		t.Fatalf("tab = %d cursor = %d, want 1/0", m.Tab, m.Cursor)
	}
	if got := len(m.visible()); got != 2 {
		t.Errorf("adopt tab shows %d, want 2", got)
	}

	m = press(m, "tab")
	if _, ok := m.Current(); ok {
		t.Error("trial tab should be empty")
	}
	if !strings.Contains(m.View(), "(no technologies)") {
		t.Error("empty tab should say so")
	}

	m = press(m, "shift+tab", "shift+tab", "shift+tab")
	if m.Tab != radar.RingCount {
		t.Errorf("shift+tab should wrap to the last tab, got %d", m.Tab)
	}
}

func TestBrowseModelDetail(t *testing.T) {
	c := browseCatalog()
	m := NewBrowseModel(c, c.Technologies)

	if strings.Contains(m.View(), "Compiled language") {
		t.Error("detail pane should start hidden")
	}
	m = press(m, "enter")
	view := m.View()
	if !m.ShowDetail || !strings.Contains(view, "Compiled language") {
		t.Errorf("detail pane should show the description:\n%s", view)
	}
	if !strings.Contains(view, "TUI Radar") {
		t.Error("view should carry the catalog title")
	}
}

func TestBrowseModelQuit(t *testing.T) {
	c := browseCatalog()
	_, cmd := NewBrowseModel(c, c.Technologies).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestBrowseModelWindowSize(t *testing.T) {
	c := browseCatalog()
	next, _ := NewBrowseModel(c, c.Technologies).Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	if h := next.(BrowseModel).Height; h != 5 {
		t.Errorf("Height = %d, want minimum 5", h)
	}
}

func TestBrowseModelResizeKeepsCursorVisible(t *testing.T) {
	c := &radar.Catalog{}
	for i := range 12 {
		c.Technologies = append(c.Technologies, radar.Technology{
			ID:   fmt.Sprintf("t%02d", i),
			Name: fmt.Sprintf("Tech %02d", i),
			Ring: radar.Adopt,
		})
	}
	m := NewBrowseModel(c, c.Technologies)
	for range 10 {
		m = press(m, "down")
	}
	if m.Cursor != 10 || m.Offset != 0 {
		t.Fatalf("cursor/offset = %d/%d, want 10/0", m.Cursor, m.Offset)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	m = next.(BrowseModel)
	if m.Cursor < m.Offset || m.Cursor >= m.Offset+m.Height {
		t.Errorf("cursor %d outside window [%d, %d)", m.Cursor, m.Offset, m.Offset+m.Height)
	}
	if m.Offset != 6 {
		t.Errorf("Offset = %d, want 6", m.Offset)
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	if got := next.(BrowseModel).Offset; got != 6 {
		t.Errorf("growing the window moved Offset to %d", got)
	}
}
