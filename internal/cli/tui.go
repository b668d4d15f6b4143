package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/techradar/pkg/radar"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)

	tabActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Underline(true)
	tabInactiveStyle = lipgloss.NewStyle().Foreground(colorGray)

	detailPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1).
			Width(48)
)

// allTab is the tab index showing every ring.
const allTab = 0

// BrowseModel is the bubbletea model for exploring a catalog by ring.
// Tab 0 shows every technology; tabs 1-4 show one ring each.
type BrowseModel struct {
	Catalog    *radar.Catalog
	Techs      []radar.Technology
	Tab        int
	Cursor     int
	Offset     int
	Height     int
	ShowDetail bool
}

// NewBrowseModel creates a browser over techs, which should belong to cat.
func NewBrowseModel(cat *radar.Catalog, techs []radar.Technology) BrowseModel {
	return BrowseModel{
		Catalog: cat,
		Techs:   radar.Sort(techs, radar.SortByRing),
		Height:  15,
	}
}

// tabCount is "All" plus one tab per ring.
func (m BrowseModel) tabCount() int { return radar.RingCount + 1 }

// visible returns the technologies of the current tab.
func (m BrowseModel) visible() []radar.Technology {
	if m.Tab == allTab {
		return m.Techs
	}
	ring := radar.RingOrder[m.Tab-1]
	var out []radar.Technology
	for _, t := range m.Techs {
		if t.Ring == ring {
			out = append(out, t)
		}
	}
	return out
}

// Current returns the technology under the cursor.
func (m BrowseModel) Current() (radar.Technology, bool) {
	v := m.visible()
	if m.Cursor < 0 || m.Cursor >= len(v) {
		return radar.Technology{}, false
	}
	return v[m.Cursor], true
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "right", "l":
			m = m.switchTab((m.Tab + 1) % m.tabCount())
		case "shift+tab", "left", "h":
			m = m.switchTab((m.Tab + m.tabCount() - 1) % m.tabCount())
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				m = m.scrollToCursor()
			}
		case "down", "j":
			if m.Cursor < len(m.visible())-1 {
				m.Cursor++
				m = m.scrollToCursor()
			}
		case "enter", " ":
			m.ShowDetail = !m.ShowDetail
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
		m = m.scrollToCursor()
	}
	return m, nil
}

// scrollToCursor moves the window the least needed to keep the cursor row in
// view.
func (m BrowseModel) scrollToCursor() BrowseModel {
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
	m.Offset = max(m.Offset, 0)
	return m
}

func (m BrowseModel) switchTab(tab int) BrowseModel {
	m.Tab = tab
	m.Cursor = 0
	m.Offset = 0
	return m
}

func (m BrowseModel) View() string {
	var b strings.Builder

	title := m.Catalog.Title
	if title == "" {
		title = "Technology Radar"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	list := m.viewList()
	if t, ok := m.Current(); ok && m.ShowDetail {
		list = lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", detailPaneStyle.Render(m.viewDetail(t)))
	}
	b.WriteString(list)
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render("←/→ ring  ↑/↓ navigate  ⏎ details  q quit"))

	return b.String()
}

func (m BrowseModel) viewTabs() string {
	names := []string{"All"}
	for _, r := range m.Catalog.RingList() {
		names = append(names, r.Name)
	}
	tabs := make([]string, len(names))
	for i, name := range names {
		if i == m.Tab {
			tabs[i] = tabActiveStyle.Render(name)
		} else {
			tabs[i] = tabInactiveStyle.Render(name)
		}
	}
	return strings.Join(tabs, "  ")
}

func (m BrowseModel) viewList() string {
	v := m.visible()
	if len(v) == 0 {
		return listDimStyle.Render("  (no technologies)")
	}

	end := min(m.Offset+m.Height, len(v))
	var lines []string
	for i := m.Offset; i < end; i++ {
		t := v[i]
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		line := fmt.Sprintf("%s%-28s %s", cursor, t.Label(), ringStyle(t.Ring).Render(ringName(m.Catalog, t.Ring)))
		if b := badges(t); b != "" {
			line += " " + b
		}
		lines = append(lines, style.Render(line))
	}
	lines = append(lines, "", listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(v))))
	return strings.Join(lines, "\n")
}

func (m BrowseModel) viewDetail(t radar.Technology) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(t.Label()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(dimensionName(m.Catalog, t.Dimension)))
	b.WriteString("\n")
	if t.Description != "" {
		b.WriteString("\n" + t.Description + "\n")
	}
	if len(t.Tags) > 0 {
		b.WriteString("\n" + listDimStyle.Render("tags: "+strings.Join(t.Tags, ", ")) + "\n")
	}
	if t.URL != "" {
		b.WriteString(StyleLink.Render(t.URL) + "\n")
	}
	if t.Rationale != "" {
		b.WriteString("\n" + t.Rationale + "\n")
	}
	if t.Content != "" {
		b.WriteString("\n" + strings.TrimRight(t.Content, "\n"))
	}
	return b.String()
}

// browseCommand creates the interactive catalog browser.
func (c *CLI) browseCommand() *cobra.Command {
	var (
		filter filterFlags
		source sourceFlags
	)

	cmd := &cobra.Command{
		Use:   "browse [catalog]",
		Short: "Browse the catalog interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := filter.query()
			cat, _, err := c.loadCatalog(cmd.Context(), args[0], q, source)
			if err != nil {
				return err
			}
			m := NewBrowseModel(cat, cat.Filter(q))
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	filter.register(cmd)
	source.register(cmd)
	return cmd
}
