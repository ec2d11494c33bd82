package ui

import (
	"strings"

	"nimbus-ctl/keys"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Menu is the bottom help bar listing the key hints for the current
// app state. When the help bar is disabled in config it collapses to
// a single "? for help" pointer.
type Menu struct {
	width     int
	showHints bool

	barStyle  lipgloss.Style
	keyStyle  lipgloss.Style
	descStyle lipgloss.Style
	sepStyle  lipgloss.Style
}

// NewMenu creates the bottom menu bar.
func NewMenu() *Menu {
	return &Menu{
		width:     80,
		showHints: true,
		barStyle: lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a1a")).
			Padding(0, 1),
		keyStyle: lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a1a")).
			Foreground(lipgloss.Color("#2AA198")),
		descStyle: lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a1a")).
			Foreground(lipgloss.Color("#888888")),
		sepStyle: lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a1a")).
			Foreground(lipgloss.Color("#555555")),
	}
}

// SetWidth adjusts the bar width.
func (m *Menu) SetWidth(width int) {
	if width > 0 {
		m.width = width
	}
}

// SetShowHints toggles the full hint row; off shows only the help
// pointer.
func (m *Menu) SetShowHints(show bool) {
	m.showHints = show
}

// Render returns the hint line for the given keys, in order.
func (m *Menu) Render(names ...keys.KeyName) string {
	if !m.showHints {
		return m.barStyle.Width(m.width).Render(
			m.descStyle.Render("Press ") + m.keyStyle.Render("?") + m.descStyle.Render(" for help"))
	}

	sep := m.sepStyle.Render(" │ ")
	hints := make([]string, 0, len(names))
	for _, name := range names {
		binding, ok := keys.GlobalkeyBindings[name]
		if !ok {
			continue
		}
		help := binding.Help()
		hints = append(hints, m.keyStyle.Render(help.Key)+" "+m.descStyle.Render(help.Desc))
	}

	line := strings.Join(hints, sep)
	return m.barStyle.Width(m.width).Render(truncate.StringWithTail(line, uint(m.width-2), "…"))
}
