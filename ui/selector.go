package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// SelectorItem is one row of a selector overlay.
type SelectorItem struct {
	// Name is the value handed to OnSelect.
	Name string
	// Detail is shown dimmed after the name, e.g. a region's display
	// name or a profile's home region.
	Detail string
	// Current marks the active entry. It starts highlighted and is
	// annotated in the list.
	Current bool
}

// Selector is a modal pick list, used for the profile and region
// selectors. Selecting an entry fires OnSelect with its name; the
// caller decides what switching means.
type Selector struct {
	title         string
	items         []SelectorItem
	selectedIndex int
	width         int

	// OnSelect is called with the chosen item's name when enter is
	// pressed. May be nil.
	OnSelect func(name string)
	// OnCancel is called when the selector is dismissed. May be nil.
	OnCancel func()

	titleStyle    lipgloss.Style
	borderStyle   lipgloss.Style
	itemStyle     lipgloss.Style
	selectedStyle lipgloss.Style
	currentStyle  lipgloss.Style
	detailStyle   lipgloss.Style
	hintStyle     lipgloss.Style
}

// NewSelector creates a selector over the given items. The highlight
// starts on the entry marked Current, or the first entry.
func NewSelector(title string, items []SelectorItem) *Selector {
	selected := 0
	for i, item := range items {
		if item.Current {
			selected = i
			break
		}
	}

	return &Selector{
		title:         title,
		items:         items,
		selectedIndex: selected,
		width:         50,
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")),
		borderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2),
		itemStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#dde4f0")),
		selectedStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffaa00")).
			Background(lipgloss.Color("#3C3C3C")),
		currentStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2AA198")),
		detailStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")),
		hintStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}

// SetWidth adjusts the overlay width.
func (s *Selector) SetWidth(width int) {
	if width > 0 {
		s.width = width
	}
}

// SelectedIndex returns the highlighted row.
func (s *Selector) SelectedIndex() int {
	return s.selectedIndex
}

// Selected returns the highlighted item, if any.
func (s *Selector) Selected() (SelectorItem, bool) {
	if s.selectedIndex < 0 || s.selectedIndex >= len(s.items) {
		return SelectorItem{}, false
	}
	return s.items[s.selectedIndex], true
}

// HandleKeyPress processes a key and returns whether the selector
// should be closed.
func (s *Selector) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "up", "k":
		if s.selectedIndex > 0 {
			s.selectedIndex--
		}
		return false
	case "down", "j":
		if s.selectedIndex < len(s.items)-1 {
			s.selectedIndex++
		}
		return false
	case "enter":
		if item, ok := s.Selected(); ok && s.OnSelect != nil {
			s.OnSelect(item.Name)
		}
		return true
	case "esc":
		if s.OnCancel != nil {
			s.OnCancel()
		}
		return true
	default:
		return false
	}
}

// Render returns the selector box.
func (s *Selector) Render() string {
	var sb strings.Builder

	sb.WriteString(s.titleStyle.Render(s.title))
	sb.WriteString("\n\n")

	rowWidth := s.width - 6
	for i, item := range s.items {
		line := "  " + item.Name
		style := s.itemStyle
		if i == s.selectedIndex {
			line = "▸ " + item.Name
			style = s.selectedStyle
		}

		row := style.Render(line)
		if item.Current {
			row += s.currentStyle.Render(" (current)")
		}
		if item.Detail != "" {
			row += s.detailStyle.Render("  " + item.Detail)
		}
		sb.WriteString(truncate.StringWithTail(row, uint(rowWidth), "…"))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(s.hintStyle.Render("enter: select    esc: cancel"))

	return s.borderStyle.Width(s.width).Render(sb.String())
}
