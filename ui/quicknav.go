package ui

import (
	"fmt"
	"strings"

	"nimbus-ctl/aws"
	"nimbus-ctl/cmd"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// NavigationItem is one quick-nav suggestion: a service jump target
// with the short keywords it can be found under.
type NavigationItem struct {
	Name        string
	Description string
	Icon        string
	Keywords    []string
	Target      cmd.Page
}

// navigationItems builds the full jump list, one entry per service.
func navigationItems() []NavigationItem {
	services := aws.AllServices()
	items := make([]NavigationItem, 0, len(services))
	for _, svc := range services {
		items = append(items, NavigationItem{
			Name:        svc.DisplayName(),
			Description: fmt.Sprintf("Browse %s resources", svc.DisplayName()),
			Icon:        svc.Icon(),
			Keywords:    svc.Keywords(),
			Target:      cmd.ResourceListPage(svc),
		})
	}
	return items
}

// QuickNav is the service jump overlay: type a few letters, pick a
// service, land on its resource list. Unlike the palette it filters a
// fixed list and owns its input as raw runes.
type QuickNav struct {
	visible       bool
	input         []rune
	suggestions   []NavigationItem
	selectedIndex int
	width         int

	borderStyle      lipgloss.Style
	promptStyle      lipgloss.Style
	inputStyle       lipgloss.Style
	placeholderStyle lipgloss.Style
	nameStyle        lipgloss.Style
	selectedStyle    lipgloss.Style
	descriptionStyle lipgloss.Style
	emptyStyle       lipgloss.Style
	hintStyle        lipgloss.Style
}

// NewQuickNav creates a hidden quick-nav overlay.
func NewQuickNav() *QuickNav {
	return &QuickNav{
		width: 56,
		borderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#36CFC9")).
			Padding(0, 1),
		promptStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffaa00")),
		inputStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")),
		placeholderStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")),
		nameStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#dde4f0")),
		selectedStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffaa00")).
			Background(lipgloss.Color("#3C3C3C")),
		descriptionStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")),
		emptyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true),
		hintStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}

// Toggle flips visibility. Opening always starts from a clean slate:
// empty input, the full jump list, first entry selected.
func (q *QuickNav) Toggle() {
	q.visible = !q.visible
	if q.visible {
		q.input = nil
		q.suggestions = navigationItems()
		q.selectedIndex = 0
	}
}

// Close hides the overlay and drops its transient state.
func (q *QuickNav) Close() {
	q.visible = false
	q.input = nil
	q.suggestions = nil
	q.selectedIndex = 0
}

// IsVisible reports whether the overlay is open.
func (q *QuickNav) IsVisible() bool {
	return q.visible
}

// Input returns the current query text.
func (q *QuickNav) Input() string {
	return string(q.input)
}

// Suggestions returns the currently matching items in list order.
func (q *QuickNav) Suggestions() []NavigationItem {
	return q.suggestions
}

// SelectedIndex returns the highlighted suggestion position.
func (q *QuickNav) SelectedIndex() int {
	return q.selectedIndex
}

// Selected returns the highlighted suggestion, if any.
func (q *QuickNav) Selected() (NavigationItem, bool) {
	if q.selectedIndex < 0 || q.selectedIndex >= len(q.suggestions) {
		return NavigationItem{}, false
	}
	return q.suggestions[q.selectedIndex], true
}

// TypeRune appends to the query. Any edit re-filters and moves the
// selection back to the top.
func (q *QuickNav) TypeRune(r rune) {
	q.input = append(q.input, r)
	q.updateSuggestions()
	q.selectedIndex = 0
}

// Backspace removes the last rune of the query.
func (q *QuickNav) Backspace() {
	if len(q.input) > 0 {
		q.input = q.input[:len(q.input)-1]
	}
	q.updateSuggestions()
	q.selectedIndex = 0
}

// SelectNext moves the highlight down without wrapping.
func (q *QuickNav) SelectNext() {
	if q.selectedIndex < len(q.suggestions)-1 {
		q.selectedIndex++
	}
}

// SelectPrevious moves the highlight up without wrapping.
func (q *QuickNav) SelectPrevious() {
	if q.selectedIndex > 0 {
		q.selectedIndex--
	}
}

func (q *QuickNav) updateSuggestions() {
	all := navigationItems()
	if len(q.input) == 0 {
		q.suggestions = all
		return
	}

	query := strings.ToLower(string(q.input))
	matched := make([]NavigationItem, 0, len(all))
	for _, item := range all {
		if quickNavMatches(item, query) {
			matched = append(matched, item)
		}
	}
	q.suggestions = matched
}

func quickNavMatches(item NavigationItem, query string) bool {
	if strings.Contains(strings.ToLower(item.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Description), query) {
		return true
	}
	for _, kw := range item.Keywords {
		if strings.Contains(strings.ToLower(kw), query) {
			return true
		}
	}
	return false
}

// SetWidth adjusts the overlay width.
func (q *QuickNav) SetWidth(width int) {
	if width > 0 {
		q.width = width
	}
}

// Render returns the quick-nav box.
func (q *QuickNav) Render() string {
	var sb strings.Builder

	prompt := q.promptStyle.Render("🔍 ")
	if len(q.input) == 0 {
		sb.WriteString(prompt + q.placeholderStyle.Render("Type to search services..."))
	} else {
		sb.WriteString(prompt + q.inputStyle.Render(string(q.input)) + q.promptStyle.Render("█"))
	}
	sb.WriteString("\n\n")

	if len(q.suggestions) == 0 {
		sb.WriteString(q.emptyStyle.Render("No matching services found"))
		sb.WriteString("\n")
	} else {
		rowWidth := q.width - 4
		for i, item := range q.suggestions {
			line := "  " + item.Icon + " " + item.Name
			nameStyle := q.nameStyle
			if i == q.selectedIndex {
				line = "▸ " + item.Icon + " " + item.Name
				nameStyle = q.selectedStyle
			}
			row := nameStyle.Render(line) + q.descriptionStyle.Render("  "+item.Description)
			sb.WriteString(truncate.StringWithTail(row, uint(rowWidth), "…"))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(q.hintStyle.Render("↑/↓ navigate    enter go    esc cancel"))

	return q.borderStyle.Width(q.width).Render(sb.String())
}
