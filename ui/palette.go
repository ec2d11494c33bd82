package ui

import (
	"strings"

	"nimbus-ctl/cmd"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// PaletteView draws the command palette overlay. All palette state
// (input, filtering, selection) lives in cmd.Palette; this component
// renders a snapshot of it. Rows are grouped under category headers,
// which only appear when more than one category is visible.
type PaletteView struct {
	width  int
	height int

	borderStyle       lipgloss.Style
	titleStyle        lipgloss.Style
	promptStyle       lipgloss.Style
	inputStyle        lipgloss.Style
	placeholderStyle  lipgloss.Style
	cursorStyle       lipgloss.Style
	headerStyle       lipgloss.Style
	rowStyle          lipgloss.Style
	selectedStyle     lipgloss.Style
	descriptionStyle  lipgloss.Style
	selectedDescStyle lipgloss.Style
	emptyStyle        lipgloss.Style
	hintStyle         lipgloss.Style
}

// NewPaletteView creates a palette renderer with default styling.
func NewPaletteView() *PaletteView {
	return &PaletteView{
		width:  72,
		height: 20,
		borderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#AD58B4")).
			Padding(0, 1),
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#AD58B4")),
		promptStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffaa00")),
		inputStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")),
		placeholderStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")),
		cursorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffaa00")),
		headerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#36CFC9")),
		rowStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#dde4f0")),
		selectedStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffaa00")).
			Background(lipgloss.Color("#3C3C3C")),
		descriptionStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")),
		selectedDescStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DDDDDD")).
			Background(lipgloss.Color("#3C3C3C")),
		emptyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true),
		hintStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}

// SetSize adjusts the overlay dimensions. Height bounds how many list
// rows are visible; the window scrolls to keep the selection on screen.
func (v *PaletteView) SetSize(width, height int) {
	if width > 0 {
		v.width = width
	}
	if height > 0 {
		v.height = height
	}
}

// paletteItem is one display row: either a category header or a
// command at commandIdx in the palette's filtered list.
type paletteItem struct {
	header     string
	command    cmd.Command
	commandIdx int
}

// Render returns the palette box for the palette's current state.
func (v *PaletteView) Render(p *cmd.Palette) string {
	var sb strings.Builder

	sb.WriteString(v.titleStyle.Render("Command Palette"))
	sb.WriteString("\n")
	sb.WriteString(v.renderInput(p))
	sb.WriteString("\n\n")

	commands := p.FilteredCommands()
	if len(commands) == 0 {
		sb.WriteString(v.emptyStyle.Render("No matching commands found"))
		sb.WriteString("\n")
	} else {
		v.renderList(&sb, commands, p.SelectedIndex())
	}

	sb.WriteString("\n")
	sb.WriteString(v.hintStyle.Render("↑/↓ navigate    enter execute    esc cancel"))

	return v.borderStyle.Width(v.width).Render(sb.String())
}

func (v *PaletteView) renderInput(p *cmd.Palette) string {
	prompt := v.promptStyle.Render("⚡ ")
	if p.Input() == "" {
		return prompt + v.placeholderStyle.Render("Type to search commands...") + v.cursorStyle.Render("█")
	}
	return prompt + v.inputStyle.Render(p.Input()) + v.cursorStyle.Render("█")
}

func (v *PaletteView) renderList(sb *strings.Builder, commands []cmd.Command, selected int) {
	items := v.buildItems(commands)

	// Recover the display position of the selected command so the
	// scroll window can track it past the interleaved headers.
	selectedItem := 0
	for i, it := range items {
		if it.header == "" && it.commandIdx == selected {
			selectedItem = i
			break
		}
	}

	maxRows := v.height - 6
	if maxRows < 3 {
		maxRows = 3
	}
	start := 0
	if selectedItem >= maxRows {
		start = selectedItem - maxRows + 1
	}
	end := start + maxRows
	if end > len(items) {
		end = len(items)
	}

	rowWidth := v.width - 4
	for _, it := range items[start:end] {
		if it.header != "" {
			sb.WriteString(v.headerStyle.Render(it.header))
			sb.WriteString("\n")
			continue
		}
		sb.WriteString(v.renderRow(it.command, it.commandIdx == selected, rowWidth))
		sb.WriteString("\n")
	}
	if end < len(items) {
		sb.WriteString(v.hintStyle.Render("  …"))
		sb.WriteString("\n")
	}
}

// buildItems flattens the filtered commands into display rows,
// inserting a header each time the category changes. Filtering
// preserves catalog order, so commands of one category are contiguous.
func (v *PaletteView) buildItems(commands []cmd.Command) []paletteItem {
	multiple := false
	for _, c := range commands[1:] {
		if c.Category != commands[0].Category {
			multiple = true
			break
		}
	}

	items := make([]paletteItem, 0, len(commands)+8)
	for i, c := range commands {
		if multiple && (i == 0 || c.Category != commands[i-1].Category) {
			items = append(items, paletteItem{
				header: c.Category.Icon() + " " + c.Category.DisplayName(),
			})
		}
		items = append(items, paletteItem{command: c, commandIdx: i})
	}
	return items
}

func (v *PaletteView) renderRow(c cmd.Command, selected bool, width int) string {
	line := "  " + c.Icon + " " + c.Name
	desc := c.Description
	if selected {
		line = "▸ " + c.Icon + " " + c.Name
	}

	nameStyle, descStyle := v.rowStyle, v.descriptionStyle
	if selected {
		nameStyle, descStyle = v.selectedStyle, v.selectedDescStyle
	}

	rendered := nameStyle.Render(line)
	if desc != "" {
		rendered += descStyle.Render("  " + desc)
	}
	return truncate.StringWithTail(rendered, uint(width), "…")
}
