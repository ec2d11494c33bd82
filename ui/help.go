package ui

import (
	"fmt"
	"strings"

	"nimbus-ctl/aws"
	"nimbus-ctl/cmd"
	"nimbus-ctl/keys"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// HelpPanel is the help overlay. Its content is markdown generated
// from the key bindings and the command vocabulary, rendered with
// glamour; when the renderer cannot be built the raw markdown is
// shown instead.
type HelpPanel struct {
	width    int
	renderer *glamour.TermRenderer
	rendered string

	borderStyle lipgloss.Style
	hintStyle   lipgloss.Style
}

// NewHelpPanel creates the help overlay.
func NewHelpPanel() *HelpPanel {
	h := &HelpPanel{
		width: 72,
		borderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
		hintStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(h.width-6),
	)
	if err == nil {
		h.renderer = renderer
	}
	return h
}

// SetWidth adjusts the overlay width and invalidates the cached
// rendering.
func (h *HelpPanel) SetWidth(width int) {
	if width > 0 && width != h.width {
		h.width = width
		h.rendered = ""
		if renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(h.width-6),
		); err == nil {
			h.renderer = renderer
		}
	}
}

// helpMarkdown builds the help text from the live key binding tables
// and the service command vocabulary.
func helpMarkdown() string {
	var sb strings.Builder

	sb.WriteString("# Nimbus CTL\n\n")
	sb.WriteString("A terminal dashboard for your cloud resources. ")
	sb.WriteString("Almost everything can be reached through the command palette: ")
	sb.WriteString("press `ctrl+p`, type a few letters, hit enter.\n\n")

	for _, category := range keys.GetAllCategories() {
		names := keys.GetKeysInCategory(category)
		if len(names) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("## %s\n\n", string(category)))
		for _, name := range names {
			binding, ok := keys.GlobalkeyBindings[name]
			if !ok {
				continue
			}
			info := keys.GetKeyHelp(name)
			sb.WriteString(fmt.Sprintf("- `%s`: %s\n", binding.Help().Key, info.Description))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Services\n\n")
	for _, svc := range aws.AllServices() {
		count := len(cmd.ForService(svc))
		sb.WriteString(fmt.Sprintf("- %s **%s**: %d commands\n", svc.Icon(), svc.DisplayName(), count))
	}
	sb.WriteString("\n")

	sb.WriteString("Commands appear in the palette only when they apply: resource ")
	sb.WriteString("commands need a selected resource, switch commands hide the ")
	sb.WriteString("current profile and region.\n")

	return sb.String()
}

// Render returns the help box. The markdown rendering is cached; the
// content only depends on static tables.
func (h *HelpPanel) Render() string {
	if h.rendered == "" {
		markdown := helpMarkdown()
		if h.renderer != nil {
			if out, err := h.renderer.Render(markdown); err == nil {
				h.rendered = out
			}
		}
		if h.rendered == "" {
			h.rendered = markdown
		}
	}

	content := strings.TrimRight(h.rendered, "\n") + "\n\n" +
		h.hintStyle.Render("? or esc to close")
	return h.borderStyle.Width(h.width).Render(content)
}
