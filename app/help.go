package app

import (
	"fmt"

	"nimbus-ctl/aws"
	"nimbus-ctl/log"
	"nimbus-ctl/ui/overlay"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type helpText interface {
	// toContent returns the help UI content.
	toContent() string
	// mask returns the bit mask for this help text. These are used to track which help screens
	// have been seen in the app state.
	mask() uint32
}

type helpTypeMain struct{}

type helpTypePalette struct{}

type helpTypeResourceActions struct {
	service aws.ServiceType
}

func (h helpTypeMain) toContent() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("nimbus-ctl"),
		"",
		"A terminal dashboard for AWS resources, driven by a command palette.",
		"",
		headerStyle.Render("Getting around:"),
		keyStyle.Render("ctrl+p")+descStyle.Render("  - Open the command palette"),
		keyStyle.Render("g")+descStyle.Render("       - Quick navigation to any service or page"),
		keyStyle.Render("p")+descStyle.Render("       - Switch AWS profile"),
		keyStyle.Render("r")+descStyle.Render("       - Switch region"),
		keyStyle.Render("?")+descStyle.Render("       - Full key reference"),
		keyStyle.Render("q")+descStyle.Render("       - Quit"),
		"",
		descStyle.Render("The palette only offers commands that apply to where you are and"),
		descStyle.Render("what you have selected."),
	)
}

func (h helpTypePalette) toContent() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Command Palette"),
		"",
		descStyle.Render("Type to filter commands. The match runs over names, descriptions,"),
		descStyle.Render("and keywords, so \"start\", \"run\", and \"launch\" all find Start Instance."),
		"",
		headerStyle.Render("Keys:"),
		keyStyle.Render("↑/↓")+descStyle.Render("   - Move the selection"),
		keyStyle.Render("↵")+descStyle.Render("     - Run the selected command"),
		keyStyle.Render("esc")+descStyle.Render("   - Close without running anything"),
	)
}

func (h helpTypeResourceActions) toContent() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Resource Selected"),
		"",
		descStyle.Render(fmt.Sprintf("Commands that act on a single %s resource are now available",
			h.service.DisplayName())),
		descStyle.Render("in the command palette."),
		"",
		headerStyle.Render("Shortcuts:"),
		keyStyle.Render("f")+descStyle.Render("     - Pin this resource to the dashboard"),
		keyStyle.Render("y")+descStyle.Render("     - Copy its ARN to the clipboard"),
		keyStyle.Render("esc")+descStyle.Render("   - Back to the list"),
	)
}

func (h helpTypeMain) mask() uint32 {
	return helpScreenMain
}

func (h helpTypePalette) mask() uint32 {
	return 1 << 1
}

func (h helpTypeResourceActions) mask() uint32 {
	return 1 << 2
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("#7D56F4"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#36CFC9"))
	keyStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFCC00"))
	descStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
)

// showHelpScreen displays a one-shot help overlay the first time a
// surface is used. Seen screens are recorded in the state bitmask and
// never offered again.
func (m *home) showHelpScreen(help helpText, onDismiss func()) {
	seen := m.appState.GetHelpScreensSeen()
	flag := help.mask()
	if seen&flag != 0 {
		if onDismiss != nil {
			onDismiss()
		}
		return
	}
	if err := m.appState.SetHelpScreensSeen(seen | flag); err != nil {
		log.WarningLog.Printf("Failed to save help screen state: %v", err)
	}

	m.textOverlay = overlay.NewTextOverlay(help.toContent())
	m.textOverlay.OnDismiss = onDismiss
	m.state = stateHelp
}

// handleHelpState handles key events when in help state. Any key press
// closes the overlay.
func (m *home) handleHelpState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.textOverlay != nil && m.textOverlay.HandleKeyPress(msg) {
		m.state = stateDefault
		m.textOverlay = nil
		return m, m.takeOverlayCmd()
	}
	return m, nil
}
