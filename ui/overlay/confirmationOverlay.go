package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationOverlay is a floating y/n prompt used before
// destructive actions.
type ConfirmationOverlay struct {
	message string
	width   int

	// OnConfirm runs when the user presses y.
	OnConfirm func()
	// OnCancel runs when the user presses n or escape.
	OnCancel func()
}

// NewConfirmationOverlay creates a confirmation overlay with the
// given message.
func NewConfirmationOverlay(message string) *ConfirmationOverlay {
	return &ConfirmationOverlay{
		message: message,
		width:   50,
	}
}

// SetWidth sets the inner width of the overlay.
func (c *ConfirmationOverlay) SetWidth(width int) {
	c.width = width
}

// HandleKeyPress processes a key press and returns whether the
// overlay should be closed.
func (c *ConfirmationOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "y", "Y":
		if c.OnConfirm != nil {
			c.OnConfirm()
		}
		return true
	case "n", "N", "esc":
		if c.OnCancel != nil {
			c.OnCancel()
		}
		return true
	default:
		return false
	}
}

// Render renders the prompt with its key hint.
func (c *ConfirmationOverlay) Render() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FAAB3C")).
		Padding(1, 2).
		Width(c.width)

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render("y: confirm    n/esc: cancel")

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, c.message, "", hint))
}
