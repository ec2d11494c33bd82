package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextOverlay displays a block of text in a bordered floating panel.
// Any key press dismisses it.
type TextOverlay struct {
	content string
	width   int

	// Dismissed is set once a key press has closed the overlay.
	Dismissed bool
	// OnDismiss is called when the overlay is closed.
	OnDismiss func()
}

// NewTextOverlay creates a text overlay with the given content.
func NewTextOverlay(content string) *TextOverlay {
	return &TextOverlay{
		content: content,
		width:   60,
	}
}

// SetWidth sets the inner width of the overlay.
func (t *TextOverlay) SetWidth(width int) {
	t.width = width
}

// HandleKeyPress processes a key press and returns whether the
// overlay should be closed.
func (t *TextOverlay) HandleKeyPress(tea.KeyMsg) bool {
	t.Dismissed = true
	if t.OnDismiss != nil {
		t.OnDismiss()
	}
	return true
}

// Render renders the overlay content inside its frame.
func (t *TextOverlay) Render() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7D56F4")).
		Padding(1, 2).
		Width(t.width)

	return style.Render(t.content)
}
