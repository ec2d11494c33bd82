package overlay

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextInputOverlay is a floating single-line editor, used to edit one
// settings value.
type TextInputOverlay struct {
	input     textinput.Model
	Title     string
	Submitted bool
	Canceled  bool
	OnSubmit  func(value string)
	OnCancel  func()
	width     int
}

// NewTextInputOverlay creates a text input overlay with the given
// title and initial value.
func NewTextInputOverlay(title string, initialValue string) *TextInputOverlay {
	ti := textinput.New()
	ti.SetValue(initialValue)
	ti.Focus()
	ti.Prompt = "> "
	ti.CharLimit = 0

	return &TextInputOverlay{
		input: ti,
		Title: title,
		width: 50,
	}
}

// SetWidth sets the inner width of the overlay.
func (t *TextInputOverlay) SetWidth(width int) {
	t.width = width
	t.input.Width = width - 8
}

// Init starts the cursor blink.
func (t *TextInputOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// HandleKeyPress processes a key press and returns whether the
// overlay should be closed.
func (t *TextInputOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyEsc:
		t.Canceled = true
		if t.OnCancel != nil {
			t.OnCancel()
		}
		return true
	case tea.KeyEnter:
		t.Submitted = true
		if t.OnSubmit != nil {
			t.OnSubmit(t.Value())
		}
		return true
	default:
		t.input, _ = t.input.Update(msg)
		return false
	}
}

// Value returns the current value of the text input.
func (t *TextInputOverlay) Value() string {
	return t.input.Value()
}

// Render renders the text input overlay.
func (t *TextInputOverlay) Render() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		Width(t.width)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("62")).
		Bold(true)

	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(t.Title),
		"",
		t.input.View(),
		"",
		hintStyle.Render("enter: save    esc: cancel"),
	))
}
