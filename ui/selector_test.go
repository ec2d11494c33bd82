package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func regionItems() []SelectorItem {
	return []SelectorItem{
		{Name: "us-east-1", Detail: "US East (N. Virginia)"},
		{Name: "us-west-2", Detail: "US West (Oregon)", Current: true},
		{Name: "eu-west-1", Detail: "Europe (Ireland)"},
	}
}

func TestSelectorStartsOnCurrent(t *testing.T) {
	s := NewSelector("Select AWS Region", regionItems())
	assert.Equal(t, 1, s.SelectedIndex())

	item, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "us-west-2", item.Name)
}

func TestSelectorStartsAtTopWithoutCurrent(t *testing.T) {
	s := NewSelector("Select AWS Profile", []SelectorItem{{Name: "a"}, {Name: "b"}})
	assert.Equal(t, 0, s.SelectedIndex())
}

func TestSelectorNavigationClamps(t *testing.T) {
	s := NewSelector("Select AWS Region", regionItems())

	for i := 0; i < 5; i++ {
		assert.False(t, s.HandleKeyPress(keyMsg("down")))
	}
	assert.Equal(t, 2, s.SelectedIndex())

	for i := 0; i < 5; i++ {
		s.HandleKeyPress(keyMsg("up"))
	}
	assert.Equal(t, 0, s.SelectedIndex())
}

func TestSelectorVimKeys(t *testing.T) {
	s := NewSelector("Select AWS Region", regionItems())
	s.HandleKeyPress(keyMsg("j"))
	assert.Equal(t, 2, s.SelectedIndex())
	s.HandleKeyPress(keyMsg("k"))
	assert.Equal(t, 1, s.SelectedIndex())
}

func TestSelectorEnterSelects(t *testing.T) {
	s := NewSelector("Select AWS Region", regionItems())
	var chosen string
	s.OnSelect = func(name string) { chosen = name }

	s.HandleKeyPress(keyMsg("down"))
	shouldClose := s.HandleKeyPress(keyMsg("enter"))

	assert.True(t, shouldClose)
	assert.Equal(t, "eu-west-1", chosen)
}

func TestSelectorEscCancels(t *testing.T) {
	s := NewSelector("Select AWS Region", regionItems())
	canceled := false
	s.OnCancel = func() { canceled = true }

	shouldClose := s.HandleKeyPress(keyMsg("esc"))
	assert.True(t, shouldClose)
	assert.True(t, canceled)
}

func TestSelectorIgnoresOtherKeys(t *testing.T) {
	s := NewSelector("Select AWS Region", regionItems())
	assert.False(t, s.HandleKeyPress(keyMsg("x")))
	assert.Equal(t, 1, s.SelectedIndex())
}

func TestSelectorRender(t *testing.T) {
	s := NewSelector("Select AWS Region", regionItems())
	out := s.Render()

	assert.Contains(t, out, "Select AWS Region")
	assert.Contains(t, out, "us-west-2")
	assert.Contains(t, out, "(current)")
	assert.Contains(t, out, "enter: select")
}
