package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// StatusBar is the one-line context strip under the header: current
// profile and region, the page breadcrumb, and the latest
// notification message if one is live.
type StatusBar struct {
	width int

	barStyle          lipgloss.Style
	labelStyle        lipgloss.Style
	valueStyle        lipgloss.Style
	breadcrumbStyle   lipgloss.Style
	notificationStyle lipgloss.Style
	separatorStyle    lipgloss.Style
}

// NewStatusBar creates a status bar renderer.
func NewStatusBar() *StatusBar {
	return &StatusBar{
		width: 80,
		barStyle: lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a1a")).
			Padding(0, 1),
		labelStyle: lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a1a")).
			Foreground(lipgloss.Color("#888888")),
		valueStyle: lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a1a")).
			Foreground(lipgloss.Color("#ffaa00")),
		breadcrumbStyle: lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a1a")).
			Foreground(lipgloss.Color("#36CFC9")),
		notificationStyle: lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a1a")).
			Foreground(lipgloss.Color("#dde4f0")),
		separatorStyle: lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a1a")).
			Foreground(lipgloss.Color("#555555")),
	}
}

// SetWidth adjusts the bar width.
func (s *StatusBar) SetWidth(width int) {
	if width > 0 {
		s.width = width
	}
}

// Render returns the status line.
func (s *StatusBar) Render(profile, region, breadcrumb, notification string) string {
	sep := s.separatorStyle.Render(" │ ")

	parts := []string{
		s.labelStyle.Render("Profile: ") + s.valueStyle.Render(profile),
		s.labelStyle.Render("Region: ") + s.valueStyle.Render(region),
		s.breadcrumbStyle.Render(breadcrumb),
	}
	if notification != "" {
		parts = append(parts, s.notificationStyle.Render(notification))
	}

	line := strings.Join(parts, sep)
	return s.barStyle.Width(s.width).Render(truncate.StringWithTail(line, uint(s.width-2), "…"))
}
