package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// NotificationLevel classifies a notification for styling.
type NotificationLevel int

const (
	LevelInfo NotificationLevel = iota
	LevelWarning
	LevelError
	LevelSuccess
)

// Notification is one user-facing outcome message.
type Notification struct {
	Message   string
	Level     NotificationLevel
	Timestamp time.Time
}

const (
	// maxNotifications bounds the kept history; older entries are
	// dropped silently.
	maxNotifications = 5
	// NotificationTTL is how long the latest notification stays on
	// screen before it expires.
	NotificationTTL = 3 * time.Second
)

// Notifications is the bounded outcome feed. Every dispatched command
// that can fail reports here; rendering shows the latest entry until
// it expires.
type Notifications struct {
	entries []Notification

	infoStyle    lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	successStyle lipgloss.Style
}

// NewNotifications creates an empty feed.
func NewNotifications() *Notifications {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)

	return &Notifications{
		infoStyle:    box.BorderForeground(lipgloss.Color("#007acc")).Foreground(lipgloss.Color("#dde4f0")),
		warningStyle: box.BorderForeground(lipgloss.Color("#ffaa00")).Foreground(lipgloss.Color("#ffaa00")),
		errorStyle:   box.BorderForeground(lipgloss.Color("#de613e")).Foreground(lipgloss.Color("#de613e")),
		successStyle: box.BorderForeground(lipgloss.Color("#2AA198")).Foreground(lipgloss.Color("#2AA198")),
	}
}

// Push appends a notification and trims the feed to its bound.
func (n *Notifications) Push(level NotificationLevel, message string) {
	n.entries = append(n.entries, Notification{
		Message:   message,
		Level:     level,
		Timestamp: time.Now(),
	})
	if len(n.entries) > maxNotifications {
		n.entries = n.entries[len(n.entries)-maxNotifications:]
	}
}

// Info reports an informational outcome.
func (n *Notifications) Info(message string) { n.Push(LevelInfo, message) }

// Warning reports a degraded outcome.
func (n *Notifications) Warning(message string) { n.Push(LevelWarning, message) }

// Error reports a failure.
func (n *Notifications) Error(message string) { n.Push(LevelError, message) }

// Success reports a completed command.
func (n *Notifications) Success(message string) { n.Push(LevelSuccess, message) }

// Latest returns the most recent notification, if any.
func (n *Notifications) Latest() (Notification, bool) {
	if len(n.entries) == 0 {
		return Notification{}, false
	}
	return n.entries[len(n.entries)-1], true
}

// All returns the kept entries, oldest first.
func (n *Notifications) All() []Notification {
	out := make([]Notification, len(n.entries))
	copy(out, n.entries)
	return out
}

// Clear drops every entry.
func (n *Notifications) Clear() {
	n.entries = nil
}

// ExpireBefore drops entries whose display time has passed. The app
// calls this from its tick so stale messages leave the screen.
func (n *Notifications) ExpireBefore(cutoff time.Time) {
	kept := n.entries[:0]
	for _, e := range n.entries {
		if e.Timestamp.After(cutoff) {
			kept = append(kept, e)
		}
	}
	n.entries = kept
}

// Render returns the box for the latest notification, or "" when the
// feed is empty.
func (n *Notifications) Render() string {
	latest, ok := n.Latest()
	if !ok {
		return ""
	}

	style := n.infoStyle
	prefix := "ℹ"
	switch latest.Level {
	case LevelWarning:
		style, prefix = n.warningStyle, "⚠"
	case LevelError:
		style, prefix = n.errorStyle, "✗"
	case LevelSuccess:
		style, prefix = n.successStyle, "✓"
	}
	return style.Render(prefix + " " + latest.Message)
}
