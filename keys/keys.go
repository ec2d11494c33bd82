package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyUp KeyName = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyQuit

	KeyTab // Tab cycles dashboard widgets.

	KeyPalette  // Toggle the command palette
	KeyQuickNav // Toggle the quick navigation overlay
	KeyHelp     // Key for showing help screen
	KeyEsc      // Escape key for closing overlays and going back

	// Context keybindings
	KeyProfiles // Toggle the profile selector
	KeyRegions  // Toggle the region selector

	// Page keybindings
	KeyDashboard // Jump to the dashboard
	KeySettings  // Open the settings page

	// Resource keybindings
	KeyRefresh  // Reload the current resource list
	KeyFavorite // Pin/unpin the selected resource
	KeyCopyARN  // Copy the selected resource's ARN
	KeyFilter   // Edit the resource list filter
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"up":     KeyUp,
	"k":      KeyUp,
	"down":   KeyDown,
	"j":      KeyDown,
	"left":   KeyLeft,
	"h":      KeyLeft,
	"right":  KeyRight,
	"l":      KeyRight,
	"enter":  KeyEnter,
	"q":      KeyQuit,
	"ctrl+c": KeyQuit,
	"tab":    KeyTab,
	"ctrl+p": KeyPalette,
	"g":      KeyQuickNav,
	"?":      KeyHelp,
	"esc":    KeyEsc,
	"p":      KeyProfiles,
	"r":      KeyRegions,
	"d":      KeyDashboard,
	"s":      KeySettings,
	"R":      KeyRefresh,
	"f":      KeyFavorite,
	"y":      KeyCopyARN,
	"/":      KeyFilter,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	KeyLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	KeyRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	KeyEnter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("↵", "open"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	KeyTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next widget"),
	),
	KeyPalette: key.NewBinding(
		key.WithKeys("ctrl+p"),
		key.WithHelp("^p", "command palette"),
	),
	KeyQuickNav: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "go to"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyEsc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	KeyProfiles: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "profiles"),
	),
	KeyRegions: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "regions"),
	),
	KeyDashboard: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "dashboard"),
	),
	KeySettings: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "settings"),
	),
	KeyRefresh: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "refresh"),
	),
	KeyFavorite: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "favorite"),
	),
	KeyCopyARN: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy ARN"),
	),
	KeyFilter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
}
