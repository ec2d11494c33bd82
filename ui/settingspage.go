package ui

import (
	"fmt"
	"strconv"
	"strings"

	"nimbus-ctl/aws"
	"nimbus-ctl/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// FieldKind says how a settings field is edited.
type FieldKind int

const (
	// FieldText opens a text input prefilled with the current value.
	FieldText FieldKind = iota
	// FieldToggle flips the value in place on enter.
	FieldToggle
)

// SettingsField is one editable configuration value.
type SettingsField struct {
	Label string
	Kind  FieldKind
	// Value formats the current value for display and editing.
	Value func(c config.UserConfig) string
	// Apply parses raw input into the config. Text fields only.
	Apply func(c *config.UserConfig, raw string) error
	// Toggle flips the value. Toggle fields only.
	Toggle func(c *config.UserConfig)
}

type settingsSection struct {
	title  string
	fields []SettingsField
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func parsePositiveInt(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	if n <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", n)
	}
	return n, nil
}

func settingsSections() []settingsSection {
	return []settingsSection{
		{
			title: "AWS Settings",
			fields: []SettingsField{
				{
					Label: "Default Profile",
					Kind:  FieldText,
					Value: func(c config.UserConfig) string { return c.AWS.DefaultProfile },
					Apply: func(c *config.UserConfig, raw string) error {
						raw = strings.TrimSpace(raw)
						if raw == "" {
							return fmt.Errorf("profile cannot be empty")
						}
						c.AWS.DefaultProfile = raw
						return nil
					},
				},
				{
					Label: "Default Region",
					Kind:  FieldText,
					Value: func(c config.UserConfig) string { return c.AWS.DefaultRegion },
					Apply: func(c *config.UserConfig, raw string) error {
						raw = strings.TrimSpace(raw)
						if !aws.IsValidRegion(raw) {
							return fmt.Errorf("unknown region %q", raw)
						}
						c.AWS.DefaultRegion = raw
						return nil
					},
				},
				{
					Label: "Auto Refresh (s)",
					Kind:  FieldText,
					Value: func(c config.UserConfig) string { return strconv.Itoa(c.AWS.AutoRefreshInterval) },
					Apply: func(c *config.UserConfig, raw string) error {
						n, err := parsePositiveInt(raw)
						if err != nil {
							return err
						}
						c.AWS.AutoRefreshInterval = n
						return nil
					},
				},
				{
					Label: "Max Requests",
					Kind:  FieldText,
					Value: func(c config.UserConfig) string { return strconv.Itoa(c.AWS.MaxConcurrentRequests) },
					Apply: func(c *config.UserConfig, raw string) error {
						n, err := parsePositiveInt(raw)
						if err != nil {
							return err
						}
						c.AWS.MaxConcurrentRequests = n
						return nil
					},
				},
			},
		},
		{
			title: "Display Settings",
			fields: []SettingsField{
				{
					Label: "Theme",
					Kind:  FieldText,
					Value: func(c config.UserConfig) string { return c.Display.Theme },
					Apply: func(c *config.UserConfig, raw string) error {
						raw = strings.TrimSpace(raw)
						if raw == "" {
							return fmt.Errorf("theme cannot be empty")
						}
						c.Display.Theme = raw
						return nil
					},
				},
				{
					Label:  "Help Bar",
					Kind:   FieldToggle,
					Value:  func(c config.UserConfig) string { return yesNo(c.Display.ShowHelpBar) },
					Toggle: func(c *config.UserConfig) { c.Display.ShowHelpBar = !c.Display.ShowHelpBar },
				},
				{
					Label:  "Status Bar",
					Kind:   FieldToggle,
					Value:  func(c config.UserConfig) string { return yesNo(c.Display.ShowStatusBar) },
					Toggle: func(c *config.UserConfig) { c.Display.ShowStatusBar = !c.Display.ShowStatusBar },
				},
				{
					Label:  "Unicode",
					Kind:   FieldToggle,
					Value:  func(c config.UserConfig) string { return yesNo(c.Display.UseUnicodeSymbols) },
					Toggle: func(c *config.UserConfig) { c.Display.UseUnicodeSymbols = !c.Display.UseUnicodeSymbols },
				},
				{
					Label: "Max Table Rows",
					Kind:  FieldText,
					Value: func(c config.UserConfig) string { return strconv.Itoa(c.Display.MaxTableRows) },
					Apply: func(c *config.UserConfig, raw string) error {
						n, err := parsePositiveInt(raw)
						if err != nil {
							return err
						}
						c.Display.MaxTableRows = n
						return nil
					},
				},
			},
		},
		{
			title: "Dashboard Settings",
			fields: []SettingsField{
				{
					Label: "Default Page",
					Kind:  FieldText,
					Value: func(c config.UserConfig) string { return c.Dashboard.DefaultPage },
					Apply: func(c *config.UserConfig, raw string) error {
						raw = strings.TrimSpace(strings.ToLower(raw))
						switch raw {
						case "dashboard", "settings", "ec2", "s3", "rds", "iam", "secrets", "eks":
							c.Dashboard.DefaultPage = raw
							return nil
						default:
							return fmt.Errorf("unknown page %q", raw)
						}
					},
				},
				{
					Label: "Auto Refresh",
					Kind:  FieldToggle,
					Value: func(c config.UserConfig) string { return yesNo(c.Dashboard.AutoRefreshDashboard) },
					Toggle: func(c *config.UserConfig) {
						c.Dashboard.AutoRefreshDashboard = !c.Dashboard.AutoRefreshDashboard
					},
				},
				{
					Label: "Refresh Interval (s)",
					Kind:  FieldText,
					Value: func(c config.UserConfig) string { return strconv.Itoa(c.Dashboard.DashboardRefreshInterval) },
					Apply: func(c *config.UserConfig, raw string) error {
						n, err := parsePositiveInt(raw)
						if err != nil {
							return err
						}
						c.Dashboard.DashboardRefreshInterval = n
						return nil
					},
				},
				{
					Label: "Max Recent Items",
					Kind:  FieldText,
					Value: func(c config.UserConfig) string { return strconv.Itoa(c.Dashboard.MaxRecentItems) },
					Apply: func(c *config.UserConfig, raw string) error {
						n, err := parsePositiveInt(raw)
						if err != nil {
							return err
						}
						c.Dashboard.MaxRecentItems = n
						return nil
					},
				},
				{
					Label: "Max Favorites",
					Kind:  FieldText,
					Value: func(c config.UserConfig) string { return strconv.Itoa(c.Dashboard.MaxFavoriteItems) },
					Apply: func(c *config.UserConfig, raw string) error {
						n, err := parsePositiveInt(raw)
						if err != nil {
							return err
						}
						c.Dashboard.MaxFavoriteItems = n
						return nil
					},
				},
			},
		},
		{
			title: "Behavior Settings",
			fields: []SettingsField{
				{
					Label: "Auto Refresh Resources",
					Kind:  FieldToggle,
					Value: func(c config.UserConfig) string { return yesNo(c.Behavior.AutoRefreshResources) },
					Toggle: func(c *config.UserConfig) {
						c.Behavior.AutoRefreshResources = !c.Behavior.AutoRefreshResources
					},
				},
				{
					Label: "Confirm Destructive",
					Kind:  FieldToggle,
					Value: func(c config.UserConfig) string { return yesNo(c.Behavior.ConfirmDestructiveActions) },
					Toggle: func(c *config.UserConfig) {
						c.Behavior.ConfirmDestructiveActions = !c.Behavior.ConfirmDestructiveActions
					},
				},
				{
					Label: "Remember Last Page",
					Kind:  FieldToggle,
					Value: func(c config.UserConfig) string { return yesNo(c.Behavior.RememberLastPage) },
					Toggle: func(c *config.UserConfig) {
						c.Behavior.RememberLastPage = !c.Behavior.RememberLastPage
					},
				},
				{
					Label:  "Save Favorites",
					Kind:   FieldToggle,
					Value:  func(c config.UserConfig) string { return yesNo(c.Behavior.SaveFavorites) },
					Toggle: func(c *config.UserConfig) { c.Behavior.SaveFavorites = !c.Behavior.SaveFavorites },
				},
			},
		},
	}
}

// SettingsPage is the editable configuration page: four boxed
// sections, one flat selection across all fields. Enter on a toggle
// flips it; enter on a text field hands editing to a text input
// overlay owned by the app.
type SettingsPage struct {
	sections      []settingsSection
	selectedIndex int
	width         int

	boxStyle      lipgloss.Style
	titleStyle    lipgloss.Style
	labelStyle    lipgloss.Style
	valueStyle    lipgloss.Style
	selectedStyle lipgloss.Style
	hintStyle     lipgloss.Style
}

// NewSettingsPage creates the settings page.
func NewSettingsPage() *SettingsPage {
	return &SettingsPage{
		sections: settingsSections(),
		width:    80,
		boxStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#555555")).
			Padding(0, 1),
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#36CFC9")),
		labelStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")),
		valueStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")),
		selectedStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffaa00")).
			Background(lipgloss.Color("#3C3C3C")),
		hintStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}

// SetWidth adjusts the page width.
func (s *SettingsPage) SetWidth(width int) {
	if width > 0 {
		s.width = width
	}
}

func (s *SettingsPage) fieldCount() int {
	n := 0
	for _, sec := range s.sections {
		n += len(sec.fields)
	}
	return n
}

// SelectNext moves the highlight down the flat field list.
func (s *SettingsPage) SelectNext() {
	if s.selectedIndex < s.fieldCount()-1 {
		s.selectedIndex++
	}
}

// SelectPrevious moves the highlight up.
func (s *SettingsPage) SelectPrevious() {
	if s.selectedIndex > 0 {
		s.selectedIndex--
	}
}

// SelectedField returns the highlighted field.
func (s *SettingsPage) SelectedField() SettingsField {
	idx := s.selectedIndex
	for _, sec := range s.sections {
		if idx < len(sec.fields) {
			return sec.fields[idx]
		}
		idx -= len(sec.fields)
	}
	return SettingsField{}
}

// Render draws the four sections in a two-column grid.
func (s *SettingsPage) Render(cfg config.UserConfig) string {
	boxWidth := s.width/2 - 2
	if boxWidth < 30 {
		boxWidth = 30
	}

	boxes := make([]string, 0, len(s.sections))
	globalIdx := 0
	for _, sec := range s.sections {
		var sb strings.Builder
		sb.WriteString(s.titleStyle.Render(sec.title))
		sb.WriteString("\n")
		for _, field := range sec.fields {
			value := field.Value(cfg)
			line := s.labelStyle.Render(field.Label+": ") + s.valueStyle.Render(value)
			if globalIdx == s.selectedIndex {
				line = s.selectedStyle.Render("▸ "+field.Label+": "+value)
			} else {
				line = "  " + line
			}
			sb.WriteString(truncate.StringWithTail(line, uint(boxWidth-2), "…"))
			sb.WriteString("\n")
			globalIdx++
		}
		boxes = append(boxes, s.boxStyle.Width(boxWidth).Render(strings.TrimRight(sb.String(), "\n")))
	}

	left := lipgloss.JoinVertical(lipgloss.Left, boxes[0], boxes[1])
	right := lipgloss.JoinVertical(lipgloss.Left, boxes[2], boxes[3])
	grid := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	hint := s.hintStyle.Render("↑/↓ select    enter edit/toggle    esc back")
	return lipgloss.JoinVertical(lipgloss.Left, grid, hint)
}
