package ui

import (
	"fmt"
	"strings"

	"nimbus-ctl/aws"
	"nimbus-ctl/cmd"
	"nimbus-ctl/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Widget ids understood by the dashboard. The config's enabled_widgets
// list selects and orders them; unknown ids are skipped.
const (
	WidgetFavorites      = "favorites"
	WidgetRecent         = "recent"
	WidgetQuickActions   = "quick_actions"
	WidgetRegionOverview = "region_overview"
	WidgetServiceStatus  = "service_status"
)

// widgetItemLimit caps the rows shown inside one widget box.
const widgetItemLimit = 5

// QuickAction is one dashboard shortcut to a service command.
type QuickAction struct {
	Hotkey  rune
	Command cmd.ServiceCommand
}

// DefaultQuickActions returns one shortcut per service. Only commands
// that work without a selected resource qualify.
func DefaultQuickActions() []QuickAction {
	return []QuickAction{
		{'1', cmd.CreateInstance},
		{'2', cmd.CreateBucket},
		{'3', cmd.ListDatabases},
		{'4', cmd.CreateUser},
		{'5', cmd.CreateSecret},
		{'6', cmd.CreateCluster},
	}
}

// DashboardData is the state snapshot the dashboard renders from.
type DashboardData struct {
	Profile        string
	Region         string
	Favorites      []config.Favorite
	Activity       []config.ActivityEntry
	Regions        []aws.Region
	ResourceCounts map[aws.ServiceType]int
}

// Dashboard renders the landing page: a two-column grid of widget
// boxes driven by the config's enabled_widgets list. Tab cycles the
// highlighted widget.
type Dashboard struct {
	width   int
	widgets []string
	// selectedWidget indexes into widgets; -1 means none highlighted.
	selectedWidget int

	boxStyle         lipgloss.Style
	selectedBoxStyle lipgloss.Style
	titleStyle       lipgloss.Style
	itemStyle        lipgloss.Style
	dimStyle         lipgloss.Style
	accentStyle      lipgloss.Style
	currentStyle     lipgloss.Style
	emptyStyle       lipgloss.Style
}

// NewDashboard creates a dashboard over the enabled widget ids.
func NewDashboard(enabledWidgets []string) *Dashboard {
	known := map[string]bool{
		WidgetFavorites:      true,
		WidgetRecent:         true,
		WidgetQuickActions:   true,
		WidgetRegionOverview: true,
		WidgetServiceStatus:  true,
	}
	widgets := make([]string, 0, len(enabledWidgets))
	for _, id := range enabledWidgets {
		if known[id] {
			widgets = append(widgets, id)
		}
	}

	return &Dashboard{
		width:          80,
		widgets:        widgets,
		selectedWidget: -1,
		boxStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#555555")).
			Padding(0, 1),
		selectedBoxStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#ffaa00")).
			Padding(0, 1),
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#36CFC9")),
		itemStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#dde4f0")),
		dimStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")),
		accentStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffaa00")),
		currentStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2AA198")),
		emptyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true),
	}
}

// SetWidth adjusts the dashboard width.
func (d *Dashboard) SetWidth(width int) {
	if width > 0 {
		d.width = width
	}
}

// Widgets returns the enabled widget ids in render order.
func (d *Dashboard) Widgets() []string {
	return d.widgets
}

// CycleWidget moves the highlight to the next widget, wrapping.
func (d *Dashboard) CycleWidget() {
	if len(d.widgets) == 0 {
		return
	}
	d.selectedWidget = (d.selectedWidget + 1) % len(d.widgets)
}

// ClearSelection drops the widget highlight, e.g. when leaving the
// page.
func (d *Dashboard) ClearSelection() {
	d.selectedWidget = -1
}

// SelectedWidget returns the highlighted widget id, if any.
func (d *Dashboard) SelectedWidget() (string, bool) {
	if d.selectedWidget < 0 || d.selectedWidget >= len(d.widgets) {
		return "", false
	}
	return d.widgets[d.selectedWidget], true
}

// Render lays the enabled widgets out two per row.
func (d *Dashboard) Render(data DashboardData) string {
	if len(d.widgets) == 0 {
		return d.emptyStyle.Render("No dashboard widgets enabled")
	}

	boxWidth := d.width/2 - 2
	if boxWidth < 24 {
		boxWidth = 24
	}

	boxes := make([]string, 0, len(d.widgets))
	for i, id := range d.widgets {
		style := d.boxStyle
		if i == d.selectedWidget {
			style = d.selectedBoxStyle
		}
		boxes = append(boxes, style.Width(boxWidth).Render(d.renderWidget(id, data, boxWidth-2)))
	}

	var rows []string
	for i := 0; i < len(boxes); i += 2 {
		if i+1 < len(boxes) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes[i], " ", boxes[i+1]))
		} else {
			rows = append(rows, boxes[i])
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (d *Dashboard) renderWidget(id string, data DashboardData, width int) string {
	switch id {
	case WidgetFavorites:
		return d.renderFavorites(data.Favorites, width)
	case WidgetRecent:
		return d.renderRecent(data.Activity, width)
	case WidgetQuickActions:
		return d.renderQuickActions(width)
	case WidgetRegionOverview:
		return d.renderRegionOverview(data.Regions, data.Region, width)
	case WidgetServiceStatus:
		return d.renderServiceStatus(data.ResourceCounts, width)
	default:
		return ""
	}
}

func (d *Dashboard) renderFavorites(favorites []config.Favorite, width int) string {
	var sb strings.Builder
	sb.WriteString(d.titleStyle.Render("⭐ Favorite Resources"))
	sb.WriteString("\n")

	if len(favorites) == 0 {
		sb.WriteString(d.emptyStyle.Render("No favorite resources"))
		return sb.String()
	}

	for i, fav := range favorites {
		if i == widgetItemLimit {
			break
		}
		line := d.accentStyle.Render(fmt.Sprintf("[%s] ", fav.Service.DisplayName())) +
			d.itemStyle.Render(fav.Name) +
			d.dimStyle.Render(fmt.Sprintf(" (%s)", fav.Region))
		sb.WriteString(truncate.StringWithTail(line, uint(width), "…"))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (d *Dashboard) renderRecent(activity []config.ActivityEntry, width int) string {
	var sb strings.Builder
	sb.WriteString(d.titleStyle.Render("🕘 Recent Activity"))
	sb.WriteString("\n")

	if len(activity) == 0 {
		sb.WriteString(d.emptyStyle.Render("No recent activity"))
		return sb.String()
	}

	for i, entry := range activity {
		if i == widgetItemLimit {
			break
		}
		line := d.dimStyle.Render("• ") +
			d.accentStyle.Render(entry.Action) + " " +
			d.itemStyle.Render(entry.ResourceName) +
			d.dimStyle.Render(fmt.Sprintf(" (%s)", entry.Region))
		sb.WriteString(truncate.StringWithTail(line, uint(width), "…"))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (d *Dashboard) renderQuickActions(width int) string {
	var sb strings.Builder
	sb.WriteString(d.titleStyle.Render("⚡ Quick Actions"))
	sb.WriteString("\n")

	for _, action := range DefaultQuickActions() {
		svc := action.Command.Service()
		line := d.accentStyle.Render(fmt.Sprintf("[%c] ", action.Hotkey)) +
			svc.Icon() + " " +
			d.itemStyle.Render(action.Command.DisplayName())
		sb.WriteString(truncate.StringWithTail(line, uint(width), "…"))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (d *Dashboard) renderRegionOverview(regions []aws.Region, current string, width int) string {
	var sb strings.Builder
	sb.WriteString(d.titleStyle.Render("🌍 Region Overview"))
	sb.WriteString("\n")

	if len(regions) == 0 {
		sb.WriteString(d.emptyStyle.Render("No regions configured"))
		return sb.String()
	}

	for i, region := range regions {
		if i == widgetItemLimit {
			break
		}
		marker, nameStyle := d.dimStyle.Render("○ "), d.itemStyle
		if region.Name == current {
			marker, nameStyle = d.currentStyle.Render("● "), d.currentStyle
		}
		line := marker + nameStyle.Render(region.Name) +
			d.dimStyle.Render("  "+region.DisplayName)
		sb.WriteString(truncate.StringWithTail(line, uint(width), "…"))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (d *Dashboard) renderServiceStatus(counts map[aws.ServiceType]int, width int) string {
	var sb strings.Builder
	sb.WriteString(d.titleStyle.Render("📊 Service Status"))
	sb.WriteString("\n")

	for _, svc := range aws.AllServices() {
		count, known := 0, false
		if counts != nil {
			count, known = counts[svc]
		}
		detail := d.dimStyle.Render("  not loaded")
		if known {
			detail = d.dimStyle.Render(fmt.Sprintf("  %d resources", count))
		}
		line := svc.Icon() + " " + d.itemStyle.Render(svc.DisplayName()) + detail
		sb.WriteString(truncate.StringWithTail(line, uint(width), "…"))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
