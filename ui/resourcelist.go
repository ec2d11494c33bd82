package ui

import (
	"fmt"
	"sort"
	"strings"

	"nimbus-ctl/aws"
	"nimbus-ctl/cmd"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

func sortedTagKeys(tags map[string]string) []string {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ResourceList is the per-service resource page: a filterable list on
// the left, a summary of the selected resource on the right. Loading
// shows a spinner until the provider answers.
type ResourceList struct {
	service       aws.ServiceType
	resources     []aws.Resource
	filter        string
	selectedIndex int
	loading       bool
	spinner       spinner.Model
	width         int
	maxRows       int

	titleStyle    lipgloss.Style
	boxStyle      lipgloss.Style
	itemStyle     lipgloss.Style
	selectedStyle lipgloss.Style
	stateStyle    lipgloss.Style
	badStateStyle lipgloss.Style
	labelStyle    lipgloss.Style
	valueStyle    lipgloss.Style
	dimStyle      lipgloss.Style
	emptyStyle    lipgloss.Style
}

// NewResourceList creates an empty, loading list for the service.
func NewResourceList(service aws.ServiceType) *ResourceList {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffaa00"))

	return &ResourceList{
		service: service,
		loading: true,
		spinner: sp,
		width:   80,
		maxRows: 50,
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#36CFC9")),
		boxStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#555555")).
			Padding(0, 1),
		itemStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#dde4f0")),
		selectedStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffaa00")).
			Background(lipgloss.Color("#3C3C3C")),
		stateStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2AA198")),
		badStateStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#de613e")),
		labelStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")),
		valueStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")),
		dimStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")),
		emptyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true),
	}
}

// Service returns the service this list shows.
func (r *ResourceList) Service() aws.ServiceType {
	return r.service
}

// SetWidth adjusts the page width.
func (r *ResourceList) SetWidth(width int) {
	if width > 0 {
		r.width = width
	}
}

// SetMaxRows caps how many list rows are drawn.
func (r *ResourceList) SetMaxRows(n int) {
	if n > 0 {
		r.maxRows = n
	}
}

// StartLoading puts the list into its loading state and returns the
// spinner tick command.
func (r *ResourceList) StartLoading() tea.Cmd {
	r.loading = true
	return r.spinner.Tick
}

// SetResources installs the provider's answer and leaves the loading
// state. The selection is clamped into the new list.
func (r *ResourceList) SetResources(resources []aws.Resource) {
	r.resources = resources
	r.loading = false
	r.clampSelection()
}

// Loading reports whether the list is waiting on the provider.
func (r *ResourceList) Loading() bool {
	return r.loading
}

// UpdateSpinner advances the spinner; the app forwards tick messages
// here while loading.
func (r *ResourceList) UpdateSpinner(msg tea.Msg) tea.Cmd {
	if !r.loading {
		return nil
	}
	var cmdOut tea.Cmd
	r.spinner, cmdOut = r.spinner.Update(msg)
	return cmdOut
}

// SetFilter replaces the substring filter and resets the selection.
func (r *ResourceList) SetFilter(query string) {
	r.filter = query
	r.selectedIndex = 0
	r.clampSelection()
}

// Filter returns the current filter query.
func (r *ResourceList) Filter() string {
	return r.filter
}

// Filtered returns the resources passing the filter, in list order.
func (r *ResourceList) Filtered() []aws.Resource {
	if r.filter == "" {
		return r.resources
	}
	query := strings.ToLower(r.filter)
	var out []aws.Resource
	for _, res := range r.resources {
		if resourceMatches(res, query) {
			out = append(out, res)
		}
	}
	return out
}

func resourceMatches(res aws.Resource, query string) bool {
	if strings.Contains(strings.ToLower(res.ID), query) ||
		strings.Contains(strings.ToLower(res.Name), query) ||
		strings.Contains(strings.ToLower(res.State), query) {
		return true
	}
	for _, v := range res.Tags {
		if strings.Contains(strings.ToLower(v), query) {
			return true
		}
	}
	return false
}

// SelectNext moves the selection down without wrapping.
func (r *ResourceList) SelectNext() {
	if r.selectedIndex < len(r.Filtered())-1 {
		r.selectedIndex++
	}
}

// SelectPrevious moves the selection up without wrapping.
func (r *ResourceList) SelectPrevious() {
	if r.selectedIndex > 0 {
		r.selectedIndex--
	}
}

// SelectedIndex returns the selection position within the filtered
// list.
func (r *ResourceList) SelectedIndex() int {
	return r.selectedIndex
}

// SetSelectedIndex restores a remembered selection, clamped.
func (r *ResourceList) SetSelectedIndex(i int) {
	r.selectedIndex = i
	r.clampSelection()
}

// Selected returns the selected resource, if any.
func (r *ResourceList) Selected() (aws.Resource, bool) {
	filtered := r.Filtered()
	if r.selectedIndex < 0 || r.selectedIndex >= len(filtered) {
		return aws.Resource{}, false
	}
	return filtered[r.selectedIndex], true
}

func (r *ResourceList) clampSelection() {
	n := len(r.Filtered())
	if n == 0 {
		r.selectedIndex = 0
		return
	}
	if r.selectedIndex >= n {
		r.selectedIndex = n - 1
	}
	if r.selectedIndex < 0 {
		r.selectedIndex = 0
	}
}

// Render draws the list panel and the selected-resource side panel.
func (r *ResourceList) Render(favoriteIDs map[string]bool) string {
	listWidth := r.width * 3 / 5
	detailWidth := r.width - listWidth - 2
	if detailWidth < 20 {
		detailWidth = 20
	}

	left := r.boxStyle.Width(listWidth).Render(r.renderListPanel(listWidth - 2, favoriteIDs))
	right := r.boxStyle.Width(detailWidth).Render(r.renderSidePanel(detailWidth - 2))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (r *ResourceList) renderListPanel(width int, favoriteIDs map[string]bool) string {
	var sb strings.Builder
	sb.WriteString(r.titleStyle.Render(fmt.Sprintf("%s %s Resources", r.service.Icon(), r.service.DisplayName())))
	sb.WriteString("\n")

	if r.filter != "" {
		sb.WriteString(r.dimStyle.Render("filter: ") + r.itemStyle.Render(r.filter))
		sb.WriteString("\n")
	}

	if r.loading {
		sb.WriteString(r.spinner.View() + r.dimStyle.Render(" Loading resources..."))
		return sb.String()
	}

	filtered := r.Filtered()
	if len(filtered) == 0 {
		if r.filter != "" {
			sb.WriteString(r.emptyStyle.Render("No resources match the filter"))
		} else {
			sb.WriteString(r.emptyStyle.Render("No resources found"))
		}
		return sb.String()
	}

	start := 0
	if r.selectedIndex >= r.maxRows {
		start = r.selectedIndex - r.maxRows + 1
	}
	end := start + r.maxRows
	if end > len(filtered) {
		end = len(filtered)
	}

	// Names are padded to a fixed display width so the ID column lines up.
	nameWidth := width / 3
	if nameWidth < 16 {
		nameWidth = 16
	}
	for i, res := range filtered[start:end] {
		idx := start + i
		marker, style := "  ", r.itemStyle
		if idx == r.selectedIndex {
			marker, style = "► ", r.selectedStyle
		}
		star := ""
		if favoriteIDs[res.ID] {
			star = " ⭐"
		}
		name := runewidth.FillRight(runewidth.Truncate(res.Name, nameWidth, "…"), nameWidth)
		line := style.Render(marker+name) + star +
			r.dimStyle.Render("  "+res.ID) + "  " + r.renderState(res.State)
		sb.WriteString(truncate.StringWithTail(line, uint(width), "…"))
		sb.WriteString("\n")
	}
	if end < len(filtered) {
		sb.WriteString(r.dimStyle.Render(fmt.Sprintf("  … %d more", len(filtered)-end)))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (r *ResourceList) renderSidePanel(width int) string {
	res, ok := r.Selected()
	if !ok {
		return r.emptyStyle.Render("Nothing selected")
	}

	var sb strings.Builder
	writeField := func(label, value string) {
		line := r.labelStyle.Render(label+": ") + r.valueStyle.Render(value)
		sb.WriteString(truncate.StringWithTail(line, uint(width), "…"))
		sb.WriteString("\n")
	}

	writeField("ID", res.ID)
	writeField("Name", res.Name)
	sb.WriteString(r.labelStyle.Render("State: ") + r.renderState(res.State))
	sb.WriteString("\n")
	writeField("Region", res.Region)
	if !res.CreatedAt.IsZero() {
		writeField("Created", res.CreatedAt.Format("2006-01-02"))
	}
	if len(res.Tags) > 0 {
		sb.WriteString(r.labelStyle.Render("Tags:"))
		sb.WriteString("\n")
		for _, k := range sortedTagKeys(res.Tags) {
			line := "  " + r.dimStyle.Render(k+"=") + r.itemStyle.Render(res.Tags[k])
			sb.WriteString(truncate.StringWithTail(line, uint(width), "…"))
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (r *ResourceList) renderState(state string) string {
	switch state {
	case "running", "active", "available":
		return r.stateStyle.Render(state)
	case "stopped", "terminated", "failed":
		return r.badStateStyle.Render(state)
	default:
		return r.itemStyle.Render(state)
	}
}

// ResourceDetail renders the full-page view of one resource: every
// field, the ARN, tags, and the commands that apply to it.
type ResourceDetail struct {
	width int

	titleStyle    lipgloss.Style
	boxStyle      lipgloss.Style
	labelStyle    lipgloss.Style
	valueStyle    lipgloss.Style
	stateStyle    lipgloss.Style
	badStateStyle lipgloss.Style
	dimStyle      lipgloss.Style
	actionStyle   lipgloss.Style
	hintStyle     lipgloss.Style
}

// NewResourceDetail creates a detail page renderer.
func NewResourceDetail() *ResourceDetail {
	return &ResourceDetail{
		width: 80,
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#36CFC9")),
		boxStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#555555")).
			Padding(0, 1),
		labelStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")),
		valueStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")),
		stateStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2AA198")),
		badStateStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#de613e")),
		dimStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")),
		actionStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#dde4f0")),
		hintStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}

// SetWidth adjusts the page width.
func (d *ResourceDetail) SetWidth(width int) {
	if width > 0 {
		d.width = width
	}
}

// Render draws the detail page for the resource.
func (d *ResourceDetail) Render(res aws.Resource) string {
	var sb strings.Builder
	innerWidth := d.width - 4

	sb.WriteString(d.titleStyle.Render(fmt.Sprintf("%s %s Resource Details", res.Service.Icon(), res.Service.DisplayName())))
	sb.WriteString("\n\n")

	writeField := func(label, value string) {
		line := d.labelStyle.Render(label+": ") + d.valueStyle.Render(value)
		sb.WriteString(truncate.StringWithTail(line, uint(innerWidth), "…"))
		sb.WriteString("\n")
	}

	writeField("ID", res.ID)
	writeField("Name", res.Name)
	state := d.stateStyle.Render(res.State)
	switch res.State {
	case "stopped", "terminated", "failed":
		state = d.badStateStyle.Render(res.State)
	}
	sb.WriteString(d.labelStyle.Render("State: ") + state)
	sb.WriteString("\n")
	writeField("Region", res.Region)
	writeField("ARN", res.ARN)
	if !res.CreatedAt.IsZero() {
		writeField("Created", res.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	if !res.LastModified.IsZero() {
		writeField("Modified", res.LastModified.Format("2006-01-02 15:04:05"))
	}

	if len(res.Tags) > 0 {
		sb.WriteString("\n")
		sb.WriteString(d.titleStyle.Render("Tags"))
		sb.WriteString("\n")
		for _, k := range sortedTagKeys(res.Tags) {
			line := "  " + d.dimStyle.Render(k+" = ") + d.actionStyle.Render(res.Tags[k])
			sb.WriteString(truncate.StringWithTail(line, uint(innerWidth), "…"))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(d.titleStyle.Render("Actions"))
	sb.WriteString("\n")
	for _, sc := range cmd.ForService(res.Service) {
		if !sc.RequiresResource() {
			continue
		}
		line := "  • " + d.actionStyle.Render(sc.DisplayName()) +
			d.dimStyle.Render("  "+sc.Description())
		sb.WriteString(truncate.StringWithTail(line, uint(innerWidth), "…"))
		sb.WriteString("\n")
	}
	sb.WriteString(d.hintStyle.Render("Run actions from the command palette (ctrl+p)"))
	sb.WriteString("\n")
	sb.WriteString(d.hintStyle.Render("y: copy ARN    f: toggle favorite    esc: back"))

	return d.boxStyle.Width(d.width).Render(sb.String())
}
