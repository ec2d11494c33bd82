package ui

import (
	"strings"
	"testing"

	"nimbus-ctl/aws"
	"nimbus-ctl/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dashboardPalette() *cmd.Palette {
	ctx := cmd.NewContext(
		cmd.DashboardPage(),
		nil,
		"",
		[]aws.Profile{{Name: "default", Region: "us-east-1"}, {Name: "production", Region: "us-west-2"}},
		aws.DefaultRegions(),
		"default",
		"us-east-1",
	)
	p := cmd.NewPalette(&ctx)
	p.Show()
	return p
}

func TestPaletteViewRenderShowsPlaceholder(t *testing.T) {
	v := NewPaletteView()
	p := dashboardPalette()

	out := v.Render(p)
	assert.Contains(t, out, "Command Palette")
	assert.Contains(t, out, "Type to search commands...")
}

func TestPaletteViewRenderShowsQuery(t *testing.T) {
	v := NewPaletteView()
	p := dashboardPalette()
	p.TypeRune('s')
	p.TypeRune('3')

	out := v.Render(p)
	assert.Contains(t, out, "s3")
	assert.NotContains(t, out, "Type to search commands...")
}

func TestPaletteViewRenderGroupsByCategory(t *testing.T) {
	v := NewPaletteView()
	v.SetSize(90, 60)
	p := dashboardPalette()

	out := v.Render(p)
	assert.Contains(t, out, "Navigation")
	assert.Contains(t, out, "Profile")
	assert.Contains(t, out, "Region")

	// Category order follows the catalog: navigation first.
	navIdx := strings.Index(out, "Navigation")
	profIdx := strings.Index(out, "Profile")
	require.GreaterOrEqual(t, navIdx, 0)
	require.GreaterOrEqual(t, profIdx, 0)
	assert.Less(t, navIdx, profIdx)
}

func TestPaletteViewRenderSingleCategorySkipsHeaders(t *testing.T) {
	v := NewPaletteView()
	v.SetSize(90, 40)
	p := dashboardPalette()
	for _, r := range "switch to region" {
		p.TypeRune(r)
	}
	require.NotEmpty(t, p.FilteredCommands())

	out := v.Render(p)
	assert.NotContains(t, out, "🌍 Region")
}

func TestPaletteViewRenderEmptyState(t *testing.T) {
	v := NewPaletteView()
	p := dashboardPalette()
	for _, r := range "qqqqq" {
		p.TypeRune(r)
	}

	out := v.Render(p)
	assert.Contains(t, out, "No matching commands found")
}

func TestPaletteViewRenderMarksSelection(t *testing.T) {
	v := NewPaletteView()
	v.SetSize(90, 60)
	p := dashboardPalette()

	out := v.Render(p)
	assert.Contains(t, out, "▸")

	first, ok := p.SelectedCommand()
	require.True(t, ok)
	assert.Contains(t, out, first.Name)
}

func TestPaletteViewScrollKeepsSelectionVisible(t *testing.T) {
	v := NewPaletteView()
	v.SetSize(90, 12)
	p := dashboardPalette()

	// Walk to the last filtered command; a short window must follow.
	for i := 0; i < len(p.FilteredCommands()); i++ {
		p.SelectNext()
	}
	last, ok := p.SelectedCommand()
	require.True(t, ok)

	out := v.Render(p)
	assert.Contains(t, out, last.Name)
}
