package cmd

import (
	"testing"

	"nimbus-ctl/aws"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeString(p *Palette, s string) {
	for _, r := range s {
		p.TypeRune(r)
	}
}

func TestPaletteStartsHiddenWithFullCatalog(t *testing.T) {
	ctx := dashboardContext()
	p := NewPalette(&ctx)

	assert.False(t, p.IsVisible())
	assert.Empty(t, p.Input())
	assert.Equal(t, 0, p.SelectedIndex())
	assert.Equal(t, commandIDs(ResolvedCommands(&ctx)), commandIDs(p.FilteredCommands()),
		"empty query shows every applicable command")
}

func TestPaletteToggleAndResetOnReopen(t *testing.T) {
	ctx := dashboardContext()
	p := NewPalette(&ctx)

	p.Toggle()
	assert.True(t, p.IsVisible())

	typeString(p, "region")
	p.SelectNext()
	p.SelectNext()
	require.NotEmpty(t, p.Input())
	require.NotZero(t, p.SelectedIndex())

	p.Toggle()
	assert.False(t, p.IsVisible())

	p.Toggle()
	assert.True(t, p.IsVisible())
	assert.Empty(t, p.Input(), "query is discarded between opens")
	assert.Equal(t, 0, p.SelectedIndex())
	assert.Equal(t, commandIDs(ResolvedCommands(&ctx)), commandIDs(p.FilteredCommands()))
}

func TestPaletteFilterMatchesNameDescriptionKeywordsAndCategory(t *testing.T) {
	ctx := serviceContext(aws.EC2, "i-1234567890abcdef0")
	p := NewPalette(&ctx)
	p.Show()

	testCases := []struct {
		name        string
		query       string
		expectID    string
		description string
	}{
		{"name match", "Terminate Inst", "service.ec2.terminateinstance", "matches on display name"},
		{"case-insensitive name match", "tERMINATE", "service.ec2.terminateinstance", "query case is ignored"},
		{"keyword match", "run", "service.ec2.startinstance", "matches on verb synonym keyword"},
		{"service slug keyword", "ec2", "service.ec2.describeinstance", "matches on the owning service slug"},
		{"description match", "main dashboard", "nav.dashboard", "matches on description text"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p.Show()
			typeString(p, tc.query)
			ids := commandIDs(p.FilteredCommands())
			assert.Contains(t, ids, tc.expectID, tc.description)
		})
	}
}

func TestPaletteFilterByCategoryName(t *testing.T) {
	ctx := dashboardContext()
	p := NewPalette(&ctx)
	p.Show()

	typeString(p, "navigation")
	for _, c := range p.FilteredCommands() {
		assert.Equal(t, CategoryNavigation, c.Category.Kind,
			"category-name query should only surface that category")
	}
	assert.NotEmpty(t, p.FilteredCommands())
}

func TestPaletteFilterPreservesCatalogOrder(t *testing.T) {
	ctx := dashboardContext()
	p := NewPalette(&ctx)
	p.Show()

	typeString(p, "switch")
	filtered := p.FilteredCommands()
	require.NotEmpty(t, filtered)

	// Profile switches come before region switches, as in the catalog.
	sawRegion := false
	for _, c := range filtered {
		if c.Category.Kind == CategoryRegion {
			sawRegion = true
		}
		if sawRegion {
			assert.NotEqual(t, CategoryProfile, c.Category.Kind, "filter reordered results")
		}
	}
}

func TestPaletteNoMatch(t *testing.T) {
	ctx := dashboardContext()
	p := NewPalette(&ctx)
	p.Show()

	typeString(p, "zzzzzz")
	assert.Empty(t, p.FilteredCommands())
	assert.Equal(t, 0, p.SelectedIndex())

	_, ok := p.SelectedCommand()
	assert.False(t, ok, "no selection on an empty result list")
}

func TestPaletteFilterNarrowingIsMonotonic(t *testing.T) {
	ctx := serviceContext(aws.EC2, "i-1234567890abcdef0")
	p := NewPalette(&ctx)
	p.Show()

	prev := len(p.FilteredCommands())
	for _, r := range "instance" {
		p.TypeRune(r)
		cur := len(p.FilteredCommands())
		assert.LessOrEqual(t, cur, prev, "typing %q grew the result list", string(r))
		prev = cur
	}

	// A dead-end query stays dead no matter what follows.
	typeString(p, "qq")
	require.Empty(t, p.FilteredCommands())
	typeString(p, "more")
	assert.Empty(t, p.FilteredCommands())
}

func TestPaletteSelectionClampsWhenListShrinks(t *testing.T) {
	ctx := dashboardContext()
	p := NewPalette(&ctx)
	p.Show()

	all := len(p.FilteredCommands())
	require.Greater(t, all, 3)
	for i := 0; i < all-1; i++ {
		p.SelectNext()
	}
	require.Equal(t, all-1, p.SelectedIndex())

	typeString(p, "help")
	filtered := p.FilteredCommands()
	require.NotEmpty(t, filtered)
	assert.Equal(t, len(filtered)-1, p.SelectedIndex(), "selection clamps to the shrunken list")

	selected, ok := p.SelectedCommand()
	require.True(t, ok)
	assert.Equal(t, filtered[p.SelectedIndex()].ID, selected.ID)
}

func TestPaletteSelectionDoesNotWrap(t *testing.T) {
	ctx := dashboardContext()
	p := NewPalette(&ctx)
	p.Show()

	p.SelectPrevious()
	assert.Equal(t, 0, p.SelectedIndex(), "no wrap above the top")

	last := len(p.FilteredCommands()) - 1
	for i := 0; i < last+5; i++ {
		p.SelectNext()
	}
	assert.Equal(t, last, p.SelectedIndex(), "no wrap below the bottom")
}

func TestPaletteBackspace(t *testing.T) {
	ctx := dashboardContext()
	p := NewPalette(&ctx)
	p.Show()

	typeString(p, "ec")
	assert.Equal(t, "ec", p.Input())

	p.Backspace()
	assert.Equal(t, "e", p.Input())

	p.Backspace()
	p.Backspace()
	assert.Empty(t, p.Input(), "backspace on an empty query is a no-op")
	assert.Equal(t, commandIDs(ResolvedCommands(&ctx)), commandIDs(p.FilteredCommands()),
		"clearing the query restores the full applicable list")
}

func TestPaletteUpdateContextRebuildsAndRefilters(t *testing.T) {
	dash := dashboardContext()
	p := NewPalette(&dash)
	p.Show()
	typeString(p, "instance")

	for _, c := range p.FilteredCommands() {
		assert.NotEqual(t, ActionExecuteServiceCommand, c.Action.Kind,
			"no instance commands apply on the dashboard")
	}

	ec2 := serviceContext(aws.EC2, "i-1234567890abcdef0")
	p.UpdateContext(&ec2)

	ids := commandIDs(p.FilteredCommands())
	assert.Contains(t, ids, "service.ec2.startinstance")
	assert.Contains(t, ids, "service.ec2.listinstances")
	assert.Equal(t, "instance", p.Input(), "query survives a context refresh")
}

func TestPaletteSwitchTargetsFollowContext(t *testing.T) {
	ctx := dashboardContext()
	p := NewPalette(&ctx)
	p.Show()
	typeString(p, "Switch to Profile")

	ids := commandIDs(p.FilteredCommands())
	assert.Contains(t, ids, "profile.switch.production")
	assert.NotContains(t, ids, "profile.switch.default")

	// After switching, the old profile becomes a target and the new
	// one disappears.
	switched := NewContext(
		DashboardPage(), nil, "",
		testProfiles(), aws.DefaultRegions(),
		"production", "us-west-2",
	)
	p.UpdateContext(&switched)

	ids = commandIDs(p.FilteredCommands())
	assert.Contains(t, ids, "profile.switch.default")
	assert.NotContains(t, ids, "profile.switch.production")
}

func TestPaletteSelectedCommandExecutePayload(t *testing.T) {
	ctx := serviceContext(aws.S3, "assets-prod-bucket")
	p := NewPalette(&ctx)
	p.Show()
	typeString(p, "delete bucket")

	filtered := p.FilteredCommands()
	require.Len(t, filtered, 1)

	c, ok := p.SelectedCommand()
	require.True(t, ok)
	assert.Equal(t, "service.s3.deletebucket", c.ID)
	assert.Equal(t, ActionExecuteServiceCommand, c.Action.Kind)
	assert.Equal(t, aws.S3, c.Action.Service)
	assert.Equal(t, DeleteBucket, c.Action.ServiceCommand)
}
