package ui

import (
	"testing"
	"time"

	"nimbus-ctl/aws"
	"nimbus-ctl/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDashboardKeepsOnlyKnownWidgets(t *testing.T) {
	d := NewDashboard([]string{WidgetFavorites, "bogus", WidgetRecent, "widget_positions"})
	assert.Equal(t, []string{WidgetFavorites, WidgetRecent}, d.Widgets())
}

func TestDashboardWidgetOrderFollowsConfig(t *testing.T) {
	d := NewDashboard([]string{WidgetServiceStatus, WidgetFavorites})
	assert.Equal(t, []string{WidgetServiceStatus, WidgetFavorites}, d.Widgets())
}

func TestDashboardCycleWidgetWraps(t *testing.T) {
	d := NewDashboard([]string{WidgetFavorites, WidgetRecent, WidgetQuickActions})

	_, ok := d.SelectedWidget()
	assert.False(t, ok)

	d.CycleWidget()
	id, ok := d.SelectedWidget()
	require.True(t, ok)
	assert.Equal(t, WidgetFavorites, id)

	d.CycleWidget()
	d.CycleWidget()
	d.CycleWidget()
	id, _ = d.SelectedWidget()
	assert.Equal(t, WidgetFavorites, id)

	d.ClearSelection()
	_, ok = d.SelectedWidget()
	assert.False(t, ok)
}

func TestDashboardCycleWidgetEmpty(t *testing.T) {
	d := NewDashboard(nil)
	d.CycleWidget()
	_, ok := d.SelectedWidget()
	assert.False(t, ok)
}

func TestDashboardRender(t *testing.T) {
	d := NewDashboard(config.DefaultConfig().Dashboard.EnabledWidgets)
	d.SetWidth(120)

	data := DashboardData{
		Profile: "default",
		Region:  "us-east-1",
		Favorites: []config.Favorite{
			{ID: "i-123", Name: "web-server-prod", Service: aws.EC2, Region: "us-east-1", AddedAt: time.Now()},
		},
		Activity: []config.ActivityEntry{
			{Action: "Executed Start Instance", ResourceName: "web-server-prod", Service: aws.EC2, Region: "us-east-1"},
		},
		Regions:        aws.DefaultRegions(),
		ResourceCounts: map[aws.ServiceType]int{aws.EC2: 3},
	}

	out := d.Render(data)
	assert.Contains(t, out, "Favorite Resources")
	assert.Contains(t, out, "web-server-prod")
	assert.Contains(t, out, "Recent Activity")
	assert.Contains(t, out, "Executed Start Instance")
	assert.Contains(t, out, "Quick Actions")
	assert.Contains(t, out, "Region Overview")
	assert.Contains(t, out, "us-east-1")
	assert.Contains(t, out, "Service Status")
	assert.Contains(t, out, "3 resources")
}

func TestDashboardRenderEmptyData(t *testing.T) {
	d := NewDashboard([]string{WidgetFavorites, WidgetRecent})
	d.SetWidth(100)

	out := d.Render(DashboardData{})
	assert.Contains(t, out, "No favorite resources")
	assert.Contains(t, out, "No recent activity")
}

func TestDefaultQuickActionsOnePerService(t *testing.T) {
	actions := DefaultQuickActions()
	require.Len(t, actions, len(aws.AllServices()))

	seen := make(map[aws.ServiceType]bool)
	for _, action := range actions {
		svc := action.Command.Service()
		assert.False(t, seen[svc], "duplicate quick action for %s", svc.DisplayName())
		seen[svc] = true
		assert.False(t, action.Command.RequiresResource(),
			"%s needs a selected resource and cannot be a dashboard shortcut", action.Command.DisplayName())
	}
}
