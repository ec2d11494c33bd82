package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"nimbus-ctl/aws"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFavorite(id, name string, service aws.ServiceType) Favorite {
	return Favorite{
		ID:      id,
		Name:    name,
		Service: service,
		Region:  "us-east-1",
		ARN:     fmt.Sprintf("arn:aws:test:us-east-1:123456789012:%s", id),
	}
}

func TestToggleFavorite(t *testing.T) {
	t.Setenv("NIMBUS_CTL_HOME", t.TempDir())
	state := LoadState()
	defer state.Close()

	added, err := state.ToggleFavorite(testFavorite("i-123", "web-server", aws.EC2))
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, state.IsFavorite("i-123"))

	added, err = state.ToggleFavorite(testFavorite("i-123", "web-server", aws.EC2))
	require.NoError(t, err)
	assert.False(t, added, "second toggle unpins")
	assert.False(t, state.IsFavorite("i-123"))
	assert.Empty(t, state.Favorites())
}

func TestFavoriteRemovalSurvivesReload(t *testing.T) {
	t.Setenv("NIMBUS_CTL_HOME", t.TempDir())
	state := LoadState()
	defer state.Close()

	_, err := state.ToggleFavorite(testFavorite("bucket-1", "assets", aws.S3))
	require.NoError(t, err)
	_, err = state.ToggleFavorite(testFavorite("bucket-1", "assets", aws.S3))
	require.NoError(t, err)

	reloaded := LoadState()
	defer reloaded.Close()
	assert.False(t, reloaded.IsFavorite("bucket-1"), "unpinning must persist")
}

func TestFavoritesSortedByLastAccessed(t *testing.T) {
	t.Setenv("NIMBUS_CTL_HOME", t.TempDir())
	state := LoadState()
	defer state.Close()

	old := testFavorite("i-old", "old-server", aws.EC2)
	old.LastAccessed = time.Now().Add(-time.Hour)
	recent := testFavorite("i-new", "new-server", aws.EC2)
	recent.LastAccessed = time.Now()

	_, err := state.ToggleFavorite(old)
	require.NoError(t, err)
	_, err = state.ToggleFavorite(recent)
	require.NoError(t, err)

	favs := state.Favorites()
	require.Len(t, favs, 2)
	assert.Equal(t, "i-new", favs[0].ID)
	assert.Equal(t, "i-old", favs[1].ID)
}

func TestTouchFavorite(t *testing.T) {
	t.Setenv("NIMBUS_CTL_HOME", t.TempDir())
	state := LoadState()
	defer state.Close()

	fav := testFavorite("db-1", "prod-db", aws.RDS)
	fav.LastAccessed = time.Now().Add(-time.Hour)
	_, err := state.ToggleFavorite(fav)
	require.NoError(t, err)

	require.NoError(t, state.TouchFavorite("db-1"))

	favs := state.Favorites()
	require.Len(t, favs, 1)
	assert.Equal(t, 1, favs[0].AccessCount)
	assert.WithinDuration(t, time.Now(), favs[0].LastAccessed, time.Minute)

	assert.NoError(t, state.TouchFavorite("missing"), "touching an unknown ID is a no-op")
}

func TestSearchFavorites(t *testing.T) {
	t.Setenv("NIMBUS_CTL_HOME", t.TempDir())
	state := LoadState()
	defer state.Close()

	web := testFavorite("i-123", "web-server-prod", aws.EC2)
	web.Tags = map[string]string{"Environment": "production"}
	db := testFavorite("db-1", "analytics-db", aws.RDS)

	_, err := state.ToggleFavorite(web)
	require.NoError(t, err)
	_, err = state.ToggleFavorite(db)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		query    string
		expected []string
	}{
		{"match on name", "WEB", []string{"i-123"}},
		{"match on id", "db-1", []string{"db-1"}},
		{"match on tag value", "production", []string{"i-123"}},
		{"no match", "zzz", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var ids []string
			for _, fav := range state.SearchFavorites(tc.query) {
				ids = append(ids, fav.ID)
			}
			assert.Equal(t, tc.expected, ids)
		})
	}
}

func TestRecordActivityDedupesByResource(t *testing.T) {
	t.Setenv("NIMBUS_CTL_HOME", t.TempDir())
	state := LoadState()
	defer state.Close()

	require.NoError(t, state.RecordActivity(ActivityEntry{
		Action:     "Executed Start Instance",
		ResourceID: "i-123",
		Service:    aws.EC2,
		Region:     "us-east-1",
	}))
	require.NoError(t, state.RecordActivity(ActivityEntry{
		Action:     "Executed Stop Instance",
		ResourceID: "i-123",
		Service:    aws.EC2,
		Region:     "us-east-1",
	}))

	entries := state.RecentActivities(0)
	require.Len(t, entries, 1, "one feed entry per resource")
	assert.Equal(t, "Executed Stop Instance", entries[0].Action)
	assert.NotEmpty(t, entries[0].ID, "entries get generated IDs")
	assert.False(t, entries[0].Timestamp.IsZero())
}

func TestRecordActivityCapsFeed(t *testing.T) {
	t.Setenv("NIMBUS_CTL_HOME", t.TempDir())
	state := LoadState()
	defer state.Close()

	for i := 0; i < maxActivityEntries+10; i++ {
		require.NoError(t, state.RecordActivity(ActivityEntry{
			Action:     "Executed List Buckets",
			ResourceID: fmt.Sprintf("bucket-%d", i),
			Service:    aws.S3,
		}))
	}

	entries := state.RecentActivities(0)
	assert.Len(t, entries, maxActivityEntries)
	assert.Equal(t, fmt.Sprintf("bucket-%d", maxActivityEntries+9), entries[0].ResourceID,
		"newest entry first")

	limited := state.RecentActivities(5)
	assert.Len(t, limited, 5)
}

func TestStateRoundTrip(t *testing.T) {
	t.Setenv("NIMBUS_CTL_HOME", t.TempDir())

	state := LoadState()
	_, err := state.ToggleFavorite(testFavorite("secret-1", "db-password", aws.Secrets))
	require.NoError(t, err)
	require.NoError(t, state.RecordActivity(ActivityEntry{
		Action:     "Executed Get Secret Value",
		ResourceID: "secret-1",
		Service:    aws.Secrets,
		Region:     "us-east-1",
	}))
	require.NoError(t, state.SetLastContext("production", "eu-west-1", "secrets"))
	require.NoError(t, state.SetHelpScreensSeen(3))
	require.NoError(t, state.Close())

	reloaded := LoadState()
	defer reloaded.Close()

	assert.True(t, reloaded.IsFavorite("secret-1"))
	favs := reloaded.Favorites()
	require.Len(t, favs, 1)
	assert.Equal(t, aws.Secrets, favs[0].Service, "service survives the slug round trip")

	entries := reloaded.RecentActivities(0)
	require.Len(t, entries, 1)
	assert.Equal(t, aws.Secrets, entries[0].Service)

	profile, region, page := reloaded.LastContext()
	assert.Equal(t, "production", profile)
	assert.Equal(t, "eu-west-1", region)
	assert.Equal(t, "secrets", page)
	assert.Equal(t, uint32(3), reloaded.GetHelpScreensSeen())
}

func TestLoadStateCorruptFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("NIMBUS_CTL_HOME", dir)

	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, StateFileName), []byte("{broken"), 0644))

	state := LoadState()
	defer state.Close()

	assert.Empty(t, state.Favorites())
	assert.Empty(t, state.RecentActivities(0))
	assert.Equal(t, uint32(0), state.GetHelpScreensSeen())
}

func TestUIStatePersistence(t *testing.T) {
	t.Setenv("NIMBUS_CTL_HOME", t.TempDir())

	state := LoadState()
	require.NoError(t, state.SetSelectedIndex(4))
	require.NoError(t, state.SetFilterQuery("prod"))
	require.NoError(t, state.SetLastService("rds"))
	require.NoError(t, state.Close())

	reloaded := LoadState()
	defer reloaded.Close()

	ui := reloaded.GetUIState()
	assert.Equal(t, 4, ui.SelectedIdx)
	assert.Equal(t, "prod", ui.FilterQuery)
	assert.Equal(t, "rds", ui.LastService)
}
