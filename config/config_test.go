package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "default", cfg.AWS.DefaultProfile)
	assert.Equal(t, "us-east-1", cfg.AWS.DefaultRegion)
	assert.Equal(t, 300, cfg.AWS.AutoRefreshInterval)
	assert.Equal(t, 10, cfg.AWS.MaxConcurrentRequests)

	assert.Equal(t, "default", cfg.Display.Theme)
	assert.True(t, cfg.Display.ShowHelpBar)
	assert.True(t, cfg.Display.ShowStatusBar)
	assert.Equal(t, 50, cfg.Display.MaxTableRows)

	assert.True(t, cfg.Behavior.ConfirmDestructiveActions)
	assert.True(t, cfg.Behavior.RememberLastPage)
	assert.True(t, cfg.Behavior.SaveFavorites)

	assert.Equal(t, "dashboard", cfg.Dashboard.DefaultPage)
	assert.Equal(t,
		[]string{"favorites", "recent", "quick_actions", "region_overview", "service_status"},
		cfg.Dashboard.EnabledWidgets)
	assert.Equal(t, 10, cfg.Dashboard.MaxRecentItems)
	assert.Equal(t, 10, cfg.Dashboard.MaxFavoriteItems)
}

func TestLoadConfigCreatesDefaultFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("NIMBUS_CTL_HOME", dir)

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig(), cfg)

	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	assert.NoError(t, err, "first load writes the default config file")
}

func TestConfigRoundTrip(t *testing.T) {
	t.Setenv("NIMBUS_CTL_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.AWS.DefaultProfile = "production"
	cfg.AWS.DefaultRegion = "eu-west-1"
	cfg.Display.Theme = "dark"
	cfg.Display.MaxTableRows = 25
	cfg.Behavior.ConfirmDestructiveActions = false
	cfg.Dashboard.EnabledWidgets = []string{"favorites", "recent"}

	require.NoError(t, SaveConfig(cfg))

	loaded := LoadConfig()
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfigFallsBackOnParseError(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("NIMBUS_CTL_HOME", dir)

	broken := []byte("this is [not valid toml")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), broken, 0644))

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig(), cfg)

	// The broken file is preserved for the user to fix.
	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, broken, data)
}

func TestStoreUpdatePersists(t *testing.T) {
	t.Setenv("NIMBUS_CTL_HOME", t.TempDir())

	store := NewStore()
	defer store.Close()

	require.NoError(t, store.Update(func(cfg *UserConfig) {
		cfg.Display.Theme = "dark"
		cfg.AWS.DefaultRegion = "ap-southeast-1"
	}))
	assert.Equal(t, "dark", store.Config().Display.Theme)

	reopened := NewStore()
	defer reopened.Close()
	assert.Equal(t, "dark", reopened.Config().Display.Theme)
	assert.Equal(t, "ap-southeast-1", reopened.Config().AWS.DefaultRegion)
}

func TestStoreConfigReturnsCopy(t *testing.T) {
	t.Setenv("NIMBUS_CTL_HOME", t.TempDir())

	store := NewStore()
	defer store.Close()

	cfg := store.Config()
	cfg.Display.Theme = "mutated"

	assert.Equal(t, "default", store.Config().Display.Theme,
		"mutating the returned copy must not affect the store")
}
