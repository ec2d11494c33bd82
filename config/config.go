// Package config owns everything nimbus-ctl persists: the TOML user
// configuration, the JSON application state, and the watcher that
// picks up external edits to the config file. All access goes through
// a single Store handle so the rest of the app never touches paths.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"nimbus-ctl/log"

	"github.com/BurntSushi/toml"
)

const ConfigFileName = "config.toml"

// GetConfigDir returns the nimbus-ctl configuration directory,
// creating nothing. NIMBUS_CTL_HOME overrides the platform default.
func GetConfigDir() (string, error) {
	return log.GetConfigDir()
}

// ConfigPath returns the full path of the TOML config file.
func ConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// UserConfig is the user-editable configuration, stored as TOML.
type UserConfig struct {
	AWS       AWSConfig       `toml:"aws"`
	Display   DisplayConfig   `toml:"display"`
	Behavior  BehaviorConfig  `toml:"behavior"`
	Dashboard DashboardConfig `toml:"dashboard"`
}

// AWSConfig selects the starting profile/region and provider tuning.
type AWSConfig struct {
	DefaultProfile        string `toml:"default_profile"`
	DefaultRegion         string `toml:"default_region"`
	AutoRefreshInterval   int    `toml:"auto_refresh_interval"`
	MaxConcurrentRequests int    `toml:"max_concurrent_requests"`
}

// DisplayConfig controls chrome and rendering.
type DisplayConfig struct {
	Theme             string `toml:"theme"`
	ShowHelpBar       bool   `toml:"show_help_bar"`
	ShowStatusBar     bool   `toml:"show_status_bar"`
	UseUnicodeSymbols bool   `toml:"use_unicode_symbols"`
	MaxTableRows      int    `toml:"max_table_rows"`
}

// BehaviorConfig controls interaction behavior.
type BehaviorConfig struct {
	AutoRefreshResources      bool `toml:"auto_refresh_resources"`
	ConfirmDestructiveActions bool `toml:"confirm_destructive_actions"`
	RememberLastPage          bool `toml:"remember_last_page"`
	SaveFavorites             bool `toml:"save_favorites"`
}

// DashboardConfig controls the dashboard widgets.
type DashboardConfig struct {
	DefaultPage              string   `toml:"default_page"`
	EnabledWidgets           []string `toml:"enabled_widgets"`
	AutoRefreshDashboard     bool     `toml:"auto_refresh_dashboard"`
	DashboardRefreshInterval int      `toml:"dashboard_refresh_interval"`
	MaxRecentItems           int      `toml:"max_recent_items"`
	MaxFavoriteItems         int      `toml:"max_favorite_items"`
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() *UserConfig {
	return &UserConfig{
		AWS: AWSConfig{
			DefaultProfile:        "default",
			DefaultRegion:         "us-east-1",
			AutoRefreshInterval:   300,
			MaxConcurrentRequests: 10,
		},
		Display: DisplayConfig{
			Theme:             "default",
			ShowHelpBar:       true,
			ShowStatusBar:     true,
			UseUnicodeSymbols: true,
			MaxTableRows:      50,
		},
		Behavior: BehaviorConfig{
			AutoRefreshResources:      true,
			ConfirmDestructiveActions: true,
			RememberLastPage:          true,
			SaveFavorites:             true,
		},
		Dashboard: DashboardConfig{
			DefaultPage: "dashboard",
			EnabledWidgets: []string{
				"favorites",
				"recent",
				"quick_actions",
				"region_overview",
				"service_status",
			},
			AutoRefreshDashboard:     true,
			DashboardRefreshInterval: 60,
			MaxRecentItems:           10,
			MaxFavoriteItems:         10,
		},
	}
}

// LoadConfig loads the TOML config. A missing file is created with
// defaults; an unreadable or unparsable file logs a warning and
// falls back to defaults without touching the broken file.
func LoadConfig() *UserConfig {
	path, err := ConfigPath()
	if err != nil {
		log.ErrorLog.Printf("failed to get config path: %v", err)
		return DefaultConfig()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			defaultCfg := DefaultConfig()
			if saveErr := SaveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to write default config: %v", saveErr)
			}
			return defaultCfg
		}
		log.WarningLog.Printf("failed to read config file: %v", err)
		return DefaultConfig()
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		log.WarningLog.Printf("failed to parse config file, using defaults: %v", err)
		return DefaultConfig()
	}
	return &cfg
}

// SaveConfig writes the config as TOML, creating the directory if
// needed.
func SaveConfig(cfg *UserConfig) error {
	dir, err := GetConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, ConfigFileName))
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// Store is the single handle to persisted configuration and state.
// Reads return copies; writes go through Update so every change is
// saved and no caller holds a mutable alias.
type Store struct {
	mu     sync.RWMutex
	config *UserConfig
	state  *State
}

// NewStore loads config and state from disk, falling back to defaults
// for whatever cannot be read.
func NewStore() *Store {
	return &Store{
		config: LoadConfig(),
		state:  LoadState(),
	}
}

// Config returns a copy of the current configuration.
func (s *Store) Config() UserConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return *s.config
}

// Update mutates the configuration under lock and persists the
// result.
func (s *Store) Update(mutate func(*UserConfig)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	mutate(s.config)
	return SaveConfig(s.config)
}

// Reload re-reads the config file, for use after an external edit.
func (s *Store) Reload() {
	cfg := LoadConfig()
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
}

// AppState returns the mutable application state manager.
func (s *Store) AppState() *State {
	return s.state
}

// Close releases state locks.
func (s *Store) Close() error {
	return s.state.Close()
}
