package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"nimbus-ctl/aws"
	"nimbus-ctl/log"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

const (
	StateFileName = "state.json"
	// LockFileName is the name of the lock file
	LockFileName = "state.lock"

	// DefaultLockTimeout is the default timeout for acquiring locks
	DefaultLockTimeout = 5 * time.Second

	// maxActivityEntries caps the persisted activity feed. Widgets
	// show fewer; this is the storage bound.
	maxActivityEntries = 50
)

// Favorite is a pinned resource shown on the dashboard.
type Favorite struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Service      aws.ServiceType   `json:"service"`
	Region       string            `json:"region"`
	ARN          string            `json:"arn"`
	Tags         map[string]string `json:"tags,omitempty"`
	AddedAt      time.Time         `json:"added_at"`
	LastAccessed time.Time         `json:"last_accessed"`
	AccessCount  int               `json:"access_count"`
}

// ActivityEntry is one line in the recent-activity feed.
type ActivityEntry struct {
	ID           string          `json:"id"`
	Timestamp    time.Time       `json:"timestamp"`
	Action       string          `json:"action"`
	ResourceID   string          `json:"resource_id"`
	ResourceName string          `json:"resource_name"`
	Service      aws.ServiceType `json:"service"`
	Region       string          `json:"region"`
}

// UIState represents UI preferences that persist between sessions
type UIState struct {
	// SelectedIdx tracks the last selected resource index
	SelectedIdx int `json:"selected_idx"`
	// FilterQuery holds the last resource filter query
	FilterQuery string `json:"filter_query"`
	// LastService is the slug of the last visited service page
	LastService string `json:"last_service"`
}

// FavoriteStorage handles favorite-related operations
type FavoriteStorage interface {
	Favorites() []Favorite
	IsFavorite(resourceID string) bool
	ToggleFavorite(fav Favorite) (added bool, err error)
	TouchFavorite(resourceID string) error
	SearchFavorites(query string) []Favorite
}

// ActivityLog handles the recent-activity feed
type ActivityLog interface {
	RecentActivities(limit int) []ActivityEntry
	RecordActivity(entry ActivityEntry) error
}

// AppState handles application-level state
type AppState interface {
	GetHelpScreensSeen() uint32
	SetHelpScreensSeen(seen uint32) error
	LastContext() (profile, region, page string)
	SetLastContext(profile, region, page string) error
}

// StateManager combines favorite storage, the activity log, and app
// state management
type StateManager interface {
	FavoriteStorage
	ActivityLog
	AppState

	// RefreshState reloads state from disk to detect changes made by other processes
	RefreshState() error

	// Close releases any resources held by the state manager
	Close() error
}

// State represents the application state that persists between sessions
type State struct {
	// HelpScreensSeen is a bitmask tracking which help screens have been shown
	HelpScreensSeen uint32 `json:"help_screens_seen"`
	// FavoritesData holds the pinned resources
	FavoritesData []Favorite `json:"favorites"`
	// Activity holds the recent-activity feed, newest first
	Activity []ActivityEntry `json:"recent_activity"`
	// LastProfile and LastRegion restore the working context on startup
	LastProfile string `json:"last_profile"`
	LastRegion  string `json:"last_region"`
	// LastPage is the slug of the last visited page
	LastPage string `json:"last_page"`
	// UI stores the UI preferences and state
	UI UIState `json:"ui"`

	// Lock file for coordinating state access across processes
	lockFile    *flock.Flock  `json:"-"`
	lockTimeout time.Duration `json:"-"`
}

// DefaultState returns the default state
func DefaultState() *State {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		// Return a minimal state without locking if we can't get the config dir
		return &State{}
	}

	lockPath := filepath.Join(configDir, LockFileName)
	return &State{
		lockFile:    flock.New(lockPath),
		lockTimeout: DefaultLockTimeout,
	}
}

// LoadState loads the state from disk with locking. If it cannot be
// done, we return the default state.
func LoadState() *State {
	state := DefaultState()

	if err := state.loadFromDisk(); err != nil {
		log.WarningLog.Printf("failed to load state from disk: %v", err)
		// We already have the default state, so just continue
	}

	return state
}

// loadFromDisk loads state from disk with a shared read lock
func (s *State) loadFromDisk() error {
	if s.lockFile == nil {
		log.WarningLog.Printf("lock file not initialized, loading state without locking")
		return s.loadFromDiskWithoutLocking()
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.lockTimeout)
	defer cancel()

	locked, err := s.lockFile.TryRLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to acquire read lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("could not acquire read lock within timeout")
	}
	defer s.lockFile.Unlock()

	return s.loadFromDiskWithoutLocking()
}

func (s *State) loadFromDiskWithoutLocking() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	statePath := filepath.Join(configDir, StateFileName)
	data, err := os.ReadFile(statePath)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist yet - keep the default state
			return nil
		}
		return fmt.Errorf("failed to read state file: %w", err)
	}

	var newState State
	if err := json.Unmarshal(data, &newState); err != nil {
		return fmt.Errorf("failed to parse state file: %w", err)
	}

	// Update our fields but keep the lock file and timeout
	s.HelpScreensSeen = newState.HelpScreensSeen
	s.FavoritesData = newState.FavoritesData
	s.Activity = newState.Activity
	s.LastProfile = newState.LastProfile
	s.LastRegion = newState.LastRegion
	s.LastPage = newState.LastPage
	s.UI = newState.UI

	return nil
}

// SaveState saves the state to disk with locking. Writers serialize
// on the lock file, so the last writer wins; removal of a favorite
// therefore sticks.
func SaveState(state *State) error {
	return state.saveToDisk()
}

// saveToDisk saves state to disk with an exclusive write lock
func (s *State) saveToDisk() error {
	if s.lockFile == nil {
		log.WarningLog.Printf("lock file not initialized, saving state without locking")
		return s.saveToDiskWithoutLocking()
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.lockTimeout)
	defer cancel()

	locked, err := s.lockFile.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to acquire write lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("could not acquire write lock within timeout")
	}
	defer s.lockFile.Unlock()

	return s.saveToDiskWithoutLocking()
}

func (s *State) saveToDiskWithoutLocking() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	statePath := filepath.Join(configDir, StateFileName)
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	// Write to a temporary file first to ensure atomicity
	tmpPath := statePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary state file: %w", err)
	}

	if err := os.Rename(tmpPath, statePath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to atomically update state file: %w", err)
	}

	return nil
}

// FavoriteStorage interface implementation

// Favorites returns the pinned resources, most recently accessed
// first.
func (s *State) Favorites() []Favorite {
	out := make([]Favorite, len(s.FavoritesData))
	copy(out, s.FavoritesData)
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastAccessed.After(out[j].LastAccessed)
	})
	return out
}

// FavoritesByService returns the favorites for one service, most
// recently accessed first.
func (s *State) FavoritesByService(service aws.ServiceType) []Favorite {
	var out []Favorite
	for _, fav := range s.Favorites() {
		if fav.Service == service {
			out = append(out, fav)
		}
	}
	return out
}

// IsFavorite reports whether the resource is pinned.
func (s *State) IsFavorite(resourceID string) bool {
	for _, fav := range s.FavoritesData {
		if fav.ID == resourceID {
			return true
		}
	}
	return false
}

// ToggleFavorite pins the resource, or unpins it if already pinned.
// Returns whether the resource is now a favorite.
func (s *State) ToggleFavorite(fav Favorite) (bool, error) {
	for i, existing := range s.FavoritesData {
		if existing.ID == fav.ID {
			s.FavoritesData = append(s.FavoritesData[:i], s.FavoritesData[i+1:]...)
			return false, SaveState(s)
		}
	}

	now := time.Now()
	if fav.AddedAt.IsZero() {
		fav.AddedAt = now
	}
	if fav.LastAccessed.IsZero() {
		fav.LastAccessed = now
	}
	s.FavoritesData = append(s.FavoritesData, fav)
	return true, SaveState(s)
}

// PruneFavorites drops the least recently accessed favorites so at
// most limit remain. A non-positive limit disables pruning.
func (s *State) PruneFavorites(limit int) error {
	if limit <= 0 || len(s.FavoritesData) <= limit {
		return nil
	}
	sorted := s.Favorites()
	s.FavoritesData = sorted[:limit]
	return SaveState(s)
}

// TouchFavorite bumps the access stats for a pinned resource. Unknown
// IDs are a no-op.
func (s *State) TouchFavorite(resourceID string) error {
	for i := range s.FavoritesData {
		if s.FavoritesData[i].ID == resourceID {
			s.FavoritesData[i].LastAccessed = time.Now()
			s.FavoritesData[i].AccessCount++
			return SaveState(s)
		}
	}
	return nil
}

// SearchFavorites returns favorites whose name, ID, or tag values
// contain the query, case-insensitively.
func (s *State) SearchFavorites(query string) []Favorite {
	q := strings.ToLower(query)
	var out []Favorite
	for _, fav := range s.FavoritesData {
		if favoriteMatches(fav, q) {
			out = append(out, fav)
		}
	}
	return out
}

func favoriteMatches(fav Favorite, loweredQuery string) bool {
	if strings.Contains(strings.ToLower(fav.Name), loweredQuery) {
		return true
	}
	if strings.Contains(strings.ToLower(fav.ID), loweredQuery) {
		return true
	}
	for _, v := range fav.Tags {
		if strings.Contains(strings.ToLower(v), loweredQuery) {
			return true
		}
	}
	return false
}

// MostAccessedFavorites returns up to limit favorites by descending
// access count.
func (s *State) MostAccessedFavorites(limit int) []Favorite {
	out := make([]Favorite, len(s.FavoritesData))
	copy(out, s.FavoritesData)
	sort.Slice(out, func(i, j int) bool {
		return out[i].AccessCount > out[j].AccessCount
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// ActivityLog interface implementation

// RecentActivities returns up to limit entries, newest first.
func (s *State) RecentActivities(limit int) []ActivityEntry {
	if limit <= 0 || limit > len(s.Activity) {
		limit = len(s.Activity)
	}
	out := make([]ActivityEntry, limit)
	copy(out, s.Activity[:limit])
	return out
}

// RecordActivity prepends an entry to the feed. An existing entry for
// the same resource is replaced so the feed shows each resource once.
func (s *State) RecordActivity(entry ActivityEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	if entry.ResourceID != "" {
		filtered := s.Activity[:0]
		for _, a := range s.Activity {
			if a.ResourceID != entry.ResourceID {
				filtered = append(filtered, a)
			}
		}
		s.Activity = filtered
	}

	s.Activity = append([]ActivityEntry{entry}, s.Activity...)
	if len(s.Activity) > maxActivityEntries {
		s.Activity = s.Activity[:maxActivityEntries]
	}

	return SaveState(s)
}

// ActivitiesByService returns feed entries for one service, newest
// first.
func (s *State) ActivitiesByService(service aws.ServiceType, limit int) []ActivityEntry {
	var out []ActivityEntry
	for _, a := range s.Activity {
		if a.Service != service {
			continue
		}
		out = append(out, a)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// AppState interface implementation

// GetHelpScreensSeen returns the bitmask of seen help screens
func (s *State) GetHelpScreensSeen() uint32 {
	return s.HelpScreensSeen
}

// SetHelpScreensSeen updates the bitmask of seen help screens
func (s *State) SetHelpScreensSeen(seen uint32) error {
	s.HelpScreensSeen = seen
	return SaveState(s)
}

// LastContext returns the persisted profile, region, and page slug.
func (s *State) LastContext() (profile, region, page string) {
	return s.LastProfile, s.LastRegion, s.LastPage
}

// SetLastContext persists the working context for the next startup.
func (s *State) SetLastContext(profile, region, page string) error {
	s.LastProfile = profile
	s.LastRegion = region
	s.LastPage = page
	return SaveState(s)
}

// RefreshState reloads state from disk with locking
func (s *State) RefreshState() error {
	return s.loadFromDisk()
}

// Close releases any locks held by this state
func (s *State) Close() error {
	if s.lockFile != nil {
		return s.lockFile.Unlock()
	}
	return nil
}

// UI State Management Methods

// GetUIState returns a copy of the current UI state
func (s *State) GetUIState() UIState {
	return s.UI
}

// SetSelectedIndex updates the selected resource index
func (s *State) SetSelectedIndex(index int) error {
	s.UI.SelectedIdx = index
	return SaveState(s)
}

// SetFilterQuery persists the last resource filter query
func (s *State) SetFilterQuery(query string) error {
	s.UI.FilterQuery = query
	return SaveState(s)
}

// SetLastService persists the slug of the last visited service page
func (s *State) SetLastService(slug string) error {
	s.UI.LastService = slug
	return SaveState(s)
}
