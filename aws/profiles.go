package aws

import (
	"os"
	"path/filepath"
	"sort"

	"nimbus-ctl/apperr"
)

// ProfileManager knows where credential files live and which profiles
// are usable. Credential file parsing is out of scope; the manager
// serves a static default set.
type ProfileManager struct {
	profiles        map[string]Profile
	credentialsPath string
	configPath      string
}

// NewProfileManager resolves the credential file locations and loads
// the available profiles.
func NewProfileManager() (*ProfileManager, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeProfile, err, "cannot find home directory")
	}
	awsDir := filepath.Join(home, ".aws")

	m := &ProfileManager{
		profiles:        make(map[string]Profile),
		credentialsPath: filepath.Join(awsDir, "credentials"),
		configPath:      filepath.Join(awsDir, "config"),
	}
	m.loadProfiles()
	return m, nil
}

func (m *ProfileManager) loadProfiles() {
	m.profiles["default"] = Profile{
		Name:   "default",
		Region: "us-east-1",
	}
}

// Profiles returns all known profiles sorted by name.
func (m *ProfileManager) Profiles() []Profile {
	out := make([]Profile, 0, len(m.profiles))
	for _, p := range m.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Get returns the named profile.
func (m *ProfileManager) Get(name string) (Profile, bool) {
	p, ok := m.profiles[name]
	return p, ok
}

// Exists reports whether the named profile is known.
func (m *ProfileManager) Exists(name string) bool {
	_, ok := m.profiles[name]
	return ok
}

// Default returns the default profile if present.
func (m *ProfileManager) Default() (Profile, bool) {
	return m.Get("default")
}

// CredentialsPath returns the resolved credentials file location.
func (m *ProfileManager) CredentialsPath() string {
	return m.credentialsPath
}

// ConfigPath returns the resolved config file location.
func (m *ProfileManager) ConfigPath() string {
	return m.configPath
}
