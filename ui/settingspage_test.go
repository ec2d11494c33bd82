package ui

import (
	"testing"

	"nimbus-ctl/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsNavigationClamps(t *testing.T) {
	s := NewSettingsPage()

	s.SelectPrevious()
	assert.Equal(t, "Default Profile", s.SelectedField().Label)

	for i := 0; i < 100; i++ {
		s.SelectNext()
	}
	assert.Equal(t, "Save Favorites", s.SelectedField().Label)
}

func TestSettingsSelectionCrossesSections(t *testing.T) {
	s := NewSettingsPage()

	// Four AWS fields, then the display section starts.
	for i := 0; i < 4; i++ {
		s.SelectNext()
	}
	assert.Equal(t, "Theme", s.SelectedField().Label)
}

func TestSettingsTextFieldValidation(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		raw     string
		wantErr bool
		check   func(t *testing.T, c config.UserConfig)
	}{
		{
			name: "region accepts known name", label: "Default Region", raw: "eu-west-1",
			check: func(t *testing.T, c config.UserConfig) {
				assert.Equal(t, "eu-west-1", c.AWS.DefaultRegion)
			},
		},
		{name: "region rejects unknown name", label: "Default Region", raw: "moon-base-1", wantErr: true},
		{name: "profile rejects empty", label: "Default Profile", raw: "   ", wantErr: true},
		{
			name: "interval parses int", label: "Auto Refresh (s)", raw: "120",
			check: func(t *testing.T, c config.UserConfig) {
				assert.Equal(t, 120, c.AWS.AutoRefreshInterval)
			},
		},
		{name: "interval rejects text", label: "Auto Refresh (s)", raw: "soon", wantErr: true},
		{name: "interval rejects negative", label: "Auto Refresh (s)", raw: "-5", wantErr: true},
		{name: "default page rejects unknown", label: "Default Page", raw: "moon", wantErr: true},
		{
			name: "default page accepts service", label: "Default Page", raw: "EC2",
			check: func(t *testing.T, c config.UserConfig) {
				assert.Equal(t, "ec2", c.Dashboard.DefaultPage)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field := findField(t, tt.label)
			require.Equal(t, FieldText, field.Kind)

			cfg := config.DefaultConfig()
			err := field.Apply(cfg, tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, *cfg)
		})
	}
}

func TestSettingsToggleFlips(t *testing.T) {
	field := findField(t, "Confirm Destructive")
	require.Equal(t, FieldToggle, field.Kind)

	cfg := config.DefaultConfig()
	require.True(t, cfg.Behavior.ConfirmDestructiveActions)

	field.Toggle(cfg)
	assert.False(t, cfg.Behavior.ConfirmDestructiveActions)
	field.Toggle(cfg)
	assert.True(t, cfg.Behavior.ConfirmDestructiveActions)
}

func TestSettingsValueFormatting(t *testing.T) {
	cfg := *config.DefaultConfig()

	assert.Equal(t, "default", findField(t, "Default Profile").Value(cfg))
	assert.Equal(t, "300", findField(t, "Auto Refresh (s)").Value(cfg))
	assert.Equal(t, "Yes", findField(t, "Help Bar").Value(cfg))
}

func TestSettingsRender(t *testing.T) {
	s := NewSettingsPage()
	s.SetWidth(110)

	out := s.Render(*config.DefaultConfig())
	assert.Contains(t, out, "AWS Settings")
	assert.Contains(t, out, "Display Settings")
	assert.Contains(t, out, "Dashboard Settings")
	assert.Contains(t, out, "Behavior Settings")
	assert.Contains(t, out, "Default Profile")
	assert.Contains(t, out, "enter edit/toggle")
}

func findField(t *testing.T, label string) SettingsField {
	t.Helper()
	for _, sec := range settingsSections() {
		for _, field := range sec.fields {
			if field.Label == label {
				return field
			}
		}
	}
	t.Fatalf("no settings field labeled %q", label)
	return SettingsField{}
}
