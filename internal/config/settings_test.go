package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyBindingValueUnmarshal(t *testing.T) {
	t.Run("single string", func(t *testing.T) {
		var kv KeyBindingValue
		require.NoError(t, json.Unmarshal([]byte(`"q"`), &kv))
		assert.Equal(t, KeyBindingValue{"q"}, kv)
	})

	t.Run("array of strings", func(t *testing.T) {
		var kv KeyBindingValue
		require.NoError(t, json.Unmarshal([]byte(`["up", "k"]`), &kv))
		assert.Equal(t, KeyBindingValue{"up", "k"}, kv)
	})

	t.Run("empty string yields no keys", func(t *testing.T) {
		var kv KeyBindingValue
		require.NoError(t, json.Unmarshal([]byte(`""`), &kv))
		assert.Empty(t, kv)
	})
}

func TestKeyBindingsConfigValidate(t *testing.T) {
	validNames := []string{"help", "my_issues", "quit"}

	tests := []struct {
		name    string
		config  KeyBindingsConfig
		wantErr string
	}{
		{
			name:   "nil config is valid",
			config: nil,
		},
		{
			name:   "known names and distinct keys",
			config: KeyBindingsConfig{"quit": {"Q"}, "help": {"h", "?"}},
		},
		{
			name:    "unknown binding name",
			config:  KeyBindingsConfig{"teleport": {"T"}},
			wantErr: "unknown key binding",
		},
		{
			name:    "same key bound twice",
			config:  KeyBindingsConfig{"quit": {"x"}, "help": {"x"}},
			wantErr: "assigned to both",
		},
		{
			name:    "empty key value",
			config:  KeyBindingsConfig{"quit": {""}},
			wantErr: "empty value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate(validNames)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadSettings(t *testing.T) {
	t.Run("missing file yields empty settings", func(t *testing.T) {
		t.Setenv("JTUI_HOME", t.TempDir())

		settings, err := LoadSettings()
		require.NoError(t, err)
		assert.Equal(t, &Settings{}, settings)
	})

	t.Run("reads settings from JTUI_HOME", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("JTUI_HOME", home)

		content := `{
			"binary": "/usr/local/bin/jira",
			"command_timeout_seconds": 60,
			"list_limit": 100,
			"keys": {"quit": "Q", "help": ["h", "?"]}
		}`
		require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(content), 0644))

		settings, err := LoadSettings()
		require.NoError(t, err)

		assert.Equal(t, "/usr/local/bin/jira", settings.Binary)
		require.NotNil(t, settings.CommandTimeoutSeconds)
		assert.Equal(t, 60, *settings.CommandTimeoutSeconds)
		require.NotNil(t, settings.ListLimit)
		assert.Equal(t, 100, *settings.ListLimit)
		assert.Equal(t, KeyBindingValue{"Q"}, settings.Keys["quit"])
		assert.Equal(t, KeyBindingValue{"h", "?"}, settings.Keys["help"])
	})

	t.Run("expands tilde in binary path", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("JTUI_HOME", home)

		content := `{"binary": "~/bin/jira"}`
		require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(content), 0644))

		settings, err := LoadSettings()
		require.NoError(t, err)

		userHome, err := os.UserHomeDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(userHome, "bin/jira"), settings.Binary)
	})

	t.Run("invalid json is an error", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("JTUI_HOME", home)
		require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{nope"), 0644))

		_, err := LoadSettings()
		assert.Error(t, err)
	})
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("JTUI_HOME", home)

	timeout := 45
	original := &Settings{
		Binary:                "jira",
		CommandTimeoutSeconds: &timeout,
		Keys:                  KeyBindingsConfig{"quit": {"Q"}},
	}
	require.NoError(t, SaveSettings(original))

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}
