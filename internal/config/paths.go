package config

import (
	"os"
	"path/filepath"
	"strings"
)

// GetHome returns the application home directory.
// Uses $JTUI_HOME when set, otherwise ~/.jtui.
func GetHome() string {
	if home := os.Getenv("JTUI_HOME"); home != "" {
		return home
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "~/.jtui" // Fallback to unexpanded path
	}
	return filepath.Join(homeDir, ".jtui")
}

// GetSettingsPath returns the path to the settings file
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetSSHDir returns the directory holding SSH server keys
func GetSSHDir() string {
	return filepath.Join(GetHome(), "ssh")
}

// ExpandPath expands a leading ~ to the user's home directory
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return homeDir
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
