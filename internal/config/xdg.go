// ABOUTME: XDG Base Directory helpers for duckie's data and config files
// ABOUTME: Resolves the default database and global config locations
package config

import (
	"os"
	"path/filepath"
)

const appName = "duckie"

// GetDataHome returns XDG_DATA_HOME or fallback to ~/.local/share
func GetDataHome() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return xdg
	}
	home := os.Getenv("HOME")
	return filepath.Join(home, ".local", "share")
}

// GetConfigHome returns XDG_CONFIG_HOME or fallback to ~/.config
func GetConfigHome() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	home := os.Getenv("HOME")
	return filepath.Join(home, ".config")
}

// DataDir is where duckie keeps its database and history by default.
func DataDir() string {
	return filepath.Join(GetDataHome(), appName)
}

// GlobalConfigPath is the user-wide config file.
func GlobalConfigPath() string {
	return filepath.Join(GetConfigHome(), appName, "config.toml")
}
