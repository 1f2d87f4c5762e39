// Package paths provides centralized path resolution for theme-audit's
// config and state files.
//
// Layout (XDG-style):
//
//	Config:  ~/.config/theme-audit/themes.yaml   (override: THEME_AUDIT_CONFIG_DIR)
//	State:   ~/.local/state/theme-audit/         (override: THEME_AUDIT_STATE_DIR)
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	configDirOnce   sync.Once
	configDirCached string

	stateDirOnce   sync.Once
	stateDirCached string
)

// ConfigDir resolves the config directory.
// Priority: THEME_AUDIT_CONFIG_DIR env > ~/.config/theme-audit/
func ConfigDir() string {
	configDirOnce.Do(func() {
		if env := os.Getenv("THEME_AUDIT_CONFIG_DIR"); env != "" {
			configDirCached = env
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				configDirCached = "."
			} else {
				configDirCached = filepath.Join(home, ".config", "theme-audit")
			}
		}
	})
	return configDirCached
}

// StateDir resolves the state directory.
// Priority: THEME_AUDIT_STATE_DIR env > ~/.local/state/theme-audit/
func StateDir() string {
	stateDirOnce.Do(func() {
		if env := os.Getenv("THEME_AUDIT_STATE_DIR"); env != "" {
			stateDirCached = env
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				stateDirCached = "."
			} else {
				stateDirCached = filepath.Join(home, ".local", "state", "theme-audit")
			}
		}
	})
	return stateDirCached
}

// ThemesPath returns the full path to the default user theme file.
func ThemesPath() string {
	return filepath.Join(ConfigDir(), "themes.yaml")
}

// StatePath returns the full path to a state file (e.g. "advice-cache.txt").
func StatePath(filename string) string {
	return filepath.Join(StateDir(), filename)
}

// EnsureConfigDir creates the config directory if it doesn't exist and returns its path.
func EnsureConfigDir() (string, error) {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create config dir %s: %w", dir, err)
	}
	return dir, nil
}

// EnsureStateDir creates the state directory if it doesn't exist and returns its path.
func EnsureStateDir() (string, error) {
	dir := StateDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create state dir %s: %w", dir, err)
	}
	return dir, nil
}

// ResetForTest clears cached values so tests can re-run resolution logic.
// Only use in tests.
func ResetForTest() {
	configDirOnce = sync.Once{}
	configDirCached = ""
	stateDirOnce = sync.Once{}
	stateDirCached = ""
}
