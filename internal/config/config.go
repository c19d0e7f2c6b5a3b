package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755
)

var (
	// ConfigDir is the global configuration directory (~/.markpad)
	ConfigDir string

	// ExportsDir is where TUI-triggered exports land
	ExportsDir string

	// DatabasePath is the SQLite database file holding the draft and theme
	DatabasePath string

	// LogFile is the application log destination
	LogFile string

	// KeybindsFile is the user keybinding overrides file
	KeybindsFile string
)

// Initialize sets up the configuration directories
// It creates ~/.markpad/ if it doesn't exist
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	// Set global paths
	ConfigDir = filepath.Join(homeDir, ".markpad")
	ExportsDir = filepath.Join(ConfigDir, "exports")
	DatabasePath = filepath.Join(ConfigDir, "markpad.db")
	LogFile = filepath.Join(ConfigDir, "markpad.log")
	KeybindsFile = filepath.Join(ConfigDir, "keybinds.json")

	// Create directories if they don't exist
	dirs := []string{ConfigDir, ExportsDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, DirPermissions); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// GetKeybindsFilePath returns the keybinds file path (local or global).
// A keybinds.json in the current directory overrides the global one.
func GetKeybindsFilePath() string {
	if _, err := os.Stat("keybinds.json"); err == nil {
		return "keybinds.json"
	}
	return KeybindsFile
}
