package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Paths contains commonly used file paths.
type Paths struct {
	Database string // Main SQLite database
	Logs     string // Log directory
}

// GetPaths returns all commonly used paths based on config.
func GetPaths(cfg *Config) Paths {
	return Paths{
		Database: filepath.Join(cfg.BaseDir, "cheevo.db"),
		Logs:     filepath.Join(cfg.BaseDir, "logs"),
	}
}

// DefaultBaseDir returns the default base directory, following the XDG
// data-home convention.
func DefaultBaseDir() string {
	if xdg.DataHome != "" {
		return filepath.Join(xdg.DataHome, "cheevo")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cheevo"
	}
	return filepath.Join(home, ".cheevo")
}
