// Package config handles application configuration management.
package config

import (
	"os"
)

// Config holds process-level application configuration.
type Config struct {
	// Base directory for all Cheevo data (~/.local/share/cheevo)
	BaseDir string

	// Debug enables verbose database logging
	Debug bool
}

// Environment variable fallbacks for account configuration. Stored values
// always win; these only fill absent ones. Checked in order.
var (
	// SteamIDEnvVars: first non-empty wins.
	SteamIDEnvVars = []string{"STEAM_ID", "STEAMID64", "STEAM_ID64", "STEAM_STEAMID"}

	// APIKeyEnvVars: first defined wins.
	APIKeyEnvVars = []string{"STEAM_API_KEY", "STEAM_WEB_API_KEY", "STEAMKEY"}

	// OpenRouterEnvVars: first defined wins.
	OpenRouterEnvVars = []string{"OPENROUTER_API_KEY"}
)

// Load reads process configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		BaseDir: DefaultBaseDir(),
		Debug:   os.Getenv("CHEEVO_DEBUG") != "",
	}

	if dir := os.Getenv("CHEEVO_DATA_DIR"); dir != "" {
		cfg.BaseDir = dir
	}

	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureDirectories creates required directories if they don't exist.
func ensureDirectories(cfg *Config) error {
	for _, dir := range []string{cfg.BaseDir, GetPaths(cfg).Logs} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
