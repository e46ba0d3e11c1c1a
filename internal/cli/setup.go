package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cheevodev/cheevo/internal/config"
	"github.com/cheevodev/cheevo/internal/db"
	"github.com/cheevodev/cheevo/internal/steam"
)

var (
	setupSteamID       string
	setupAPIKey        string
	setupOpenRouterKey string
	setupShow          bool
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure your Steam account and API keys",
	Long: `Configure the Steam account Cheevo syncs from.

The Steam ID may be given as a 64-bit ID or a vanity profile name;
vanity names are resolved through the Steam Web API when an API key is
available. Values already stored are kept unless a flag overrides them.

Examples:
  cheevo setup --steam-id 76561197960287930 --api-key ABCD1234
  cheevo setup --steam-id gaben
  cheevo setup --openrouter-key sk-or-...
  cheevo setup --show`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().StringVar(&setupSteamID, "steam-id", "", "64-bit Steam ID or vanity profile name")
	setupCmd.Flags().StringVar(&setupAPIKey, "api-key", "", "Steam Web API key")
	setupCmd.Flags().StringVar(&setupOpenRouterKey, "openrouter-key", "", "OpenRouter API key for explanations")
	setupCmd.Flags().BoolVar(&setupShow, "show", false, "print the effective configuration and exit")
}

func runSetup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return trackCLIError("setup", fmt.Errorf("load config: %w", err))
	}

	paths := config.GetPaths(cfg)
	database, err := db.New(db.DefaultConfig(paths.Database))
	if err != nil {
		return trackCLIError("setup", fmt.Errorf("initialize database: %w", err))
	}
	defer func() { _ = database.Close() }()

	resolver := config.NewResolver(database)

	if setupShow {
		user, err := resolver.GetConfig()
		if err != nil {
			return trackCLIError("setup", err)
		}
		fmt.Printf("Steam ID:       %s\n", valueOrUnset(user.SteamID))
		fmt.Printf("Steam API key:  %s\n", maskKey(user.APIKey))
		fmt.Printf("OpenRouter key: %s\n", maskKey(user.OpenRouterAPIKey))
		return nil
	}

	if setupSteamID == "" && setupAPIKey == "" && setupOpenRouterKey == "" {
		fmt.Println("Nothing to change. Pass --steam-id, --api-key, or --openrouter-key.")
		return nil
	}

	steamID := setupSteamID
	if steamID != "" && !isNumericID(steamID) {
		// Vanity names need an API key to resolve; prefer the one being
		// set right now, else whatever is already configured.
		apiKey := setupAPIKey
		if apiKey == "" {
			if user, err := resolver.GetConfig(); err == nil {
				apiKey = user.APIKey
			}
		}
		if apiKey == "" {
			return trackCLIError("setup", fmt.Errorf("resolving vanity name %q requires a Steam API key; pass --api-key too", steamID))
		}

		resolved := steam.New().ResolveVanityURL(ctx, apiKey, steamID)
		if !isNumericID(resolved) {
			return trackCLIError("setup", fmt.Errorf("could not resolve vanity name %q to a Steam ID", steamID))
		}
		fmt.Printf("Resolved %q to %s\n", steamID, resolved)
		steamID = resolved
	}

	if err := resolver.SetConfig(config.Partial{
		SteamID:          steamID,
		APIKey:           setupAPIKey,
		OpenRouterAPIKey: setupOpenRouterKey,
	}); err != nil {
		return trackCLIError("setup", err)
	}

	var changed []string
	if steamID != "" {
		changed = append(changed, "steam_id")
	}
	if setupAPIKey != "" {
		changed = append(changed, "api_key")
	}
	if setupOpenRouterKey != "" {
		changed = append(changed, "openrouter_key")
	}
	telemetryClient.TrackConfigChanged(changed)

	fmt.Println("Configuration saved.")
	return nil
}

// isNumericID reports whether s looks like a 64-bit Steam ID.
func isNumericID(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func valueOrUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

// maskKey hides all but the tail of a credential.
func maskKey(s string) string {
	if s == "" {
		return "(not set)"
	}
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
