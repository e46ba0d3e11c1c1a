// Package cli provides the command-line interface for Cheevo.
package cli

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/cheevodev/cheevo/internal/telemetry"
	"github.com/cheevodev/cheevo/pkg/version"
)

var telemetryClient telemetry.Client

var commandStartTime time.Time

var rootCmd = &cobra.Command{
	Use:   "cheevo",
	Short: "Steam achievement tracker and next-pick recommender",
	Long: `Steam achievement tracker and next-pick recommender

Cheevo keeps a local copy of your Steam library's achievements and tells
you which locked achievement to go for next, with an optional AI-written
explanation of why.

Run without arguments to see your library status.

Telemetry:
  Telemetry is enabled by default, always anonymous, and never tracks
  your Steam account, game names, or achievement names.

  Opt-out with:
  	CHEEVO_TELEMETRY_TRACKING_ENABLED=false`,
	SilenceUsage: true,
	RunE:         runStatus,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commandStartTime = time.Now()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if cmd.Name() != "cheevo" {
			durationMs := time.Since(commandStartTime).Milliseconds()
			hasFlags := cmd.Flags().NFlag() > 0
			telemetryClient.TrackCLICommandExecuted(cmd.Name(), hasFlags, durationMs)
		}

		if cmd.Flags().Changed("help") {
			telemetryClient.TrackCLIHelpViewed(cmd.Name(), os.Args[1:])
		}
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(historyCmd)
}

// Execute runs the CLI with fang enhancements.
func Execute(ctx context.Context, tc telemetry.Client) error {
	if tc == nil {
		tc = telemetry.New(nil)
	}
	telemetryClient = tc

	err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(version.Short()),
		fang.WithCommit(version.Commit),
	)

	if rootCmd.CalledAs() != "" && rootCmd.CalledAs() != "cheevo" {
		durationMs := time.Since(commandStartTime).Milliseconds()
		telemetryClient.TrackAppExited("cli", durationMs, 1)
	}

	return err
}

// trackCLIError wraps an error with telemetry tracking.
// Call this before returning errors from CLI commands.
func trackCLIError(cmdName string, err error) error {
	if err == nil {
		return nil
	}
	errorType := classifyError(err)
	telemetryClient.TrackCLIError(cmdName, errorType)
	return err
}

// classifyError determines the error type for telemetry.
func classifyError(err error) string {
	errStr := err.Error()
	switch {
	case containsAny(errStr, "config", "configuration"):
		return "config_error"
	case containsAny(errStr, "database", "db"):
		return "database_error"
	case containsAny(errStr, "fetch", "network", "timeout", "connection"):
		return "network_error"
	case containsAny(errStr, "permission", "access denied"):
		return "permission_error"
	case containsAny(errStr, "not found", "does not exist"):
		return "not_found_error"
	case containsAny(errStr, "invalid", "parse", "format"):
		return "validation_error"
	default:
		return "unknown_error"
	}
}

// containsAny checks if s contains any of the substrings (case-insensitive).
func containsAny(s string, substrs ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range substrs {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}
