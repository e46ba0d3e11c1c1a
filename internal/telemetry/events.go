package telemetry

import (
	"runtime"

	"github.com/cheevodev/cheevo/pkg/version"
)

// Event names.
const (
	EventAppExited          = "app_exited"
	EventCLICommandExecuted = "cli_command_executed"
	EventCLIErrorOccurred   = "cli_error_occurred"
	EventCLIHelpViewed      = "cli_help_viewed"
	EventSyncCompleted      = "sync_completed"
	EventPickMade           = "pick_made"
	EventConfigChanged      = "config_changed"
)

// Version is set at compile time via ldflags.
var Version string

// baseProperties returns common properties for all events.
func baseProperties() map[string]interface{} {
	return map[string]interface{}{
		"os":         runtime.GOOS,
		"arch":       runtime.GOARCH,
		"version":    Version,
		"prerelease": version.IsPrerelease(),
		"dev_build":  version.IsDevBuild(),
	}
}

// TrackCLICommandExecuted tracks CLI command execution.
func (c *posthogClient) TrackCLICommandExecuted(commandName string, hasFlags bool, durationMs int64) {
	props := baseProperties()
	props["command_name"] = commandName
	props["has_flags"] = hasFlags
	props["execution_duration_ms"] = durationMs
	c.Track(EventCLICommandExecuted, props)
}

// TrackCLIError tracks CLI command failures.
func (c *posthogClient) TrackCLIError(commandName, errorType string) {
	props := baseProperties()
	props["command_name"] = commandName
	props["error_type"] = errorType
	c.Track(EventCLIErrorOccurred, props)
}

// TrackCLIHelpViewed tracks --help usage.
func (c *posthogClient) TrackCLIHelpViewed(commandName string, cliArgs []string) {
	props := baseProperties()
	props["command_name"] = commandName
	props["arg_count"] = len(cliArgs)
	c.Track(EventCLIHelpViewed, props)
}

// TrackSyncCompleted tracks library sync outcomes. Counts only; never the
// account, game names, or achievement names.
func (c *posthogClient) TrackSyncCompleted(games, achievements, failed int, durationMs int64) {
	props := baseProperties()
	props["game_count"] = games
	props["achievement_count"] = achievements
	props["failed_count"] = failed
	props["sync_duration_ms"] = durationMs
	c.Track(EventSyncCompleted, props)
}

// TrackPickMade tracks that a recommendation was produced.
func (c *posthogClient) TrackPickMade(hasExplanation bool) {
	props := baseProperties()
	props["has_explanation"] = hasExplanation
	c.Track(EventPickMade, props)
}

// TrackConfigChanged tracks which config fields were updated (field names
// only, never values).
func (c *posthogClient) TrackConfigChanged(fields []string) {
	props := baseProperties()
	props["fields"] = fields
	c.Track(EventConfigChanged, props)
}

// TrackAppExited tracks application exit.
func (c *posthogClient) TrackAppExited(mode string, sessionDurationMs int64, commandsRun int) {
	props := baseProperties()
	props["mode"] = mode
	props["session_duration_ms"] = sessionDurationMs
	props["commands_run"] = commandsRun
	c.Track(EventAppExited, props)
}

// noopClient event methods.

func (c *noopClient) TrackCLICommandExecuted(commandName string, hasFlags bool, durationMs int64) {}
func (c *noopClient) TrackCLIError(commandName, errorType string)                                 {}
func (c *noopClient) TrackCLIHelpViewed(commandName string, cliArgs []string)                     {}
func (c *noopClient) TrackSyncCompleted(games, achievements, failed int, durationMs int64)        {}
func (c *noopClient) TrackPickMade(hasExplanation bool)                                           {}
func (c *noopClient) TrackConfigChanged(fields []string)                                          {}
func (c *noopClient) TrackAppExited(mode string, sessionDurationMs int64, commandsRun int)        {}
