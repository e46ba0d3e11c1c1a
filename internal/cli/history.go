package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cheevodev/cheevo/internal/config"
	"github.com/cheevodev/cheevo/internal/db"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show your pick history",
	Long: `Show the ledger of past recommendations, newest first.

Picks referencing achievements that were later overwritten or never
stored display their raw API name.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum entries to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return trackCLIError("history", fmt.Errorf("load config: %w", err))
	}

	paths := config.GetPaths(cfg)
	database, err := db.New(db.DefaultConfig(paths.Database))
	if err != nil {
		return trackCLIError("history", fmt.Errorf("initialize database: %w", err))
	}
	defer func() { _ = database.Close() }()

	entries, err := database.GetPicks(historyLimit)
	if err != nil {
		return trackCLIError("history", fmt.Errorf("read pick history: %w", err))
	}

	if len(entries) == 0 {
		fmt.Println("No picks yet.")
		fmt.Println("\nRun 'cheevo next --app <appid>' to get a recommendation.")
		return nil
	}

	fmt.Printf("PICK HISTORY (%d entries)\n", len(entries))
	fmt.Println("──────────────────────────────────────────────────")

	for _, entry := range entries {
		game := entry.GameName
		if game == "" {
			game = fmt.Sprintf("app %d", entry.GameAppID)
		}
		fmt.Printf("  %s — %s\n", entry.DisplayName, game)
		fmt.Printf("    %s\n", formatTimeSince(entry.PickedAt))
	}

	return nil
}

// formatTimeSince formats a timestamp as a human-readable relative time.
func formatTimeSince(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		mins := int(diff.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", mins)
	case diff < 24*time.Hour:
		hours := int(diff.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	case diff < 7*24*time.Hour:
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	default:
		return t.Format("2006-01-02")
	}
}
