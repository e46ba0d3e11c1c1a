package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cheevodev/cheevo/internal/achsync"
	"github.com/cheevodev/cheevo/internal/config"
	"github.com/cheevodev/cheevo/internal/db"
	"github.com/cheevodev/cheevo/internal/steam"
)

var syncApp uint

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync games and achievements from Steam",
	Long: `Pull your owned-games list and achievement status from Steam.

Without flags the whole library is synced: the games list first, then
every game's achievement schema and your unlock progress, merged into one
record per achievement. With --app only that game's achievements are
refreshed.

A schema or progress fetch that fails degrades to empty rather than
aborting, so one flaky endpoint can't lose the other side's data.

Examples:
  cheevo sync
  cheevo sync --app 440`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().UintVar(&syncApp, "app", 0, "sync a single game by app ID")
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return trackCLIError("sync", fmt.Errorf("load config: %w", err))
	}

	paths := config.GetPaths(cfg)
	database, err := db.New(db.DefaultConfig(paths.Database))
	if err != nil {
		return trackCLIError("sync", fmt.Errorf("initialize database: %w", err))
	}
	defer func() { _ = database.Close() }()

	user, err := config.NewResolver(database).GetConfig()
	if err != nil {
		return trackCLIError("sync", err)
	}
	if err := config.Require(user); err != nil {
		var missing *config.MissingError
		if errors.As(err, &missing) {
			fmt.Println(missing.Error() + ".")
			fmt.Println()
			fmt.Print(missing.Guidance())
			return nil
		}
		return trackCLIError("sync", err)
	}

	service := achsync.NewService(steam.New(), database)
	start := time.Now()

	if syncApp > 0 {
		merged, err := service.SyncAchievements(ctx, user.APIKey, user.SteamID, syncApp)
		if err != nil {
			return trackCLIError("sync", err)
		}

		unlocked := 0
		for _, a := range merged {
			if a.Achieved {
				unlocked++
			}
		}
		telemetryClient.TrackSyncCompleted(0, len(merged), 0, time.Since(start).Milliseconds())
		fmt.Printf("Synced app %d: %d achievements, %d unlocked.\n", syncApp, len(merged), unlocked)
		return nil
	}

	headerStyle := lipgloss.NewStyle().Bold(true)
	fmt.Println(headerStyle.Render("SYNCING library from Steam"))

	bar := NewProgressBar(1, 15)
	summary, err := service.SyncAll(ctx, user.APIKey, user.SteamID, func(done, total int, name string) {
		if total == 0 {
			return
		}
		bar = NewProgressBar(total, 15)
		bar.Update(done, name)
		ClearLine()
		fmt.Print(bar.Render())
	})
	fmt.Println()
	if err != nil {
		return trackCLIError("sync", err)
	}

	telemetryClient.TrackSyncCompleted(summary.Games, summary.Achievements, summary.Failed, time.Since(start).Milliseconds())

	fmt.Printf("Synced %d games, %d achievements.\n", summary.Games, summary.Achievements)
	if summary.Failed > 0 {
		fmt.Printf("%d game(s) failed to sync and were skipped.\n", summary.Failed)
	}
	return nil
}
