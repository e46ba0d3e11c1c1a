package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cheevodev/cheevo/internal/config"
	"github.com/cheevodev/cheevo/internal/db"
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List your synced games",
	Long: `List the games in your local library with achievement progress.

Shows each game's app ID and how many achievements remain locked.`,
	Args: cobra.NoArgs,
	RunE: runGames,
}

func runGames(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return trackCLIError("games", fmt.Errorf("load config: %w", err))
	}

	paths := config.GetPaths(cfg)
	database, err := db.New(db.DefaultConfig(paths.Database))
	if err != nil {
		return trackCLIError("games", fmt.Errorf("initialize database: %w", err))
	}
	defer func() { _ = database.Close() }()

	games, err := database.GetGames()
	if err != nil {
		return trackCLIError("games", fmt.Errorf("list games: %w", err))
	}

	if len(games) == 0 {
		fmt.Println("No games synced yet.")
		fmt.Println("\nRun 'cheevo sync' to pull your library.")
		return nil
	}

	fmt.Printf("GAMES (%d)\n", len(games))
	fmt.Println("──────────────────────────────────────────────────")

	for _, game := range games {
		achievements, err := database.GetAchievements(game.AppID)
		if err != nil {
			return trackCLIError("games", fmt.Errorf("read achievements: %w", err))
		}

		unlocked := 0
		for _, a := range achievements {
			if a.Achieved {
				unlocked++
			}
		}

		fmt.Printf("  %-8d %s\n", game.AppID, game.Name)
		if len(achievements) == 0 {
			fmt.Println("           no achievements recorded")
		} else {
			fmt.Printf("           %d/%d unlocked\n", unlocked, len(achievements))
		}
	}

	return nil
}
