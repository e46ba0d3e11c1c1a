package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cheevodev/cheevo/internal/config"
	"github.com/cheevodev/cheevo/internal/db"
)

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return trackCLIError("cheevo", fmt.Errorf("load config: %w", err))
	}

	paths := config.GetPaths(cfg)
	database, err := db.New(db.DefaultConfig(paths.Database))
	if err != nil {
		return trackCLIError("cheevo", fmt.Errorf("initialize database: %w", err))
	}
	defer func() { _ = database.Close() }()

	user, err := config.NewResolver(database).GetConfig()
	if err != nil {
		return trackCLIError("cheevo", err)
	}

	stats, err := database.GetStats()
	if err != nil {
		return trackCLIError("cheevo", fmt.Errorf("read stats: %w", err))
	}

	headerStyle := lipgloss.NewStyle().Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B6B6B"))

	fmt.Println(headerStyle.Render("CHEEVO"))
	fmt.Println(dimStyle.Render("──────────────────────────────────────────────────"))

	if err := config.Require(user); err != nil {
		fmt.Println("Not configured yet.")
		fmt.Println()
		var missing *config.MissingError
		if errors.As(err, &missing) {
			fmt.Print(missing.Guidance())
		}
		return nil
	}

	fmt.Printf("  Steam ID:     %s\n", user.SteamID)
	fmt.Printf("  Games:        %d\n", stats.TotalGames)
	fmt.Printf("  Achievements: %d (%d unlocked)\n", stats.TotalAchievements, stats.TotalUnlocked)
	fmt.Printf("  Picks made:   %d\n", stats.TotalPicks)
	fmt.Println()
	if stats.TotalGames == 0 {
		fmt.Println("Run 'cheevo sync' to pull your library.")
	} else {
		fmt.Println("Run 'cheevo next --app <appid>' for a recommendation.")
	}
	return nil
}
