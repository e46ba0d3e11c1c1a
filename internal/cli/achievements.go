package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cheevodev/cheevo/internal/config"
	"github.com/cheevodev/cheevo/internal/db"
)

var achievementsUnearned bool

var achievementsCmd = &cobra.Command{
	Use:   "achievements <appid>",
	Short: "List a game's achievements",
	Long: `List the reconciled achievements of one game in your library.

Examples:
  cheevo achievements 440
  cheevo achievements 440 --unearned`,
	Args: cobra.ExactArgs(1),
	RunE: runAchievements,
}

func init() {
	achievementsCmd.Flags().BoolVar(&achievementsUnearned, "unearned", false, "show only locked achievements")
}

func runAchievements(cmd *cobra.Command, args []string) error {
	appID, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return trackCLIError("achievements", fmt.Errorf("invalid app ID %q", args[0]))
	}

	cfg, err := config.Load()
	if err != nil {
		return trackCLIError("achievements", fmt.Errorf("load config: %w", err))
	}

	paths := config.GetPaths(cfg)
	database, err := db.New(db.DefaultConfig(paths.Database))
	if err != nil {
		return trackCLIError("achievements", fmt.Errorf("initialize database: %w", err))
	}
	defer func() { _ = database.Close() }()

	list, err := database.GetAchievements(uint(appID))
	if err != nil {
		return trackCLIError("achievements", fmt.Errorf("read achievements: %w", err))
	}

	if len(list) == 0 {
		fmt.Printf("No achievements recorded for app %d.\n", appID)
		fmt.Printf("\nRun 'cheevo sync --app %d' first.\n", appID)
		return nil
	}

	unlockedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	lockedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B6B6B"))

	title := fmt.Sprintf("ACHIEVEMENTS for app %d", appID)
	if game, err := database.GetGame(uint(appID)); err == nil {
		title = fmt.Sprintf("ACHIEVEMENTS — %s", game.Name)
	}
	fmt.Println(title)
	fmt.Println("──────────────────────────────────────────────────")

	shown := 0
	for _, a := range list {
		if achievementsUnearned && a.Achieved {
			continue
		}
		shown++

		if a.Achieved {
			line := fmt.Sprintf("  ✓ %s", a.DisplayName)
			if a.UnlockedAt != nil {
				line += fmt.Sprintf("  (unlocked %s)", a.UnlockedAt.Format("2006-01-02"))
			}
			fmt.Println(unlockedStyle.Render(line))
		} else {
			fmt.Println(lockedStyle.Render(fmt.Sprintf("  ✗ %s", a.DisplayName)))
		}
		if a.Description != "" {
			fmt.Printf("      %s\n", a.Description)
		}
	}

	if achievementsUnearned && shown == 0 {
		fmt.Println("  Everything unlocked. Nice.")
	}
	return nil
}
