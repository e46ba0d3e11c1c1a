package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cheevodev/cheevo/internal/config"
	"github.com/cheevodev/cheevo/internal/db"
	"github.com/cheevodev/cheevo/internal/llm"
	"github.com/cheevodev/cheevo/internal/models"
	"github.com/cheevodev/cheevo/internal/picker"
)

// recentPickWindow is how many ledger entries back the selector looks to
// avoid repeating itself.
const recentPickWindow = 5

var (
	nextApp     uint
	nextExplain bool
	nextCopy    bool
	nextModel   string
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Recommend the next achievement to go for",
	Long: `Pick one locked achievement from a game and record it in your
pick history. Recent picks are skipped so repeated runs rotate through
the backlog.

With --explain, an AI-written justification is generated through
OpenRouter (requires an OpenRouter API key, see 'cheevo setup').

Examples:
  cheevo next --app 440
  cheevo next --app 440 --explain
  cheevo next --app 440 --copy`,
	Args: cobra.NoArgs,
	RunE: runNext,
}

func init() {
	nextCmd.Flags().UintVar(&nextApp, "app", 0, "game to pick from (app ID)")
	nextCmd.Flags().BoolVar(&nextExplain, "explain", false, "generate an explanation for the pick")
	nextCmd.Flags().BoolVar(&nextCopy, "copy", false, "copy the achievement name to the clipboard")
	nextCmd.Flags().StringVar(&nextModel, "model", "", "OpenRouter model for --explain")
	_ = nextCmd.MarkFlagRequired("app")
}

func runNext(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return trackCLIError("next", fmt.Errorf("load config: %w", err))
	}

	paths := config.GetPaths(cfg)
	database, err := db.New(db.DefaultConfig(paths.Database))
	if err != nil {
		return trackCLIError("next", fmt.Errorf("initialize database: %w", err))
	}
	defer func() { _ = database.Close() }()

	game, err := database.GetGame(nextApp)
	if err != nil {
		fmt.Printf("App %d is not in your library.\n", nextApp)
		fmt.Println("\nRun 'cheevo sync' first, or check the app ID with 'cheevo games'.")
		return nil
	}

	candidates, err := database.GetAchievements(nextApp)
	if err != nil {
		return trackCLIError("next", fmt.Errorf("read achievements: %w", err))
	}
	if len(candidates) == 0 {
		fmt.Printf("No achievements recorded for %s.\n", game.Name)
		fmt.Printf("\nRun 'cheevo sync --app %d' first.\n", nextApp)
		return nil
	}

	recent, err := database.GetRecentPickNames(nextApp, recentPickWindow)
	if err != nil {
		return trackCLIError("next", fmt.Errorf("read pick history: %w", err))
	}

	pick := picker.New(recent).Pick(candidates)
	if pick == nil {
		fmt.Printf("Every achievement in %s is unlocked. Nothing left to pick.\n", game.Name)
		return nil
	}

	if err := database.AddPick(nextApp, pick.APIName); err != nil {
		return trackCLIError("next", fmt.Errorf("record pick: %w", err))
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))
	fmt.Printf("%s  %s\n", titleStyle.Render("NEXT UP:"), pick.DisplayName)
	if pick.Description != "" {
		fmt.Printf("          %s\n", pick.Description)
	}

	if nextCopy {
		if err := clipboard.WriteAll(pick.DisplayName); err != nil {
			fmt.Printf("(could not copy to clipboard: %v)\n", err)
		} else {
			fmt.Println("(copied to clipboard)")
		}
	}

	if nextExplain {
		if err := printExplanation(cmd, database, game, pick); err != nil {
			return trackCLIError("next", err)
		}
	}

	telemetryClient.TrackPickMade(nextExplain)
	return nil
}

func printExplanation(cmd *cobra.Command, database *db.DB, game *models.Game, pick *models.Achievement) error {
	user, err := config.NewResolver(database).GetConfig()
	if err != nil {
		return err
	}
	if user.OpenRouterAPIKey == "" {
		fmt.Println()
		fmt.Println("No OpenRouter API key configured; skipping explanation.")
		fmt.Println("Set one with 'cheevo setup --openrouter-key <key>' or export OPENROUTER_API_KEY.")
		return nil
	}

	provider, err := llm.NewOpenRouterProvider(user.OpenRouterAPIKey, nextModel)
	if err != nil {
		return err
	}

	explanation, err := llm.ExplainPick(cmd.Context(), provider, game, pick)
	if err != nil {
		// An unreachable LLM should not undo the pick that was already
		// made and recorded.
		fmt.Printf("\n(explanation unavailable: %v)\n", err)
		return nil
	}

	rendered, err := glamour.Render(explanation, "auto")
	if err != nil {
		fmt.Println()
		fmt.Println(explanation)
		return nil
	}
	fmt.Print(rendered)
	return nil
}
