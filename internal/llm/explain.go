package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/cheevodev/cheevo/internal/models"
)

const explainSystemPrompt = `You are a helpful gaming assistant. The user tracks their Steam achievements
and wants a short, motivating explanation of why a recommended achievement is
a good one to go for next. Answer in two or three sentences of markdown.
Mention concrete in-game steps when the description gives enough to go on.
Do not invent requirements the description does not state.`

// ExplainPick asks the provider for a short justification of a
// recommendation.
func ExplainPick(ctx context.Context, provider Provider, game *models.Game, pick *models.Achievement) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Game: %s\n", game.Name)
	fmt.Fprintf(&b, "Recommended achievement: %s\n", pick.DisplayName)
	if pick.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", pick.Description)
	} else {
		b.WriteString("Description: (none published)\n")
	}
	b.WriteString("\nWhy is this a good next achievement to pursue?")

	resp, err := provider.ChatSync(ctx, []Message{
		NewSystemMessage(explainSystemPrompt),
		NewUserMessage(b.String()),
	}, ChatOptions{MaxTokens: 300, Temperature: 0.7})
	if err != nil {
		return "", fmt.Errorf("generate explanation: %w", err)
	}
	return resp.Content, nil
}
