// Package llm provides the language-model client used for pick
// explanations.
package llm

import (
	"context"
)

// Provider defines the interface for LLM providers.
type Provider interface {
	// ChatSync sends messages and waits for the complete response.
	ChatSync(ctx context.Context, messages []Message, opts ChatOptions) (*Response, error)

	// Name returns the provider name (e.g., "openrouter").
	Name() string

	// DefaultModel returns the default model for this provider.
	DefaultModel() string
}

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"`    // "system", "user", "assistant"
	Content string `json:"content"` // Message content
}

// NewSystemMessage creates a system message.
func NewSystemMessage(content string) Message {
	return Message{Role: "system", Content: content}
}

// NewUserMessage creates a user message.
func NewUserMessage(content string) Message {
	return Message{Role: "user", Content: content}
}

// ChatOptions configures a chat request.
type ChatOptions struct {
	Model       string  // Model to use (empty = provider default)
	MaxTokens   int     // Maximum tokens in response
	Temperature float64 // Sampling temperature (0-1)
}

// Usage tracks token usage for a request.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Response represents a complete chat response.
type Response struct {
	Content      string
	Model        string
	FinishReason string
	Usage        Usage
}
