package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// OpenRouterBaseURL is the base URL for OpenRouter's OpenAI-compatible API.
	OpenRouterBaseURL = "https://openrouter.ai/api/v1"

	// OpenRouterDefaultModel is the default model for explanations.
	OpenRouterDefaultModel = "anthropic/claude-3-haiku"
)

// OpenRouterProvider implements the Provider interface for OpenRouter.
type OpenRouterProvider struct {
	client       *openai.Client
	defaultModel string
}

// openRouterTransport is a custom HTTP transport that adds required OpenRouter headers.
type openRouterTransport struct {
	base http.RoundTripper
}

func (t *openRouterTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("HTTP-Referer", "https://github.com/cheevodev/cheevo")
	req.Header.Set("X-Title", "Cheevo")
	return t.base.RoundTrip(req)
}

// NewOpenRouterProvider creates an OpenRouter provider.
func NewOpenRouterProvider(apiKey, model string) (*OpenRouterProvider, error) {
	if apiKey == "" {
		return nil, errors.New("OpenRouter API key is required")
	}

	// Configure the OpenAI client with OpenRouter's base URL
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = OpenRouterBaseURL
	config.HTTPClient = &http.Client{
		Transport: &openRouterTransport{
			base: http.DefaultTransport,
		},
	}

	client := openai.NewClientWithConfig(config)

	if model == "" {
		model = OpenRouterDefaultModel
	}

	return &OpenRouterProvider{
		client:       client,
		defaultModel: model,
	}, nil
}

// ChatSync sends messages and waits for complete response.
func (p *OpenRouterProvider) ChatSync(ctx context.Context, messages []Message, opts ChatOptions) (*Response, error) {
	model := opts.Model
	if model == "" {
		model = p.defaultModel
	}

	openaiMessages := make([]openai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		openaiMessages[i] = openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	req := openai.ChatCompletionRequest{
		Model:    model,
		Messages: openaiMessages,
	}
	if opts.MaxTokens > 0 {
		req.MaxTokens = opts.MaxTokens
	}
	if opts.Temperature > 0 {
		req.Temperature = float32(opts.Temperature)
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("openrouter chat error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("openrouter returned no choices")
	}

	choice := resp.Choices[0]
	return &Response{
		Content:      choice.Message.Content,
		Model:        resp.Model,
		FinishReason: string(choice.FinishReason),
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name.
func (p *OpenRouterProvider) Name() string {
	return "openrouter"
}

// DefaultModel returns the default model for this provider.
func (p *OpenRouterProvider) DefaultModel() string {
	return p.defaultModel
}
