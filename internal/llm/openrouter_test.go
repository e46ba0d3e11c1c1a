package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cheevodev/cheevo/internal/models"
)

func TestNewOpenRouterProvider(t *testing.T) {
	_, err := NewOpenRouterProvider("", "")
	assert.Error(t, err, "empty API key must be rejected")

	provider, err := NewOpenRouterProvider("sk-or-test", "")
	require.NoError(t, err)
	assert.Equal(t, "openrouter", provider.Name())
	assert.Equal(t, OpenRouterDefaultModel, provider.DefaultModel())

	provider, err = NewOpenRouterProvider("sk-or-test", "openai/gpt-4o-mini")
	require.NoError(t, err)
	assert.Equal(t, "openai/gpt-4o-mini", provider.DefaultModel())
}

func TestOpenRouterTransport_AddsHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("HTTP-Referer"))
		assert.Equal(t, "Cheevo", r.Header.Get("X-Title"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := &http.Client{Transport: &openRouterTransport{base: http.DefaultTransport}}
	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	_ = resp.Body.Close()
}

// stubProvider records the messages it is asked to send.
type stubProvider struct {
	messages []Message
	reply    string
}

func (s *stubProvider) ChatSync(ctx context.Context, messages []Message, opts ChatOptions) (*Response, error) {
	s.messages = messages
	return &Response{Content: s.reply}, nil
}

func (s *stubProvider) Name() string         { return "stub" }
func (s *stubProvider) DefaultModel() string { return "stub-model" }

func TestExplainPick(t *testing.T) {
	stub := &stubProvider{reply: "Go for it."}
	game := &models.Game{AppID: 440, Name: "Team Fortress 2"}
	pick := &models.Achievement{APIName: "a1", DisplayName: "First Blood", Description: "Get a kill"}

	explanation, err := ExplainPick(context.Background(), stub, game, pick)
	require.NoError(t, err)
	assert.Equal(t, "Go for it.", explanation)

	require.Len(t, stub.messages, 2)
	assert.Equal(t, "system", stub.messages[0].Role)
	user := stub.messages[1].Content
	assert.True(t, strings.Contains(user, "Team Fortress 2"))
	assert.True(t, strings.Contains(user, "First Blood"))
	assert.True(t, strings.Contains(user, "Get a kill"))
}

func TestExplainPick_EmptyDescription(t *testing.T) {
	stub := &stubProvider{reply: "ok"}
	game := &models.Game{AppID: 1, Name: "Game"}
	pick := &models.Achievement{APIName: "hidden", DisplayName: "hidden"}

	_, err := ExplainPick(context.Background(), stub, game, pick)
	require.NoError(t, err)
	assert.True(t, strings.Contains(stub.messages[1].Content, "(none published)"))
}
