// Package steam is a read-only client for the Steam Web API.
// It covers the four endpoints Cheevo consumes: vanity-name resolution,
// the owned-games list, per-game achievement schema, and per-player
// achievement progress. No merge or storage logic lives here.
package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/cheevodev/cheevo/internal/models"
)

const (
	// DefaultBaseURL is the public Steam Web API host.
	DefaultBaseURL = "https://api.steampowered.com"

	// RequestsPerMinute keeps us well under Steam's daily call budget
	// even when syncing a large library.
	RequestsPerMinute = 60
)

// Client wraps the Steam Web API with rate limiting.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

// New creates a client against the public Steam Web API.
func New() *Client {
	return NewWithBaseURL(DefaultBaseURL)
}

// NewWithBaseURL creates a client against a custom host (used in tests).
func NewWithBaseURL(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Every(time.Minute/RequestsPerMinute), 5),
	}
}

// ResolveVanityURL turns a vanity profile name into a 64-bit Steam ID.
// Resolution failure is non-fatal: on any error, or when the service
// reports the name as unknown, the input is returned unchanged and the
// caller decides whether the result is a usable numeric ID.
func (c *Client) ResolveVanityURL(ctx context.Context, apiKey, vanityName string) string {
	var resp resolveVanityResponse
	q := url.Values{}
	q.Set("key", apiKey)
	q.Set("vanityurl", vanityName)

	if err := c.getJSON(ctx, "/ISteamUser/ResolveVanityURL/v1/", q, &resp); err != nil {
		return vanityName
	}
	if resp.Response.Success != 1 || resp.Response.SteamID == "" {
		return vanityName
	}
	return resp.Response.SteamID
}

// GetOwnedGames fetches the player's owned-games list. Entries without a
// name or a positive app ID are dropped.
func (c *Client) GetOwnedGames(ctx context.Context, apiKey, steamID string) ([]models.Game, error) {
	var resp ownedGamesResponse
	q := url.Values{}
	q.Set("key", apiKey)
	q.Set("steamid", steamID)
	q.Set("include_appinfo", "true")
	q.Set("include_played_free_games", "true")

	if err := c.getJSON(ctx, "/IPlayerService/GetOwnedGames/v1/", q, &resp); err != nil {
		return nil, err
	}

	games := make([]models.Game, 0, len(resp.Response.Games))
	for _, g := range resp.Response.Games {
		if g.AppID <= 0 || g.Name == "" {
			continue
		}
		games = append(games, models.Game{AppID: uint(g.AppID), Name: g.Name})
	}
	return games, nil
}

// GetSchema fetches the static achievement definitions for one game.
// Games without achievements yield an empty slice.
func (c *Client) GetSchema(ctx context.Context, apiKey string, appID uint) ([]SchemaAchievement, error) {
	var resp schemaResponse
	q := url.Values{}
	q.Set("key", apiKey)
	q.Set("appid", fmt.Sprintf("%d", appID))

	if err := c.getJSON(ctx, "/ISteamUserStats/GetSchemaForGame/v2/", q, &resp); err != nil {
		return nil, err
	}
	return resp.Game.AvailableGameStats.Achievements, nil
}

// GetPlayerAchievements fetches the player's unlock status for one game.
func (c *Client) GetPlayerAchievements(ctx context.Context, apiKey, steamID string, appID uint) ([]PlayerAchievement, error) {
	var resp playerAchievementsResponse
	q := url.Values{}
	q.Set("key", apiKey)
	q.Set("steamid", steamID)
	q.Set("appid", fmt.Sprintf("%d", appID))

	if err := c.getJSON(ctx, "/ISteamUserStats/GetPlayerAchievements/v1/", q, &resp); err != nil {
		return nil, err
	}
	return resp.PlayerStats.Achievements, nil
}

// getJSON performs one rate-limited GET and decodes the JSON body.
// Every failure path returns a *FetchError so callers can discriminate
// network trouble from everything else.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target interface{}) error {
	reqURL := c.baseURL + path + "?" + query.Encode()

	if err := c.limiter.Wait(ctx); err != nil {
		return &FetchError{URL: reqURL, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &FetchError{URL: reqURL, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &FetchError{URL: reqURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{URL: reqURL, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return &FetchError{URL: reqURL, Status: resp.StatusCode, Err: fmt.Errorf("decode body: %w", err)}
	}
	return nil
}
