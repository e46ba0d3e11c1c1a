package steam

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewWithBaseURL(server.URL), server
}

func TestResolveVanityURL_Success(t *testing.T) {
	client, server := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ISteamUser/ResolveVanityURL/v1/" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("vanityurl"); got != "gaben" {
			t.Errorf("vanityurl = %q, want %q", got, "gaben")
		}
		_, _ = w.Write([]byte(`{"response":{"success":1,"steamid":"76561197960287930"}}`))
	}))
	defer server.Close()

	got := client.ResolveVanityURL(context.Background(), "key", "gaben")
	if got != "76561197960287930" {
		t.Errorf("ResolveVanityURL() = %q, want resolved id", got)
	}
}

func TestResolveVanityURL_FailureReturnsInput(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "not found signal",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"response":{"success":42}}`))
			},
		},
		{
			name: "http error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, server := testClient(tt.handler)
			defer server.Close()

			got := client.ResolveVanityURL(context.Background(), "key", "gaben")
			if got != "gaben" {
				t.Errorf("ResolveVanityURL() = %q, want original input", got)
			}
		})
	}
}

func TestGetOwnedGames_FiltersInvalidEntries(t *testing.T) {
	client, server := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("include_appinfo") != "true" || q.Get("include_played_free_games") != "true" {
			t.Errorf("missing appinfo query params: %v", q)
		}
		_, _ = w.Write([]byte(`{"response":{"games":[
			{"appid":440,"name":"Team Fortress 2"},
			{"appid":620,"name":""},
			{"appid":0,"name":"Ghost"},
			{"appid":70,"name":"Half-Life"}
		]}}`))
	}))
	defer server.Close()

	games, err := client.GetOwnedGames(context.Background(), "key", "7656")
	if err != nil {
		t.Fatalf("GetOwnedGames() error = %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("len = %d, want 2 (invalid entries filtered)", len(games))
	}
	if games[0].AppID != 440 || games[1].AppID != 70 {
		t.Errorf("games = %+v", games)
	}
}

func TestGetOwnedGames_HTTPErrorIsFetchError(t *testing.T) {
	client, server := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := client.GetOwnedGames(context.Background(), "bad-key", "7656")
	if err == nil {
		t.Fatal("GetOwnedGames() error = nil, want FetchError")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("error type = %T, want *FetchError", err)
	}
	if fetchErr.Status != http.StatusForbidden {
		t.Errorf("Status = %d, want 403", fetchErr.Status)
	}
	if fetchErr.URL == "" {
		t.Error("FetchError should carry the request URL")
	}
}

func TestGetSchema(t *testing.T) {
	client, server := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ISteamUserStats/GetSchemaForGame/v2/" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("appid"); got != "440" {
			t.Errorf("appid = %q, want 440", got)
		}
		_, _ = w.Write([]byte(`{"game":{"availableGameStats":{"achievements":[
			{"name":"a1","displayName":"First Blood","description":"Get a kill"},
			{"name":"a2"}
		]}}}`))
	}))
	defer server.Close()

	schema, err := client.GetSchema(context.Background(), "key", 440)
	if err != nil {
		t.Fatalf("GetSchema() error = %v", err)
	}
	if len(schema) != 2 {
		t.Fatalf("len = %d, want 2", len(schema))
	}
	if schema[0].DisplayName != "First Blood" {
		t.Errorf("DisplayName = %q", schema[0].DisplayName)
	}
	if schema[1].DisplayName != "" || schema[1].Description != "" {
		t.Errorf("absent schema fields should decode empty: %+v", schema[1])
	}
}

func TestGetSchema_NoAchievements(t *testing.T) {
	client, server := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"game":{}}`))
	}))
	defer server.Close()

	schema, err := client.GetSchema(context.Background(), "key", 440)
	if err != nil {
		t.Fatalf("GetSchema() error = %v", err)
	}
	if len(schema) != 0 {
		t.Errorf("len = %d, want 0", len(schema))
	}
}

func TestGetPlayerAchievements(t *testing.T) {
	client, server := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"playerstats":{"achievements":[
			{"apiname":"a1","achieved":1,"unlocktime":1700000000},
			{"apiname":"a2","achieved":0,"unlocktime":0}
		]}}`))
	}))
	defer server.Close()

	progress, err := client.GetPlayerAchievements(context.Background(), "key", "7656", 440)
	if err != nil {
		t.Fatalf("GetPlayerAchievements() error = %v", err)
	}
	if len(progress) != 2 {
		t.Fatalf("len = %d, want 2", len(progress))
	}
	if progress[0].Achieved != 1 || progress[0].UnlockTime != 1700000000 {
		t.Errorf("progress[0] = %+v", progress[0])
	}
}

func TestGetPlayerAchievements_MalformedBody(t *testing.T) {
	client, server := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>rate limited</html>`))
	}))
	defer server.Close()

	_, err := client.GetPlayerAchievements(context.Background(), "key", "7656", 440)
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("error type = %T, want *FetchError", err)
	}
}
