package achsync

import (
	"context"
	"fmt"
	"sync"

	"github.com/cheevodev/cheevo/internal/db"
	"github.com/cheevodev/cheevo/internal/models"
	"github.com/cheevodev/cheevo/internal/steam"
)

// Service coordinates the Steam client, the reconciler, and the local
// store: fetch, merge, upsert. It holds no state of its own.
type Service struct {
	client *steam.Client
	db     *db.DB
}

// NewService creates a sync service.
func NewService(client *steam.Client, database *db.DB) *Service {
	return &Service{client: client, db: database}
}

// SyncGames fetches the owned-games list and persists it in one
// transaction. A client failure propagates; the caller owns the decision
// to report and halt.
func (s *Service) SyncGames(ctx context.Context, apiKey, steamID string) ([]models.Game, error) {
	games, err := s.client.GetOwnedGames(ctx, apiKey, steamID)
	if err != nil {
		return nil, fmt.Errorf("fetch owned games: %w", err)
	}
	if err := s.db.UpsertGames(games); err != nil {
		return nil, fmt.Errorf("persist games: %w", err)
	}
	return games, nil
}

// SyncAchievements fetches schema and player progress for one game
// concurrently, merges them, and persists the merged set in one
// transaction. Each fetch is independently fault-tolerant: a failed
// source degrades to empty instead of aborting the merge, so a schema
// outage still records the player's progress and vice versa. Storage
// failures propagate.
func (s *Service) SyncAchievements(ctx context.Context, apiKey, steamID string, appID uint) ([]models.Achievement, error) {
	var (
		schema   []steam.SchemaAchievement
		progress []steam.PlayerAchievement
		wg       sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		if res, err := s.client.GetSchema(ctx, apiKey, appID); err == nil {
			schema = res
		}
	}()
	go func() {
		defer wg.Done()
		if res, err := s.client.GetPlayerAchievements(ctx, apiKey, steamID, appID); err == nil {
			progress = res
		}
	}()
	wg.Wait()

	merged := Merge(appID, schema, progress)
	if err := s.db.UpsertAchievements(merged); err != nil {
		return nil, fmt.Errorf("persist achievements for app %d: %w", appID, err)
	}
	return merged, nil
}

// Summary reports the outcome of a full-library sync.
type Summary struct {
	Games        int
	Achievements int
	Failed       int
}

// SyncAll syncs the owned-games list and then every game's achievements.
// The optional progress callback is invoked once per game before its
// sync. Per-game failures are counted and skipped rather than aborting
// the rest of the library.
func (s *Service) SyncAll(ctx context.Context, apiKey, steamID string, progressFn func(done, total int, name string)) (*Summary, error) {
	games, err := s.SyncGames(ctx, apiKey, steamID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Games: len(games)}
	for i, game := range games {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if progressFn != nil {
			progressFn(i, len(games), game.Name)
		}
		merged, err := s.SyncAchievements(ctx, apiKey, steamID, game.AppID)
		if err != nil {
			summary.Failed++
			continue
		}
		summary.Achievements += len(merged)
	}
	if progressFn != nil {
		progressFn(len(games), len(games), "")
	}
	return summary, nil
}
