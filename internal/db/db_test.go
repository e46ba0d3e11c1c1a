package db

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cheevodev/cheevo/internal/models"
)

// testDB creates a temporary test database.
func testDB(t *testing.T) *DB {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := New(Config{
		Path:        dbPath,
		Debug:       false,
		MaxIdleConn: 1,
		MaxOpenConn: 1,
	})
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Failed to close test database: %v", err)
		}
	})

	return db
}

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "cheevo.db")

	db, err := New(DefaultConfig(dbPath))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			t.Logf("Failed to close database: %v", err)
		}
	}()

	// Verify database file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}

	if db.Path() != dbPath {
		t.Errorf("Path() = %v, want %v", db.Path(), dbPath)
	}
}

func TestNew_CreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "dirs", "cheevo.db")

	db, err := New(DefaultConfig(dbPath))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			t.Logf("Failed to close database: %v", err)
		}
	}()

	dir := filepath.Dir(dbPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Error("nested directories were not created")
	}
}

func TestNew_SeedsUserRow(t *testing.T) {
	db := testDB(t)

	user, err := db.GetUser()
	if err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}
	if user.ID != "default" {
		t.Errorf("seeded user ID = %q, want %q", user.ID, "default")
	}
	if user.HasSteamID() || user.HasAPIKey() {
		t.Error("seeded user should have no configured values")
	}
}

func TestSaveUser_ReplacesValues(t *testing.T) {
	db := testDB(t)

	if err := db.SaveUser(&models.User{SteamID: "7656", APIKey: "k1"}); err != nil {
		t.Fatalf("SaveUser() error = %v", err)
	}
	if err := db.SaveUser(&models.User{SteamID: "7657", APIKey: "k1", OpenRouterAPIKey: "or1"}); err != nil {
		t.Fatalf("SaveUser() second write error = %v", err)
	}

	user, err := db.GetUser()
	if err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}
	if user.SteamID != "7657" {
		t.Errorf("SteamID = %q, want %q", user.SteamID, "7657")
	}
	if user.APIKey != "k1" {
		t.Errorf("APIKey = %q, want %q", user.APIKey, "k1")
	}
	if user.OpenRouterAPIKey != "or1" {
		t.Errorf("OpenRouterAPIKey = %q, want %q", user.OpenRouterAPIKey, "or1")
	}

	// Still a single row
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Errorf("user rows = %d, want 1", count)
	}
}

func TestUpsertGames_LastFetchWins(t *testing.T) {
	db := testDB(t)

	first := []models.Game{
		{AppID: 440, Name: "Team Fortress 2"},
		{AppID: 620, Name: "Portal 2"},
	}
	if err := db.UpsertGames(first); err != nil {
		t.Fatalf("UpsertGames() error = %v", err)
	}

	second := []models.Game{
		{AppID: 440, Name: "Team Fortress 2 Renamed"},
	}
	if err := db.UpsertGames(second); err != nil {
		t.Fatalf("UpsertGames() second write error = %v", err)
	}

	game, err := db.GetGame(440)
	if err != nil {
		t.Fatalf("GetGame() error = %v", err)
	}
	if game.Name != "Team Fortress 2 Renamed" {
		t.Errorf("Name = %q, want replaced value", game.Name)
	}

	// Games absent from the later fetch are not pruned
	if _, err := db.GetGame(620); err != nil {
		t.Errorf("GetGame(620) error = %v, want untouched row", err)
	}

	count, err := db.CountGames()
	if err != nil {
		t.Fatalf("CountGames() error = %v", err)
	}
	if count != 2 {
		t.Errorf("CountGames() = %d, want 2", count)
	}
}

func TestUpsertAchievements_Idempotent(t *testing.T) {
	db := testDB(t)

	unlocked := time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)
	set := []models.Achievement{
		{GameAppID: 440, APIName: "a1", DisplayName: "First", Description: "Do the thing", Achieved: true, UnlockedAt: &unlocked, Position: 0},
		{GameAppID: 440, APIName: "a2", DisplayName: "Second", Position: 1},
	}

	if err := db.UpsertAchievements(set); err != nil {
		t.Fatalf("UpsertAchievements() error = %v", err)
	}
	first, err := db.GetAchievements(440)
	if err != nil {
		t.Fatalf("GetAchievements() error = %v", err)
	}

	if err := db.UpsertAchievements(set); err != nil {
		t.Fatalf("UpsertAchievements() re-run error = %v", err)
	}

	got, err := db.GetAchievements(440)
	if err != nil {
		t.Fatalf("GetAchievements() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	// Identical data must leave rows untouched, timestamps included
	for i := range got {
		if !got[i].UpdatedAt.Equal(first[i].UpdatedAt) || !got[i].CreatedAt.Equal(first[i].CreatedAt) {
			t.Errorf("%s timestamps changed on identical re-sync: %v -> %v", got[i].APIName, first[i].UpdatedAt, got[i].UpdatedAt)
		}
	}
	if got[0].APIName != "a1" || got[1].APIName != "a2" {
		t.Errorf("stored order = [%s %s], want [a1 a2]", got[0].APIName, got[1].APIName)
	}
	if !got[0].Achieved || got[0].UnlockedAt == nil || !got[0].UnlockedAt.Equal(unlocked) {
		t.Errorf("a1 = achieved=%v unlockedAt=%v, want unlocked at %v", got[0].Achieved, got[0].UnlockedAt, unlocked)
	}
	if got[1].Achieved || got[1].UnlockedAt != nil {
		t.Errorf("a2 should remain locked")
	}
}

func TestUpsertAchievements_WithoutGameRow(t *testing.T) {
	db := testDB(t)

	// A single-game sync can land before any owned-games fetch has run
	if err := db.UpsertAchievements([]models.Achievement{
		{GameAppID: 730, APIName: "orphan", DisplayName: "Orphan", Position: 0},
	}); err != nil {
		t.Fatalf("UpsertAchievements() without a games row error = %v", err)
	}

	ach, err := db.GetAchievement(730, "orphan")
	if err != nil {
		t.Fatalf("GetAchievement() error = %v", err)
	}
	if ach.DisplayName != "Orphan" {
		t.Errorf("DisplayName = %q, want %q", ach.DisplayName, "Orphan")
	}
}

func TestUpsertAchievements_ReplacesByKey(t *testing.T) {
	db := testDB(t)

	if err := db.UpsertAchievements([]models.Achievement{
		{GameAppID: 440, APIName: "a1", DisplayName: "Old", Achieved: false, Position: 0},
	}); err != nil {
		t.Fatalf("UpsertAchievements() error = %v", err)
	}

	unlocked := time.Now().UTC().Truncate(time.Second)
	if err := db.UpsertAchievements([]models.Achievement{
		{GameAppID: 440, APIName: "a1", DisplayName: "New", Achieved: true, UnlockedAt: &unlocked, Position: 0},
	}); err != nil {
		t.Fatalf("UpsertAchievements() re-sync error = %v", err)
	}

	ach, err := db.GetAchievement(440, "a1")
	if err != nil {
		t.Fatalf("GetAchievement() error = %v", err)
	}
	if ach.DisplayName != "New" || !ach.Achieved {
		t.Errorf("row was not fully replaced: %+v", ach)
	}
}

func TestCountUnearned(t *testing.T) {
	db := testDB(t)

	if err := db.UpsertAchievements([]models.Achievement{
		{GameAppID: 440, APIName: "a1", Achieved: true, Position: 0},
		{GameAppID: 440, APIName: "a2", Position: 1},
		{GameAppID: 440, APIName: "a3", Position: 2},
		{GameAppID: 620, APIName: "b1", Position: 0},
	}); err != nil {
		t.Fatalf("UpsertAchievements() error = %v", err)
	}

	count, err := db.CountUnearned(440)
	if err != nil {
		t.Fatalf("CountUnearned() error = %v", err)
	}
	if count != 2 {
		t.Errorf("CountUnearned(440) = %d, want 2", count)
	}

	unearned, err := db.GetUnearnedAchievements(440)
	if err != nil {
		t.Fatalf("GetUnearnedAchievements() error = %v", err)
	}
	if len(unearned) != 2 || unearned[0].APIName != "a2" || unearned[1].APIName != "a3" {
		t.Errorf("unearned = %+v, want [a2 a3]", unearned)
	}
}

func TestPicks_AppendOnlyLedger(t *testing.T) {
	db := testDB(t)

	if err := db.AddPick(440, "a1"); err != nil {
		t.Fatalf("AddPick() error = %v", err)
	}
	if err := db.AddPick(440, "a2"); err != nil {
		t.Fatalf("AddPick() error = %v", err)
	}
	if err := db.AddPick(440, "a1"); err != nil {
		t.Fatalf("AddPick() duplicate error = %v", err)
	}

	count, err := db.CountPicks()
	if err != nil {
		t.Fatalf("CountPicks() error = %v", err)
	}
	if count != 3 {
		t.Errorf("CountPicks() = %d, want 3 (duplicates append)", count)
	}

	names, err := db.GetRecentPickNames(440, 2)
	if err != nil {
		t.Fatalf("GetRecentPickNames() error = %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("recent names = %v, want 2 entries", names)
	}
}

func TestGetPicks_MissingAchievementFallsBack(t *testing.T) {
	db := testDB(t)

	if err := db.UpsertGames([]models.Game{{AppID: 440, Name: "Team Fortress 2"}}); err != nil {
		t.Fatalf("UpsertGames() error = %v", err)
	}
	if err := db.UpsertAchievements([]models.Achievement{
		{GameAppID: 440, APIName: "a1", DisplayName: "First Blood", Position: 0},
	}); err != nil {
		t.Fatalf("UpsertAchievements() error = %v", err)
	}

	// One pick joins, one references an achievement that was never stored
	if err := db.AddPick(440, "a1"); err != nil {
		t.Fatalf("AddPick() error = %v", err)
	}
	if err := db.AddPick(440, "ghost_achievement"); err != nil {
		t.Fatalf("AddPick() error = %v", err)
	}

	entries, err := db.GetPicks(10)
	if err != nil {
		t.Fatalf("GetPicks() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}

	byName := map[string]PickEntry{}
	for _, e := range entries {
		byName[e.AchievementAPIName] = e
	}
	if byName["a1"].DisplayName != "First Blood" {
		t.Errorf("joined pick DisplayName = %q, want %q", byName["a1"].DisplayName, "First Blood")
	}
	if byName["ghost_achievement"].DisplayName != "ghost_achievement" {
		t.Errorf("unjoined pick DisplayName = %q, want raw API name", byName["ghost_achievement"].DisplayName)
	}
	if byName["a1"].GameName != "Team Fortress 2" {
		t.Errorf("GameName = %q, want joined game name", byName["a1"].GameName)
	}
}

func TestGetStats(t *testing.T) {
	db := testDB(t)

	if err := db.UpsertGames([]models.Game{{AppID: 440, Name: "Team Fortress 2"}}); err != nil {
		t.Fatalf("UpsertGames() error = %v", err)
	}
	if err := db.UpsertAchievements([]models.Achievement{
		{GameAppID: 440, APIName: "a1", Achieved: true, Position: 0},
		{GameAppID: 440, APIName: "a2", Position: 1},
	}); err != nil {
		t.Fatalf("UpsertAchievements() error = %v", err)
	}
	if err := db.AddPick(440, "a1"); err != nil {
		t.Fatalf("AddPick() error = %v", err)
	}

	stats, err := db.GetStats()
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}
	if stats.TotalGames != 1 || stats.TotalAchievements != 2 || stats.TotalUnlocked != 1 || stats.TotalPicks != 1 {
		t.Errorf("stats = %+v", stats)
	}
}
