package db

import (
	"time"

	"github.com/cheevodev/cheevo/internal/models"
)

// PickEntry is one history row with its achievement join resolved for
// display. DisplayName falls back to the raw API name when the referenced
// achievement no longer exists.
type PickEntry struct {
	ID                 uint      `json:"id"`
	GameAppID          uint      `json:"game_app_id"`
	AchievementAPIName string    `json:"achievement_api_name"`
	DisplayName        string    `json:"display_name"`
	GameName           string    `json:"game_name"`
	PickedAt           time.Time `json:"picked_at"`
}

// AddPick appends one entry to the pick ledger. The ledger is append-only;
// nothing here updates or deletes prior entries.
func (db *DB) AddPick(appID uint, apiName string) error {
	pick := models.Pick{
		GameAppID:          appID,
		AchievementAPIName: apiName,
	}
	return db.Create(&pick).Error
}

// GetPicks returns the most recent history entries, newest first. The
// achievement and game joins are LEFT joins: a pick whose achievement was
// overwritten or never stored still lists, showing its raw API name.
func (db *DB) GetPicks(limit int) ([]PickEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	var entries []PickEntry
	err := db.Table("pick_history").
		Select("pick_history.id, pick_history.game_app_id, pick_history.achievement_api_name, pick_history.picked_at, " +
			"COALESCE(NULLIF(achievements.display_name, ''), pick_history.achievement_api_name) AS display_name, " +
			"COALESCE(games.name, '') AS game_name").
		Joins("LEFT JOIN achievements ON achievements.game_app_id = pick_history.game_app_id AND achievements.api_name = pick_history.achievement_api_name").
		Joins("LEFT JOIN games ON games.app_id = pick_history.game_app_id").
		Order("pick_history.picked_at DESC, pick_history.id DESC").
		Limit(limit).
		Scan(&entries).Error
	return entries, err
}

// GetRecentPickNames returns the API names of the last window picks for a
// game, used to keep the selector from repeating itself.
func (db *DB) GetRecentPickNames(appID uint, window int) ([]string, error) {
	if window <= 0 {
		return nil, nil
	}
	var names []string
	err := db.Model(&models.Pick{}).
		Where("game_app_id = ?", appID).
		Order("picked_at DESC, id DESC").
		Limit(window).
		Pluck("achievement_api_name", &names).Error
	return names, err
}

// CountPicks returns the total number of ledger entries.
func (db *DB) CountPicks() (int64, error) {
	var count int64
	err := db.Model(&models.Pick{}).Count(&count).Error
	return count, err
}
