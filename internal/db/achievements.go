package db

import (
	"gorm.io/gorm/clause"

	"github.com/cheevodev/cheevo/internal/models"
)

// UpsertAchievements writes a game's reconciled achievement set in one
// all-or-nothing transaction. Rows are replaced by (game_app_id, api_name),
// so a re-sync with identical remote data is a no-op byte-for-byte.
func (db *DB) UpsertAchievements(achievements []models.Achievement) error {
	if len(achievements) == 0 {
		return nil
	}
	return db.Transaction(func(tx *DB) error {
		for _, ach := range achievements {
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "game_app_id"}, {Name: "api_name"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"display_name", "description", "achieved", "unlocked_at", "position",
				}),
			}).Create(&ach).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// GetAchievements returns a game's achievements in stored (merge) order.
func (db *DB) GetAchievements(appID uint) ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := db.Where("game_app_id = ?", appID).
		Order("position ASC").
		Find(&achievements).Error
	return achievements, err
}

// GetUnearnedAchievements returns a game's locked achievements in stored order.
func (db *DB) GetUnearnedAchievements(appID uint) ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := db.Where("game_app_id = ? AND achieved = ?", appID, false).
		Order("position ASC").
		Find(&achievements).Error
	return achievements, err
}

// GetAchievement returns one achievement by game and API name.
func (db *DB) GetAchievement(appID uint, apiName string) (*models.Achievement, error) {
	var ach models.Achievement
	err := db.Where("game_app_id = ? AND api_name = ?", appID, apiName).First(&ach).Error
	if err != nil {
		return nil, err
	}
	return &ach, nil
}

// CountUnearned returns the number of locked achievements for a game.
func (db *DB) CountUnearned(appID uint) (int64, error) {
	var count int64
	err := db.Model(&models.Achievement{}).
		Where("game_app_id = ? AND achieved = ?", appID, false).
		Count(&count).Error
	return count, err
}
