package db

import (
	"gorm.io/gorm/clause"

	"github.com/cheevodev/cheevo/internal/models"
)

// UpsertGames writes the owned-games list in one all-or-nothing
// transaction. Conflicting app IDs are fully replaced (last fetch wins);
// titles no longer in the list are left untouched.
func (db *DB) UpsertGames(games []models.Game) error {
	if len(games) == 0 {
		return nil
	}
	return db.Transaction(func(tx *DB) error {
		for _, game := range games {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "app_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
			}).Create(&game).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// GetGames returns all stored games ordered by name.
func (db *DB) GetGames() ([]models.Game, error) {
	var games []models.Game
	err := db.Order("name COLLATE NOCASE ASC").Find(&games).Error
	return games, err
}

// GetGame returns one game by app ID.
func (db *DB) GetGame(appID uint) (*models.Game, error) {
	var game models.Game
	if err := db.Where("app_id = ?", appID).First(&game).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

// CountGames returns the number of stored games.
func (db *DB) CountGames() (int64, error) {
	var count int64
	err := db.Model(&models.Game{}).Count(&count).Error
	return count, err
}
