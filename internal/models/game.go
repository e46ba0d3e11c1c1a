package models

import "time"

// Game is one title from the player's owned-games list.
// Rows are replaced wholesale on every owned-games fetch; titles that
// leave the owned list are kept (no pruning).
type Game struct {
	AppID     uint      `gorm:"primaryKey;autoIncrement:false" json:"app_id"`
	Name      string    `gorm:"size:255;index" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Game) TableName() string {
	return "games"
}
