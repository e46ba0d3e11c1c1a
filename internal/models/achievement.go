package models

import "time"

// Achievement is the reconciled record for one achievement of one game:
// static schema metadata merged with the player's unlock status. The API
// name is unique within a title, so the primary key is (GameAppID, APIName).
// GameAppID is a soft reference: a single-game sync may store achievements
// before the owning game row exists.
type Achievement struct {
	GameAppID uint   `gorm:"primaryKey;autoIncrement:false" json:"game_app_id"`
	APIName   string `gorm:"primaryKey;size:128" json:"api_name"`

	// DisplayName falls back to APIName when the schema has no human label.
	DisplayName string `gorm:"size:255" json:"display_name"`
	Description string `gorm:"size:1000" json:"description"`

	Achieved bool `gorm:"default:false;index" json:"achieved"`
	// UnlockedAt is set only when Achieved is true and the remote unlock
	// time was a positive timestamp.
	UnlockedAt *time.Time `json:"unlocked_at"`

	// Position preserves merge order (schema order, then progress-only
	// entries) so listings are deterministic across re-syncs.
	Position int `gorm:"index" json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Achievement) TableName() string {
	return "achievements"
}

// Unlocked reports whether the achievement carries a usable unlock time.
func (a *Achievement) Unlocked() bool {
	return a.Achieved && a.UnlockedAt != nil
}
