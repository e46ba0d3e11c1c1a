package models

import "time"

// Pick is one entry in the append-only recommendation ledger. The
// achievement reference is soft: no foreign key is enforced, and a pick
// may outlive the achievement row it named. Display code must fall back
// to the raw API name on a missing join.
type Pick struct {
	ID                 uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	GameAppID          uint      `gorm:"index" json:"game_app_id"`
	AchievementAPIName string    `gorm:"size:128;index" json:"achievement_api_name"`
	PickedAt           time.Time `gorm:"autoCreateTime" json:"picked_at"`
}

// TableName specifies the table name for GORM.
func (Pick) TableName() string {
	return "pick_history"
}
