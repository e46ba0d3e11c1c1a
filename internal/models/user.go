// Package models defines the core data structures for Cheevo.
package models

import "time"

// User holds the per-installation account configuration.
// There is exactly one live row with ID "default".
type User struct {
	ID               string    `gorm:"primaryKey;size:64" json:"id"`
	SteamID          string    `gorm:"size:32" json:"steam_id"`
	APIKey           string    `gorm:"size:64" json:"api_key"`
	OpenRouterAPIKey string    `gorm:"size:128" json:"openrouter_api_key"`
	TrackingID       string    `gorm:"size:64" json:"tracking_id"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// HasSteamID reports whether a Steam ID is configured.
func (u *User) HasSteamID() bool {
	return u.SteamID != ""
}

// HasAPIKey reports whether a Steam Web API key is configured.
func (u *User) HasAPIKey() bool {
	return u.APIKey != ""
}
