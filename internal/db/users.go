package db

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cheevodev/cheevo/internal/models"
)

// GetUser retrieves the single config row.
func (db *DB) GetUser() (*models.User, error) {
	var user models.User
	err := db.Where("id = ?", "default").First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// Return an empty row if the seed is missing
			return &models.User{ID: "default"}, nil
		}
		return nil, err
	}
	return &user, nil
}

// SaveUser writes the config row, replacing any existing values.
func (db *DB) SaveUser(user *models.User) error {
	user.ID = "default"
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"steam_id", "api_key", "open_router_api_key", "updated_at"}),
	}).Create(user).Error
}

// GetOrCreateTrackingID returns the persistent tracking ID, creating one if
// it doesn't exist. On any error, it falls back to a per-session ID.
func (db *DB) GetOrCreateTrackingID() string {
	user, err := db.GetUser()
	if err != nil {
		return generateSessionID()
	}

	if user.TrackingID != "" {
		return user.TrackingID
	}

	trackingID := generateSessionID()

	user.TrackingID = trackingID
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"tracking_id", "updated_at"}),
	}).Create(user).Error
	if err != nil {
		// Even if save fails, return the generated ID for this session
		return trackingID
	}

	return trackingID
}

// generateSessionID creates a new UUID for session-based tracking.
func generateSessionID() string {
	return uuid.New().String()
}
