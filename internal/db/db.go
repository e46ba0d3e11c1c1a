// Package db provides a GORM-based database layer for Cheevo.
// It uses the pure-Go SQLite driver.
package db

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cheevodev/cheevo/internal/models"
)

// DB wraps the GORM database connection with Cheevo-specific operations.
type DB struct {
	*gorm.DB
	path string
}

// Config holds database configuration options.
type Config struct {
	Path        string
	Debug       bool
	MaxIdleConn int
	MaxOpenConn int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(path string) Config {
	return Config{
		Path:        path,
		Debug:       false,
		MaxIdleConn: 1,
		MaxOpenConn: 1,
	}
}

// New creates a new database connection and runs migrations.
func New(cfg Config) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	// Configure GORM logger
	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}

	// Build DSN with DELETE journal mode for simpler transaction handling
	// (WAL mode has visibility issues with the pure-Go SQLite driver)
	dsn := fmt.Sprintf("%s?_pragma=journal_mode(DELETE)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)", cfg.Path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logLevel),
		SkipDefaultTransaction: true, // Better performance for read operations
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConn)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConn)
	sqlDB.SetConnMaxLifetime(time.Hour)

	wrapped := &DB{DB: db, path: cfg.Path}

	// Run auto-migrations
	if err := wrapped.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Seed the single config row
	if err := wrapped.seedUser(); err != nil {
		return nil, fmt.Errorf("seed user: %w", err)
	}

	return wrapped, nil
}

// migrate runs GORM auto-migrations for all models.
func (db *DB) migrate() error {
	return db.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.Achievement{},
		&models.Pick{},
	)
}

// seedUser inserts the default config row if not present.
func (db *DB) seedUser() error {
	user := models.User{ID: "default"}
	result := db.Where("id = ?", "default").FirstOrCreate(&user)
	return result.Error
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// Close closes the database connection.
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Transaction executes a function within a database transaction.
// The callback receives a *DB wrapper that uses the transaction.
// If the callback returns an error, the transaction is rolled back.
// If the callback returns nil, the transaction is committed.
func (d *DB) Transaction(fc func(tx *DB) error) error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		wrappedTx := &DB{DB: tx, path: d.path}
		return fc(wrappedTx)
	})
}

// Stats holds aggregate statistics about the local library.
type Stats struct {
	TotalGames        int64     `json:"total_games"`
	TotalAchievements int64     `json:"total_achievements"`
	TotalUnlocked     int64     `json:"total_unlocked"`
	TotalPicks        int64     `json:"total_picks"`
	CacheSizeBytes    int64     `json:"cache_size_bytes"`
	LastUpdated       time.Time `json:"last_updated"`
}

// GetStats returns aggregate statistics about the database.
func (db *DB) GetStats() (*Stats, error) {
	var stats Stats

	if err := db.Model(&models.Game{}).Count(&stats.TotalGames).Error; err != nil {
		return nil, fmt.Errorf("count games: %w", err)
	}

	if err := db.Model(&models.Achievement{}).Count(&stats.TotalAchievements).Error; err != nil {
		return nil, fmt.Errorf("count achievements: %w", err)
	}

	if err := db.Model(&models.Achievement{}).Where("achieved = ?", true).Count(&stats.TotalUnlocked).Error; err != nil {
		return nil, fmt.Errorf("count unlocked: %w", err)
	}

	if err := db.Model(&models.Pick{}).Count(&stats.TotalPicks).Error; err != nil {
		return nil, fmt.Errorf("count picks: %w", err)
	}

	// Get database file size
	if info, err := os.Stat(db.path); err == nil {
		stats.CacheSizeBytes = info.Size()
	}

	stats.LastUpdated = time.Now()

	return &stats, nil
}
