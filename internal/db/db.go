package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/themegen/internal/models"
)

var DB *gorm.DB

// Initialize sets up the database connection and runs migrations.
// An empty path uses ~/.themegen/themegen.db.
func Initialize(path string) error {
	if path == "" {
		p, err := DefaultDatabasePath()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		path = p
	}

	db, err := Open(path)
	if err != nil {
		return err
	}
	DB = db
	return nil
}

// Open connects to the SQLite file at path, creating its directory, and
// migrates the schema.
func Open(path string) (*gorm.DB, error) {
	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create themegen directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

// DefaultDatabasePath returns the path to the SQLite database file
func DefaultDatabasePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".themegen", "themegen.db"), nil
}

// runMigrations creates/updates the database schema
func runMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ThemeEntry{},
	)
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		DB = nil
		return sqlDB.Close()
	}
	return nil
}
