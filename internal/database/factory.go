package database

import (
	"fmt"
	"os"
	"path/filepath"

	"clipsync/internal/clip"
	"clipsync/internal/config"
)

// NewDatabaseFromConfig creates a Database implementation based on the
// database config type.
func NewDatabaseFromConfig(cfg config.DatabaseConfig, hostID string) (clip.Database, error) {
	switch cfg.Type {
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for sqlite database")
		}
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		dbPath := filepath.Join(cfg.DataDir, hostID+".db")
		return NewSQLiteDatabase(dbPath)
	case "memory":
		return NewSQLiteDatabase(":memory:")
	default:
		return nil, fmt.Errorf("unknown database type: %s", cfg.Type)
	}
}
