package database

import (
	"os"
	"path/filepath"
	"testing"

	"clipsync/internal/config"
)

func TestNewDatabaseFromConfig(t *testing.T) {
	t.Run("memory database", func(t *testing.T) {
		db, err := NewDatabaseFromConfig(config.DatabaseConfig{Type: "memory"}, "host-1")
		if err != nil {
			t.Fatalf("NewDatabaseFromConfig() error = %v", err)
		}
		defer db.Close()

		if _, err := db.CreateSyncRun("Sync"); err != nil {
			t.Errorf("CreateSyncRun() error = %v", err)
		}
	})

	t.Run("sqlite database creates data dir and file", func(t *testing.T) {
		dataDir := filepath.Join(t.TempDir(), "data")
		db, err := NewDatabaseFromConfig(config.DatabaseConfig{Type: "sqlite", DataDir: dataDir}, "host-1")
		if err != nil {
			t.Fatalf("NewDatabaseFromConfig() error = %v", err)
		}
		defer db.Close()

		if _, err := os.Stat(filepath.Join(dataDir, "host-1.db")); err != nil {
			t.Errorf("database file not created: %v", err)
		}
	})

	t.Run("sqlite without data_dir fails", func(t *testing.T) {
		if _, err := NewDatabaseFromConfig(config.DatabaseConfig{Type: "sqlite"}, "host-1"); err == nil {
			t.Error("NewDatabaseFromConfig() expected error for missing data_dir")
		}
	})

	t.Run("unknown type fails", func(t *testing.T) {
		if _, err := NewDatabaseFromConfig(config.DatabaseConfig{Type: "redis"}, "host-1"); err == nil {
			t.Error("NewDatabaseFromConfig() expected error for unknown type")
		}
	})
}
