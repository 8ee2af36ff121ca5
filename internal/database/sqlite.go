package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"clipsync/internal/database/migrations"
	"clipsync/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteDatabase implements the clip.Database interface using SQLite.
type SQLiteDatabase struct {
	db   *sql.DB
	path string
}

// NewSQLiteDatabase opens a SQLite database and applies pending migrations.
// path can be a file path or ":memory:" for an in-memory database.
func NewSQLiteDatabase(path string) (*SQLiteDatabase, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}

	if err := migrations.MigrateUp(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	return &SQLiteDatabase{
		db:   db,
		path: path,
	}, nil
}

// OpenConnection opens and configures a SQLite database connection with
// appropriate PRAGMAs. path can be a file path or ":memory:".
func OpenConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign key constraints (SQLite default is OFF for backward compatibility)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	return db, nil
}

// CreateSyncRun records the start of a CLI run.
func (s *SQLiteDatabase) CreateSyncRun(operation string) (*model.SyncRun, error) {
	run := &model.SyncRun{
		ID:        uuid.New().String(),
		Operation: operation,
		StartedAt: time.Now(),
		Status:    "running",
	}

	_, err := s.db.Exec(
		`INSERT INTO sync_runs (id, operation, started_at, status) VALUES (?, ?, ?, ?)`,
		run.ID, run.Operation, run.StartedAt, run.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting sync run: %w", err)
	}

	return run, nil
}

// FinishSyncRun finalizes a run with its outcome.
func (s *SQLiteDatabase) FinishSyncRun(id, status, detail string, bytesCopied int64) error {
	res, err := s.db.Exec(
		`UPDATE sync_runs SET finished_at = ?, status = ?, detail = ?, bytes_copied = ? WHERE id = ?`,
		time.Now(), status, detail, bytesCopied, id,
	)
	if err != nil {
		return fmt.Errorf("updating sync run: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("sync run not found: %s", id)
	}
	return nil
}

// ListSyncRuns returns the most recent runs, newest first.
func (s *SQLiteDatabase) ListSyncRuns(limit int) ([]*model.SyncRun, error) {
	rows, err := s.db.Query(
		`SELECT id, operation, started_at, finished_at, status, detail, bytes_copied
		 FROM sync_runs ORDER BY started_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying sync runs: %w", err)
	}
	defer rows.Close()

	var runs []*model.SyncRun
	for rows.Next() {
		var run model.SyncRun
		if err := rows.Scan(
			&run.ID, &run.Operation, &run.StartedAt, &run.FinishedAt,
			&run.Status, &run.Detail, &run.BytesCopied,
		); err != nil {
			return nil, fmt.Errorf("scanning sync run: %w", err)
		}
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sync runs: %w", err)
	}

	return runs, nil
}

// Close closes the database connection.
func (s *SQLiteDatabase) Close() error {
	return s.db.Close()
}
