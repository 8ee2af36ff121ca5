package clip

import "clipsync/internal/model"

// Database provides an interface for run-history storage.
type Database interface {
	// CreateSyncRun records the start of a CLI run and returns the new row.
	CreateSyncRun(operation string) (*model.SyncRun, error)

	// FinishSyncRun finalizes a run with its status, a human-readable
	// detail (commit message or diagnostic), and the bytes copied.
	FinishSyncRun(id, status, detail string, bytesCopied int64) error

	// ListSyncRuns returns the most recent runs, newest first.
	ListSyncRuns(limit int) ([]*model.SyncRun, error)

	// Close closes the database connection.
	Close() error
}
