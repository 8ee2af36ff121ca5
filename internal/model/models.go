package model

import (
	"database/sql"
	"time"
)

// SyncRun represents one invocation of a CLI command, as recorded in the
// run-history database.
type SyncRun struct {
	ID          string // UUID
	Operation   string // CLI command, e.g. "Sync"
	StartedAt   time.Time
	FinishedAt  sql.NullTime
	Status      string // "running", "success" or "error"
	Detail      string // commit message, diagnostic, or error text
	BytesCopied int64
}
