package app

import (
	"fmt"
	"os"
	"time"

	"clipsync/internal/clip"
	"clipsync/internal/config"
	"clipsync/internal/database"
	"clipsync/internal/fs"
	"clipsync/internal/git"
	"clipsync/internal/model"
)

// App is the application layer between the CLI and the SyncService.
// It constructs all dependencies from config, exposes the high-level
// operations, and manages the DB lifecycle on Close.
type App struct {
	cfg     *config.Config
	db      clip.Database
	store   clip.Store
	fsmgr   clip.FilesystemManager
	service *clip.SyncService
	op      *Operation
	logFile *os.File
}

// NewApp creates a fully wired App from the given config. operation
// identifies the CLI command being run (e.g. "Sync", "GetHistory"). The
// caller must call Close when done.
func NewApp(cfg *config.Config, operation string) (*App, error) {
	fsmgr := fs.NewOSFilesystemManager()
	store := git.NewStore(cfg.Sync.DestinationDir)

	db, err := database.NewDatabaseFromConfig(cfg.Database, cfg.HostID)
	if err != nil {
		return nil, fmt.Errorf("creating database: %w", err)
	}

	runID := time.Now().UTC().Format("20060102T150405Z")
	logger, logFile, err := newLogger(cfg.LogDir, runID)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	svc := clip.NewSyncService(
		clip.SyncConfig{
			SourcePath:     cfg.Sync.SourcePath,
			DestinationDir: cfg.Sync.DestinationDir,
			RemoteName:     cfg.Sync.RemoteName,
			BranchName:     cfg.Sync.BranchName,
		},
		store, fsmgr, &slogAdapter{l: logger}, clip.RealClock{}, os.Stdout,
	)

	return &App{
		cfg:     cfg,
		db:      db,
		store:   store,
		fsmgr:   fsmgr,
		service: svc,
		op:      NewOperation(operation),
		logFile: logFile,
	}, nil
}

// persistOperation saves the operation to the database, giving it a UUID.
// This should only be called for commands whose runs are worth recording.
func (a *App) persistOperation() error {
	if a.op.Persisted() {
		return nil // already persisted
	}
	run, err := a.db.CreateSyncRun(a.op.Operation)
	if err != nil {
		return fmt.Errorf("persisting sync run: %w", err)
	}
	a.op.ID = run.ID
	return nil
}

// Sync runs one sync pass and records the outcome in the run history.
func (a *App) Sync() (*clip.Result, error) {
	if err := a.persistOperation(); err != nil {
		return nil, err
	}

	res, err := a.service.Sync()
	if err != nil {
		a.op.Status = "error"
		a.op.Detail = err.Error()
		if res != nil {
			a.op.BytesCopied = res.BytesCopied
		}
		return res, err
	}

	switch {
	case !res.Mounted:
		a.op.Detail = "source not available"
	case !res.Changed:
		a.op.Detail = "no changes"
	default:
		a.op.Detail = res.CommitMessage
	}
	a.op.BytesCopied = res.BytesCopied
	return res, nil
}

// Status reports the current source and destination state.
func (a *App) Status() (*clip.Status, error) {
	if !git.IsRepository(a.cfg.Sync.DestinationDir) {
		return nil, fmt.Errorf("destination is not a git repository: %s", a.cfg.Sync.DestinationDir)
	}
	return a.service.Status()
}

// History returns the most recent sync runs, newest first.
func (a *App) History(limit int) ([]*model.SyncRun, error) {
	return a.db.ListSyncRuns(limit)
}

// Close finalizes the run record (if one was persisted) and closes all
// resources.
func (a *App) Close() error {
	var firstErr error

	if a.op.Persisted() {
		if err := a.db.FinishSyncRun(a.op.ID, a.op.Status, a.op.Detail, a.op.BytesCopied); err != nil {
			firstErr = fmt.Errorf("finishing sync run: %w", err)
		}
	}

	if err := a.db.Close(); err != nil {
		if firstErr == nil {
			firstErr = fmt.Errorf("closing database: %w", err)
		}
	}

	if a.logFile != nil {
		a.logFile.Close()
	}

	return firstErr
}
