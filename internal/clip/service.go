package clip

import (
	"fmt"
	"io"
	"path/filepath"
	"time"
)

// SyncConfig holds the paths and refs the sync operates on.
type SyncConfig struct {
	// SourcePath is the clippings file on the device. It exists only while
	// the device is mounted.
	SourcePath string

	// DestinationDir is the version-controlled directory that holds the
	// tracked file.
	DestinationDir string

	// RemoteName and BranchName identify where commits are pushed.
	RemoteName string
	BranchName string
}

// Result describes what a sync actually did.
type Result struct {
	// Mounted is false when the source was absent or unreadable. That is
	// not an error: the run succeeds and nothing else happens.
	Mounted bool

	// Changed is true when the copy produced content differing from the
	// last commit, so a commit and push happened.
	Changed bool

	// CommitMessage is the timestamp message used for the commit, empty
	// when no commit was made.
	CommitMessage string

	// BytesCopied is the size of the copied clippings file.
	BytesCopied int64
}

// SyncService copies the clippings file into the destination directory and
// records the change under version control.
type SyncService struct {
	cfg    SyncConfig
	store  Store
	fsmgr  FilesystemManager
	logger Logger
	clock  Clock
	out    io.Writer
}

// NewSyncService creates a SyncService with the provided dependencies.
// out receives the user-facing diagnostic when the source is not mounted.
func NewSyncService(cfg SyncConfig, store Store, fsmgr FilesystemManager, logger Logger, clock Clock, out io.Writer) *SyncService {
	return &SyncService{
		cfg:    cfg,
		store:  store,
		fsmgr:  fsmgr,
		logger: logger,
		clock:  clock,
		out:    out,
	}
}

// Sync performs one sync pass:
//
//  1. Enter the destination directory (restored on return, even on error).
//  2. Probe the source. Absent or unreadable means the device is not
//     mounted; print the diagnostic and return successfully.
//  3. Copy the source bytes verbatim over the tracked file.
//  4. Stage everything and, if the content actually changed, commit with a
//     timestamp message. An unchanged source produces no commit.
//  5. Push the branch to the configured remote. A push failure is returned
//     to the caller but the local commit is kept.
func (s *SyncService) Sync() (*Result, error) {
	restore, err := EnterDir(s.cfg.DestinationDir)
	if err != nil {
		return nil, fmt.Errorf("entering destination directory: %w", err)
	}
	defer func() {
		if rerr := restore(); rerr != nil {
			s.logger.Error("restoring working directory failed", "error", rerr)
		}
	}()

	if !s.fsmgr.Readable(s.cfg.SourcePath) {
		fmt.Fprintf(s.out, "%s does not seem to be mounted\n", s.cfg.SourcePath)
		s.logger.Info("source not available", "path", s.cfg.SourcePath)
		return &Result{}, nil
	}

	dst := filepath.Join(s.cfg.DestinationDir, filepath.Base(s.cfg.SourcePath))
	n, err := s.fsmgr.Copy(s.cfg.SourcePath, dst)
	if err != nil {
		return nil, fmt.Errorf("copying clippings file: %w", err)
	}
	s.logger.Debug("clippings file copied", "dst", dst, "bytes", n)

	res := &Result{Mounted: true, BytesCopied: n}

	if err := s.store.Stage(); err != nil {
		return res, fmt.Errorf("staging changes: %w", err)
	}

	changed, err := s.store.HasChanges()
	if err != nil {
		return res, fmt.Errorf("checking for changes: %w", err)
	}
	if !changed {
		s.logger.Info("clippings unchanged, nothing to commit")
		return res, nil
	}

	msg := s.clock.Now().Format(time.UnixDate)
	if err := s.store.Commit(msg); err != nil {
		return res, fmt.Errorf("committing: %w", err)
	}
	res.Changed = true
	res.CommitMessage = msg

	if err := s.store.Push(s.cfg.RemoteName, s.cfg.BranchName); err != nil {
		// The commit stays local; the next run's push will carry it.
		return res, fmt.Errorf("pushing to %s %s: %w", s.cfg.RemoteName, s.cfg.BranchName, err)
	}

	s.logger.Info("sync complete", "commit", msg, "bytes", n)
	return res, nil
}
