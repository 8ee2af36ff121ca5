package clip

import "fmt"

// Status describes the current state of both ends of the sync.
type Status struct {
	// SourceMounted reports whether the clippings file is readable right now.
	SourceMounted bool

	// DirtyWorkingTree reports whether the destination has changes that
	// have not been committed yet.
	DirtyWorkingTree bool
}

// Status reports whether the source is available and whether the
// destination working tree has uncommitted changes.
func (s *SyncService) Status() (*Status, error) {
	dirty, err := s.store.HasChanges()
	if err != nil {
		return nil, fmt.Errorf("checking working tree: %w", err)
	}

	return &Status{
		SourceMounted:    s.fsmgr.Readable(s.cfg.SourcePath),
		DirtyWorkingTree: dirty,
	}, nil
}
