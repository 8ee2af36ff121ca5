package clip

import (
	"fmt"
	"os"
)

// EnterDir changes the process working directory to dir and returns a
// restore function that switches back to whatever directory was current
// before the call. The working directory is process-global state, so the
// restore must run even when intermediate steps fail; callers defer it.
func EnterDir(dir string) (restore func() error, err error) {
	prev, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}

	if err := os.Chdir(dir); err != nil {
		return nil, fmt.Errorf("changing to %s: %w", dir, err)
	}

	return func() error {
		if err := os.Chdir(prev); err != nil {
			return fmt.Errorf("restoring working directory to %s: %w", prev, err)
		}
		return nil
	}, nil
}
