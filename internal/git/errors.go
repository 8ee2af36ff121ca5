package git

import (
	"errors"
	"fmt"
	"strings"
)

// ErrGitOperation is the sentinel all failed git invocations wrap, so
// callers can classify version-control failures with errors.Is.
var ErrGitOperation = errors.New("git operation failed")

// GitError carries the failing git subcommand and its stderr.
type GitError struct {
	Args   []string // full argv, e.g. ["git", "push", "nuc", "mainline"]
	Stderr string
	Err    error
}

func newGitError(args []string, err error, stderr string) *GitError {
	return &GitError{
		Args:   args,
		Stderr: strings.TrimSpace(stderr),
		Err:    err,
	}
}

func (e *GitError) Error() string {
	msg := fmt.Sprintf("%s: %v", strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *GitError) Unwrap() error { return e.Err }

// Is makes every GitError match the ErrGitOperation sentinel.
func (e *GitError) Is(target error) bool { return target == ErrGitOperation }
