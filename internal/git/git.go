// Package git implements the version-controlled store by shelling out to
// the git binary. Commands run with -C so the store works regardless of the
// process working directory.
package git

import (
	"os/exec"
	"strings"
)

// Store wraps the git binary for a single repository.
type Store struct {
	repoPath string
	executor CommandExecutor
}

// NewStore creates a Store for the repository at repoPath with the default
// exec-based executor.
func NewStore(repoPath string) *Store {
	return NewStoreWithExecutor(repoPath, NewExecExecutor())
}

// NewStoreWithExecutor creates a Store with a custom executor. Tests use
// this to record invocations instead of running git.
func NewStoreWithExecutor(repoPath string, executor CommandExecutor) *Store {
	return &Store{
		repoPath: repoPath,
		executor: executor,
	}
}

// IsRepository checks if the given path is inside a git working tree.
func IsRepository(path string) bool {
	cmd := exec.Command("git", "-C", path, "rev-parse", "--is-inside-work-tree")
	return NewExecExecutor().Execute(cmd) == nil
}

// HasChanges reports whether the working tree differs from HEAD, counting
// both staged and unstaged changes.
func (s *Store) HasChanges() (bool, error) {
	output, err := s.run("status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(output) != "", nil
}

// Stage stages all changes in the repository, including deletions.
func (s *Store) Stage() error {
	_, err := s.run("add", "-A")
	return err
}

// Commit records the staged changes with the given message.
func (s *Store) Commit(message string) error {
	_, err := s.run("commit", "-m", message)
	return err
}

// Push publishes the current branch to the named remote and ref.
func (s *Store) Push(remote, ref string) error {
	_, err := s.run("push", remote, ref)
	return err
}

// CurrentBranch returns the checked-out branch name.
func (s *Store) CurrentBranch() (string, error) {
	output, err := s.run("branch", "--show-current")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

// run executes a git subcommand against the store's repository.
func (s *Store) run(args ...string) (string, error) {
	baseArgs := []string{"-C", s.repoPath}
	cmd := exec.Command("git", append(baseArgs, args...)...)
	return s.executor.ExecuteWithOutput(cmd)
}
