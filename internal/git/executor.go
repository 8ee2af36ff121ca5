package git

import (
	"bytes"
	"os/exec"
)

// CommandExecutor defines an interface for executing git commands, so the
// Store can be tested without a git binary or a repository.
type CommandExecutor interface {
	// Execute runs a command, returning a GitError on failure.
	Execute(cmd *exec.Cmd) error

	// ExecuteWithOutput runs a command and returns its stdout.
	ExecuteWithOutput(cmd *exec.Cmd) (string, error)
}

// ExecExecutor is the default implementation of CommandExecutor that
// delegates to the os/exec package.
type ExecExecutor struct{}

// NewExecExecutor creates a new ExecExecutor.
func NewExecExecutor() *ExecExecutor {
	return &ExecExecutor{}
}

// Execute implements CommandExecutor.Execute.
func (e *ExecExecutor) Execute(cmd *exec.Cmd) error {
	var stderr bytes.Buffer
	if cmd.Stderr == nil {
		cmd.Stderr = &stderr
	}

	if err := cmd.Run(); err != nil {
		return newGitError(cmd.Args, err, stderr.String())
	}
	return nil
}

// ExecuteWithOutput implements CommandExecutor.ExecuteWithOutput.
func (e *ExecExecutor) ExecuteWithOutput(cmd *exec.Cmd) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", newGitError(cmd.Args, err, stderr.String())
	}
	return stdout.String(), nil
}
