// Package executor provides synchronous external-command invocation with
// standard output capture. Each invocation is an independent, short-lived
// child process; standard error is discarded so captured text never mixes
// diagnostic chatter with report content.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
)

// Error definitions
var (
	ErrEmptyCommand = errors.New("command cannot be empty")
	ErrInvalidPath  = errors.New("invalid command path")
)

// DefaultExecutor is the default implementation of CommandExecutor.
type DefaultExecutor struct{}

// NewDefaultExecutor creates a new default command executor.
func NewDefaultExecutor() CommandExecutor {
	return &DefaultExecutor{}
}

// Run implements the CommandExecutor interface. A non-zero exit status is
// not an error: the Result carries the exit code and whatever standard
// output the process produced. An error is returned only when the process
// could not be started at all.
func (e *DefaultExecutor) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	if err := e.validate(name); err != nil {
		return nil, err
	}

	path, lookErr := exec.LookPath(name)
	if lookErr != nil {
		return nil, fmt.Errorf("failed to find command %q: %w", name, lookErr)
	}

	// #nosec G204 - the command name is validated above; arguments are a
	// fixed flag set plus a target file path.
	cmd := exec.CommandContext(ctx, path, args...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = io.Discard

	runErr := cmd.Run()

	result := &Result{
		ExitCode: ExitCodeUnknown,
		Stdout:   stdout.String(),
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			// The process ran and exited non-zero; the caller decides
			// what that means for its report.
			return result, nil
		}
		return result, fmt.Errorf("command execution failed: %w", runErr)
	}

	return result, nil
}

// validate checks the command name before execution to prevent command
// injection and ensure a resolvable path format.
func (e *DefaultExecutor) validate(name string) error {
	if name == "" {
		return ErrEmptyCommand
	}
	if !filepath.IsLocal(name) && !filepath.IsAbs(name) {
		return fmt.Errorf("%w: command path must be local or absolute: %s", ErrInvalidPath, name)
	}
	return nil
}
