package executor

import "context"

// ExitCodeUnknown is reported when the process state is unavailable,
// e.g. when the command could not be started.
const ExitCodeUnknown = -1

// CommandExecutor defines the interface for running an external command
// and capturing its standard output.
type CommandExecutor interface {
	// Run executes name with args and blocks until the process exits
	// and its full standard output has been captured.
	Run(ctx context.Context, name string, args ...string) (*Result, error)
}

// Result contains the outcome of one command invocation.
type Result struct {
	ExitCode int
	Stdout   string
}
