// Package exec provides an interface for command execution.
package exec

import (
	"context"
)

// CommandRunner defines the interface for running external commands.
// This abstraction allows mocking command execution in tests.
type CommandRunner interface {
	// Run executes a command and returns combined stdout/stderr output.
	// The working directory is set to workDir if non-empty. When the
	// context is cancelled or its deadline passes, the process group is
	// terminated rather than left running.
	Run(ctx context.Context, workDir string, name string, args ...string) (output []byte, err error)

	// RunShell executes a shell command line through "sh -c".
	// Install and check commands are plain shell strings, so quoting
	// rules are the shell's.
	RunShell(ctx context.Context, workDir string, command string) (output []byte, err error)

	// LookPath reports whether an executable with the given name is on PATH.
	LookPath(name string) bool
}
