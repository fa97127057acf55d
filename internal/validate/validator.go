// Package validate checks whether named tools are actually installed on
// the host by probing the PATH and running version commands.
package validate

import (
	"context"
	"strings"
	"time"

	"github.com/configo-dev/configo/internal/exec"
)

const checkTimeout = 10 * time.Second

// Validator probes installed tools through a command runner.
type Validator struct {
	runner exec.CommandRunner
}

// New creates a Validator.
func New(runner exec.CommandRunner) *Validator {
	return &Validator{runner: runner}
}

// ValidateTool reports whether the named tool is installed. A tool
// qualifies when its executable is on PATH and `<tool> --version`
// exits cleanly; tools without a working version flag still pass on
// the PATH check alone.
func (v *Validator) ValidateTool(ctx context.Context, name string) bool {
	executable := strings.ToLower(strings.TrimSpace(name))
	if executable == "" {
		return false
	}
	if fields := strings.Fields(executable); len(fields) > 0 {
		executable = fields[0]
	}

	if !v.runner.LookPath(executable) {
		return false
	}

	checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()
	if _, err := v.runner.Run(checkCtx, "", executable, "--version"); err == nil {
		return true
	}
	// Some tools have no --version flag; presence on PATH is enough.
	return true
}

// ValidateCommand runs an explicit check command and reports whether it
// exits cleanly.
func (v *Validator) ValidateCommand(ctx context.Context, command string) bool {
	if strings.TrimSpace(command) == "" {
		return false
	}
	checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()
	_, err := v.runner.RunShell(checkCtx, "", command)
	return err == nil
}

// Available reports that this is a real implementation.
func (v *Validator) Available() bool { return true }
