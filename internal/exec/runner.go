package exec

import (
	"context"
	"os/exec"
	"time"
)

// DefaultKillGrace is how long a terminated process gets to exit
// before it is killed outright.
const DefaultKillGrace = 5 * time.Second

// ExecRunner implements CommandRunner using os/exec.
// Child processes run in their own process group so that timing out a
// shell pipeline also terminates its descendants.
type ExecRunner struct {
	killGrace time.Duration
}

// NewRunner creates a new ExecRunner with the default kill grace period.
func NewRunner() *ExecRunner {
	return &ExecRunner{killGrace: DefaultKillGrace}
}

// NewRunnerWithGrace creates an ExecRunner with a custom kill grace period.
func NewRunnerWithGrace(grace time.Duration) *ExecRunner {
	if grace <= 0 {
		grace = DefaultKillGrace
	}
	return &ExecRunner{killGrace: grace}
}

// Run executes a command and returns combined stdout/stderr output.
func (r *ExecRunner) Run(ctx context.Context, workDir string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if workDir != "" {
		cmd.Dir = workDir
	}
	setProcessGroup(cmd)
	// On cancellation, terminate the whole group; escalate to kill after
	// the grace period so a hung installer cannot outlive its timeout.
	cmd.Cancel = func() error { return terminateGroup(cmd) }
	cmd.WaitDelay = r.killGrace
	return cmd.CombinedOutput()
}

// RunShell executes a shell command line through "sh -c".
func (r *ExecRunner) RunShell(ctx context.Context, workDir string, command string) ([]byte, error) {
	return r.Run(ctx, workDir, "sh", "-c", command)
}

// LookPath reports whether an executable with the given name is on PATH.
func (r *ExecRunner) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Verify ExecRunner implements CommandRunner at compile time.
var _ CommandRunner = (*ExecRunner)(nil)
