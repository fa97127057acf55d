//go:build windows

package exec

import "os/exec"

// setProcessGroup is a no-op on Windows; os/exec kills the direct child.
func setProcessGroup(cmd *exec.Cmd) {}

// terminateGroup kills the child process. Windows has no process-group
// signal equivalent, so descendants of a shell may survive.
func terminateGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
