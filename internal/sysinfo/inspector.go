// Package sysinfo inspects the host system for the installer.
package sysinfo

import (
	"bufio"
	"context"
	"os"
	"runtime"
	"strings"

	"github.com/configo-dev/configo/internal/exec"
	"github.com/configo-dev/configo/pkg/models"
)

// knownPackageManagers are probed on PATH, in this order.
var knownPackageManagers = []string{
	"apt", "snap", "flatpak", "brew", "dnf", "pacman", "winget", "choco",
}

// Inspector reports OS, architecture, distro, and available package
// managers. It satisfies the backend.SystemInspector capability.
type Inspector struct {
	runner exec.CommandRunner
	// osReleasePath overrides /etc/os-release in tests.
	osReleasePath string
}

// New creates an Inspector that probes PATH through runner.
func New(runner exec.CommandRunner) *Inspector {
	return &Inspector{
		runner:        runner,
		osReleasePath: "/etc/os-release",
	}
}

// Inspect gathers system information. It never fails: fields that cannot
// be determined are left empty.
func (i *Inspector) Inspect(ctx context.Context) *models.SystemInfo {
	info := &models.SystemInfo{
		OS:              runtime.GOOS,
		Architecture:    runtime.GOARCH,
		PackageManagers: i.detectPackageManagers(),
	}

	if runtime.GOOS == "linux" {
		info.Distro = i.distroID()
	}
	info.OSVersion = i.osVersion(ctx)

	return info
}

// Available reports that this is a real implementation.
func (i *Inspector) Available() bool { return true }

// detectPackageManagers returns the known package managers found on PATH.
func (i *Inspector) detectPackageManagers() []string {
	found := []string{}
	for _, pm := range knownPackageManagers {
		if i.runner.LookPath(pm) {
			found = append(found, pm)
		}
	}
	return found
}

// distroID reads the ID field from os-release.
func (i *Inspector) distroID() string {
	f, err := os.Open(i.osReleasePath)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if value, ok := strings.CutPrefix(line, "ID="); ok {
			return strings.Trim(value, `"`)
		}
	}
	return ""
}

// osVersion asks uname for the kernel release; empty on failure.
func (i *Inspector) osVersion(ctx context.Context) string {
	out, err := i.runner.Run(ctx, "", "uname", "-r")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
