package backend

import (
	"os"
	"path/filepath"
)

// FindCLIBackend probes candidate directories for a CLI backend checkout
// and returns the first match, or empty if none qualifies. A directory
// qualifies when it contains a "core" subdirectory, the backend's entry
// package. Extra search paths are probed ahead of the built-in candidates.
func FindCLIBackend(searchPaths []string) string {
	exe, _ := os.Executable()
	exeDir := filepath.Dir(exe)
	cwd, _ := os.Getwd()

	candidates := append([]string{}, searchPaths...)
	candidates = append(candidates,
		filepath.Join(exeDir, "cli_submodule"),
		filepath.Join(exeDir, "..", "cli_submodule"),
		filepath.Join(cwd, "cli_submodule"),
	)

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if isBackendDir(candidate) {
			return candidate
		}
	}
	return ""
}

// isBackendDir reports whether dir looks like a backend checkout.
func isBackendDir(dir string) bool {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false
	}
	core, err := os.Stat(filepath.Join(dir, "core"))
	return err == nil && core.IsDir()
}
