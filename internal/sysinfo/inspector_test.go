package sysinfo

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// stubRunner reports a fixed set of executables on PATH.
type stubRunner struct {
	onPath map[string]bool
	uname  string
}

func (s *stubRunner) Run(ctx context.Context, workDir, name string, args ...string) ([]byte, error) {
	return []byte(s.uname + "\n"), nil
}

func (s *stubRunner) RunShell(ctx context.Context, workDir, command string) ([]byte, error) {
	return []byte("ok"), nil
}

func (s *stubRunner) LookPath(name string) bool {
	return s.onPath[name]
}

func TestInspectDetectsPackageManagers(t *testing.T) {
	runner := &stubRunner{
		onPath: map[string]bool{"apt": true, "flatpak": true, "choco": false},
		uname:  "6.8.0-test",
	}

	info := New(runner).Inspect(context.Background())

	if info.OS != runtime.GOOS {
		t.Errorf("expected OS %s, got %s", runtime.GOOS, info.OS)
	}
	if info.Architecture != runtime.GOARCH {
		t.Errorf("expected arch %s, got %s", runtime.GOARCH, info.Architecture)
	}
	if info.OSVersion != "6.8.0-test" {
		t.Errorf("expected trimmed uname output, got %q", info.OSVersion)
	}

	want := []string{"apt", "flatpak"}
	if len(info.PackageManagers) != len(want) {
		t.Fatalf("expected %v, got %v", want, info.PackageManagers)
	}
	for i, pm := range want {
		if info.PackageManagers[i] != pm {
			t.Errorf("expected %s at %d, got %s", pm, i, info.PackageManagers[i])
		}
	}
}

func TestInspectNoPackageManagersIsEmptyNotNil(t *testing.T) {
	info := New(&stubRunner{onPath: map[string]bool{}}).Inspect(context.Background())

	if info.PackageManagers == nil || len(info.PackageManagers) != 0 {
		t.Errorf("expected empty slice, got %v", info.PackageManagers)
	}
}

func TestDistroID(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("distro detection is linux-only")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "os-release")
	content := "NAME=\"Ubuntu\"\nID=ubuntu\nVERSION_ID=\"24.04\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	inspector := New(&stubRunner{onPath: map[string]bool{}})
	inspector.osReleasePath = path

	if got := inspector.distroID(); got != "ubuntu" {
		t.Errorf("expected ubuntu, got %q", got)
	}
}
