package memory

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/configo-dev/configo/pkg/models"
)

func TestOpenMissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.json")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if len(s.Sessions()) != 0 {
		t.Error("expected empty session history")
	}
	if len(s.Preferences()) != 0 {
		t.Error("expected empty preferences")
	}
	if len(s.Stats()) != 0 {
		t.Error("expected empty statistics")
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "memory.json")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	started := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	s.AddSession(SessionRecord{
		ID:             "sess-1",
		Description:    "python workstation",
		StartedAt:      started,
		ToolsInstalled: 2,
		ToolsFailed:    1,
	})
	s.SetPreference("theme", "dark")
	s.RecordInstall("git", true, started)
	s.RecordInstall("docker", false, started)
	s.SetPortalStatus(models.PortalStatus{
		Name:         "claude",
		LoggedIn:     true,
		InstallState: models.PortalInstalled,
	})

	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := Open(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}

	sessions := reloaded.Sessions()
	if len(sessions) != 1 || sessions[0].ID != "sess-1" || sessions[0].ToolsInstalled != 2 {
		t.Errorf("unexpected sessions after reload: %+v", sessions)
	}

	if v, ok := reloaded.Preference("theme"); !ok || v != "dark" {
		t.Errorf("expected theme=dark, got %q (%v)", v, ok)
	}

	stats := reloaded.Stats()
	if stats["git"].Installs != 1 || stats["docker"].Failures != 1 {
		t.Errorf("unexpected stats after reload: %+v", stats)
	}

	if st, ok := reloaded.PortalStatus("claude"); !ok || !st.LoggedIn || st.InstallState != models.PortalInstalled {
		t.Errorf("unexpected portal status: %+v (%v)", st, ok)
	}
}

func TestOpenCorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(path); err == nil {
		t.Error("expected error for corrupt memory file")
	}
}

func TestOpenNullMapsNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.json")
	content := `{"session_history": null, "user_preferences": null, "tool_statistics": null, "portals": null}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	// Writes against normalized maps must not panic.
	s.SetPreference("editor", "vim")
	s.RecordInstall("git", true, time.Now())
	s.SetPortalStatus(models.PortalStatus{Name: "gemini"})
}

func TestClear(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "memory.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	s.SetPreference("a", "b")
	s.AddSession(SessionRecord{ID: "x"})
	s.Clear()

	if len(s.Sessions()) != 0 || len(s.Preferences()) != 0 {
		t.Error("expected empty store after Clear")
	}
}

func TestRecordInstallAccumulates(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "memory.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	now := time.Now()
	s.RecordInstall("git", true, now)
	s.RecordInstall("git", true, now.Add(time.Hour))
	s.RecordInstall("git", false, now)

	stats := s.Stats()["git"]
	if stats.Installs != 2 || stats.Failures != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if !stats.LastInstall.Equal(now.Add(time.Hour)) {
		t.Errorf("expected last install to track latest success, got %v", stats.LastInstall)
	}
}
