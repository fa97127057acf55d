package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultTimeouts(t *testing.T) {
	cfg := Default()

	if cfg.Timeouts.Install != 300*time.Second {
		t.Errorf("expected 300s install timeout, got %s", cfg.Timeouts.Install)
	}
	if cfg.Timeouts.Check != 30*time.Second {
		t.Errorf("expected 30s check timeout, got %s", cfg.Timeouts.Check)
	}
	if cfg.Timeouts.KillGrace != 5*time.Second {
		t.Errorf("expected 5s kill grace, got %s", cfg.Timeouts.KillGrace)
	}
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
anthropic:
  api_key: test-key
  use_aws_bedrock: true
  aws_region: us-west-2
timeouts:
  install: 120s
  check: 10s
memory:
  path: /tmp/mem.json
backend:
  search_paths:
    - /opt/configo-cli
tui:
  refresh_rate: 250ms
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}

	if cfg.Anthropic.APIKey != "test-key" {
		t.Errorf("expected api key test-key, got %q", cfg.Anthropic.APIKey)
	}
	if !cfg.Anthropic.UseAWSBedrock {
		t.Error("expected bedrock enabled")
	}
	if cfg.Anthropic.AWSRegion != "us-west-2" {
		t.Errorf("expected region us-west-2, got %q", cfg.Anthropic.AWSRegion)
	}
	if cfg.Timeouts.Install != 120*time.Second {
		t.Errorf("expected 120s install timeout, got %s", cfg.Timeouts.Install)
	}
	if cfg.Timeouts.Check != 10*time.Second {
		t.Errorf("expected 10s check timeout, got %s", cfg.Timeouts.Check)
	}
	if cfg.Memory.Path != "/tmp/mem.json" {
		t.Errorf("expected memory path /tmp/mem.json, got %q", cfg.Memory.Path)
	}
	if len(cfg.Backend.SearchPaths) != 1 || cfg.Backend.SearchPaths[0] != "/opt/configo-cli" {
		t.Errorf("unexpected search paths: %v", cfg.Backend.SearchPaths)
	}
	if cfg.TUI.RefreshRate != 250*time.Millisecond {
		t.Errorf("expected 250ms refresh rate, got %s", cfg.TUI.RefreshRate)
	}
}

func TestLoadFromPathDefaultsApply(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("anthropic:\n  api_key: k\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}

	if cfg.Timeouts.Install != 300*time.Second {
		t.Errorf("expected default install timeout, got %s", cfg.Timeouts.Install)
	}
	if cfg.TUI.RefreshRate != 100*time.Millisecond {
		t.Errorf("expected default refresh rate, got %s", cfg.TUI.RefreshRate)
	}
}

func TestLoadFromPathExpandsAPIKeyEnv(t *testing.T) {
	t.Setenv("CONFIGO_TEST_KEY", "expanded-secret")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("anthropic:\n  api_key: ${CONFIGO_TEST_KEY}\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}

	if cfg.Anthropic.APIKey != "expanded-secret" {
		t.Errorf("expected env expansion, got %q", cfg.Anthropic.APIKey)
	}
}

func TestDefaultMemoryPathRespectsXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/custom/data")

	want := filepath.Join("/custom/data", "configo", "memory.json")
	if got := DefaultMemoryPath(); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
