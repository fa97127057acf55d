package planfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/configo-dev/configo/pkg/models"
)

func TestLoadNormalizesStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	content := `description: python workstation
estimated_time: 5-10 minutes
steps:
  - name: Python 3
    install: sudo apt install python3 -y
    check: python3 --version
  - name: Git
    install: sudo apt install git -y
    status: skipped
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	plan, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if plan.Description != "python workstation" || plan.Len() != 2 {
		t.Fatalf("unexpected plan: %+v", plan)
	}
	if plan.Steps[0].Status != models.StepStatusPending {
		t.Errorf("expected missing status to default to pending, got %s", plan.Steps[0].Status)
	}
	if plan.Steps[1].Status != models.StepStatusSkipped {
		t.Errorf("expected explicit status preserved, got %s", plan.Steps[1].Status)
	}
	if plan.Steps[0].InstallCommand != "sudo apt install python3 -y" {
		t.Errorf("unexpected install command: %s", plan.Steps[0].InstallCommand)
	}
}

func TestLoadRejectsUnknownStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	content := `steps:
  - name: Git
    install: sudo apt install git -y
    status: exploded
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestLoadRejectsNamelessStep(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	content := `steps:
  - install: sudo apt install git -y
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for step without a name")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "plan.yaml")

	plan := &models.Plan{
		Description:   "rust toolchain",
		EstimatedTime: "5-10 minutes",
		Steps: []*models.Step{
			{
				Name:           "Rust",
				InstallCommand: "curl https://sh.rustup.rs | sh -s -- -y",
				CheckCommand:   "rustc --version",
				Status:         models.StepStatusPending,
			},
		},
	}

	if err := Save(plan, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Len() != 1 || got.Steps[0].Name != "Rust" || got.Steps[0].CheckCommand != "rustc --version" {
		t.Errorf("unexpected round trip: %+v", got.Steps[0])
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
