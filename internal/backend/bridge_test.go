package backend

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/configo-dev/configo/internal/config"
)

func TestFallbackSuggesterReturnsEmptyAndNoError(t *testing.T) {
	s := FallbackSuggester{}

	for _, input := range []string{"", "python data science", "anything at all"} {
		suggestion, err := s.SuggestStack(context.Background(), input)
		if err != nil {
			t.Fatalf("fallback suggester must never fail, got %v", err)
		}
		if len(suggestion.Tools) != 0 || len(suggestion.Portals) != 0 {
			t.Errorf("input %q: expected empty suggestion, got %+v", input, suggestion)
		}
	}
}

func TestFallbackPlannerFixedEstimate(t *testing.T) {
	p := FallbackPlanner{}

	plan, err := p.GeneratePlan(context.Background(), "a rails app")
	if err != nil {
		t.Fatalf("fallback planner must never fail, got %v", err)
	}
	if len(plan.Steps) != 0 {
		t.Errorf("expected empty plan, got %d steps", len(plan.Steps))
	}
	if plan.EstimatedTime != FallbackEstimate {
		t.Errorf("expected estimate %q, got %q", FallbackEstimate, plan.EstimatedTime)
	}
}

func TestFallbackInspectorUnknownSystem(t *testing.T) {
	info := FallbackInspector{}.Inspect(context.Background())

	if info.OS != "unknown" {
		t.Errorf("expected unknown OS, got %q", info.OS)
	}
	if len(info.PackageManagers) != 0 {
		t.Errorf("expected no package managers, got %v", info.PackageManagers)
	}
}

func TestFallbackValidatorAlwaysFalse(t *testing.T) {
	if (FallbackValidator{}).ValidateTool(context.Background(), "git") {
		t.Error("fallback validator must report false")
	}
}

func TestNewBridgeWithoutKeyBindsFallbacks(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	b := New(Options{Config: config.Default()})

	if b.Suggester.Available() {
		t.Error("expected fallback suggester without API key")
	}
	if b.Planner.Available() {
		t.Error("expected fallback planner without API key")
	}
	if b.Chat.Available() {
		t.Error("expected fallback chat without API key")
	}
	if !b.Degraded() {
		t.Error("expected bridge to report degraded mode")
	}

	// Degraded bridge is still fully callable.
	if _, err := b.Suggester.SuggestStack(context.Background(), "go backend"); err != nil {
		t.Errorf("degraded suggestion call failed: %v", err)
	}
	if _, err := b.Planner.GeneratePlan(context.Background(), "go backend"); err != nil {
		t.Errorf("degraded plan call failed: %v", err)
	}
}

func TestFindCLIBackend(t *testing.T) {
	dir := t.TempDir()

	// Not a backend checkout: no core subdirectory.
	plain := filepath.Join(dir, "plain")
	if err := os.MkdirAll(plain, 0755); err != nil {
		t.Fatal(err)
	}

	checkout := filepath.Join(dir, "cli_submodule")
	if err := os.MkdirAll(filepath.Join(checkout, "core"), 0755); err != nil {
		t.Fatal(err)
	}

	if got := FindCLIBackend([]string{plain, checkout}); got != checkout {
		t.Errorf("expected %s, got %q", checkout, got)
	}
	if got := FindCLIBackend([]string{plain}); got != "" {
		t.Errorf("expected no match, got %q", got)
	}
}

func TestParsePlanFromFencedOutput(t *testing.T) {
	text := "Here is your plan:\n```json\n" +
		`{"tools": [{"name": "git", "install_command": "sudo apt install git -y",
		"check_command": "git --version", "dependencies": []}],
		"estimated_time": "2 minutes"}` + "\n```\nGood luck!"

	plan, err := ParsePlan(text)
	if err != nil {
		t.Fatalf("ParsePlan: %v", err)
	}
	if len(plan.Steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(plan.Steps))
	}
	s := plan.Steps[0]
	if s.Name != "git" || s.InstallCommand != "sudo apt install git -y" {
		t.Errorf("unexpected step: %+v", s)
	}
	if plan.EstimatedTime != "2 minutes" {
		t.Errorf("expected estimate from payload, got %q", plan.EstimatedTime)
	}
}

func TestParseSuggestionRejectsNonJSON(t *testing.T) {
	if _, err := ParseSuggestion("sorry, I cannot help with that"); err == nil {
		t.Error("expected error for output without JSON")
	}
}

func TestParsePlanDefaultsEstimate(t *testing.T) {
	plan, err := ParsePlan(`{"tools": []}`)
	if err != nil {
		t.Fatalf("ParsePlan: %v", err)
	}
	if plan.EstimatedTime != FallbackEstimate {
		t.Errorf("expected fallback estimate, got %q", plan.EstimatedTime)
	}
}
