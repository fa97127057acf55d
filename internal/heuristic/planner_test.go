package heuristic

import (
	"context"
	"testing"

	"github.com/configo-dev/configo/pkg/models"
)

func names(plan *models.Plan) []string {
	out := make([]string, 0, plan.Len())
	for _, s := range plan.Steps {
		out = append(out, s.Name)
	}
	return out
}

func TestGeneratePlanPythonDataScience(t *testing.T) {
	plan, err := New().GeneratePlan(context.Background(), "A Python data science workstation")
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}

	got := names(plan)
	if len(got) != 2 || got[0] != "Python 3" || got[1] != "Jupyter" {
		t.Errorf("unexpected steps: %v", got)
	}

	for _, s := range plan.Steps {
		if s.InstallCommand == "" {
			t.Errorf("step %s has no install command", s.Name)
		}
		if s.Status != models.StepStatusPending {
			t.Errorf("step %s: expected pending, got %s", s.Name, s.Status)
		}
	}
}

func TestGeneratePlanCombinesRules(t *testing.T) {
	plan, err := New().GeneratePlan(context.Background(), "node web app with docker and postgres")
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}

	want := map[string]bool{"Node.js": true, "Docker": true, "PostgreSQL": true}
	for _, name := range names(plan) {
		delete(want, name)
	}
	if len(want) != 0 {
		t.Errorf("missing steps: %v (plan: %v)", want, names(plan))
	}
}

func TestGeneratePlanNoDuplicates(t *testing.T) {
	plan, err := New().GeneratePlan(context.Background(), "python python data science machine learning")
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}

	seen := map[string]int{}
	for _, name := range names(plan) {
		seen[name]++
	}
	for name, count := range seen {
		if count > 1 {
			t.Errorf("step %s appears %d times", name, count)
		}
	}
}

func TestGeneratePlanUnknownDescriptionIsEmpty(t *testing.T) {
	plan, err := New().GeneratePlan(context.Background(), "a bowl of petunias")
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if plan.Len() != 0 {
		t.Errorf("expected empty plan, got %v", names(plan))
	}
	if plan.EstimatedTime == "" {
		t.Error("expected an estimate even for empty plans")
	}
}
