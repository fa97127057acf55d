package models

import "testing"

func TestStepStatusValid(t *testing.T) {
	valid := []StepStatus{
		StepStatusPending,
		StepStatusInstalling,
		StepStatusSuccess,
		StepStatusError,
		StepStatusSkipped,
	}
	for _, s := range valid {
		if !s.Valid() {
			t.Errorf("expected %q to be valid", s)
		}
	}

	if StepStatus("completed").Valid() {
		t.Error("expected unknown status to be invalid")
	}
}

func TestStepStatusTerminal(t *testing.T) {
	if StepStatusPending.Terminal() {
		t.Error("pending must not be terminal")
	}
	if StepStatusInstalling.Terminal() {
		t.Error("installing must not be terminal")
	}
	for _, s := range []StepStatus{StepStatusSuccess, StepStatusError, StepStatusSkipped} {
		if !s.Terminal() {
			t.Errorf("expected %q to be terminal", s)
		}
	}
}

func TestPlanReset(t *testing.T) {
	plan := &Plan{
		Steps: []*Step{
			{Name: "git", Status: StepStatusSuccess},
			{Name: "docker", Status: StepStatusError, Error: "exit status 1"},
			{Name: "node", Status: StepStatusPending},
		},
	}

	plan.Reset()

	for _, s := range plan.Steps {
		if s.Status != StepStatusPending {
			t.Errorf("step %s: expected pending after reset, got %s", s.Name, s.Status)
		}
		if s.Error != "" {
			t.Errorf("step %s: expected cleared error after reset", s.Name)
		}
	}
}

func TestPlanCount(t *testing.T) {
	plan := &Plan{
		Steps: []*Step{
			{Name: "a", Status: StepStatusSuccess},
			{Name: "b", Status: StepStatusError},
			{Name: "c", Status: StepStatusSkipped},
			{Name: "d", Status: StepStatusPending},
			{Name: "e", Status: StepStatusInstalling},
		},
	}

	c := plan.Count()
	if c.Success != 1 || c.Error != 1 || c.Skipped != 1 || c.Pending != 2 {
		t.Errorf("unexpected counts: %+v", c)
	}
}

func TestPlanLenNil(t *testing.T) {
	var plan *Plan
	if plan.Len() != 0 {
		t.Error("nil plan should have length 0")
	}
}

func TestPlanFind(t *testing.T) {
	plan := &Plan{Steps: []*Step{{Name: "git"}, {Name: "docker"}}}

	if s := plan.Find("docker"); s == nil || s.Name != "docker" {
		t.Errorf("expected to find docker, got %v", s)
	}
	if s := plan.Find("rust"); s != nil {
		t.Errorf("expected nil for missing step, got %v", s)
	}
}
