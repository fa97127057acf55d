// Package planfile reads and writes installation plans as YAML so they
// can be reviewed, edited, and re-run outside a live session.
package planfile

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/configo-dev/configo/pkg/models"
)

// Load reads a plan from a YAML file. Steps without a status are
// normalized to pending; an unknown status is an error.
func Load(path string) (*models.Plan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}

	var plan models.Plan
	if err := yaml.Unmarshal(raw, &plan); err != nil {
		return nil, fmt.Errorf("parsing plan file %s: %w", path, err)
	}

	for i, s := range plan.Steps {
		if s == nil {
			return nil, fmt.Errorf("plan file %s: step %d is empty", path, i+1)
		}
		if s.Name == "" {
			return nil, fmt.Errorf("plan file %s: step %d has no name", path, i+1)
		}
		if s.Status == "" {
			s.Status = models.StepStatusPending
		}
		if !s.Status.Valid() {
			return nil, fmt.Errorf("plan file %s: step %q has unknown status %q", path, s.Name, s.Status)
		}
	}

	return &plan, nil
}

// Save writes a plan to a YAML file, creating parent directories as
// needed.
func Save(plan *models.Plan, path string) error {
	raw, err := yaml.Marshal(plan)
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating plan directory: %w", err)
		}
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("writing plan file: %w", err)
	}
	return nil
}
