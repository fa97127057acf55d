package models

import "time"

// StepStatus represents the current state of an installation step.
type StepStatus string

const (
	// StepStatusPending indicates the step has not started.
	StepStatusPending StepStatus = "pending"
	// StepStatusInstalling indicates the install command is running.
	StepStatusInstalling StepStatus = "installing"
	// StepStatusSuccess indicates install and verification succeeded.
	StepStatusSuccess StepStatus = "success"
	// StepStatusError indicates the install or verification failed.
	StepStatusError StepStatus = "error"
	// StepStatusSkipped indicates the step was skipped (tool already present).
	StepStatusSkipped StepStatus = "skipped"
)

// Valid returns true if the status is a known value.
func (s StepStatus) Valid() bool {
	switch s {
	case StepStatusPending, StepStatusInstalling, StepStatusSuccess, StepStatusError, StepStatusSkipped:
		return true
	default:
		return false
	}
}

// Terminal returns true if the status will not change during a run.
func (s StepStatus) Terminal() bool {
	switch s {
	case StepStatusSuccess, StepStatusError, StepStatusSkipped:
		return true
	default:
		return false
	}
}

// Step represents one installable tool in a plan.
type Step struct {
	// Name is the tool name, unique within a plan by convention.
	Name string `json:"name" yaml:"name"`
	// Description provides free-text detail about the tool.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// InstallCommand is the shell command line that installs the tool.
	InstallCommand string `json:"install_command" yaml:"install"`
	// CheckCommand is the shell command line that verifies the install.
	// Empty means verification is skipped and a zero install exit is success.
	CheckCommand string `json:"check_command,omitempty" yaml:"check,omitempty"`
	// Dependencies lists names of steps this tool depends on. The field is
	// carried for data compatibility only; the executor never reorders or
	// gates execution on it.
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	// Status is the current state of the step.
	Status StepStatus `json:"status" yaml:"status,omitempty"`
	// Error contains the failure message when Status is error.
	Error string `json:"error,omitempty" yaml:"-"`
}

// Plan is an ordered list of steps produced by the backend (or a fallback).
type Plan struct {
	// Description is the environment description the plan was generated from.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Steps are executed strictly in order.
	Steps []*Step `json:"steps" yaml:"steps"`
	// EstimatedTime is a free-text duration estimate from the generator.
	EstimatedTime string `json:"estimated_time,omitempty" yaml:"estimated_time,omitempty"`
	// GeneratedAt is when the plan was produced.
	GeneratedAt time.Time `json:"generated_at,omitempty" yaml:"generated_at,omitempty"`
}

// Len returns the number of steps in the plan.
func (p *Plan) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Steps)
}

// Reset returns every step to pending and clears recorded errors.
// Used when a plan is re-run or a cancelled run is restarted.
func (p *Plan) Reset() {
	for _, s := range p.Steps {
		s.Status = StepStatusPending
		s.Error = ""
	}
}

// Counts tallies steps by terminal outcome.
type Counts struct {
	Success int
	Error   int
	Skipped int
	Pending int
}

// Count returns the per-status tally for the plan.
func (p *Plan) Count() Counts {
	var c Counts
	for _, s := range p.Steps {
		switch s.Status {
		case StepStatusSuccess:
			c.Success++
		case StepStatusError:
			c.Error++
		case StepStatusSkipped:
			c.Skipped++
		default:
			c.Pending++
		}
	}
	return c
}

// Find returns the first step with the given name, or nil.
func (p *Plan) Find(name string) *Step {
	for _, s := range p.Steps {
		if s.Name == name {
			return s
		}
	}
	return nil
}
