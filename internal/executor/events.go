// Package executor runs installation plans step by step and reports progress.
package executor

import (
	"time"
)

// EventType represents the type of executor event.
type EventType string

const (
	// EventStepStarted indicates a step's install command is about to run.
	EventStepStarted EventType = "step_started"
	// EventStepCompleted indicates a step reached a terminal status.
	EventStepCompleted EventType = "step_completed"
	// EventRunFinished indicates the whole plan finished or was cancelled.
	EventRunFinished EventType = "run_finished"
)

// Event represents a progress notification emitted by the executor.
// Events are delivered in execution order: one step_started and one
// step_completed per step, then exactly one run_finished.
type Event struct {
	// Type is the kind of event.
	Type EventType
	// Index is the 1-based position of the step within the plan.
	Index int
	// Total is the number of steps in the plan.
	Total int
	// StepName is the name of the related step, if applicable.
	StepName string
	// Success reports the step or run outcome for completed/finished events.
	Success bool
	// Message provides human-readable context about the event.
	Message string
	// Timestamp is when the event occurred.
	Timestamp time.Time
}
