package tui

import (
	"time"

	"github.com/configo-dev/configo/internal/executor"
	"github.com/configo-dev/configo/pkg/models"
)

// PlanReadyMsg carries a freshly generated plan into the UI.
type PlanReadyMsg struct {
	Plan *models.Plan
}

// PlanErrorMsg reports a plan generation failure.
type PlanErrorMsg struct {
	Err error
}

// ExecutorEventMsg wraps one executor event for the UI loop.
type ExecutorEventMsg struct {
	Event executor.Event
}

// RunDoneMsg reports the final result of an installation run.
type RunDoneMsg struct {
	Result *executor.Result
}

// PortalStatusMsg carries a refreshed portal status.
type PortalStatusMsg struct {
	Status models.PortalStatus
}

// LogMsg appends a line to the logs panel.
type LogMsg struct {
	Timestamp time.Time
	Level     LogLevel
	Message   string
}

// LogLevel classifies log lines for coloring.
type LogLevel int

const (
	LogLevelInfo LogLevel = iota
	LogLevelWarn
	LogLevelError
)
