package executor

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/configo-dev/configo/internal/exec"
	"github.com/configo-dev/configo/pkg/models"
)

// Default command timeouts, overridable via Options.
const (
	// DefaultInstallTimeout bounds a single install command.
	DefaultInstallTimeout = 300 * time.Second
	// DefaultCheckTimeout bounds a single verification command.
	DefaultCheckTimeout = 30 * time.Second
)

// Result summarizes a completed (or cancelled) plan run.
type Result struct {
	// Success is true only if every step succeeded and the run was not
	// cancelled. An empty plan succeeds vacuously.
	Success bool
	// Message is the user-facing summary ("k/n tools installed successfully").
	Message string
	// Successful is the number of steps that reached success.
	Successful int
	// Total is the number of steps in the plan.
	Total int
	// Cancelled reports whether the run stopped at a step boundary
	// due to cancellation.
	Cancelled bool
}

// Options configures an Executor.
type Options struct {
	// InstallTimeout bounds each install command. Zero means the default.
	InstallTimeout time.Duration
	// CheckTimeout bounds each verification command. Zero means the default.
	CheckTimeout time.Duration
	// WorkDir is the working directory for spawned commands.
	WorkDir string
	// EventBuffer is the emitter channel buffer size. Zero means a
	// reasonable default.
	EventBuffer int
}

// Executor runs the steps of a plan strictly in order, one at a time.
//
// The executor is the sole writer of step status while a run is in
// progress; observers receive state changes through the event channel
// and must not mutate the plan until the run_finished event arrives.
type Executor struct {
	runner         exec.CommandRunner
	installTimeout time.Duration
	checkTimeout   time.Duration
	workDir        string
	emitter        *Emitter
	cancelled      atomic.Bool
}

// New creates an Executor that spawns commands through runner.
func New(runner exec.CommandRunner, opts Options) *Executor {
	if opts.InstallTimeout <= 0 {
		opts.InstallTimeout = DefaultInstallTimeout
	}
	if opts.CheckTimeout <= 0 {
		opts.CheckTimeout = DefaultCheckTimeout
	}
	if opts.EventBuffer <= 0 {
		opts.EventBuffer = 64
	}
	return &Executor{
		runner:         runner,
		installTimeout: opts.InstallTimeout,
		checkTimeout:   opts.CheckTimeout,
		workDir:        opts.WorkDir,
		emitter:        NewEmitter(opts.EventBuffer),
	}
}

// Events returns the channel of progress events for this executor.
// The channel is closed after the run_finished event.
func (e *Executor) Events() <-chan Event {
	return e.emitter.Events()
}

// Cancel requests cooperative cancellation. The current command is
// allowed to finish (bounded by its timeout); no further steps start.
func (e *Executor) Cancel() {
	e.cancelled.Store(true)
}

// Cancelled reports whether cancellation has been requested.
func (e *Executor) Cancelled() bool {
	return e.cancelled.Load()
}

// Run executes every step of the plan in order and returns a summary.
// It blocks until the plan finishes or cancellation stops it at a step
// boundary; callers wanting a responsive UI run it on its own goroutine
// and consume Events. Failures never abort the run: a failed step is
// recorded and execution continues with the next one.
func (e *Executor) Run(ctx context.Context, plan *models.Plan) (result Result) {
	defer e.emitter.Close()

	total := plan.Len()
	result.Total = total

	// A panic anywhere in the loop becomes a failed overall result
	// instead of taking down the process.
	defer func() {
		if r := recover(); r != nil {
			result.Success = false
			result.Message = fmt.Sprintf("Installation failed: %v", r)
			e.emitter.Emit(Event{
				Type:    EventRunFinished,
				Total:   total,
				Success: false,
				Message: result.Message,
			})
		}
	}()

	successful := 0
	failed := 0

	for i, step := range plan.Steps {
		if e.cancelled.Load() || ctx.Err() != nil {
			result.Cancelled = true
			break
		}

		step.Status = models.StepStatusInstalling
		e.emitter.Emit(Event{
			Type:     EventStepStarted,
			Index:    i + 1,
			Total:    total,
			StepName: step.Name,
			Message:  fmt.Sprintf("Installing %s...", step.Name),
		})

		ok, msg := e.runStep(ctx, step)
		if ok {
			step.Status = models.StepStatusSuccess
			successful++
		} else {
			step.Status = models.StepStatusError
			step.Error = msg
			failed++
		}

		e.emitter.Emit(Event{
			Type:     EventStepCompleted,
			Index:    i + 1,
			Total:    total,
			StepName: step.Name,
			Success:  ok,
			Message:  msg,
		})
	}

	result.Successful = successful
	result.Success = successful == total && !result.Cancelled && failed == 0
	result.Message = fmt.Sprintf("Installation completed: %d/%d tools installed successfully", successful, total)
	if result.Cancelled {
		result.Message = fmt.Sprintf("Installation cancelled: %d/%d tools installed successfully", successful, total)
	}

	e.emitter.Emit(Event{
		Type:    EventRunFinished,
		Total:   total,
		Success: result.Success,
		Message: result.Message,
	})

	return result
}

// runStep executes one step's install command and, on success, its
// verification command. Spawn failures, non-zero exits, and timeouts
// are all reported the same way: the step failed.
func (e *Executor) runStep(ctx context.Context, step *models.Step) (bool, string) {
	if step.InstallCommand == "" {
		return false, fmt.Sprintf("Failed to install %s: no install command", step.Name)
	}

	ictx, cancel := context.WithTimeout(ctx, e.installTimeout)
	_, err := e.runner.RunShell(ictx, e.workDir, step.InstallCommand)
	cancel()
	if err != nil {
		return false, fmt.Sprintf("Failed to install %s: %v", step.Name, err)
	}

	if step.CheckCommand == "" {
		return true, fmt.Sprintf("%s installed successfully", step.Name)
	}

	cctx, cancel := context.WithTimeout(ctx, e.checkTimeout)
	_, err = e.runner.RunShell(cctx, e.workDir, step.CheckCommand)
	cancel()
	if err != nil {
		return false, fmt.Sprintf("%s installed but verification failed: %v", step.Name, err)
	}

	return true, fmt.Sprintf("%s installed successfully", step.Name)
}
