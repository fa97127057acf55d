package executor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/configo-dev/configo/pkg/models"
)

// fakeRunner scripts command outcomes by command string.
type fakeRunner struct {
	mu       sync.Mutex
	failures map[string]error
	ran      []string
	onRun    func(command string)
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{failures: make(map[string]error)}
}

func (f *fakeRunner) fail(command string, err error) {
	f.failures[command] = err
}

func (f *fakeRunner) Run(ctx context.Context, workDir, name string, args ...string) ([]byte, error) {
	return f.RunShell(ctx, workDir, strings.Join(append([]string{name}, args...), " "))
}

func (f *fakeRunner) RunShell(ctx context.Context, workDir, command string) ([]byte, error) {
	f.mu.Lock()
	f.ran = append(f.ran, command)
	onRun := f.onRun
	err := f.failures[command]
	f.mu.Unlock()
	if onRun != nil {
		onRun(command)
	}
	if err != nil {
		return nil, err
	}
	return []byte("ok"), nil
}

func (f *fakeRunner) LookPath(name string) bool { return true }

func (f *fakeRunner) commands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.ran...)
}

// collectEvents drains the executor's event channel on a goroutine and
// returns a wait func that yields all events once the channel closes.
func collectEvents(e *Executor) func() []Event {
	var events []Event
	done := make(chan struct{})
	go func() {
		for ev := range e.Events() {
			events = append(events, ev)
		}
		close(done)
	}()
	return func() []Event {
		<-done
		return events
	}
}

func step(name, install, check string) *models.Step {
	return &models.Step{Name: name, InstallCommand: install, CheckCommand: check}
}

func TestRunEmitsOneEventPairPerStepInOrder(t *testing.T) {
	runner := newFakeRunner()
	exe := New(runner, Options{})
	wait := collectEvents(exe)

	plan := &models.Plan{Steps: []*models.Step{
		step("git", "install git", "git --version"),
		step("node", "install node", "node --version"),
		step("docker", "install docker", "docker --version"),
	}}

	res := exe.Run(context.Background(), plan)
	events := wait()

	if !res.Success {
		t.Errorf("expected overall success, got %+v", res)
	}

	var started, completed, finished int
	var completedNames []string
	for _, ev := range events {
		switch ev.Type {
		case EventStepStarted:
			started++
		case EventStepCompleted:
			completed++
			completedNames = append(completedNames, ev.StepName)
		case EventRunFinished:
			finished++
		}
	}

	if started != 3 || completed != 3 || finished != 1 {
		t.Errorf("expected 3 started, 3 completed, 1 finished; got %d/%d/%d", started, completed, finished)
	}

	want := []string{"git", "node", "docker"}
	for i, name := range want {
		if completedNames[i] != name {
			t.Errorf("completion %d: expected %s, got %s", i, name, completedNames[i])
		}
	}

	// run_finished is the last event.
	if events[len(events)-1].Type != EventRunFinished {
		t.Errorf("expected run_finished last, got %s", events[len(events)-1].Type)
	}
}

func TestRunEmptyCheckSucceedsOnZeroInstallExit(t *testing.T) {
	runner := newFakeRunner()
	exe := New(runner, Options{})
	wait := collectEvents(exe)

	plan := &models.Plan{Steps: []*models.Step{step("git", "install git", "")}}
	res := exe.Run(context.Background(), plan)
	wait()

	if plan.Steps[0].Status != models.StepStatusSuccess {
		t.Errorf("expected success, got %s", plan.Steps[0].Status)
	}
	if !res.Success {
		t.Errorf("expected overall success, got %+v", res)
	}
}

func TestRunInstallFailureSkipsCheckCommand(t *testing.T) {
	runner := newFakeRunner()
	runner.fail("install broken", errors.New("exit status 1"))
	exe := New(runner, Options{})
	wait := collectEvents(exe)

	plan := &models.Plan{Steps: []*models.Step{step("broken", "install broken", "broken --version")}}
	res := exe.Run(context.Background(), plan)
	wait()

	if plan.Steps[0].Status != models.StepStatusError {
		t.Errorf("expected error status, got %s", plan.Steps[0].Status)
	}
	if res.Success {
		t.Error("expected overall failure")
	}
	for _, cmd := range runner.commands() {
		if cmd == "broken --version" {
			t.Error("check command must not run after a failed install")
		}
	}
}

func TestRunCheckFailureMarksStepError(t *testing.T) {
	runner := newFakeRunner()
	runner.fail("tool --version", errors.New("exit status 127"))
	exe := New(runner, Options{})
	wait := collectEvents(exe)

	plan := &models.Plan{Steps: []*models.Step{step("tool", "install tool", "tool --version")}}
	res := exe.Run(context.Background(), plan)
	wait()

	if plan.Steps[0].Status != models.StepStatusError {
		t.Errorf("expected error status, got %s", plan.Steps[0].Status)
	}
	if plan.Steps[0].Error == "" {
		t.Error("expected step error message to be recorded")
	}
	if res.Success {
		t.Error("expected overall failure")
	}
}

func TestRunContinuesPastFailures(t *testing.T) {
	runner := newFakeRunner()
	runner.fail("install b", errors.New("exit status 1"))
	exe := New(runner, Options{})
	wait := collectEvents(exe)

	// Scenario from the design notes: A ok w/o check, B fails, C ok w/ check.
	plan := &models.Plan{Steps: []*models.Step{
		step("a", "install a", ""),
		step("b", "install b", ""),
		step("c", "install c", "check c"),
	}}

	res := exe.Run(context.Background(), plan)
	wait()

	wantStatus := []models.StepStatus{
		models.StepStatusSuccess,
		models.StepStatusError,
		models.StepStatusSuccess,
	}
	for i, want := range wantStatus {
		if plan.Steps[i].Status != want {
			t.Errorf("step %d: expected %s, got %s", i, want, plan.Steps[i].Status)
		}
	}

	if res.Success {
		t.Error("expected overall failure with one failed step")
	}
	if res.Successful != 2 || res.Total != 3 {
		t.Errorf("expected 2/3 successful, got %d/%d", res.Successful, res.Total)
	}
	if want := "2/3 tools installed successfully"; !strings.Contains(res.Message, want) {
		t.Errorf("expected summary to contain %q, got %q", want, res.Message)
	}
}

func TestRunEmptyPlanVacuousSuccess(t *testing.T) {
	runner := newFakeRunner()
	exe := New(runner, Options{})
	wait := collectEvents(exe)

	res := exe.Run(context.Background(), &models.Plan{})
	events := wait()

	if !res.Success {
		t.Errorf("expected vacuous success, got %+v", res)
	}
	if want := "0/0 tools installed successfully"; !strings.Contains(res.Message, want) {
		t.Errorf("expected %q in message, got %q", want, res.Message)
	}
	if len(events) != 1 || events[0].Type != EventRunFinished {
		t.Errorf("expected exactly one run_finished event, got %v", events)
	}
	if len(runner.commands()) != 0 {
		t.Errorf("expected no commands run, got %v", runner.commands())
	}
}

func TestCancelStopsAtStepBoundary(t *testing.T) {
	runner := newFakeRunner()
	exe := New(runner, Options{})

	// Cancel while the second step's install command is in flight.
	runner.onRun = func(command string) {
		if command == "install b" {
			exe.Cancel()
		}
	}
	wait := collectEvents(exe)

	plan := &models.Plan{Steps: []*models.Step{
		step("a", "install a", ""),
		step("b", "install b", ""),
		step("c", "install c", ""),
		step("d", "install d", ""),
	}}

	res := exe.Run(context.Background(), plan)
	wait()

	if !res.Cancelled {
		t.Fatal("expected cancelled result")
	}
	if res.Success {
		t.Error("cancelled run must not report success")
	}

	// a and b completed before the boundary check; c and d never started.
	if plan.Steps[0].Status != models.StepStatusSuccess || plan.Steps[1].Status != models.StepStatusSuccess {
		t.Errorf("completed steps must keep terminal status: %s, %s",
			plan.Steps[0].Status, plan.Steps[1].Status)
	}
	for i := 2; i < 4; i++ {
		if plan.Steps[i].Status != models.StepStatusPending {
			t.Errorf("step %d: expected pending after cancel, got %s", i, plan.Steps[i].Status)
		}
	}

	for _, cmd := range runner.commands() {
		if cmd == "install c" || cmd == "install d" {
			t.Errorf("command %q must not run after cancellation", cmd)
		}
	}
}

func TestRunRecoversPanicIntoFailedResult(t *testing.T) {
	runner := newFakeRunner()
	exe := New(runner, Options{})
	runner.onRun = func(command string) {
		panic("spawn table corrupted")
	}
	wait := collectEvents(exe)

	plan := &models.Plan{Steps: []*models.Step{step("a", "install a", "")}}
	res := exe.Run(context.Background(), plan)
	events := wait()

	if res.Success {
		t.Error("panicking run must not report success")
	}
	if !strings.Contains(res.Message, "Installation failed") {
		t.Errorf("expected failure message, got %q", res.Message)
	}
	last := events[len(events)-1]
	if last.Type != EventRunFinished || last.Success {
		t.Errorf("expected failed run_finished event, got %+v", last)
	}
}

func TestRunStatusTransitionsForwardOnly(t *testing.T) {
	runner := newFakeRunner()
	runner.fail("install t1", errors.New("exit status 1"))
	exe := New(runner, Options{})

	plan := &models.Plan{Steps: []*models.Step{
		step("t0", "install t0", ""),
		step("t1", "install t1", ""),
		step("t2", "install t2", ""),
	}}

	// Observe from inside the worker: while a command runs, its step
	// must be in installing, and earlier steps must stay terminal.
	runner.onRun = func(command string) {
		var current string
		fmt.Sscanf(command, "install %s", &current)
		for _, s := range plan.Steps {
			if s.Name == current {
				if s.Status != models.StepStatusInstalling {
					t.Errorf("step %s: expected installing during run, got %s", s.Name, s.Status)
				}
				break
			}
			if !s.Status.Terminal() {
				t.Errorf("step %s: expected terminal before %s runs, got %s", s.Name, current, s.Status)
			}
		}
	}
	wait := collectEvents(exe)

	exe.Run(context.Background(), plan)
	wait()

	want := []models.StepStatus{
		models.StepStatusSuccess,
		models.StepStatusError,
		models.StepStatusSuccess,
	}
	for i, s := range plan.Steps {
		if s.Status != want[i] {
			t.Errorf("step %d: expected %s, got %s", i, want[i], s.Status)
		}
	}
}
