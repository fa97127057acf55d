package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/configo-dev/configo/internal/executor"
	"github.com/configo-dev/configo/internal/tui"
	"github.com/configo-dev/configo/pkg/models"
)

// runInteractive launches the TUI. All slow work (plan generation,
// installs, portal actions) happens off the UI loop; results come back
// as messages via program.Send.
func runInteractive() error {
	deps, err := buildDeps()
	if err != nil {
		return err
	}

	var (
		program *tea.Program

		mu  sync.Mutex
		exe *executor.Executor
	)

	hooks := tui.Hooks{
		GeneratePlan: func(description string) tea.Cmd {
			return func() tea.Msg {
				plan, err := deps.bridge.Planner.GeneratePlan(context.Background(), description)
				if err != nil {
					return tui.PlanErrorMsg{Err: err}
				}
				return tui.PlanReadyMsg{Plan: plan}
			}
		},

		StartRun: func(display *models.Plan) tea.Cmd {
			// Execute a private copy; the UI updates its own copy from
			// events, so the executor stays the only status writer here.
			run := &models.Plan{Description: display.Description}
			for _, s := range display.Steps {
				step := *s
				step.Status = models.StepStatusPending
				step.Error = ""
				run.Steps = append(run.Steps, &step)
			}

			e := executor.New(deps.runner, executor.Options{
				InstallTimeout: deps.cfg.Timeouts.Install,
				CheckTimeout:   deps.cfg.Timeouts.Check,
			})
			mu.Lock()
			exe = e
			mu.Unlock()

			go func() {
				for ev := range e.Events() {
					program.Send(tui.ExecutorEventMsg{Event: ev})
				}
			}()

			return func() tea.Msg {
				result := e.Run(context.Background(), run)
				recordRun(deps.store, run, &result)
				return tui.RunDoneMsg{Result: &result}
			}
		},

		CancelRun: func() {
			mu.Lock()
			defer mu.Unlock()
			if exe != nil {
				exe.Cancel()
			}
		},

		OpenPortal: func(name string) tea.Cmd {
			return func() tea.Msg {
				if err := deps.portals.OpenLogin(context.Background(), name); err != nil {
					return tui.LogMsg{Timestamp: time.Now(), Level: tui.LogLevelError, Message: err.Error()}
				}
				deps.store.Save()
				return tui.LogMsg{Timestamp: time.Now(), Level: tui.LogLevelInfo, Message: "Opened " + name + " login page"}
			}
		},

		InstallPortal: func(name string) tea.Cmd {
			return func() tea.Msg {
				err := deps.portals.InstallCLI(context.Background(), name)
				deps.store.Save()
				if err != nil {
					return tui.LogMsg{Timestamp: time.Now(), Level: tui.LogLevelError, Message: err.Error()}
				}
				return tui.PortalStatusMsg{Status: deps.portals.Status(name)}
			}
		},
	}

	app := tui.NewApp(hooks)
	app.SetShowHeader(!noHeader)
	app.SetPortals(deps.portals.Portals())
	for _, p := range deps.portals.Portals() {
		app.SetPortalStatus(deps.portals.Status(p.Name))
	}

	program = tui.NewProgram(app)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
