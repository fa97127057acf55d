package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/configo-dev/configo/internal/detect"
	"github.com/configo-dev/configo/internal/executor"
	"github.com/configo-dev/configo/internal/heuristic"
	"github.com/configo-dev/configo/internal/memory"
	"github.com/configo-dev/configo/internal/planfile"
	"github.com/configo-dev/configo/internal/signals"
	"github.com/configo-dev/configo/internal/state"
	"github.com/configo-dev/configo/pkg/models"
)

var (
	installDescription string
	installOffline     bool
	installSkip        bool
)

var installCmd = &cobra.Command{
	Use:   "install [plan-file]",
	Short: "Execute an installation plan",
	Long: `Execute an installation plan step by step.

Reads the plan from a YAML file, or generates one first when
--description is given. Steps run strictly in order; a failed step is
recorded and the run continues with the next one.

Dropping a file named "cancel" into .configo/signals/ stops the run at
the next step boundary; the step that is currently installing finishes
first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}

		plan, err := resolvePlan(cmd, args, deps)
		if err != nil {
			return err
		}
		if plan.Len() == 0 {
			fmt.Println("Nothing to install: the plan is empty.")
			return nil
		}

		if installSkip {
			detector := detect.New(deps.runner)
			for _, det := range detector.MarkInstalled(cmd.Context(), plan) {
				if det.Installed {
					note := det.Name
					if det.Version != "" {
						note += " (" + det.Version + ")"
					}
					color.New(color.Faint).Printf("Already installed, skipping: %s\n", note)
				}
			}
		}

		// Skipped steps stay out of the run; the executor only sees work.
		runPlan := &models.Plan{Description: plan.Description}
		for _, step := range plan.Steps {
			if step.Status != models.StepStatusSkipped {
				runPlan.Steps = append(runPlan.Steps, step)
			}
		}
		if runPlan.Len() == 0 {
			fmt.Println("All tools are already installed.")
			return nil
		}

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}

		exe := executor.New(deps.runner, executor.Options{
			InstallTimeout: deps.cfg.Timeouts.Install,
			CheckTimeout:   deps.cfg.Timeouts.Check,
			WorkDir:        cwd,
		})

		watcher, err := signals.NewWatcher(cwd)
		if err != nil {
			return fmt.Errorf("setting up signal watcher: %w", err)
		}
		defer watcher.Close()
		watcher.Clear()
		watcher.OnCancel(func() {
			color.Yellow("Cancel signal received; stopping at the next step boundary.")
			exe.Cancel()
		})

		done := make(chan struct{})
		go pollCancel(watcher, done)

		result := runPlain(cmd, exe, runPlan)
		close(done)

		recordRun(deps.store, plan, result)

		if !result.Success {
			return errors.New(result.Message)
		}
		return nil
	},
}

// resolvePlan loads the plan file or generates a plan from the
// description flag.
func resolvePlan(cmd *cobra.Command, args []string, deps *appDeps) (*models.Plan, error) {
	if len(args) == 1 {
		return planfile.Load(args[0])
	}
	if installDescription == "" {
		return nil, errors.New("provide a plan file or --description")
	}

	if installOffline {
		return heuristic.New().GeneratePlan(cmd.Context(), installDescription)
	}
	if !deps.bridge.Planner.Available() {
		color.New(color.Faint).Println("No LLM backend configured; the generated plan will be empty. Try --offline.")
	}
	return deps.bridge.Planner.GeneratePlan(cmd.Context(), installDescription)
}

// runPlain executes the plan and streams events to stdout.
func runPlain(cmd *cobra.Command, exe *executor.Executor, plan *models.Plan) *executor.Result {
	resultCh := make(chan executor.Result, 1)
	go func() {
		resultCh <- exe.Run(cmd.Context(), plan)
	}()

	for ev := range exe.Events() {
		switch ev.Type {
		case executor.EventStepStarted:
			fmt.Printf("[%d/%d] Installing %s...\n", ev.Index, ev.Total, ev.StepName)
		case executor.EventStepCompleted:
			if ev.Success {
				color.Green("[%d/%d] %s", ev.Index, ev.Total, ev.Message)
			} else {
				color.Red("[%d/%d] %s", ev.Index, ev.Total, ev.Message)
			}
		case executor.EventRunFinished:
			if ev.Success {
				color.Green("%s", ev.Message)
			} else {
				color.Red("%s", ev.Message)
			}
		}
	}

	result := <-resultCh
	return &result
}

// pollCancel backs up the fsnotify watcher with a periodic stat so a
// missed event still cancels the run.
func pollCancel(watcher *signals.Watcher, done <-chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			watcher.ShouldCancel()
		}
	}
}

// recordRun persists the run to the history database and memory store.
// Persistence problems are reported but never fail the install.
func recordRun(store *memory.Store, plan *models.Plan, result *executor.Result) {
	started := time.Now()
	runID := uuid.NewString()

	if db, err := openStateDB(); err == nil {
		defer db.Close()
		if err := db.StartRun(runID, plan.Description, started); err == nil {
			steps := make([]state.StepResult, 0, plan.Len())
			for i, s := range plan.Steps {
				steps = append(steps, state.StepResult{
					RunID:    runID,
					Position: i,
					Name:     s.Name,
					Status:   s.Status,
					Error:    s.Error,
				})
			}
			if err := db.FinishRun(runID, time.Now(), result.Total, result.Successful, result.Cancelled, result.Success, steps); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: recording run history: %v\n", err)
			}
		}
	} else {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	store.AddSession(memory.SessionRecord{
		ID:             runID,
		Description:    plan.Description,
		StartedAt:      started,
		ToolsInstalled: result.Successful,
		ToolsFailed:    result.Total - result.Successful,
		Success:        result.Success,
	})
	for _, s := range plan.Steps {
		switch s.Status {
		case models.StepStatusSuccess:
			store.RecordInstall(s.Name, true, time.Now())
		case models.StepStatusError:
			store.RecordInstall(s.Name, false, time.Now())
		}
	}
	if err := store.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: saving memory: %v\n", err)
	}
}

func init() {
	installCmd.Flags().StringVarP(&installDescription, "description", "d", "", "Generate a plan from this description instead of reading a file")
	installCmd.Flags().BoolVar(&installOffline, "offline", false, "Use the keyword-based planner for --description")
	installCmd.Flags().BoolVar(&installSkip, "skip-installed", false, "Skip tools that are already on PATH")
}
