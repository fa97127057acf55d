package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/configo-dev/configo/internal/heuristic"
	"github.com/configo-dev/configo/internal/planfile"
	"github.com/configo-dev/configo/pkg/models"
)

var (
	planOutput  string
	planOffline bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate and inspect installation plans",
}

var planGenerateCmd = &cobra.Command{
	Use:   "generate <description>",
	Short: "Generate an installation plan from a description",
	Long: `Generate an installation plan for a described environment and write
it to a YAML file for review.

By default the plan comes from the LLM backend; without an API key the
plan is empty. With --offline, a keyword-based planner generates the
plan locally instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description := strings.Join(args, " ")

		var plan *models.Plan
		var err error
		if planOffline {
			plan, err = heuristic.New().GeneratePlan(cmd.Context(), description)
		} else {
			deps, derr := buildDeps()
			if derr != nil {
				return derr
			}
			if !deps.bridge.Planner.Available() {
				color.New(color.Faint).Println("No LLM backend configured; the plan will be empty. Try --offline for keyword-based planning.")
			}
			plan, err = deps.bridge.Planner.GeneratePlan(cmd.Context(), description)
		}
		if err != nil {
			return fmt.Errorf("generating plan: %w", err)
		}

		if err := planfile.Save(plan, planOutput); err != nil {
			return err
		}

		fmt.Printf("Plan written to %s (%d steps, est. %s)\n", planOutput, plan.Len(), plan.EstimatedTime)
		printPlan(plan)
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Show a saved installation plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := planfile.Load(args[0])
		if err != nil {
			return err
		}
		printPlan(plan)
		return nil
	},
}

// printPlan renders a plan as an indented step list.
func printPlan(plan *models.Plan) {
	if plan.Len() == 0 {
		fmt.Println("(empty plan)")
		return
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	if plan.Description != "" {
		bold.Println(plan.Description)
	}
	for i, step := range plan.Steps {
		fmt.Printf("  %d. %s %s\n", i+1, statusBadge(step.Status), step.Name)
		dim.Printf("     install: %s\n", step.InstallCommand)
		if step.CheckCommand != "" {
			dim.Printf("     check:   %s\n", step.CheckCommand)
		}
	}
	if plan.EstimatedTime != "" {
		dim.Printf("Estimated time: %s\n", plan.EstimatedTime)
	}
}

// statusBadge renders a colored status marker for plain output.
func statusBadge(status models.StepStatus) string {
	switch status {
	case models.StepStatusSuccess:
		return color.GreenString("[ok]")
	case models.StepStatusError:
		return color.RedString("[failed]")
	case models.StepStatusSkipped:
		return color.YellowString("[skipped]")
	case models.StepStatusInstalling:
		return color.CyanString("[installing]")
	default:
		return "[pending]"
	}
}

func init() {
	planGenerateCmd.Flags().StringVarP(&planOutput, "output", "o", "plan.yaml", "Output file for the generated plan")
	planGenerateCmd.Flags().BoolVar(&planOffline, "offline", false, "Use the keyword-based planner instead of the LLM backend")

	planCmd.AddCommand(planGenerateCmd)
	planCmd.AddCommand(planShowCmd)
}
