package main

import (
	"os"

	"github.com/spf13/cobra"
)

var noHeader bool

var rootCmd = &cobra.Command{
	Use:   "configo",
	Short: "Autonomous Development Environment Setup",
	Long: `CONFIGO turns a plain-language description of a development
environment into an ordered installation plan and executes it step by
step, verifying each tool as it goes.

With no arguments, launches the interactive TUI where you can describe
your environment, review the generated plan, and watch the installation
run live.

Core capabilities:
- Generates installation plans from natural language (LLM-backed)
- Executes plans sequentially with per-step verification
- Skips tools that are already installed
- Manages AI service login portals and their CLI tools
- Remembers sessions, preferences, and tool statistics across runs`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&noHeader, "no-header", false, "Hide the logo header in the TUI")

	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(portalCmd)
	rootCmd.AddCommand(memoryCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
