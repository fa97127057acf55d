package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var memoryCmd = &cobra.Command{
	Use:   "memory",
	Short: "Inspect and manage CONFIGO's memory",
	Long: `Inspect what CONFIGO remembers: past sessions, user preferences,
per-tool install statistics, and portal state.`,
}

var memoryShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show remembered sessions and statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		dim := color.New(color.Faint)

		sessions := deps.store.Sessions()
		bold.Printf("Sessions (%d):\n", len(sessions))
		for _, s := range sessions {
			outcome := color.GreenString("ok")
			if !s.Success {
				outcome = color.RedString("failed")
			}
			fmt.Printf("  %s  %s  %d installed, %d failed  %s\n",
				s.StartedAt.Format("2006-01-02 15:04"), outcome, s.ToolsInstalled, s.ToolsFailed, s.Description)
		}

		stats := deps.store.Stats()
		bold.Printf("\nTool statistics (%d):\n", len(stats))
		for name, st := range stats {
			fmt.Printf("  %-20s %d installs, %d failures", name, st.Installs, st.Failures)
			if !st.LastInstall.IsZero() {
				dim.Printf("  last %s", st.LastInstall.Format("2006-01-02"))
			}
			fmt.Println()
		}

		prefs := deps.store.Preferences()
		if len(prefs) > 0 {
			bold.Printf("\nPreferences (%d):\n", len(prefs))
			for k, v := range prefs {
				fmt.Printf("  %s = %s\n", k, v)
			}
		}

		// Run history lives in the state database.
		if db, err := openStateDB(); err == nil {
			defer db.Close()
			if runs, err := db.ListRuns(5); err == nil && len(runs) > 0 {
				bold.Printf("\nRecent runs (%d):\n", len(runs))
				for _, r := range runs {
					fmt.Printf("  %s  %d/%d  %s\n",
						r.StartedAt.Format("2006-01-02 15:04"), r.Successful, r.Total, r.Description)
				}
			}
		}

		dim.Printf("\nMemory file: %s\n", deps.store.Path())
		return nil
	},
}

var memoryClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget all remembered data",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		deps.store.Clear()
		if err := deps.store.Save(); err != nil {
			return fmt.Errorf("saving memory: %w", err)
		}
		fmt.Println("Memory cleared.")
		return nil
	},
}

var memoryExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export memory to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		if err := deps.store.Export(args[0]); err != nil {
			return err
		}
		fmt.Printf("Memory exported to %s\n", args[0])
		return nil
	},
}

func init() {
	memoryCmd.AddCommand(memoryShowCmd)
	memoryCmd.AddCommand(memoryClearCmd)
	memoryCmd.AddCommand(memoryExportCmd)
}
