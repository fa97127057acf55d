package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the CONFIGO setup",
	Long: `Report on the host system and which CONFIGO capabilities are backed
by real implementations versus safe fallbacks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		dim := color.New(color.Faint)

		info := deps.bridge.Inspector.Inspect(cmd.Context())
		bold.Println("System:")
		fmt.Printf("  OS:               %s %s (%s)\n", info.OS, info.OSVersion, info.Architecture)
		if info.Distro != "" {
			fmt.Printf("  Distro:           %s\n", info.Distro)
		}
		if len(info.PackageManagers) > 0 {
			fmt.Printf("  Package managers: %s\n", strings.Join(info.PackageManagers, ", "))
		}

		bold.Println("\nCapabilities:")
		capability("suggester", deps.bridge.Suggester.Available())
		capability("planner", deps.bridge.Planner.Available())
		capability("validator", deps.bridge.Validator.Available())
		capability("inspector", deps.bridge.Inspector.Available())
		capability("scanner", deps.bridge.Scanner.Available())
		capability("chat", deps.bridge.Chat.Available())

		if deps.bridge.CLIPath != "" {
			fmt.Printf("\nCLI backend: %s\n", deps.bridge.CLIPath)
		} else {
			dim.Println("\nCLI backend: not found")
		}

		if deps.bridge.Degraded() {
			color.Yellow("\nRunning in degraded mode. Set ANTHROPIC_API_KEY to enable LLM capabilities.")
		} else {
			color.Green("\nAll capabilities available.")
		}
		return nil
	},
}

func capability(name string, available bool) {
	if available {
		fmt.Printf("  %-10s %s\n", name, color.GreenString("available"))
	} else {
		fmt.Printf("  %-10s %s\n", name, color.YellowString("fallback"))
	}
}
