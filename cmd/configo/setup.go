package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup <description>",
	Short: "Suggest tools and portals for an environment",
	Long: `Suggest a technology stack for a described development environment.

The description is free text, for example:
  configo setup "Full-stack web development with AI/ML"

Suggestions come from the LLM backend when an API key is configured.
Without one, the suggestion lists are empty and CONFIGO says so instead
of failing.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}

		description := strings.Join(args, " ")

		suggestion, err := deps.bridge.Suggester.SuggestStack(cmd.Context(), description)
		if err != nil {
			return fmt.Errorf("suggesting stack: %w", err)
		}

		bold := color.New(color.Bold)
		dim := color.New(color.Faint)

		if !deps.bridge.Suggester.Available() {
			dim.Fprintln(os.Stderr, "No LLM backend configured; set ANTHROPIC_API_KEY for real suggestions.")
		}

		if len(suggestion.Tools) == 0 && len(suggestion.Portals) == 0 {
			fmt.Println("No suggestions for this description.")
			return nil
		}

		if len(suggestion.Tools) > 0 {
			bold.Println("Suggested tools:")
			for _, tool := range suggestion.Tools {
				fmt.Printf("  %s", tool.Name)
				if tool.Description != "" {
					dim.Printf("  %s", tool.Description)
				}
				fmt.Println()
			}
		}

		if len(suggestion.Portals) > 0 {
			bold.Println("Suggested portals:")
			for _, p := range suggestion.Portals {
				fmt.Printf("  %s", p.DisplayName)
				if p.URL != "" {
					dim.Printf("  %s", p.URL)
				}
				fmt.Println()
			}
		}

		dim.Println("\nNext: configo plan generate \"" + description + "\"")
		return nil
	},
}
