package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Detect the technology stack of a project directory",
	Long: `Scan a project directory for marker files (package.json, go.mod,
requirements.txt, ...) and report the languages and frameworks they
imply. Defaults to the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}

		path := "."
		if len(args) == 1 {
			path = args[0]
		}
		if path == "." {
			if cwd, err := os.Getwd(); err == nil {
				path = cwd
			}
		}

		info, err := deps.bridge.Scanner.Scan(path)
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}

		bold := color.New(color.Bold)
		dim := color.New(color.Faint)

		bold.Printf("Project: %s\n", info.Path)
		if len(info.Languages) == 0 && len(info.Frameworks) == 0 {
			fmt.Println("No recognized technology markers found.")
			return nil
		}

		if len(info.Languages) > 0 {
			fmt.Printf("Languages:  %s\n", strings.Join(info.Languages, ", "))
		}
		if len(info.Frameworks) > 0 {
			fmt.Printf("Frameworks: %s\n", strings.Join(info.Frameworks, ", "))
		}
		if len(info.MarkerFiles) > 0 {
			dim.Printf("Markers:    %s\n", strings.Join(info.MarkerFiles, ", "))
		}
		return nil
	},
}
