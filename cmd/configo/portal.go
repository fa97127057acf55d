package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/configo-dev/configo/pkg/models"
)

var portalCmd = &cobra.Command{
	Use:   "portal",
	Short: "Manage AI service login portals",
	Long: `Manage browser logins for AI services (Claude, Gemini, Grok, ChatGPT,
and others) and their companion CLI tools. Login and install state is
remembered across sessions.`,
}

var portalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known portals and their status",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		dim := color.New(color.Faint)

		for _, p := range deps.portals.Portals() {
			status := deps.portals.Status(p.Name)

			login := dim.Sprint("not logged in")
			if status.LoggedIn {
				login = color.GreenString("logged in")
			}

			cli := ""
			if p.CLITool != "" {
				switch status.InstallState {
				case models.PortalInstalled:
					cli = color.GreenString("cli installed")
				case models.PortalInstallFailed:
					cli = color.RedString("cli install failed")
				case models.PortalInstalling:
					cli = color.CyanString("cli installing")
				default:
					cli = dim.Sprint("cli not installed")
				}
			}

			bold.Printf("%-10s", p.Name)
			fmt.Printf(" %s  %s  %s\n", login, cli, dim.Sprint(p.URL))
		}

		sum := deps.portals.Summarize()
		dim.Printf("\n%d portals, %d CLI tools installed, %d logged in\n", sum.Total, sum.Installed, sum.LoggedIn)
		return nil
	},
}

var portalOpenCmd = &cobra.Command{
	Use:   "open <name>",
	Short: "Open a portal's login page in the browser",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		if err := deps.portals.OpenLogin(cmd.Context(), args[0]); err != nil {
			return err
		}
		if err := deps.store.Save(); err != nil {
			return fmt.Errorf("saving memory: %w", err)
		}
		fmt.Printf("Opened %s login page.\n", args[0])
		return nil
	},
}

var portalInstallCmd = &cobra.Command{
	Use:   "install <name>",
	Short: "Install a portal's companion CLI tool",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		name := args[0]

		fmt.Printf("Installing %s CLI tool...\n", name)
		installErr := deps.portals.InstallCLI(cmd.Context(), name)
		if err := deps.store.Save(); err != nil {
			return fmt.Errorf("saving memory: %w", err)
		}
		if installErr != nil {
			return installErr
		}
		color.Green("%s CLI tool installed successfully", name)
		return nil
	},
}

var portalCheckCmd = &cobra.Command{
	Use:   "check <name>",
	Short: "Check a portal's login status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		name := args[0]

		loggedIn := deps.portals.CheckLogin(cmd.Context(), name)
		if err := deps.store.Save(); err != nil {
			return fmt.Errorf("saving memory: %w", err)
		}
		if loggedIn {
			color.Green("%s: logged in", name)
		} else {
			fmt.Printf("%s: not logged in\n", name)
		}
		return nil
	},
}

func init() {
	portalCmd.AddCommand(portalListCmd)
	portalCmd.AddCommand(portalOpenCmd)
	portalCmd.AddCommand(portalInstallCmd)
	portalCmd.AddCommand(portalCheckCmd)
}
