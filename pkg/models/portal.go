package models

import "time"

// PortalInstallState represents the CLI tool install state for a portal.
type PortalInstallState string

const (
	// PortalNotInstalled indicates the portal's CLI tool is absent.
	PortalNotInstalled PortalInstallState = "not_installed"
	// PortalInstalling indicates the CLI tool install is in progress.
	PortalInstalling PortalInstallState = "installing"
	// PortalInstalled indicates the CLI tool is present.
	PortalInstalled PortalInstallState = "installed"
	// PortalInstallFailed indicates the CLI tool install failed.
	PortalInstallFailed PortalInstallState = "failed"
)

// Portal describes a browser login portal for an AI service and its
// optional companion CLI tool.
type Portal struct {
	// Name is the short identifier (claude, gemini, grok, chatgpt).
	Name string `json:"name"`
	// DisplayName is the human-readable service name.
	DisplayName string `json:"display_name"`
	// URL is the browser login page.
	URL string `json:"url"`
	// Description provides free-text detail about the service.
	Description string `json:"description,omitempty"`
	// CLITool is the executable name of the companion CLI, if any.
	CLITool string `json:"cli_tool,omitempty"`
	// InstallCommand installs the companion CLI.
	InstallCommand string `json:"install_command,omitempty"`
	// CheckCommand verifies the companion CLI is present.
	CheckCommand string `json:"check_command,omitempty"`
}

// PortalStatus is the tracked state of a portal for the current user.
type PortalStatus struct {
	// Name matches Portal.Name.
	Name string `json:"name"`
	// LoggedIn records whether the user reported a successful login.
	LoggedIn bool `json:"logged_in"`
	// InstallState is the state of the companion CLI tool.
	InstallState PortalInstallState `json:"install_state"`
	// LastChecked is when the CLI tool presence was last probed.
	LastChecked time.Time `json:"last_checked,omitempty"`
}
