// Package portal manages browser logins for AI services and the
// installation of their companion CLI tools. Statuses persist in the
// memory store so repeated sessions remember what is set up.
package portal

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"github.com/configo-dev/configo/internal/exec"
	"github.com/configo-dev/configo/internal/memory"
	"github.com/configo-dev/configo/pkg/models"
)

const (
	installTimeout = 300 * time.Second
	checkTimeout   = 10 * time.Second
)

// builtins are the portals CONFIGO knows about out of the box.
var builtins = []models.Portal{
	{
		Name:           "claude",
		DisplayName:    "Claude",
		URL:            "https://claude.ai",
		Description:    "Anthropic's Claude AI assistant",
		CLITool:        "claude",
		InstallCommand: "npm install -g @anthropic-ai/claude",
		CheckCommand:   "claude --version",
	},
	{
		Name:           "gemini",
		DisplayName:    "Gemini",
		URL:            "https://aistudio.google.com/app/apikey",
		Description:    "Google's Gemini AI model",
		CLITool:        "gemini",
		InstallCommand: "pip install google-generativeai",
		CheckCommand:   `python -c 'import google.generativeai'`,
	},
	{
		Name:           "grok",
		DisplayName:    "Grok",
		URL:            "https://grok.x.ai",
		Description:    "xAI's Grok AI assistant",
		CLITool:        "grok",
		InstallCommand: "pip install grok-sdk",
		CheckCommand:   `python -c 'import grok'`,
	},
	{
		Name:           "chatgpt",
		DisplayName:    "ChatGPT",
		URL:            "https://chat.openai.com",
		Description:    "OpenAI's ChatGPT",
		CLITool:        "openai",
		InstallCommand: "pip install openai",
		CheckCommand:   `python -c 'import openai'`,
	},
	{
		Name:           "cursor",
		DisplayName:    "Cursor",
		URL:            "https://cursor.sh",
		Description:    "AI-powered code editor",
		CLITool:        "cursor",
		InstallCommand: "curl -L https://cursor.sh/install.sh | sh",
		CheckCommand:   "cursor --version",
	},
	{
		Name:           "github",
		DisplayName:    "GitHub",
		URL:            "https://github.com",
		Description:    "GitHub CLI tool",
		CLITool:        "gh",
		InstallCommand: "sudo apt update && sudo apt install gh -y",
		CheckCommand:   "gh --version",
	},
}

// Orchestrator manages portals against a command runner and the memory
// store.
type Orchestrator struct {
	runner  exec.CommandRunner
	store   *memory.Store
	portals map[string]models.Portal
}

// New creates an Orchestrator with the built-in portal set.
func New(runner exec.CommandRunner, store *memory.Store) *Orchestrator {
	portals := make(map[string]models.Portal, len(builtins))
	for _, p := range builtins {
		portals[p.Name] = p
	}
	return &Orchestrator{runner: runner, store: store, portals: portals}
}

// Portals returns all known portals sorted by name.
func (o *Orchestrator) Portals() []models.Portal {
	out := make([]models.Portal, 0, len(o.portals))
	for _, p := range o.portals {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Portal returns a portal by name.
func (o *Orchestrator) Portal(name string) (models.Portal, bool) {
	p, ok := o.portals[name]
	return p, ok
}

// OpenLogin opens the portal's login page in the default browser and
// records the visit.
func (o *Orchestrator) OpenLogin(ctx context.Context, name string) error {
	p, ok := o.portals[name]
	if !ok {
		return fmt.Errorf("unknown portal: %s", name)
	}

	if err := o.openBrowser(ctx, p.URL); err != nil {
		return fmt.Errorf("opening %s login page: %w", p.DisplayName, err)
	}

	status := o.status(name)
	status.LastChecked = time.Now()
	o.store.SetPortalStatus(status)
	return nil
}

// InstallCLI installs the portal's companion CLI tool and verifies it.
func (o *Orchestrator) InstallCLI(ctx context.Context, name string) error {
	p, ok := o.portals[name]
	if !ok {
		return fmt.Errorf("unknown portal: %s", name)
	}
	if p.CLITool == "" || p.InstallCommand == "" {
		return fmt.Errorf("no CLI tool available for %s", p.DisplayName)
	}

	o.setInstallState(name, models.PortalInstalling)

	installCtx, cancel := context.WithTimeout(ctx, installTimeout)
	defer cancel()
	if out, err := o.runner.RunShell(installCtx, "", p.InstallCommand); err != nil {
		o.setInstallState(name, models.PortalInstallFailed)
		return fmt.Errorf("installing %s CLI: %w: %s", p.DisplayName, err, string(out))
	}

	if !o.verify(ctx, p) {
		o.setInstallState(name, models.PortalInstallFailed)
		return fmt.Errorf("%s CLI installed but verification failed", p.DisplayName)
	}

	o.setInstallState(name, models.PortalInstalled)
	return nil
}

// CheckLogin probes whether the portal's CLI tool responds, records the
// result, and returns it. Portals without a CLI tool report false.
func (o *Orchestrator) CheckLogin(ctx context.Context, name string) bool {
	p, ok := o.portals[name]
	if !ok {
		return false
	}
	loggedIn := p.CLITool != "" && p.CheckCommand != "" && o.verify(ctx, p)

	status := o.status(name)
	status.LoggedIn = loggedIn
	status.LastChecked = time.Now()
	o.store.SetPortalStatus(status)
	return loggedIn
}

// Summary aggregates portal setup progress.
type Summary struct {
	Total     int
	Installed int
	LoggedIn  int
}

// Summarize computes the current portal setup summary from stored
// statuses.
func (o *Orchestrator) Summarize() Summary {
	sum := Summary{Total: len(o.portals)}
	for name := range o.portals {
		st, ok := o.store.PortalStatus(name)
		if !ok {
			continue
		}
		if st.InstallState == models.PortalInstalled {
			sum.Installed++
		}
		if st.LoggedIn {
			sum.LoggedIn++
		}
	}
	return sum
}

// Status returns the tracked status for a portal, defaulting to a
// fresh not-installed record.
func (o *Orchestrator) Status(name string) models.PortalStatus {
	return o.status(name)
}

func (o *Orchestrator) status(name string) models.PortalStatus {
	if st, ok := o.store.PortalStatus(name); ok {
		return st
	}
	return models.PortalStatus{Name: name, InstallState: models.PortalNotInstalled}
}

func (o *Orchestrator) setInstallState(name string, state models.PortalInstallState) {
	status := o.status(name)
	status.InstallState = state
	o.store.SetPortalStatus(status)
}

func (o *Orchestrator) verify(ctx context.Context, p models.Portal) bool {
	if p.CheckCommand == "" {
		return true
	}
	checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()
	_, err := o.runner.RunShell(checkCtx, "", p.CheckCommand)
	return err == nil
}

func (o *Orchestrator) openBrowser(ctx context.Context, url string) error {
	var name string
	var args []string
	switch runtime.GOOS {
	case "darwin":
		name = "open"
		args = []string{url}
	case "windows":
		name = "rundll32"
		args = []string{"url.dll,FileProtocolHandler", url}
	default:
		name = "xdg-open"
		args = []string{url}
	}
	_, err := o.runner.Run(ctx, "", name, args...)
	return err
}
