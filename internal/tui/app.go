// Package tui implements the interactive terminal interface: a tabbed
// view over the installation plan, live logs, and AI service portals.
// The app never mutates a running plan; it keeps a display copy and
// applies executor events to that copy.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/configo-dev/configo/internal/executor"
	"github.com/configo-dev/configo/pkg/models"
)

// Tab indices.
const (
	TabPlan    = 0
	TabLogs    = 1
	TabPortals = 2
)

// tabBarHeight is the height of the tab indicator bar.
const tabBarHeight = 1

// Hooks are the actions the app delegates back to its caller. Each
// returns a command whose messages feed back into Update.
type Hooks struct {
	GeneratePlan  func(description string) tea.Cmd
	StartRun      func(plan *models.Plan) tea.Cmd
	CancelRun     func()
	OpenPortal    func(name string) tea.Cmd
	InstallPortal func(name string) tea.Cmd
}

// App is the main bubbletea model.
type App struct {
	header       *Header
	planPanel    *PlanPanel
	logsPanel    *LogsPanel
	portalsPanel *PortalsPanel
	footer       *Footer

	input textinput.Model
	spin  spinner.Model

	hooks Hooks

	// State
	activeTab   int
	width       int
	height      int
	quitting    bool
	running     bool
	inputActive bool
	showHeader  bool

	// plan is the display copy; executor events are applied to it.
	plan *models.Plan
}

// NewApp creates the app with the given hooks.
func NewApp(hooks Hooks) *App {
	input := textinput.New()
	input.Placeholder = "Describe your development environment..."
	input.CharLimit = 400
	input.Width = 60

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))

	a := &App{
		header:       NewHeader(),
		planPanel:    NewPlanPanel(),
		logsPanel:    NewLogsPanel(),
		portalsPanel: NewPortalsPanel(),
		footer:       NewFooter(),
		input:        input,
		spin:         spin,
		hooks:        hooks,
		plan:         &models.Plan{},
		showHeader:   true,
	}
	a.switchTab(TabPlan)
	return a
}

// SetShowHeader controls whether the logo header is displayed.
func (a *App) SetShowHeader(show bool) {
	a.showHeader = show
}

// SetPortals seeds the portals panel.
func (a *App) SetPortals(portals []models.Portal) {
	a.portalsPanel.SetPortals(portals)
}

// SetPortalStatus records a portal status for display.
func (a *App) SetPortalStatus(status models.PortalStatus) {
	a.portalsPanel.SetStatus(status)
}

// Plan returns the display copy of the current plan.
func (a *App) Plan() *models.Plan {
	return a.plan
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.inputActive {
			return a.updateInput(msg)
		}

		switch msg.String() {
		case "q", "ctrl+c":
			a.quitting = true
			return a, tea.Quit

		case "1":
			a.switchTab(TabPlan)
		case "2":
			a.switchTab(TabLogs)
		case "3":
			a.switchTab(TabPortals)

		case "n":
			a.inputActive = true
			a.input.Focus()
			return a, textinput.Blink

		case "enter":
			if a.activeTab == TabPlan && !a.running && a.plan.Len() > 0 && a.hooks.StartRun != nil {
				a.running = true
				a.footer.SetRunDone(false, false, "")
				cmds = append(cmds, a.hooks.StartRun(a.plan), a.spin.Tick)
			}

		case "c":
			if a.running && a.hooks.CancelRun != nil {
				a.hooks.CancelRun()
				a.addLog(LogLevelWarn, "Cancellation requested; finishing current step")
			}
		}

		// Forward to the focused panel.
		cmds = append(cmds, a.forwardKey(msg))

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateSizes()

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		a.planPanel.SetSpinnerFrame(a.spin.View())
		if a.running {
			cmds = append(cmds, cmd)
		}

	case PlanReadyMsg:
		a.setPlan(msg.Plan)
		a.addLog(LogLevelInfo, fmt.Sprintf("Plan ready: %d steps", msg.Plan.Len()))
		a.switchTab(TabPlan)

	case PlanErrorMsg:
		a.addLog(LogLevelError, "Plan generation failed: "+msg.Err.Error())

	case ExecutorEventMsg:
		a.handleExecutorEvent(msg.Event)

	case RunDoneMsg:
		a.running = false
		a.footer.SetRunDone(true, msg.Result.Success, msg.Result.Message)

	case PortalOpenMsg:
		if a.hooks.OpenPortal != nil {
			cmds = append(cmds, a.hooks.OpenPortal(msg.Name))
		}

	case PortalInstallMsg:
		if a.hooks.InstallPortal != nil {
			cmds = append(cmds, a.hooks.InstallPortal(msg.Name))
		}

	case PortalStatusMsg:
		a.portalsPanel.SetStatus(msg.Status)

	case LogMsg:
		ts := msg.Timestamp
		if ts.IsZero() {
			ts = time.Now()
		}
		a.logsPanel.AddLog(LogEntry{Timestamp: ts, Level: msg.Level, Message: msg.Message})
	}

	return a, tea.Batch(cmds...)
}

func (a *App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.inputActive = false
		a.input.Blur()
		return a, nil
	case "enter":
		description := a.input.Value()
		a.inputActive = false
		a.input.Blur()
		a.input.SetValue("")
		if description != "" && a.hooks.GeneratePlan != nil {
			a.addLog(LogLevelInfo, "Generating plan for: "+description)
			return a, a.hooks.GeneratePlan(description)
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) forwardKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch a.activeTab {
	case TabPlan:
		a.planPanel, cmd = a.planPanel.Update(msg)
	case TabLogs:
		a.logsPanel, cmd = a.logsPanel.Update(msg)
	case TabPortals:
		a.portalsPanel, cmd = a.portalsPanel.Update(msg)
	}
	return cmd
}

func (a *App) switchTab(tab int) {
	a.activeTab = tab
	a.planPanel.SetFocused(tab == TabPlan)
	a.logsPanel.SetFocused(tab == TabLogs)
	a.portalsPanel.SetFocused(tab == TabPortals)
	a.footer.SetActiveTab(tab)
}

func (a *App) updateSizes() {
	a.header.SetWidth(a.width)
	a.footer.SetWidth(a.width)

	contentHeight := a.height - tabBarHeight - 2 // tab bar + footer + spacing
	if a.showHeader {
		contentHeight -= a.header.Height()
	}
	if contentHeight < 4 {
		contentHeight = 4
	}

	a.planPanel.SetSize(a.width, contentHeight)
	a.logsPanel.SetSize(a.width, contentHeight)
	a.portalsPanel.SetSize(a.width, contentHeight)
}

// setPlan installs a display copy so executor mutations stay isolated.
func (a *App) setPlan(plan *models.Plan) {
	a.plan = clonePlan(plan)
	a.planPanel.SetPlan(a.plan)
	a.updateFooterCounts()
}

// handleExecutorEvent applies one executor event to the display plan.
func (a *App) handleExecutorEvent(ev executor.Event) {
	switch ev.Type {
	case executor.EventStepStarted:
		if step := a.displayStep(ev.Index); step != nil {
			step.Status = models.StepStatusInstalling
		}
		a.addLog(LogLevelInfo, fmt.Sprintf("Installing %s (%d/%d)", ev.StepName, ev.Index, ev.Total))

	case executor.EventStepCompleted:
		step := a.displayStep(ev.Index)
		if ev.Success {
			if step != nil {
				step.Status = models.StepStatusSuccess
			}
			a.addLog(LogLevelInfo, fmt.Sprintf("%s installed", ev.StepName))
		} else {
			if step != nil {
				step.Status = models.StepStatusError
				step.Error = ev.Message
			}
			a.addLog(LogLevelError, fmt.Sprintf("%s failed: %s", ev.StepName, ev.Message))
		}
		a.updateFooterCounts()

	case executor.EventRunFinished:
		level := LogLevelInfo
		if !ev.Success {
			level = LogLevelWarn
		}
		a.addLog(level, ev.Message)
	}
}

func (a *App) displayStep(index int) *models.Step {
	if index < 1 || index > a.plan.Len() {
		return nil
	}
	return a.plan.Steps[index-1]
}

func (a *App) addLog(level LogLevel, message string) {
	a.logsPanel.AddLog(LogEntry{Timestamp: time.Now(), Level: level, Message: message})
}

func (a *App) updateFooterCounts() {
	c := a.plan.Count()
	a.footer.SetStepCounts(StepCounts{
		Success: c.Success,
		Failed:  c.Error,
		Skipped: c.Skipped,
		Pending: c.Pending,
	})
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return "Goodbye!\n"
	}

	var content string
	switch a.activeTab {
	case TabLogs:
		content = a.logsPanel.View()
	case TabPortals:
		content = a.portalsPanel.View()
	default:
		content = a.planPanel.View()
	}

	parts := []string{}
	if a.showHeader {
		parts = append(parts, a.header.View())
	}
	parts = append(parts, a.renderTabBar())
	if a.inputActive {
		prompt := lipgloss.NewStyle().Padding(0, 1).Render("Setup: " + a.input.View())
		parts = append(parts, prompt)
	}
	parts = append(parts, content, a.footer.View())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderTabBar renders the tab indicator bar.
func (a *App) renderTabBar() string {
	activeStyle := lipgloss.NewStyle().Bold(true).Reverse(true)
	inactiveStyle := lipgloss.NewStyle().Faint(true)

	tabs := []string{" 1:Plan ", " 2:Logs ", " 3:Portals "}
	for i := range tabs {
		if i == a.activeTab {
			tabs[i] = activeStyle.Render(tabs[i])
		} else {
			tabs[i] = inactiveStyle.Render(tabs[i])
		}
	}

	return tabs[0] + tabs[1] + tabs[2]
}

// ActiveTab returns the currently active tab index.
func (a *App) ActiveTab() int {
	return a.activeTab
}

// Running reports whether an installation run is in progress.
func (a *App) Running() bool {
	return a.running
}

func clonePlan(plan *models.Plan) *models.Plan {
	if plan == nil {
		return &models.Plan{}
	}
	out := &models.Plan{
		Description:   plan.Description,
		EstimatedTime: plan.EstimatedTime,
		GeneratedAt:   plan.GeneratedAt,
		Steps:         make([]*models.Step, 0, len(plan.Steps)),
	}
	for _, s := range plan.Steps {
		copied := *s
		out.Steps = append(out.Steps, &copied)
	}
	return out
}

// NewProgram creates a bubbletea program for the app. The returned
// program can receive messages via Send().
func NewProgram(app *App) *tea.Program {
	return tea.NewProgram(app, tea.WithAltScreen())
}
