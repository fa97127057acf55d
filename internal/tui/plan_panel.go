package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/configo-dev/configo/pkg/models"
)

// PlanPanel displays the installation plan as a scrollable step list
// with status indicators.
type PlanPanel struct {
	plan         *models.Plan
	selected     int
	scrollOffset int
	width        int
	height       int
	focused      bool
	spinnerFrame string

	// Styles
	titleStyle      lipgloss.Style
	selectedStyle   lipgloss.Style
	normalStyle     lipgloss.Style
	pendingStyle    lipgloss.Style
	installingStyle lipgloss.Style
	successStyle    lipgloss.Style
	failedStyle     lipgloss.Style
	skippedStyle    lipgloss.Style
	sectionStyle    lipgloss.Style
	descStyle       lipgloss.Style
}

// NewPlanPanel creates a new PlanPanel instance.
func NewPlanPanel() *PlanPanel {
	return &PlanPanel{
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1),

		selectedStyle: lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("15")).
			Bold(true),

		normalStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),

		pendingStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")), // Gray

		installingStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("34")), // Green

		successStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("28")), // Dark green

		failedStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")), // Red

		skippedStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")), // Orange

		sectionStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true),

		descStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
	}
}

// SetPlan updates the displayed plan.
func (p *PlanPanel) SetPlan(plan *models.Plan) {
	p.plan = plan
	if p.selected >= plan.Len() {
		p.selected = plan.Len() - 1
	}
	if p.selected < 0 {
		p.selected = 0
	}
}

// SetSize updates the panel dimensions.
func (p *PlanPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetFocused sets whether this panel has keyboard focus.
func (p *PlanPanel) SetFocused(focused bool) {
	p.focused = focused
}

// SetSpinnerFrame sets the current spinner frame used for installing steps.
func (p *PlanPanel) SetSpinnerFrame(frame string) {
	p.spinnerFrame = frame
}

// Update handles input messages.
func (p *PlanPanel) Update(msg tea.Msg) (*PlanPanel, tea.Cmd) {
	if !p.focused {
		return p, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if p.selected > 0 {
				p.selected--
				p.ensureVisible()
			}
		case "down", "j":
			if p.selected < p.plan.Len()-1 {
				p.selected++
				p.ensureVisible()
			}
		}
	}

	return p, nil
}

// ensureVisible adjusts scroll offset to keep the selected step visible.
func (p *PlanPanel) ensureVisible() {
	visibleRows := p.height - 4
	if visibleRows < 1 {
		visibleRows = 1
	}

	if p.selected < p.scrollOffset {
		p.scrollOffset = p.selected
	} else if p.selected >= p.scrollOffset+visibleRows {
		p.scrollOffset = p.selected - visibleRows + 1
	}
}

// View renders the plan panel.
func (p *PlanPanel) View() string {
	var b strings.Builder

	title := "Plan"
	if p.focused {
		title = "[Plan]"
	}
	b.WriteString(p.titleStyle.Render(title))
	b.WriteString("\n")

	if p.plan.Len() == 0 {
		b.WriteString(p.normalStyle.Render("  No plan yet. Run setup to generate one."))
	} else {
		counts := p.plan.Count()
		header := fmt.Sprintf(" %s (%d steps", p.plan.Description, p.plan.Len())
		if p.plan.EstimatedTime != "" {
			header += ", est. " + p.plan.EstimatedTime
		}
		header += fmt.Sprintf(") %d done", counts.Success)
		b.WriteString(p.sectionStyle.Render(header))
		b.WriteString("\n")

		for i, step := range p.plan.Steps {
			if i < p.scrollOffset {
				continue
			}
			b.WriteString(p.renderStepLine(step, i == p.selected))
			if i < len(p.plan.Steps)-1 {
				b.WriteString("\n")
			}
		}
	}

	content := b.String()
	borderColor := lipgloss.Color("240")
	if p.focused {
		borderColor = lipgloss.Color("63") // Blue when focused
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(p.width - 2). // Account for border
		Height(p.height - 2).
		Render(content)
}

// renderStepLine renders one step line with status icon and error preview.
func (p *PlanPanel) renderStepLine(step *models.Step, selected bool) string {
	icon := p.statusIcon(step.Status)

	maxTitleLen := p.width - 8
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	title := step.Name
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	line := fmt.Sprintf(" %s %s", icon, title)
	if step.Description != "" && len(line)+len(step.Description)+3 < p.width {
		line += p.descStyle.Render(" · " + step.Description)
	}

	if step.Status == models.StepStatusError && step.Error != "" {
		errPreview := step.Error
		maxErrLen := p.width - 10
		if maxErrLen < 20 {
			maxErrLen = 20
		}
		if len(errPreview) > maxErrLen {
			errPreview = errPreview[:maxErrLen-3] + "..."
		}
		line += "\n     " + p.failedStyle.Render(errPreview)
	}

	if selected {
		return p.selectedStyle.Render(line)
	}
	return p.normalStyle.Render(line)
}

// statusIcon returns the appropriate icon for a step status.
func (p *PlanPanel) statusIcon(status models.StepStatus) string {
	switch status {
	case models.StepStatusPending:
		return p.pendingStyle.Render(iconPending)
	case models.StepStatusInstalling:
		if p.spinnerFrame != "" {
			return p.installingStyle.Render(p.spinnerFrame)
		}
		return p.installingStyle.Render(iconInstalling)
	case models.StepStatusSuccess:
		return p.successStyle.Render(iconSuccess)
	case models.StepStatusError:
		return p.failedStyle.Render(iconFailed)
	case models.StepStatusSkipped:
		return p.skippedStyle.Render(iconSkipped)
	default:
		return p.pendingStyle.Render(iconPending)
	}
}

// SelectedStep returns the currently selected step, or nil if none.
func (p *PlanPanel) SelectedStep() *models.Step {
	if p.plan.Len() == 0 || p.selected < 0 || p.selected >= p.plan.Len() {
		return nil
	}
	return p.plan.Steps[p.selected]
}
