package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/configo-dev/configo/pkg/models"
)

// PortalOpenMsg asks the app to open a portal's login page.
type PortalOpenMsg struct {
	Name string
}

// PortalInstallMsg asks the app to install a portal's CLI tool.
type PortalInstallMsg struct {
	Name string
}

// PortalsPanel displays AI service portals with login and CLI state.
type PortalsPanel struct {
	portals  []models.Portal
	statuses map[string]models.PortalStatus
	selected int
	width    int
	height   int
	focused  bool

	// Styles
	titleStyle    lipgloss.Style
	selectedStyle lipgloss.Style
	normalStyle   lipgloss.Style
	okStyle       lipgloss.Style
	badStyle      lipgloss.Style
	dimStyle      lipgloss.Style
}

// NewPortalsPanel creates a new PortalsPanel instance.
func NewPortalsPanel() *PortalsPanel {
	return &PortalsPanel{
		statuses: make(map[string]models.PortalStatus),

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

		okStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("28")),

		badStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),

		dimStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
	}
}

// SetPortals updates the portal list.
func (p *PortalsPanel) SetPortals(portals []models.Portal) {
	p.portals = portals
	if p.selected >= len(portals) {
		p.selected = len(portals) - 1
	}
	if p.selected < 0 {
		p.selected = 0
	}
}

// SetStatus records the status for one portal.
func (p *PortalsPanel) SetStatus(status models.PortalStatus) {
	p.statuses[status.Name] = status
}

// SetSize updates the panel dimensions.
func (p *PortalsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetFocused sets whether this panel has keyboard focus.
func (p *PortalsPanel) SetFocused(focused bool) {
	p.focused = focused
}

// Update handles input messages.
func (p *PortalsPanel) Update(msg tea.Msg) (*PortalsPanel, tea.Cmd) {
	if !p.focused {
		return p, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if p.selected > 0 {
				p.selected--
			}
		case "down", "j":
			if p.selected < len(p.portals)-1 {
				p.selected++
			}
		case "o", "enter":
			if portal := p.SelectedPortal(); portal != nil {
				name := portal.Name
				return p, func() tea.Msg { return PortalOpenMsg{Name: name} }
			}
		case "i":
			if portal := p.SelectedPortal(); portal != nil && portal.CLITool != "" {
				name := portal.Name
				return p, func() tea.Msg { return PortalInstallMsg{Name: name} }
			}
		}
	}

	return p, nil
}

// View renders the portals panel.
func (p *PortalsPanel) View() string {
	var b strings.Builder

	title := "Portals"
	if p.focused {
		title = "[Portals]"
	}
	b.WriteString(p.titleStyle.Render(title))
	b.WriteString("\n")

	if len(p.portals) == 0 {
		b.WriteString(p.normalStyle.Render("  No portals configured"))
	} else {
		for i, portal := range p.portals {
			b.WriteString(p.renderPortalLine(portal, i == p.selected))
			if i < len(p.portals)-1 {
				b.WriteString("\n")
			}
		}
	}

	content := b.String()
	borderColor := lipgloss.Color("240")
	if p.focused {
		borderColor = lipgloss.Color("63")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(p.width - 2).
		Height(p.height - 2).
		Render(content)
}

func (p *PortalsPanel) renderPortalLine(portal models.Portal, selected bool) string {
	status := p.statuses[portal.Name]

	login := p.dimStyle.Render("not logged in")
	if status.LoggedIn {
		login = p.okStyle.Render("logged in")
	}

	var cli string
	switch status.InstallState {
	case models.PortalInstalled:
		cli = p.okStyle.Render("cli " + iconSuccess)
	case models.PortalInstalling:
		cli = p.dimStyle.Render("cli " + iconInstalling)
	case models.PortalInstallFailed:
		cli = p.badStyle.Render("cli " + iconFailed)
	default:
		if portal.CLITool != "" {
			cli = p.dimStyle.Render("cli " + iconPending)
		}
	}

	line := fmt.Sprintf(" %s %s %s", portal.DisplayName, login, cli)
	if selected {
		return p.selectedStyle.Render(line)
	}
	return p.normalStyle.Render(line)
}

// SelectedPortal returns the currently selected portal, or nil if none.
func (p *PortalsPanel) SelectedPortal() *models.Portal {
	if len(p.portals) == 0 || p.selected < 0 || p.selected >= len(p.portals) {
		return nil
	}
	return &p.portals[p.selected]
}
