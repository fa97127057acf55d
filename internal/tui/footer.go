package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// StepCounts holds the count of steps in each outcome bucket.
type StepCounts struct {
	Success int
	Failed  int
	Skipped int
	Pending int
}

// Footer renders the status bar and keyboard hints.
type Footer struct {
	message    string
	success    bool
	runDone    bool
	activeTab  int
	width      int
	stepCounts StepCounts

	// Styles
	successStyle   lipgloss.Style
	errorStyle     lipgloss.Style
	hintStyle      lipgloss.Style
	separatorStyle lipgloss.Style
}

// NewFooter creates a new Footer instance.
func NewFooter() *Footer {
	return &Footer{
		successStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("28")).
			Bold(true),

		errorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),

		hintStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),

		separatorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("236")),
	}
}

// SetMessage sets the status message.
func (f *Footer) SetMessage(message string, success bool) {
	f.message = message
	f.success = success
}

// SetRunDone marks the installation run as complete.
func (f *Footer) SetRunDone(done bool, success bool, message string) {
	f.runDone = done
	f.success = success
	f.message = message
}

// SetActiveTab sets which tab is currently shown.
func (f *Footer) SetActiveTab(tab int) {
	f.activeTab = tab
}

// SetWidth sets the footer width.
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetStepCounts updates the step counts for display.
func (f *Footer) SetStepCounts(counts StepCounts) {
	f.stepCounts = counts
}

// View renders the footer.
func (f *Footer) View() string {
	var left string

	total := f.stepCounts.Success + f.stepCounts.Failed + f.stepCounts.Skipped + f.stepCounts.Pending
	if total > 0 {
		counts := fmt.Sprintf("✓%d", f.stepCounts.Success)
		if f.stepCounts.Failed > 0 {
			counts += f.errorStyle.Render(fmt.Sprintf(" ✗%d", f.stepCounts.Failed))
		}
		if f.stepCounts.Skipped > 0 {
			counts += fmt.Sprintf(" ↷%d", f.stepCounts.Skipped)
		}
		if f.stepCounts.Pending > 0 {
			counts += fmt.Sprintf(" ○%d", f.stepCounts.Pending)
		}
		left = counts
	}

	if f.runDone {
		if f.success {
			left = f.successStyle.Render("✓ " + f.message)
		} else {
			left = f.errorStyle.Render("✗ " + f.message)
		}
	} else if f.message != "" && left == "" {
		left = f.hintStyle.Render(f.message)
	}

	right := f.keyboardHints()

	sep := f.separatorStyle.Render(" │ ")

	if left != "" && right != "" {
		return left + sep + right
	} else if left != "" {
		return left
	}
	return right
}

// keyboardHints returns context-sensitive keyboard hints.
func (f *Footer) keyboardHints() string {
	if f.runDone {
		return f.hintStyle.Render("Press q to exit")
	}

	hints := "1/2/3 tabs"

	switch f.activeTab {
	case TabPlan:
		hints += " │ ↑/↓ scroll │ enter run │ c cancel"
	case TabLogs:
		hints += " │ ↑/↓ scroll"
	case TabPortals:
		hints += " │ ↑/↓ select │ o open │ i install"
	}

	hints += " │ q quit"

	return f.hintStyle.Render(hints)
}
