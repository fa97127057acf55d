package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// maxLogEntries bounds memory use for long sessions.
const maxLogEntries = 1000

// LogEntry is one line in the logs panel.
type LogEntry struct {
	Timestamp time.Time
	Level     LogLevel
	Message   string
}

// LogsPanel displays a scrollable log of install output and events.
type LogsPanel struct {
	entries      []LogEntry
	scrollOffset int
	autoScroll   bool
	width        int
	height       int
	focused      bool

	// Styles
	titleStyle lipgloss.Style
	timeStyle  lipgloss.Style
	infoStyle  lipgloss.Style
	warnStyle  lipgloss.Style
	errorStyle lipgloss.Style
}

// NewLogsPanel creates a new LogsPanel instance.
func NewLogsPanel() *LogsPanel {
	return &LogsPanel{
		autoScroll: true,

		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1),

		timeStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),

		infoStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),

		warnStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),

		errorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
	}
}

// AddLog appends a log entry, trimming the buffer when it grows too large.
func (p *LogsPanel) AddLog(entry LogEntry) {
	p.entries = append(p.entries, entry)
	if len(p.entries) > maxLogEntries {
		p.entries = p.entries[len(p.entries)-maxLogEntries:]
	}
	if p.autoScroll {
		p.scrollToBottom()
	}
}

// SetSize updates the panel dimensions.
func (p *LogsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	if p.autoScroll {
		p.scrollToBottom()
	}
}

// SetFocused sets whether this panel has keyboard focus.
func (p *LogsPanel) SetFocused(focused bool) {
	p.focused = focused
}

// Update handles input messages.
func (p *LogsPanel) Update(msg tea.Msg) (*LogsPanel, tea.Cmd) {
	if !p.focused {
		return p, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if p.scrollOffset > 0 {
				p.scrollOffset--
				p.autoScroll = false
			}
		case "down", "j":
			if p.scrollOffset < p.maxScroll() {
				p.scrollOffset++
			}
			if p.scrollOffset == p.maxScroll() {
				p.autoScroll = true
			}
		case "a":
			p.autoScroll = !p.autoScroll
			if p.autoScroll {
				p.scrollToBottom()
			}
		}
	}

	return p, nil
}

func (p *LogsPanel) visibleRows() int {
	rows := p.height - 4
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (p *LogsPanel) maxScroll() int {
	max := len(p.entries) - p.visibleRows()
	if max < 0 {
		max = 0
	}
	return max
}

func (p *LogsPanel) scrollToBottom() {
	p.scrollOffset = p.maxScroll()
}

// View renders the logs panel.
func (p *LogsPanel) View() string {
	var b strings.Builder

	title := "Logs"
	if p.focused {
		title = "[Logs]"
	}
	if !p.autoScroll {
		title += " (scroll)"
	}
	b.WriteString(p.titleStyle.Render(title))
	b.WriteString("\n")

	if len(p.entries) == 0 {
		b.WriteString(p.infoStyle.Render("  No logs yet"))
	} else {
		end := p.scrollOffset + p.visibleRows()
		if end > len(p.entries) {
			end = len(p.entries)
		}
		for i := p.scrollOffset; i < end; i++ {
			b.WriteString(p.renderEntry(p.entries[i]))
			if i < end-1 {
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

func (p *LogsPanel) renderEntry(e LogEntry) string {
	ts := p.timeStyle.Render(e.Timestamp.Format("15:04:05"))

	var msgStyle lipgloss.Style
	switch e.Level {
	case LogLevelError:
		msgStyle = p.errorStyle
	case LogLevelWarn:
		msgStyle = p.warnStyle
	default:
		msgStyle = p.infoStyle
	}

	maxLen := p.width - 14
	if maxLen < 20 {
		maxLen = 20
	}
	msg := e.Message
	if len(msg) > maxLen {
		msg = msg[:maxLen-3] + "..."
	}

	return fmt.Sprintf(" %s %s", ts, msgStyle.Render(msg))
}

// Count returns the number of buffered log entries.
func (p *LogsPanel) Count() int {
	return len(p.entries)
}
