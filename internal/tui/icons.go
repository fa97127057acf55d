package tui

// Status icons shared by the panels.
const (
	iconPending    = "○"
	iconInstalling = "◐"
	iconSuccess    = "✓"
	iconFailed     = "✗"
	iconSkipped    = "↷"
)
