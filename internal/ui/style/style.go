// Package style holds the colours, icons and text styles shared by the
// logger and both renderers.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Step and diagnostic icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Arrow   = "→"
)

// Text styles.
var (
	// Title marks the running step and the cursor.
	Title = lipgloss.NewStyle().Bold(true).Foreground(Iris)
	// Success marks finished steps.
	Success = lipgloss.NewStyle().Foreground(Green)
	// Failure marks failed steps.
	Failure = lipgloss.NewStyle().Foreground(Red)
	// Selected is the pane header style.
	Selected = lipgloss.NewStyle().Bold(true).Foreground(White).Background(Iris)
)
