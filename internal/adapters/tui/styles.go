package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/tsload/internal/ui/style"
)

var (
	stepRunningStyle = style.Title
	stepDoneStyle    = style.Success
	stepErrorStyle   = style.Failure
	selectedStyle    = style.Title

	titleStyle        = style.Selected.Padding(0, 1)
	failureTitleStyle = style.Selected.Background(style.Red).Padding(0, 1)

	listStyle = lipgloss.NewStyle().PaddingRight(1)
	logStyle  = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(style.Slate)
)
