// Package tui renders watch mode as an interactive terminal dashboard.
package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/tsload/internal/ui/output"
)

// NewModel creates a dashboard that follows the newest step.
func NewModel(w io.Writer) Model {
	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)

	return Model{
		Output:     out,
		SpanMap:    make(map[string]*StepNode),
		ReportTerm: NewVterm(),
		FollowMode: true,
	}
}
