package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/tsload/internal/ui/style"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.ListHeight == 0 {
		return "Initializing..."
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.stepList(),
		m.logPane(),
	)
}

func (m *Model) stepList() string {
	var s strings.Builder

	s.WriteString(m.cycleTitle() + "\n\n")

	start := min(m.ListOffset, len(m.Steps))
	end := min(m.ListOffset+m.ListHeight, len(m.Steps))
	for i := start; i < end; i++ {
		s.WriteString(m.renderStepRow(i, m.Steps[i]) + "\n")
	}
	if len(m.Steps) == 0 {
		s.WriteString("  waiting for changes\n")
	}

	return listStyle.Render(s.String())
}

func (m *Model) cycleTitle() string {
	title := fmt.Sprintf("BUILD #%d", m.Cycle)
	if m.Root != nil && m.Root.Status == StatusRunning {
		title += " " + style.Dot
	}
	if m.Report != nil && m.Report.Failed() {
		return failureTitleStyle.Render(title)
	}
	return titleStyle.Render(title)
}

func (m *Model) renderStepRow(index int, node *StepNode) string {
	rowStyle := stepStyle(node)
	cursor := "  "
	if index == m.SelectedIdx && !m.ShowReport {
		cursor = selectedStyle.Render("> ")
		if node.Status == StatusRunning {
			rowStyle = selectedStyle
		}
	}

	content := fmt.Sprintf("%s %s", stepIcon(node), node.Name)
	if node.Status != StatusRunning {
		content += fmt.Sprintf(" (%v)", node.Duration)
	}
	return cursor + rowStyle.Render(content)
}

func stepIcon(node *StepNode) string {
	switch node.Status {
	case StatusDone:
		return style.Check
	case StatusError:
		return style.Cross
	default:
		return style.Dot
	}
}

func stepStyle(node *StepNode) lipgloss.Style {
	switch node.Status {
	case StatusDone:
		return stepDoneStyle
	case StatusError:
		return stepErrorStyle
	default:
		return stepRunningStyle
	}
}

func (m *Model) logPane() string {
	var header, content string

	mode := " (Manual)"
	if m.FollowMode {
		mode = " (Following)"
	}

	switch node := m.Selected(); {
	case m.ShowReport && m.Report != nil:
		if m.Report.Failed() {
			header = failureTitleStyle.Render("REPORT" + mode)
		} else {
			header = titleStyle.Render("REPORT" + mode)
		}
		content = m.ReportTerm.View()
	case node != nil:
		header = titleStyle.Render("LOGS: " + node.Name + mode)
		content = node.Term.View()
	default:
		header = titleStyle.Render("LOGS (Waiting...)")
	}

	return logStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, content))
}
