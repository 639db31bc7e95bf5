package tui

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/ui/style"
)

const (
	stepListWidthRatio = 0.35
	logPaneBorderWidth = 4
)

// StepStatus is the state of a step.
type StepStatus string

const (
	// StatusRunning indicates the step is executing.
	StatusRunning StepStatus = "Running"
	// StatusDone indicates the step succeeded.
	StatusDone StepStatus = "Done"
	// StatusError indicates the step failed.
	StatusError StepStatus = "Error"
)

// StepNode is one step in the list.
type StepNode struct {
	SpanID   string
	Name     string
	Status   StepStatus
	Start    time.Time
	Duration time.Duration
	Err      error
	Term     *Vterm
}

// Model is the watch dashboard state. Nested steps of the current cycle are
// listed on the left; the right pane shows the selected step's output or the
// cycle report.
type Model struct {
	Output *termenv.Output

	Cycle   int
	Changed []string
	Root    *StepNode
	Steps   []*StepNode
	SpanMap map[string]*StepNode
	Report  *domain.BuildReport

	ReportTerm  *Vterm
	ShowReport  bool
	FollowMode  bool
	SelectedIdx int
	ListOffset  int
	ListHeight  int
	LogWidth    int
	LogHeight   int
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) newTerm() *Vterm {
	term := NewVterm()
	if m.LogWidth > 0 && m.LogHeight > 0 {
		term.SetWidth(m.LogWidth)
		term.SetHeight(m.LogHeight)
	}
	return term
}

func (m *Model) ensureVisible() {
	if m.ListHeight <= 0 {
		return
	}
	if m.SelectedIdx < m.ListOffset {
		m.ListOffset = m.SelectedIdx
	} else if m.SelectedIdx >= m.ListOffset+m.ListHeight {
		m.ListOffset = m.SelectedIdx - m.ListHeight + 1
	}
}

// Selected returns the selected step, or nil when the list is empty.
func (m *Model) Selected() *StepNode {
	if m.SelectedIdx >= 0 && m.SelectedIdx < len(m.Steps) {
		return m.Steps[m.SelectedIdx]
	}
	return nil
}

func (m *Model) activeTerm() *Vterm {
	if m.ShowReport {
		return m.ReportTerm
	}
	if node := m.Selected(); node != nil {
		return node.Term
	}
	return nil
}

func (m *Model) selectIdx(i int) {
	m.SelectedIdx = i
	m.ensureVisible()
	if node := m.Selected(); node != nil && m.FollowMode {
		node.Term.ScrollToBottom()
	}
}

// Update implements tea.Model.
//
//nolint:cyclop // message dispatch
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case MsgCycleStart:
		m.Cycle = msg.Cycle
		m.Changed = msg.Changed
		m.Root = nil
		m.Steps = nil
		m.SpanMap = make(map[string]*StepNode)
		m.Report = nil
		m.ShowReport = false
		m.SelectedIdx = 0
		m.ListOffset = 0
		if m.ReportTerm == nil {
			m.ReportTerm = m.newTerm()
		}
		m.ReportTerm.Reset()

	case MsgStepStart:
		if m.SpanMap == nil {
			m.SpanMap = make(map[string]*StepNode)
		}
		node := &StepNode{
			SpanID: msg.SpanID,
			Name:   msg.Name,
			Status: StatusRunning,
			Start:  msg.StartTime,
			Term:   m.newTerm(),
		}
		m.SpanMap[msg.SpanID] = node
		if msg.ParentID == "" {
			m.Root = node
			break
		}
		m.Steps = append(m.Steps, node)
		if m.FollowMode {
			m.selectIdx(len(m.Steps) - 1)
		}

	case MsgStepLog:
		if node, ok := m.SpanMap[msg.SpanID]; ok {
			_, _ = node.Term.Write(msg.Data)
		}

	case MsgStepComplete:
		if node, ok := m.SpanMap[msg.SpanID]; ok {
			node.Duration = msg.EndTime.Sub(node.Start)
			node.Err = msg.Err
			node.Status = StatusDone
			if msg.Err != nil {
				node.Status = StatusError
				_, _ = fmt.Fprintf(node.Term, "%s %v\r\n", style.Cross, msg.Err)
			}
		}

	case MsgReport:
		report := msg.Report
		m.Report = &report
		if m.ReportTerm == nil {
			m.ReportTerm = m.newTerm()
		}
		m.writeReport(report)
		if m.FollowMode {
			m.ShowReport = true
		}
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "k", "up":
		if m.SelectedIdx > 0 {
			m.FollowMode = false
			m.ShowReport = false
			m.selectIdx(m.SelectedIdx - 1)
		}
	case "j", "down":
		if m.SelectedIdx < len(m.Steps)-1 {
			m.FollowMode = false
			m.ShowReport = false
			m.selectIdx(m.SelectedIdx + 1)
		}
	case "tab", "r":
		m.ShowReport = !m.ShowReport
	case "esc":
		m.FollowMode = true
		m.ShowReport = m.Report != nil
		m.selectIdx(max(len(m.Steps)-1, 0))
	default:
		if term := m.activeTerm(); term != nil {
			term.Update(msg)
		}
	}
	return nil
}

func (m *Model) resize(width, height int) {
	listWidth := int(float64(width) * stepListWidthRatio)
	m.LogWidth = width - listWidth - logPaneBorderWidth

	headerHeight := lipgloss.Height(titleStyle.Render("STEPS") + "\n\n")
	m.LogHeight = height - headerHeight
	m.ListHeight = height - headerHeight
	m.ensureVisible()

	terms := make([]*Vterm, 0, len(m.SpanMap)+1)
	for _, node := range m.SpanMap {
		terms = append(terms, node.Term)
	}
	if m.ReportTerm != nil {
		terms = append(terms, m.ReportTerm)
	}
	for _, term := range terms {
		term.SetWidth(m.LogWidth)
		term.SetHeight(m.LogHeight)
	}
}

// writeReport renders the cycle diagnostics into the report terminal.
func (m *Model) writeReport(report domain.BuildReport) {
	m.ReportTerm.Reset()
	out := m.Output
	if out == nil {
		out = termenv.NewOutput(io.Discard, termenv.WithProfile(termenv.Ascii))
	}
	line := func(format string, args ...any) {
		_, _ = fmt.Fprintf(m.ReportTerm, format+"\r\n", args...)
	}

	for _, e := range report.Errors {
		line("%s %s", out.String(style.Cross).Foreground(termenv.ANSIRed), e.Error())
	}
	for _, w := range report.Warnings {
		line("%s %s", out.String(style.Warning).Foreground(termenv.ANSIYellow), w.Error())
	}
	for _, o := range report.Outputs {
		line("%s %s", style.Arrow, o)
	}
	line("%d error(s), %d warning(s) in %v", len(report.Errors), len(report.Warnings), report.Duration)
}
