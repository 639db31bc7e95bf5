package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer runs the dashboard as a ports.Renderer.
type Renderer struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewRenderer creates a renderer for model.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	return &Renderer{
		program: tea.NewProgram(model, opts...),
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start runs the program in the background.
func (r *Renderer) Start(context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop asks the program to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the program has exited.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// OnCycleStart forwards to the program.
func (r *Renderer) OnCycleStart(cycle int, changed []string) {
	r.program.Send(MsgCycleStart{Cycle: cycle, Changed: changed})
}

// OnStepStart forwards to the program.
func (r *Renderer) OnStepStart(spanID, parentID, name string, startTime time.Time) {
	r.program.Send(MsgStepStart{SpanID: spanID, ParentID: parentID, Name: name, StartTime: startTime})
}

// OnStepLog forwards to the program.
func (r *Renderer) OnStepLog(spanID string, data []byte) {
	r.program.Send(MsgStepLog{SpanID: spanID, Data: data})
}

// OnStepComplete forwards to the program.
func (r *Renderer) OnStepComplete(spanID string, endTime time.Time, err error) {
	r.program.Send(MsgStepComplete{SpanID: spanID, EndTime: endTime, Err: err})
}

// OnReport forwards to the program.
func (r *Renderer) OnReport(report domain.BuildReport) {
	r.program.Send(MsgReport{Report: report})
}
