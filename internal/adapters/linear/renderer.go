// Package linear renders bundling cycles as chronological log lines for CI and pipes.
package linear

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
	"go.trai.ch/tsload/internal/ui/output"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer with line-buffered output.
// Step output goes to stdout prefixed with the step name; lifecycle and
// diagnostics go to stderr. Nested steps are only announced when they fail.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu      sync.Mutex
	steps   map[string]*stepState
	buffers map[string]*bytes.Buffer

	done     chan struct{}
	stopOnce sync.Once
}

type stepState struct {
	name      string
	nested    bool
	startTime time.Time
}

// NewRenderer creates a Renderer. Nil writers default to os.Stdout and os.Stderr.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout:  stdout,
		stderr:  stderr,
		output:  output.NewWithMode(stderr, output.ANSI),
		steps:   make(map[string]*stepState),
		buffers: make(map[string]*bytes.Buffer),
		done:    make(chan struct{}),
	}
}

// Start does nothing; the renderer writes synchronously.
func (r *Renderer) Start(context.Context) error {
	return nil
}

// Stop flushes partial lines of unfinished steps and releases Wait.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for spanID := range r.buffers {
		r.flushBufferLocked(spanID)
	}
	r.stopOnce.Do(func() { close(r.done) })
	return nil
}

// Wait blocks until Stop is called.
func (r *Renderer) Wait() error {
	<-r.done
	return nil
}

// OnCycleStart announces a build or a rebuild with its trigger.
func (r *Renderer) OnCycleStart(cycle int, changed []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cycle <= 1 || len(changed) == 0 {
		_, _ = fmt.Fprintf(r.stderr, "%s\n", r.output.String(fmt.Sprintf("Build #%d", cycle)).Bold())
		return
	}

	_, _ = fmt.Fprintf(r.stderr, "%s %s\n",
		r.output.String(fmt.Sprintf("Build #%d", cycle)).Bold(),
		r.output.String(fmt.Sprintf("(%d changed: %s)", len(changed), strings.Join(changed, ", "))).Faint(),
	)
}

// OnStepStart records a step; top-level steps are announced.
func (r *Renderer) OnStepStart(spanID, parentID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.steps[spanID] = &stepState{name: name, nested: parentID != "", startTime: startTime}
	r.buffers[spanID] = new(bytes.Buffer)

	if parentID == "" {
		prefix := r.output.String(fmt.Sprintf("[%s]", name)).Faint()
		_, _ = fmt.Fprintf(r.stderr, "%s Starting...\n", prefix)
	}
}

// OnStepLog prints complete lines of step output with the step prefix.
func (r *Renderer) OnStepLog(spanID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	step, ok := r.steps[spanID]
	if !ok {
		return
	}

	buf := r.buffers[spanID]
	buf.Write(data)

	for {
		line, err := buf.ReadBytes('\n')
		if err != nil {
			if len(line) > 0 {
				rest := new(bytes.Buffer)
				rest.Write(line)
				r.buffers[spanID] = rest
			}
			break
		}
		r.printLineLocked(step.name, line)
	}
}

// OnStepComplete prints the outcome of a top-level step, or of a nested step
// that failed.
func (r *Renderer) OnStepComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	step, ok := r.steps[spanID]
	if !ok {
		return
	}
	r.flushBufferLocked(spanID)
	delete(r.steps, spanID)
	delete(r.buffers, spanID)

	prefix := fmt.Sprintf("[%s]", step.name)
	duration := endTime.Sub(step.startTime)

	switch {
	case err != nil:
		symbol := r.output.String("✗").Foreground(termenv.ANSIRed)
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v: %v\n", prefix, symbol, duration, err)
	case !step.nested:
		symbol := r.output.String("✓").Foreground(termenv.ANSIGreen)
		_, _ = fmt.Fprintf(r.stderr, "%s %s Completed in %v\n", prefix, symbol, duration)
	}
}

// OnReport prints every error and warning of a cycle followed by a summary.
func (r *Renderer) OnReport(report domain.BuildReport) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range report.Errors {
		label := r.output.String("error").Foreground(termenv.ANSIRed).Bold()
		_, _ = fmt.Fprintf(r.stderr, "%s %s\n", label, e.Error())
	}
	for _, w := range report.Warnings {
		label := r.output.String("warning").Foreground(termenv.ANSIYellow).Bold()
		_, _ = fmt.Fprintf(r.stderr, "%s %s\n", label, w.Error())
	}
	for _, out := range report.Outputs {
		_, _ = fmt.Fprintf(r.stderr, "  %s\n", r.output.String(out).Faint())
	}

	summary := fmt.Sprintf("%d error(s), %d warning(s) in %v",
		len(report.Errors), len(report.Warnings), report.Duration)
	if report.Failed() {
		_, _ = fmt.Fprintf(r.stderr, "%s %s\n", r.output.String("✗").Foreground(termenv.ANSIRed), summary)
		return
	}
	_, _ = fmt.Fprintf(r.stderr, "%s %s\n", r.output.String("✓").Foreground(termenv.ANSIGreen), summary)
}

// flushBufferLocked prints the pending partial line of a step. r.mu must be held.
func (r *Renderer) flushBufferLocked(spanID string) {
	step, ok := r.steps[spanID]
	if !ok {
		return
	}
	if buf := r.buffers[spanID]; buf.Len() > 0 {
		r.printLineLocked(step.name, buf.Bytes())
		buf.Reset()
	}
}

// printLineLocked writes one prefixed line to stdout. r.mu must be held.
func (r *Renderer) printLineLocked(name string, line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	if len(line) == 0 {
		return
	}
	_, _ = fmt.Fprintf(r.stdout, "[%s] %s\n", name, line)
}
