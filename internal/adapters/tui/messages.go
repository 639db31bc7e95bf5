package tui

import (
	"time"

	"go.trai.ch/tsload/internal/core/domain"
)

// MsgCycleStart starts a new bundling cycle.
type MsgCycleStart struct {
	Cycle   int
	Changed []string
}

// MsgStepStart reports a started step.
type MsgStepStart struct {
	SpanID    string
	ParentID  string
	Name      string
	StartTime time.Time
}

// MsgStepLog carries output of a step.
type MsgStepLog struct {
	SpanID string
	Data   []byte
}

// MsgStepComplete reports a finished step.
type MsgStepComplete struct {
	SpanID  string
	EndTime time.Time
	Err     error
}

// MsgReport carries the outcome of a cycle.
type MsgReport struct {
	Report domain.BuildReport
}
