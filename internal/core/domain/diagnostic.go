package domain

import (
	"fmt"
	"strconv"
)

// DiagnosticCategory classifies where a diagnostic was produced.
type DiagnosticCategory int

const (
	// Global diagnostics are not attached to a file, such as option errors.
	Global DiagnosticCategory = iota
	// Syntactic diagnostics come from parsing a single file.
	Syntactic
	// Semantic diagnostics come from whole-program type information.
	Semantic
)

// String returns the lowercase name of the category.
func (c DiagnosticCategory) String() string {
	switch c {
	case Global:
		return "global"
	case Syntactic:
		return "syntactic"
	case Semantic:
		return "semantic"
	default:
		return "category(" + strconv.Itoa(int(c)) + ")"
	}
}

// Well-known diagnostic codes produced by the built-in compiler strategies.
const (
	CodeExpected           = 1005
	CodeCannotFindName     = 2304
	CodeCannotFindModule   = 2307
	CodeUnknownOption      = 5023
	CodeCannotReadConfig   = 5083
	CodeInvalidOptionValue = 6046
	CodeFileNotFound       = 6053
	CodeUnsupportedTarget  = 6055
)

// Diagnostic is a problem reported by a compiler service.
// Line and Column are zero-based.
type Diagnostic struct {
	Category DiagnosticCategory
	File     string
	Line     int
	Column   int
	Length   int
	Message  string
	Code     int
}

// HasFile reports whether the diagnostic is attached to a source file.
func (d Diagnostic) HasFile() bool {
	return d.File != ""
}

// Format renders the diagnostic as "(line,col): message (code)" with one-based
// positions, or "message (code)" when it is not attached to a file.
// The code suffix is omitted when the code is zero.
func (d Diagnostic) Format() string {
	msg := d.Message
	if d.Code != 0 {
		msg = fmt.Sprintf("%s (%d)", msg, d.Code)
	}
	if !d.HasFile() {
		return msg
	}
	return fmt.Sprintf("(%d,%d): %s", d.Line+1, d.Column+1, msg)
}

// FilterCodes returns the diagnostics whose code is not in ignore.
func FilterCodes(diags []Diagnostic, ignore []int) []Diagnostic {
	if len(ignore) == 0 {
		return diags
	}
	skip := make(map[int]struct{}, len(ignore))
	for _, code := range ignore {
		skip[code] = struct{}{}
	}
	out := make([]Diagnostic, 0, len(diags))
	for _, d := range diags {
		if _, ok := skip[d.Code]; ok {
			continue
		}
		out = append(out, d)
	}
	return out
}
