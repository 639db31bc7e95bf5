package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// Report is a diagnostic translated for the bundler.
// File is a module request relative to the build context, such as "./src/a.ts".
type Report struct {
	Message    string
	File       string
	Diagnostic Diagnostic
}

// NewReport converts a diagnostic into a report relative to context.
func NewReport(context string, d Diagnostic) Report {
	r := Report{Message: d.Format(), Diagnostic: d}
	if d.HasFile() {
		r.File = ModuleRequest(context, d.File)
	}
	return r
}

// Error implements the error interface.
func (r Report) Error() string {
	if r.File == "" {
		return r.Message
	}
	return r.File + " " + r.Message
}

// ModuleRequest returns path relative to context in module request form.
// Paths that cannot be made relative are returned unchanged.
func ModuleRequest(context, path string) string {
	rel, err := filepath.Rel(context, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	rel = filepath.ToSlash(rel)
	if strings.HasPrefix(rel, "../") || rel == ".." {
		return rel
	}
	return "./" + rel
}

// BuildReport is the outcome of one bundling cycle.
type BuildReport struct {
	Errors   []Report
	Warnings []Report
	Outputs  []string
	Duration time.Duration
}

// Failed reports whether the cycle produced errors.
func (b BuildReport) Failed() bool {
	return len(b.Errors) > 0
}
