// Package detector selects the output mode from the terminal and CI environment.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode is the rendering mode.
type OutputMode int

const (
	// ModeAuto leaves the choice to detection.
	ModeAuto OutputMode = iota
	// ModeTUI selects the interactive dashboard.
	ModeTUI
	// ModeLinear selects line-oriented output for CI and pipes.
	ModeLinear
)

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// Environment is what detection looks at.
type Environment struct {
	IsTerminal bool
	Getenv     func(string) string
}

// Current describes the running process: stdout's terminal state and os.Getenv.
func Current() Environment {
	return Environment{
		IsTerminal: term.IsTerminal(int(os.Stdout.Fd())),
		Getenv:     os.Getenv,
	}
}

// Detect returns ModeLinear when stdout is not a terminal or CI is set,
// and ModeTUI otherwise.
func (e Environment) Detect() OutputMode {
	ci := ""
	if e.Getenv != nil {
		ci = e.Getenv("CI")
	}
	if !e.IsTerminal || ci == "true" || ci == "1" {
		return ModeLinear
	}
	return ModeTUI
}

// DetectEnvironment detects the mode for the running process.
func DetectEnvironment() OutputMode {
	return Current().Detect()
}

// ResolveMode applies the --output flag to the detected mode.
// flag is one of "auto", "tui", "linear", "ci" or empty; unknown values
// fall back to detection.
func ResolveMode(detected OutputMode, flag string) OutputMode {
	switch flag {
	case "tui":
		return ModeTUI
	case "linear", "ci":
		return ModeLinear
	default:
		return detected
	}
}
