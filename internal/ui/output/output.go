// Package output builds termenv outputs that honour NO_COLOR.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Mode selects how an output picks its colour profile.
type Mode int

const (
	// Detect asks the environment for the terminal's capabilities.
	Detect Mode = iota
	// ANSI uses the sixteen basic colours, which survive CI log viewers.
	ANSI
)

// Profile returns the colour profile for m. A non-empty NO_COLOR always
// yields plain ASCII.
func (m Mode) Profile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if m == ANSI {
		return termenv.ANSI
	}
	return termenv.EnvColorProfile()
}

// New creates an output on w with a detected profile.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return NewWithMode(w, Detect, opts...)
}

// NewWithMode creates an output on w, or os.Stderr when w is nil. The output
// always treats w as a terminal so that piped renderer output keeps its
// styling unless the profile disables it.
func NewWithMode(w io.Writer, mode Mode, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	opts = append(opts, termenv.WithProfile(mode.Profile()), termenv.WithTTY(true))
	return termenv.NewOutput(w, opts...)
}
