// Package build holds build-time information.
package build

import (
	"fmt"
	"runtime"
)

// Set through -ldflags "-X go.trai.ch/tsload/internal/build.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Summary describes the binary on one line, without the program name.
func Summary() string {
	return fmt.Sprintf("version %s (commit: %s, date: %s, %s)", Version, Commit, Date, runtime.Version())
}
