package config

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// matchGlob reports whether name matches pattern. Both use forward slashes and
// "**" matches any number of path segments.
func matchGlob(pattern, name string) (bool, error) {
	return doublestar.Match(pattern, name)
}

// expandDirPattern turns a pattern naming a directory, such as "src", into
// one matching every file below it.
func expandDirPattern(pattern string) string {
	base := path.Base(pattern)
	if hasGlobMeta(base) || strings.Contains(base, ".") {
		return pattern
	}
	return strings.TrimSuffix(pattern, "/") + "/**/*"
}

func hasGlobMeta(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}

// validatePattern reports a malformed pattern.
func validatePattern(pattern string) error {
	if !doublestar.ValidatePattern(pattern) {
		return doublestar.ErrBadPattern
	}
	return nil
}
