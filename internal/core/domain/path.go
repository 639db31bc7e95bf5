package domain

import "unique"

// Path is an interned absolute file path.
// Equal paths share one handle, so Path values compare in constant time.
type Path struct {
	h unique.Handle[string]
}

// NewPath interns p.
func NewPath(p string) Path {
	return Path{h: unique.Make(p)}
}

// NewPaths interns every element of ps.
func NewPaths(ps []string) []Path {
	res := make([]Path, len(ps))
	for i, p := range ps {
		res[i] = NewPath(p)
	}
	return res
}

// String returns the path text.
func (p Path) String() string {
	return p.h.Value()
}

// Handle returns the underlying unique handle.
func (p Path) Handle() unique.Handle[string] {
	return p.h
}
