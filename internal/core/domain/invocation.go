package domain

// Invocation carries the state of a single transform request.
// It records every file read on behalf of the request other than the file itself.
type Invocation struct {
	File string

	deps []string
	seen map[string]struct{}
}

// NewInvocation creates an invocation for file.
func NewInvocation(file string) *Invocation {
	return &Invocation{File: file, seen: make(map[string]struct{})}
}

// AddDependency records path as a dependency. The invocation's own file and
// duplicates are ignored. A nil invocation ignores all calls.
func (inv *Invocation) AddDependency(path string) {
	if inv == nil || path == inv.File {
		return
	}
	if inv.seen == nil {
		inv.seen = make(map[string]struct{})
	}
	if _, ok := inv.seen[path]; ok {
		return
	}
	inv.seen[path] = struct{}{}
	inv.deps = append(inv.deps, path)
}

// Dependencies returns the recorded dependencies in first-seen order.
func (inv *Invocation) Dependencies() []string {
	if inv == nil {
		return nil
	}
	out := make([]string, len(inv.deps))
	copy(out, inv.deps)
	return out
}
