package domain

// Project is a resolved project configuration.
type Project struct {
	ConfigPath string
	Dir        string
	Files      []string
	Options    map[string]any
}

// Program is the whole-program diagnostic view of a compiler service.
type Program struct {
	Files     []string
	Global    []Diagnostic
	Syntactic []Diagnostic
	Semantic  []Diagnostic
}

// Command is an external process invocation.
type Command struct {
	Name string
	Args []string
	Dir  string
	Env  []string
}
