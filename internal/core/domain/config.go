package domain

import "time"

// DefaultDebounce is the quiet period before a watch rebuild starts.
const DefaultDebounce = 50 * time.Millisecond

// Config is the tool configuration read from tsload.yaml.
// Relative paths are resolved against Root.
type Config struct {
	Root string

	EntryPoints     []string
	Outfile         string
	Outdir          string
	Bundle          bool
	Sourcemap       bool
	Platform        string
	Format          string
	External        []string
	Compiler        string
	ConfigFile      string
	IgnoreWarnings  []int
	CompilerOptions map[string]any
	Checker         []string
	Debounce        time.Duration
}

// DefaultConfig returns the configuration used when no tsload.yaml exists.
func DefaultConfig(root string) *Config {
	return &Config{
		Root:     root,
		Bundle:   true,
		Debounce: DefaultDebounce,
	}
}
