package config

import "time"

// Configfile represents the structure of tsload.yaml.
type Configfile struct {
	EntryPoints     []string       `yaml:"entryPoints"`
	Outfile         string         `yaml:"outfile"`
	Outdir          string         `yaml:"outdir"`
	Bundle          *bool          `yaml:"bundle"`
	Sourcemap       bool           `yaml:"sourcemap"`
	Platform        string         `yaml:"platform"`
	Format          string         `yaml:"format"`
	External        []string       `yaml:"external"`
	Compiler        string         `yaml:"compiler"`
	ConfigFile      string         `yaml:"configFile"`
	IgnoreWarnings  []int          `yaml:"ignoreWarnings"`
	CompilerOptions map[string]any `yaml:"compilerOptions"`
	Checker         []string       `yaml:"checker"`
	Watch           WatchDTO       `yaml:"watch"`
}

// WatchDTO represents the watch section of tsload.yaml.
type WatchDTO struct {
	Debounce time.Duration `yaml:"debounce"`
}

// tsconfigFile represents the subset of tsconfig.json the resolver reads.
type tsconfigFile struct {
	Extends         any            `json:"extends"`
	CompilerOptions map[string]any `json:"compilerOptions"`
	Files           []string       `json:"files"`
	Include         []string       `json:"include"`
	Exclude         []string       `json:"exclude"`
}
