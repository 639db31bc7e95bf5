package loader

import (
	"encoding/json"
	"slices"

	"go.trai.ch/tsload/internal/core/domain"
)

// DefaultCompiler is the strategy used when settings name none.
const DefaultCompiler = "esbuild"

// Settings are the loader options a bundler passes for one file.
type Settings struct {
	// Context is the absolute build context directory.
	Context string
	// SourceMap enables source map output.
	SourceMap bool
	// Compiler names the compiler strategy.
	Compiler string
	// ConfigFile is an explicit project config path relative to Context.
	ConfigFile string
	// IgnoreWarnings lists diagnostic codes dropped from emit-time reports.
	IgnoreWarnings []int
	// CompilerOptions override the project's compiler options.
	CompilerOptions map[string]any
	// Checker is the external type checker command line used by the tsc strategy.
	Checker []string
}

type query struct {
	Compiler        string         `json:"compiler"`
	ConfigFile      string         `json:"configFile,omitempty"`
	IgnoreWarnings  []int          `json:"ignoreWarnings,omitempty"`
	CompilerOptions map[string]any `json:"compilerOptions,omitempty"`
	Checker         []string       `json:"checker,omitempty"`
}

// CompilerName returns the configured strategy name or the default.
func (s Settings) CompilerName() string {
	if s.Compiler == "" {
		return DefaultCompiler
	}
	return s.Compiler
}

// Key derives the instance key. Settings that differ only in the order of
// IgnoreWarnings or CompilerOptions produce equal keys.
func (s Settings) Key() domain.InstanceKey {
	ignore := slices.Clone(s.IgnoreWarnings)
	slices.Sort(ignore)
	ignore = slices.Compact(ignore)

	q := query{
		Compiler:        s.CompilerName(),
		ConfigFile:      s.ConfigFile,
		IgnoreWarnings:  ignore,
		CompilerOptions: s.CompilerOptions,
		Checker:         s.Checker,
	}
	// encoding/json writes map keys in sorted order.
	data, err := json.Marshal(q)
	if err != nil {
		data = []byte(q.Compiler)
	}
	return domain.InstanceKey{
		Context:   s.Context,
		SourceMap: s.SourceMap,
		Query:     string(data),
	}
}
