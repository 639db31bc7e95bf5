package ports

import (
	"context"

	"go.trai.ch/tsload/internal/core/domain"
)

//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks

// ServiceHost is the poll interface a compiler service uses to read the
// instance's files. Implementations must be safe to call while the owning
// instance holds its lock.
type ServiceHost interface {
	// ScriptFileNames returns the project's declared files followed by every
	// path requested so far, in first-request order.
	ScriptFileNames() []string

	// ScriptVersion returns the cached version of path.
	// It returns false when the path is unknown.
	ScriptVersion(path string) (string, bool)

	// ScriptSnapshot returns the content of path, reading it from disk when it
	// is not cached. It returns false and evicts any cached entry when the file
	// does not exist. A successful read for a path other than inv.File is
	// recorded as a dependency of inv. inv may be nil.
	ScriptSnapshot(inv *domain.Invocation, path string) (domain.Snapshot, bool)

	// CompilationSettings returns the merged compiler options.
	CompilationSettings() domain.CompilerOptions

	// CurrentDirectory returns the build context directory.
	CurrentDirectory() string

	// DefaultLibFileName returns the name of the default library declaration file.
	DefaultLibFileName() string

	// ConfigFilePath returns the resolved project config path, or "" when none was found.
	ConfigFilePath() string

	// CheckerCommand returns the external type checker command line, or nil for the default.
	CheckerCommand() []string
}

// LanguageService is an incremental compiler service.
type LanguageService interface {
	// EmitOutput compiles path on behalf of inv.
	EmitOutput(ctx context.Context, inv *domain.Invocation, path string) (domain.EmitOutput, error)

	// SyntacticDiagnostics returns parse problems for path.
	SyntacticDiagnostics(path string) []domain.Diagnostic

	// SemanticDiagnostics returns type level problems for path.
	SemanticDiagnostics(path string) []domain.Diagnostic

	// Program returns diagnostics for every file known to the host.
	Program(ctx context.Context) (domain.Program, error)
}

// Compiler is a named strategy that builds language services.
type Compiler interface {
	// Name returns the name the strategy is selected by.
	Name() string

	// NewService creates a language service reading files from host.
	NewService(host ServiceHost) (LanguageService, error)
}

// CompilerCatalog is the set of compiler strategies selectable by name.
type CompilerCatalog []Compiler

// Lookup returns the strategy registered under name.
func (c CompilerCatalog) Lookup(name string) (Compiler, bool) {
	for _, compiler := range c {
		if compiler.Name() == name {
			return compiler, true
		}
	}
	return nil, false
}
