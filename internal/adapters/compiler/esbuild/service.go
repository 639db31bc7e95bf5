package esbuild

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
)

var _ ports.LanguageService = (*Service)(nil)

// fileResult is the compilation of one file at one version.
type fileResult struct {
	version   int
	output    domain.EmitOutput
	syntactic []domain.Diagnostic
	semantic  []domain.Diagnostic
	imports   []importRef
}

// Service transpiles files one at a time and checks their relative imports.
// Results are memoized per file version. Callers serialize access.
type Service struct {
	host     ports.ServiceHost
	compiler *Compiler
	options  domain.CompilerOptions
	global   []domain.Diagnostic
	results  map[string]*fileResult
}

// EmitOutput compiles path. Definition files and files with syntax errors
// produce no output.
func (s *Service) EmitOutput(_ context.Context, inv *domain.Invocation, path string) (domain.EmitOutput, error) {
	r, ok := s.check(inv, path)
	if !ok {
		return domain.EmitOutput{EmitSkipped: true}, nil
	}
	return r.output, nil
}

// SyntacticDiagnostics returns the parse errors of path.
func (s *Service) SyntacticDiagnostics(path string) []domain.Diagnostic {
	r, ok := s.check(nil, path)
	if !ok {
		return nil
	}
	return r.syntactic
}

// SemanticDiagnostics returns the unresolved imports of path.
func (s *Service) SemanticDiagnostics(path string) []domain.Diagnostic {
	r, ok := s.check(nil, path)
	if !ok {
		return nil
	}
	return r.semantic
}

// Program checks every file known to the host.
func (s *Service) Program(ctx context.Context) (domain.Program, error) {
	program := domain.Program{Global: s.global}
	for _, path := range s.host.ScriptFileNames() {
		if err := ctx.Err(); err != nil {
			return domain.Program{}, err
		}
		if !domain.IsSource(path) {
			continue
		}
		r, ok := s.check(nil, path)
		if !ok {
			continue
		}
		program.Files = append(program.Files, path)
		program.Syntactic = append(program.Syntactic, r.syntactic...)
		program.Semantic = append(program.Semantic, r.semantic...)
	}
	return program, nil
}

// check returns the result for the current version of path, compiling it
// when the version changed. It returns false when the file does not exist.
func (s *Service) check(inv *domain.Invocation, path string) (*fileResult, bool) {
	snap, ok := s.host.ScriptSnapshot(inv, path)
	if !ok {
		delete(s.results, path)
		return nil, false
	}

	if r, ok := s.results[path]; ok && r.version == snap.Version {
		// Imports are re-resolved so the invocation records its dependencies.
		if inv != nil {
			s.resolveImports(inv, snap, r.imports)
		}
		return r, true
	}

	r := &fileResult{version: snap.Version, imports: scanImports(snap.Path, snap.Text)}
	r.output, r.syntactic = s.emit(snap)
	r.semantic = s.resolveImports(inv, snap, r.imports)
	s.results[path] = r
	return r, true
}

func (s *Service) emit(snap domain.Snapshot) (domain.EmitOutput, []domain.Diagnostic) {
	var key string
	if s.compiler.cache != nil && s.compiler.hasher != nil && !domain.IsDefinition(snap.Path) {
		key = s.compiler.hasher.Sum(Name, snap.Path, snap.Text, fingerprint(s.options))
		out, err := s.compiler.cache.Get(key)
		if err != nil {
			s.compiler.logger.Warn(fmt.Sprintf("emit cache read for %s: %v", snap.Path, err))
		} else if out != nil {
			return *out, nil
		}
	}

	result := api.Transform(snap.Text, transformOptions(snap.Path, s.options))

	syntactic := make([]domain.Diagnostic, 0, len(result.Errors))
	for _, msg := range result.Errors {
		syntactic = append(syntactic, toDiagnostic(snap.Path, msg))
	}
	if len(syntactic) > 0 || domain.IsDefinition(snap.Path) {
		return domain.EmitOutput{EmitSkipped: true}, syntactic
	}

	name := outputName(snap.Path)
	var out domain.EmitOutput
	if len(result.Map) > 0 {
		out.OutputFiles = append(out.OutputFiles, domain.OutputFile{Name: name + ".map", Text: string(result.Map)})
	}
	out.OutputFiles = append(out.OutputFiles, domain.OutputFile{Name: name, Text: string(result.Code)})

	if key != "" {
		if err := s.compiler.cache.Put(key, out); err != nil {
			s.compiler.logger.Warn(fmt.Sprintf("emit cache write for %s: %v", snap.Path, err))
		}
	}
	return out, nil
}

// resolveImports reads every import of snap through the host and reports the
// ones that resolve to no file.
func (s *Service) resolveImports(inv *domain.Invocation, snap domain.Snapshot, refs []importRef) []domain.Diagnostic {
	var diags []domain.Diagnostic
	dir := filepath.Dir(snap.Path)

	for _, ref := range refs {
		if s.resolve(inv, dir, ref) {
			continue
		}
		d := domain.Diagnostic{
			Category: domain.Semantic,
			File:     snap.Path,
			Line:     ref.Line,
			Column:   ref.Column,
			Length:   len(ref.Spec) + 2,
		}
		if ref.Reference {
			d.Message = fmt.Sprintf("File '%s' not found.", filepath.Join(dir, filepath.FromSlash(ref.Spec)))
			d.Code = domain.CodeFileNotFound
		} else {
			d.Message = fmt.Sprintf("Cannot find module '%s' or its corresponding type declarations.", ref.Spec)
			d.Code = domain.CodeCannotFindModule
		}
		diags = append(diags, d)
	}
	return diags
}

func (s *Service) resolve(inv *domain.Invocation, dir string, ref importRef) bool {
	paths := candidates(dir, ref.Spec)
	if ref.Reference {
		paths = []string{filepath.Join(dir, filepath.FromSlash(ref.Spec))}
	}
	for _, p := range paths {
		if _, ok := s.host.ScriptSnapshot(inv, p); ok {
			return true
		}
	}
	return false
}

func toDiagnostic(path string, msg api.Message) domain.Diagnostic {
	d := domain.Diagnostic{
		Category: domain.Syntactic,
		File:     path,
		Message:  msg.Text,
	}
	if strings.HasPrefix(msg.Text, "Expected ") {
		d.Code = domain.CodeExpected
	}
	if loc := msg.Location; loc != nil {
		d.Line = loc.Line - 1
		d.Column = loc.Column
		d.Length = loc.Length
	}
	return d
}
