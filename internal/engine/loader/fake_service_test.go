package loader_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
)

// fakeCompiler builds services that treat brace balance as syntax and the
// identifier "undeclared" as a type error.
type fakeCompiler struct {
	mu       sync.Mutex
	failures int
	services int
	emitted  []string // path@version for every emit
}

func (c *fakeCompiler) Name() string { return "esbuild" }

func (c *fakeCompiler) NewService(host ports.ServiceHost) (ports.LanguageService, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failures > 0 {
		c.failures--
		return nil, errors.New("service crashed")
	}
	c.services++
	return &fakeService{host: host, compiler: c}, nil
}

func (c *fakeCompiler) emits() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.emitted...)
}

type fakeService struct {
	host     ports.ServiceHost
	compiler *fakeCompiler
}

const referencePrefix = `/// <reference path="`

func (s *fakeService) EmitOutput(_ context.Context, inv *domain.Invocation, path string) (domain.EmitOutput, error) {
	snap, ok := s.host.ScriptSnapshot(inv, path)
	if !ok {
		return domain.EmitOutput{EmitSkipped: true}, nil
	}

	version, _ := s.host.ScriptVersion(path)
	s.compiler.mu.Lock()
	s.compiler.emitted = append(s.compiler.emitted, filepath.Base(path)+"@"+version)
	s.compiler.mu.Unlock()

	for _, line := range strings.Split(snap.Text, "\n") {
		if ref, ok := strings.CutPrefix(line, referencePrefix); ok {
			ref, _, _ = strings.Cut(ref, `"`)
			s.host.ScriptSnapshot(inv, filepath.Join(filepath.Dir(path), ref))
		}
	}

	if len(syntax(path, snap.Text)) > 0 {
		return domain.EmitOutput{EmitSkipped: true}, nil
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".js"
	var out domain.EmitOutput
	if s.host.CompilationSettings().SourceMap {
		out.OutputFiles = append(out.OutputFiles, domain.OutputFile{
			Name: name + ".map",
			Text: `{"version":3,"file":"` + name + `","sources":["input.ts"],"names":[],"mappings":"AAAA"}`,
		})
	}
	out.OutputFiles = append(out.OutputFiles, domain.OutputFile{Name: name, Text: "/* compiled */ " + snap.Text})
	return out, nil
}

func (s *fakeService) SyntacticDiagnostics(path string) []domain.Diagnostic {
	snap, ok := s.host.ScriptSnapshot(nil, path)
	if !ok {
		return nil
	}
	return syntax(path, snap.Text)
}

func (s *fakeService) SemanticDiagnostics(path string) []domain.Diagnostic {
	snap, ok := s.host.ScriptSnapshot(nil, path)
	if !ok {
		return nil
	}
	var diags []domain.Diagnostic
	for n, line := range strings.Split(snap.Text, "\n") {
		if col := strings.Index(line, "undeclared"); col >= 0 {
			diags = append(diags, domain.Diagnostic{
				Category: domain.Semantic,
				File:     path,
				Line:     n,
				Column:   col,
				Length:   len("undeclared"),
				Message:  "Cannot find name 'undeclared'.",
				Code:     domain.CodeCannotFindName,
			})
		}
	}
	return diags
}

func (s *fakeService) Program(_ context.Context) (domain.Program, error) {
	var p domain.Program
	for _, f := range s.host.ScriptFileNames() {
		if _, ok := s.host.ScriptSnapshot(nil, f); !ok {
			continue
		}
		p.Files = append(p.Files, f)
		p.Syntactic = append(p.Syntactic, s.SyntacticDiagnostics(f)...)
		p.Semantic = append(p.Semantic, s.SemanticDiagnostics(f)...)
	}
	return p, nil
}

func syntax(path, text string) []domain.Diagnostic {
	if strings.Count(text, "{") <= strings.Count(text, "}") {
		return nil
	}
	lines := strings.Split(text, "\n")
	last := len(lines) - 1
	return []domain.Diagnostic{{
		Category: domain.Syntactic,
		File:     path,
		Line:     last,
		Column:   len(lines[last]),
		Message:  "'}' expected.",
		Code:     domain.CodeExpected,
	}}
}
