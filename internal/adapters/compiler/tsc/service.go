package tsc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
	"go.trai.ch/zerr"
)

// Service emits through the wrapped service and reports the checker's
// diagnostics. A checker run is reused until a file version changes.
type Service struct {
	ports.LanguageService

	host     ports.ServiceHost
	executor ports.Executor
	logger   ports.Logger

	stamp   string
	program *domain.Program
}

// SemanticDiagnostics returns the checker's diagnostics for path. Checker
// failures are logged and yield no diagnostics.
func (s *Service) SemanticDiagnostics(path string) []domain.Diagnostic {
	program, err := s.check(context.Background())
	if err != nil {
		s.logger.Error(err)
		return nil
	}
	var out []domain.Diagnostic
	for _, d := range program.Semantic {
		if d.File == path {
			out = append(out, d)
		}
	}
	return out
}

// Program merges the checker's diagnostics with the wrapped service's
// syntactic diagnostics.
func (s *Service) Program(ctx context.Context) (domain.Program, error) {
	base, err := s.LanguageService.Program(ctx)
	if err != nil {
		return domain.Program{}, err
	}
	checked, err := s.check(ctx)
	if err != nil {
		return domain.Program{}, err
	}

	base.Global = slices.Concat(base.Global, checked.Global)
	base.Semantic = checked.Semantic
	for _, d := range checked.Syntactic {
		if !slices.ContainsFunc(base.Syntactic, func(b domain.Diagnostic) bool {
			return b.File == d.File && b.Line == d.Line && b.Column == d.Column
		}) {
			base.Syntactic = append(base.Syntactic, d)
		}
	}
	return base, nil
}

func (s *Service) check(ctx context.Context) (*domain.Program, error) {
	stamp := s.versionStamp()
	if s.program != nil && stamp == s.stamp {
		return s.program, nil
	}

	cmd := s.command()
	var out bytes.Buffer
	runErr := s.executor.Execute(ctx, cmd, &out, &out)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	diags := parseOutput(cmd.Dir, out.String())
	if runErr != nil && len(diags) == 0 {
		return nil, zerr.With(
			zerr.With(zerr.Wrap(errors.Join(domain.ErrCheckerFailed, runErr), "checker produced no diagnostics"), "command", cmd.Name),
			"output", tail(out.String()),
		)
	}

	program := &domain.Program{}
	for _, d := range diags {
		switch d.Category {
		case domain.Global:
			program.Global = append(program.Global, d)
		case domain.Syntactic:
			program.Syntactic = append(program.Syntactic, d)
		default:
			program.Semantic = append(program.Semantic, d)
		}
	}

	s.stamp = stamp
	s.program = program
	return program, nil
}

// command builds the checker invocation for the host's project.
func (s *Service) command() domain.Command {
	line := s.host.CheckerCommand()
	if len(line) == 0 {
		line = DefaultCommand
	}
	dir := s.host.CurrentDirectory()

	args := slices.Clone(line[1:])
	args = append(args, "--noEmit", "--pretty", "false")
	if config := s.host.ConfigFilePath(); config != "" {
		args = append(args, "-p", config)
	} else {
		// Without a project every name was requested once; deleted files
		// have no live entry left.
		for _, f := range s.host.ScriptFileNames() {
			if _, live := s.host.ScriptVersion(f); live && domain.IsSource(f) {
				args = append(args, f)
			}
		}
	}

	return domain.Command{
		Name: line[0],
		Args: args,
		Dir:  dir,
		Env:  []string{"PATH=" + filepath.Join(dir, "node_modules", ".bin")},
	}
}

// versionStamp identifies the current content of every known file.
func (s *Service) versionStamp() string {
	var b strings.Builder
	for _, f := range s.host.ScriptFileNames() {
		v, _ := s.host.ScriptVersion(f)
		fmt.Fprintf(&b, "%s@%s\n", f, v)
	}
	return b.String()
}

func tail(s string) string {
	const limit = 512
	s = strings.TrimSpace(s)
	if len(s) > limit {
		return "…" + s[len(s)-limit:]
	}
	return s
}
