package esbuild

import (
	"cmp"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// importRef is a module specifier or reference path found in a source file.
type importRef struct {
	Spec      string
	Line      int
	Column    int
	Reference bool
}

// importRecorder is the plugin name that marks recorded import warnings.
const importRecorder = "tsload-imports"

// scanTsconfig keeps imports whose bindings are only used as types, so they
// are checked like any other import. `import type` statements stay elided.
const scanTsconfig = `{"compilerOptions":{"verbatimModuleSyntax":true}}`

var referencePattern = regexp.MustCompile(`^\s*///\s*<reference\s+path\s*=\s*(["'])([^"'\n]+)["']`)

// scanImports lists the relative module specifiers esbuild records for text,
// and the reference paths of its header, in source order. Bare package
// specifiers are skipped. Text that does not parse has no imports.
func scanImports(path, text string) []importRef {
	refs := scanReferences(text)

	result := api.Build(api.BuildOptions{
		Stdin: &api.StdinOptions{
			Contents:   text,
			Sourcefile: path,
			ResolveDir: filepath.Dir(path),
			Loader:     loaderFor(path),
		},
		Bundle:      true,
		Write:       false,
		Platform:    api.PlatformNeutral,
		LogLevel:    api.LogLevelSilent,
		TsconfigRaw: scanTsconfig,
		Plugins:     []api.Plugin{recordImports()},
	})

	for _, msg := range result.Warnings {
		if msg.PluginName != importRecorder || msg.Location == nil {
			continue
		}
		refs = append(refs, importRef{
			Spec:   msg.Text,
			Line:   msg.Location.Line - 1,
			Column: msg.Location.Column,
		})
	}

	slices.SortFunc(refs, func(a, b importRef) int {
		return cmp.Or(cmp.Compare(a.Line, b.Line), cmp.Compare(a.Column, b.Column))
	})
	return refs
}

// recordImports marks every import external and reports each relative one as
// a warning, which esbuild locates at the import's path literal.
func recordImports() api.Plugin {
	return api.Plugin{
		Name: importRecorder,
		Setup: func(build api.PluginBuild) {
			build.OnResolve(api.OnResolveOptions{Filter: `.*`}, func(args api.OnResolveArgs) (api.OnResolveResult, error) {
				res := api.OnResolveResult{Path: args.Path, External: true}
				if args.Kind != api.ResolveEntryPoint && isRelative(args.Path) {
					res.Warnings = []api.Message{{Text: args.Path}}
				}
				return res, nil
			})
		},
	}
}

// scanReferences reads the triple-slash reference directives in the comment
// header before the first statement.
func scanReferences(text string) []importRef {
	var refs []importRef
	for line, raw := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(raw)
		switch {
		case trimmed == "":
		case strings.HasPrefix(trimmed, "//"):
			if m := referencePattern.FindStringSubmatchIndex(raw); m != nil {
				refs = append(refs, importRef{Spec: raw[m[4]:m[5]], Line: line, Column: m[2], Reference: true})
			}
		default:
			return refs
		}
	}
	return refs
}

func isRelative(spec string) bool {
	return strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../") || spec == "." || spec == ".."
}

// candidates lists the files a relative specifier may resolve to, in lookup order.
func candidates(fromDir, spec string) []string {
	base := filepath.Join(fromDir, filepath.FromSlash(spec))

	var out []string
	switch ext := filepath.Ext(base); ext {
	case "":
	case ".ts", ".tsx", ".mts", ".cts":
		return []string{base}
	case ".js", ".jsx":
		stem := strings.TrimSuffix(base, ext)
		out = append(out, stem+".ts", stem+".tsx", stem+".d.ts", base)
	case ".mjs":
		stem := strings.TrimSuffix(base, ext)
		out = append(out, stem+".mts", stem+".d.mts", base)
	case ".cjs":
		stem := strings.TrimSuffix(base, ext)
		out = append(out, stem+".cts", stem+".d.cts", base)
	default:
		out = append(out, base)
	}
	out = append(out, base+".ts", base+".tsx", base+".d.ts")
	for _, index := range []string{"index.ts", "index.tsx", "index.d.ts"} {
		out = append(out, filepath.Join(base, index))
	}
	return out
}
