package esbuild

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/tsload/internal/core/domain"
)

var targets = map[string]api.Target{
	"es3":    api.ES5,
	"es5":    api.ES5,
	"es6":    api.ES2015,
	"es2015": api.ES2015,
	"es2016": api.ES2016,
	"es2017": api.ES2017,
	"es2018": api.ES2018,
	"es2019": api.ES2019,
	"es2020": api.ES2020,
	"es2021": api.ES2021,
	"es2022": api.ES2022,
	"es2023": api.ES2023,
	"es2024": api.ES2024,
	"esnext": api.ESNext,
}

// optionDiagnostics reports options the transform cannot honour.
func optionDiagnostics(opts domain.CompilerOptions) []domain.Diagnostic {
	if opts.Target != "es3" {
		return nil
	}
	return []domain.Diagnostic{{
		Category: domain.Global,
		Message:  fmt.Sprintf("Target '%s' is not supported; emitting es5.", opts.Target),
		Code:     domain.CodeUnsupportedTarget,
	}}
}

func loaderFor(path string) api.Loader {
	if strings.HasSuffix(path, ".tsx") {
		return api.LoaderTSX
	}
	return api.LoaderTS
}

func formatFor(module string) api.Format {
	switch module {
	case "commonjs", "node16", "node18", "nodenext":
		return api.FormatCommonJS
	case "es6", "es2015", "es2020", "es2022", "esnext", "preserve":
		return api.FormatESModule
	default:
		return api.FormatDefault
	}
}

// transformOptions translates compiler options for one file.
func transformOptions(path string, opts domain.CompilerOptions) api.TransformOptions {
	t := api.TransformOptions{
		Sourcefile: path,
		Loader:     loaderFor(path),
		Target:     api.ES2015,
		Format:     formatFor(opts.Module),
		LogLevel:   api.LogLevelSilent,
	}
	if target, ok := targets[opts.Target]; ok {
		t.Target = target
	}
	if opts.SourceMap {
		t.Sourcemap = api.SourceMapExternal
		t.SourcesContent = api.SourcesContentInclude
	}

	switch opts.JSX {
	case "preserve", "react-native":
		t.JSX = api.JSXPreserve
	case "react-jsx":
		t.JSX = api.JSXAutomatic
	case "react-jsxdev":
		t.JSX = api.JSXAutomatic
		t.JSXDev = true
	default:
		t.JSX = api.JSXTransform
	}
	t.JSXFactory = opts.JSXFactory
	t.JSXFragment = opts.JSXFragmentFactory
	t.TsconfigRaw = tsconfigRaw(opts)

	return t
}

type rawCompilerOptions struct {
	ExperimentalDecorators  bool   `json:"experimentalDecorators,omitempty"`
	UseDefineForClassFields *bool  `json:"useDefineForClassFields,omitempty"`
	PreserveValueImports    bool   `json:"preserveValueImports,omitempty"`
	VerbatimModuleSyntax    bool   `json:"verbatimModuleSyntax,omitempty"`
	JSXImportSource         string `json:"jsxImportSource,omitempty"`
}

// tsconfigRaw carries the options the transform reads from tsconfig.json.
func tsconfigRaw(opts domain.CompilerOptions) string {
	co := rawCompilerOptions{
		ExperimentalDecorators:  opts.ExperimentalDecorators,
		UseDefineForClassFields: opts.UseDefineForClassFields,
		PreserveValueImports:    opts.PreserveValueImports,
		VerbatimModuleSyntax:    opts.VerbatimModuleSyntax,
	}
	if s, ok := opts.Raw["jsxImportSource"].(string); ok {
		co.JSXImportSource = s
	}
	data, err := json.Marshal(struct {
		CompilerOptions rawCompilerOptions `json:"compilerOptions"`
	}{co})
	if err != nil {
		return ""
	}
	return string(data)
}

// fingerprint identifies the options that affect emitted output.
func fingerprint(opts domain.CompilerOptions) string {
	data, err := json.Marshal(opts.Raw)
	if err != nil {
		return opts.Target + "/" + opts.Module
	}
	return string(data)
}

// outputName maps a source path to its emitted JavaScript name.
func outputName(path string) string {
	for _, ext := range []string{".tsx", ".mts", ".cts", ".ts"} {
		if strings.HasSuffix(path, ext) {
			base := strings.TrimSuffix(path, ext)
			switch ext {
			case ".mts":
				return base + ".mjs"
			case ".cts":
				return base + ".cjs"
			default:
				return base + ".js"
			}
		}
	}
	return path + ".js"
}
