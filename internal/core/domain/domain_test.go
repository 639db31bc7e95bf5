package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsload/internal/core/domain"
)

func TestDiagnostic_Format(t *testing.T) {
	tests := []struct {
		name string
		diag domain.Diagnostic
		want string
	}{
		{
			name: "file attached",
			diag: domain.Diagnostic{
				Category: domain.Semantic,
				File:     "/p/src/a.ts",
				Line:     2,
				Column:   4,
				Message:  "Cannot find name 'foo'.",
				Code:     domain.CodeCannotFindName,
			},
			want: "(3,5): Cannot find name 'foo'. (2304)",
		},
		{
			name: "global",
			diag: domain.Diagnostic{
				Category: domain.Global,
				Message:  "Unknown compiler option 'bogus'.",
				Code:     domain.CodeUnknownOption,
			},
			want: "Unknown compiler option 'bogus'. (5023)",
		},
		{
			name: "no code",
			diag: domain.Diagnostic{File: "/p/a.ts", Message: "oops"},
			want: "(1,1): oops",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.diag.Format())
		})
	}
}

func TestDiagnosticCategory_String(t *testing.T) {
	assert.Equal(t, "global", domain.Global.String())
	assert.Equal(t, "syntactic", domain.Syntactic.String())
	assert.Equal(t, "semantic", domain.Semantic.String())
	assert.Equal(t, "category(9)", domain.DiagnosticCategory(9).String())
}

func TestFilterCodes(t *testing.T) {
	diags := []domain.Diagnostic{
		{Code: 2304},
		{Code: 2307},
		{Code: 2304},
	}

	assert.Len(t, domain.FilterCodes(diags, nil), 3)

	got := domain.FilterCodes(diags, []int{2304})
	require.Len(t, got, 1)
	assert.Equal(t, 2307, got[0].Code)
}

func TestModuleRequest(t *testing.T) {
	tests := []struct {
		name    string
		context string
		path    string
		want    string
	}{
		{name: "child", context: "/p", path: "/p/src/a.ts", want: "./src/a.ts"},
		{name: "sibling", context: "/p/app", path: "/p/lib/x.d.ts", want: "../lib/x.d.ts"},
		{name: "same dir", context: "/p", path: "/p/a.ts", want: "./a.ts"},
		{name: "relative path", context: "/p", path: "a.ts", want: "a.ts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ModuleRequest(tt.context, tt.path))
		})
	}
}

func TestNewReport(t *testing.T) {
	d := domain.Diagnostic{
		Category: domain.Syntactic,
		File:     "/p/src/a.ts",
		Line:     0,
		Column:   9,
		Message:  "'}' expected.",
		Code:     domain.CodeExpected,
	}

	r := domain.NewReport("/p", d)
	assert.Equal(t, "(1,10): '}' expected. (1005)", r.Message)
	assert.Equal(t, "./src/a.ts", r.File)
	assert.Equal(t, "./src/a.ts (1,10): '}' expected. (1005)", r.Error())

	global := domain.NewReport("/p", domain.Diagnostic{Message: "bad", Code: 5083})
	assert.Empty(t, global.File)
	assert.Equal(t, "bad (5083)", global.Error())
}

func TestIsDefinition(t *testing.T) {
	assert.True(t, domain.IsDefinition("/p/types.d.ts"))
	assert.True(t, domain.IsDefinition("/p/types.d.mts"))
	assert.True(t, domain.IsDefinition("/p/types.d.cts"))
	assert.False(t, domain.IsDefinition("/p/a.ts"))
	assert.False(t, domain.IsDefinition("/p/d.ts.js"))

	assert.True(t, domain.IsSource("/p/a.tsx"))
	assert.True(t, domain.IsSource("/p/a.d.ts"))
	assert.False(t, domain.IsSource("/p/a.js"))
}

func TestInvocation_Dependencies(t *testing.T) {
	inv := domain.NewInvocation("/p/a.ts")
	inv.AddDependency("/p/b.ts")
	inv.AddDependency("/p/a.ts")
	inv.AddDependency("/p/types.d.ts")
	inv.AddDependency("/p/b.ts")

	assert.Equal(t, []string{"/p/b.ts", "/p/types.d.ts"}, inv.Dependencies())

	var nilInv *domain.Invocation
	nilInv.AddDependency("/p/x.ts")
	assert.Nil(t, nilInv.Dependencies())

	var zero domain.Invocation
	zero.AddDependency("/p/x.ts")
	assert.Equal(t, []string{"/p/x.ts"}, zero.Dependencies())
}

func TestInstanceKey_ID(t *testing.T) {
	a := domain.InstanceKey{Context: "/p", SourceMap: true, Query: `{"compiler":"esbuild"}`}
	b := a
	c := a
	c.SourceMap = false

	assert.Equal(t, a.ID(), b.ID())
	assert.NotEqual(t, a.ID(), c.ID())
	assert.NotEmpty(t, a.ID())
}

func TestEmitOutput_Artifacts(t *testing.T) {
	out := domain.EmitOutput{OutputFiles: []domain.OutputFile{
		{Name: "a.js.map", Text: "{}"},
		{Name: "a.js", Text: "code"},
	}}

	js, ok := out.JavaScript()
	require.True(t, ok)
	assert.Equal(t, "code", js.Text)

	m, ok := out.Map()
	require.True(t, ok)
	assert.Equal(t, "{}", m.Text)

	_, ok = domain.EmitOutput{}.JavaScript()
	assert.False(t, ok)
}

func TestSourceMap_Rebase(t *testing.T) {
	m := domain.SourceMap{Version: 3, File: "out.js", SourceRoot: "x", Sources: []string{"<stdin>"}}
	m.Rebase("/p/a.ts", "let a = 1")

	assert.Equal(t, "/p/a.ts", m.File)
	assert.Empty(t, m.SourceRoot)
	assert.Equal(t, []string{"/p/a.ts"}, m.Sources)
	require.Len(t, m.SourcesContent, 1)
	assert.Equal(t, "let a = 1", *m.SourcesContent[0])
}

func TestParseCompilerOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		opts, diags := domain.ParseCompilerOptions(domain.DefaultOptions())
		assert.Empty(t, diags)
		assert.Equal(t, "es2015", opts.Target)
		assert.Equal(t, "commonjs", opts.Module)
	})

	t.Run("layering", func(t *testing.T) {
		raw := domain.MergeOptions(
			domain.DefaultOptions(),
			map[string]any{"target": "ES2020", "jsx": "react"},
			nil,
			map[string]any{"sourceMap": true, "useDefineForClassFields": false},
		)
		opts, diags := domain.ParseCompilerOptions(raw)
		assert.Empty(t, diags)
		assert.Equal(t, "es2020", opts.Target)
		assert.Equal(t, "react", opts.JSX)
		assert.True(t, opts.SourceMap)
		require.NotNil(t, opts.UseDefineForClassFields)
		assert.False(t, *opts.UseDefineForClassFields)
	})

	t.Run("invalid values", func(t *testing.T) {
		opts, diags := domain.ParseCompilerOptions(map[string]any{
			"target": "es1999",
			"bogus":  1,
		})
		assert.Equal(t, "es2015", opts.Target)
		require.Len(t, diags, 2)
		assert.Equal(t, domain.CodeUnknownOption, diags[0].Code)
		assert.Equal(t, domain.CodeInvalidOptionValue, diags[1].Code)
		assert.Equal(t, domain.Global, diags[1].Category)
	})
}

func TestConfig_Defaults(t *testing.T) {
	cfg := domain.DefaultConfig("/p")
	assert.Equal(t, "/p", cfg.Root)
	assert.Equal(t, domain.DefaultDebounce, cfg.Debounce)
	assert.True(t, cfg.Bundle)
	assert.Empty(t, cfg.EntryPoints)
}

func TestPath_Interned(t *testing.T) {
	a := domain.NewPath("/p/a.ts")
	b := domain.NewPaths([]string{"/p/a.ts"})[0]
	assert.Equal(t, a, b)
	assert.Equal(t, "/p/a.ts", b.String())
	assert.Equal(t, a.Handle(), b.Handle())
}
