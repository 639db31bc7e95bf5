package domain

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Default compiler options applied beneath every project configuration.
const (
	DefaultTarget = "es2015"
	DefaultModule = "commonjs"
)

// CompilerOptions is the subset of compiler options understood by the loader.
// Raw holds the merged option map the typed fields were read from.
type CompilerOptions struct {
	Target                  string
	Module                  string
	JSX                     string
	JSXFactory              string
	JSXFragmentFactory      string
	SourceMap               bool
	ExperimentalDecorators  bool
	UseDefineForClassFields *bool
	PreserveValueImports    bool
	VerbatimModuleSyntax    bool
	OutDir                  string
	Raw                     map[string]any
}

var validTargets = []string{
	"es3", "es5", "es6", "es2015", "es2016", "es2017", "es2018", "es2019",
	"es2020", "es2021", "es2022", "es2023", "es2024", "esnext",
}

var validModules = []string{
	"none", "commonjs", "amd", "umd", "system", "es6", "es2015", "es2020",
	"es2022", "esnext", "node16", "node18", "nodenext", "preserve",
}

var validJSX = []string{"preserve", "react", "react-jsx", "react-jsxdev", "react-native"}

// knownOptions lists the compiler options accepted without an unknown option
// diagnostic. Options outside the typed subset are passed through untouched.
var knownOptions = map[string]struct{}{}

func init() {
	for _, name := range []string{
		"allowArbitraryExtensions", "allowImportingTsExtensions", "allowJs",
		"allowSyntheticDefaultImports", "allowUmdGlobalAccess", "allowUnreachableCode",
		"allowUnusedLabels", "alwaysStrict", "baseUrl", "checkJs", "composite",
		"declaration", "declarationDir", "declarationMap", "downlevelIteration",
		"emitBOM", "emitDeclarationOnly", "emitDecoratorMetadata", "esModuleInterop",
		"exactOptionalPropertyTypes", "experimentalDecorators", "forceConsistentCasingInFileNames",
		"importHelpers", "incremental", "inlineSourceMap", "inlineSources",
		"isolatedModules", "jsx", "jsxFactory", "jsxFragmentFactory", "jsxImportSource",
		"lib", "module", "moduleDetection", "moduleResolution", "newLine", "noEmit",
		"noEmitHelpers", "noEmitOnError", "noFallthroughCasesInSwitch", "noImplicitAny",
		"noImplicitOverride", "noImplicitReturns", "noImplicitThis", "noLib",
		"noPropertyAccessFromIndexSignature", "noResolve", "noUncheckedIndexedAccess",
		"noUnusedLocals", "noUnusedParameters", "outDir", "outFile", "paths",
		"preserveConstEnums", "preserveValueImports", "removeComments",
		"resolveJsonModule", "rootDir", "rootDirs", "skipDefaultLibCheck", "skipLibCheck",
		"sourceMap", "sourceRoot", "strict", "strictBindCallApply", "strictFunctionTypes",
		"strictNullChecks", "strictPropertyInitialization", "stripInternal", "target",
		"tsBuildInfoFile", "typeRoots", "types", "useDefineForClassFields",
		"useUnknownInCatchVariables", "verbatimModuleSyntax",
	} {
		knownOptions[name] = struct{}{}
	}
}

// MergeOptions layers option maps from lowest to highest precedence.
// Later layers replace earlier keys; nil layers are skipped.
func MergeOptions(layers ...map[string]any) map[string]any {
	out := make(map[string]any)
	for _, layer := range layers {
		maps.Copy(out, layer)
	}
	return out
}

// DefaultOptions returns the option map applied beneath every project.
func DefaultOptions() map[string]any {
	return map[string]any{
		"target": DefaultTarget,
		"module": DefaultModule,
	}
}

// ParseCompilerOptions reads the typed subset out of raw.
// Invalid values are replaced by defaults and reported as global diagnostics.
func ParseCompilerOptions(raw map[string]any) (CompilerOptions, []Diagnostic) {
	opts := CompilerOptions{
		Target: DefaultTarget,
		Module: DefaultModule,
		Raw:    raw,
	}
	var diags []Diagnostic

	for _, name := range slices.Sorted(maps.Keys(raw)) {
		if _, ok := knownOptions[name]; !ok {
			diags = append(diags, Diagnostic{
				Category: Global,
				Message:  fmt.Sprintf("Unknown compiler option '%s'.", name),
				Code:     CodeUnknownOption,
			})
		}
	}

	if v, ok := enumOption(raw, "target", validTargets, &diags); ok {
		opts.Target = v
	}
	if v, ok := enumOption(raw, "module", validModules, &diags); ok {
		opts.Module = v
	}
	if v, ok := enumOption(raw, "jsx", validJSX, &diags); ok {
		opts.JSX = v
	}
	opts.JSXFactory = stringOption(raw, "jsxFactory")
	opts.JSXFragmentFactory = stringOption(raw, "jsxFragmentFactory")
	opts.OutDir = stringOption(raw, "outDir")
	opts.SourceMap = boolOption(raw, "sourceMap")
	opts.ExperimentalDecorators = boolOption(raw, "experimentalDecorators")
	opts.PreserveValueImports = boolOption(raw, "preserveValueImports")
	opts.VerbatimModuleSyntax = boolOption(raw, "verbatimModuleSyntax")
	if v, ok := raw["useDefineForClassFields"].(bool); ok {
		opts.UseDefineForClassFields = &v
	}

	return opts, diags
}

func enumOption(raw map[string]any, name string, valid []string, diags *[]Diagnostic) (string, bool) {
	v, present := raw[name]
	if !present || v == nil {
		return "", false
	}
	s, ok := v.(string)
	if ok {
		s = strings.ToLower(s)
		if slices.Contains(valid, s) {
			return s, true
		}
	}
	*diags = append(*diags, Diagnostic{
		Category: Global,
		Message: fmt.Sprintf("Argument for '--%s' option must be: %s.",
			name, "'"+strings.Join(valid, "', '")+"'"),
		Code: CodeInvalidOptionValue,
	})
	return "", false
}

func stringOption(raw map[string]any, name string) string {
	s, _ := raw[name].(string)
	return s
}

func boolOption(raw map[string]any, name string) bool {
	b, _ := raw[name].(bool)
	return b
}
