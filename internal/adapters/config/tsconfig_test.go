package config_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsload/internal/adapters/config"
	"go.trai.ch/tsload/internal/adapters/fs"
	"go.trai.ch/tsload/internal/core/domain"
)

func resolve(t *testing.T, files map[string]string, dir, configFile string) (*domain.Project, error) {
	t.Helper()
	resolver := config.NewResolver(fs.NewMapFSAdapter("/project", mapFS(files)))
	return resolver.Resolve(dir, configFile)
}

func TestResolver_NoConfig(t *testing.T) {
	t.Parallel()

	project, err := resolve(t, map[string]string{"src/a.ts": ""}, "/project/src", "")
	require.NoError(t, err)
	assert.Nil(t, project)
}

func TestResolver_DefaultInclude(t *testing.T) {
	t.Parallel()

	project, err := resolve(t, map[string]string{
		"tsconfig.json": `{
			// comments are allowed
			"compilerOptions": {"target": "es2020",},
		}`,
		"src/b.ts":              "",
		"src/a.tsx":             "",
		"src/types.d.ts":        "",
		"src/readme.md":         "",
		"node_modules/x/y.d.ts": "",
	}, "/project/src", "")
	require.NoError(t, err)
	require.NotNil(t, project)

	assert.Equal(t, "/project/tsconfig.json", project.ConfigPath)
	assert.Equal(t, "/project", project.Dir)
	assert.Equal(t, map[string]any{"target": "es2020"}, project.Options)
	assert.Equal(t, []string{
		"/project/src/a.tsx",
		"/project/src/b.ts",
		"/project/src/types.d.ts",
	}, project.Files)
}

func TestResolver_IncludeExclude(t *testing.T) {
	t.Parallel()

	project, err := resolve(t, map[string]string{
		"tsconfig.json": `{
			"files": ["globals.d.ts"],
			"include": ["src"],
			"exclude": ["src/**/*.test.ts", "src/generated"]
		}`,
		"globals.d.ts":          "",
		"src/a.ts":              "",
		"src/a.test.ts":         "",
		"src/generated/g.ts":    "",
		"src/nested/deep/c.mts": "",
		"other/d.ts":            "",
	}, "/project", "")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/project/globals.d.ts",
		"/project/src/a.ts",
		"/project/src/nested/deep/c.mts",
	}, project.Files)
}

func TestResolver_FilesOnly(t *testing.T) {
	t.Parallel()

	project, err := resolve(t, map[string]string{
		"tsconfig.json": `{"files": ["src/a.ts"]}`,
		"src/a.ts":      "",
		"src/b.ts":      "",
	}, "/project", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"/project/src/a.ts"}, project.Files)
}

func TestResolver_Extends(t *testing.T) {
	t.Parallel()

	project, err := resolve(t, map[string]string{
		"configs/base.json": `{
			"compilerOptions": {"target": "es5", "strict": true},
			"include": ["../lib"]
		}`,
		"tsconfig.json": `{
			"extends": "./configs/base",
			"compilerOptions": {"target": "es2022"}
		}`,
		"lib/a.ts": "",
		"src/b.ts": "",
	}, "/project", "")
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"target": "es2022", "strict": true}, project.Options)
	assert.Equal(t, []string{"/project/lib/a.ts"}, project.Files)
}

func TestResolver_ExtendsPackage(t *testing.T) {
	t.Parallel()

	project, err := resolve(t, map[string]string{
		"node_modules/@tsconfig/node20/tsconfig.json": `{"compilerOptions": {"module": "node16"}}`,
		"tsconfig.json": `{"extends": "@tsconfig/node20", "files": ["a.ts"]}`,
		"a.ts":          "",
	}, "/project", "")
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"module": "node16"}, project.Options)
}

func TestResolver_ExtendsCycle(t *testing.T) {
	t.Parallel()

	_, err := resolve(t, map[string]string{
		"a.json":        `{"extends": "./b.json"}`,
		"b.json":        `{"extends": "./a.json"}`,
		"tsconfig.json": `{"extends": "./a.json"}`,
	}, "/project", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrProjectConfigCycle))
}

func TestResolver_ExplicitConfigFile(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"tsconfig.build.json": `{"compilerOptions": {"jsx": "react"}, "include": ["src/**/*"]}`,
		"src/a.ts":            "",
	}

	project, err := resolve(t, files, "/project", "tsconfig.build.json")
	require.NoError(t, err)
	assert.Equal(t, "/project/tsconfig.build.json", project.ConfigPath)
	assert.Equal(t, []string{"/project/src/a.ts"}, project.Files)

	_, err = resolve(t, files, "/project", "missing.json")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrProjectConfigNotFound))
}

func TestResolver_ParseError(t *testing.T) {
	t.Parallel()

	_, err := resolve(t, map[string]string{"tsconfig.json": `{"compilerOptions": `}, "/project", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrProjectConfigParseFailed.Error())
}

func TestResolver_InvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := resolve(t, map[string]string{"tsconfig.json": `{"include": ["src/[a"]}`}, "/project", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidIncludePattern))
}
