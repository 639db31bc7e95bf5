package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsload/cmd/tsload/commands"
	"go.trai.ch/tsload/internal/app"
	"go.trai.ch/tsload/internal/build"
)

type mockApp struct {
	buildFunc func(ctx context.Context, opts app.BuildOptions) error
	checkFunc func(ctx context.Context, opts app.CheckOptions) error
	cleanFunc func(ctx context.Context) error
	lspFunc   func(ctx context.Context, opts app.LSPOptions) error
}

func (m *mockApp) Build(ctx context.Context, opts app.BuildOptions) error {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Check(ctx context.Context, opts app.CheckOptions) error {
	if m.checkFunc != nil {
		return m.checkFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx)
	}
	return nil
}

func (m *mockApp) ServeLSP(ctx context.Context, opts app.LSPOptions) error {
	if m.lspFunc != nil {
		return m.lspFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Build(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.BuildOptions
		called := false

		mock := &mockApp{
			buildFunc: func(_ context.Context, opts app.BuildOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"build", "src/index.ts", "src/worker.ts",
			"--watch", "--sourcemap",
			"--outdir", "out",
			"--compiler", "tsc",
			"--project", "tsconfig.build.json",
			"--ignore-warnings", "2307,6133",
			"--ci",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, []string{"src/index.ts", "src/worker.ts"}, captured.EntryPoints)
		assert.True(t, captured.Watch)
		assert.True(t, captured.Sourcemap)
		assert.Equal(t, "out", captured.Outdir)
		assert.Empty(t, captured.Outfile)
		assert.Equal(t, "tsc", captured.Compiler)
		assert.Equal(t, "tsconfig.build.json", captured.ConfigFile)
		assert.Equal(t, []int{2307, 6133}, captured.IgnoreWarnings)
		assert.Equal(t, "linear", captured.OutputMode)
	})

	t.Run("defaults output mode to auto", func(t *testing.T) {
		var captured app.BuildOptions
		mock := &mockApp{
			buildFunc: func(_ context.Context, opts app.BuildOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "auto", captured.OutputMode)
		assert.Empty(t, captured.EntryPoints)
		assert.False(t, captured.Watch)
	})

	t.Run("rejects outfile with outdir", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ app.BuildOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"build", "--outfile", "a.js", "--outdir", "out"})

		require.Error(t, cli.Execute(context.Background()))
	})

	t.Run("returns error on build failure", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ app.BuildOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Check(t *testing.T) {
	var captured app.CheckOptions
	mock := &mockApp{
		checkFunc: func(_ context.Context, opts app.CheckOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"check", "src/a.ts", "-c", "esbuild", "-p", "tsconfig.json", "--ignore-warnings", "2304"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, []string{"src/a.ts"}, captured.Files)
	assert.Equal(t, "esbuild", captured.Compiler)
	assert.Equal(t, "tsconfig.json", captured.ConfigFile)
	assert.Equal(t, []int{2304}, captured.IgnoreWarnings)
}

func TestCommands_LSP(t *testing.T) {
	var captured app.LSPOptions
	mock := &mockApp{
		lspFunc: func(_ context.Context, opts app.LSPOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"lsp", "--compiler", "tsc"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "tsc", captured.Compiler)
}

func TestCommands_Clean(t *testing.T) {
	called := false
	mock := &mockApp{
		cleanFunc: func(context.Context) error {
			called = true
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"clean"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, called)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "tsload version "+build.Version)
	assert.Contains(t, buf.String(), "commit: "+build.Commit)
}

func TestCommands_VersionShort(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version", "--short"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, build.Version+"\n", buf.String())
}
