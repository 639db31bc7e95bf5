// Package commands implements the CLI commands for the tsload bundler.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/tsload/internal/app"
	"go.trai.ch/tsload/internal/build"
)

// CLI represents the command line interface for tsload.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, opts app.BuildOptions) error
	Check(ctx context.Context, opts app.CheckOptions) error
	Clean(ctx context.Context) error
	ServeLSP(ctx context.Context, opts app.LSPOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "tsload",
		Short:         "Bundle TypeScript through esbuild with per-file compilation and diagnostics",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate("{{.Name}} " + build.Summary() + "\n")
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newLSPCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// addLoaderFlags registers the flags that select and configure the loader instance.
func addLoaderFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("compiler", "c", "", "Compiler strategy: esbuild or tsc")
	cmd.Flags().StringP("project", "p", "", "Path to the tsconfig.json, relative to the project root")
}

// addIgnoreFlag registers the flag listing diagnostic codes to drop.
func addIgnoreFlag(cmd *cobra.Command) {
	cmd.Flags().IntSlice("ignore-warnings", nil, "Diagnostic codes to drop from reports")
}
