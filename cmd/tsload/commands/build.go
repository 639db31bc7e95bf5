package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/tsload/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [entry-points...]",
		Short: "Bundle the entry points",
		Long: "Bundle the entry points listed on the command line, or those in tsload.yaml.\n" +
			"With --watch the bundle is rebuilt whenever a file below the project root changes.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			watch, _ := cmd.Flags().GetBool("watch")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")
			outfile, _ := cmd.Flags().GetString("outfile")
			outdir, _ := cmd.Flags().GetString("outdir")
			sourcemap, _ := cmd.Flags().GetBool("sourcemap")
			compiler, _ := cmd.Flags().GetString("compiler")
			project, _ := cmd.Flags().GetString("project")
			ignore, _ := cmd.Flags().GetIntSlice("ignore-warnings")

			// If --ci is set, override output-mode to "linear"
			if ci {
				outputMode = "linear"
			}

			return c.app.Build(cmd.Context(), app.BuildOptions{
				EntryPoints:    args,
				Outfile:        outfile,
				Outdir:         outdir,
				Sourcemap:      sourcemap,
				Compiler:       compiler,
				ConfigFile:     project,
				IgnoreWarnings: ignore,
				Watch:          watch,
				OutputMode:     outputMode,
			})
		},
	}
	cmd.Flags().BoolP("watch", "w", false, "Rebuild on file changes")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode in watch mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	cmd.Flags().String("outfile", "", "Write the bundle to this file")
	cmd.Flags().String("outdir", "", "Write one bundle per entry point to this directory")
	cmd.Flags().BoolP("sourcemap", "s", false, "Emit linked source maps")
	addLoaderFlags(cmd)
	addIgnoreFlag(cmd)
	cmd.MarkFlagsMutuallyExclusive("outfile", "outdir")
	return cmd
}
