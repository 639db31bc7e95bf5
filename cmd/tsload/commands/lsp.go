package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/tsload/internal/app"
)

func (c *CLI) newLSPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Run a language server publishing diagnostics over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			compiler, _ := cmd.Flags().GetString("compiler")
			project, _ := cmd.Flags().GetString("project")

			return c.app.ServeLSP(cmd.Context(), app.LSPOptions{
				Compiler:   compiler,
				ConfigFile: project,
			})
		},
	}
	addLoaderFlags(cmd)
	return cmd
}
