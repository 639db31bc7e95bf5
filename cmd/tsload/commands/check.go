package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/tsload/internal/app"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Report diagnostics for the project without bundling",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			compiler, _ := cmd.Flags().GetString("compiler")
			project, _ := cmd.Flags().GetString("project")
			ignore, _ := cmd.Flags().GetIntSlice("ignore-warnings")

			return c.app.Check(cmd.Context(), app.CheckOptions{
				Files:          args,
				Compiler:       compiler,
				ConfigFile:     project,
				IgnoreWarnings: ignore,
			})
		},
	}
	addLoaderFlags(cmd)
	addIgnoreFlag(cmd)
	return cmd
}
