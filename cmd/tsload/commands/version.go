package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/tsload/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			if short {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), build.Version)
				return
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "tsload %s\n", build.Summary())
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")
	return cmd
}
