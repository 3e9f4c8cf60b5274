package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/snapsync/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of snapsync",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "snapsync version %s\n", build.Version)
		},
	}
}
