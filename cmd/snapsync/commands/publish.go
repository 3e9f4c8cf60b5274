package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/snapsync/internal/app"
)

func (c *CLI) newPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish <dir>",
		Short: "Store the snapshot of a solution directory and print its root checksum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _ := cmd.Flags().GetString("store")
			root, err := c.app.Publish(cmd.Context(), args[0], app.PublishOptions{
				ConfigPath: configPath(cmd),
				Store:      store,
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), root.String())
			return err
		},
	}
	cmd.Flags().StringP("store", "s", "", "Directory of the snapshot store")
	return cmd
}
