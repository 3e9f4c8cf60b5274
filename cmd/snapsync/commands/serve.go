package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/snapsync/internal/app"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the snapshot store to remote synchronizers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			opts := app.ServeOptions{ConfigPath: configPath(cmd)}
			opts.Listen, _ = flags.GetString("listen")
			opts.Store, _ = flags.GetString("store")
			if flags.Changed("idle-timeout") {
				idle, _ := flags.GetDuration("idle-timeout")
				opts.IdleTimeout = &idle
			}
			return c.app.Serve(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringP("listen", "l", "", "Address to listen on")
	cmd.Flags().StringP("store", "s", "", "Directory of the snapshot store")
	cmd.Flags().Duration("idle-timeout", 0, "Shut down after this long without requests (0 disables)")
	return cmd
}
