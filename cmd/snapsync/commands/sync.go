package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/snapsync/internal/app"
)

func (c *CLI) newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync <solution-checksum>",
		Short: "Synchronize a solution snapshot and all of its project documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.SyncSolution(cmd.Context(), args[0], syncOptions(cmd))
		},
	}
	addSyncFlags(cmd)
	return cmd
}

func (c *CLI) newSyncProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync-projects <project-checksum>...",
		Short: "Synchronize project nodes and their documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.SyncProjects(cmd.Context(), args, syncOptions(cmd))
		},
	}
	addSyncFlags(cmd)
	return cmd
}

func (c *CLI) newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch <checksum>...",
		Short: "Fetch objects into the local cache without descending into them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.SyncAssets(cmd.Context(), args, syncOptions(cmd))
		},
	}
	addSyncFlags(cmd)
	return cmd
}

func addSyncFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("remote", "r", "", "Address of the asset server")
	cmd.Flags().String("cache-dir", "", "Directory of the local asset cache")
	cmd.Flags().Duration("timeout", 0, "Timeout of a single batch fetch")
	cmd.Flags().Int("batch-size", 0, "Number of checksums sent in one network call")
	cmd.Flags().IntP("parallelism", "p", 0, "Number of project nodes resolved concurrently")
	cmd.Flags().Bool("document-contents", false, "Also fetch the contents of every document")
}

func syncOptions(cmd *cobra.Command) app.SyncOptions {
	flags := cmd.Flags()
	opts := app.SyncOptions{ConfigPath: configPath(cmd)}
	opts.Address, _ = flags.GetString("remote")
	opts.CacheDir, _ = flags.GetString("cache-dir")
	opts.Timeout, _ = flags.GetDuration("timeout")
	opts.MaxBatchSize, _ = flags.GetInt("batch-size")
	opts.ProjectParallelism, _ = flags.GetInt("parallelism")
	if flags.Changed("document-contents") {
		enabled, _ := flags.GetBool("document-contents")
		opts.DocumentContents = &enabled
	}
	return opts
}

