package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Index the session root and report what was found",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")

			syncer, err := c.connect(cmd.Context())
			if err != nil {
				return err
			}
			if force {
				if err := syncer.Index(cmd.Context(), true); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d files, %d directories (%s)\n",
				len(syncer.ListAllFiles()),
				len(syncer.ListAllDirectories()),
				syncer.Status(),
			)
			return nil
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Reindex even if already indexed")
	return cmd
}
