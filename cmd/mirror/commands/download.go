package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newDownloadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "download",
		Short: "Prepare an archive of the session root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			label, _ := cmd.Flags().GetString("label")

			syncer, err := c.connect(cmd.Context())
			if err != nil {
				return err
			}

			info := syncer.DownloadFiles(cmd.Context(), label)
			if info == nil {
				return zerr.New("failed to prepare download")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", info.FileName, info.URL)
			return nil
		},
	}
	cmd.Flags().StringP("label", "l", "", "Archive name, without extension")
	return cmd
}
