package commands

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.trai.ch/mirror/internal/core/ports"
)

func (c *CLI) newLsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls [path]",
		Short: "List a directory of the session root",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recursive, _ := cmd.Flags().GetBool("recursive")

			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			syncer, err := c.connect(cmd.Context())
			if err != nil {
				return err
			}

			if recursive {
				files := syncer.ListFilesRecursively(cmd.Context(), path, nil, nil)
				slices.Sort(files)
				for _, f := range files {
					fmt.Fprintln(cmd.OutOrStdout(), f)
				}
				return nil
			}

			entries := syncer.ReadDir(cmd.Context(), path)
			slices.SortFunc(entries, func(a, b ports.DirEntry) int {
				switch {
				case a.Name < b.Name:
					return -1
				case a.Name > b.Name:
					return 1
				default:
					return 0
				}
			})
			for _, e := range entries {
				name := e.Name
				if e.Kind == ports.EntryDirectory {
					name += "/"
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().BoolP("recursive", "r", false, "List files recursively")
	return cmd
}
