package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/mirror/internal/core/domain"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Index the session root and print change events until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			syncer, err := c.connect(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			unsubscribe := syncer.Bus().Subscribe(func(e domain.ChangeEvent) {
				fmt.Fprintf(out, "%s %s %s\n",
					e.Timestamp.Format("15:04:05.000"),
					e.Type,
					strings.Join(e.Paths, " -> "),
				)
			})
			defer unsubscribe()

			fmt.Fprintln(out, "watching, press Ctrl+C to stop")
			<-cmd.Context().Done()
			return nil
		},
	}
}
