package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"go.trai.ch/mirror/internal/core/domain"
)

func (c *CLI) newCatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <path>",
		Short: "Print a file from the session root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			syncer, err := c.connect(cmd.Context())
			if err != nil {
				return err
			}

			file := syncer.ReadFile(cmd.Context(), args[0])
			if file == nil {
				return zerr.With(zerr.New("file not found"), "path", args[0])
			}

			out := cmd.OutOrStdout()
			if file.Kind == domain.KindBinary {
				_, err = out.Write(file.Data)
				return err
			}
			_, err = out.Write([]byte(file.Text))
			return err
		},
	}
}
