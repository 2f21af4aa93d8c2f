// Package commands implements the CLI commands for the mirror sync
// engine.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/mirror/internal/app"
	"go.trai.ch/mirror/internal/build"
	syncengine "go.trai.ch/mirror/internal/engine/sync"
)

// CLI represents the command line interface for mirror.
type CLI struct {
	components *app.Components
	rootCmd    *cobra.Command
}

// New creates a new CLI instance with the given components.
func New(c *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:           "mirror",
		Short:         "A local mirror of a remote project tree",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	cli := &CLI{
		components: c,
		rootCmd:    rootCmd,
	}

	rootCmd.AddCommand(cli.newIndexCmd())
	rootCmd.AddCommand(cli.newLsCmd())
	rootCmd.AddCommand(cli.newCatCmd())
	rootCmd.AddCommand(cli.newWatchCmd())
	rootCmd.AddCommand(cli.newDownloadCmd())
	rootCmd.AddCommand(cli.newVersionCmd())

	return cli
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(out io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(out)
}

// connect opens the session against the configured transport and
// returns the indexed engine.
func (c *CLI) connect(ctx context.Context) (*syncengine.Syncer, error) {
	if s := c.components.App.Syncer(); s != nil {
		return s, nil
	}
	if err := c.components.App.Connect(ctx, c.components.FS, c.components.Stream); err != nil {
		return nil, err
	}
	return c.components.App.Syncer(), nil
}
