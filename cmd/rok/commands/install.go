package commands

import (
	"github.com/spf13/cobra"
	"go.rok.dev/rok/internal/app"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	var opts app.InstallOptions

	cmd := &cobra.Command{
		Use:   "install [rocks...]",
		Short: "Install rocks into the tree",
		Long: `Install the given rocks into the local tree. Each argument is a rock
name optionally followed by a version constraint, e.g. 'lpeg >= 1.0'.
Without arguments the dependencies of the current project are installed.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Install(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Pin, "pin", false, "Record the installed rocks as pinned")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Reinstall rocks even if they are already present")

	return cmd
}
