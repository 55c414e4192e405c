package commands

import (
	"github.com/spf13/cobra"
	"go.rok.dev/rok/internal/scaffold"
)

func (c *CLI) newNewCmd() *cobra.Command {
	var (
		opts   scaffold.Options
		labels string
	)

	cmd := &cobra.Command{
		Use:   "new <dir>",
		Short: "Create a new project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("labels") {
				parsed, err := scaffold.ParseLabels(labels)
				if err != nil {
					return err
				}
				opts.Labels = parsed
			}
			return c.app.NewProject(args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "The project's name")
	cmd.Flags().StringVar(&opts.Description, "description", "", "The description of the project")
	cmd.Flags().StringVar(&opts.License, "license", "", "The license of the project, 'none' for no license")
	cmd.Flags().StringVar(&opts.Maintainer, "maintainer", "", "The maintainer of this project")
	cmd.Flags().StringVar(&labels, "labels", "", "A comma-separated list of labels to apply to this project")
	cmd.Flags().StringVar(&opts.LuaVersion, "lua-versions", "", "A version constraint on the required Lua version, e.g. '>= 5.1'")

	return cmd
}
