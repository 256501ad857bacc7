package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/ship/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [target]",
		Short: "Build and package a player for a target",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			active, _ := cmd.Flags().GetBool("active")
			scenes, _ := cmd.Flags().GetStringArray("scene")

			if len(args) == 0 && !active {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			opts := app.BuildOptions{Active: active, Scenes: scenes}
			if len(args) == 1 {
				opts.Target = args[0]
			}

			_, err := c.app.Build(cmd.Context(), opts)
			return err
		},
	}
	cmd.Flags().BoolP("active", "a", false, "Build the currently active target")
	cmd.Flags().StringArrayP("scene", "s", nil, "Scene to build; repeatable, overrides the enabled scenes")
	return cmd
}

func (c *CLI) newPreProcessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preprocess",
		Short: "Render the project templates without building",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := c.app.PreProcess(cmd.Context())
			return err
		},
	}
}

func (c *CLI) newPackageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "package <target>",
		Short: "Package the existing output of a target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.app.Package(cmd.Context(), args[0])
			return err
		},
	}
}

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-render templates whenever they change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Watch(cmd.Context())
		},
	}
}
