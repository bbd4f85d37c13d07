package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/zplane/scene"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Draw sin(z) over [-4,4]² with the square [1,2]×[1,2] and its image",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if show, _ := cmd.Flags().GetBool("print-scene"); show {
			_, err := cmd.OutOrStdout().Write(scene.DemoYAML())
			return err
		}
		return drawScene(cmd, scene.Demo())
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().Bool("print-scene", false, "Print the demo scene file instead of drawing it")
	addOutputFlags(demoCmd)
}
