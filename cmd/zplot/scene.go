package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/zplane/scene"
	"github.com/katalvlaran/zplane/zplot"
)

var sceneCmd = &cobra.Command{
	Use:   "scene FILE",
	Short: "Draw a scene described in a YAML or JSON file",
	Long: `Draws the grid and point sets of a scene file onto one figure and writes it
to the scene's output path, unless --out overrides it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := scene.Load(args[0])
		if err != nil {
			return err
		}
		return drawScene(cmd, sc)
	},
}

// drawScene builds sc and writes it to --out, or to the scene's own output
// path when --out was not given.
func drawScene(cmd *cobra.Command, sc *scene.Scene) error {
	fig, err := sc.Build(zplot.WithLogger(logger))
	if err != nil {
		return err
	}

	out := sc.Output.Path
	width, height := sc.Output.Size()
	if cmd.Flags().Changed("out") || out == "" {
		out, _ = cmd.Flags().GetString("out")
	}
	if cmd.Flags().Changed("width") {
		width, _ = cmd.Flags().GetFloat64("width")
	}
	if cmd.Flags().Changed("height") {
		height, _ = cmd.Flags().GetFloat64("height")
	}
	if title, _ := cmd.Flags().GetString("title"); title != "" {
		fig.SetTitle(title)
	}
	return saveFigure(cmd, fig, out, width, height)
}

func init() {
	rootCmd.AddCommand(sceneCmd)
	addOutputFlags(sceneCmd)
}
