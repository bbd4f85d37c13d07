package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/zplane/scene"
	"github.com/katalvlaran/zplane/zexpr"
	"github.com/katalvlaran/zplane/zplot"
)

var pointsCmd = &cobra.Command{
	Use:     "points VALUE...",
	Short:   "Plot complex points, optionally mapped through a function",
	Example: `  zplot points 1+1i 1.5+1i 2+1i --name bottom --color red --func 'sin(z)' -o bottom.png`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		color, _ := cmd.Flags().GetString("color")
		src, _ := cmd.Flags().GetString("func")

		pts := make([]complex128, len(args))
		for i, a := range args {
			z, err := scene.ParseComplex(a)
			if err != nil {
				return err
			}
			pts[i] = z
		}

		opts := []zplot.Option{
			zplot.WithName(name),
			zplot.WithColor(color),
			zplot.WithLogger(logger),
		}
		if src != "" {
			fun, err := zexpr.Compile(src)
			if err != nil {
				return err
			}
			opts = append(opts, zplot.WithTransform(fun))
		}

		fig, err := zplot.PlotComplexPoints(pts, opts...)
		if err != nil {
			return err
		}
		return writeFigure(cmd, fig)
	},
}

func init() {
	rootCmd.AddCommand(pointsCmd)
	pointsCmd.Flags().String("name", "", "Trace name")
	pointsCmd.Flags().String("color", "", "Trace color (name or #rrggbb)")
	pointsCmd.Flags().StringP("func", "f", "", "Map the points through this function of z first")
	addOutputFlags(pointsCmd)
}
