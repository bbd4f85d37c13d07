package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/zplane/cgrid"
	"github.com/katalvlaran/zplane/zexpr"
	"github.com/katalvlaran/zplane/zplot"
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Map a rectangular grid through a complex function",
	Example: `  zplot grid --func 'sin(z)' --x -4,4,1 --y -4,4,1 --reim im -o sin.png
  zplot grid --func '1/z' --x -2,2,0.5 --y -2,2,0.5 --steps 400 -o inv.svg`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, _ := cmd.Flags().GetString("func")
		xs, _ := cmd.Flags().GetString("x")
		ys, _ := cmd.Flags().GetString("y")
		steps, _ := cmd.Flags().GetInt("steps")
		reimS, _ := cmd.Flags().GetString("reim")
		workers, _ := cmd.Flags().GetInt("workers")

		fun, err := zexpr.Compile(src)
		if err != nil {
			return err
		}
		x, err := cgrid.ParseBound(xs)
		if err != nil {
			return err
		}
		y, err := cgrid.ParseBound(ys)
		if err != nil {
			return err
		}
		reim, err := zplot.ParseReim(reimS)
		if err != nil {
			return err
		}

		opts := []zplot.Option{
			zplot.WithSteps(steps),
			zplot.WithReim(reim),
			zplot.WithLogger(logger),
		}
		if workers > 1 {
			opts = append(opts, zplot.WithWorkers(workers))
		}
		fig, err := zplot.PlotZ(fun, x, y, opts...)
		if err != nil {
			return err
		}
		return writeFigure(cmd, fig)
	},
}

func init() {
	rootCmd.AddCommand(gridCmd)
	gridCmd.Flags().StringP("func", "f", "z", "Complex function of z")
	gridCmd.Flags().String("x", "-4,4,1", "Real bound: low,high[,step]")
	gridCmd.Flags().String("y", "-4,4,1", "Imaginary bound: low,high[,step]")
	gridCmd.Flags().IntP("steps", "n", cgrid.DefaultSteps, "Samples per line")
	gridCmd.Flags().String("reim", "both", "Line families: re, im or both")
	gridCmd.Flags().IntP("workers", "w", 1, "Lines mapped concurrently")
	addOutputFlags(gridCmd)
}
