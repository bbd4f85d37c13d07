package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/zplane/figure"
	"github.com/katalvlaran/zplane/internal/logging"
)

// logger is set by the root command before any subcommand runs.
var logger = logging.NewNop()

var rootCmd = &cobra.Command{
	Use:   "zplot",
	Short: "zplot draws how complex functions distort grids and point sets",
	Long: `zplot samples lines of constant real and imaginary part over a rectangle,
maps them through a complex function and draws the result, optionally
together with point sets and their images.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, _ := cmd.Flags().GetString("log-level")
		level, err := logging.ParseLevel(s)
		if err != nil {
			return err
		}
		logger = logging.New(level)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", slog.LevelInfo.String(), "Log level: debug, info, warn, error")
}

// addOutputFlags registers the flags every drawing command shares.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("out", "o", "-", "Output file (.png .svg .pdf .jpg .eps .tif .json .html); - writes JSON to stdout")
	cmd.Flags().Float64("width", 600, "Image width in points")
	cmd.Flags().Float64("height", 600, "Image height in points")
	cmd.Flags().String("title", "", "Figure title")
}

// writeFigure saves fig where the output flags say.
func writeFigure(cmd *cobra.Command, fig *figure.Figure) error {
	out, _ := cmd.Flags().GetString("out")
	width, _ := cmd.Flags().GetFloat64("width")
	height, _ := cmd.Flags().GetFloat64("height")
	if title, _ := cmd.Flags().GetString("title"); title != "" {
		fig.SetTitle(title)
	}
	return saveFigure(cmd, fig, out, width, height)
}

func saveFigure(cmd *cobra.Command, fig *figure.Figure, out string, width, height float64) error {
	if out == "" || out == "-" {
		return fig.WriteJSON(cmd.OutOrStdout())
	}
	if err := fig.Save(out, width, height); err != nil {
		return err
	}
	logger.Info("figure written", "path", out, "traces", fig.Len())
	return nil
}
