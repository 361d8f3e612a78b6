package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/riskpath/astar"
	"github.com/katalvlaran/riskpath/render"
	"github.com/katalvlaran/riskpath/riskgrid"
)

func newSolveCmd(log *logrus.Logger) *cobra.Command {
	cfg := defaultSolveConfig()
	cmd := &cobra.Command{
		Use:   "solve [FILE]",
		Short: "Print the minimum total risk from the top-left to the bottom-right cell",
		Long: "Reads one digit per cell from FILE (\"-\" for stdin). Without FILE the input is\n" +
			"taken from <data-dir>/2021/[example/]15.txt.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			path := cfg.inputPath()
			if len(args) == 1 {
				path = args[0]
			}
			return runSolve(cmd.InOrStdin(), cmd.OutOrStdout(), path, cfg, log)
		},
	}
	f := cmd.Flags()
	f.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Directory holding <year>/<day>.txt puzzle inputs")
	f.BoolVar(&cfg.Example, "example", cfg.Example, "Use the example input under <data-dir>/<year>/example/")
	f.IntVar(&cfg.Tiles, "tiles", cfg.Tiles, "Copies of the map per axis")
	f.BoolVar(&cfg.NoExpand, "no-expand", cfg.NoExpand, "Search the map as read, without tiling")
	f.StringVar(&cfg.Heuristic, "heuristic", cfg.Heuristic, "Search heuristic: manhattan|zero")
	f.StringVar(&cfg.TieBreak, "tie-break", cfg.TieBreak, "Order among equal priorities: insertion|coordinate")
	f.StringVar(&cfg.Render, "render", cfg.Render, "Print the map with the path highlighted: off|auto|always|never")

	return cmd
}

// runSolve reads the grid, optionally tiles it, searches and prints the total
// risk (and the rendered map when requested) to out.
func runSolve(stdin io.Reader, out io.Writer, path string, cfg solveConfig, log *logrus.Logger) error {
	in := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
	}

	g, err := riskgrid.Read(in)
	if err != nil {
		return err
	}
	fields := logrus.Fields{"input": path, "width": g.Width, "height": g.Height}
	if factor := cfg.tileFactor(); factor > 1 {
		if g, err = riskgrid.Tile(g, factor); err != nil {
			return err
		}
		fields["tiles"] = factor
	}
	log.WithFields(fields).Info("grid loaded")

	opts, err := cfg.searchOptions()
	if err != nil {
		return err
	}
	res, err := astar.Search(g, append(opts, astar.WithLogger(log))...)
	if err != nil {
		return err
	}

	mode, show, err := cfg.renderMode()
	if err != nil {
		return err
	}
	if show {
		if err := render.Grid(out, g, res.Path, mode); err != nil {
			return err
		}
	}
	log.WithFields(logrus.Fields{"visited": res.Visited, "length": len(res.Path)}).Info("path found")
	_, err = fmt.Fprintln(out, res.Cost)

	return err
}
