package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/riskpath/astar"
	"github.com/katalvlaran/riskpath/render"
	"github.com/katalvlaran/riskpath/riskgrid"
)

const (
	puzzleYear = 2021
	puzzleDay  = 15
)

// maxTiles bounds --tiles; 64² copies of a 100×100 puzzle map is already
// tens of millions of cells.
const maxTiles = 64

var errBadFlag = errors.New("invalid flag value")

// solveConfig collects the flags of the solve command.
type solveConfig struct {
	DataDir   string
	Example   bool
	Tiles     int
	NoExpand  bool
	Heuristic string
	TieBreak  string
	Render    string
}

func defaultSolveConfig() solveConfig {
	return solveConfig{
		DataDir:   "data",
		Tiles:     riskgrid.TileFactor,
		Heuristic: "manhattan",
		TieBreak:  "insertion",
		Render:    "off",
	}
}

func (c solveConfig) validate() error {
	if c.Tiles < 1 || c.Tiles > maxTiles {
		return fmt.Errorf("%w: --tiles must be in [1,%d], got %d", errBadFlag, maxTiles, c.Tiles)
	}
	if _, err := c.searchOptions(); err != nil {
		return err
	}
	if _, _, err := c.renderMode(); err != nil {
		return err
	}
	return nil
}

// inputPath resolves the puzzle file the same way the data directory is laid
// out: <data>/<year>/[example/]<day>.txt.
func (c solveConfig) inputPath() string {
	parts := []string{c.DataDir, strconv.Itoa(puzzleYear)}
	if c.Example {
		parts = append(parts, "example")
	}
	parts = append(parts, fmt.Sprintf("%02d.txt", puzzleDay))
	return filepath.Join(parts...)
}

// tileFactor is 1 when expansion is disabled.
func (c solveConfig) tileFactor() int {
	if c.NoExpand {
		return 1
	}
	return c.Tiles
}

func (c solveConfig) searchOptions() ([]astar.Option, error) {
	var opts []astar.Option
	switch c.Heuristic {
	case "manhattan":
		opts = append(opts, astar.WithHeuristic(astar.Manhattan))
	case "zero", "dijkstra":
		opts = append(opts, astar.WithDijkstra())
	default:
		return nil, fmt.Errorf("%w: --heuristic %q (want manhattan or zero)", errBadFlag, c.Heuristic)
	}
	switch c.TieBreak {
	case "insertion":
	case "coordinate":
		opts = append(opts, astar.WithCoordinateTieBreak())
	default:
		return nil, fmt.Errorf("%w: --tie-break %q (want insertion or coordinate)", errBadFlag, c.TieBreak)
	}
	return opts, nil
}

// renderMode reports whether to render and with which colour mode.
func (c solveConfig) renderMode() (render.ColorMode, bool, error) {
	switch c.Render {
	case "off":
		return render.ColorNever, false, nil
	case "auto":
		return render.ColorAuto, true, nil
	case "always":
		return render.ColorAlways, true, nil
	case "never":
		return render.ColorNever, true, nil
	}
	return 0, false, fmt.Errorf("%w: --render %q (want off, auto, always or never)", errBadFlag, c.Render)
}

// serveConfig collects the flags of the serve command.
type serveConfig struct {
	Addr     string
	MaxCells int
}

func (c serveConfig) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: --addr must not be empty", errBadFlag)
	}
	if c.MaxCells < 1 {
		return fmt.Errorf("%w: --max-cells must be positive, got %d", errBadFlag, c.MaxCells)
	}
	return nil
}
