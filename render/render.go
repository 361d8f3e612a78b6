// Package render prints a riskgrid.Grid as rows of digits with the cells of a
// path emphasised, for eyeballing search results in a terminal.
//
// Path cells are written bold and every other cell dim. Emphasis uses ANSI SGR
// sequences and is only emitted when the destination is a terminal, unless the
// caller forces it on or off with a ColorMode.
package render

import (
	"bufio"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/riskpath/riskgrid"
)

// ColorMode controls whether ANSI emphasis is written.
type ColorMode int

const (
	// ColorAuto emits emphasis only when the writer is a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways always emits emphasis.
	ColorAlways
	// ColorNever never emits emphasis; marked cells are left as plain digits.
	ColorNever
)

const (
	sgrBold  = "\x1b[1m"
	sgrDim   = "\x1b[2m"
	sgrReset = "\x1b[0m"
)

// Grid writes g to w, one line per row followed by a blank line. Cells listed
// in path are emphasised; with an empty path only the origin and the goal are.
// Costs above 9 are written as '+'.
func Grid(w io.Writer, g *riskgrid.Grid, path []riskgrid.Coordinate, mode ColorMode) error {
	marked := make([]bool, g.Size())
	if len(path) == 0 {
		path = []riskgrid.Coordinate{riskgrid.Origin, g.Goal}
	}
	for _, c := range path {
		if g.IsValid(c) {
			marked[g.Index(c)] = true
		}
	}

	color := useColor(w, mode)
	bw := bufio.NewWriter(w)
	for y := 0; y < g.Height; y++ {
		prev := -1 // 0 dim, 1 bold
		for x := 0; x < g.Width; x++ {
			c := riskgrid.Coordinate{X: x, Y: y}
			if color {
				state := 0
				if marked[g.Index(c)] {
					state = 1
				}
				if state != prev {
					if prev >= 0 {
						bw.WriteString(sgrReset)
					}
					if state == 1 {
						bw.WriteString(sgrBold)
					} else {
						bw.WriteString(sgrDim)
					}
					prev = state
				}
			}
			bw.WriteByte(digit(g.Cell(c).Cost))
		}
		if color {
			bw.WriteString(sgrReset)
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')

	return bw.Flush()
}

// digit renders a cost as a single byte.
func digit(cost int) byte {
	if cost < 0 || cost > 9 {
		return '+'
	}
	return byte('0' + cost)
}

// useColor resolves mode against w.
func useColor(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
