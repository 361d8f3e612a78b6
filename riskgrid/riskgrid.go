package riskgrid

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular matrix of costs indexed
// values[y][x]. The input is copied; later changes to values do not affect the Grid.
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrInvalidDigit for costs outside [0,MaxCost].
// Complexity: O(W×H) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	g := newGrid(w, h)
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, v := range row {
			if v < 0 || v > MaxCost {
				return nil, fmt.Errorf("%w: cost %d at %v outside [0,%d]", ErrInvalidDigit, v, Coordinate{x, y}, MaxCost)
			}
			g.cells[y*w+x].Cost = v
		}
	}
	g.Reset()

	return g, nil
}

// Parse decodes one row per line, one decimal digit per cell. Lines are used
// verbatim; see Read for whitespace-tolerant decoding.
// '0' is accepted and yields a zero-cost cell.
func Parse(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(lines), len(lines[0])
	g := newGrid(w, h)
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(line), w)
		}
		for x := 0; x < w; x++ {
			ch := line[x]
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %q at %v", ErrInvalidDigit, ch, Coordinate{x, y})
			}
			g.cells[y*w+x].Cost = int(ch - '0')
		}
	}
	g.Reset()

	return g, nil
}

// Read scans r line by line, trims surrounding whitespace, drops blank lines
// and hands the remaining rows to Parse.
func Read(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("riskgrid: reading input: %w", err)
	}

	return Parse(lines)
}

// newGrid allocates a w×h grid with zero costs and unset search state.
func newGrid(w, h int) *Grid {
	return &Grid{
		Width:  w,
		Height: h,
		Goal:   Coordinate{X: w - 1, Y: h - 1},
		cells:  make([]Cell, w*h),
		inf:    w*h*MaxCost + 1,
	}
}

// Infinity returns the sentinel used for "not yet reached". It is strictly
// greater than any achievable finite path cost when every cost is at most MaxCost.
func (g *Grid) Infinity() int {
	return g.inf
}

// Size returns the number of cells, W×H.
func (g *Grid) Size() int {
	return len(g.cells)
}

// IsValid reports whether c lies within [0,Width)×[0,Height).
// Complexity: O(1).
func (g *Grid) IsValid(c Coordinate) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Index maps c to its row-major slot y*Width + x. c must be valid.
func (g *Grid) Index(c Coordinate) int {
	return c.Y*g.Width + c.X
}

// CoordinateAt converts a row-major index back to a Coordinate.
func (g *Grid) CoordinateAt(idx int) Coordinate {
	return Coordinate{X: idx % g.Width, Y: idx / g.Width}
}

// Cell returns a pointer to the cell at c, or nil if c is out of bounds.
// The pointer aliases the grid's storage.
func (g *Grid) Cell(c Coordinate) *Cell {
	if !g.IsValid(c) {
		return nil
	}
	return &g.cells[g.Index(c)]
}

// CostAt returns the entry cost of c.
func (g *Grid) CostAt(c Coordinate) (int, error) {
	if !g.IsValid(c) {
		return 0, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.Width, g.Height)
	}
	return g.cells[g.Index(c)].Cost, nil
}

// Neighbors yields the in-bounds orthogonal neighbours of c in W, N, S, E order.
func (g *Grid) Neighbors(c Coordinate) iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for _, d := range neighborOffsets {
			n := c.Add(d)
			if !g.IsValid(n) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// Reset clears the search state of every cell: Best becomes Infinity and the
// predecessor link is dropped. Costs are untouched.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].Best = g.inf
		g.cells[i].Predecessor = Coordinate{}
		g.cells[i].HasPredecessor = false
	}
}

// Clone returns a deep copy of g including its current search state.
func (g *Grid) Clone() *Grid {
	out := *g
	out.cells = slices.Clone(g.cells)
	return &out
}

// Values exports the static costs as a fresh values[y][x] matrix.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.Height)
	for y := range out {
		row := make([]int, g.Width)
		for x := range row {
			row[x] = g.cells[y*g.Width+x].Cost
		}
		out[y] = row
	}
	return out
}

// ReconstructPath follows predecessor links from Goal back to the first cell
// without a predecessor and returns the sequence from Origin to Goal inclusive.
//
// Returns ErrUnreachableGoal if the chain ends anywhere but Origin, or if it is
// longer than W×H cells (a cycle).
func (g *Grid) ReconstructPath() ([]Coordinate, error) {
	path := make([]Coordinate, 0, g.Width+g.Height-1)
	at := g.Goal
	for steps := 0; steps < len(g.cells); steps++ {
		if !g.IsValid(at) {
			return nil, fmt.Errorf("%w: predecessor %v", ErrOutOfBounds, at)
		}
		path = append(path, at)
		cell := &g.cells[g.Index(at)]
		if !cell.HasPredecessor {
			if at != Origin {
				return nil, fmt.Errorf("%w: chain from %v stops at %v", ErrUnreachableGoal, g.Goal, at)
			}
			slices.Reverse(path)
			return path, nil
		}
		at = cell.Predecessor
	}

	return nil, fmt.Errorf("%w: predecessor chain exceeds %d cells", ErrUnreachableGoal, len(g.cells))
}
