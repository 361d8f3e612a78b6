package riskgrid

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for riskgrid operations.
var (
	// ErrMalformedInput is the umbrella error for input that cannot be decoded into a Grid.
	ErrMalformedInput = errors.New("riskgrid: malformed input")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedInput)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedInput)
	// ErrInvalidDigit indicates a cell that is not a decimal digit (or a cost outside [0,MaxCost]).
	ErrInvalidDigit = fmt.Errorf("%w: cell is not a digit", ErrMalformedInput)

	// ErrUnreachableGoal indicates that no path from the origin to the goal exists.
	ErrUnreachableGoal = errors.New("riskgrid: goal is unreachable from origin")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("riskgrid: coordinate out of bounds")
	// ErrBadTileFactor indicates a tiling factor smaller than one, or one whose
	// expanded grid would not fit in an int cell count.
	ErrBadTileFactor = errors.New("riskgrid: tile factor out of range")
)

const (
	// TileFactor is the number of copies per axis the puzzle's full map uses.
	TileFactor = 5
	// MaxCost is the largest per-cell cost produced by the wrapping rule.
	MaxCost = 9
)

// Coordinate is a cell position; X grows to the right, Y grows downward.
type Coordinate struct {
	X, Y int
}

// Origin is the fixed start cell of every search.
var Origin = Coordinate{}

// String renders the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the component-wise sum c + d.
func (c Coordinate) Add(d Coordinate) Coordinate {
	return Coordinate{X: c.X + d.X, Y: c.Y + d.Y}
}

// Distance returns the Manhattan distance between c and d.
func (c Coordinate) Distance(d Coordinate) int {
	return absDiff(c.X, d.X) + absDiff(c.Y, d.Y)
}

// Less orders coordinates lexicographically by (X, Y).
func (c Coordinate) Less(d Coordinate) bool {
	if c.X != d.X {
		return c.X < d.X
	}
	return c.Y < d.Y
}

func absDiff[T constraints.Signed](a, b T) T {
	v := a - b
	if v < 0 {
		v = -v
	}
	return v
}

// Cell holds the static entry cost of a position and the mutable search state.
//
// Cost is fixed after construction. Best starts at the grid's Infinity and only
// ever decreases during a search; Predecessor is meaningful only when HasPredecessor.
type Cell struct {
	Cost           int
	Best           int
	Predecessor    Coordinate
	HasPredecessor bool
}

// Grid is a dense W×H arena of cells. Goal is always the bottom-right corner.
type Grid struct {
	Width, Height int
	Goal          Coordinate
	cells         []Cell
	inf           int
}

// neighborOffsets lists orthogonal steps in a fixed order: W, N, S, E.
var neighborOffsets = [4]Coordinate{{X: -1}, {Y: -1}, {Y: 1}, {X: 1}}
