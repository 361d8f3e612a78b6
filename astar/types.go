// Package astar defines core types and configuration options for the
// best-first path search over a riskgrid.Grid.
//
// The search expands cells in order of f = g + h, where g is the cheapest known
// entry cost from the origin and h is a heuristic estimate of the remaining cost
// to the goal. With the Zero heuristic it is exactly Dijkstra's algorithm; with
// Manhattan it is A*, which settles no more cells than Dijkstra on grids whose
// costs are all at least 1.
//
// Options:
//
//	– Heuristic:  estimate of remaining cost (default Manhattan).
//	– TieBreak:   order among equal f; nil means insertion order (default).
//	– Logger:     optional logrus.FieldLogger for run summaries.
//
// Errors (sentinel):
//
//	– ErrNilGrid          if the grid pointer is nil.
//	– ErrNilHeuristic     if a nil Heuristic was configured.
//	– ErrBrokenPath       if TotalCost is given a path that is not a chain of 4-neighbour steps.
//	– riskgrid.ErrUnreachableGoal if the work-queue drains before the goal is settled.
package astar

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/riskpath/riskgrid"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *riskgrid.Grid was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNilHeuristic indicates that WithHeuristic was given a nil function.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrBrokenPath indicates a path that does not start at the origin or
	// contains a step that is not between orthogonal neighbours.
	ErrBrokenPath = errors.New("astar: path is not a connected 4-neighbour chain from the origin")
)

// Heuristic estimates the remaining cost from c to goal. It must never
// overestimate for the search to stay optimal.
type Heuristic func(c, goal riskgrid.Coordinate) int

// Manhattan is |dx| + |dy|. Admissible and consistent when every cell costs at least 1.
func Manhattan(c, goal riskgrid.Coordinate) int {
	return c.Distance(goal)
}

// Zero turns the search into plain Dijkstra.
func Zero(riskgrid.Coordinate, riskgrid.Coordinate) int {
	return 0
}

// Options configures a Search run.
//
// Heuristic – remaining-cost estimate; Manhattan by default.
// TieBreak  – ordering among equal priorities; nil keeps insertion order.
// Logger    – receives a debug summary per run; nil disables logging.
type Options struct {
	Heuristic Heuristic
	TieBreak  func(a, b riskgrid.Coordinate) bool
	Logger    logrus.FieldLogger
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithHeuristic sets the remaining-cost estimate.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithDijkstra selects the Zero heuristic.
func WithDijkstra() Option {
	return WithHeuristic(Zero)
}

// WithCoordinateTieBreak orders equal priorities lexicographically by (X, Y)
// instead of insertion order.
func WithCoordinateTieBreak() Option {
	return func(o *Options) {
		o.TieBreak = riskgrid.Coordinate.Less
	}
}

// WithLogger attaches a logger; Search emits one debug entry when it starts and
// one when it finishes.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the defaults: Manhattan heuristic, insertion-order
// tie-break, no logging.
func DefaultOptions() Options {
	return Options{
		Heuristic: Manhattan,
	}
}

// Result is the outcome of a successful Search.
//
// Cost    – sum of entry costs along Path, origin excluded.
// Path    – cells from the origin to the goal inclusive.
// Visited – number of cells settled (popped and expanded or matched as goal).
// Pushed  – number of successful PushOrImprove calls on the work-queue.
type Result struct {
	Cost    int
	Path    []riskgrid.Coordinate
	Visited int
	Pushed  int
}
