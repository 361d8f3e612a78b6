// Package astar finds the minimum-cost path from the top-left to the
// bottom-right cell of a riskgrid.Grid, moving between orthogonal neighbours
// and paying the entry cost of every cell except the origin.
//
// Overview:
//
//   - Search runs a best-first relaxation loop over a pqueue.Queue keyed by
//     coordinate and prioritised by g + h.
//   - Every cell is settled at most once; stale queue entries for already settled
//     cells are skipped on pop.
//   - The path is rebuilt from the grid's predecessor links once the goal is settled.
//
// Complexity:
//
//   - Time:  O(V log V + E), V = W×H cells, E ≤ 4V.
//   - Space: O(V) for the settled flags and the work-queue.
//
// Notes on implementation choices:
//
//   - Search resets the grid's search state first, so one grid can be queried
//     with several option sets in a row.
//   - "Infinity" is the grid's own integer sentinel; no floating point is involved.
//   - Zero-cost cells are accepted. They break the consistency of Manhattan, in
//     which case only WithDijkstra guarantees a minimum-cost result.
package astar

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/riskpath/pqueue"
	"github.com/katalvlaran/riskpath/riskgrid"
)

// Search computes the cheapest origin→goal path in g.
//
// Returns:
//
//   - Result with Cost, Path, Visited and Pushed filled in.
//   - ErrNilGrid, ErrNilHeuristic for invalid input.
//   - riskgrid.ErrUnreachableGoal if the goal cannot be reached.
//
// The grid's per-cell Best and Predecessor fields are overwritten; after a
// successful run they describe the shortest-path tree explored by the search.
func Search(g *riskgrid.Grid, opts ...Option) (Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if g.Size() == 0 {
		return Result{}, riskgrid.ErrEmptyGrid
	}
	if cfg.Heuristic == nil {
		return Result{}, ErrNilHeuristic
	}

	// 2) Fresh search state, then run.
	g.Reset()
	r := newRunner(g, cfg)
	r.init()
	if err := r.process(); err != nil {
		r.logDone(err)
		return Result{}, err
	}

	// 3) Rebuild the path from predecessor links.
	path, err := g.ReconstructPath()
	if err != nil {
		r.logDone(err)
		return Result{}, err
	}
	res := Result{
		Cost:    g.Cell(g.Goal).Best,
		Path:    path,
		Visited: r.visited,
		Pushed:  r.pushed,
	}
	r.logDone(nil)

	return res, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *riskgrid.Grid
	options Options
	pq      *pqueue.Queue[riskgrid.Coordinate]
	settled []bool // indexed by g.Index
	visited int
	pushed  int
	log     logrus.FieldLogger
}

func newRunner(g *riskgrid.Grid, cfg Options) *runner {
	qopts := []pqueue.Option[riskgrid.Coordinate]{pqueue.WithCapacity[riskgrid.Coordinate](g.Width + g.Height)}
	if cfg.TieBreak != nil {
		qopts = append(qopts, pqueue.WithTieBreak(cfg.TieBreak))
	}
	r := &runner{
		g:       g,
		options: cfg,
		pq:      pqueue.New(qopts...),
		settled: make([]bool, g.Size()),
	}
	if cfg.Logger != nil {
		r.log = cfg.Logger.WithFields(logrus.Fields{
			"width":  g.Width,
			"height": g.Height,
			"goal":   g.Goal.String(),
		})
	}

	return r
}

// init seeds the origin with cost 0 and pushes it with priority h(origin).
func (r *runner) init() {
	r.g.Cell(riskgrid.Origin).Best = 0
	r.push(riskgrid.Origin, 0)
	if r.log != nil {
		r.log.Debug("search started")
	}
}

// process drains the work-queue until the goal is settled.
// Returns riskgrid.ErrUnreachableGoal if the queue runs dry first.
func (r *runner) process() error {
	for !r.pq.Empty() {
		// 1) Pop the most promising coordinate.
		c, _, err := r.pq.PopMin()
		if err != nil {
			// Empty was checked above; reaching this is a bug in the queue.
			return fmt.Errorf("astar: %w", err)
		}

		// 2) Skip coordinates that were already settled.
		idx := r.g.Index(c)
		if r.settled[idx] {
			continue
		}
		r.settled[idx] = true
		r.visited++

		// 3) Goal settled: its Best is final.
		if c == r.g.Goal {
			return nil
		}

		// 4) Relax neighbours.
		r.relax(c)
	}

	return fmt.Errorf("%w: queue drained after settling %d of %d cells",
		riskgrid.ErrUnreachableGoal, r.visited, r.g.Size())
}

// relax offers every neighbour n of c the candidate cost Best(c) + Cost(n).
func (r *runner) relax(c riskgrid.Coordinate) {
	base := r.g.Cell(c).Best
	for n := range r.g.Neighbors(c) {
		cell := r.g.Cell(n)
		candidate := base + cell.Cost
		if candidate >= cell.Best {
			continue
		}
		cell.Best = candidate
		cell.Predecessor = c
		cell.HasPredecessor = true
		r.push(n, candidate)
	}
}

// push enqueues c with priority cost + h(c).
func (r *runner) push(c riskgrid.Coordinate, cost int) {
	if r.pq.PushOrImprove(c, cost+r.options.Heuristic(c, r.g.Goal)) {
		r.pushed++
	}
}

func (r *runner) logDone(err error) {
	if r.log == nil {
		return
	}
	entry := r.log.WithFields(logrus.Fields{
		"visited": r.visited,
		"pushed":  r.pushed,
		"stale":   r.pq.Stale(),
	})
	if err != nil {
		entry.WithError(err).Debug("search failed")
		return
	}
	entry.WithField("cost", r.g.Cell(r.g.Goal).Best).Debug("search finished")
}

// TotalCost sums the entry cost of every cell of path except the first, after
// checking that path starts at the origin and moves between orthogonal neighbours.
func TotalCost(g *riskgrid.Grid, path []riskgrid.Coordinate) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	if len(path) == 0 || path[0] != riskgrid.Origin {
		return 0, ErrBrokenPath
	}
	total := 0
	for i := 1; i < len(path); i++ {
		if path[i-1].Distance(path[i]) != 1 {
			return 0, fmt.Errorf("%w: step %v→%v", ErrBrokenPath, path[i-1], path[i])
		}
		cost, err := g.CostAt(path[i])
		if err != nil {
			return 0, err
		}
		total += cost
	}

	return total, nil
}
