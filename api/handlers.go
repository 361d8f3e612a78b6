package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/riskpath/astar"
	"github.com/katalvlaran/riskpath/riskgrid"
)

// errTooLarge indicates a grid exceeding Config.MaxCells after tiling.
var errTooLarge = errors.New("api: grid too large")

// errUnknownHeuristic indicates a heuristic name other than manhattan or zero.
var errUnknownHeuristic = errors.New("api: unknown heuristic")

// errAmbiguousGrid indicates a request carrying both rows and cells.
var errAmbiguousGrid = errors.New("api: send either rows or cells, not both")

// SearchRequest is the body of POST /api/v1/search. The map is given either as
// digit strings in Rows or as a numeric matrix in Cells.
type SearchRequest struct {
	Rows        []string `json:"rows,omitempty" binding:"required_without=Cells"`
	Cells       [][]int  `json:"cells,omitempty" binding:"required_without=Rows"`
	Tiles       int      `json:"tiles"`
	Heuristic   string   `json:"heuristic"`
	IncludePath bool     `json:"includePath"`
}

// SearchResponse is the body returned by POST /api/v1/search.
type SearchResponse struct {
	Cost            int      `json:"cost"`
	Path            [][2]int `json:"path,omitempty"`
	Visited         int      `json:"visited"`
	Width           int      `json:"width"`
	Height          int      `json:"height"`
	ExecutionTimeMs float64  `json:"executionTimeMs"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

type handler struct {
	maxCells int
	log      logrus.FieldLogger
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	opts, err := searchOptions(req.Heuristic)
	if err != nil {
		respondWithError(c, err)
		return
	}
	g, err := h.buildGrid(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	start := time.Now()
	res, err := astar.Search(g, append(opts, astar.WithLogger(h.log))...)
	elapsed := time.Since(start)
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp := SearchResponse{
		Cost:            res.Cost,
		Visited:         res.Visited,
		Width:           g.Width,
		Height:          g.Height,
		ExecutionTimeMs: float64(elapsed.Microseconds()) / 1000,
	}
	if req.IncludePath {
		resp.Path = make([][2]int, len(res.Path))
		for i, p := range res.Path {
			resp.Path[i] = [2]int{p.X, p.Y}
		}
	}
	c.JSON(http.StatusOK, resp)
}

// buildGrid decodes rows or cells and applies tiling; tiles 0 means no expansion.
func (h *handler) buildGrid(req SearchRequest) (*riskgrid.Grid, error) {
	var (
		g   *riskgrid.Grid
		err error
	)
	switch {
	case req.Rows != nil && req.Cells != nil:
		return nil, errAmbiguousGrid
	case req.Cells != nil:
		g, err = riskgrid.New(req.Cells)
	default:
		g, err = riskgrid.Parse(req.Rows)
	}
	if err != nil {
		return nil, err
	}
	tiles := req.Tiles
	if tiles == 0 {
		tiles = 1
	}
	if tiles < 1 {
		return nil, riskgrid.ErrBadTileFactor
	}
	if cells := g.Size() * tiles * tiles; cells > h.maxCells || cells/tiles/tiles != g.Size() {
		return nil, fmt.Errorf("%w: %d×%d tiled %d times exceeds %d cells", errTooLarge, g.Width, g.Height, tiles, h.maxCells)
	}
	if tiles == 1 {
		return g, nil
	}

	return riskgrid.Tile(g, tiles)
}

// searchOptions maps a heuristic name to search options.
func searchOptions(name string) ([]astar.Option, error) {
	switch name {
	case "", "manhattan":
		return []astar.Option{astar.WithHeuristic(astar.Manhattan)}, nil
	case "zero", "dijkstra":
		return []astar.Option{astar.WithDijkstra()}, nil
	}
	return nil, fmt.Errorf("%w: %q", errUnknownHeuristic, name)
}

// respondWithError maps domain errors to HTTP statuses.
func respondWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, riskgrid.ErrMalformedInput),
		errors.Is(err, riskgrid.ErrBadTileFactor),
		errors.Is(err, errUnknownHeuristic),
		errors.Is(err, errAmbiguousGrid):
		status = http.StatusBadRequest
	case errors.Is(err, errTooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, riskgrid.ErrUnreachableGoal):
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}
