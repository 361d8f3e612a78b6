package astar_test

import (
	"testing"

	"github.com/katalvlaran/riskpath/astar"
	"github.com/katalvlaran/riskpath/riskgrid"
)

// BenchmarkSearch_Expanded measures A* and Dijkstra on a 5× tiled 100×100 grid,
// the size of a real puzzle input (250 000 cells).
func BenchmarkSearch_Expanded(b *testing.B) {
	base := randomGrid(b, 42, 100, 100)
	full, err := riskgrid.Expand(base)
	if err != nil {
		b.Fatalf("setup Expand failed: %v", err)
	}
	for name, opts := range map[string][]astar.Option{
		"Manhattan": nil,
		"Zero":      {astar.WithDijkstra()},
	} {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := astar.Search(full, opts...); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
