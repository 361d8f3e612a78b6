// File: riskgrid/example_test.go
package riskgrid_test

import (
	"fmt"

	"github.com/katalvlaran/riskpath/riskgrid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Parse and Neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleParse decodes a 3×2 cost map and lists the neighbours of its centre-top cell.
func ExampleParse() {
	g, err := riskgrid.Parse([]string{
		"123",
		"456",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%dx%d goal=%v\n", g.Width, g.Height, g.Goal)
	for n := range g.Neighbors(riskgrid.Coordinate{X: 1, Y: 0}) {
		cost, _ := g.CostAt(n)
		fmt.Printf("%v costs %d\n", n, cost)
	}

	// Output:
	// 3x2 goal=(2,1)
	// (0,0) costs 1
	// (1,1) costs 5
	// (2,0) costs 3
}

////////////////////////////////////////////////////////////////////////////////
// Example: Tile
////////////////////////////////////////////////////////////////////////////////

// ExampleTile expands a single 8-cost cell three times per axis; offsets wrap 9 back to 1.
func ExampleTile() {
	base, _ := riskgrid.Parse([]string{"8"})
	full, _ := riskgrid.Tile(base, 3)
	for _, row := range full.Values() {
		fmt.Println(row)
	}

	// Output:
	// [8 9 1]
	// [9 1 2]
	// [1 2 3]
}
