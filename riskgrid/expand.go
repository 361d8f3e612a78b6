package riskgrid

import (
	"fmt"
	"math"
)

// WrapCost applies the tiling rule to a base cost b shifted by tile offset t:
// ((b + t - 1) mod 9) + 1. Results for b in [1,9] and t >= 0 always land in [1,9];
// 9 shifted by 1 becomes 1, not 10.
func WrapCost(b, t int) int {
	return (b+t-1)%MaxCost + 1
}

// Tile builds a new (factor·W)×(factor·H) grid from base by placing factor²
// copies indexed by tile offsets (tx, ty). A cell in tile (tx, ty) costs
// WrapCost(base, tx+ty); tile (0,0) is copied verbatim.
//
// The result has fresh search state; base is read but never modified.
// Returns ErrBadTileFactor if factor < 1, or if the tiled cell count (or the
// grid's Infinity derived from it) would overflow int.
//
// Complexity: O(factor²·W·H) time and memory.
func Tile(base *Grid, factor int) (*Grid, error) {
	if factor < 1 {
		return nil, ErrBadTileFactor
	}
	w, h := base.Width, base.Height
	if !tileFits(w*h, factor) {
		return nil, fmt.Errorf("%w: %d×%d grid tiled %d times overflows", ErrBadTileFactor, w, h, factor)
	}
	out := newGrid(w*factor, h*factor)
	for ty := 0; ty < factor; ty++ {
		for tx := 0; tx < factor; tx++ {
			shift := tx + ty
			for ly := 0; ly < h; ly++ {
				for lx := 0; lx < w; lx++ {
					cost := base.cells[ly*w+lx].Cost
					if shift > 0 {
						cost = WrapCost(cost, shift)
					}
					out.cells[(ty*h+ly)*out.Width+tx*w+lx].Cost = cost
				}
			}
		}
	}
	out.Reset()

	return out, nil
}

// tileFits reports whether size·factor² cells, each costing up to MaxCost,
// can be summed into an int with room for the Infinity sentinel.
func tileFits(size, factor int) bool {
	if factor > math.MaxInt/factor {
		return false
	}
	sq := factor * factor

	return size <= (math.MaxInt/MaxCost-1)/sq
}

// Expand is Tile with the puzzle's TileFactor.
func Expand(base *Grid) (*Grid, error) {
	return Tile(base, TileFactor)
}
