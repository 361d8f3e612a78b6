// Package riskpath finds the lowest-risk route across a weighted grid: a map of
// per-cell entry costs where movement is limited to the four orthogonal
// neighbours, from the top-left to the bottom-right corner.
//
// The work is split over small packages:
//
//	riskgrid/ — dense grid of costs plus per-cell search state, text decoding, tiling
//	pqueue/   — decrease-key min work-queue with lazy deletion
//	astar/    — A* / Dijkstra relaxation loop and path reconstruction
//	render/   — terminal rendering of a grid with a highlighted path
//	api/      — HTTP endpoint for searches (gin)
//	cmd/chiton — command line front end (cobra, logrus)
//
// Quick example:
//
//	g, _ := riskgrid.Parse(lines)
//	full, _ := riskgrid.Expand(g) // 5× tiling
//	res, _ := astar.Search(full)
//	fmt.Println(res.Cost)
//
//	go install github.com/katalvlaran/riskpath/cmd/chiton@latest
package riskpath
