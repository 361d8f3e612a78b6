// Package riskgrid models a dense rectangular grid of per-cell entry costs
// together with the mutable search state a shortest-path run keeps per cell.
//
// What:
//
//   - Grid stores W×H cells in a single row-major slice (index y*W + x).
//   - Each Cell carries a static Cost plus the search state Best and Predecessor.
//   - Parse/Read decode one-digit-per-cell text rows; New accepts an int matrix.
//   - Tile replicates a base grid factor×factor times with the wrapping 1..9 rule.
//   - ReconstructPath walks predecessor links from Goal back to the origin.
//
// Why:
//
//   - A dense arena makes bounds checks a pair of comparisons and removes hashing
//     from the relaxation loop.
//   - Keeping the search state inside the grid lets callers inspect best-known
//     costs after a run (diagnostics, rendering).
//
// Complexity:
//
//   - Parse, New, Tile, Reset, Clone: O(W×H) time and memory.
//   - IsValid, Cell, Neighbors:       O(1) per call.
//   - ReconstructPath:                O(W×H) worst case (cycle guard bound).
//
// Errors:
//
//   - ErrMalformedInput: umbrella for every decoding failure, matched with errors.Is.
//   - ErrEmptyGrid, ErrNonRectangular, ErrInvalidDigit: specific decoding failures.
//   - ErrUnreachableGoal: predecessor chain does not lead back to the origin.
//   - ErrOutOfBounds: coordinate outside [0,W)×[0,H).
//   - ErrBadTileFactor: Tile called with factor < 1 or one that overflows int.
package riskgrid
