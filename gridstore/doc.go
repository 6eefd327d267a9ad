// Package gridstore owns the square binary grid and the transient
// interaction state (hovered cells, tooltip) derived from it.
//
// What:
//
//   - Grid is an immutable size×size matrix of cells, 0 = empty, 1 = filled.
//   - Generate builds a random grid, each cell filled with probability 1/2.
//   - Store holds the active Grid plus the hovered set and optional tooltip.
//
// Lifecycle:
//
//   - ReplaceGrid (and Regenerate) swap the grid and reset interaction state.
//   - SetHovered overwrites the hovered set; it never merges.
//   - SetTooltip overwrites or clears the tooltip. Only a new tooltip or a
//     grid replacement changes it; hovering never does.
//
// Errors:
//
//   - ErrInvalidSize: size < 1, or above the configured ceiling.
//   - ErrNonSquare: a fixed configuration whose rows do not form a square.
//   - ErrCellValue: a fixed configuration holding values other than 0 or 1.
//   - ErrOutOfBounds: a coordinate outside [0, size) on either axis.
//
// Concurrency:
//
//	Store is not synchronized. It models a single actor issuing one call at
//	a time; callers sharing a Store between goroutines must lock around it.
package gridstore
