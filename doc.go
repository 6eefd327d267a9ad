// Package floodgrid is an interactive square grid of binary cells with a
// flood-fill engine that finds the 4-connected component of any cell.
//
// Packages:
//
//	gridstore/     — Coordinate, Grid, random generation, Store (hover + tooltip state)
//	flood/         — Neighbors, Query, Components, Largest
//	board/         — pointer events (hover, leave, click, resize) applied to a Store
//	cmd/floodgrid/ — terminal front end (tcell)
//
// Quick example:
//
//	0 0 0 0 1
//	1 1 0 0 0      Query at (2,0) → {(1,0),(1,1),(2,0),(2,1)}, size 4
//	1 1 0 1 1      Query at (2,3) → {(2,3),(2,4)},             size 2
//	0 0 0 0 0      Query at (0,0) → {} (empty cell)
//	1 1 1 0 0
package floodgrid
