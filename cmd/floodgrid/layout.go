package main

import "github.com/katalvlaran/floodgrid/gridstore"

const (
	cellWidth = 2 // terminal columns per grid cell
	gridTop   = 2 // status line, then a blank row
	gridLeft  = 0
)

// cellAt maps a terminal position to the grid cell under it.
func cellAt(x, y, size int) (gridstore.Coordinate, bool) {
	if x < gridLeft || y < gridTop {
		return gridstore.Coordinate{}, false
	}
	pos := gridstore.Coordinate{Row: y - gridTop, Col: (x - gridLeft) / cellWidth}
	if pos.Row >= size || pos.Col >= size {
		return gridstore.Coordinate{}, false
	}
	return pos, true
}

// origin returns the top-left terminal position of a cell.
func origin(pos gridstore.Coordinate) (x, y int) {
	return gridLeft + pos.Col*cellWidth, gridTop + pos.Row
}
