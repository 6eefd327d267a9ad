// Package board turns pointer events into state changes on a
// gridstore.Store, using flood queries for the component lookups.
//
//   - Hover(pos): hovered set = component of pos (empty for an empty cell).
//   - Leave():    hovered set = empty.
//   - Click(pos): tooltip = (pos, component size) when pos is filled;
//     a click on an empty cell leaves the tooltip unchanged.
//   - Resize(n):  replace the grid with a fresh random n×n grid.
//
// Every method either applies its change fully or returns an error and
// changes nothing. A Board is single-actor, like the Store it drives.
package board
